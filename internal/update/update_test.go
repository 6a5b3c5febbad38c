package update

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kartgen/internal/gen"
	"kartgen/internal/plan"
	"kartgen/internal/schema"
	"kartgen/internal/splice"
)

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()

	s, err := schema.Load("Suspension: stiffness, travelCM\nMass")
	require.NoError(t, err)

	return s
}

// writeTree creates every canonical target under root with empty regions.
func writeTree(t *testing.T, root string) {
	t.Helper()

	for _, job := range plan.Build(root, nil, nil).Files {
		var b strings.Builder

		b.WriteString("// header\n")

		for _, op := range job.Operations {
			start, end := splice.Markers(op)
			fmt.Fprintf(&b, "/* %s */\n/* %s */\n", start, end)
		}

		b.WriteString("// footer\n")

		require.NoError(t, os.MkdirAll(filepath.Dir(job.Path), 0o755))
		require.NoError(t, os.WriteFile(job.Path, []byte(b.String()), 0o644))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestRun_WritesAllTargets(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root)

	s := testSchema(t)
	p := plan.Build(root, nil, nil)

	results, err := Run(context.Background(), s, p, Options{Projection: gen.DefaultOptions()})
	require.NoError(t, err)
	require.Len(t, results, 5)

	for _, r := range results {
		assert.True(t, r.Changed, r.Rel)
		assert.NoError(t, r.Err)
	}

	xml := readFile(t, filepath.Join(root, "karts", "xml_characteristic.cpp"))
	assert.Contains(t, xml, `sub_node->get("travel-cm", &m_values[SUSPENSION_TRAVEL_CM]);`)
	assert.True(t, strings.HasPrefix(xml, "// header\n"))
	assert.True(t, strings.HasSuffix(xml, "// footer\n"))

	enum, err := gen.Project(s, gen.OpEnum, gen.DefaultOptions())
	require.NoError(t, err)

	hpp := readFile(t, filepath.Join(root, "karts", "abstract_characteristic.hpp"))
	assert.Contains(t, hpp, "<characteristics-start enum> */\n"+enum+"\n/* <characteristics-end enum>")
}

func TestRun_SecondRunChangesNothing(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root)

	s := testSchema(t)
	p := plan.Build(root, nil, nil)

	_, err := Run(context.Background(), s, p, Options{})
	require.NoError(t, err)

	results, err := Run(context.Background(), s, p, Options{})
	require.NoError(t, err)
	assert.Empty(t, Stale(results))
}

func TestRun_CheckModeDoesNotWrite(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root)

	target := filepath.Join(root, "karts", "kart_properties.hpp")
	before := readFile(t, target)

	results, err := Run(context.Background(), testSchema(t), plan.Build(root, nil, nil), Options{Check: true})
	require.NoError(t, err)

	stale := Stale(results)
	require.Len(t, stale, 5)
	assert.Equal(t, before, readFile(t, target))

	for _, r := range stale {
		assert.Contains(t, r.Diff, "--- a/"+r.Rel)
		assert.Contains(t, r.Diff, "+++ b/"+r.Rel)
	}

	assert.Contains(t, stale[0].Diff, "+        MASS,")
}

func TestRun_MarkerErrorIsolatedToFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root)

	broken := filepath.Join(root, "karts", "kart_properties.cpp")
	require.NoError(t, os.WriteFile(broken, []byte("no markers here\n"), 0o644))

	results, err := Run(context.Background(), testSchema(t), plan.Build(root, nil, nil), Options{})
	require.Error(t, err)
	require.ErrorIs(t, err, splice.ErrMarkerNotFound)
	require.Len(t, results, 5)

	for _, r := range results {
		if r.Path == broken {
			assert.Error(t, r.Err)
			assert.False(t, r.Changed)

			continue
		}

		assert.NoError(t, r.Err, r.Rel)
		assert.True(t, r.Changed, r.Rel)
	}

	assert.Equal(t, "no markers here\n", readFile(t, broken))
}

func TestRun_MissingFile(t *testing.T) {
	root := t.TempDir()

	results, err := Run(context.Background(), testSchema(t), plan.Build(root, []string{"enum"}, nil), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	require.Len(t, results, 1)
}

func TestRun_RejectsInvalidPlan(t *testing.T) {
	_, err := Run(context.Background(), testSchema(t), plan.Build(t.TempDir(), []string{"bogus"}, nil), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid plan")
}

func TestRun_StopsOnCancelledContext(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, testSchema(t), plan.Build(root, nil, nil), Options{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}
