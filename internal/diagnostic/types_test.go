package diagnostic

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_ErrIsNilWithoutErrors(t *testing.T) {
	d := &Diagnostics{}
	d.AddWarning("ignored_annotation", "annotation ignored", 3, "Turn.radius")

	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Err())
	assert.Len(t, d.Warnings, 1)
}

func TestDiagnostics_ErrJoinsMessages(t *testing.T) {
	d := &Diagnostics{}
	d.AddError("duplicate_identifier", "identifier ENGINE_POWER used twice", 4, "Engine.power")
	d.AddError("empty_schema", "schema has no groups", 0, "")

	err := d.Err()
	require.Error(t, err)
	assert.Equal(t,
		"line 4 Engine.power: [duplicate_identifier] identifier ENGINE_POWER used twice; [empty_schema] schema has no groups",
		err.Error())
}

func TestDiagnostics_Merge(t *testing.T) {
	a := &Diagnostics{}
	a.AddWarning("w1", "first", 1, "")

	b := &Diagnostics{}
	b.AddError("e1", "second", 2, "")
	b.AddWarning("w2", "third", 3, "")

	a.Merge(b)
	a.Merge(nil)

	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 2)
}

func TestDiagnostic_StringWithSuggestions(t *testing.T) {
	d := Diagnostic{Code: "unknown_operation", Message: `unknown operation "enun"`, Suggestions: []string{"enum"}}

	assert.Equal(t, `[unknown_operation] unknown operation "enun" (did you mean enum?)`, d.String())
}

func TestDiagnostics_Log(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	d := &Diagnostics{}
	d.AddWarning("empty_member", "empty member skipped", 7, "Gear")
	d.Log(logger)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "code=empty_member")
	assert.Contains(t, out, "line=7")
	assert.Contains(t, out, "subject=Gear")
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}

func TestDiagnostics_AddRoutesBySeverity(t *testing.T) {
	d := &Diagnostics{}
	d.Add(Diagnostic{Severity: SeverityError, Code: "unknown_operation", Suggestions: []string{"enum"}})
	d.Add(Diagnostic{Severity: SeverityWarning, Code: "duplicate_operation"})

	assert.Len(t, d.Errors, 1)
	assert.Len(t, d.Warnings, 1)
	assert.Equal(t, []string{"enum"}, d.Errors[0].Suggestions)
}
