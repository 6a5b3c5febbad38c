package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kartgen/internal/gen"
	"kartgen/internal/update"
)

// printer writes styled status lines. Colors are dropped when w is not a
// terminal.
type printer struct {
	w       io.Writer
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)

	return &printer{
		w:       w,
		success: r.NewStyle().Foreground(lipgloss.Color("#27ca3f")),
		failure: r.NewStyle().Foreground(lipgloss.Color("#ff5f56")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#bababa")),
	}
}

// result prints one status line for a target file.
func (p *printer) result(r update.Result, check bool) {
	ops := p.muted.Render("(" + joinOperations(r.Operations) + ")")

	switch {
	case r.Err != nil:
		fmt.Fprintf(p.w, "%s %s failed %s\n", p.failure.Render("✗"), r.Rel, ops)
	case r.Changed && check:
		fmt.Fprintf(p.w, "%s %s out of date %s\n", p.failure.Render("✗"), r.Rel, ops)
	case r.Changed:
		fmt.Fprintf(p.w, "%s %s updated %s\n", p.success.Render("✓"), r.Rel, ops)
	default:
		fmt.Fprintf(p.w, "%s %s %s\n", p.success.Render("✓"), r.Rel, p.muted.Render("up to date"))
	}
}

func (p *printer) done(msg string) {
	fmt.Fprintln(p.w, p.success.Render(msg))
}

func joinOperations(ops []gen.Operation) string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}

	return strings.Join(names, ", ")
}
