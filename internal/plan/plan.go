package plan

import (
	"errors"
	"path/filepath"
	"strconv"

	"kartgen/internal/diagnostic"
	"kartgen/internal/gen"
)

// Plan is the ordered list of files touched by a batch update.
type Plan struct {
	// Root is the directory target paths are relative to.
	Root string
	// Files lists each target once, in the order it was first needed.
	Files []FileJob
	// Diagnostics contains problems found while building the plan.
	Diagnostics diagnostic.Diagnostics
}

// FileJob is one target file and the operations spliced into it.
type FileJob struct {
	// Rel is the target path relative to the plan root.
	Rel string
	// Path is Rel joined with the plan root.
	Path string
	// Operations are applied in this order.
	Operations []gen.Operation
}

// Operations returns every operation in the plan in execution order.
func (p *Plan) Operations() []gen.Operation {
	var ops []gen.Operation
	for _, f := range p.Files {
		ops = append(ops, f.Operations...)
	}

	return ops
}

// Build resolves names against the known operations and groups them by
// target file under root. An empty names list means the canonical batch.
// Targets maps operation names to relative paths that replace the defaults.
func Build(root string, names []string, targets map[string]string) *Plan {
	p := &Plan{Root: root}

	overrides := resolveTargets(targets, &p.Diagnostics)
	ops := resolveOperations(names, &p.Diagnostics)

	index := make(map[string]int)

	for _, op := range ops {
		rel := op.Target()
		if t, ok := overrides[op]; ok {
			rel = t
		}

		rel = filepath.Clean(filepath.FromSlash(rel))

		i, ok := index[rel]
		if !ok {
			i = len(p.Files)
			index[rel] = i
			p.Files = append(p.Files, FileJob{Rel: rel, Path: filepath.Join(root, rel)})
		}

		p.Files[i].Operations = append(p.Files[i].Operations, op)
	}

	return p
}

func resolveOperations(names []string, diags *diagnostic.Diagnostics) []gen.Operation {
	if len(names) == 0 {
		return gen.Canonical()
	}

	seen := make(map[gen.Operation]bool, len(names))
	ops := make([]gen.Operation, 0, len(names))

	for _, name := range names {
		op, ok := parse(name, "operations", diags)
		if !ok {
			continue
		}

		if seen[op] {
			diags.AddWarning("duplicate_operation", "operation "+strconv.Quote(name)+" requested more than once", 0, name)
			continue
		}

		seen[op] = true
		ops = append(ops, op)
	}

	return ops
}

func resolveTargets(targets map[string]string, diags *diagnostic.Diagnostics) map[gen.Operation]string {
	out := make(map[gen.Operation]string, len(targets))

	for name, path := range targets {
		op, ok := parse(name, "targets", diags)
		if !ok {
			continue
		}

		if path == "" {
			diags.AddError("empty_target", "target path for "+strconv.Quote(name)+" is empty", 0, "targets")
			continue
		}

		out[op] = path
	}

	return out
}

func parse(name, subject string, diags *diagnostic.Diagnostics) (gen.Operation, bool) {
	op, err := gen.ParseOperation(name)
	if err == nil {
		return op, true
	}

	d := diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Code:     "unknown_operation",
		Message:  "unknown operation " + strconv.Quote(name),
		Subject:  subject,
	}

	var unknown *gen.UnknownOperationError
	if errors.As(err, &unknown) {
		d.Suggestions = unknown.Suggestions
	}

	diags.Add(d)

	return 0, false
}
