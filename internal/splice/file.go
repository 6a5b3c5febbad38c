package splice

import (
	"errors"
	"fmt"
	"os"

	"kartgen/internal/gen"
)

// File is the before and after content of one spliced file.
type File struct {
	Path     string
	Original string
	Updated  string
}

// Changed reports whether splicing altered the file.
func (f *File) Changed() bool {
	return f.Original != f.Updated
}

// Prepare reads path once and applies edits in memory. Nothing is written.
func Prepare(path string, edits []Edit) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read target: %w", err)
	}

	updated, err := Apply(string(data), edits)
	if err != nil {
		var me *MarkerError
		if errors.As(err, &me) {
			me.Path = path
		}

		return nil, err
	}

	return &File{Path: path, Original: string(data), Updated: updated}, nil
}

// Write stores the updated content when it differs from the original.
func (f *File) Write() (bool, error) {
	if !f.Changed() {
		return false, nil
	}

	if err := gen.WriteFileAtomic(f.Path, []byte(f.Updated)); err != nil {
		return false, fmt.Errorf("write %s: %w", f.Path, err)
	}

	return true, nil
}

// SpliceFile applies edits to the file at path and writes it back once if
// anything changed. On any marker error the file is left untouched.
func SpliceFile(path string, edits []Edit) (bool, error) {
	f, err := Prepare(path, edits)
	if err != nil {
		return false, err
	}

	return f.Write()
}
