package schema

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
)

// DefaultVersion is the revision of the embedded kart characteristics schema.
const DefaultVersion = "1"

//go:embed kart_characteristics.txt
var defaultSource string

// DefaultSource returns the embedded kart characteristics schema text.
func DefaultSource() string {
	return defaultSource
}

// Default parses the embedded kart characteristics schema.
func Default() (*Schema, error) {
	s, err := Load(defaultSource)
	if err != nil {
		return nil, fmt.Errorf("embedded schema: %w", err)
	}

	s.Version = DefaultVersion

	return s, nil
}

// Load parses and validates schema text. Warnings are logged; errors fail
// the load.
func Load(src string) (*Schema, error) {
	s, diags := Parse(src)
	diags.Merge(Validate(s))
	diags.Log(slog.Default())

	if err := diags.Err(); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	return s, nil
}

// LoadFile loads a schema from the given path.
func LoadFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	s, err := Load(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Resolve loads the schema at path, or the embedded schema if path is empty.
func Resolve(path string) (*Schema, error) {
	if path == "" {
		return Default()
	}

	return LoadFile(path)
}
