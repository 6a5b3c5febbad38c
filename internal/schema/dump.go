package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a serialization format for Dump.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
	FormatJSON  Format = "json"
	FormatDebug Format = "debug"
)

// ErrUnknownFormat is returned for an unsupported dump format.
var ErrUnknownFormat = errors.New("unknown format")

// Formats lists the supported dump formats.
func Formats() []Format {
	return []Format{FormatYAML, FormatTOML, FormatJSON, FormatDebug}
}

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w %q", ErrUnknownFormat, name)
}

// document is the serialized view of a schema, derived names included.
type document struct {
	Version string     `yaml:"version,omitempty" toml:"version,omitempty" json:"version,omitempty"`
	Groups  []groupDoc `yaml:"groups" toml:"groups" json:"groups"`
}

type groupDoc struct {
	Name    string      `yaml:"name" toml:"name" json:"name"`
	XMLTag  string      `yaml:"xml_tag" toml:"xml_tag" json:"xml_tag"`
	Members []memberDoc `yaml:"members" toml:"members" json:"members"`
}

type memberDoc struct {
	Name         string `yaml:"name" toml:"name" json:"name"`
	StorageType  string `yaml:"storage_type" toml:"storage_type" json:"storage_type"`
	ExternalType string `yaml:"external_type" toml:"external_type" json:"external_type"`
	Annotated    bool   `yaml:"annotated" toml:"annotated" json:"annotated"`
	Accessor     string `yaml:"accessor" toml:"accessor" json:"accessor"`
	Key          string `yaml:"key" toml:"key" json:"key"`
	Constant     string `yaml:"constant" toml:"constant" json:"constant"`
	TypeTag      string `yaml:"type_tag" toml:"type_tag" json:"type_tag"`
	XMLAttribute string `yaml:"xml_attribute" toml:"xml_attribute" json:"xml_attribute"`
}

func newDocument(s *Schema) document {
	doc := document{Version: s.Version, Groups: make([]groupDoc, 0, len(s.Groups))}

	for _, g := range s.Groups {
		gd := groupDoc{Name: g.BaseName, XMLTag: g.XMLTag(), Members: make([]memberDoc, 0, len(g.Members))}

		for _, m := range g.Members {
			ids := Derive(g, m)
			_, annotated := m.Type.(ExplicitType)

			gd.Members = append(gd.Members, memberDoc{
				Name:         m.Name,
				StorageType:  m.StorageType(),
				ExternalType: m.ExternalType(),
				Annotated:    annotated,
				Accessor:     "get" + ids.Camel,
				Key:          ids.Underscore,
				Constant:     ids.Constant,
				TypeTag:      m.TypeTag(),
				XMLAttribute: ids.XMLAttribute,
			})
		}

		doc.Groups = append(doc.Groups, gd)
	}

	return doc
}

// Dump writes the schema, including every derived identifier, in the given
// format.
func Dump(w io.Writer, s *Schema, format Format) error {
	doc := newDocument(s)

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}

		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}

		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}

		return nil
	case FormatDebug:
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
		cfg.Fdump(w, s)

		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}
