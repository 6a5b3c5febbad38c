package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"kartgen/internal/schema"
)

// Projection is the kind of text an operation emits. Several operations
// share a projection and differ only in their target file.
type Projection int

const (
	_ Projection = iota // skip zero value, use it as an invalid Projection

	ProjectEnum         // enum
	ProjectDeclarations // declarations
	ProjectGetters      // getters
	ProjectForwarders   // forwarders
	ProjectTypeSwitch   // type-switch
	ProjectNameSwitch   // name-switch
	ProjectXMLLoader    // xml-loader
)

// ErrUnknownProjection is returned when rendering an invalid Projection.
var ErrUnknownProjection = errors.New("unknown projection")

// Options tune the generated text.
type Options struct {
	// Align pads accessor names in declarations to the widest name in the
	// schema.
	Align bool
	// CharacteristicClass owns the generic process() lookup and its getters.
	CharacteristicClass string
	// PropertiesClass owns the forwarding getters.
	PropertiesClass string
	// CacheMember is the PropertiesClass member the getters forward to.
	CacheMember string
	// ValuesMember is the array the XML loader stores raw values in.
	ValuesMember string
}

// DefaultOptions returns the options matching the kart sources.
func DefaultOptions() Options {
	return Options{
		CharacteristicClass: "AbstractCharacteristic",
		PropertiesClass:     "KartProperties",
		CacheMember:         "m_cached_characteristic",
		ValuesMember:        "m_values",
	}
}

// withDefaults fills empty names from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.CharacteristicClass == "" {
		o.CharacteristicClass = d.CharacteristicClass
	}

	if o.PropertiesClass == "" {
		o.PropertiesClass = d.PropertiesClass
	}

	if o.CacheMember == "" {
		o.CacheMember = d.CacheMember
	}

	if o.ValuesMember == "" {
		o.ValuesMember = d.ValuesMember
	}

	return o
}

// projectionData holds all data needed by the projection templates.
type projectionData struct {
	Options
	Groups []groupData
}

type groupData struct {
	Title   string
	XMLTag  string
	Entries []entryData
}

type entryData struct {
	schema.Identifiers
	StorageType string
	TypeTag     string
	// Name is the Camel name, padded when aligning.
	Name string
}

// buildProjectionData flattens the schema into template data, keeping group
// and member order.
func buildProjectionData(s *schema.Schema, opts Options) *projectionData {
	data := &projectionData{Options: opts.withDefaults()}

	width := 0
	if opts.Align {
		for _, e := range s.Entries() {
			width = max(width, len(e.Camel))
		}
	}

	for _, g := range s.Groups {
		gd := groupData{Title: g.Title(), XMLTag: g.XMLTag()}

		for _, m := range g.Members {
			ids := schema.Derive(g, m)
			gd.Entries = append(gd.Entries, entryData{
				Identifiers: ids,
				StorageType: m.StorageType(),
				TypeTag:     m.TypeTag(),
				Name:        fmt.Sprintf("%-*s", width, ids.Camel),
			})
		}

		data.Groups = append(data.Groups, gd)
	}

	return data
}

// Render writes the projection of s to w.
func (p Projection) Render(w io.Writer, s *schema.Schema, opts Options) error {
	tmpl, ok := projectionTemplates[p]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProjection, p)
	}

	if err := tmpl.Execute(w, buildProjectionData(s, opts)); err != nil {
		return fmt.Errorf("executing %s template: %w", p, err)
	}

	return nil
}

// Project returns the text emitted by op for schema s, without trailing
// newlines.
func Project(s *schema.Schema, op Operation, opts Options) (string, error) {
	if !op.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}

	var buf bytes.Buffer
	if err := op.Projection().Render(&buf, s, opts); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}
