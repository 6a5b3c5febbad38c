package schema

import (
	"strings"

	"kartgen/internal/naming"
)

// DefaultScalar is the storage and external type of members without a type
// annotation.
const DefaultScalar = "float"

// ImplicitMember is the name of the single member of a group declared
// without a member list.
const ImplicitMember = "value"

// Schema is an ordered list of groups.
type Schema struct {
	// Version identifies the schema revision (empty for ad-hoc schemas).
	Version string
	Groups  []Group
}

// Group is one topic of the schema, e.g. "Suspension".
type Group struct {
	BaseName string
	Members  []Member
	// Line is the 1-based line the group was declared on.
	Line int
}

// Member is one typed attribute of a group.
type Member struct {
	Name string
	Type TypeAnnotation
	// Raw is the member text as written in the schema.
	Raw string
}

// TypeAnnotation is either DefaultType or ExplicitType.
type TypeAnnotation interface {
	isTypeAnnotation()
}

// DefaultType marks a member declared without a type annotation.
type DefaultType struct{}

// ExplicitType holds the types given by a "(storage/external)" annotation.
// An empty External means the annotation only named the storage type.
type ExplicitType struct {
	Storage  string
	External string
}

func (DefaultType) isTypeAnnotation()  {}
func (ExplicitType) isTypeAnnotation() {}

// StorageType returns the type used to hold the value.
func (m Member) StorageType() string {
	if t, ok := m.Type.(ExplicitType); ok && t.Storage != "" {
		return t.Storage
	}

	return DefaultScalar
}

// ExternalType returns the type tag used by reflective access paths.
func (m Member) ExternalType() string {
	if t, ok := m.Type.(ExplicitType); ok && t.External != "" {
		return t.External
	}

	return m.StorageType()
}

// IsImplicit reports whether m is the implicit "value" member.
func (m Member) IsImplicit() bool {
	return m.Name == ImplicitMember
}

// Words returns the words the member contributes to composed identifiers.
func (m Member) Words() []string {
	if m.IsImplicit() {
		return nil
	}

	return naming.SplitWords(m.Name)
}

// Words returns the words of the group name.
func (g Group) Words() []string {
	return naming.SplitWords(g.BaseName)
}

// Title returns the group name for comments, e.g. "Slipstream".
func (g Group) Title() string {
	return naming.Title(g.BaseName)
}

// XMLTag returns the name of the XML node holding the group's attributes.
func (g Group) XMLTag() string {
	return strings.ToLower(g.BaseName)
}

// Identifiers are the names derived for one (group, member) pair.
type Identifiers struct {
	// Camel is used for accessor names, e.g. "EngineMaxSpeed".
	Camel string
	// Underscore is used for storage keys, e.g. "engine_max_speed".
	Underscore string
	// Constant is the enum constant, e.g. "ENGINE_MAX_SPEED".
	Constant string
	// XMLAttribute is the attribute read by the XML loader, e.g. "max-speed".
	XMLAttribute string
}

// Derive computes the identifiers of member m in group g.
func Derive(g Group, m Member) Identifiers {
	words := append(g.Words(), m.Words()...)

	return Identifiers{
		Camel:        naming.Camel(words...),
		Underscore:   naming.Underscore(words...),
		Constant:     naming.Constant(words...),
		XMLAttribute: naming.Hyphen(naming.SplitWords(m.Name)...),
	}
}

// TypeTag returns the type-tag constant for the member's external type,
// e.g. "floatVector" -> "TYPE_FLOAT_VECTOR".
func (m Member) TypeTag() string {
	return "TYPE_" + naming.Constant(naming.SplitWords(m.ExternalType())...)
}

// Entry is a (group, member) pair in schema order.
type Entry struct {
	Group  *Group
	Member *Member
	Identifiers
}

// Entries returns every (group, member) pair in declaration order.
func (s *Schema) Entries() []Entry {
	var out []Entry

	for gi := range s.Groups {
		g := &s.Groups[gi]
		for mi := range g.Members {
			m := &g.Members[mi]
			out = append(out, Entry{Group: g, Member: m, Identifiers: Derive(*g, *m)})
		}
	}

	return out
}

// Len returns the total number of members.
func (s *Schema) Len() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Members)
	}

	return n
}
