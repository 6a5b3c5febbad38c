package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_BareGroupHasImplicitMember(t *testing.T) {
	s, diags := Parse("Mass")

	require.Empty(t, diags.Warnings)
	require.Len(t, s.Groups, 1)

	g := s.Groups[0]
	assert.Equal(t, "Mass", g.BaseName)
	require.Len(t, g.Members, 1)

	m := g.Members[0]
	assert.Equal(t, "value", m.Name)
	assert.True(t, m.IsImplicit())
	assert.Equal(t, DefaultType{}, m.Type)
	assert.Equal(t, "float", m.StorageType())
	assert.Equal(t, "float", m.ExternalType())
}

func TestParseMember(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantName     string
		wantStorage  string
		wantExternal string
		wantType     TypeAnnotation
	}{
		{
			name:         "no annotation",
			input:        "stiffness",
			wantName:     "stiffness",
			wantStorage:  "float",
			wantExternal: "float",
			wantType:     DefaultType{},
		},
		{
			name:         "storage and external",
			input:        "switchRatio(std::vector<float>/floatVector)",
			wantName:     "switchRatio",
			wantStorage:  "std::vector<float>",
			wantExternal: "floatVector",
			wantType:     ExplicitType{Storage: "std::vector<float>", External: "floatVector"},
		},
		{
			name:         "storage only",
			input:        "radius(InterpolationArray)",
			wantName:     "radius",
			wantStorage:  "InterpolationArray",
			wantExternal: "InterpolationArray",
			wantType:     ExplicitType{Storage: "InterpolationArray"},
		},
		{
			name:         "surrounding whitespace",
			input:        "  expSpringResponse ( bool )  ",
			wantName:     "expSpringResponse",
			wantStorage:  "bool",
			wantExternal: "bool",
			wantType:     ExplicitType{Storage: "bool"},
		},
		{
			name:         "unterminated annotation",
			input:        "radius(InterpolationArray",
			wantName:     "radius(InterpolationArray",
			wantStorage:  "float",
			wantExternal: "float",
			wantType:     DefaultType{},
		},
		{
			name:         "empty annotation",
			input:        "radius()",
			wantName:     "radius",
			wantStorage:  "float",
			wantExternal: "float",
			wantType:     DefaultType{},
		},
		{
			name:         "multiple slashes",
			input:        "x(a/b/c)",
			wantName:     "x",
			wantStorage:  "a",
			wantExternal: "b/c",
			wantType:     ExplicitType{Storage: "a", External: "b/c"},
		},
		{
			name:         "external only",
			input:        "x(/floatVector)",
			wantName:     "x",
			wantStorage:  "float",
			wantExternal: "floatVector",
			wantType:     ExplicitType{External: "floatVector"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ParseMember(tt.input)
			assert.Equal(t, tt.wantName, m.Name)
			assert.Equal(t, tt.wantStorage, m.StorageType())
			assert.Equal(t, tt.wantExternal, m.ExternalType())
			assert.Equal(t, tt.wantType, m.Type)
		})
	}
}

func TestParseGroup(t *testing.T) {
	g := ParseGroup("  Gear: switchRatio(std::vector<float>/floatVector),  powerIncrease ")

	assert.Equal(t, "Gear", g.BaseName)
	require.Len(t, g.Members, 2)
	assert.Equal(t, "switchRatio", g.Members[0].Name)
	assert.Equal(t, "floatVector", g.Members[0].ExternalType())
	assert.Equal(t, "powerIncrease", g.Members[1].Name)
	assert.Equal(t, "float", g.Members[1].StorageType())
}

func TestParseGroup_CommaInsideAnnotation(t *testing.T) {
	g := ParseGroup("Table: lookup(std::map<int, float>/floatMap), other")

	require.Len(t, g.Members, 2)
	assert.Equal(t, "lookup", g.Members[0].Name)
	assert.Equal(t, "std::map<int, float>", g.Members[0].StorageType())
	assert.Equal(t, "other", g.Members[1].Name)
}

func TestParse_PreservesOrder(t *testing.T) {
	s, _ := Parse("G1: a, b\nG2: c, d\n")

	require.Len(t, s.Groups, 2)
	assert.Equal(t, "G1", s.Groups[0].BaseName)
	assert.Equal(t, "G2", s.Groups[1].BaseName)

	var names []string
	for _, e := range s.Entries() {
		names = append(names, e.Group.BaseName+"."+e.Member.Name)
	}

	assert.Equal(t, []string{"G1.a", "G1.b", "G2.c", "G2.d"}, names)
	assert.Equal(t, 4, s.Len())
}

func TestParse_SkipsBlankAndCommentLines(t *testing.T) {
	s, diags := Parse("# comment\n\n  \r\nEngine: power\r\n# trailing\n")

	assert.Empty(t, diags.Warnings)
	require.Len(t, s.Groups, 1)
	assert.Equal(t, "Engine", s.Groups[0].BaseName)
	assert.Equal(t, 4, s.Groups[0].Line)
}

func TestParse_Warnings(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantCode string
	}{
		{"empty member", "Engine: power,, maxSpeed", "empty_member"},
		{"empty member list", "Mass:", "no_members"},
		{"unterminated", "Turn: radius(InterpolationArray", "unterminated_annotation"},
		{"stray close", "Turn: radius)", "stray_parenthesis"},
		{"empty annotation", "Turn: radius()", "empty_annotation"},
		{"ambiguous", "Turn: radius(a/b/c)", "ambiguous_annotation"},
		{"trailing text", "Turn: radius(float) extra", "trailing_text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, diags := Parse(tt.src)

			require.NotNil(t, s)
			assert.False(t, diags.HasErrors())
			require.NotEmpty(t, diags.Warnings)
			assert.Equal(t, tt.wantCode, diags.Warnings[0].Code)
			assert.Equal(t, 1, diags.Warnings[0].Line)
		})
	}
}

func TestParse_UnbalancedParenthesisKeepsCommaSplit(t *testing.T) {
	s, _ := Parse("Turn: radius(InterpolationArray, timeResetSteer")

	require.Len(t, s.Groups, 1)
	require.Len(t, s.Groups[0].Members, 2)
	assert.Equal(t, "radius(InterpolationArray", s.Groups[0].Members[0].Name)
	assert.Equal(t, "timeResetSteer", s.Groups[0].Members[1].Name)
}

func TestParseGroup_UnbalancedParenthesisAfterAnnotatedMember(t *testing.T) {
	g := ParseGroup("Table: lookup(std::map<int, float>/floatMap), other(, rest")

	require.Len(t, g.Members, 3)

	lookup := g.Members[0]
	assert.Equal(t, "lookup", lookup.Name)
	assert.Equal(t, "std::map<int, float>", lookup.StorageType())
	assert.Equal(t, "floatMap", lookup.ExternalType())

	assert.Equal(t, "other(", g.Members[1].Name)
	assert.Equal(t, DefaultType{}, g.Members[1].Type)
	assert.Equal(t, DefaultScalar, g.Members[1].StorageType())

	assert.Equal(t, "rest", g.Members[2].Name)
}

func TestParse_UnbalancedParenthesisWarnsOnlyForItsMember(t *testing.T) {
	s, diags := Parse("Table: lookup(std::map<int, float>/floatMap), other(")

	require.Len(t, s.Groups[0].Members, 2)
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "unterminated_annotation", diags.Warnings[0].Code)
	assert.Equal(t, "Table.other(", diags.Warnings[0].Subject)
}

func TestParse_EmptyMemberListGetsImplicitMember(t *testing.T) {
	s, _ := Parse("Mass:")

	require.Len(t, s.Groups[0].Members, 1)
	assert.True(t, s.Groups[0].Members[0].IsImplicit())
}
