package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name   string
		group  string
		member string
		want   Identifiers
	}{
		{
			name:   "two words",
			group:  "Engine",
			member: "maxSpeed",
			want: Identifiers{
				Camel:        "EngineMaxSpeed",
				Underscore:   "engine_max_speed",
				Constant:     "ENGINE_MAX_SPEED",
				XMLAttribute: "max-speed",
			},
		},
		{
			name:   "implicit member",
			group:  "Mass",
			member: "value",
			want: Identifiers{
				Camel:        "Mass",
				Underscore:   "mass",
				Constant:     "MASS",
				XMLAttribute: "value",
			},
		},
		{
			name:   "acronym",
			group:  "Suspension",
			member: "travelCM",
			want: Identifiers{
				Camel:        "SuspensionTravelCM",
				Underscore:   "suspension_travel_cm",
				Constant:     "SUSPENSION_TRAVEL_CM",
				XMLAttribute: "travel-cm",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Group{BaseName: tt.group}
			m := ParseMember(tt.member)

			assert.Equal(t, tt.want, Derive(g, m))
		})
	}
}

func TestMember_TypeTag(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"power", "TYPE_FLOAT"},
		{"expSpringResponse(bool)", "TYPE_BOOL"},
		{"switchRatio(std::vector<float>/floatVector)", "TYPE_FLOAT_VECTOR"},
		{"radius(InterpolationArray)", "TYPE_INTERPOLATION_ARRAY"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMember(tt.input).TypeTag())
		})
	}
}

func TestGroup_NamesForGeneratedCode(t *testing.T) {
	g := Group{BaseName: "SlipStream"}

	assert.Equal(t, "Slipstream", g.Title())
	assert.Equal(t, "slipstream", g.XMLTag())
}
