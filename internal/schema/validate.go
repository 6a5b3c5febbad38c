package schema

import (
	"fmt"
	"unicode"

	"kartgen/internal/diagnostic"
)

// Validate checks a parsed schema for problems that would produce broken or
// ambiguous generated code. Duplicated identifiers and XML tags are errors.
func Validate(s *Schema) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil || len(s.Groups) == 0 {
		res.AddError("empty_schema", "schema has no groups", 0, "")
		return res
	}

	seenTags := map[string]string{}
	seenCamel := map[string]string{}
	seenUnderscore := map[string]string{}

	for _, g := range s.Groups {
		if g.BaseName == "" {
			res.AddError("empty_group_name", "group has no name", g.Line, "")
			continue
		}

		if !isIdent(g.BaseName) {
			res.AddWarning("invalid_group_name",
				fmt.Sprintf("group name %q is not an identifier", g.BaseName), g.Line, g.BaseName)
		}

		if prev, ok := seenTags[g.XMLTag()]; ok {
			res.AddError("duplicate_group",
				fmt.Sprintf("group %q uses the same XML tag %q as group %q", g.BaseName, g.XMLTag(), prev),
				g.Line, g.BaseName)
		} else {
			seenTags[g.XMLTag()] = g.BaseName
		}

		for _, m := range g.Members {
			subject := g.BaseName + "." + m.Name
			if !isIdent(m.Name) {
				res.AddWarning("invalid_member_name",
					fmt.Sprintf("member name %q is not an identifier", m.Name), g.Line, subject)
			}

			ids := Derive(g, m)

			if prev, ok := seenCamel[ids.Camel]; ok {
				res.AddError("duplicate_identifier",
					fmt.Sprintf("accessor name %q is also derived from %s", ids.Camel, prev), g.Line, subject)
			} else {
				seenCamel[ids.Camel] = subject
			}

			if prev, ok := seenUnderscore[ids.Underscore]; ok {
				res.AddError("duplicate_identifier",
					fmt.Sprintf("storage key %q is also derived from %s", ids.Underscore, prev), g.Line, subject)
			} else {
				seenUnderscore[ids.Underscore] = subject
			}
		}
	}

	return res
}

// isIdent checks if a string is a valid C-like identifier.
func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return true
}
