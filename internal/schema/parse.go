package schema

import (
	"fmt"
	"strings"

	"kartgen/internal/diagnostic"
)

// Parse parses schema text into a Schema. It never fails: recoverable
// syntax problems are returned as warnings.
func Parse(src string) (*Schema, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}
	s := &Schema{}

	for i, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		s.Groups = append(s.Groups, parseGroup(line, i+1, diags))
	}

	return s, diags
}

// ParseGroup parses a single "GroupName[: member[, member]*]" line.
func ParseGroup(line string) Group {
	return parseGroup(strings.TrimSpace(line), 0, &diagnostic.Diagnostics{})
}

func parseGroup(line string, lineNo int, diags *diagnostic.Diagnostics) Group {
	pos := strings.Index(line, ":")
	if pos == -1 {
		return Group{BaseName: line, Members: []Member{ParseMember(ImplicitMember)}, Line: lineNo}
	}

	g := Group{BaseName: strings.TrimSpace(line[:pos]), Line: lineNo}

	if list := strings.TrimSpace(line[pos+1:]); list != "" {
		for _, tok := range splitMembers(list) {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				diags.AddWarning("empty_member", "empty member skipped", lineNo, g.BaseName)
				continue
			}

			m := ParseMember(tok)
			checkAnnotation(m, lineNo, g.BaseName, diags)
			g.Members = append(g.Members, m)
		}
	}

	if len(g.Members) == 0 {
		diags.AddWarning("no_members",
			fmt.Sprintf("group has an empty member list, using implicit %q member", ImplicitMember),
			lineNo, g.BaseName)
		g.Members = []Member{ParseMember(ImplicitMember)}
	}

	return g
}

// splitMembers splits a member list on commas outside of parentheses, so
// annotations like "(std::map<int, float>)" stay intact.
func splitMembers(list string) []string {
	var (
		parts []string
		depth int
		start int
	)

	for i, r := range list {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, list[start:i])
				start = i + 1
			}
		}
	}

	// The member at start opened a "(" that never closes. It is not an
	// annotation, so from there on commas are plain separators.
	if depth > 0 {
		return append(parts, strings.Split(list[start:], ",")...)
	}

	return append(parts, list[start:])
}

// ParseMember parses member text such as "power",
// "radius(InterpolationArray)" or "switchRatio(std::vector<float>/floatVector)".
// A "(" without a matching ")" is not an annotation.
func ParseMember(text string) Member {
	text = strings.TrimSpace(text)
	m := Member{Name: text, Type: DefaultType{}, Raw: text}

	open := strings.Index(text, "(")
	if open == -1 {
		return m
	}

	end := strings.Index(text[open:], ")")
	if end == -1 {
		return m
	}

	end += open
	m.Name = strings.TrimSpace(text[:open])

	inner := text[open+1 : end]
	if strings.TrimSpace(inner) == "" {
		return m
	}

	storage, external, found := strings.Cut(inner, "/")
	if !found {
		m.Type = ExplicitType{Storage: strings.TrimSpace(inner)}
		return m
	}

	m.Type = ExplicitType{
		Storage:  strings.TrimSpace(storage),
		External: strings.TrimSpace(external),
	}

	return m
}

// checkAnnotation reports annotation problems that ParseMember tolerated.
func checkAnnotation(m Member, lineNo int, group string, diags *diagnostic.Diagnostics) {
	subject := group + "." + m.Name

	open := strings.Index(m.Raw, "(")
	if open == -1 {
		if strings.Contains(m.Raw, ")") {
			diags.AddWarning("stray_parenthesis",
				fmt.Sprintf("%q has a ')' without '('", m.Raw), lineNo, subject)
		}

		return
	}

	rel := strings.Index(m.Raw[open:], ")")
	if rel == -1 {
		diags.AddWarning("unterminated_annotation",
			fmt.Sprintf("unterminated type annotation in %q, using %s", m.Raw, DefaultScalar),
			lineNo, subject)

		return
	}

	end := open + rel
	inner := m.Raw[open+1 : end]

	if strings.TrimSpace(inner) == "" {
		diags.AddWarning("empty_annotation",
			fmt.Sprintf("empty type annotation in %q, using %s", m.Raw, DefaultScalar), lineNo, subject)
	}

	if strings.Count(inner, "/") > 1 {
		diags.AddWarning("ambiguous_annotation",
			fmt.Sprintf("type annotation %q has more than one '/', external type is %q", inner, m.ExternalType()),
			lineNo, subject)
	}

	if rest := strings.TrimSpace(m.Raw[end+1:]); rest != "" {
		diags.AddWarning("trailing_text",
			fmt.Sprintf("text %q after type annotation ignored", rest), lineNo, subject)
	}
}
