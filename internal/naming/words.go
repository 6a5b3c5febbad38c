package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SplitWords splits a camelCase or CamelCase identifier into words.
// Examples:
//   - "maxSpeed" -> ["max", "Speed"]
//   - "travelCM" -> ["travel", "CM"]
//   - "XMLNode" -> ["XML", "Node"]
//   - "std::vector<float>" -> ["std", "vector", "float"]
//
// The words keep their original case.
func SplitWords(s string) []string {
	if s == "" {
		return nil
	}

	var (
		words   []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return words
}

// isSeparator reports whether r never belongs to a word.
func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// startsWord determines if a new word begins at position i.
func startsWord(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "maxSpeed": split before 'S'.
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLNode": the acronym ends before 'N'.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// Camel capitalizes the first rune of every word and concatenates them.
func Camel(words ...string) string {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(capitalize(w))
	}

	return b.String()
}

// Underscore joins the lowercased words with "_".
func Underscore(words ...string) string {
	return join(words, "_", strings.ToLower)
}

// Constant joins the uppercased words with "_".
func Constant(words ...string) string {
	return join(words, "_", strings.ToUpper)
}

// Hyphen joins the lowercased words with "-".
func Hyphen(words ...string) string {
	return join(words, "-", strings.ToLower)
}

// Title returns s with its first letter upper case and the rest lower case,
// e.g. "SlipStream" -> "Slipstream".
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}

	return string(unicode.ToUpper(r)) + w[size:]
}

func join(words []string, sep string, fold func(string) string) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}

		parts = append(parts, fold(w))
	}

	return strings.Join(parts, sep)
}
