package textcase

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words tokenizes s into its constituent words. Boundaries are delimiter
// characters, lower-to-upper transitions, letter/digit transitions, and the
// last uppercase rune of an acronym run followed by a lowercase rune.
func Words(s string) []string {
	var words []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isDelimiter(r) {
			flush()
			continue
		}

		if len(current) > 0 {
			prev := current[len(current)-1]
			switch {
			// lower or digit followed by upper: wordEnd|NewWord
			case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
				flush()
			// acronym run ends one rune before an upper+lower pair: HTTP|Server
			case unicode.IsUpper(prev) && unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				flush()
			// letter/digit transitions split both ways
			case unicode.IsDigit(r) != unicode.IsDigit(prev):
				flush()
			}
		}
		current = append(current, r)
	}
	flush()
	return words
}

func isDelimiter(r rune) bool {
	switch r {
	case ' ', '-', '_', '.', '/', '\t', '\n':
		return true
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(w string) string {
	r := []rune(strings.ToLower(w))
	if len(r) == 0 {
		return ""
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// ToCamel converts s to camelCase.
func ToCamel(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToPascal converts s to PascalCase.
func ToPascal(s string) string {
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToSnake converts s to snake_case.
func ToSnake(s string) string {
	return joinLower(s, "_")
}

// ToScreamingSnake converts s to SCREAMING_SNAKE_CASE.
func ToScreamingSnake(s string) string {
	return strings.ToUpper(joinLower(s, "_"))
}

// ToKebab converts s to kebab-case.
func ToKebab(s string) string {
	return joinLower(s, "-")
}

// ToTrain converts s to Train-Case.
func ToTrain(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, "-")
}

// ToTitle converts s to space-separated Title Case. Every word is
// capitalized, including articles and prepositions.
func ToTitle(s string) string {
	// Casers are stateful and must not be shared between goroutines.
	titleCaser := cases.Title(language.English)
	words := Words(s)
	for i, w := range words {
		words[i] = titleCaser.String(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

func joinLower(s, sep string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}
