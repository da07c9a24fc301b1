// Package naming provides the case conversion and inflection helpers used to
// derive table, class and display names.
package naming

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Plural returns the English plural of word.
func Plural(word string) string {
	if word == "" {
		return ""
	}
	return inflection.Plural(word)
}

// Singular returns the English singular of word.
func Singular(word string) string {
	if word == "" {
		return ""
	}
	return inflection.Singular(word)
}

// Snake converts s to snake_case.
// Examples: userName -> user_name, UserName -> user_name, HTTPServer -> http_server
func Snake(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				prev := runes[i-1]
				if unicode.IsLower(prev) || unicode.IsDigit(prev) {
					b.WriteByte('_')
				} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
		case r == '-' || r == ' ':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Studly converts s to StudlyCase: user_profile -> UserProfile.
func Studly(s string) string {
	var b strings.Builder
	for _, part := range splitWords(Snake(s)) {
		b.WriteString(upperFirst(part))
	}
	return b.String()
}

// ProperName turns a column or table name into a display title:
// user_id -> "User Id", createdAt -> "Created At".
func ProperName(s string) string {
	parts := strings.Split(Snake(s), "_")
	for i, p := range parts {
		parts[i] = upperFirst(p)
	}
	return strings.Join(parts, " ")
}

// ClassBasename strips any namespace from a class name:
// App\Http\Controllers\UserController -> UserController.
func ClassBasename(name string) string {
	if i := strings.LastIndexAny(name, `\/`); i >= 0 {
		return name[i+1:]
	}
	return name
}

// upperFirst upper-cases the first letter of s and leaves the rest alone.
func upperFirst(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == '_' })
}
