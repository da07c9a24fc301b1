// Package tag replaces {{key}} placeholders in fragment text.
package tag

import (
	"regexp"
	"strings"
)

// Map is an ordered placeholder key -> replacement mapping.
// The zero value is ready to use.
type Map struct {
	keys []string
	vals map[string]string
}

// FromPairs builds a Map from alternating key, value arguments.
// A trailing key without a value is ignored.
func FromPairs(kv ...string) Map {
	var m Map
	for i := 0; i+1 < len(kv); i += 2 {
		m.Set(kv[i], kv[i+1])
	}
	return m
}

// Set assigns value to key. An existing key keeps its position.
func (m *Map) Set(key, value string) {
	if m.vals == nil {
		m.vals = make(map[string]string)
	}
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = value
}

// Get returns the value stored for key.
func (m Map) Get(key string) (string, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m Map) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of entries.
func (m Map) Len() int { return len(m.keys) }

// Merge returns a new Map holding every entry of maps. On a key collision the
// later map's value wins and the key keeps the position it was first seen at.
func Merge(maps ...Map) Map {
	var out Map
	for _, m := range maps {
		for _, k := range m.keys {
			out.Set(k, m.vals[k])
		}
	}
	return out
}

// Placeholder returns the literal form of key, e.g. "{{name}}".
func Placeholder(key string) string {
	return "{{" + key + "}}"
}

// Substitute replaces every placeholder of m in text in a single pass.
// Replacement text is not scanned again, and placeholders without an entry
// in m are left as they are.
func Substitute(text string, m Map) string {
	if m.Len() == 0 || text == "" {
		return text
	}
	pairs := make([]string, 0, 2*m.Len())
	for _, k := range m.keys {
		pairs = append(pairs, Placeholder(k), m.vals[k])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// SubstituteOne replaces the placeholder for a single key.
func SubstituteOne(text, key, value string) string {
	return strings.ReplaceAll(text, Placeholder(key), value)
}

var placeholderRe = regexp.MustCompile(`\{\{(&?[A-Za-z_][A-Za-z0-9_-]*)\}\}`)

// Unresolved lists the distinct identifier-shaped placeholders left in text,
// in order of first appearance. Template echoes such as "{{ $user->name }}"
// are not identifiers and are not reported.
func Unresolved(text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range placeholderRe.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out
}
