// Package naming implements the two name transforms between in-memory
// camelCase field and relationship identifiers and their on-wire
// dash-case form.
package naming

import (
	"strings"
	"unicode"
)

// ToWireName lowers the leading character of an in-memory camelCase name,
// then interposes a dash at every lower-to-upper transition and lowers
// the upper character. "ownerId" becomes "owner-id".
func ToWireName(name string) string {
	if name == "" {
		return name
	}
	src := []rune(name)
	var b strings.Builder
	b.Grow(len(src) + 2)
	for i, r := range src {
		if i == 0 {
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if unicode.IsUpper(r) && unicode.IsLower(src[i-1]) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToMemoryName is the inverse of ToWireName: split on '-', capitalize
// every segment past the first, and concatenate. "owner-id" becomes
// "ownerId".
func ToMemoryName(name string) string {
	segments := strings.Split(name, "-")
	var b strings.Builder
	b.Grow(len(name))
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		if i == 0 {
			b.WriteString(seg)
			continue
		}
		r := []rune(seg)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// EqualFold reports whether an in-memory field name matches a wire-form
// name once the wire name has been converted with ToMemoryName, per the
// case-insensitive final match callers expect.
func EqualFold(fieldName, wireName string) bool {
	return strings.EqualFold(fieldName, ToMemoryName(wireName))
}
