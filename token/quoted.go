package token

import "strings"

// NeedsQuote reports whether v must be quoted to be read back as a single
// unquoted string.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	for i := 0; i < len(v); i++ {
		if !IsUnquotedChar(v[i]) {
			return true
		}
	}
	return false
}

// Quote quotes v with double quotes, or with single quotes when v holds a
// double quote before any single quote. Backslashes and the chosen quote
// are escaped.
func Quote(v string) string {
	q := byte('"')
	if i := strings.IndexAny(v, `"'`); i >= 0 && v[i] == '"' {
		q = '\''
	}
	b := &strings.Builder{}
	b.Grow(len(v) + 2)
	b.WriteByte(q)
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == q || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte(q)
	return b.String()
}

// QuoteIfNeeded returns v unchanged when it can be read back unquoted.
func QuoteIfNeeded(v string) string {
	if NeedsQuote(v) {
		return Quote(v)
	}
	return v
}
