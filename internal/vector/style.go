package vector

import (
	"strings"
)

// styleEntry is one token of a parsed style string: either a key:value
// declaration or a verbatim token that carried no colon.
type styleEntry struct {
	key   string // empty for verbatim tokens
	value string
	raw   string // set only for verbatim tokens
}

// Style is a parsed SVG style attribute: an ordered sequence of key:value
// declarations. Keys are matched case-insensitively. Tokens that are not
// key:value pairs are preserved verbatim so that re-serializing a style
// never loses information this package does not understand.
type Style struct {
	entries []styleEntry
}

// ParseStyle splits a semicolon-separated style string into an ordered
// Style. Whitespace around keys and values is trimmed; empty tokens are
// dropped.
func ParseStyle(s string) Style {
	var st Style
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, found := strings.Cut(part, ":")
		if !found {
			st.entries = append(st.entries, styleEntry{raw: part})
			continue
		}
		st.entries = append(st.entries, styleEntry{
			key:   strings.TrimSpace(k),
			value: strings.TrimSpace(v),
		})
	}
	return st
}

// Get returns the value of the first declaration whose key matches
// case-insensitively, and whether one was found. First-match lookup mirrors
// how the rest of the pipeline reads styles; writes are last-wins (see Set).
func (st Style) Get(key string) (string, bool) {
	for _, e := range st.entries {
		if e.raw == "" && strings.EqualFold(e.key, key) {
			return e.value, true
		}
	}
	return "", false
}

// Set rewrites the value of every declaration matching key (preserving each
// declaration's position and original key spelling) or appends a new
// declaration when none matches. Rewriting all occurrences keeps duplicate
// keys consistent, so the serialized last-wins CSS precedence agrees with
// the first-match Get.
func (st *Style) Set(key, value string) {
	found := false
	for i, e := range st.entries {
		if e.raw == "" && strings.EqualFold(e.key, key) {
			st.entries[i].value = value
			found = true
		}
	}
	if !found {
		st.entries = append(st.entries, styleEntry{key: key, value: value})
	}
}

// Len reports the number of tokens, verbatim ones included.
func (st Style) Len() int {
	return len(st.entries)
}

// String serializes the style back to attribute form, preserving insertion
// order and verbatim tokens.
func (st Style) String() string {
	parts := make([]string, 0, len(st.entries))
	for _, e := range st.entries {
		if e.raw != "" {
			parts = append(parts, e.raw)
			continue
		}
		parts = append(parts, e.key+":"+e.value)
	}
	return strings.Join(parts, ";")
}
