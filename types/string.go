package types

import "strings"

// String holds an immutable sequence of Unicode scalar values. Runes are
// stored pre-decoded so Len and indexing operate in scalars, not bytes,
// per §3.
type String struct {
	runes []rune
}

func NewString(s string) String { return String{runes: []rune(s)} }

func newStringFromRunes(r []rune) String { return String{runes: r} }

func (s String) Kind() Kind { return KindString }

func (s String) Raw() string { return string(s.runes) }

func (s String) Len() int { return len(s.runes) }

// At returns the scalar at index i (0-based).
func (s String) At(i int) (rune, bool) {
	if i < 0 || i >= len(s.runes) {
		return 0, false
	}
	return s.runes[i], true
}

func (s String) ToString() string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s.runes {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func (s String) Fmt() string { return string(s.runes) }

func (s String) Truthy() bool { return true }

func (s String) Equal(o Value) bool {
	os, ok := o.(String)
	if !ok || len(os.runes) != len(s.runes) {
		return false
	}
	for i := range s.runes {
		if s.runes[i] != os.runes[i] {
			return false
		}
	}
	return true
}

// Concat returns the concatenation of s and other.
func (s String) Concat(other String) String {
	out := make([]rune, 0, len(s.runes)+len(other.runes))
	out = append(out, s.runes...)
	out = append(out, other.runes...)
	return newStringFromRunes(out)
}
