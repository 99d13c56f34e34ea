package types

import "strings"

// List is an ordered, immutable sequence of values.
type List struct {
	Elems []Value
}

func NewList(elems []Value) List {
	if elems == nil {
		elems = []Value{}
	}
	return List{Elems: elems}
}

func (l List) Kind() Kind { return KindList }

func (l List) ToString() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range l.Elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.ToString())
	}
	b.WriteByte(']')
	return b.String()
}

func (l List) Fmt() string { return l.ToString() }

func (l List) Truthy() bool { return true }

func (l List) Equal(o Value) bool {
	ol, ok := o.(List)
	if !ok || len(ol.Elems) != len(l.Elems) {
		return false
	}
	for i := range l.Elems {
		if !l.Elems[i].Equal(ol.Elems[i]) {
			return false
		}
	}
	return true
}

// Concat returns the concatenation of l and other.
func (l List) Concat(other List) List {
	out := make([]Value, 0, len(l.Elems)+len(other.Elems))
	out = append(out, l.Elems...)
	out = append(out, other.Elems...)
	return List{Elems: out}
}
