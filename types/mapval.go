package types

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is an insertion-ordered, string-keyed mapping. Keys are interned
// Symbols (§3: "identity-of-interned-symbol" equality); the backing
// store is go-ordered-map so iteration order always matches insertion
// order, including after a splat merge.
type Map struct {
	om *orderedmap.OrderedMap[Symbol, Value]
}

// NewMap returns an empty map.
func NewMap() Map {
	return Map{om: orderedmap.New[Symbol, Value]()}
}

// Set inserts or overwrites key, preserving the key's original
// insertion position when it already exists.
func (m Map) Set(key Symbol, v Value) {
	m.om.Set(key, v)
}

// Get looks up key.
func (m Map) Get(key Symbol) (Value, bool) {
	return m.om.Get(key)
}

// Delete removes key if present.
func (m Map) Delete(key Symbol) {
	m.om.Delete(key)
}

func (m Map) Len() int {
	if m.om == nil {
		return 0
	}
	return m.om.Len()
}

// Keys returns the map's keys in insertion order.
func (m Map) Keys() []Symbol {
	keys := make([]Symbol, 0, m.Len())
	for p := m.om.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

func (m Map) Kind() Kind { return KindMap }

func (m Map) ToString() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for p := m.om.Oldest(); p != nil; p = p.Next() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(p.Key.String())
		b.WriteString(": ")
		b.WriteString(p.Value.ToString())
	}
	b.WriteByte('}')
	return b.String()
}

func (m Map) Fmt() string { return m.ToString() }

func (m Map) Truthy() bool { return true }

func (m Map) Equal(o Value) bool {
	om, ok := o.(Map)
	if !ok || om.Len() != m.Len() {
		return false
	}
	for p := m.om.Oldest(); p != nil; p = p.Next() {
		ov, ok := om.Get(p.Key)
		if !ok || !p.Value.Equal(ov) {
			return false
		}
	}
	return true
}

// Merge returns a new map containing m's entries followed by other's,
// with other's values overwriting m's for shared keys (§3: "splat
// overwrites", in iteration order, a later key keeps its original
// position per the chosen Open Question resolution).
func Merge(m, other Map) Map {
	out := NewMap()
	for p := m.om.Oldest(); p != nil; p = p.Next() {
		out.Set(p.Key, p.Value)
	}
	for p := other.om.Oldest(); p != nil; p = p.Next() {
		out.Set(p.Key, p.Value)
	}
	return out
}
