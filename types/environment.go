package types

// Environment is one frame in the lexical-scope chain: an
// insertion-ordered mapping from interned name to value plus a pointer
// to its enclosing frame. Frames are immutable once sealed; extending
// scope for a nested construct always allocates a new frame rather than
// mutating an existing one, so closures can safely share the frames
// they captured (§9).
type Environment struct {
	parent *Environment
	names  map[Symbol]Value
	order  []Symbol
}

// NewRootEnvironment creates the outermost frame, typically populated
// with the built-in table.
func NewRootEnvironment() *Environment {
	return &Environment{names: map[Symbol]Value{}}
}

// Child creates a new, initially-empty frame whose parent is e.
func (e *Environment) Child() *Environment {
	return &Environment{parent: e, names: map[Symbol]Value{}}
}

// Bind introduces name into this frame. It is the only mutating
// operation on an Environment, used only while a frame is being
// constructed (pattern-binding a let, a function call, a comprehension
// iteration) before it is captured by anything else.
func (e *Environment) Bind(name Symbol, v Value) {
	if _, exists := e.names[name]; !exists {
		e.order = append(e.order, name)
	}
	e.names[name] = v
}

// Lookup walks the frame chain nearest-first.
func (e *Environment) Lookup(name Symbol) (Value, bool) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.names[name]; ok {
			return v, true
		}
	}
	return nil, false
}
