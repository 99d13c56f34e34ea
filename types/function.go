package types

import (
	"fmt"

	"gold/ast"
	"gold/gerr"
)

// Caller is implemented by the evaluator and threaded into built-ins
// that themselves need to invoke a Gold function value (map, filter).
// Built-ins are defined before the evaluator exists, so this interface
// — rather than an import of the eval package — is what lets them call
// back into it without a package cycle.
type Caller interface {
	CallFunction(fn Function, positional []Value, keywords Map) (Value, *gerr.Error)
}

// BuiltinFunc is the Go implementation behind one named built-in.
type BuiltinFunc func(c Caller, positional []Value, keywords Map) (Value, *gerr.Error)

// Closure pairs a function literal's body with the environment frame
// chain captured at its definition site.
type Closure struct {
	Node *ast.Function
	Env  *Environment
}

// Function is either a closure or a built-in. Exactly one of Closure or
// Builtin is set.
type Function struct {
	Name    string // builtin name; "" for a closure
	Closure *Closure
	Builtin BuiltinFunc
}

// NewClosure wraps a function literal and its captured environment.
func NewClosure(node *ast.Function, env *Environment) Function {
	return Function{Closure: &Closure{Node: node, Env: env}}
}

// NewBuiltin wraps a named built-in implementation.
func NewBuiltin(name string, fn BuiltinFunc) Function {
	return Function{Name: name, Builtin: fn}
}

func (f Function) Kind() Kind { return KindFunction }

func (f Function) ToString() string {
	if f.Builtin != nil {
		return fmt.Sprintf("<builtin %s>", f.Name)
	}
	return "<function>"
}

func (f Function) Fmt() string { return f.ToString() }

func (f Function) Truthy() bool { return true }

// Equal follows §3: closures never compare equal to one another (even
// to themselves structurally — identity is not tracked), built-ins
// compare equal iff their names match.
func (f Function) Equal(o Value) bool {
	of, ok := o.(Function)
	if !ok {
		return false
	}
	if f.Builtin != nil && of.Builtin != nil {
		return f.Name == of.Name
	}
	return false
}
