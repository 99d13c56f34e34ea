package types

import (
	"testing"

	"gold/ast"
	"gold/gerr"
)

func TestNewBuiltinToString(t *testing.T) {
	fn := NewBuiltin("len", func(c Caller, positional []Value, keywords Map) (Value, *gerr.Error) {
		return NewInt(0), nil
	})
	if fn.ToString() != "<builtin len>" {
		t.Errorf("got %q", fn.ToString())
	}
}

func TestNewClosureToString(t *testing.T) {
	fn := NewClosure(&ast.Function{}, NewRootEnvironment())
	if fn.ToString() != "<function>" {
		t.Errorf("got %q", fn.ToString())
	}
}

func TestFunctionEqualBuiltinsByName(t *testing.T) {
	a := NewBuiltin("len", nil)
	b := NewBuiltin("len", nil)
	c := NewBuiltin("str", nil)
	if !a.Equal(b) {
		t.Error("two built-ins with the same name should compare equal")
	}
	if a.Equal(c) {
		t.Error("built-ins with different names should not compare equal")
	}
}

func TestFunctionEqualClosuresNeverEqual(t *testing.T) {
	node := &ast.Function{}
	env := NewRootEnvironment()
	a := NewClosure(node, env)
	b := NewClosure(node, env)
	if a.Equal(a) {
		t.Error("closures must never compare equal, even to themselves")
	}
	if a.Equal(b) {
		t.Error("two closures must never compare equal, even from the same node and env")
	}
}

func TestFunctionTruthy(t *testing.T) {
	if !NewBuiltin("len", nil).Truthy() {
		t.Error("a function value must always be truthy")
	}
}
