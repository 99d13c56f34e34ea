package types

import "testing"

func TestEnvironmentBindAndLookup(t *testing.T) {
	e := NewRootEnvironment()
	name := Intern("x")
	if _, ok := e.Lookup(name); ok {
		t.Fatal("expected an unbound name to not be found")
	}
	e.Bind(name, NewInt(1))
	v, ok := e.Lookup(name)
	if !ok {
		t.Fatal("expected the name to be found after binding")
	}
	if iv, ok := v.(Int); !ok || iv.Small != 1 {
		t.Errorf("got %#v, want Int(1)", v)
	}
}

func TestEnvironmentChildShadowing(t *testing.T) {
	root := NewRootEnvironment()
	name := Intern("x")
	root.Bind(name, NewInt(1))

	child := root.Child()
	child.Bind(name, NewInt(2))

	v, _ := child.Lookup(name)
	if iv := v.(Int); iv.Small != 2 {
		t.Errorf("got %d, want 2 (child binding should shadow parent)", iv.Small)
	}

	rv, _ := root.Lookup(name)
	if riv := rv.(Int); riv.Small != 1 {
		t.Errorf("parent binding changed to %d, want unchanged 1", riv.Small)
	}
}

func TestEnvironmentChildFallsBackToParent(t *testing.T) {
	root := NewRootEnvironment()
	name := Intern("y")
	root.Bind(name, NewInt(42))

	child := root.Child()
	v, ok := child.Lookup(name)
	if !ok {
		t.Fatal("expected a child frame to see parent bindings")
	}
	if iv := v.(Int); iv.Small != 42 {
		t.Errorf("got %d, want 42", iv.Small)
	}
}

func TestEnvironmentBindRebindSameFrame(t *testing.T) {
	e := NewRootEnvironment()
	name := Intern("z")
	e.Bind(name, NewInt(1))
	e.Bind(name, NewInt(2))
	v, _ := e.Lookup(name)
	if iv := v.(Int); iv.Small != 2 {
		t.Errorf("got %d, want 2 after rebinding", iv.Small)
	}
}
