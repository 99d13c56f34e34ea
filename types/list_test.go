package types

import "testing"

func TestNewListNilBecomesEmpty(t *testing.T) {
	l := NewList(nil)
	if l.Elems == nil {
		t.Fatal("expected NewList(nil) to produce a non-nil, empty slice")
	}
	if len(l.Elems) != 0 {
		t.Errorf("got %d elements, want 0", len(l.Elems))
	}
}

func TestListToString(t *testing.T) {
	l := NewList([]Value{NewInt(1), NewString("a")})
	got := l.ToString()
	want := `[1, "a"]`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestListTruthyAlwaysTrue(t *testing.T) {
	if !NewList(nil).Truthy() {
		t.Error("an empty list must still be truthy; only null and false are falsy")
	}
}

func TestListEqual(t *testing.T) {
	a := NewList([]Value{NewInt(1), NewInt(2)})
	b := NewList([]Value{NewInt(1), NewInt(2)})
	c := NewList([]Value{NewInt(2), NewInt(1)})
	if !a.Equal(b) {
		t.Error("lists with equal elements in the same order should be equal")
	}
	if a.Equal(c) {
		t.Error("lists with the same elements in a different order should not be equal")
	}
}

func TestListConcat(t *testing.T) {
	a := NewList([]Value{NewInt(1)})
	b := NewList([]Value{NewInt(2), NewInt(3)})
	got := a.Concat(b)
	want := []int64{1, 2, 3}
	if len(got.Elems) != len(want) {
		t.Fatalf("got %d elements, want %d", len(got.Elems), len(want))
	}
	for i, v := range want {
		gi, ok := got.Elems[i].(Int)
		if !ok || gi.Small != v {
			t.Errorf("element %d = %#v, want Int(%d)", i, got.Elems[i], v)
		}
	}
}
