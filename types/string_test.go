package types

import "testing"

func TestStringLenCountsScalarsNotBytes(t *testing.T) {
	s := NewString("héllo")
	if s.Len() != 5 {
		t.Errorf("got %d, want 5 (decoded runes, not bytes)", s.Len())
	}
}

func TestStringAt(t *testing.T) {
	s := NewString("abc")
	r, ok := s.At(1)
	if !ok || r != 'b' {
		t.Fatalf("got (%q, %v), want ('b', true)", r, ok)
	}
	if _, ok := s.At(3); ok {
		t.Error("expected an out-of-range index to fail")
	}
	if _, ok := s.At(-1); ok {
		t.Error("expected a negative index to fail")
	}
}

func TestStringToStringEscapes(t *testing.T) {
	s := NewString("a\"b\\c\nd\te")
	got := s.ToString()
	want := `"a\"b\\c\nd\te"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStringFmtUnquoted(t *testing.T) {
	s := NewString("hello")
	if s.Fmt() != "hello" {
		t.Errorf("got %q, want unquoted 'hello'", s.Fmt())
	}
}

func TestStringTruthyAlwaysTrue(t *testing.T) {
	if !NewString("").Truthy() {
		t.Error("an empty string must still be truthy; only null and false are falsy")
	}
}

func TestStringEqual(t *testing.T) {
	if !NewString("abc").Equal(NewString("abc")) {
		t.Error("identical strings should compare equal")
	}
	if NewString("abc").Equal(NewString("abd")) {
		t.Error("different strings should not compare equal")
	}
	if NewString("abc").Equal(NewInt(1)) {
		t.Error("a string must never equal a non-string value")
	}
}

func TestStringConcat(t *testing.T) {
	got := NewString("foo").Concat(NewString("bar"))
	if got.Raw() != "foobar" {
		t.Errorf("got %q, want %q", got.Raw(), "foobar")
	}
}
