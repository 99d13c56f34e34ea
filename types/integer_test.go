package types

import (
	"math/big"
	"testing"
)

func TestNewBigIntNormalizes(t *testing.T) {
	small := NewBigInt(big.NewInt(42))
	if !small.IsSmall() || small.Small != 42 {
		t.Fatalf("got %#v, want a collapsed small Int", small)
	}

	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	big1 := NewBigInt(huge)
	if big1.IsSmall() {
		t.Fatalf("expected a value outside int64 range to stay big")
	}
}

func TestIntCmp(t *testing.T) {
	tests := []struct {
		a, b Int
		want int
	}{
		{NewInt(1), NewInt(2), -1},
		{NewInt(2), NewInt(1), 1},
		{NewInt(5), NewInt(5), 0},
		{NewBigInt(new(big.Int).Lsh(big.NewInt(1), 100)), NewInt(5), 1},
	}
	for _, tc := range tests {
		if got := tc.a.Cmp(tc.b); got != tc.want {
			t.Errorf("%s.Cmp(%s) = %d, want %d", tc.a.ToString(), tc.b.ToString(), got, tc.want)
		}
	}
}

func TestAddIntPromotesOnOverflow(t *testing.T) {
	a := NewInt(9223372036854775807) // max int64
	b := NewInt(1)
	sum := AddInt(a, b)
	if sum.IsSmall() {
		t.Fatalf("expected overflowing add to promote to big.Int, got %#v", sum)
	}
	want := new(big.Int).Add(big.NewInt(9223372036854775807), big.NewInt(1))
	if sum.AsBig().Cmp(want) != 0 {
		t.Errorf("got %s, want %s", sum.ToString(), want.String())
	}
}

func TestFloorDivIntNegative(t *testing.T) {
	// -7 // 2 floors toward negative infinity: -4, not -3.
	q, ok := FloorDivInt(NewInt(-7), NewInt(2))
	if !ok {
		t.Fatal("expected floor division to succeed")
	}
	if q.Small != -4 {
		t.Errorf("got %d, want -4", q.Small)
	}
}

func TestFloorDivIntByZero(t *testing.T) {
	if _, ok := FloorDivInt(NewInt(1), NewInt(0)); ok {
		t.Fatal("expected division by zero to fail")
	}
}

func TestPowInt(t *testing.T) {
	got := PowInt(NewInt(2), NewInt(10))
	if got.Small != 1024 {
		t.Errorf("got %d, want 1024", got.Small)
	}
}

func TestIntEqual(t *testing.T) {
	a := NewInt(7)
	b := NewBigInt(big.NewInt(7))
	if !a.Equal(b) {
		t.Errorf("expected a small and big representation of 7 to compare equal")
	}
	if a.Equal(NewFloat(7)) {
		t.Errorf("an Int must never equal a Float, even with the same magnitude")
	}
}

func TestIntFloat64(t *testing.T) {
	if got := NewInt(3).Float64(); got != 3.0 {
		t.Errorf("got %v, want 3.0", got)
	}
}
