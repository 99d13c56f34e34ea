package types

import (
	"math"
	"strconv"
)

// Float wraps an IEEE-754 double.
type Float struct{ Val float64 }

func NewFloat(v float64) Float { return Float{Val: v} }

func (f Float) Kind() Kind { return KindFloat }

func (f Float) ToString() string {
	switch {
	case math.IsNaN(f.Val):
		return "nan"
	case math.IsInf(f.Val, 1):
		return "inf"
	case math.IsInf(f.Val, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f.Val, 'g', -1, 64)
}

func (f Float) Fmt() string { return f.ToString() }

// Truthy follows the reference semantics pinned down in §3: only null
// and false are falsy, so 0.0 is truthy.
func (f Float) Truthy() bool { return true }

func (f Float) Equal(o Value) bool {
	of, ok := o.(Float)
	if !ok {
		return false
	}
	// NaN is never equal to itself, including itself.
	return f.Val == of.Val
}
