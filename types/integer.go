package types

import (
	"math/big"
)

// Int holds an arbitrary-precision integer. The normalization invariant
// (§3, Invariants) requires Big to be nil whenever the value fits in a
// signed 64-bit range; arithmetic that might overflow must renormalize
// its result through NewBigInt rather than constructing Int directly.
type Int struct {
	Small int64
	Big   *big.Int // nil when the value fits in Small
}

// NewInt wraps a machine-width integer; it is always already normalized.
func NewInt(v int64) Int { return Int{Small: v} }

// NewBigInt normalizes an arbitrary-precision integer, collapsing it to
// the bounded representation whenever it fits.
func NewBigInt(v *big.Int) Int {
	if v.IsInt64() {
		return Int{Small: v.Int64()}
	}
	return Int{Big: new(big.Int).Set(v)}
}

// AsBig returns the value as a *big.Int regardless of representation,
// for use by arithmetic that must not overflow machine width.
func (i Int) AsBig() *big.Int {
	if i.Big != nil {
		return i.Big
	}
	return big.NewInt(i.Small)
}

func (i Int) Kind() Kind { return KindInt }

func (i Int) ToString() string {
	if i.Big != nil {
		return i.Big.String()
	}
	return big.NewInt(i.Small).String()
}

func (i Int) Fmt() string { return i.ToString() }

func (i Int) Truthy() bool { return true }

func (i Int) Equal(o Value) bool {
	oi, ok := o.(Int)
	if !ok {
		return false
	}
	if i.Big == nil && oi.Big == nil {
		return i.Small == oi.Small
	}
	return i.AsBig().Cmp(oi.AsBig()) == 0
}

// Cmp compares two Ints, -1/0/1.
func (i Int) Cmp(o Int) int {
	if i.Big == nil && o.Big == nil {
		switch {
		case i.Small < o.Small:
			return -1
		case i.Small > o.Small:
			return 1
		default:
			return 0
		}
	}
	return i.AsBig().Cmp(o.AsBig())
}

// Float64 converts to a float64, per the float() built-in contract.
func (i Int) Float64() float64 {
	if i.Big == nil {
		return float64(i.Small)
	}
	f := new(big.Float).SetInt(i.Big)
	v, _ := f.Float64()
	return v
}

// Sign reports -1, 0, or 1.
func (i Int) Sign() int {
	if i.Big != nil {
		return i.Big.Sign()
	}
	switch {
	case i.Small < 0:
		return -1
	case i.Small > 0:
		return 1
	default:
		return 0
	}
}

// IsSmall reports whether the value fits the bounded representation.
func (i Int) IsSmall() bool { return i.Big == nil }

// AddInt, SubInt, MulInt perform normalized arbitrary-precision
// arithmetic. Machine-width operands are promoted to big.Int for the
// computation and the result is renormalized.
func AddInt(a, b Int) Int { return NewBigInt(new(big.Int).Add(a.AsBig(), b.AsBig())) }
func SubInt(a, b Int) Int { return NewBigInt(new(big.Int).Sub(a.AsBig(), b.AsBig())) }
func MulInt(a, b Int) Int { return NewBigInt(new(big.Int).Mul(a.AsBig(), b.AsBig())) }

// FloorDivInt implements `//`: floor division toward negative infinity.
func FloorDivInt(a, b Int) (Int, bool) {
	if b.Sign() == 0 {
		return Int{}, false
	}
	q, m := new(big.Int), new(big.Int)
	q.DivMod(a.AsBig(), b.AsBig(), m)
	// big.Int.DivMod implements Euclidean division (remainder always
	// non-negative); floor division toward -Inf needs q-1 whenever the
	// divisor is negative and the remainder is nonzero.
	if b.Sign() < 0 && m.Sign() != 0 {
		q.Sub(q, big.NewInt(1))
	}
	return NewBigInt(q), true
}

// PowInt computes a^b for a non-negative integer exponent, as required
// to keep `^` in the Integer variant.
func PowInt(a Int, b Int) Int {
	return NewBigInt(new(big.Int).Exp(a.AsBig(), b.AsBig(), nil))
}

// NegInt negates a.
func NegInt(a Int) Int { return NewBigInt(new(big.Int).Neg(a.AsBig())) }
