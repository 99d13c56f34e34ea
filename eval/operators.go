package eval

import (
	"math"

	"gold/ast"
	"gold/gerr"
	"gold/types"
)

// binary applies op to already-evaluated operands, following the
// numeric-promotion rules of §3: Integer op Integer stays Integer
// (renormalized); either operand a Float promotes to Float; `/` always
// yields Float; `//` floors toward negative infinity and stays Integer;
// `^` stays Integer only for a non-negative integer exponent.
func binary(sp ast.Node, op ast.BinaryOp, l, r types.Value) (types.Value, *gerr.Error) {
	switch op {
	case ast.Eq:
		return types.NewBool(l.Equal(r)), nil
	case ast.Ne:
		return types.NewBool(!l.Equal(r)), nil
	case ast.Lt, ast.Le, ast.Gt, ast.Ge:
		return compare(sp, op, l, r)
	}

	li, lIsInt := l.(types.Int)
	ri, rIsInt := r.(types.Int)
	lf, lIsFloat := asFloat(l)
	rf, rIsFloat := asFloat(r)

	switch op {
	case ast.Add, ast.Sub, ast.Mul:
		if lIsInt && rIsInt {
			switch op {
			case ast.Add:
				return types.AddInt(li, ri), nil
			case ast.Sub:
				return types.SubInt(li, ri), nil
			case ast.Mul:
				return types.MulInt(li, ri), nil
			}
		}
		if lIsFloat && rIsFloat {
			switch op {
			case ast.Add:
				return types.NewFloat(lf + rf), nil
			case ast.Sub:
				return types.NewFloat(lf - rf), nil
			case ast.Mul:
				return types.NewFloat(lf * rf), nil
			}
		}
		return nil, typeMismatch(sp, "numeric operands", l, r)
	case ast.Div:
		if !lIsFloat || !rIsFloat {
			return nil, typeMismatch(sp, "numeric operands", l, r)
		}
		if rf == 0 {
			return nil, gerr.New(gerr.TypeMismatch, sp.Span(), "division by zero")
		}
		return types.NewFloat(lf / rf), nil
	case ast.FloorDiv:
		if !lIsInt || !rIsInt {
			return nil, typeMismatch(sp, "integer operands", l, r)
		}
		q, ok := types.FloorDivInt(li, ri)
		if !ok {
			return nil, gerr.New(gerr.TypeMismatch, sp.Span(), "division by zero")
		}
		return q, nil
	case ast.Pow:
		if lIsInt && rIsInt && ri.Sign() >= 0 {
			return types.PowInt(li, ri), nil
		}
		if lIsFloat && rIsFloat {
			return types.NewFloat(math.Pow(lf, rf)), nil
		}
		return nil, typeMismatch(sp, "numeric operands", l, r)
	}
	return nil, gerr.New(gerr.Internal, sp.Span(), "unhandled binary operator")
}

func asFloat(v types.Value) (float64, bool) {
	switch n := v.(type) {
	case types.Int:
		return n.Float64(), true
	case types.Float:
		return n.Val, true
	}
	return 0, false
}

// compare implements the ordering operators. The specification leaves
// cross-variant ordering undefined (§9 Open Questions); this
// implementation resolves it by failing TypeMismatch for anything but
// two numbers or two strings, compared numerically or lexicographically
// respectively.
func compare(sp ast.Node, op ast.BinaryOp, l, r types.Value) (types.Value, *gerr.Error) {
	var c int
	switch lv := l.(type) {
	case types.Int:
		switch rv := r.(type) {
		case types.Int:
			c = lv.Cmp(rv)
		case types.Float:
			c = cmpFloat(lv.Float64(), rv.Val)
		default:
			return nil, typeMismatch(sp, "comparable operands", l, r)
		}
	case types.Float:
		rf, ok := asFloat(r)
		if !ok {
			return nil, typeMismatch(sp, "comparable operands", l, r)
		}
		c = cmpFloat(lv.Val, rf)
	case types.String:
		rs, ok := r.(types.String)
		if !ok {
			return nil, typeMismatch(sp, "comparable operands", l, r)
		}
		c = cmpString(lv.Raw(), rs.Raw())
	default:
		return nil, typeMismatch(sp, "comparable operands", l, r)
	}
	switch op {
	case ast.Lt:
		return types.NewBool(c < 0), nil
	case ast.Le:
		return types.NewBool(c <= 0), nil
	case ast.Gt:
		return types.NewBool(c > 0), nil
	case ast.Ge:
		return types.NewBool(c >= 0), nil
	}
	return nil, gerr.New(gerr.Internal, sp.Span(), "unhandled comparison operator")
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// unary applies a prefix operator.
func unary(sp ast.Node, op ast.UnaryOp, v types.Value) (types.Value, *gerr.Error) {
	switch op {
	case ast.UnaryNot:
		return types.NewBool(!v.Truthy()), nil
	case ast.UnaryPlus:
		switch v.(type) {
		case types.Int, types.Float:
			return v, nil
		}
		return nil, gerr.New(gerr.TypeMismatch, sp.Span(), "unary '+' requires a number, got %s", v.Kind())
	case ast.UnaryNeg:
		switch n := v.(type) {
		case types.Int:
			return types.NegInt(n), nil
		case types.Float:
			return types.NewFloat(-n.Val), nil
		}
		return nil, gerr.New(gerr.TypeMismatch, sp.Span(), "unary '-' requires a number, got %s", v.Kind())
	}
	return nil, gerr.New(gerr.Internal, sp.Span(), "unhandled unary operator")
}

func typeMismatch(sp ast.Node, want string, l, r types.Value) *gerr.Error {
	return gerr.New(gerr.TypeMismatch, sp.Span(), "expected %s, got %s and %s", want, l.Kind(), r.Kind())
}
