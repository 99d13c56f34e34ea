// Package builtins implements Gold's fixed table of first-class
// built-in functions. Built-ins never import eval; higher-order
// built-ins like map and filter call back into the running evaluator
// through the types.Caller seam passed to every BuiltinFunc.
package builtins

import (
	"math"
	"math/big"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cast"

	"gold/gerr"
	"gold/span"
	"gold/types"
)

// All returns the process-wide built-in table, a fresh Function wrapper
// per call but sharing the same underlying Go functions; safe to call
// repeatedly to populate independent root environments.
func All() map[string]types.Function {
	table := map[string]types.BuiltinFunc{
		"len":      biLen,
		"range":    biRange,
		"int":      biInt,
		"float":    biFloat,
		"bool":     biBool,
		"str":      biStr,
		"map":      biMap,
		"filter":   biFilter,
		"items":    biItems,
		"exp":      biExp,
		"log":      biLog,
		"ord":      biOrd,
		"chr":      biChr,
		"isint":    isKind(types.KindInt),
		"isstr":    isKind(types.KindString),
		"isnull":   isKind(types.KindNull),
		"isbool":   isKind(types.KindBool),
		"isfloat":  isKind(types.KindFloat),
		"islist":   isKind(types.KindList),
		"isobject": isKind(types.KindMap),
		"isfunc":   isKind(types.KindFunction),
		"isnumber": biIsNumber,
	}
	out := make(map[string]types.Function, len(table))
	for name, fn := range table {
		out[name] = types.NewBuiltin(name, fn)
	}
	return out
}

var noSpan span.Span

func arityError(name string, got, min, max int) *gerr.Error {
	if min == max {
		return gerr.New(gerr.ArgError, noSpan, "%s expects %d argument(s), got %d", name, min, got)
	}
	return gerr.New(gerr.ArgError, noSpan, "%s expects %d to %d arguments, got %d", name, min, max, got)
}

func noKeywords(name string, keywords types.Map) *gerr.Error {
	if keywords.Len() > 0 {
		return gerr.New(gerr.ArgError, noSpan, "%s does not accept keyword arguments", name)
	}
	return nil
}

func typeErr(name string, v types.Value, want string) *gerr.Error {
	return gerr.New(gerr.TypeMismatch, noSpan, "%s: expected %s, got %s", name, want, v.Kind())
}

func biLen(c types.Caller, args []types.Value, kw types.Map) (types.Value, *gerr.Error) {
	if err := noKeywords("len", kw); err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, arityError("len", len(args), 1, 1)
	}
	switch v := args[0].(type) {
	case types.String:
		return types.NewInt(int64(v.Len())), nil
	case types.List:
		return types.NewInt(int64(len(v.Elems))), nil
	case types.Map:
		return types.NewInt(int64(v.Len())), nil
	}
	return nil, typeErr("len", args[0], "string, list or map")
}

func asSmallInt(name string, v types.Value) (int64, *gerr.Error) {
	i, ok := v.(types.Int)
	if !ok || !i.IsSmall() {
		return 0, typeErr(name, v, "integer")
	}
	return i.Small, nil
}

func biRange(c types.Caller, args []types.Value, kw types.Map) (types.Value, *gerr.Error) {
	if err := noKeywords("range", kw); err != nil {
		return nil, err
	}
	if len(args) != 1 && len(args) != 2 {
		return nil, arityError("range", len(args), 1, 2)
	}
	var lo64, hi64 int64
	var err *gerr.Error
	if len(args) == 1 {
		hi64, err = asSmallInt("range", args[0])
		if err != nil {
			return nil, err
		}
	} else {
		lo64, err = asSmallInt("range", args[0])
		if err != nil {
			return nil, err
		}
		hi64, err = asSmallInt("range", args[1])
		if err != nil {
			return nil, err
		}
	}
	if hi64-lo64 > 10_000_000 {
		return nil, gerr.New(gerr.OutOfRange, noSpan, "range: span too large")
	}
	elems := make([]types.Value, 0, hi64-lo64)
	for i := lo64; i < hi64; i++ {
		elems = append(elems, types.NewInt(i))
	}
	return types.NewList(elems), nil
}

func biInt(c types.Caller, args []types.Value, kw types.Map) (types.Value, *gerr.Error) {
	if err := noKeywords("int", kw); err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, arityError("int", len(args), 1, 1)
	}
	switch v := args[0].(type) {
	case types.Int:
		return v, nil
	case types.Float:
		r := math.Round(v.Val)
		bi, _ := big.NewFloat(r).Int(nil)
		return types.NewBigInt(bi), nil
	case types.Bool:
		if v.Val {
			return types.NewInt(1), nil
		}
		return types.NewInt(0), nil
	case types.String:
		n, ok := new(big.Int).SetString(v.Raw(), 10)
		if !ok {
			return nil, gerr.New(gerr.ConvertError, noSpan, "int: cannot parse %q", v.Raw())
		}
		return types.NewBigInt(n), nil
	}
	return nil, typeErr("int", args[0], "int, float, bool or string")
}

func biFloat(c types.Caller, args []types.Value, kw types.Map) (types.Value, *gerr.Error) {
	if err := noKeywords("float", kw); err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, arityError("float", len(args), 1, 1)
	}
	switch v := args[0].(type) {
	case types.Float:
		return v, nil
	case types.Int:
		return types.NewFloat(v.Float64()), nil
	case types.Bool:
		if v.Val {
			return types.NewFloat(1), nil
		}
		return types.NewFloat(0), nil
	case types.String:
		f, err := cast.ToFloat64E(v.Raw())
		if err != nil {
			return nil, gerr.New(gerr.ConvertError, noSpan, "float: cannot parse %q", v.Raw())
		}
		return types.NewFloat(f), nil
	}
	return nil, typeErr("float", args[0], "int, float, bool or string")
}

func biBool(c types.Caller, args []types.Value, kw types.Map) (types.Value, *gerr.Error) {
	if err := noKeywords("bool", kw); err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, arityError("bool", len(args), 1, 1)
	}
	return types.BoolOf(args[0]), nil
}

func biStr(c types.Caller, args []types.Value, kw types.Map) (types.Value, *gerr.Error) {
	if err := noKeywords("str", kw); err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, arityError("str", len(args), 1, 1)
	}
	return types.NewString(args[0].Fmt()), nil
}

func biMap(c types.Caller, args []types.Value, kw types.Map) (types.Value, *gerr.Error) {
	if err := noKeywords("map", kw); err != nil {
		return nil, err
	}
	if len(args) != 2 {
		return nil, arityError("map", len(args), 2, 2)
	}
	fn, ok := args[0].(types.Function)
	if !ok {
		return nil, typeErr("map", args[0], "function")
	}
	lst, ok := args[1].(types.List)
	if !ok {
		return nil, typeErr("map", args[1], "list")
	}
	var callErr *gerr.Error
	results := lo.Map(lst.Elems, func(item types.Value, _ int) types.Value {
		if callErr != nil {
			return types.NullValue
		}
		v, err := c.CallFunction(fn, []types.Value{item}, types.NewMap())
		if err != nil {
			callErr = err
			return types.NullValue
		}
		return v
	})
	if callErr != nil {
		return nil, callErr
	}
	return types.NewList(results), nil
}

func biFilter(c types.Caller, args []types.Value, kw types.Map) (types.Value, *gerr.Error) {
	if err := noKeywords("filter", kw); err != nil {
		return nil, err
	}
	if len(args) != 2 {
		return nil, arityError("filter", len(args), 2, 2)
	}
	fn, ok := args[0].(types.Function)
	if !ok {
		return nil, typeErr("filter", args[0], "function")
	}
	lst, ok := args[1].(types.List)
	if !ok {
		return nil, typeErr("filter", args[1], "list")
	}
	var callErr *gerr.Error
	results := lo.Filter(lst.Elems, func(item types.Value, _ int) bool {
		if callErr != nil {
			return false
		}
		v, err := c.CallFunction(fn, []types.Value{item}, types.NewMap())
		if err != nil {
			callErr = err
			return false
		}
		return v.Truthy()
	})
	if callErr != nil {
		return nil, callErr
	}
	return types.NewList(results), nil
}

func biItems(c types.Caller, args []types.Value, kw types.Map) (types.Value, *gerr.Error) {
	if err := noKeywords("items", kw); err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, arityError("items", len(args), 1, 1)
	}
	m, ok := args[0].(types.Map)
	if !ok {
		return nil, typeErr("items", args[0], "map")
	}
	pairs := make([]types.Value, 0, m.Len())
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		pairs = append(pairs, types.NewList([]types.Value{types.NewString(k.String()), v}))
	}
	return types.NewList(pairs), nil
}

func biExp(c types.Caller, args []types.Value, kw types.Map) (types.Value, *gerr.Error) {
	if err := noKeywords("exp", kw); err != nil {
		return nil, err
	}
	if len(args) != 1 && len(args) != 2 {
		return nil, arityError("exp", len(args), 1, 2)
	}
	x, ok := asFloatArg(args[0])
	if !ok {
		return nil, typeErr("exp", args[0], "number")
	}
	if len(args) == 1 {
		return types.NewFloat(math.Exp(x)), nil
	}
	base, ok := asFloatArg(args[1])
	if !ok {
		return nil, typeErr("exp", args[1], "number")
	}
	return types.NewFloat(math.Pow(base, x)), nil
}

func biLog(c types.Caller, args []types.Value, kw types.Map) (types.Value, *gerr.Error) {
	if err := noKeywords("log", kw); err != nil {
		return nil, err
	}
	if len(args) != 1 && len(args) != 2 {
		return nil, arityError("log", len(args), 1, 2)
	}
	x, ok := asFloatArg(args[0])
	if !ok {
		return nil, typeErr("log", args[0], "number")
	}
	if x <= 0 {
		return nil, gerr.New(gerr.ConvertError, noSpan, "log: argument must be positive")
	}
	if len(args) == 1 {
		return types.NewFloat(math.Log(x)), nil
	}
	base, ok := asFloatArg(args[1])
	if !ok || base <= 0 || base == 1 {
		return nil, typeErr("log", args[1], "number")
	}
	return types.NewFloat(math.Log(x) / math.Log(base)), nil
}

func asFloatArg(v types.Value) (float64, bool) {
	switch n := v.(type) {
	case types.Int:
		return n.Float64(), true
	case types.Float:
		return n.Val, true
	}
	return 0, false
}

func biOrd(c types.Caller, args []types.Value, kw types.Map) (types.Value, *gerr.Error) {
	if err := noKeywords("ord", kw); err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, arityError("ord", len(args), 1, 1)
	}
	s, ok := args[0].(types.String)
	if !ok || s.Len() != 1 {
		return nil, typeErr("ord", args[0], "single-scalar string")
	}
	r, _ := s.At(0)
	return types.NewInt(int64(r)), nil
}

func biChr(c types.Caller, args []types.Value, kw types.Map) (types.Value, *gerr.Error) {
	if err := noKeywords("chr", kw); err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, arityError("chr", len(args), 1, 1)
	}
	i, ok := args[0].(types.Int)
	if !ok || !i.IsSmall() || i.Small < 0 || i.Small > 0x10FFFF {
		return nil, gerr.New(gerr.ConvertError, noSpan, "chr: %s is not a valid codepoint", strconv.FormatInt(i.Small, 10))
	}
	return types.NewString(string(rune(i.Small))), nil
}

func isKind(k types.Kind) types.BuiltinFunc {
	return func(c types.Caller, args []types.Value, kw types.Map) (types.Value, *gerr.Error) {
		if len(args) != 1 {
			return nil, arityError("is"+k.String(), len(args), 1, 1)
		}
		return types.NewBool(args[0].Kind() == k), nil
	}
}

func biIsNumber(c types.Caller, args []types.Value, kw types.Map) (types.Value, *gerr.Error) {
	if len(args) != 1 {
		return nil, arityError("isnumber", len(args), 1, 1)
	}
	switch args[0].(type) {
	case types.Int, types.Float:
		return types.True, nil
	}
	return types.False, nil
}
