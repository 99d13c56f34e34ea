package builtins_test

import (
	"testing"

	"gold/builtins"
	"gold/eval"
	"gold/gerr"
	"gold/resolve"
	"gold/types"
)

func call(t *testing.T, name string, args []types.Value) types.Value {
	t.Helper()
	fn, ok := builtins.All()[name]
	if !ok {
		t.Fatalf("no such builtin %q", name)
	}
	caller := eval.NewEvaluator(resolve.NullResolver{}, "")
	v, err := caller.CallFunction(fn, args, types.NewMap())
	if err != nil {
		t.Fatalf("%s(...): unexpected error: %s", name, err)
	}
	return v
}

func callErr(t *testing.T, name string, args []types.Value) error {
	t.Helper()
	fn := builtins.All()[name]
	caller := eval.NewEvaluator(resolve.NullResolver{}, "")
	v, err := caller.CallFunction(fn, args, types.NewMap())
	if err == nil {
		t.Fatalf("%s(...): expected an error, got %s", name, v.ToString())
	}
	return err
}

func TestBuiltinLen(t *testing.T) {
	if got := call(t, "len", []types.Value{types.NewString("hello")}); got.ToString() != "5" {
		t.Errorf("len(string) = %s, want 5", got.ToString())
	}
	if got := call(t, "len", []types.Value{types.NewList([]types.Value{types.NewInt(1), types.NewInt(2)})}); got.ToString() != "2" {
		t.Errorf("len(list) = %s, want 2", got.ToString())
	}
	m := types.NewMap()
	m.Set(types.Intern("a"), types.NewInt(1))
	if got := call(t, "len", []types.Value{m}); got.ToString() != "1" {
		t.Errorf("len(map) = %s, want 1", got.ToString())
	}
	callErr(t, "len", []types.Value{types.NewInt(1)})
}

func TestBuiltinRange(t *testing.T) {
	got := call(t, "range", []types.Value{types.NewInt(3)})
	if got.ToString() != "[0, 1, 2]" {
		t.Errorf("range(3) = %s, want [0, 1, 2]", got.ToString())
	}
	got = call(t, "range", []types.Value{types.NewInt(2), types.NewInt(5)})
	if got.ToString() != "[2, 3, 4]" {
		t.Errorf("range(2, 5) = %s, want [2, 3, 4]", got.ToString())
	}
	callErr(t, "range", []types.Value{types.NewInt(0), types.NewInt(20_000_000)})
}

func TestBuiltinIntConversions(t *testing.T) {
	if got := call(t, "int", []types.Value{types.NewFloat(3.7)}); got.ToString() != "4" {
		t.Errorf("int(3.7) = %s, want 4", got.ToString())
	}
	if got := call(t, "int", []types.Value{types.True}); got.ToString() != "1" {
		t.Errorf("int(true) = %s, want 1", got.ToString())
	}
	if got := call(t, "int", []types.Value{types.NewString("42")}); got.ToString() != "42" {
		t.Errorf("int(\"42\") = %s, want 42", got.ToString())
	}
	callErr(t, "int", []types.Value{types.NewString("not a number")})
}

func TestBuiltinFloatConversions(t *testing.T) {
	if got := call(t, "float", []types.Value{types.NewInt(3)}); got.ToString() != "3" {
		t.Errorf("float(3) = %s, want 3", got.ToString())
	}
	if got := call(t, "float", []types.Value{types.NewString("1.5")}); got.ToString() != "1.5" {
		t.Errorf("float(\"1.5\") = %s, want 1.5", got.ToString())
	}
}

func TestBuiltinBoolUsesTruthiness(t *testing.T) {
	if got := call(t, "bool", []types.Value{types.NewString("")}); got.ToString() != "true" {
		t.Errorf("bool(\"\") = %s, want true (empty string is truthy)", got.ToString())
	}
	if got := call(t, "bool", []types.Value{types.NullValue}); got.ToString() != "false" {
		t.Errorf("bool(null) = %s, want false", got.ToString())
	}
}

func TestBuiltinStr(t *testing.T) {
	if got := call(t, "str", []types.Value{types.NewInt(42)}); got.ToString() != `"42"` {
		t.Errorf("str(42) = %s, want \"42\"", got.ToString())
	}
}

func TestBuiltinMap(t *testing.T) {
	double := types.NewBuiltin("double", func(c types.Caller, args []types.Value, kw types.Map) (types.Value, *gerr.Error) {
		i := args[0].(types.Int)
		return types.MulInt(i, types.NewInt(2)), nil
	})
	lst := types.NewList([]types.Value{types.NewInt(1), types.NewInt(2), types.NewInt(3)})
	got := call(t, "map", []types.Value{double, lst})
	if got.ToString() != "[2, 4, 6]" {
		t.Errorf("map(double, [1,2,3]) = %s, want [2, 4, 6]", got.ToString())
	}
}

func TestBuiltinFilter(t *testing.T) {
	isEven := types.NewBuiltin("isEven", func(c types.Caller, args []types.Value, kw types.Map) (types.Value, *gerr.Error) {
		i := args[0].(types.Int)
		return types.NewBool(i.Small%2 == 0), nil
	})
	lst := types.NewList([]types.Value{types.NewInt(1), types.NewInt(2), types.NewInt(3), types.NewInt(4)})
	got := call(t, "filter", []types.Value{isEven, lst})
	if got.ToString() != "[2, 4]" {
		t.Errorf("filter(isEven, [1,2,3,4]) = %s, want [2, 4]", got.ToString())
	}
}

func TestBuiltinItems(t *testing.T) {
	m := types.NewMap()
	m.Set(types.Intern("a"), types.NewInt(1))
	got := call(t, "items", []types.Value{m})
	if got.ToString() != `[["a", 1]]` {
		t.Errorf("items({a: 1}) = %s, want [[\"a\", 1]]", got.ToString())
	}
}

func TestBuiltinExpLog(t *testing.T) {
	got := call(t, "exp", []types.Value{types.NewInt(0)})
	if got.ToString() != "1" {
		t.Errorf("exp(0) = %s, want 1", got.ToString())
	}
	got = call(t, "log", []types.Value{types.NewInt(1)})
	if got.ToString() != "0" {
		t.Errorf("log(1) = %s, want 0", got.ToString())
	}
	callErr(t, "log", []types.Value{types.NewInt(-1)})
}

func TestBuiltinOrdChrRoundtrip(t *testing.T) {
	got := call(t, "chr", []types.Value{types.NewInt(128013)})
	if got.ToString() != `"🐍"` {
		t.Errorf("chr(128013) = %s", got.ToString())
	}
	back := call(t, "ord", []types.Value{got})
	if back.ToString() != "128013" {
		t.Errorf("ord(chr(128013)) = %s, want 128013", back.ToString())
	}
	callErr(t, "ord", []types.Value{types.NewString("ab")})
	callErr(t, "chr", []types.Value{types.NewInt(-1)})
}

func TestBuiltinIsPredicates(t *testing.T) {
	tests := []struct {
		name string
		v    types.Value
		want bool
	}{
		{"isint", types.NewInt(1), true},
		{"isint", types.NewFloat(1), false},
		{"isstr", types.NewString("x"), true},
		{"isnull", types.NullValue, true},
		{"isbool", types.True, true},
		{"isfloat", types.NewFloat(1), true},
		{"islist", types.NewList(nil), true},
		{"isobject", types.NewMap(), true},
		{"isfunc", types.NewBuiltin("x", nil), true},
		{"isnumber", types.NewInt(1), true},
		{"isnumber", types.NewFloat(1), true},
		{"isnumber", types.NewString("1"), false},
	}
	for _, tc := range tests {
		got := call(t, tc.name, []types.Value{tc.v})
		want := "false"
		if tc.want {
			want = "true"
		}
		if got.ToString() != want {
			t.Errorf("%s(%s) = %s, want %s", tc.name, tc.v.ToString(), got.ToString(), want)
		}
	}
}
