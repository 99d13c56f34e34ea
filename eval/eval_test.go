package eval_test

import (
	"testing"

	"gold"
	"gold/gerr"
	"gold/span"
)

func evalOK(t *testing.T, src string) string {
	t.Helper()
	v, err := gold.EvalRaw(src)
	if err != nil {
		t.Fatalf("%s: unexpected error: %s", src, err)
	}
	return v.ToString()
}

func evalErr(t *testing.T, src string) *gerr.Error {
	t.Helper()
	v, err := gold.EvalRaw(src)
	if err == nil {
		t.Fatalf("%s: expected an error, got %s", src, v.ToString())
	}
	return err
}

func TestEvalArithmeticAndPrecedence(t *testing.T) {
	tests := []struct{ src, want string }{
		{"1 + 2 * 3", "7"},
		{"2 ^ 10", "1024"},
		{"7 // 2", "3"},
		{"-7 // 2", "-4"},
		{"7 / 2", "3.5"},
		{"1 + 1.0", "2"},
	}
	for _, tc := range tests {
		if got := evalOK(t, tc.src); got != tc.want {
			t.Errorf("%s = %s, want %s", tc.src, got, tc.want)
		}
	}
}

func TestEvalLogicShortCircuitReturnsOperand(t *testing.T) {
	tests := []struct{ src, want string }{
		{"false and 1", "false"},
		{"1 and 2", "2"},
		{"null or 3", "3"},
		{"5 or (1/0)", "5"}, // short-circuit: right side never evaluated
	}
	for _, tc := range tests {
		if got := evalOK(t, tc.src); got != tc.want {
			t.Errorf("%s = %s, want %s", tc.src, got, tc.want)
		}
	}
}

func TestEvalTruthiness(t *testing.T) {
	tests := []struct{ src, want string }{
		{"if 0 then 1 else 2", "1"},
		{"if \"\" then 1 else 2", "1"},
		{"if [] then 1 else 2", "1"},
		{"if null then 1 else 2", "2"},
		{"if false then 1 else 2", "2"},
	}
	for _, tc := range tests {
		if got := evalOK(t, tc.src); got != tc.want {
			t.Errorf("%s = %s, want %s", tc.src, got, tc.want)
		}
	}
}

func TestEvalLetSequentialScoping(t *testing.T) {
	got := evalOK(t, "let x = 1; y = x + 1 in x + y")
	if got != "3" {
		t.Errorf("got %s, want 3", got)
	}
}

func TestEvalListDestructuring(t *testing.T) {
	got := evalOK(t, "let [a, b, ...rest] = [1, 2, 3, 4] in rest")
	if got != "[3, 4]" {
		t.Errorf("got %s, want [3, 4]", got)
	}
}

func TestEvalMapDestructuringWithDefault(t *testing.T) {
	got := evalOK(t, "let {a, b = 9} = {a: 1} in a + b")
	if got != "10" {
		t.Errorf("got %s, want 10", got)
	}
}

func TestEvalClosureCapture(t *testing.T) {
	got := evalOK(t, "let make = (n) => (x) => x + n in let add5 = make(5) in add5(10)")
	if got != "15" {
		t.Errorf("got %s, want 15", got)
	}
}

func TestEvalRecursiveClosureFib(t *testing.T) {
	got := evalOK(t, "let fib = (n) => if n < 2 then n else fib(n - 1) + fib(n - 2) in fib(10)")
	if got != "55" {
		t.Errorf("got %s, want 55", got)
	}
}

func TestEvalIndexErrors(t *testing.T) {
	if err := evalErr(t, "[1, 2][5]"); err.Kind != gerr.OutOfRange {
		t.Errorf("got %s, want OutOfRange", err.Kind)
	}
	if err := evalErr(t, `{a: 1}["b"]`); err.Kind != gerr.KeyError {
		t.Errorf("got %s, want KeyError", err.Kind)
	}
	if err := evalErr(t, `[1, 2]["a"]`); err.Kind != gerr.TypeMismatch {
		t.Errorf("got %s, want TypeMismatch", err.Kind)
	}
}

func TestEvalUnboundNameIsNameError(t *testing.T) {
	if err := evalErr(t, "nosuchname"); err.Kind != gerr.NameError {
		t.Errorf("got %s, want NameError", err.Kind)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	if err := evalErr(t, "1 / 0"); err.Kind != gerr.TypeMismatch {
		t.Errorf("got %s, want TypeMismatch", err.Kind)
	}
}

func TestEvalStringInterpolation(t *testing.T) {
	got := evalOK(t, `let name = "world" in "hello ${name}, 1+1=${1+1}"`)
	want := `"hello world, 1+1=2"`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestEvalListComprehensionWithFilter(t *testing.T) {
	got := evalOK(t, "[for x in range(5): if x * 2 < 6: x * x]")
	if got != "[0, 1, 4]" {
		t.Errorf("got %s, want [0, 1, 4]", got)
	}
}

func TestEvalMapSplatOverwrite(t *testing.T) {
	got := evalOK(t, `{...{a: 1, b: 2}, ...{a: 9}}`)
	if got != `{a: 9, b: 2}` {
		t.Errorf("got %s, want {a: 9, b: 2}", got)
	}
}

func TestEvalKeywordOnlyFunction(t *testing.T) {
	got := evalOK(t, "({x, y} => x + y)(x: 2, y: 3)")
	if got != "5" {
		t.Errorf("got %s, want 5", got)
	}
}

func TestEvalDuplicateKeywordArgIsArgError(t *testing.T) {
	if err := evalErr(t, "((x) => x)(x: 1, x: 2)"); err.Kind != gerr.ArgError {
		t.Errorf("got %s, want ArgError", err.Kind)
	}
}

// stringResolver is a minimal in-memory resolve.Resolver used to exercise
// import evaluation and cycle detection without touching the filesystem.
type stringResolver map[string]string

func (r stringResolver) Resolve(baseDir, importPath string) (string, string, *gerr.Error) {
	src, ok := r[importPath]
	if !ok {
		return "", "", gerr.New(gerr.ImportError, span.Span{}, "import %q not found", importPath)
	}
	return src, "", nil
}

func TestEvalImportBindsValue(t *testing.T) {
	r := stringResolver{"./a.gold": "1 + 1"}
	v, err := gold.Eval(`import "./a.gold" as a
a + 1`, "", r)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if v.ToString() != "3" {
		t.Errorf("got %s, want 3", v.ToString())
	}
}

func TestEvalImportCycleDetected(t *testing.T) {
	r := stringResolver{
		"./a.gold": `import "./b.gold" as b
b`,
		"./b.gold": `import "./a.gold" as a
a`,
	}
	_, err := gold.Eval(`import "./a.gold" as a
a`, "", r)
	if err == nil {
		t.Fatal("expected an import cycle error")
	}
	if err.Kind != gerr.ImportCycle {
		t.Errorf("got %s, want ImportCycle", err.Kind)
	}
}
