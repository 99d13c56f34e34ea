package ast_test

import (
	"testing"

	"gold/ast"
	"gold/parser"
)

func mustParse(t *testing.T, src string) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("%s: unexpected parse error: %s", src, err)
	}
	return f
}

func TestValidateOK(t *testing.T) {
	tests := []string{
		"let x = 1 in x",
		"let [a, b] = [1, 2] in a + b",
		"(x, y) => x + y",
		"{x, y} => x + y",
		"[for x in xs: x * 2]",
		"let [a, ...rest] = [1, 2, 3] in rest",
		"let {a, b as c} = {a: 1, b: 2} in a + c",
	}
	for _, src := range tests {
		f := mustParse(t, src)
		if errs := ast.Validate(f); len(errs) != 0 {
			t.Errorf("%s: unexpected validation errors: %v", src, errs)
		}
	}
}

func TestValidateDuplicateListBindingName(t *testing.T) {
	f := mustParse(t, "let [a, a] = [1, 2] in a")
	errs := ast.Validate(f)
	if len(errs) == 0 {
		t.Fatal("expected a validation error for a duplicate binding name")
	}
}

func TestValidateDuplicateMapBindingKey(t *testing.T) {
	f := mustParse(t, "let {a, a} = {a: 1} in a")
	errs := ast.Validate(f)
	if len(errs) == 0 {
		t.Fatal("expected a validation error for a duplicate map binding key")
	}
}

func TestValidateMultipleSlurpsRejected(t *testing.T) {
	f := mustParse(t, "let [...a, ...b] = [1, 2] in a")
	errs := ast.Validate(f)
	if len(errs) == 0 {
		t.Fatal("expected a validation error for two slurps in one list binding")
	}
}

func TestValidateFunctionParamsChecked(t *testing.T) {
	f := mustParse(t, "(x, x) => x")
	errs := ast.Validate(f)
	if len(errs) == 0 {
		t.Fatal("expected a validation error for duplicate function parameter names")
	}
}

func TestValidateNestedInterpolation(t *testing.T) {
	// A duplicate binding hidden inside a string interpolation must still
	// be caught, since expr recurses into interpolated parts.
	f := mustParse(t, `"${let [a, a] = [1, 2] in a}"`)
	errs := ast.Validate(f)
	if len(errs) == 0 {
		t.Fatal("expected a validation error for a duplicate binding inside an interpolation")
	}
}
