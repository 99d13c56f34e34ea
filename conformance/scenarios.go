package conformance

import "gold/gerr"

// Scenarios is the golden suite: the eight concrete scenarios named in
// the language specification's testable-properties section, plus a
// handful of destructuring and comprehension edge cases exercising the
// same laws.
var Scenarios = []Scenario{
	{Name: "let-binding-arithmetic", Source: `let x = 3 in x + 4`, Expect: "7"},
	{Name: "map-splat-overwrite", Source: `{a: 1, b: 2, ...{c: 3, a: 10}}`, Expect: `{a: 10, b: 2, c: 3}`},
	{Name: "list-comprehension-filter", Source: `[for x in range(5): if x * 2 < 6: x * x]`, Expect: "[0, 1, 4]"},
	{Name: "function-default-arg", Source: `((x, y=5) => x + y)(3)`, Expect: "8"},
	{Name: "recursive-closure-fib", Source: `let f = (n) => if n < 2 then n else f(n - 1) + f(n - 2) in f(10)`, Expect: "55"},
	{Name: "ord-chr-roundtrip", Source: `ord(chr(128013))`, Expect: "128013"},
	{Name: "string-interpolation", Source: `"value=${1 + 2}"`, Expect: `"value=3"`},
	{Name: "bigint-promotion", Source: `2 ^ 100`, Expect: "1267650600228229401496703205376"},

	{Name: "list-slurp-middle", Source: `let [a, ...mid, z] = [1, 2, 3, 4, 5] in mid`, Expect: "[2, 3, 4]"},
	{Name: "list-slurp-empty-middle", Source: `let [a, ...mid, z] = [1, 2] in mid`, Expect: "[]"},
	{Name: "map-pattern-default", Source: `let {a, b = 9} = {a: 1} in a + b`, Expect: "10"},
	{Name: "map-pattern-slurp", Source: `let {a, ...rest} = {a: 1, b: 2, c: 3} in rest`, Expect: `{b: 2, c: 3}`},
	{Name: "and-returns-operand", Source: `false and 5`, Expect: "false"},
	{Name: "and-returns-right-when-left-truthy", Source: `0 and 5`, Expect: "5"},
	{Name: "or-returns-operand", Source: `null or "fallback"`, Expect: `"fallback"`},
	{Name: "floor-div-negative", Source: `-7 // 2`, Expect: "-4"},
	{Name: "empty-string-truthy", Source: `bool("")`, Expect: "true"},
	{Name: "empty-list-truthy", Source: `bool([])`, Expect: "true"},
	{Name: "map-comprehension-dynamic-key", Source: `{for k in ["a","b"]: $k: 1}`, Expect: `{a: 1, b: 1}`},
	{Name: "keyword-only-function", Source: `({x, y} => x + y)(x: 2, y: 3)`, Expect: "5"},
	{Name: "hyphenated-map-key", Source: `{my-key: 1}["my-key"]`, Expect: "1"},
	{Name: "multi-line-string-dedent", Source: "\"a\n b\"", Expect: `"a\nb"`},

	{Name: "name-error", Source: `unbound_name`, ExpectsError: true, ExpectErrorKind: gerr.NameError},
	{Name: "type-mismatch-compare", Source: `1 < "a"`, ExpectsError: true, ExpectErrorKind: gerr.TypeMismatch},
	{Name: "arg-error-extra-positional", Source: `let [a] = [1, 2] in a`, ExpectsError: true, ExpectErrorKind: gerr.ArgError},
	{Name: "key-error-missing-map-key", Source: `let {a} = {b: 1} in a`, ExpectsError: true, ExpectErrorKind: gerr.KeyError},
	{Name: "out-of-range-index", Source: `[1, 2, 3][10]`, ExpectsError: true, ExpectErrorKind: gerr.OutOfRange},
	{Name: "division-by-zero", Source: `1 / 0`, ExpectsError: true, ExpectErrorKind: gerr.TypeMismatch},
}
