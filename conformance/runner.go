package conformance

import (
	"fmt"

	"gold/ast"
	"gold/eval"
	"gold/gerr"
	"gold/parser"
	"gold/resolve"
)

// Result is the outcome of running one Scenario.
type Result struct {
	Scenario Scenario
	Passed   bool
	Got      string
	Detail   string
}

// Run evaluates every scenario and reports pass/fail against its
// expectation.
func Run(scenarios []Scenario) []Result {
	out := make([]Result, 0, len(scenarios))
	for _, sc := range scenarios {
		out = append(out, runOne(sc))
	}
	return out
}

func runOne(sc Scenario) Result {
	file, perr := parser.ParseFile(sc.Source)
	if perr != nil {
		return judge(sc, "", perr)
	}
	if errs := ast.Validate(file); len(errs) > 0 {
		return judge(sc, "", errs[0])
	}
	ev := eval.NewEvaluator(resolve.NullResolver{}, "")
	val, err := ev.EvalFile(file)
	if err != nil {
		return judge(sc, "", err)
	}
	return judge(sc, val.ToString(), nil)
}

func judge(sc Scenario, got string, err *gerr.Error) Result {
	if sc.ExpectsError {
		if err == nil {
			return Result{Scenario: sc, Passed: false, Got: got, Detail: "expected an error, evaluation succeeded"}
		}
		if err.Kind != sc.ExpectErrorKind {
			return Result{Scenario: sc, Passed: false, Detail: fmt.Sprintf("expected error kind %s, got %s", sc.ExpectErrorKind, err.Kind)}
		}
		return Result{Scenario: sc, Passed: true}
	}
	if err != nil {
		return Result{Scenario: sc, Passed: false, Detail: fmt.Sprintf("unexpected error: %s", err)}
	}
	if got != sc.Expect {
		return Result{Scenario: sc, Passed: false, Got: got, Detail: fmt.Sprintf("expected %q, got %q", sc.Expect, got)}
	}
	return Result{Scenario: sc, Passed: true, Got: got}
}
