// Package gold is the programmatic entry point into the language: parse,
// validate, and evaluate a source string, or invoke an already-produced
// function value.
package gold

import (
	"gold/ast"
	"gold/eval"
	"gold/gerr"
	"gold/parser"
	"gold/resolve"
	"gold/types"
)

// Eval parses and evaluates source, resolving any imports relative to
// baseDir via resolver.
func Eval(source, baseDir string, resolver resolve.Resolver) (types.Value, *gerr.Error) {
	file, perr := parser.ParseFile(source)
	if perr != nil {
		return nil, perr
	}
	if errs := ast.Validate(file); len(errs) > 0 {
		return nil, errs[0]
	}
	return eval.NewEvaluator(resolver, baseDir).EvalFile(file)
}

// EvalRaw evaluates source with the null resolver; any import fails.
func EvalRaw(source string) (types.Value, *gerr.Error) {
	return Eval(source, "", resolve.NullResolver{})
}

// EvalFile reads path from disk and evaluates it, resolving imports
// relative to its containing directory.
func EvalFile(path string) (types.Value, *gerr.Error) {
	src, dir, err := (resolve.FileResolver{}).Resolve("", path)
	if err != nil {
		return nil, err
	}
	return Eval(src, dir, resolve.FileResolver{})
}

// Call invokes fn with the given positional arguments and keyword map,
// the same dispatch the evaluator uses for a FunCall node.
func Call(fn types.Function, positional []types.Value, keywords types.Map) (types.Value, *gerr.Error) {
	caller := eval.NewEvaluator(resolve.NullResolver{}, "")
	return caller.CallFunction(fn, positional, keywords)
}
