// Package eval implements Gold's tree-walking evaluator: environment
// construction, pattern-based destructuring, numeric promotion and
// import resolution with cycle detection, reducing a validated AST to a
// runtime value.
package eval

import (
	"fmt"

	"gold/ast"
	"gold/builtins"
	"gold/gerr"
	"gold/parser"
	"gold/resolve"
	"gold/trace"
	"gold/types"
)

// Evaluator reduces an AST to a value. A fresh Evaluator is created per
// imported file (each carries its own base directory for relative
// imports) but all instances descended from one EvalFile call share a
// single cycle-detection stack.
type Evaluator struct {
	Resolver resolve.Resolver
	BaseDir  string
	stack    *importStack
}

type importStack struct {
	keys []string
}

func (s *importStack) push(key string) bool {
	for _, k := range s.keys {
		if k == key {
			return false
		}
	}
	s.keys = append(s.keys, key)
	return true
}

func (s *importStack) pop() {
	s.keys = s.keys[:len(s.keys)-1]
}

// NewEvaluator creates the root evaluator for a top-level source file.
func NewEvaluator(resolver resolve.Resolver, baseDir string) *Evaluator {
	return &Evaluator{Resolver: resolver, BaseDir: baseDir, stack: &importStack{}}
}

func (ev *Evaluator) newRootEnv() *types.Environment {
	env := types.NewRootEnvironment()
	for name, fn := range builtins.All() {
		env.Bind(types.Intern(name), fn)
	}
	return env
}

// EvalFile runs every import in order, binding each result, then
// evaluates the file's body expression in the resulting environment.
func (ev *Evaluator) EvalFile(f *ast.File) (types.Value, *gerr.Error) {
	env := ev.newRootEnv()
	for _, imp := range f.Imports {
		key := ev.BaseDir + "|" + imp.Path
		src, dir, rerr := ev.Resolver.Resolve(ev.BaseDir, imp.Path)
		if rerr != nil {
			return nil, rerr
		}
		if !ev.stack.push(key) {
			return nil, gerr.New(gerr.ImportCycle, imp.Sp, "import cycle detected resolving %q", imp.Path)
		}
		val, err := ev.evalImportSource(src, dir)
		ev.stack.pop()
		if err != nil {
			return nil, err
		}
		if err := ev.bindBinding(env, imp.Binding, val); err != nil {
			return nil, err
		}
	}
	return ev.Eval(f.Body, env)
}

func (ev *Evaluator) evalImportSource(src, dir string) (types.Value, *gerr.Error) {
	subFile, perr := parser.ParseFile(src)
	if perr != nil {
		return nil, perr
	}
	if errs := ast.Validate(subFile); len(errs) > 0 {
		return nil, errs[0]
	}
	sub := &Evaluator{Resolver: ev.Resolver, BaseDir: dir, stack: ev.stack}
	return sub.EvalFile(subFile)
}

// Eval reduces e to a value in env.
func (ev *Evaluator) Eval(e ast.Expr, env *types.Environment) (types.Value, *gerr.Error) {
	if !trace.IsEnabled() {
		return ev.evalDispatch(e, env)
	}
	kind := fmt.Sprintf("%T", e)
	trace.Enter(kind, e.Span())
	v, err := ev.evalDispatch(e, env)
	if err != nil {
		trace.Exit(kind, e.Span(), "", err)
	} else {
		trace.Exit(kind, e.Span(), v.ToString(), nil)
	}
	return v, err
}

func (ev *Evaluator) evalDispatch(e ast.Expr, env *types.Environment) (types.Value, *gerr.Error) {
	switch n := e.(type) {
	case *ast.Literal:
		return literalValue(n), nil
	case *ast.Identifier:
		v, ok := env.Lookup(types.Intern(n.Name))
		if !ok {
			return nil, gerr.New(gerr.NameError, n.Sp, "unbound name %q", n.Name)
		}
		return v, nil
	case *ast.String:
		return ev.evalString(n, env)
	case *ast.Unary:
		v, err := ev.Eval(n.Operand, env)
		if err != nil {
			return nil, err
		}
		return unary(n, n.Op, v)
	case *ast.Binary:
		return ev.evalBinary(n, env)
	case *ast.Index:
		return ev.evalIndex(n, env)
	case *ast.FunCall:
		return ev.evalCall(n, env)
	case *ast.Function:
		return types.NewClosure(n, env), nil
	case *ast.Let:
		return ev.evalLet(n, env)
	case *ast.Branch:
		cond, err := ev.Eval(n.Condition, env)
		if err != nil {
			return nil, err
		}
		if cond.Truthy() {
			return ev.Eval(n.True, env)
		}
		return ev.Eval(n.False, env)
	case *ast.List:
		return ev.evalList(n, env)
	case *ast.Map:
		return ev.evalMap(n, env)
	}
	return nil, gerr.New(gerr.Internal, e.Span(), "unhandled AST node %T", e)
}

func literalValue(n *ast.Literal) types.Value {
	switch n.Kind {
	case ast.LitNull:
		return types.NullValue
	case ast.LitBool:
		return types.NewBool(n.Bool)
	case ast.LitInt:
		return types.NewBigInt(n.Int)
	case ast.LitFloat:
		return types.NewFloat(n.Float)
	}
	return types.NullValue
}

func (ev *Evaluator) evalString(n *ast.String, env *types.Environment) (types.Value, *gerr.Error) {
	var out []rune
	for _, part := range n.Parts {
		if part.Interp == nil {
			out = append(out, []rune(part.Raw)...)
			continue
		}
		v, err := ev.Eval(part.Interp, env)
		if err != nil {
			return nil, err
		}
		out = append(out, []rune(v.Fmt())...)
	}
	return types.NewString(string(out)), nil
}

func (ev *Evaluator) evalBinary(n *ast.Binary, env *types.Environment) (types.Value, *gerr.Error) {
	if n.Op == ast.LogicAnd || n.Op == ast.LogicOr {
		left, err := ev.Eval(n.Left, env)
		if err != nil {
			return nil, err
		}
		if n.Op == ast.LogicAnd && !left.Truthy() {
			return left, nil
		}
		if n.Op == ast.LogicOr && left.Truthy() {
			return left, nil
		}
		return ev.Eval(n.Right, env)
	}
	l, err := ev.Eval(n.Left, env)
	if err != nil {
		return nil, err
	}
	r, err := ev.Eval(n.Right, env)
	if err != nil {
		return nil, err
	}
	return binary(n, n.Op, l, r)
}

func (ev *Evaluator) evalIndex(n *ast.Index, env *types.Environment) (types.Value, *gerr.Error) {
	target, err := ev.Eval(n.Target, env)
	if err != nil {
		return nil, err
	}
	idx, err := ev.Eval(n.Index, env)
	if err != nil {
		return nil, err
	}
	switch t := target.(type) {
	case types.List:
		i, ok := idx.(types.Int)
		if !ok || !i.IsSmall() {
			return nil, gerr.New(gerr.TypeMismatch, n.Sp, "list index must be an integer")
		}
		if i.Small < 0 || i.Small >= int64(len(t.Elems)) {
			return nil, gerr.New(gerr.OutOfRange, n.Sp, "list index %d out of range [0,%d)", i.Small, len(t.Elems))
		}
		return t.Elems[i.Small], nil
	case types.Map:
		s, ok := idx.(types.String)
		if !ok {
			return nil, gerr.New(gerr.TypeMismatch, n.Sp, "map index must be a string")
		}
		v, ok := t.Get(types.Intern(s.Raw()))
		if !ok {
			return nil, gerr.New(gerr.KeyError, n.Sp, "key %q not found", s.Raw())
		}
		return v, nil
	}
	return nil, gerr.New(gerr.TypeMismatch, n.Sp, "cannot index a %s", target.Kind())
}

func (ev *Evaluator) evalCall(n *ast.FunCall, env *types.Environment) (types.Value, *gerr.Error) {
	callee, err := ev.Eval(n.Callee, env)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(types.Function)
	if !ok {
		return nil, gerr.New(gerr.TypeMismatch, n.Sp, "cannot call a %s", callee.Kind())
	}
	var positional []types.Value
	keywords := types.NewMap()
	for _, arg := range n.Args {
		switch arg.Kind {
		case ast.ArgPositional:
			v, err := ev.Eval(arg.Value, env)
			if err != nil {
				return nil, err
			}
			positional = append(positional, v)
		case ast.ArgSplat:
			v, err := ev.Eval(arg.Value, env)
			if err != nil {
				return nil, err
			}
			lst, ok := v.(types.List)
			if !ok {
				return nil, gerr.New(gerr.TypeMismatch, arg.Value.Span(), "splat argument must be a list")
			}
			positional = append(positional, lst.Elems...)
		case ast.ArgKeyword:
			v, err := ev.Eval(arg.Value, env)
			if err != nil {
				return nil, err
			}
			sym := types.Intern(arg.Name)
			if _, exists := keywords.Get(sym); exists {
				return nil, gerr.New(gerr.ArgError, arg.Value.Span(), "duplicate keyword argument %q", arg.Name)
			}
			keywords.Set(sym, v)
		}
	}
	return ev.CallFunction(fn, positional, keywords)
}

// CallFunction implements types.Caller, letting built-ins like map and
// filter invoke Gold function values without builtins depending on eval.
func (ev *Evaluator) CallFunction(fn types.Function, positional []types.Value, keywords types.Map) (types.Value, *gerr.Error) {
	if fn.Builtin != nil {
		return fn.Builtin(ev, positional, keywords)
	}
	c := fn.Closure
	newEnv := c.Env.Child()
	posBinding := ast.Binding{Kind: ast.BindList, List: c.Node.Positional, Sp: c.Node.Sp}
	if err := ev.bindBinding(newEnv, posBinding, types.NewList(positional)); err != nil {
		return nil, err
	}
	if c.Node.Keywords != nil {
		kwBinding := ast.Binding{Kind: ast.BindMap, Map: c.Node.Keywords, Sp: c.Node.Sp}
		if err := ev.bindBinding(newEnv, kwBinding, keywords); err != nil {
			return nil, err
		}
	} else if keywords.Len() > 0 {
		return nil, gerr.New(gerr.ArgError, c.Node.Sp, "function does not accept keyword arguments")
	}
	return ev.Eval(c.Node.Body, newEnv)
}

func (ev *Evaluator) evalLet(n *ast.Let, env *types.Environment) (types.Value, *gerr.Error) {
	cur := env
	for _, b := range n.Bindings {
		// The value is evaluated in the new frame, not the old one, so a
		// closure bound here can look itself up by name once called,
		// enabling direct recursion through `let`.
		next := cur.Child()
		v, err := ev.Eval(b.Value, next)
		if err != nil {
			return nil, err
		}
		if err := ev.bindBinding(next, b.Pattern, v); err != nil {
			return nil, err
		}
		cur = next
	}
	return ev.Eval(n.Body, cur)
}

func (ev *Evaluator) evalList(n *ast.List, env *types.Environment) (types.Value, *gerr.Error) {
	var out []types.Value
	for i := range n.Elements {
		if err := ev.evalListElem(&n.Elements[i], env, &out); err != nil {
			return nil, err
		}
	}
	return types.NewList(out), nil
}

func (ev *Evaluator) evalListElem(e *ast.ListElem, env *types.Environment, out *[]types.Value) *gerr.Error {
	switch e.Kind {
	case ast.ElemSingle:
		v, err := ev.Eval(e.Value, env)
		if err != nil {
			return err
		}
		*out = append(*out, v)
	case ast.ElemSplat:
		v, err := ev.Eval(e.Value, env)
		if err != nil {
			return err
		}
		lst, ok := v.(types.List)
		if !ok {
			return gerr.New(gerr.TypeMismatch, e.Value.Span(), "splat element must be a list")
		}
		*out = append(*out, lst.Elems...)
	case ast.ElemForLoop:
		iter, err := ev.Eval(e.Iterable, env)
		if err != nil {
			return err
		}
		lst, ok := iter.(types.List)
		if !ok {
			return gerr.New(gerr.TypeMismatch, e.Iterable.Span(), "for comprehension requires a list")
		}
		for _, item := range lst.Elems {
			child := env.Child()
			if err := ev.bindBinding(child, e.Binder, item); err != nil {
				return err
			}
			if err := ev.evalListElem(e.Body, child, out); err != nil {
				return err
			}
		}
	case ast.ElemIf:
		cond, err := ev.Eval(e.Condition, env)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return ev.evalListElem(e.Body, env, out)
		}
	}
	return nil
}

func (ev *Evaluator) evalMap(n *ast.Map, env *types.Environment) (types.Value, *gerr.Error) {
	out := types.NewMap()
	for i := range n.Elements {
		if err := ev.evalMapElem(&n.Elements[i], env, &out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (ev *Evaluator) evalMapElem(e *ast.MapElem, env *types.Environment, out *types.Map) *gerr.Error {
	switch e.Kind {
	case ast.MapSingle:
		var sym types.Symbol
		if e.Key.Dynamic != nil {
			kv, err := ev.Eval(e.Key.Dynamic, env)
			if err != nil {
				return err
			}
			ks, ok := kv.(types.String)
			if !ok {
				return gerr.New(gerr.TypeMismatch, e.Key.Dynamic.Span(), "dynamic map key must be a string")
			}
			sym = types.Intern(ks.Raw())
		} else {
			sym = types.Intern(e.Key.Name)
		}
		v, err := ev.Eval(e.Value, env)
		if err != nil {
			return err
		}
		out.Set(sym, v)
	case ast.MapSplat:
		v, err := ev.Eval(e.Splat, env)
		if err != nil {
			return err
		}
		m, ok := v.(types.Map)
		if !ok {
			return gerr.New(gerr.TypeMismatch, e.Splat.Span(), "splat element must be a map")
		}
		for _, k := range m.Keys() {
			val, _ := m.Get(k)
			out.Set(k, val)
		}
	case ast.MapForLoop:
		iter, err := ev.Eval(e.Iterable, env)
		if err != nil {
			return err
		}
		lst, ok := iter.(types.List)
		if !ok {
			return gerr.New(gerr.TypeMismatch, e.Iterable.Span(), "for comprehension requires a list")
		}
		for _, item := range lst.Elems {
			child := env.Child()
			if err := ev.bindBinding(child, e.Binder, item); err != nil {
				return err
			}
			if err := ev.evalMapElem(e.Body, child, out); err != nil {
				return err
			}
		}
	case ast.MapIf:
		cond, err := ev.Eval(e.Condition, env)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return ev.evalMapElem(e.Body, env, out)
		}
	}
	return nil
}
