package ast

import (
	"gold/gerr"
)

// Validate walks the parsed tree once, checking the binding-level
// invariants from the specification: no duplicate name at a single
// pattern level, and at most one slurp per list binding and per map
// binding. It returns every violation found, not just the first.
func Validate(f *File) []*gerr.Error {
	v := &validator{}
	for _, imp := range f.Imports {
		v.binding(imp.Binding)
	}
	v.expr(f.Body)
	return v.errors
}

type validator struct {
	errors []*gerr.Error
}

func (v *validator) fail(e *gerr.Error) {
	v.errors = append(v.errors, e)
}

// binding validates one pattern level and recurses into sub-patterns and
// any default-value expressions.
func (v *validator) binding(b Binding) {
	switch b.Kind {
	case BindIdentifier:
		// A lone identifier binding has nothing to validate.
	case BindList:
		v.listBinding(b.List)
	case BindMap:
		v.mapBinding(b.Map)
	}
}

func (v *validator) listBinding(lb *ListBinding) {
	if lb == nil {
		return
	}
	seenNames := map[string]bool{}
	slurpCount := 0

	collectNames := func(b Binding) {
		var walk func(Binding)
		walk = func(b Binding) {
			switch b.Kind {
			case BindIdentifier:
				if seenNames[b.Name] {
					v.fail(gerr.New(gerr.ValidationError, b.Sp, "duplicate binding name %q", b.Name))
				}
				seenNames[b.Name] = true
			case BindList:
				for _, e := range b.List.Elements {
					if e.IsSlurp {
						if e.SlurpName != "" {
							if seenNames[e.SlurpName] {
								v.fail(gerr.New(gerr.ValidationError, e.Sp, "duplicate binding name %q", e.SlurpName))
							}
							seenNames[e.SlurpName] = true
						}
						continue
					}
					walk(e.Pattern)
				}
			case BindMap:
				for _, e := range b.Map.Elements {
					if e.IsSlurp {
						if seenNames[e.SlurpName] {
							v.fail(gerr.New(gerr.ValidationError, e.Sp, "duplicate binding name %q", e.SlurpName))
						}
						seenNames[e.SlurpName] = true
						continue
					}
					walk(e.Pattern)
				}
			}
		}
		walk(b)
	}

	for _, e := range lb.Elements {
		if e.IsSlurp {
			slurpCount++
			if e.SlurpName != "" {
				if seenNames[e.SlurpName] {
					v.fail(gerr.New(gerr.ValidationError, e.Sp, "duplicate binding name %q", e.SlurpName))
				}
				seenNames[e.SlurpName] = true
			}
			continue
		}
		collectNames(e.Pattern)
		if e.Default != nil {
			v.expr(e.Default)
		}
		v.binding(e.Pattern)
	}
	if slurpCount > 1 {
		v.fail(gerr.New(gerr.ValidationError, lb.Sp, "at most one slurp is allowed in a list binding"))
	}
}

func (v *validator) mapBinding(mb *MapBinding) {
	if mb == nil {
		return
	}
	seenKeys := map[string]bool{}
	seenNames := map[string]bool{}
	slurpCount := 0

	var walkNames func(Binding)
	walkNames = func(b Binding) {
		switch b.Kind {
		case BindIdentifier:
			if seenNames[b.Name] {
				v.fail(gerr.New(gerr.ValidationError, b.Sp, "duplicate binding name %q", b.Name))
			}
			seenNames[b.Name] = true
		case BindList:
			for _, e := range b.List.Elements {
				if e.IsSlurp {
					if e.SlurpName != "" {
						seenNames[e.SlurpName] = true
					}
					continue
				}
				walkNames(e.Pattern)
			}
		case BindMap:
			for _, e := range b.Map.Elements {
				if e.IsSlurp {
					seenNames[e.SlurpName] = true
					continue
				}
				walkNames(e.Pattern)
			}
		}
	}

	for _, e := range mb.Elements {
		if e.IsSlurp {
			slurpCount++
			if seenNames[e.SlurpName] {
				v.fail(gerr.New(gerr.ValidationError, e.Sp, "duplicate binding name %q", e.SlurpName))
			}
			seenNames[e.SlurpName] = true
			continue
		}
		if seenKeys[e.Key] {
			v.fail(gerr.New(gerr.ValidationError, e.Sp, "duplicate key %q in map binding", e.Key))
		}
		seenKeys[e.Key] = true
		walkNames(e.Pattern)
		if e.Default != nil {
			v.expr(e.Default)
		}
		v.binding(e.Pattern)
	}
	if slurpCount > 1 {
		v.fail(gerr.New(gerr.ValidationError, mb.Sp, "at most one named slurp is allowed in a map binding"))
	}
}

// expr recurses into every sub-expression that can contain a binding:
// lets, functions, and comprehension binders in lists and maps.
func (v *validator) expr(e Expr) {
	switch n := e.(type) {
	case nil:
		return
	case *Literal:
	case *Identifier:
	case *String:
		for _, p := range n.Parts {
			if p.Interp != nil {
				v.expr(p.Interp)
			}
		}
	case *Unary:
		v.expr(n.Operand)
	case *Binary:
		v.expr(n.Left)
		v.expr(n.Right)
	case *Index:
		v.expr(n.Target)
		v.expr(n.Index)
	case *FunCall:
		v.expr(n.Callee)
		for _, a := range n.Args {
			v.expr(a.Value)
		}
	case *Function:
		v.binding(Binding{Kind: BindList, List: n.Positional, Sp: n.Sp})
		if n.Keywords != nil {
			v.binding(Binding{Kind: BindMap, Map: n.Keywords, Sp: n.Sp})
		}
		v.expr(n.Body)
	case *Let:
		for _, b := range n.Bindings {
			v.binding(b.Pattern)
			v.expr(b.Value)
		}
		v.expr(n.Body)
	case *Branch:
		v.expr(n.Condition)
		v.expr(n.True)
		v.expr(n.False)
	case *List:
		for i := range n.Elements {
			v.listElem(&n.Elements[i])
		}
	case *Map:
		for i := range n.Elements {
			v.mapElem(&n.Elements[i])
		}
	default:
		v.fail(gerr.New(gerr.Internal, e.Span(), "unhandled AST node %T", e))
	}
}

func (v *validator) listElem(e *ListElem) {
	switch e.Kind {
	case ElemSingle, ElemSplat:
		v.expr(e.Value)
	case ElemForLoop:
		v.binding(e.Binder)
		v.expr(e.Iterable)
		v.listElem(e.Body)
	case ElemIf:
		v.expr(e.Condition)
		v.listElem(e.Body)
	}
}

func (v *validator) mapElem(e *MapElem) {
	switch e.Kind {
	case MapSingle:
		if e.Key.Dynamic != nil {
			v.expr(e.Key.Dynamic)
		}
		v.expr(e.Value)
	case MapSplat:
		v.expr(e.Splat)
	case MapForLoop:
		v.binding(e.Binder)
		v.expr(e.Iterable)
		v.mapElem(e.Body)
	case MapIf:
		v.expr(e.Condition)
		v.mapElem(e.Body)
	}
}
