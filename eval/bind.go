package eval

import (
	"gold/ast"
	"gold/gerr"
	"gold/types"
)

// bindBinding extends env in place to match pattern against v, per the
// pattern-matching rules of §4.E.
func (ev *Evaluator) bindBinding(env *types.Environment, pattern ast.Binding, v types.Value) *gerr.Error {
	switch pattern.Kind {
	case ast.BindIdentifier:
		env.Bind(types.Intern(pattern.Name), v)
		return nil
	case ast.BindList:
		lst, ok := v.(types.List)
		if !ok {
			return gerr.New(gerr.TypeMismatch, pattern.Sp, "list pattern requires a list value, got %s", v.Kind())
		}
		return ev.bindListPattern(env, pattern.List, lst)
	case ast.BindMap:
		m, ok := v.(types.Map)
		if !ok {
			return gerr.New(gerr.TypeMismatch, pattern.Sp, "map pattern requires a map value, got %s", v.Kind())
		}
		return ev.bindMapPattern(env, pattern.Map, m)
	}
	return gerr.New(gerr.Internal, pattern.Sp, "unhandled binding kind")
}

// bindListPattern implements the list-destructuring algorithm: elements
// before the slurp consume from the front, elements after consume from
// the back (matched right-to-left), and the slurp (if any) absorbs
// whatever remains in the middle. Extra elements with no slurp present
// fail ArgError; missing elements fall back to their default expression,
// evaluated in the frame being built.
func (ev *Evaluator) bindListPattern(env *types.Environment, lb *ast.ListBinding, lst types.List) *gerr.Error {
	slurpIdx := -1
	for i, e := range lb.Elements {
		if e.IsSlurp {
			slurpIdx = i
			break
		}
	}
	var front, back []ast.ListBindingElem
	if slurpIdx == -1 {
		front = lb.Elements
	} else {
		front = lb.Elements[:slurpIdx]
		back = lb.Elements[slurpIdx+1:]
	}

	n := len(lst.Elems)
	idx := 0
	for _, e := range front {
		var val types.Value
		if idx < n {
			val = lst.Elems[idx]
			idx++
		} else if e.Default != nil {
			v, err := ev.Eval(e.Default, env)
			if err != nil {
				return err
			}
			val = v
		} else {
			return gerr.New(gerr.ArgError, lb.Sp, "list pattern expects more elements than provided")
		}
		if err := ev.bindBinding(env, e.Pattern, val); err != nil {
			return err
		}
	}

	backVals := make([]types.Value, len(back))
	j := n
	for i := len(back) - 1; i >= 0; i-- {
		e := back[i]
		if j > idx {
			j--
			backVals[i] = lst.Elems[j]
		} else if e.Default != nil {
			v, err := ev.Eval(e.Default, env)
			if err != nil {
				return err
			}
			backVals[i] = v
		} else {
			return gerr.New(gerr.ArgError, lb.Sp, "list pattern expects more elements than provided")
		}
	}

	if slurpIdx == -1 {
		if idx != j {
			return gerr.New(gerr.ArgError, lb.Sp, "list pattern does not accept %d extra element(s)", j-idx)
		}
	} else {
		slurpElem := lb.Elements[slurpIdx]
		if slurpElem.SlurpName != "" {
			env.Bind(types.Intern(slurpElem.SlurpName), types.NewList(append([]types.Value{}, lst.Elems[idx:j]...)))
		}
	}

	for i, e := range back {
		if err := ev.bindBinding(env, e.Pattern, backVals[i]); err != nil {
			return err
		}
	}
	return nil
}

// bindMapPattern matches each keyed element against the corresponding
// map entry, falling back to a default expression when absent, and
// collects any unmatched keys into the named slurp's new map.
func (ev *Evaluator) bindMapPattern(env *types.Environment, mb *ast.MapBinding, m types.Map) *gerr.Error {
	matched := map[types.Symbol]bool{}
	var slurpName string
	hasSlurp := false

	for _, e := range mb.Elements {
		if e.IsSlurp {
			hasSlurp = true
			slurpName = e.SlurpName
			continue
		}
		sym := types.Intern(e.Key)
		matched[sym] = true
		val, ok := m.Get(sym)
		if !ok {
			if e.Default == nil {
				return gerr.New(gerr.KeyError, mb.Sp, "map pattern requires key %q", e.Key)
			}
			v, err := ev.Eval(e.Default, env)
			if err != nil {
				return err
			}
			val = v
		}
		if err := ev.bindBinding(env, e.Pattern, val); err != nil {
			return err
		}
	}

	if hasSlurp && slurpName != "" {
		rest := types.NewMap()
		for _, k := range m.Keys() {
			if !matched[k] {
				v, _ := m.Get(k)
				rest.Set(k, v)
			}
		}
		env.Bind(types.Intern(slurpName), rest)
	}
	return nil
}
