package parser

import (
	"gold/ast"
	"gold/gerr"
	"gold/token"
)

// parseList parses a list literal: `[elem, elem, ...]`, where each
// element may be a plain value, a splat, or a for/if comprehension
// clause wrapping a nested element.
func (p *Parser) parseList() (ast.Expr, *gerr.Error) {
	start, err := p.expect(token.LBRACKET)
	if err != nil {
		return nil, err
	}
	var elems []ast.ListElem
	if !p.at(token.RBRACKET) {
		for {
			e, err := p.parseListElem()
			if err != nil {
				return nil, err
			}
			elems = append(elems, *e)
			if ok, err := p.accept(token.COMMA); err != nil {
				return nil, err
			} else if ok {
				if p.at(token.RBRACKET) {
					break
				}
				continue
			}
			break
		}
	}
	end, err := p.expect(token.RBRACKET)
	if err != nil {
		return nil, err
	}
	return &ast.List{Pos: ast.NewBase(start.Span.Through(end.Span)), Elements: elems}, nil
}

func (p *Parser) parseListElem() (*ast.ListElem, *gerr.Error) {
	switch {
	case p.at(token.FOR):
		if err := p.advance(); err != nil {
			return nil, err
		}
		binder, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.IN); err != nil {
			return nil, err
		}
		iterable, err := p.parseDisjunction()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		body, err := p.parseListElem()
		if err != nil {
			return nil, err
		}
		return &ast.ListElem{Kind: ast.ElemForLoop, Binder: binder, Iterable: iterable, Body: body}, nil
	case p.at(token.IF):
		if err := p.advance(); err != nil {
			return nil, err
		}
		cond, err := p.parseDisjunction()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		body, err := p.parseListElem()
		if err != nil {
			return nil, err
		}
		return &ast.ListElem{Kind: ast.ElemIf, Condition: cond, Body: body}, nil
	case p.at(token.ELLIPSIS):
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.ListElem{Kind: ast.ElemSplat, Value: v}, nil
	default:
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.ListElem{Kind: ast.ElemSingle, Value: v}, nil
	}
}

// parseMap parses a map literal: `{key: value, $expr: value, ...}`,
// with the same splat/for/if comprehension clauses as list literals.
func (p *Parser) parseMap() (ast.Expr, *gerr.Error) {
	start, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}
	var elems []ast.MapElem
	if !p.at(token.RBRACE) {
		for {
			e, err := p.parseMapElem()
			if err != nil {
				return nil, err
			}
			elems = append(elems, *e)
			if ok, err := p.accept(token.COMMA); err != nil {
				return nil, err
			} else if ok {
				if p.at(token.RBRACE) {
					break
				}
				continue
			}
			break
		}
	}
	end, err := p.expect(token.RBRACE)
	if err != nil {
		return nil, err
	}
	return &ast.Map{Pos: ast.NewBase(start.Span.Through(end.Span)), Elements: elems}, nil
}

func (p *Parser) parseMapElem() (*ast.MapElem, *gerr.Error) {
	switch {
	case p.at(token.FOR):
		if err := p.advance(); err != nil {
			return nil, err
		}
		binder, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.IN); err != nil {
			return nil, err
		}
		iterable, err := p.parseDisjunction()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		body, err := p.parseMapElem()
		if err != nil {
			return nil, err
		}
		return &ast.MapElem{Kind: ast.MapForLoop, Binder: binder, Iterable: iterable, Body: body}, nil
	case p.at(token.IF):
		if err := p.advance(); err != nil {
			return nil, err
		}
		cond, err := p.parseDisjunction()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		body, err := p.parseMapElem()
		if err != nil {
			return nil, err
		}
		return &ast.MapElem{Kind: ast.MapIf, Condition: cond, Body: body}, nil
	case p.at(token.ELLIPSIS):
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.MapElem{Kind: ast.MapSplat, Splat: v}, nil
	case p.at(token.DOLLAR):
		if err := p.advance(); err != nil {
			return nil, err
		}
		keyExpr, err := p.parseDisjunction()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.MapElem{Kind: ast.MapSingle, Key: ast.MapKey{Dynamic: keyExpr}, Value: val}, nil
	case p.at(token.IDENT):
		keyTok, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.MapElem{Kind: ast.MapSingle, Key: ast.MapKey{Name: keyTok.Value}, Value: val}, nil
	}
	return nil, gerr.Syntaxf(p.tok.Span, "expected map key, '$', 'for', 'if' or '...', found %s", p.tok.Type)
}
