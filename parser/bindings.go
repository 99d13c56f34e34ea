package parser

import (
	"gold/ast"
	"gold/gerr"
	"gold/token"
)

func (p *Parser) atAny(types ...token.Type) bool {
	for _, t := range types {
		if p.tok.Type == t {
			return true
		}
	}
	return false
}

// parseKey parses a bare map/pattern key from the current IDENT token,
// switching the lexer into key mode to extend it past identifier mode's
// character set (e.g. turning "my" into "my-key" when a hyphenated
// continuation follows). Key mode's other recognized tokens (`}`, `$`,
// `"`, `::`, `:`, `...`) coincide with expression mode's, so only this
// hyphen extension needs special handling here.
func (p *Parser) parseKey() (token.Token, *gerr.Error) {
	if p.tok.Type != token.IDENT {
		return token.Token{}, gerr.Syntaxf(p.tok.Span, "expected key, found %s", p.tok.Type)
	}
	tok := p.tok
	if tail, ok := p.lex.NextKeyTail(); ok {
		tok.Value += tail
		tok.Span.Length += len(tail)
		tok.Type = token.KEY
	}
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

// parseBinding parses one destructuring pattern: a bare identifier, a
// bracketed list pattern, or a braced map pattern.
func (p *Parser) parseBinding() (ast.Binding, *gerr.Error) {
	switch p.tok.Type {
	case token.IDENT:
		sp := p.tok.Span
		name := p.tok.Value
		if err := p.advance(); err != nil {
			return ast.Binding{}, err
		}
		return ast.Binding{Sp: sp, Kind: ast.BindIdentifier, Name: name}, nil
	case token.LBRACKET:
		start := p.tok.Span
		if err := p.advance(); err != nil {
			return ast.Binding{}, err
		}
		elems, err := p.parseListBindingElemsUntil(token.RBRACKET)
		if err != nil {
			return ast.Binding{}, err
		}
		end, err := p.expect(token.RBRACKET)
		if err != nil {
			return ast.Binding{}, err
		}
		sp := start.Through(end.Span)
		return ast.Binding{Sp: sp, Kind: ast.BindList, List: &ast.ListBinding{Sp: sp, Elements: elems}}, nil
	case token.LBRACE:
		start := p.tok.Span
		if err := p.advance(); err != nil {
			return ast.Binding{}, err
		}
		elems, err := p.parseMapBindingElemsUntil(token.RBRACE)
		if err != nil {
			return ast.Binding{}, err
		}
		end, err := p.expect(token.RBRACE)
		if err != nil {
			return ast.Binding{}, err
		}
		sp := start.Through(end.Span)
		return ast.Binding{Sp: sp, Kind: ast.BindMap, Map: &ast.MapBinding{Sp: sp, Elements: elems}}, nil
	}
	return ast.Binding{}, gerr.Syntaxf(p.tok.Span, "expected binding pattern, found %s", p.tok.Type)
}

// parseListBindingElemsUntil parses comma-separated list-binding elements
// until the current token matches one of terms (not consumed).
func (p *Parser) parseListBindingElemsUntil(terms ...token.Type) ([]ast.ListBindingElem, *gerr.Error) {
	var elems []ast.ListBindingElem
	if p.atAny(terms...) {
		return elems, nil
	}
	for {
		if p.at(token.ELLIPSIS) {
			sp := p.tok.Span
			if err := p.advance(); err != nil {
				return nil, err
			}
			name := ""
			if p.at(token.IDENT) {
				name = p.tok.Value
				sp = sp.Through(p.tok.Span)
				if err := p.advance(); err != nil {
					return nil, err
				}
			}
			elems = append(elems, ast.ListBindingElem{Sp: sp, IsSlurp: true, SlurpName: name})
		} else {
			pattern, err := p.parseBinding()
			if err != nil {
				return nil, err
			}
			sp := pattern.Sp
			var def ast.Expr
			if ok, err := p.accept(token.ASSIGN); err != nil {
				return nil, err
			} else if ok {
				def, err = p.parseExpr()
				if err != nil {
					return nil, err
				}
				sp = sp.Through(def.Span())
			}
			elems = append(elems, ast.ListBindingElem{Sp: sp, Pattern: pattern, Default: def})
		}
		if ok, err := p.accept(token.COMMA); err != nil {
			return nil, err
		} else if ok {
			if p.atAny(terms...) {
				break
			}
			continue
		}
		break
	}
	return elems, nil
}

// parseMapBindingElemsUntil parses comma-separated map-binding elements
// until the current token matches one of terms (not consumed).
func (p *Parser) parseMapBindingElemsUntil(terms ...token.Type) ([]ast.MapBindingElem, *gerr.Error) {
	var elems []ast.MapBindingElem
	if p.atAny(terms...) {
		return elems, nil
	}
	for {
		if p.at(token.ELLIPSIS) {
			sp := p.tok.Span
			if err := p.advance(); err != nil {
				return nil, err
			}
			name := ""
			if p.at(token.IDENT) {
				name = p.tok.Value
				sp = sp.Through(p.tok.Span)
				if err := p.advance(); err != nil {
					return nil, err
				}
			}
			elems = append(elems, ast.MapBindingElem{Sp: sp, IsSlurp: true, SlurpName: name})
		} else {
			keyTok, err := p.parseKey()
			if err != nil {
				return nil, err
			}
			sp := keyTok.Span
			pattern := ast.Binding{Sp: keyTok.Span, Kind: ast.BindIdentifier, Name: keyTok.Value}
			if ok, err := p.accept(token.AS); err != nil {
				return nil, err
			} else if ok {
				pattern, err = p.parseBinding()
				if err != nil {
					return nil, err
				}
				sp = sp.Through(pattern.Sp)
			}
			var def ast.Expr
			if ok, err := p.accept(token.ASSIGN); err != nil {
				return nil, err
			} else if ok {
				def, err = p.parseExpr()
				if err != nil {
					return nil, err
				}
				sp = sp.Through(def.Span())
			}
			elems = append(elems, ast.MapBindingElem{Sp: sp, Key: keyTok.Value, Pattern: pattern, Default: def})
		}
		if ok, err := p.accept(token.COMMA); err != nil {
			return nil, err
		} else if ok {
			if p.atAny(terms...) {
				break
			}
			continue
		}
		break
	}
	return elems, nil
}

// tryParseListBinding attempts to parse a parenthesized positional
// function parameter list's contents (the parser is already past the
// opening '('), stopping before ')' or ';'. It reports ok=false on any
// parse failure so the caller can backtrack cleanly to reinterpret the
// input as a parenthesized expression.
func (p *Parser) tryParseListBinding() (*ast.ListBinding, bool) {
	start := p.tok.Span
	elems, err := p.parseListBindingElemsUntil(token.RPAREN, token.SEMICOLON)
	if err != nil {
		return nil, false
	}
	if !p.atAny(token.RPAREN, token.SEMICOLON) {
		return nil, false
	}
	return &ast.ListBinding{Sp: start, Elements: elems}, true
}

// tryParseMapBindingBody attempts to parse a bare (unbracketed)
// comma-separated map-binding element list, stopping before '}' or ')'.
func (p *Parser) tryParseMapBindingBody() (*ast.MapBinding, bool) {
	start := p.tok.Span
	elems, err := p.parseMapBindingElemsUntil(token.RBRACE, token.RPAREN)
	if err != nil {
		return nil, false
	}
	if !p.atAny(token.RBRACE, token.RPAREN) {
		return nil, false
	}
	return &ast.MapBinding{Sp: start, Elements: elems}, true
}
