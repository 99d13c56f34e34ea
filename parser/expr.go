package parser

import (
	"math/big"
	"strconv"

	"gold/ast"
	"gold/gerr"
	"gold/span"
	"gold/token"
)

// parseDisjunction .. parsePostfix implement the binary/unary operator
// precedence ladder, loosest to tightest: or, and, comparison,
// additive, multiplicative, prefix `not` and unary sign, power (right
// associative), postfix (index/call), atom.
func (p *Parser) parseDisjunction() (ast.Expr, *gerr.Error) {
	left, err := p.parseConjunction()
	if err != nil {
		return nil, err
	}
	for p.at(token.OR) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseConjunction()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Pos: ast.NewBase(left.Span().Through(right.Span())), Left: left, Op: ast.LogicOr, Right: right}
	}
	return left, nil
}

func (p *Parser) parseConjunction() (ast.Expr, *gerr.Error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.at(token.AND) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Pos: ast.NewBase(left.Span().Through(right.Span())), Left: left, Op: ast.LogicAnd, Right: right}
	}
	return left, nil
}

func (p *Parser) parseNot() (ast.Expr, *gerr.Error) {
	if p.at(token.NOT) {
		start := p.tok.Span
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Pos: ast.NewBase(start.Through(operand.Span())), Op: ast.UnaryNot, Operand: operand}, nil
	}
	return p.parseUnary()
}

var compareOps = map[token.Type]ast.BinaryOp{
	token.EQ: ast.Eq, token.NE: ast.Ne,
	token.LT: ast.Lt, token.LE: ast.Le,
	token.GT: ast.Gt, token.GE: ast.Ge,
}

func (p *Parser) parseComparison() (ast.Expr, *gerr.Error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if op, ok := compareOps[p.tok.Type]; ok {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Pos: ast.NewBase(left.Span().Through(right.Span())), Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Expr, *gerr.Error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.at(token.PLUS) || p.at(token.MINUS) {
		op := ast.Add
		if p.at(token.MINUS) {
			op = ast.Sub
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Pos: ast.NewBase(left.Span().Through(right.Span())), Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) parseTerm() (ast.Expr, *gerr.Error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.at(token.STAR) || p.at(token.SLASH) || p.at(token.DSLASH) {
		var op ast.BinaryOp
		switch p.tok.Type {
		case token.STAR:
			op = ast.Mul
		case token.SLASH:
			op = ast.Div
		case token.DSLASH:
			op = ast.FloorDiv
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Pos: ast.NewBase(left.Span().Through(right.Span())), Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, *gerr.Error) {
	if p.at(token.PLUS) || p.at(token.MINUS) {
		op := ast.UnaryPlus
		if p.at(token.MINUS) {
			op = ast.UnaryNeg
		}
		start := p.tok.Span
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Pos: ast.NewBase(start.Through(operand.Span())), Op: op, Operand: operand}, nil
	}
	return p.parsePower()
}

// parsePower binds tighter than the unary sign but is itself right
// associative: `2 ^ -3 ^ 2` parses as `2 ^ (-(3 ^ 2))`.
func (p *Parser) parsePower() (ast.Expr, *gerr.Error) {
	base, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.at(token.CARET) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		exp, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Pos: ast.NewBase(base.Span().Through(exp.Span())), Left: base, Op: ast.Pow, Right: exp}, nil
	}
	return base, nil
}

func (p *Parser) parsePostfix() (ast.Expr, *gerr.Error) {
	e, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok.Type {
		case token.DOT:
			if err := p.advance(); err != nil {
				return nil, err
			}
			name, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			e = &ast.Index{
				Pos:    ast.NewBase(e.Span().Through(name.Span)),
				Target: e,
				Index:  &ast.String{Pos: ast.NewBase(name.Span), Parts: []ast.StringPart{{Raw: name.Value}}},
			}
		case token.LBRACKET:
			if err := p.advance(); err != nil {
				return nil, err
			}
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			end, err := p.expect(token.RBRACKET)
			if err != nil {
				return nil, err
			}
			e = &ast.Index{Pos: ast.NewBase(e.Span().Through(end.Span)), Target: e, Index: idx}
		case token.LPAREN:
			if err := p.advance(); err != nil {
				return nil, err
			}
			args, end, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			e = &ast.FunCall{Pos: ast.NewBase(e.Span().Through(end)), Callee: e, Args: args}
		default:
			return e, nil
		}
	}
}

// peekIsColon reports whether the token after the current one is a
// COLON, used to disambiguate a keyword argument (`name: expr`) from a
// positional argument that happens to be a bare identifier.
func (p *Parser) peekIsColon() bool {
	m := p.mark()
	if err := p.advance(); err != nil {
		p.reset(m)
		return false
	}
	isColon := p.at(token.COLON)
	p.reset(m)
	return isColon
}

// parseCallArgs parses a call's argument list up to and including the
// closing ')'. An argument is positional, a splat (`...expr`), or
// keyword (`name: expr`).
func (p *Parser) parseCallArgs() ([]ast.CallArg, span.Span, *gerr.Error) {
	var args []ast.CallArg
	if p.at(token.RPAREN) {
		end := p.tok.Span
		if err := p.advance(); err != nil {
			return nil, span.Span{}, err
		}
		return args, end, nil
	}
	for {
		if p.at(token.ELLIPSIS) {
			if err := p.advance(); err != nil {
				return nil, span.Span{}, err
			}
			v, err := p.parseExpr()
			if err != nil {
				return nil, span.Span{}, err
			}
			args = append(args, ast.CallArg{Kind: ast.ArgSplat, Value: v})
		} else if p.at(token.IDENT) && p.peekIsColon() {
			name := p.tok.Value
			if err := p.advance(); err != nil {
				return nil, span.Span{}, err
			}
			if _, err := p.expect(token.COLON); err != nil {
				return nil, span.Span{}, err
			}
			v, err := p.parseExpr()
			if err != nil {
				return nil, span.Span{}, err
			}
			args = append(args, ast.CallArg{Kind: ast.ArgKeyword, Name: name, Value: v})
		} else {
			v, err := p.parseExpr()
			if err != nil {
				return nil, span.Span{}, err
			}
			args = append(args, ast.CallArg{Kind: ast.ArgPositional, Value: v})
		}
		if ok, err := p.accept(token.COMMA); err != nil {
			return nil, span.Span{}, err
		} else if ok {
			if p.at(token.RPAREN) {
				break
			}
			continue
		}
		break
	}
	end, err := p.expect(token.RPAREN)
	if err != nil {
		return nil, span.Span{}, err
	}
	return args, end.Span, nil
}

func (p *Parser) parseAtom() (ast.Expr, *gerr.Error) {
	switch p.tok.Type {
	case token.NULL:
		sp := p.tok.Span
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Literal{Pos: ast.NewBase(sp), Kind: ast.LitNull}, nil
	case token.TRUE, token.FALSE:
		sp := p.tok.Span
		v := p.tok.Type == token.TRUE
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Literal{Pos: ast.NewBase(sp), Kind: ast.LitBool, Bool: v}, nil
	case token.INT:
		sp := p.tok.Span
		n := new(big.Int)
		if _, ok := n.SetString(p.tok.Value, 10); !ok {
			return nil, gerr.Syntaxf(sp, "invalid integer literal %q", p.tok.Value)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Literal{Pos: ast.NewBase(sp), Kind: ast.LitInt, Int: n}, nil
	case token.FLOAT:
		sp := p.tok.Span
		f, ferr := strconv.ParseFloat(p.tok.Value, 64)
		if ferr != nil {
			return nil, gerr.Syntaxf(sp, "invalid float literal %q", p.tok.Value)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Literal{Pos: ast.NewBase(sp), Kind: ast.LitFloat, Float: f}, nil
	case token.IDENT:
		sp := p.tok.Span
		name := p.tok.Value
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Identifier{Pos: ast.NewBase(sp), Name: name}, nil
	case token.STRING_OPEN:
		return p.parseStringExpr()
	case token.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	case token.LBRACKET:
		return p.parseList()
	case token.LBRACE:
		return p.parseMap()
	}
	return nil, gerr.Syntaxf(p.tok.Span, "unexpected token %s", p.tok.Type)
}
