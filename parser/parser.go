// Package parser implements Gold's recursive-descent parser: a
// precedence ladder over binary/unary operators, destructuring binding
// patterns shared between `let`, function parameters and `for`
// comprehensions, and the list/map comprehension forms.
//
// The parser holds a single lexer whose cursor advances in place as
// tokens are read and is shared by every parse method; it is not an
// immutable cursor. Backtracking saves a (lexer snapshot, token) mark and
// restores it verbatim when a tentative parse fails.
package parser

import (
	"gold/ast"
	"gold/gerr"
	"gold/lexer"
	"gold/token"
)

// Parser holds one token of lookahead over a lexer.Lexer.
type Parser struct {
	lex *lexer.Lexer
	tok token.Token
}

// New creates a parser over src, positioned at the first token.
func New(src string) (*Parser, *gerr.Error) {
	p := &Parser{lex: lexer.New(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() *gerr.Error {
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

type mark struct {
	lex lexer.Snapshot
	tok token.Token
}

func (p *Parser) mark() mark {
	return mark{lex: p.lex.Save(), tok: p.tok}
}

func (p *Parser) reset(m mark) {
	p.lex.Restore(m.lex)
	p.tok = m.tok
}

func (p *Parser) at(t token.Type) bool {
	return p.tok.Type == t
}

func (p *Parser) expect(t token.Type) (token.Token, *gerr.Error) {
	if p.tok.Type != t {
		return token.Token{}, gerr.Syntaxf(p.tok.Span, "expected %s, found %s", t, p.tok.Type)
	}
	cur := p.tok
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return cur, nil
}

// accept consumes the current token and advances if it matches t,
// reporting whether it did.
func (p *Parser) accept(t token.Type) (bool, *gerr.Error) {
	if p.tok.Type != t {
		return false, nil
	}
	if err := p.advance(); err != nil {
		return false, err
	}
	return true, nil
}

// ParseFile parses a complete Gold source file: zero or more imports
// followed by a single body expression, then requires end of input.
func ParseFile(src string) (*ast.File, *gerr.Error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	f := &ast.File{}
	for p.at(token.IMPORT) {
		imp, err := p.parseImport()
		if err != nil {
			return nil, err
		}
		f.Imports = append(f.Imports, *imp)
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	f.Body = body
	if !p.at(token.EOF) {
		return nil, gerr.Syntaxf(p.tok.Span, "unexpected trailing input starting with %s", p.tok.Type)
	}
	return f, nil
}

func (p *Parser) parseImport() (*ast.Import, *gerr.Error) {
	start, err := p.expect(token.IMPORT)
	if err != nil {
		return nil, err
	}
	path, err := p.parseStringExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.AS); err != nil {
		return nil, err
	}
	b, err := p.parseBinding()
	if err != nil {
		return nil, err
	}
	pathText, ok := staticStringText(path)
	if !ok {
		return nil, gerr.Syntaxf(start.Span, "import path must be a plain string literal")
	}
	return &ast.Import{Sp: start.Span.Through(b.Sp), Path: pathText, Binding: b}, nil
}

// staticStringText extracts the literal text of a String AST node that
// contains no interpolation, as required for import paths.
func staticStringText(e ast.Expr) (string, bool) {
	s, ok := e.(*ast.String)
	if !ok {
		return "", false
	}
	out := ""
	for _, part := range s.Parts {
		if part.Interp != nil {
			return "", false
		}
		out += part.Raw
	}
	return out, true
}

// parseExpr is the top-level expression rule: a composite form
// (let/if/function literal) or, failing that, a disjunction.
func (p *Parser) parseExpr() (ast.Expr, *gerr.Error) {
	switch p.tok.Type {
	case token.LET:
		return p.parseLet()
	case token.IF:
		return p.parseBranch()
	case token.LPAREN:
		if fn, ok, err := p.tryParsePositionalFunction(); err != nil {
			return nil, err
		} else if ok {
			return fn, nil
		}
	case token.LBRACE:
		if fn, ok, err := p.tryParseKeywordFunction(); err != nil {
			return nil, err
		} else if ok {
			return fn, nil
		}
	}
	return p.parseDisjunction()
}

func (p *Parser) parseLet() (ast.Expr, *gerr.Error) {
	start, err := p.expect(token.LET)
	if err != nil {
		return nil, err
	}
	var bindings []ast.LetBinding
	for {
		b, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ASSIGN); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, ast.LetBinding{Pattern: b, Value: val})
		if ok, err := p.accept(token.SEMICOLON); err != nil {
			return nil, err
		} else if ok {
			continue
		}
		break
	}
	if _, err := p.expect(token.IN); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Let{Pos: ast.NewBase(start.Span.Through(body.Span())), Bindings: bindings, Body: body}, nil
}

func (p *Parser) parseBranch() (ast.Expr, *gerr.Error) {
	start, err := p.expect(token.IF)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.THEN); err != nil {
		return nil, err
	}
	trueBranch, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ELSE); err != nil {
		return nil, err
	}
	falseBranch, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Branch{
		Pos:       ast.NewBase(start.Span.Through(falseBranch.Span())),
		Condition: cond,
		True:      trueBranch,
		False:     falseBranch,
	}, nil
}

// tryParsePositionalFunction attempts `(list-binding[; map-binding]) => expr`
// from the current LPAREN, backtracking cleanly if it is actually a
// parenthesized expression.
func (p *Parser) tryParsePositionalFunction() (ast.Expr, bool, *gerr.Error) {
	m := p.mark()
	start := p.tok
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, false, err
	}

	lb, ok := p.tryParseListBinding()
	if !ok {
		p.reset(m)
		return nil, false, nil
	}

	var mb *ast.MapBinding
	if ok, _ := p.accept(token.SEMICOLON); ok {
		parsed, ok2 := p.tryParseMapBindingBody()
		if !ok2 {
			p.reset(m)
			return nil, false, nil
		}
		mb = parsed
	}

	if _, err := p.expect(token.RPAREN); err != nil {
		p.reset(m)
		return nil, false, nil
	}
	if _, err := p.expect(token.ARROW); err != nil {
		p.reset(m)
		return nil, false, nil
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, false, err
	}
	return &ast.Function{
		Pos:        ast.NewBase(start.Span.Through(body.Span())),
		Positional: lb,
		Keywords:   mb,
		Body:       body,
	}, true, nil
}

// tryParseKeywordFunction attempts `{map-binding} => expr`.
func (p *Parser) tryParseKeywordFunction() (ast.Expr, bool, *gerr.Error) {
	m := p.mark()
	start := p.tok
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, false, err
	}
	mb, ok := p.tryParseMapBindingBody()
	if !ok {
		p.reset(m)
		return nil, false, nil
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		p.reset(m)
		return nil, false, nil
	}
	if _, err := p.expect(token.ARROW); err != nil {
		p.reset(m)
		return nil, false, nil
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, false, err
	}
	return &ast.Function{
		Pos:         ast.NewBase(start.Span.Through(body.Span())),
		Positional:  &ast.ListBinding{},
		Keywords:    mb,
		KeywordOnly: true,
		Body:        body,
	}, true, nil
}
