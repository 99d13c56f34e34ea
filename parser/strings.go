package parser

import (
	"gold/ast"
	"gold/gerr"
	"gold/token"
)

// parseStringExpr parses a `"..."` literal, including any `${expr}`
// interpolations, starting from the opening STRING_OPEN token already in
// p.tok. It switches the lexer into string mode directly: the ordinary
// one-token lookahead mechanism would otherwise read the string's body
// as expression-mode tokens.
func (p *Parser) parseStringExpr() (ast.Expr, *gerr.Error) {
	if p.tok.Type != token.STRING_OPEN {
		return nil, gerr.Syntaxf(p.tok.Span, "expected string literal")
	}
	start := p.tok.Span
	openCol := start.Column
	var parts []ast.StringPart

	for {
		piece, err := p.lex.NextStringPiece(openCol)
		if err != nil {
			return nil, err
		}
		switch piece.Type {
		case token.STRING_RAW:
			if piece.Value != "" {
				parts = append(parts, ast.StringPart{Raw: piece.Value})
			}
		case token.INTERP_OPEN:
			if err := p.advance(); err != nil {
				return nil, err
			}
			inner, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if p.tok.Type != token.RBRACE {
				return nil, gerr.Syntaxf(p.tok.Span, "expected '}' to close string interpolation")
			}
			parts = append(parts, ast.StringPart{Interp: inner})
			// The lexer cursor sits right after the '}' that closed the
			// interpolation; resume string-mode scanning without
			// fetching another expression-mode token.
		case token.STRING_OPEN:
			end := piece.Span
			if err := p.advance(); err != nil {
				return nil, err
			}
			return &ast.String{Pos: ast.NewBase(start.Through(end)), Parts: parts}, nil
		}
	}
}
