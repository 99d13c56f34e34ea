package lexer

import (
	"strings"

	"gold/gerr"
	"gold/token"
)

// NextStringPiece reads the next element inside a `"..."` literal: the
// closing quote, an interpolation opener `${`, or a raw run with `\"`,
// `\\`, `\n`, `\t` and `\$` escapes already resolved. Called only after
// the opening quote (or a closing `}` of an interpolation) has been
// consumed. openCol is the column of the literal's opening `"`, used to
// implement multi-line string mode: a raw newline followed by a line
// whose first openCol characters are all whitespace (so its content
// starts past the opening quote's column) continues the same literal
// with those openCol characters stripped (dedented); any other line is
// not a continuation and is kept verbatim, the way an ordinary embedded
// newline would be.
func (l *Lexer) NextStringPiece(openCol int) (token.Token, *gerr.Error) {
	start := l.here()

	switch l.ch {
	case '"':
		l.advance()
		return l.finish(start, token.STRING_OPEN, "\""), nil
	case 0:
		return token.Token{}, gerr.Syntaxf(start, "unexpected end of input inside string literal")
	case '$':
		if l.peek() != '{' {
			return token.Token{}, gerr.Syntaxf(start, "expected '{' after '$' in string interpolation")
		}
		l.advance()
		l.advance()
		return l.finish(start, token.INTERP_OPEN, "${"), nil
	}

	var sb strings.Builder
	for l.ch != '"' && l.ch != '$' && l.ch != 0 {
		if l.ch == '\\' {
			escPos := l.here()
			l.advance()
			switch l.ch {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			case '$':
				sb.WriteByte('$')
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				return token.Token{}, gerr.Syntaxf(escPos, "unrecognized escape sequence")
			}
			l.advance()
			continue
		}
		if l.ch == '\n' && l.tryDedentContinuation(openCol) {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteByte(l.ch)
		l.advance()
	}
	return l.finish(start, token.STRING_RAW, sb.String()), nil
}

// tryDedentContinuation consumes a '\n' plus the following line's first
// openCol whitespace characters, leaving the cursor at the line's
// remaining content, provided those openCol characters are all
// whitespace (the line's content then starts at a column deeper than
// openCol). It leaves the lexer untouched and reports false otherwise,
// so the caller treats the newline as ordinary raw content.
func (l *Lexer) tryDedentContinuation(openCol int) bool {
	snap := l.Save()
	l.advance() // consume '\n'
	for i := 0; i < openCol; i++ {
		if l.ch != ' ' && l.ch != '\t' {
			l.Restore(snap)
			return false
		}
		l.advance()
	}
	return true
}
