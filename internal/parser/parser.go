// Package parser builds a UCUM expression tree (internal/ast) from a token
// stream produced by internal/lexer, per spec §4.3.
//
// Grammar (equal left-to-right precedence for '.' and '/', spec §4.3):
//
//	mainTerm   := '/' term | term
//	term       := component (('.' | '/') component)*
//	component  := annotatable [ANNOTATION]
//	annotatable:= simpleUnit | '(' term ')' | ANNOTATION
//	simpleUnit := (ATOM | DIGITS) [exponent]   -- DIGITS alone is a Factor
//	exponent   := [SIGN] DIGITS
package parser

import (
	"github.com/ucum-go/ucum/internal/ast"
	"github.com/ucum-go/ucum/internal/lexer"
	"github.com/ucum-go/ucum/internal/ucumerrors"
)

// Parser consumes a fixed token slice with unrestricted lookahead, mirroring
// the teacher's cursor-based parser rather than a single-token-lookahead
// recursive descent, since UCUM expressions are short and fully tokenized
// up front by the lexer anyway.
type Parser struct {
	source string
	tokens []lexer.Token
	pos    int
	errs   []*ucumerrors.Error
}

// New creates a Parser over source, lexing it first. Lexical errors are
// folded into the same error slice Parse ultimately returns.
func New(source string) *Parser {
	l := lexer.New(source)
	p := &Parser{source: source, tokens: l.Tokens()}
	p.errs = append(p.errs, l.Errors()...)
	return p
}

// Parse parses the full token stream into an expression tree. If lexing
// failed, or the tree does not consume every token, the returned error
// describes the first problem found.
func Parse(source string) (ast.Node, error) {
	p := New(source)
	return p.ParseMainTerm()
}

func (p *Parser) cur() lexer.Token  { return p.tokens[p.pos] }
func (p *Parser) atEnd() bool       { return p.cur().Type == lexer.EOF }
func (p *Parser) advance() lexer.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) fail(offset int, format string, args ...any) *ucumerrors.Error {
	e := ucumerrors.Newf(ucumerrors.ParseError, format, args...).At(p.source, offset)
	p.errs = append(p.errs, e)
	return e
}

// ParseMainTerm parses the whole expression, including the leading-slash
// special case: "/min" means Quotient(Factor(1), "min") (spec §4.3).
func (p *Parser) ParseMainTerm() (ast.Node, error) {
	if len(p.errs) > 0 {
		return nil, p.errs[0]
	}

	var node ast.Node
	if p.cur().Type == lexer.SLASH {
		offset := p.cur().Offset
		p.advance()
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		node = ast.NewQuotient(ast.NewFactor(1, offset), rhs)
	} else {
		var err error
		node, err = p.parseTerm()
		if err != nil {
			return nil, err
		}
	}

	if !p.atEnd() {
		return nil, p.fail(p.cur().Offset, "unexpected token %q after end of expression", p.cur().Literal)
	}
	return node, nil
}

func (p *Parser) parseTerm() (ast.Node, error) {
	left, err := p.parseComponent()
	if err != nil {
		return nil, err
	}

	for {
		switch p.cur().Type {
		case lexer.DOT:
			p.advance()
			right, err := p.parseComponent()
			if err != nil {
				return nil, err
			}
			left = ast.NewProduct(left, right)
		case lexer.SLASH:
			p.advance()
			right, err := p.parseComponent()
			if err != nil {
				return nil, err
			}
			left = ast.NewQuotient(left, right)
		default:
			return left, nil
		}
	}
}

func (p *Parser) parseComponent() (ast.Node, error) {
	node, err := p.parseAnnotatable()
	if err != nil {
		return nil, err
	}
	if p.cur().Type == lexer.ANNOTATION {
		tok := p.advance()
		node = ast.NewProduct(node, ast.NewAnnotation(tok.Literal, tok.Offset))
	}
	return node, nil
}

func (p *Parser) parseAnnotatable() (ast.Node, error) {
	switch p.cur().Type {
	case lexer.LPAREN:
		offset := p.cur().Offset
		p.advance()
		inner, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if p.cur().Type != lexer.RPAREN {
			return nil, p.fail(p.cur().Offset, "expected ')', found %q", p.cur().Literal)
		}
		p.advance()
		return ast.NewParenthesized(inner, offset), nil
	case lexer.ATOM:
		return p.parseSimple()
	case lexer.DIGITS:
		return p.parseSimple()
	case lexer.ANNOTATION:
		tok := p.advance()
		return ast.NewAnnotation(tok.Literal, tok.Offset), nil
	default:
		return nil, p.fail(p.cur().Offset, "expected a unit atom, found %q", p.cur().Literal)
	}
}

// parseSimple parses an ATOM or bare DIGITS literal — a numeric literal like
// "10*3" is lexed as ATOM("10*") DIGITS("3"), i.e. the same shape as a unit
// atom followed by an exponent, and a pure numeral like "123" is lexed as
// one DIGITS token standing alone as a factor-valued simple unit — followed
// by an optional exponent.
func (p *Parser) parseSimple() (ast.Node, error) {
	tok := p.advance()
	exponent, err := p.parseExponent()
	if err != nil {
		return nil, err
	}
	if tok.Type == lexer.DIGITS && exponent == 1 {
		n, convErr := parseInt(tok.Literal)
		if convErr == nil {
			return ast.NewFactor(n, tok.Offset), nil
		}
	}
	return ast.NewSimple("", tok.Literal, exponent, tok.Offset), nil
}

// parseExponent parses an optional [SIGN] DIGITS suffix. Absence yields 1.
func (p *Parser) parseExponent() (int64, error) {
	sign := int64(1)
	if p.cur().Type == lexer.SIGN {
		tok := p.advance()
		if tok.Literal == "-" {
			sign = -1
		}
		if p.cur().Type != lexer.DIGITS {
			return 0, p.fail(p.cur().Offset, "expected digits after %q, found %q", tok.Literal, p.cur().Literal)
		}
		digitsTok := p.advance()
		n, err := parseInt(digitsTok.Literal)
		if err != nil {
			return 0, p.fail(digitsTok.Offset, "invalid exponent %q", digitsTok.Literal)
		}
		return sign * n, nil
	}
	if p.cur().Type == lexer.DIGITS {
		tok := p.advance()
		n, err := parseInt(tok.Literal)
		if err != nil {
			return 0, p.fail(tok.Offset, "invalid exponent %q", tok.Literal)
		}
		return n, nil
	}
	return 1, nil
}

func parseInt(s string) (int64, error) {
	var n int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, ucumerrors.New(ucumerrors.ParseError, "not a decimal integer: "+s)
		}
		n = n*10 + int64(c-'0')
	}
	return n, nil
}
