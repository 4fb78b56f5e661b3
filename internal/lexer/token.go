package lexer

// TokenType identifies the lexical category of a Token, per spec §4.2.
type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF

	DIGITS     // a maximal run of ASCII digits, e.g. "123"
	SIGN       // '+' or '-', only meaningful at exponent positions
	DOT        // '.'
	SLASH      // '/'
	LPAREN     // '('
	RPAREN     // ')'
	ATOM       // a maximal run of atom-valid bytes, may embed [bracketed] spans
	ANNOTATION // the text enclosed by a matched {brace} pair, braces excluded
)

func (t TokenType) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case DIGITS:
		return "DIGITS"
	case SIGN:
		return "SIGN"
	case DOT:
		return "DOT"
	case SLASH:
		return "SLASH"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case ATOM:
		return "ATOM"
	case ANNOTATION:
		return "ANNOTATION"
	default:
		return "UNKNOWN"
	}
}

// Token is a single lexical unit produced by the Lexer.
//
// Offset is the byte offset of the token's first byte in the original input;
// UCUM expressions are always a single line, so an offset is all the
// position information any layer needs (unlike the teacher's line/column
// pairs, which exist to address multi-line DWScript source).
type Token struct {
	Type    TokenType
	Literal string
	Offset  int
}
