// Package ucumerrors defines the error taxonomy shared by every layer of the
// UCUM engine (lexer, parser, registry, canonicalizer, conversion engine) and
// formats failures with enough positional context to localize the fault.
package ucumerrors

import (
	"fmt"
	"strings"
)

// Kind identifies which layer of the engine produced an error, per spec §7.
type Kind int

const (
	LexError Kind = iota
	ParseError
	UnknownSymbol
	InvalidCombination
	DimensionMismatch
	IncompatibleArbitrary
	NumericError
	LoaderError
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "LexError"
	case ParseError:
		return "ParseError"
	case UnknownSymbol:
		return "UnknownSymbol"
	case InvalidCombination:
		return "InvalidCombination"
	case DimensionMismatch:
		return "DimensionMismatch"
	case IncompatibleArbitrary:
		return "IncompatibleArbitrary"
	case NumericError:
		return "NumericError"
	case LoaderError:
		return "LoaderError"
	default:
		return "Unknown"
	}
}

// Error is a single structured failure from any engine layer.
//
// Offset is a byte offset into Source (the original UCUM expression text);
// it is -1 when the error has no single associated position (e.g. a
// LoaderError spanning several reference tables). Symbol, when non-empty,
// names the operand that caused the failure (an atom or prefix symbol).
type Error struct {
	Kind    Kind
	Message string
	Source  string
	Offset  int
	Symbol  string
}

// New creates an Error with no associated source position.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Offset: -1}
}

// Newf creates an Error with no associated source position from a format string.
func Newf(kind Kind, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// At returns a copy of e anchored to source/offset, for layers that discover
// the failing expression after the error value was first constructed.
func (e *Error) At(source string, offset int) *Error {
	cp := *e
	cp.Source = source
	cp.Offset = offset
	return &cp
}

// WithSymbol returns a copy of e carrying the offending symbol.
func (e *Error) WithSymbol(symbol string) *Error {
	cp := *e
	cp.Symbol = symbol
	return &cp
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Format()
}

// Format renders the error with a caret under the offending byte of Source,
// the same shape as the teacher's CompilerError.Format but for a single-line
// UCUM expression addressed by byte offset rather than line/column.
func (e *Error) Format() string {
	var sb strings.Builder

	sb.WriteString(e.Kind.String())
	sb.WriteString(": ")
	sb.WriteString(e.Message)

	if e.Symbol != "" {
		fmt.Fprintf(&sb, " (symbol %q)", e.Symbol)
	}

	if e.Source != "" && e.Offset >= 0 && e.Offset <= len(e.Source) {
		sb.WriteString("\n    ")
		sb.WriteString(e.Source)
		sb.WriteString("\n    ")
		sb.WriteString(strings.Repeat(" ", e.Offset))
		sb.WriteString("^")
	}

	return sb.String()
}

// Is supports errors.Is(err, ucumerrors.LexError) style matching against a
// Kind wrapped as an error by As/assertion; primarily used by tests.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == kind
}
