// Package ast defines the expression-tree node types produced by the parser
// for a UCUM unit term (spec §3, §4.3).
package ast

import (
	"strconv"
	"strings"
)

// Node is the base interface every expression-tree node implements.
type Node interface {
	// String returns a source-like reconstruction of the node, used for
	// debugging, the `ucum parse` CLI command, and round-trip tests.
	String() string

	// Offset returns the byte offset of the node's first token in the
	// original expression, for error reporting.
	Offset() int
}

// Factor is a bare positive-integer literal, e.g. the "2" and "5" in "2.5"
// (which the grammar folds to the dimensionless number 10, not 2.5).
type Factor struct {
	Value  int64
	offset int
}

func NewFactor(value int64, offset int) *Factor { return &Factor{Value: value, offset: offset} }
func (f *Factor) String() string                 { return strconv.FormatInt(f.Value, 10) }
func (f *Factor) Offset() int                    { return f.offset }

// Annotation is curly-brace text carrying no semantic content; it is
// equivalent to the dimensionless unit 1 wherever it appears.
type Annotation struct {
	Payload string
	offset  int
}

func NewAnnotation(payload string, offset int) *Annotation {
	return &Annotation{Payload: payload, offset: offset}
}
func (a *Annotation) String() string { return "{" + a.Payload + "}" }
func (a *Annotation) Offset() int    { return a.offset }

// Simple is a single unit symbol, optionally prefixed and/or raised to an
// integer exponent: `[prefix]Atom[exponent]`. The parser leaves Prefix empty
// and stores the whole symbol text as written in Atom (a bracketed atom
// counts as one indivisible symbol, per spec §4.3); the prefix/atom split is
// made later by the registry when Symbol() is resolved. Exponent defaults to
// 1 when absent from the source.
type Simple struct {
	Prefix   string
	Atom     string
	Exponent int64
	offset   int
}

func NewSimple(prefix, atom string, exponent int64, offset int) *Simple {
	return &Simple{Prefix: prefix, Atom: atom, Exponent: exponent, offset: offset}
}

// Symbol returns the full symbol text as it would be looked up in the
// registry: prefix concatenated with atom, with no exponent.
func (s *Simple) Symbol() string { return s.Prefix + s.Atom }

func (s *Simple) String() string {
	var sb strings.Builder
	sb.WriteString(s.Prefix)
	sb.WriteString(s.Atom)
	if s.Exponent != 1 {
		sb.WriteString(strconv.FormatInt(s.Exponent, 10))
	}
	return sb.String()
}
func (s *Simple) Offset() int { return s.offset }

// Product represents Left '.' Right.
type Product struct {
	Left, Right Node
}

func NewProduct(left, right Node) *Product { return &Product{Left: left, Right: right} }
func (p *Product) Offset() int             { return p.Left.Offset() }

// String writes an annotation right operand without the '.', so the
// parser's Product(mg, {total}) prints back as "mg{total}".
func (p *Product) String() string {
	if _, ok := p.Right.(*Annotation); ok {
		return p.Left.String() + p.Right.String()
	}
	return p.Left.String() + "." + p.Right.String()
}

// Quotient represents Left '/' Right.
type Quotient struct {
	Left, Right Node
}

func NewQuotient(left, right Node) *Quotient { return &Quotient{Left: left, Right: right} }
func (q *Quotient) String() string           { return q.Left.String() + "/" + q.Right.String() }
func (q *Quotient) Offset() int              { return q.Left.Offset() }

// Parenthesized represents '(' Child ')'. A prefix can never attach to a
// Parenthesized node; the grammar only allows simple-unit (an ATOM) to carry
// a prefix (spec §3 invariant).
type Parenthesized struct {
	Child  Node
	offset int
}

func NewParenthesized(child Node, offset int) *Parenthesized {
	return &Parenthesized{Child: child, offset: offset}
}
func (p *Parenthesized) String() string { return "(" + p.Child.String() + ")" }
func (p *Parenthesized) Offset() int    { return p.offset }
