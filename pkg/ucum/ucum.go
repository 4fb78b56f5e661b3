// Package ucum is the public surface of the engine: parsing, validation,
// analysis, conversion and cataloguing of UCUM unit expressions (spec §6).
//
// Every other package under internal/ exists to support this one. Callers
// construct an Engine and call its methods; apart from the `ucum lex` and
// `ucum parse` debug commands, which call internal/lexer and internal/parser
// directly, nothing outside pkg/ucum uses the internal packages.
package ucum

import (
	"github.com/ucum-go/ucum/internal/canon"
	"github.com/ucum-go/ucum/internal/convert"
	"github.com/ucum-go/ucum/internal/parser"
	"github.com/ucum-go/ucum/internal/registry"
)

// CaseMode controls whether unit symbols are matched case-sensitively (the
// UCUM default, and the only mode that can tell "mEq" from "MEQ") or via
// the published case-insensitive variant spellings.
type CaseMode = canon.CaseMode

const (
	CaseSensitive   = canon.CaseSensitive
	CaseInsensitive = canon.CaseInsensitive
)

// Engine resolves and converts UCUM expressions against one loaded unit
// table. It is safe for concurrent use by multiple goroutines: every
// operation is a pure function of the (immutable, post-load) table.
type Engine struct {
	table *registry.Table
	mode  CaseMode
}

// Option configures an Engine at construction time.
type Option func(*engineConfig)

type engineConfig struct {
	mode  CaseMode
	table *registry.Table
}

// WithCaseMode selects case-sensitive (default) or case-insensitive symbol
// matching.
func WithCaseMode(mode CaseMode) Option {
	return func(c *engineConfig) { c.mode = mode }
}

// WithTable injects a pre-loaded registry.Table, bypassing the bundled
// essence table. Exposed for tests and for embedders that maintain their
// own unit table.
func WithTable(table *registry.Table) Option {
	return func(c *engineConfig) { c.table = table }
}

// New constructs an Engine, loading the bundled UCUM reference table unless
// an Option overrides it.
func New(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{mode: CaseSensitive}
	for _, opt := range opts {
		opt(cfg)
	}

	table := cfg.table
	if table == nil {
		var err error
		table, err = registry.New(cfg.mode)
		if err != nil {
			return nil, err
		}
	}

	return &Engine{table: table, mode: cfg.mode}, nil
}

// canonicalize parses and folds expr through the engine's table.
func (e *Engine) canonicalize(expr string) (canon.CanonicalForm, error) {
	node, err := parser.Parse(expr)
	if err != nil {
		return canon.CanonicalForm{}, err
	}
	return canon.Canonicalize(node, e.table)
}

// Validate reports whether expr is a syntactically and semantically valid
// UCUM expression: it lexes, parses and resolves every atom, but performs
// no conversion. A nil return means expr is valid.
func (e *Engine) Validate(expr string) error {
	_, err := e.canonicalize(expr)
	return err
}

// Convert converts value, expressed in the unit fromExpr, into the
// equivalent value expressed in the unit toExpr.
func (e *Engine) Convert(value float64, fromExpr, toExpr string) (float64, error) {
	from, err := e.canonicalize(fromExpr)
	if err != nil {
		return 0, err
	}
	to, err := e.canonicalize(toExpr)
	if err != nil {
		return 0, err
	}
	return convert.Convert(value, from, to)
}

// Commensurable reports whether aExpr and bExpr denote quantities on the
// same dimension (and so can be converted between), without performing a
// conversion.
func (e *Engine) Commensurable(aExpr, bExpr string) (bool, error) {
	a, err := e.canonicalize(aExpr)
	if err != nil {
		return false, err
	}
	b, err := e.canonicalize(bExpr)
	if err != nil {
		return false, err
	}
	return convert.Commensurable(a, b), nil
}

// Multiply folds aExpr and bExpr together as if joined by '.', returning
// the canonical text of the result (spec §4.7).
func (e *Engine) Multiply(aExpr, bExpr string) (string, error) {
	a, err := e.canonicalize(aExpr)
	if err != nil {
		return "", err
	}
	b, err := e.canonicalize(bExpr)
	if err != nil {
		return "", err
	}
	result, err := canon.Multiply(a, b)
	if err != nil {
		return "", err
	}
	return CanonicalText(result), nil
}

// Divide folds aExpr and bExpr together as if joined by '/', returning the
// canonical text of the result.
func (e *Engine) Divide(aExpr, bExpr string) (string, error) {
	a, err := e.canonicalize(aExpr)
	if err != nil {
		return "", err
	}
	b, err := e.canonicalize(bExpr)
	if err != nil {
		return "", err
	}
	result, err := canon.Divide(a, b)
	if err != nil {
		return "", err
	}
	return CanonicalText(result), nil
}

// Enumerate lists every atom known to the engine's table, in a stable,
// locale-aware order.
func (e *Engine) Enumerate() []registry.Entry {
	return e.table.Enumerate()
}

// EnumerateByProperty is Enumerate restricted to atoms whose table property
// label exactly equals property (spec §4.7's "optional property filter").
func (e *Engine) EnumerateByProperty(property string) []registry.Entry {
	return e.table.EnumerateByProperty(property)
}

// ValidateProperty reports whether expr resolves to a single atom (at
// exponent 1, with no combination) whose table property label exactly
// equals property (spec §4.7: "property label taken from table; comparison
// is exact"). A compound expression never carries a property label and so
// never matches.
func (e *Engine) ValidateProperty(expr, property string) (bool, error) {
	cf, err := e.canonicalize(expr)
	if err != nil {
		return false, err
	}
	return cf.Property == property, nil
}
