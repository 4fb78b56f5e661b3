// Package registry loads the bundled UCUM prefix/atom table and implements
// canon.Resolver over it, performing the longest-match prefix/atom
// disambiguation described in spec §4.3 and pre-resolving every Derived and
// Special atom's reference expression at load time so that ordinary
// Canonicalize calls never need to re-parse a definition string.
package registry

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ucum-go/ucum/internal/canon"
	"github.com/ucum-go/ucum/internal/parser"
	"github.com/ucum-go/ucum/internal/specialfn"
	"github.com/ucum-go/ucum/internal/ucumerrors"
)

//go:embed data/essence.yaml
var essenceYAML []byte

type rawPrefix struct {
	Symbol string  `yaml:"symbol"`
	CI     string  `yaml:"ci"`
	Scale  float64 `yaml:"scale"`
}

type rawAtom struct {
	Symbol   string  `yaml:"symbol"`
	CI       string  `yaml:"ci"`
	Metric   bool    `yaml:"metric"`
	Property string  `yaml:"property"`
	Kind     string  `yaml:"kind"`
	BaseDim  string  `yaml:"base_dim"`
	Factor   float64 `yaml:"factor"`
	Ref      string  `yaml:"ref"`
	Function string  `yaml:"function"`
}

type rawFile struct {
	Prefixes []rawPrefix `yaml:"prefixes"`
	Atoms    []rawAtom   `yaml:"atoms"`
}

// Table is a fully loaded and cross-resolved UCUM unit table. It implements
// canon.Resolver directly, so it is the value handed to canon.Canonicalize.
type Table struct {
	mode canon.CaseMode

	prefixSymbols    []string // sorted longest-first, case-sensitive
	prefixes         map[string]canon.Prefix
	prefixSymbolsCI  []string // sorted longest-first, uppercase
	prefixesCI       map[string]canon.Prefix

	rawAtoms   map[string]rawAtom // keyed by exact symbol
	rawAtomsCI map[string]rawAtom // keyed by uppercase symbol
	resolved   map[string]canon.Atom
	trace      ucumerrors.ResolutionTrace
}

// New loads the bundled essence table and returns a Table configured for
// mode. Loading re-parses and re-resolves the table independently per call,
// matching the teacher's pattern of a cheap from-scratch loader rather than
// a shared mutable global (see internal/registry in DESIGN.md).
func New(mode canon.CaseMode) (*Table, error) {
	var rf rawFile
	if err := yaml.Unmarshal(essenceYAML, &rf); err != nil {
		return nil, ucumerrors.Newf(ucumerrors.LoaderError, "parsing essence table: %v", err)
	}

	t := &Table{
		mode:       mode,
		prefixes:   make(map[string]canon.Prefix, len(rf.Prefixes)),
		prefixesCI: make(map[string]canon.Prefix, len(rf.Prefixes)),
		rawAtoms:   make(map[string]rawAtom, len(rf.Atoms)),
		rawAtomsCI: make(map[string]rawAtom, len(rf.Atoms)),
		resolved:   make(map[string]canon.Atom, len(rf.Atoms)),
	}

	for _, p := range rf.Prefixes {
		cp := canon.Prefix{Symbol: p.Symbol, Scale: p.Scale}
		if _, dup := t.prefixes[p.Symbol]; dup {
			return nil, ucumerrors.Newf(ucumerrors.LoaderError, "duplicate prefix symbol %q", p.Symbol)
		}
		t.prefixes[p.Symbol] = cp
		t.prefixSymbols = append(t.prefixSymbols, p.Symbol)

		ciSym := strings.ToUpper(p.CI)
		t.prefixesCI[ciSym] = cp
		t.prefixSymbolsCI = append(t.prefixSymbolsCI, ciSym)
	}
	sort.Slice(t.prefixSymbols, func(i, j int) bool { return len(t.prefixSymbols[i]) > len(t.prefixSymbols[j]) })
	sort.Slice(t.prefixSymbolsCI, func(i, j int) bool { return len(t.prefixSymbolsCI[i]) > len(t.prefixSymbolsCI[j]) })

	for _, a := range rf.Atoms {
		if _, dup := t.rawAtoms[a.Symbol]; dup {
			return nil, ucumerrors.Newf(ucumerrors.LoaderError, "duplicate atom symbol %q", a.Symbol)
		}
		t.rawAtoms[a.Symbol] = a
		t.rawAtomsCI[strings.ToUpper(a.CI)] = a
	}

	for symbol := range t.rawAtoms {
		if _, err := t.resolveAtom(symbol); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func dimFromName(name string) (canon.Dimension, error) {
	switch name {
	case "length":
		return canon.Length, nil
	case "time":
		return canon.Time, nil
	case "mass":
		return canon.Mass, nil
	case "plane-angle":
		return canon.Angle, nil
	case "temperature":
		return canon.Temperature, nil
	case "electric-charge":
		return canon.Charge, nil
	case "luminous-intensity":
		return canon.LuminousIntensity, nil
	default:
		return 0, ucumerrors.Newf(ucumerrors.LoaderError, "unknown base dimension name %q", name)
	}
}

// resolveAtom resolves a table atom by its canonical (case-sensitive)
// symbol, memoizing the result and detecting cyclic Derived/Special
// definitions via a shared resolution trace.
func (t *Table) resolveAtom(symbol string) (canon.Atom, error) {
	if a, ok := t.resolved[symbol]; ok {
		return a, nil
	}
	if t.trace.Contains(symbol) {
		return canon.Atom{}, ucumerrors.NewLoaderCycleError(&t.trace, symbol)
	}
	raw, ok := t.rawAtoms[symbol]
	if !ok {
		return canon.Atom{}, ucumerrors.Newf(ucumerrors.LoaderError, "no such atom %q", symbol)
	}

	t.trace.Push(symbol)
	defer t.trace.Pop()

	var def canon.Definition
	switch raw.Kind {
	case "base":
		dim, err := dimFromName(raw.BaseDim)
		if err != nil {
			return canon.Atom{}, err
		}
		def = canon.Definition{Kind: canon.Base, BaseDim: dim}

	case "derived":
		ref, err := t.resolveExpression(raw.Ref)
		if err != nil {
			return canon.Atom{}, err
		}
		def = canon.Definition{Kind: canon.Derived, Factor: raw.Factor, Reference: ref}

	case "special":
		ref, err := t.resolveExpression(raw.Ref)
		if err != nil {
			return canon.Atom{}, err
		}
		if _, err := specialfn.Lookup(specialfn.Name(raw.Function)); err != nil {
			return canon.Atom{}, err
		}
		def = canon.Definition{Kind: canon.Special, Factor: raw.Factor, Reference: ref, Function: specialfn.Name(raw.Function)}

	case "arbitrary":
		def = canon.Definition{Kind: canon.Arbitrary}

	default:
		return canon.Atom{}, ucumerrors.Newf(ucumerrors.LoaderError, "atom %q has unknown kind %q", symbol, raw.Kind)
	}

	atom := canon.Atom{Symbol: raw.Symbol, Metric: raw.Metric, Property: raw.Property, Definition: def}
	t.resolved[symbol] = atom
	return atom, nil
}

// resolveExpression parses and canonicalizes a reference expression string
// from the table (e.g. "kg.m/s2"), resolving symbols against this same
// table, so Derived/Special definitions can reference any other atom
// transitively. Reference expressions are written with case-sensitive
// symbols, so they resolve case-sensitively whatever the table's mode.
func (t *Table) resolveExpression(expr string) (canon.CanonicalForm, error) {
	node, err := parser.Parse(expr)
	if err != nil {
		return canon.CanonicalForm{}, fmt.Errorf("parsing reference expression %q: %w", expr, err)
	}
	return canon.Canonicalize(node, caseSensitiveView{t})
}

// caseSensitiveView resolves symbols against t case-sensitively.
type caseSensitiveView struct{ t *Table }

func (v caseSensitiveView) Resolve(symbol string) (canon.ResolveResult, error) {
	return v.t.resolveCS(symbol)
}
