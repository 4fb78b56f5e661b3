package registry

import (
	"strings"

	"github.com/ucum-go/ucum/internal/canon"
	"github.com/ucum-go/ucum/internal/ucumerrors"
)

// Resolve implements canon.Resolver. A symbol matching an atom exactly wins
// outright over any prefix+atom split (spec §4.3 "AtomOnly wins"); failing
// that, the longest prefix whose remainder is itself a metric atom is
// chosen, since UCUM only allows a prefix to attach to a metric atom.
func (t *Table) Resolve(symbol string) (canon.ResolveResult, error) {
	if t.mode == canon.CaseInsensitive {
		return t.resolveCI(symbol)
	}
	return t.resolveCS(symbol)
}

func (t *Table) resolveCS(symbol string) (canon.ResolveResult, error) {
	if _, ok := t.rawAtoms[symbol]; ok {
		atom, err := t.resolveAtom(symbol)
		if err != nil {
			return canon.ResolveResult{}, err
		}
		return canon.ResolveResult{Atom: atom}, nil
	}

	for _, psym := range t.prefixSymbols {
		if !strings.HasPrefix(symbol, psym) {
			continue
		}
		remainder := symbol[len(psym):]
		if remainder == "" {
			continue
		}
		raw, ok := t.rawAtoms[remainder]
		if !ok || !raw.Metric {
			continue
		}
		atom, err := t.resolveAtom(remainder)
		if err != nil {
			return canon.ResolveResult{}, err
		}
		prefix := t.prefixes[psym]
		return canon.ResolveResult{Prefix: &prefix, Atom: atom}, nil
	}

	return canon.ResolveResult{}, ucumerrors.Newf(ucumerrors.UnknownSymbol, "unknown unit atom %q", symbol).WithSymbol(symbol)
}

func (t *Table) resolveCI(symbol string) (canon.ResolveResult, error) {
	if i := strings.IndexByte(symbol, '['); i >= 0 && symbol[i:] != strings.ToUpper(symbol[i:]) {
		return canon.ResolveResult{}, ucumerrors.Newf(ucumerrors.UnknownSymbol,
			"bracketed atom %q must be written in upper case in case-insensitive mode", symbol).WithSymbol(symbol)
	}
	upper := strings.ToUpper(symbol)

	if raw, ok := t.rawAtomsCI[upper]; ok {
		atom, err := t.resolveAtom(raw.Symbol)
		if err != nil {
			return canon.ResolveResult{}, err
		}
		return canon.ResolveResult{Atom: atom}, nil
	}

	for _, psym := range t.prefixSymbolsCI {
		if !strings.HasPrefix(upper, psym) {
			continue
		}
		remainder := upper[len(psym):]
		if remainder == "" {
			continue
		}
		raw, ok := t.rawAtomsCI[remainder]
		if !ok || !raw.Metric {
			continue
		}
		atom, err := t.resolveAtom(raw.Symbol)
		if err != nil {
			return canon.ResolveResult{}, err
		}
		prefix := t.prefixesCI[psym]
		return canon.ResolveResult{Prefix: &prefix, Atom: atom}, nil
	}

	return canon.ResolveResult{}, ucumerrors.Newf(ucumerrors.UnknownSymbol, "unknown unit atom %q", symbol).WithSymbol(symbol)
}
