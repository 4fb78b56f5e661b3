package registry

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ucum-go/ucum/internal/canon"
)

// Entry is one catalogue row returned by Enumerate.
type Entry struct {
	Symbol   string
	Metric   bool
	Property string
	Kind     canon.DefKind
}

// Enumerate lists every atom in the table in a stable, locale-aware order
// (spec §4.9), used by the `ucum enumerate` command and by catalogue
// snapshot tests. Ordering uses golang.org/x/text/collate rather than a
// plain byte-wise sort so that bracketed atoms ("[ft_i]") and punctuation
// symbols ("%") interleave with the alphabetic symbols the way a published
// reference table does, independent of the Go runtime's default string
// comparison.
func (t *Table) Enumerate() []Entry {
	return t.EnumerateByProperty("")
}

// EnumerateByProperty is Enumerate restricted to atoms whose table property
// label exactly equals property (spec §4.7 "enumerate | optional property
// filter"); an empty property returns every atom, same as Enumerate.
func (t *Table) EnumerateByProperty(property string) []Entry {
	symbols := make([]string, 0, len(t.rawAtoms))
	for sym := range t.rawAtoms {
		symbols = append(symbols, sym)
	}

	col := collate.New(language.English)
	col.SortStrings(symbols)

	out := make([]Entry, 0, len(symbols))
	for _, sym := range symbols {
		raw := t.rawAtoms[sym]
		if property != "" && raw.Property != property {
			continue
		}
		atom, err := t.resolveAtom(sym)
		if err != nil {
			continue
		}
		out = append(out, Entry{Symbol: raw.Symbol, Metric: raw.Metric, Property: raw.Property, Kind: atom.Definition.Kind})
	}
	return out
}
