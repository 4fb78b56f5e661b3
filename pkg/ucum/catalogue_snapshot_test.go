package ucum

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestEnumerateCatalogueSnapshot pins the full catalogue dump against a
// go-snaps snapshot (written under __snapshots__ on the first run, then
// compared on every later run), so an unintended change in the bundled essence table
// (a dropped atom, a reordered entry, a flipped metric flag) shows up as a
// diff instead of silently passing every per-unit test.
func TestEnumerateCatalogueSnapshot(t *testing.T) {
	e := mustEngine(t)

	var sb strings.Builder
	for _, entry := range e.Enumerate() {
		fmt.Fprintf(&sb, "%s\tmetric=%t\tproperty=%s\tkind=%s\n", entry.Symbol, entry.Metric, entry.Property, entry.Kind)
	}

	snaps.MatchSnapshot(t, sb.String())
}

func TestAnalyzeOutputSnapshot(t *testing.T) {
	e := mustEngine(t)

	for _, expr := range []string{"kg.m/s2", "mm[Hg]", "Cel", "[IU]"} {
		a, err := e.Analyze(expr)
		if err != nil {
			t.Fatalf("Analyze(%q): %v", expr, err)
		}
		snaps.MatchSnapshot(t, fmt.Sprintf("%s -> %s dims=%v special=%t arbitrary=%t",
			expr, a.CanonicalText, a.Dims, a.IsSpecial, a.IsArbitrary))
	}
}
