package ucumerrors

import "strings"

// ResolutionTrace renders the chain of atom symbols the loader was resolving
// when it detected a problem (currently: a cyclic Derived definition). It
// plays the same role as the teacher's stack_trace.go frame-chain renderer,
// adapted from a runtime call stack to a derived-unit resolution chain —
// the one place this engine accumulates a chain of frames worth reporting.
type ResolutionTrace struct {
	frames []string
}

// Push records that resolution of symbol began.
func (t *ResolutionTrace) Push(symbol string) {
	t.frames = append(t.frames, symbol)
}

// Pop unwinds the most recently pushed symbol.
func (t *ResolutionTrace) Pop() {
	if len(t.frames) > 0 {
		t.frames = t.frames[:len(t.frames)-1]
	}
}

// Contains reports whether symbol is already on the trace (a cycle).
func (t *ResolutionTrace) Contains(symbol string) bool {
	for _, f := range t.frames {
		if f == symbol {
			return true
		}
	}
	return false
}

// String renders the chain as "a -> b -> c".
func (t *ResolutionTrace) String() string {
	return strings.Join(t.frames, " -> ")
}

// NewLoaderCycleError builds a LoaderError describing a cyclic derived-unit
// definition, with the full resolution chain rendered for diagnosis.
func NewLoaderCycleError(trace *ResolutionTrace, symbol string) *Error {
	return Newf(LoaderError, "cyclic derived unit definition: %s -> %s", trace.String(), symbol)
}
