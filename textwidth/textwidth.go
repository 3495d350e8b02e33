// Package textwidth resolves the terminal column width of runes, grapheme
// clusters, and strings. Width classification is backed by
// github.com/mattn/go-runewidth; the ambiguous-width mode is an immutable
// per-resolver value rather than process-wide state, so independent
// renderers can disagree about ambiguous code points without racing.
package textwidth

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/termgrid/grapheme"
)

// Mode selects how ambiguous-width code points are measured.
type Mode int

// Ambiguous-width modes.
const (
	// Standard renders ambiguous code points one column wide.
	Standard Mode = iota
	// EastAsian renders ambiguous code points two columns wide.
	EastAsian
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Standard:
		return "standard"
	case EastAsian:
		return "east-asian"
	default:
		return "unknown"
	}
}

// Resolver measures terminal column widths under a fixed ambiguous-width
// mode. A Resolver is immutable after construction and safe for
// concurrent readers; the zero value behaves as Standard. Callers are
// expected to pick one mode before rendering starts and keep it for the
// lifetime of the surface they draw into.
type Resolver struct {
	cond runewidth.Condition
	mode Mode
}

// New creates a resolver for the given mode.
func New(mode Mode) Resolver {
	return Resolver{
		cond: runewidth.Condition{
			EastAsianWidth:     mode == EastAsian,
			StrictEmojiNeutral: true,
		},
		mode: mode,
	}
}

// Mode returns the resolver's ambiguous-width mode.
func (r Resolver) Mode() Mode {
	return r.mode
}

// RuneWidth returns the column width of a single code point: 0 for
// combining marks and other zero-advance code points, 2 for wide code
// points, the mode-dependent value for ambiguous ones, and 1 otherwise.
func (r Resolver) RuneWidth(c rune) int {
	return r.cond.RuneWidth(c)
}

// ClusterWidth returns the column width of one grapheme cluster as the
// maximum width across its constituent code points. This is a practical
// approximation rather than full UAX #11 sequence analysis: it keeps
// combining marks at zero advance and joined emoji sequences at the
// width of their widest member. Empty input returns 0.
func (r Resolver) ClusterWidth(g string) int {
	w := 0
	for _, c := range g {
		w = max(w, r.cond.RuneWidth(c))
	}
	return w
}

// StringWidth returns the total column width of s, summing ClusterWidth
// over its zero-width-joiner-merged rendering units.
func (r Resolver) StringWidth(s string) int {
	w := 0
	for g := range grapheme.MergedClusters(s) {
		w += r.ClusterWidth(g)
	}
	return w
}
