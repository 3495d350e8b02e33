// Package grapheme segments strings into extended grapheme clusters and
// optionally merges zero-width-joiner sequences into single rendering units.
// Segmentation follows UAX #29 via github.com/rivo/uniseg.
package grapheme

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// ZWJ is the zero-width joiner code point used to compose emoji sequences.
const ZWJ = '‍'

// zwjStr avoids re-encoding the joiner on every comparison.
const zwjStr = string(ZWJ)

// Clusters returns a lazy sequence of the extended grapheme clusters of s.
// Each range over the sequence runs a fresh segmentation; empty input
// yields an empty sequence.
func Clusters(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		g := uniseg.NewGraphemes(s)
		for g.Next() {
			if !yield(g.Str()) {
				return
			}
		}
	}
}

// MergedClusters returns the clusters of s with zero-width-joiner
// neighbors merged into single units. A newly segmented cluster merges
// into the pending unit when the pending unit ends with a joiner, when
// the cluster is itself the bare joiner, or when the pending unit
// contains a joiner and the cluster begins in the supplementary emoji
// block U+1F400..U+1F7FF. The last condition is a narrow continuation
// heuristic, not full emoji sequence grammar.
func MergedClusters(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var pending string
		g := uniseg.NewGraphemes(s)
		for g.Next() {
			cluster := g.Str()
			if pending == "" {
				pending = cluster
				continue
			}
			if mergesWithPending(pending, cluster) {
				pending += cluster
				continue
			}
			if !yield(pending) {
				return
			}
			pending = cluster
		}
		if pending != "" {
			yield(pending)
		}
	}
}

// Count returns the number of extended grapheme clusters in s.
func Count(s string) int {
	n := 0
	for range Clusters(s) {
		n++
	}
	return n
}

// CountMerged returns the number of rendering units in s after the
// zero-width-joiner merge pass.
func CountMerged(s string) int {
	n := 0
	for range MergedClusters(s) {
		n++
	}
	return n
}

func mergesWithPending(pending, cluster string) bool {
	if strings.HasSuffix(pending, zwjStr) {
		return true
	}
	if cluster == zwjStr {
		return true
	}
	return strings.ContainsRune(pending, ZWJ) && startsInEmojiBlock(cluster)
}

func startsInEmojiBlock(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return r >= 0x1F400 && r <= 0x1F7FF
}
