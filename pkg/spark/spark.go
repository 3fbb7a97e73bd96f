// Package spark encodes bounded windows of counter samples as
// single-line Unicode block sparklines.
//
// Inspired by Tufte's sparklines - intense, simple, word-sized graphics.
// The encoder is pure: identical inputs always yield identical output,
// and every input maps to a defined result. There is no error channel.
package spark

import "math"

// Levels is the fixed glyph alphabet, ordered from empty to full.
// Index 0 is reserved for the true-zero and flat-zero cases; linear
// scaling only ever produces indices 1 through 8, so a low-but-nonzero
// sample never renders identically to absent data.
var Levels = [9]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// midLevel is emitted for every sample of a flat nonzero window.
// A constant series has no dynamic range, so neither the empty nor the
// full glyph would be honest; the midpoint reads as steady load.
const midLevel = 4

// Render maps the trailing width samples onto the glyph alphabet and
// returns a string of exactly width runes. Series shorter than width
// are left-padded with zero samples, so a panel with little history
// still produces a full-width line. A width of zero yields the empty
// string.
//
// Samples are non-negative counters in chronological order,
// most-recent-last; validating that is the caller's contract.
func Render(samples []int, width int) string {
	if width <= 0 {
		return ""
	}

	window := make([]int, width)
	if len(samples) >= width {
		copy(window, samples[len(samples)-width:])
	} else {
		copy(window[width-len(samples):], samples)
	}

	lo, hi := window[0], window[0]
	for _, v := range window {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	out := make([]rune, 0, width)
	for _, v := range window {
		out = append(out, glyph(v, lo, hi))
	}
	return string(out)
}

// glyph picks the level for a single sample given the window extrema.
func glyph(v, lo, hi int) rune {
	if hi == lo {
		if v == 0 {
			return Levels[0]
		}
		return Levels[midLevel]
	}
	// Scale spans indices 1-8 so index 0 stays exclusive to true zero.
	idx := int(math.Round(float64(v-lo)/float64(hi-lo)*7)) + 1
	if idx > len(Levels)-1 {
		idx = len(Levels) - 1
	}
	return Levels[idx]
}
