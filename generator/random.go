// SPDX-License-Identifier: MIT
// Package: dpforge/generator
//
// random.go - primitive draws over the generator's single random stream.
//
// Contract:
//   - All randomness flows through these helpers so the draw order of a run
//     is exactly the sequence of calls made by the phases; nothing else ever
//     touches the stream.
//   - Weighted draws treat their weight vector as an unnormalized discrete
//     distribution; a weight <= 0 excludes its entry entirely (it consumes
//     no probability mass and can never be drawn).
package generator

import (
	"github.com/katalvlaran/dpforge/netlist"
)

// randomInt draws uniformly from [min, max], both ends inclusive.
func (g *Generator) randomInt(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

// randomBool draws true with the given probability.
func (g *Generator) randomBool(probability float64) bool {
	return g.rng.Float64() < probability
}

// randomWidth draws a width from the configured input width range.
func (g *Generator) randomWidth() int {
	return g.randomInt(g.cfg.InputWidthMin, g.cfg.InputWidthMax)
}

// randomSigned draws per-signal signedness. When signed generation is off it
// returns false WITHOUT consuming a draw; toggling use_signed therefore
// changes the stream alignment of everything after it.
func (g *Generator) randomSigned() bool {
	return g.cfg.UseSigned && g.randomBool(pSigned)
}

// pickSignal draws uniformly from the candidate pool. The second result is
// false when the pool is empty; pool exhaustion is a generation-tier
// condition, never an error.
func (g *Generator) pickSignal(pool []netlist.SignalID) (netlist.SignalID, bool) {
	if len(pool) == 0 {
		return netlist.NoSignal, false
	}
	return pool[g.rng.Intn(len(pool))], true
}

// weightedPick draws an index from an unnormalized weight vector, skipping
// entries with weight <= 0. The configuration tier guarantees at least one
// positive weight for every vector that reaches here.
func (g *Generator) weightedPick(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	x := g.rng.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		x -= w
		if x < 0 {
			return i
		}
	}
	// Float roundoff can leave x at exactly 0; fall back to the last
	// positive entry.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return 0
}
