// SPDX-License-Identifier: MIT
// Package: dpforge/generator
//
// datapath.go - phase 3: the weighted-random operation pool.
//
// Draw order per operation (fixed; stream-stable):
//   1. category (weighted over the positive category weights)
//   2. sub-kind where the category has one (weighted for arithmetic and
//      shift, uniform for logical/comparison/reduction, Bernoulli for mux)
//   3. operands, left to right, uniform with replacement from the pool
//
// A draw that cannot complete (empty pool mid-recipe) is skipped silently;
// the operation count is an upper bound, not a guarantee.
package generator

import (
	"github.com/katalvlaran/dpforge/netlist"
)

// opCategory is the first-level draw outcome.
type opCategory uint8

const (
	catArithmetic opCategory = iota
	catLogical
	catComparison
	catShift
	catMux
	catConcat
	catReduction
)

// generateDatapath runs NumOperations draws. The pool is refreshed before
// every draw so each operation can consume the wires of the previous ones.
func (g *Generator) generateDatapath() error {
	for i := 0; i < g.cfg.NumOperations; i++ {
		cat := g.selectCategory()
		pool := g.availableSignals()
		if len(pool) == 0 {
			pool = g.mod.Inputs()
		}

		var (
			op  netlist.Operation
			ok  bool
			err error
		)
		switch cat {
		case catArithmetic:
			op, ok, err = g.arithmeticOp(pool)
		case catLogical:
			op, ok, err = g.logicalOp(pool)
		case catComparison:
			op, ok, err = g.comparisonOp(pool)
		case catShift:
			op, ok, err = g.shiftOp(pool)
		case catMux:
			op, ok, err = g.muxOp(pool)
		case catConcat:
			op, ok, err = g.concatOp(pool)
		case catReduction:
			op, ok, err = g.reductionOp(pool)
		}
		if err != nil {
			return err
		}
		if ok {
			g.mod.Operations = append(g.mod.Operations, op)
		}
	}
	return nil
}

// selectCategory draws the operation category over the positive category
// weights. Zero-weight categories are excluded before the draw, so they
// consume no probability mass.
func (g *Generator) selectCategory() opCategory {
	cats := make([]opCategory, 0, 7)
	weights := make([]float64, 0, 7)
	add := func(c opCategory, w float64) {
		if w > 0 {
			cats = append(cats, c)
			weights = append(weights, w)
		}
	}
	add(catArithmetic, g.cfg.WeightArithmetic)
	add(catLogical, g.cfg.WeightLogical)
	add(catComparison, g.cfg.WeightComparison)
	add(catShift, g.cfg.WeightShift)
	add(catMux, g.cfg.WeightMux)
	add(catConcat, g.cfg.WeightConcat)
	add(catReduction, g.cfg.WeightReduction)
	return cats[g.weightedPick(weights)]
}

// selectArithmeticKind draws the arithmetic sub-kind from the five
// arithmetic sub-weights.
func (g *Generator) selectArithmeticKind() netlist.OpKind {
	kinds := []netlist.OpKind{
		netlist.OpAdd, netlist.OpSub, netlist.OpMul, netlist.OpDiv, netlist.OpMod,
	}
	weights := []float64{
		g.cfg.WeightAdd, g.cfg.WeightSub, g.cfg.WeightMul, g.cfg.WeightDiv, g.cfg.WeightMod,
	}
	return kinds[g.weightedPick(weights)]
}

// selectShiftKind draws the shift sub-kind from the three shift sub-weights.
func (g *Generator) selectShiftKind() netlist.OpKind {
	kinds := []netlist.OpKind{netlist.OpShl, netlist.OpShr, netlist.OpSha}
	weights := []float64{g.cfg.WeightShl, g.cfg.WeightShr, g.cfg.WeightSha}
	return kinds[g.weightedPick(weights)]
}

// newOpWithWire infers the output width/signedness for kind over operands,
// allocates the output wire and assembles the operation.
func (g *Generator) newOpWithWire(kind netlist.OpKind, operands []netlist.SignalID) (netlist.Operation, error) {
	sigs := make([]netlist.Signal, len(operands))
	for i, id := range operands {
		sigs[i] = g.mod.Signal(id)
	}
	width, signed := kind.Infer(sigs)
	out, err := g.mod.NewWire(width, signed)
	if err != nil {
		return netlist.Operation{}, err
	}
	return netlist.NewOperation(kind, out, operands)
}

// arithmeticOp: sub-kind draw, then two operand draws.
func (g *Generator) arithmeticOp(pool []netlist.SignalID) (netlist.Operation, bool, error) {
	kind := g.selectArithmeticKind()
	a, okA := g.pickSignal(pool)
	b, okB := g.pickSignal(pool)
	if !okA || !okB {
		return netlist.Operation{}, false, nil
	}
	op, err := g.newOpWithWire(kind, []netlist.SignalID{a, b})
	return op, err == nil, err
}

// logicalOp: uniform sub-kind draw; OpNot takes one operand, the rest two.
func (g *Generator) logicalOp(pool []netlist.SignalID) (netlist.Operation, bool, error) {
	kinds := []netlist.OpKind{
		netlist.OpAnd, netlist.OpOr, netlist.OpXor, netlist.OpNot,
		netlist.OpNand, netlist.OpNor, netlist.OpXnor,
	}
	kind := kinds[g.randomInt(0, len(kinds)-1)]

	if kind == netlist.OpNot {
		a, ok := g.pickSignal(pool)
		if !ok {
			return netlist.Operation{}, false, nil
		}
		op, err := g.newOpWithWire(kind, []netlist.SignalID{a})
		return op, err == nil, err
	}
	a, okA := g.pickSignal(pool)
	b, okB := g.pickSignal(pool)
	if !okA || !okB {
		return netlist.Operation{}, false, nil
	}
	op, err := g.newOpWithWire(kind, []netlist.SignalID{a, b})
	return op, err == nil, err
}

// comparisonOp: uniform sub-kind draw, two operands, 1-bit result.
func (g *Generator) comparisonOp(pool []netlist.SignalID) (netlist.Operation, bool, error) {
	kinds := []netlist.OpKind{
		netlist.OpEq, netlist.OpNeq, netlist.OpLt,
		netlist.OpGt, netlist.OpLte, netlist.OpGte,
	}
	kind := kinds[g.randomInt(0, len(kinds)-1)]
	a, okA := g.pickSignal(pool)
	b, okB := g.pickSignal(pool)
	if !okA || !okB {
		return netlist.Operation{}, false, nil
	}
	op, err := g.newOpWithWire(kind, []netlist.SignalID{a, b})
	return op, err == nil, err
}

// shiftOp: weighted sub-kind draw, shifted value then shift amount.
func (g *Generator) shiftOp(pool []netlist.SignalID) (netlist.Operation, bool, error) {
	kind := g.selectShiftKind()
	a, okA := g.pickSignal(pool)
	b, okB := g.pickSignal(pool)
	if !okA || !okB {
		return netlist.Operation{}, false, nil
	}
	op, err := g.newOpWithWire(kind, []netlist.SignalID{a, b})
	return op, err == nil, err
}

// muxOp: one Bernoulli draw decides 2-way vs 4-way. For a 4-way mux the
// drawn selector is replaced by a fresh unwired 2-bit wire when it is too
// narrow; that substitute enters later pools even if the mux itself is then
// skipped for lack of data operands.
func (g *Generator) muxOp(pool []netlist.SignalID) (netlist.Operation, bool, error) {
	if !g.randomBool(pMux4) {
		sel, okS := g.pickSignal(pool)
		a, okA := g.pickSignal(pool)
		b, okB := g.pickSignal(pool)
		if !okS || !okA || !okB {
			return netlist.Operation{}, false, nil
		}
		op, err := g.newOpWithWire(netlist.OpMux2, []netlist.SignalID{sel, a, b})
		return op, err == nil, err
	}

	sel, okS := g.pickSignal(pool)
	if !okS || g.mod.Signal(sel).Width < mux4SelectorWidth {
		var err error
		sel, err = g.mod.NewWire(mux4SelectorWidth, false)
		if err != nil {
			return netlist.Operation{}, false, err
		}
	}
	operands := []netlist.SignalID{sel}
	for i := 0; i < 4; i++ {
		d, ok := g.pickSignal(pool)
		if !ok {
			continue
		}
		operands = append(operands, d)
	}
	if len(operands) < 5 {
		return netlist.Operation{}, false, nil
	}
	op, err := g.newOpWithWire(netlist.OpMux4, operands)
	return op, err == nil, err
}

// concatOp: draw the operand count in [2,4], then that many operands.
func (g *Generator) concatOp(pool []netlist.SignalID) (netlist.Operation, bool, error) {
	n := g.randomInt(concatMinOperands, concatMaxOperands)
	operands := make([]netlist.SignalID, 0, n)
	for i := 0; i < n; i++ {
		s, ok := g.pickSignal(pool)
		if !ok {
			continue
		}
		operands = append(operands, s)
	}
	if len(operands) < concatMinOperands {
		return netlist.Operation{}, false, nil
	}
	op, err := g.newOpWithWire(netlist.OpConcat, operands)
	return op, err == nil, err
}

// reductionOp: uniform sub-kind draw, one operand, 1-bit result.
func (g *Generator) reductionOp(pool []netlist.SignalID) (netlist.Operation, bool, error) {
	kinds := []netlist.OpKind{
		netlist.OpRedAnd, netlist.OpRedOr, netlist.OpRedXor,
		netlist.OpRedNand, netlist.OpRedNor, netlist.OpRedXnor,
	}
	kind := kinds[g.randomInt(0, len(kinds)-1)]
	a, ok := g.pickSignal(pool)
	if !ok {
		return netlist.Operation{}, false, nil
	}
	op, err := g.newOpWithWire(kind, []netlist.SignalID{a})
	return op, err == nil, err
}
