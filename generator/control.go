// SPDX-License-Identifier: MIT
// Package: dpforge/generator
//
// control.go - phase 5: mutually-exclusive control regions.
//
// Contract:
//   - Each block snapshots the pool once; scratch wires created inside the
//     block do not become operands of the same block.
//   - Every register written by a block is created by the block, so the
//     written-register set is identical across the block's regions by
//     construction (the mutual-exclusivity invariant).
//   - A boolean feature flag with a zero count means defaultControlCount
//     repetitions.
package generator

import (
	"github.com/katalvlaran/dpforge/netlist"
)

// generateControlBlocks runs the three optional control-flow sub-phases in
// fixed order.
func (g *Generator) generateControlBlocks() error {
	if g.cfg.GenerateCaseStatements || g.cfg.NumCaseStatements > 0 {
		if err := g.generateCaseStatements(); err != nil {
			return err
		}
	}
	if g.cfg.GenerateIfElseChains || g.cfg.NumIfElseChains > 0 {
		if err := g.generateIfElseChains(); err != nil {
			return err
		}
	}
	if g.cfg.GenerateSharingOpportunities {
		if err := g.generateSharingGroups(); err != nil {
			return err
		}
	}
	return nil
}

// controlCount resolves a control-flow repetition count: an explicit count
// wins, otherwise the boolean flag stands for defaultControlCount.
func controlCount(count int, enabled bool) int {
	if count > 0 {
		return count
	}
	if enabled {
		return defaultControlCount
	}
	return 0
}

// generateCaseStatements builds case-statement blocks. Per block: selector
// draw, register creation, then per case x register either a shared-resource
// arithmetic operation or a pass-through assignment, then the default arm.
func (g *Generator) generateCaseStatements() error {
	n := controlCount(g.cfg.NumCaseStatements, g.cfg.GenerateCaseStatements)
	for i := 0; i < n; i++ {
		pool := g.availableSignals()
		if len(pool) == 0 {
			continue
		}
		selector, ok := g.pickSignal(pool)
		if !ok {
			continue
		}

		// The case count is bounded by the selector's value range, capped so
		// a wide selector does not explode the block.
		selWidth := g.mod.Signal(selector).Width
		if selWidth > selectorWidthCap {
			selWidth = selectorWidthCap
		}
		numCases := 1 << selWidth
		if numCases > g.cfg.CasesPerStatement {
			numCases = g.cfg.CasesPerStatement
		}

		block := netlist.NewCaseStatement(selector)

		outputs, err := g.newBlockRegs()
		if err != nil {
			return err
		}

		for caseVal := 0; caseVal < numCases; caseVal++ {
			idx := block.AddCase(caseVal)
			for _, out := range outputs {
				if g.cfg.GenerateSharingOpportunities && g.randomBool(pCaseSharing) {
					a, okA := g.pickSignal(pool)
					b, okB := g.pickSignal(pool)
					if !okA || !okB {
						continue
					}
					kind := g.selectArithmeticKind()
					op, err := g.newOpWithWire(kind, []netlist.SignalID{a, b})
					if err != nil {
						return err
					}
					block.AddCaseOp(idx, op)
					block.AddCaseAssign(idx, out, op.Output)
				} else {
					src, ok := g.pickSignal(pool)
					if !ok {
						continue
					}
					block.AddCaseAssign(idx, out, src)
				}
			}
		}

		var defaults []netlist.Assign
		for _, out := range outputs {
			src, ok := g.pickSignal(pool)
			if !ok {
				continue
			}
			defaults = append(defaults, netlist.Assign{Dst: out, Src: src})
		}
		block.SetDefault(defaults)

		g.mod.Blocks = append(g.mod.Blocks, *block)
	}
	return nil
}

// generateIfElseChains builds if/else chains of 2-4 branches, the last
// unconditional. Branch bodies favor multiplies so the mutually-exclusive
// regions hold the expensive operations a sharing-aware tool can merge.
func (g *Generator) generateIfElseChains() error {
	n := controlCount(g.cfg.NumIfElseChains, g.cfg.GenerateIfElseChains)
	for i := 0; i < n; i++ {
		pool := g.availableSignals()
		if len(pool) < minChainPool {
			continue
		}

		block := netlist.NewIfElseChain()

		outputs, err := g.newBlockRegs()
		if err != nil {
			return err
		}

		numBranches := g.randomInt(minBranches, maxBranches)
		for branch := 0; branch < numBranches; branch++ {
			var idx int
			if branch < numBranches-1 {
				cond, ok := g.pickSignal(pool)
				if !ok {
					continue
				}
				idx = block.AddBranch(cond)
			} else {
				idx = block.AddElse()
			}

			for _, out := range outputs {
				if g.cfg.GenerateSharingOpportunities && g.randomBool(pBranchSharing) {
					a, okA := g.pickSignal(pool)
					b, okB := g.pickSignal(pool)
					if !okA || !okB {
						continue
					}
					op, err := g.newOpWithWire(netlist.OpMul, []netlist.SignalID{a, b})
					if err != nil {
						return err
					}
					block.AddBranchOp(idx, op)
					block.AddBranchAssign(idx, out, op.Output)
				} else {
					src, ok := g.pickSignal(pool)
					if !ok {
						continue
					}
					block.AddBranchAssign(idx, out, src)
				}
			}
		}

		g.mod.Blocks = append(g.mod.Blocks, *block)
	}
	return nil
}

// newBlockRegs creates the 1-3 shared registers a control block writes.
// Per register: one count draw happened already; here each register draws a
// width and (when enabled) a signedness.
func (g *Generator) newBlockRegs() ([]netlist.SignalID, error) {
	n := g.randomInt(minBlockOutputs, maxBlockOutputs)
	regs := make([]netlist.SignalID, 0, n)
	for j := 0; j < n; j++ {
		width := g.randomWidth()
		signed := g.randomSigned()
		id, err := g.mod.NewReg(width, signed)
		if err != nil {
			return nil, err
		}
		regs = append(regs, id)
	}
	return regs, nil
}

// generateSharingGroups appends 1-3 standalone operation groups to the main
// datapath, each anchored by an enable signal that is recorded but not
// structurally enforced. Group members are expensive (mostly multiply), so
// a tool that proves the enables disjoint can fold each group onto one unit.
func (g *Generator) generateSharingGroups() error {
	pool := g.availableSignals()
	if len(pool) < minSharingPool {
		return nil
	}
	numGroups := g.randomInt(minSharingGroups, maxSharingGroups)
	for gi := 0; gi < numGroups; gi++ {
		enable, ok := g.pickSignal(pool)
		if !ok {
			continue
		}
		group := netlist.SharingGroup{Enable: enable}

		opsInGroup := g.randomInt(minGroupOps, maxGroupOps)
		for i := 0; i < opsInGroup; i++ {
			a, okA := g.pickSignal(pool)
			b, okB := g.pickSignal(pool)
			if !okA || !okB {
				continue
			}
			kind := netlist.OpAdd
			if g.randomBool(pSharingMul) {
				kind = netlist.OpMul
			}
			op, err := g.newOpWithWire(kind, []netlist.SignalID{a, b})
			if err != nil {
				return err
			}
			group.Ops = append(group.Ops, len(g.mod.Operations))
			g.mod.Operations = append(g.mod.Operations, op)
		}

		g.mod.SharingGroups = append(g.mod.SharingGroups, group)
	}
	return nil
}
