// SPDX-License-Identifier: MIT
// Package: dpforge/generator
//
// engine.go - the Generator and its phase sequence.
//
// Contract:
//   - New trusts its Config: validation happened at the configuration tier.
//   - Generate runs the phases in fixed order; every random draw happens
//     inside exactly one phase, so a (Config, Seed) pair replays the same
//     module bit for bit.
//   - The engine is silent. Run summaries belong to the CLI tier.
package generator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/dpforge/config"
	"github.com/katalvlaran/dpforge/netlist"
)

// Generator builds one netlist.Module from one validated Config. A Generator
// is single-use and single-threaded; construct a new one per run.
type Generator struct {
	cfg config.Config
	rng *rand.Rand
	mod *netlist.Module
}

// New constructs a generator over cfg. cfg must already have passed
// config.Validate; the engine does not re-check it.
func New(cfg config.Config) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
		mod: netlist.NewModule(cfg.ModuleName),
	}
}

// Generate runs the full phase sequence and returns the finished module.
// Registry-tier failures (invalid widths reaching signal creation) abort the
// run; pool exhaustion never does.
func (g *Generator) Generate() (*netlist.Module, error) {
	if err := g.generateInputs(); err != nil {
		return nil, fmt.Errorf("Generate: %s: %w", phaseInputs, err)
	}
	if err := g.generateOutputs(); err != nil {
		return nil, fmt.Errorf("Generate: %s: %w", phaseOutputs, err)
	}
	if err := g.generateDatapath(); err != nil {
		return nil, fmt.Errorf("Generate: %s: %w", phaseDatapath, err)
	}
	if g.cfg.NumPipelineStages > 0 {
		g.generatePipeline()
	}
	if err := g.generateControlBlocks(); err != nil {
		return nil, fmt.Errorf("Generate: %s: %w", phaseControl, err)
	}
	g.connectOutputs()
	g.assignDepths()
	return g.mod, nil
}

// generateInputs creates the module's input ports. Per port: one width draw,
// then (when enabled) one signedness draw.
func (g *Generator) generateInputs() error {
	for i := 0; i < g.cfg.NumInputs; i++ {
		width := g.randomWidth()
		signed := g.randomSigned()
		name := fmt.Sprintf("in_%d", i)
		if _, err := g.mod.AddInput(name, width, signed); err != nil {
			return err
		}
	}
	return nil
}

// generateOutputs creates the module's output ports from the output width
// range. Outputs stay undriven until connectOutputs.
func (g *Generator) generateOutputs() error {
	for i := 0; i < g.cfg.NumOutputs; i++ {
		width := g.randomInt(g.cfg.OutputWidthMin, g.cfg.OutputWidthMax)
		signed := g.randomSigned()
		name := fmt.Sprintf("out_%d", i)
		if _, err := g.mod.AddOutput(name, width, signed); err != nil {
			return err
		}
	}
	return nil
}

// generatePipeline tags every datapath operation with a pipeline stage
// derived from its depth.
//
// TODO: stages are computed before assignDepths runs, so every Depth is
// still zero here and all operations land in stage 0. Replacing the
// creation-index depth labeling with dependency-based depths would make
// this tagging meaningful; both must change together because downstream
// consumers rely on the current stream-stable order.
func (g *Generator) generatePipeline() {
	for i := range g.mod.Operations {
		op := &g.mod.Operations[i]
		op.Stage = op.Depth * g.cfg.NumPipelineStages / g.cfg.MaxDepth
	}
}

// connectOutputs drives each output from one pool draw. The pool is
// snapshotted once for the whole phase, so control-block scratch wires are
// eligible sources. Width mismatches are recorded, never corrected.
func (g *Generator) connectOutputs() {
	pool := g.availableSignals()
	if len(pool) == 0 {
		return
	}
	for _, out := range g.mod.Outputs() {
		src, ok := g.pickSignal(pool)
		if !ok {
			continue
		}
		g.mod.Conns = append(g.mod.Conns, netlist.OutputConn{Output: out, Source: src})
	}
}

// assignDepths labels every operation with its creation index modulo
// MaxDepth. This is declaration-order bookkeeping, not combinational depth.
func (g *Generator) assignDepths() {
	for i := range g.mod.Operations {
		g.mod.Operations[i].Depth = i % g.cfg.MaxDepth
	}
}

// availableSignals returns the current operand pool: all inputs plus all
// wires created so far. Registers are excluded; they are control-block
// outputs, not datapath operands.
func (g *Generator) availableSignals() []netlist.SignalID {
	inputs := g.mod.Inputs()
	wires := g.mod.Wires()
	pool := make([]netlist.SignalID, 0, len(inputs)+len(wires))
	pool = append(pool, inputs...)
	pool = append(pool, wires...)
	return pool
}
