// SPDX-License-Identifier: MIT
// Package: dpforge/verilog

// Package verilog renders a finished netlist.Module as Verilog-2001 source.
//
// The emitter is a pure, stateless walk of the module: it never mutates the
// graph and draws no randomness, so the same module always renders to the
// same text (up to the header timestamp, which is injectable for tests).
//
// Layout of the emitted file: header comment, module declaration, wire and
// register declarations, one continuous assign per datapath operation,
// control blocks as always @(*) regions, output connections, an optional
// sequential reset section, endmodule. Scratch operations belonging to a
// control block are hoisted to assigns directly above their block: their
// outputs are declared as wires and a wire cannot legally be driven from
// inside an always region.
package verilog

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/dpforge/netlist"
)

// Option adjusts emitter construction.
type Option func(*Emitter)

// WithClock overrides the timestamp source used in generated headers.
// Tests inject a fixed clock to get byte-stable output.
func WithClock(now func() time.Time) Option {
	return func(e *Emitter) { e.now = now }
}

// Emitter renders one module. Construct per module; an Emitter holds no
// output state between Emit calls.
type Emitter struct {
	mod *netlist.Module
	now func() time.Time
}

// New returns an emitter over mod.
func New(mod *netlist.Module, opts ...Option) *Emitter {
	e := &Emitter{mod: mod, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

const timestampLayout = "2006-01-02 15:04:05"

const rule = "// ============================================================================"

// EmitModule writes the complete Verilog module to w.
func (e *Emitter) EmitModule(w io.Writer) error {
	p := newPrinter()
	e.header(p)
	e.moduleDecl(p)
	e.declarations(p)
	e.combinational(p)
	e.controlBlocks(p)
	e.outputConns(p)
	e.sequential(p)
	p.line("endmodule")
	_, err := io.WriteString(w, p.String())
	if err != nil {
		return fmt.Errorf("EmitModule(%s): %w", e.mod.Name, err)
	}
	return nil
}

// header writes the generated-file banner.
func (e *Emitter) header(p *printer) {
	p.line(rule)
	p.line("// Random Verilog Datapath Generator")
	p.line("// Generated: %s", e.now().Format(timestampLayout))
	p.line(rule)
	p.line("// This file was automatically generated for synthesis tool benchmarking.")
	p.line("// Module: %s", e.mod.Name)
	p.line("// Inputs: %d", len(e.mod.Inputs()))
	p.line("// Outputs: %d", len(e.mod.Outputs()))
	p.line("// Operations: %d", len(e.mod.Operations))
	p.line(rule)
	p.blank()
}

// moduleDecl writes the port list. clk and rst_n are declared only when the
// sequential section will reference them.
func (e *Emitter) moduleDecl(p *printer) {
	p.line("module %s (", e.mod.Name)

	var ports []string
	if len(e.resetRegs()) > 0 {
		ports = append(ports, "    input clk", "    input rst_n")
	}
	for _, id := range e.mod.Inputs() {
		ports = append(ports, "    input "+portSpec(e.mod.Signal(id)))
	}
	for _, id := range e.mod.Outputs() {
		ports = append(ports, "    output "+portSpec(e.mod.Signal(id)))
	}
	for i, port := range ports {
		if i < len(ports)-1 {
			p.line("%s,", port)
		} else {
			p.line("%s", port)
		}
	}
	p.line(");")
	p.blank()
}

// portSpec renders "signed [w-1:0] name" for a port, omitting the range for
// 1-bit signals.
func portSpec(s netlist.Signal) string {
	var b strings.Builder
	if s.Signed {
		b.WriteString("signed ")
	}
	if s.Width > 1 {
		fmt.Fprintf(&b, "[%d:0] ", s.Width-1)
	}
	b.WriteString(s.Name)
	return b.String()
}

// declaration renders the full internal declaration ("wire signed [7:0] x").
func declaration(s netlist.Signal) string {
	var b strings.Builder
	switch s.Kind {
	case netlist.Wire:
		b.WriteString("wire ")
	case netlist.Reg:
		b.WriteString("reg ")
	case netlist.Input:
		b.WriteString("input ")
	case netlist.Output:
		b.WriteString("output ")
	}
	if s.Signed {
		b.WriteString("signed ")
	}
	if s.Width > 1 {
		fmt.Fprintf(&b, "[%d:0] ", s.Width-1)
	}
	b.WriteString(s.Name)
	return b.String()
}

func (e *Emitter) declarations(p *printer) {
	if wires := e.mod.Wires(); len(wires) > 0 {
		p.push()
		p.line("// Internal wires")
		for _, id := range wires {
			p.line("%s;", declaration(e.mod.Signal(id)))
		}
		p.pop()
		p.blank()
	}
	if regs := e.mod.Regs(); len(regs) > 0 {
		p.push()
		p.line("// Registers")
		for _, id := range regs {
			p.line("%s;", declaration(e.mod.Signal(id)))
		}
		p.pop()
		p.blank()
	}
}

// combinational writes one assign per datapath operation.
func (e *Emitter) combinational(p *printer) {
	p.push()
	defer p.pop()
	if len(e.mod.Operations) == 0 {
		p.line("// No operations generated")
		p.blank()
		return
	}
	p.line("// ========================================")
	p.line("// Combinational Logic")
	p.line("// ========================================")
	p.blank()
	for i := range e.mod.Operations {
		p.line("%s", e.assignment(&e.mod.Operations[i]))
	}
	p.blank()
}

// controlBlocks writes each control block as an always @(*) region, with the
// block's scratch operations hoisted to assigns directly above it.
func (e *Emitter) controlBlocks(p *printer) {
	if len(e.mod.Blocks) == 0 {
		return
	}
	p.push()
	defer p.pop()
	p.line("// ========================================")
	p.line("// Control Flow Structures")
	p.line("// (for testing synthesis optimization)")
	p.line("// ========================================")
	p.blank()
	for i := range e.mod.Blocks {
		b := &e.mod.Blocks[i]
		e.blockScratchOps(p, b)
		switch b.Kind {
		case netlist.CaseStatement:
			e.caseBlock(p, b)
		case netlist.IfElseChain:
			e.ifElseBlock(p, b)
		}
		p.blank()
	}
}

// blockScratchOps hoists a block's per-region operations above the block.
func (e *Emitter) blockScratchOps(p *printer, b *netlist.ControlBlock) {
	emit := func(ops []netlist.Operation) {
		for i := range ops {
			p.line("%s", e.assignment(&ops[i]))
		}
	}
	switch b.Kind {
	case netlist.CaseStatement:
		for i := range b.Cases {
			emit(b.Cases[i].Ops)
		}
	case netlist.IfElseChain:
		for i := range b.Branches {
			emit(b.Branches[i].Ops)
		}
	}
}

func (e *Emitter) caseBlock(p *printer, b *netlist.ControlBlock) {
	p.line("always @(*) begin")
	p.push()
	p.line("case (%s)", e.mod.Signal(b.Selector).Name)
	p.push()
	for i := range b.Cases {
		c := &b.Cases[i]
		p.line("%d: begin", c.Value)
		p.push()
		for _, a := range c.Assigns {
			p.line("%s = %s;", e.mod.Signal(a.Dst).Name, e.mod.Signal(a.Src).Name)
		}
		p.pop()
		p.line("end")
	}
	if len(b.Default) > 0 {
		p.line("default: begin")
		p.push()
		for _, a := range b.Default {
			p.line("%s = %s;", e.mod.Signal(a.Dst).Name, e.mod.Signal(a.Src).Name)
		}
		p.pop()
		p.line("end")
	}
	p.pop()
	p.line("endcase")
	p.pop()
	p.line("end")
}

func (e *Emitter) ifElseBlock(p *printer, b *netlist.ControlBlock) {
	p.line("always @(*) begin")
	p.push()
	for i := range b.Branches {
		br := &b.Branches[i]
		switch {
		case i == 0 && br.Cond == netlist.NoSignal:
			// A chain reduced to its unconditional branch renders as a
			// plain region rather than resolving the absent condition.
			p.line("begin")
		case i == 0:
			p.line("if (%s) begin", e.mod.Signal(br.Cond).Name)
		case br.Cond != netlist.NoSignal:
			p.line("end else if (%s) begin", e.mod.Signal(br.Cond).Name)
		default:
			p.line("end else begin")
		}
		p.push()
		for _, a := range br.Assigns {
			p.line("%s = %s;", e.mod.Signal(a.Dst).Name, e.mod.Signal(a.Src).Name)
		}
		p.pop()
	}
	if len(b.Branches) > 0 {
		p.line("end")
	}
	p.pop()
	p.line("end")
}

// outputConns drives declared outputs. Width mismatches are rendered as-is
// with a comment naming the coercion; no truncation or extension is added.
func (e *Emitter) outputConns(p *printer) {
	if len(e.mod.Conns) == 0 {
		return
	}
	p.push()
	defer p.pop()
	p.line("// ========================================")
	p.line("// Output Connections")
	p.line("// ========================================")
	p.blank()
	for _, c := range e.mod.Conns {
		out := e.mod.Signal(c.Output)
		src := e.mod.Signal(c.Source)
		if src.Width != out.Width {
			p.line("assign %s = %s; // width %d -> %d, unchecked",
				out.Name, src.Name, src.Width, out.Width)
		} else {
			p.line("assign %s = %s;", out.Name, src.Name)
		}
	}
	p.blank()
}

// resetRegs returns the registers no control block writes. Only these get a
// sequential reset; control-block registers keep their always @(*) drivers.
func (e *Emitter) resetRegs() []netlist.SignalID {
	written := make(map[netlist.SignalID]struct{})
	for i := range e.mod.Blocks {
		for _, id := range e.mod.Blocks[i].WrittenSignals() {
			written[id] = struct{}{}
		}
	}
	var free []netlist.SignalID
	for _, id := range e.mod.Regs() {
		if _, ok := written[id]; !ok {
			free = append(free, id)
		}
	}
	return free
}

// sequential writes the reset section for registers without a combinational
// driver.
func (e *Emitter) sequential(p *printer) {
	regs := e.resetRegs()
	if len(regs) == 0 {
		return
	}
	p.push()
	defer p.pop()
	p.line("// ========================================")
	p.line("// Sequential Logic (Pipeline Registers)")
	p.line("// ========================================")
	p.blank()
	p.line("always @(posedge clk or negedge rst_n) begin")
	p.push()
	p.line("if (!rst_n) begin")
	p.push()
	for _, id := range regs {
		p.line("%s <= 0;", e.mod.Signal(id).Name)
	}
	p.pop()
	p.line("end")
	p.pop()
	p.line("end")
	p.blank()
}
