// SPDX-License-Identifier: MIT
// Package: dpforge/verilog
//
// testbench.go - self-contained simulation testbench for a generated module.
package verilog

import (
	"fmt"
	"io"
	"strings"
)

// stimulusVectors is the number of random input vectors the testbench
// applies before finishing.
const stimulusVectors = 100

// EmitTestbench writes a standalone testbench that instantiates the module,
// drives its inputs with $random and monitors its outputs.
func (e *Emitter) EmitTestbench(w io.Writer) error {
	p := newPrinter()

	p.line(rule)
	p.line("// Testbench for %s", e.mod.Name)
	p.line("// Generated: %s", e.now().Format(timestampLayout))
	p.line(rule)
	p.blank()
	p.line("`timescale 1ns / 1ps")
	p.blank()
	p.line("module tb_%s;", e.mod.Name)
	p.blank()

	p.push()
	p.line("// Testbench signals")
	hasSeq := len(e.resetRegs()) > 0
	if hasSeq {
		p.line("reg clk;")
		p.line("reg rst_n;")
	}
	for _, id := range e.mod.Inputs() {
		p.line("reg %s;", portSpec(e.mod.Signal(id)))
	}
	for _, id := range e.mod.Outputs() {
		p.line("wire %s;", portSpec(e.mod.Signal(id)))
	}
	p.blank()

	p.line("// Instantiate DUT")
	p.line("%s dut (", e.mod.Name)
	p.push()
	var conns []string
	if hasSeq {
		conns = append(conns, ".clk(clk)", ".rst_n(rst_n)")
	}
	for _, id := range e.mod.Inputs() {
		name := e.mod.Signal(id).Name
		conns = append(conns, fmt.Sprintf(".%s(%s)", name, name))
	}
	for _, id := range e.mod.Outputs() {
		name := e.mod.Signal(id).Name
		conns = append(conns, fmt.Sprintf(".%s(%s)", name, name))
	}
	for i, c := range conns {
		if i < len(conns)-1 {
			p.line("%s,", c)
		} else {
			p.line("%s", c)
		}
	}
	p.pop()
	p.line(");")
	p.blank()

	if hasSeq {
		p.line("// Clock and reset")
		p.line("initial clk = 0;")
		p.line("always #5 clk = ~clk;")
		p.blank()
	}

	p.line("// Test stimulus")
	p.line("initial begin")
	p.push()
	p.line("$dumpfile(\"%s.vcd\");", e.mod.Name)
	p.line("$dumpvars(0, tb_%s);", e.mod.Name)
	p.blank()
	if hasSeq {
		p.line("rst_n = 0;")
		p.line("#20 rst_n = 1;")
		p.blank()
	}
	p.line("// Initialize inputs")
	for _, id := range e.mod.Inputs() {
		p.line("%s = 0;", e.mod.Signal(id).Name)
	}
	p.blank()
	p.line("// Apply random test vectors")
	p.line("repeat (%d) begin", stimulusVectors)
	p.push()
	p.line("#10;")
	for _, id := range e.mod.Inputs() {
		p.line("%s = $random;", e.mod.Signal(id).Name)
	}
	p.pop()
	p.line("end")
	p.blank()
	p.line("#100 $finish;")
	p.pop()
	p.line("end")
	p.blank()

	p.line("// Monitor outputs")
	p.line("initial begin")
	p.push()
	var mon strings.Builder
	mon.WriteString("$monitor(\"Time=%0t\", $time")
	for _, id := range e.mod.Outputs() {
		name := e.mod.Signal(id).Name
		fmt.Fprintf(&mon, ", \" %s=%%h\", %s", name, name)
	}
	mon.WriteString(");")
	p.line("%s", mon.String())
	p.pop()
	p.line("end")
	p.pop()
	p.blank()

	p.line("endmodule")

	if _, err := io.WriteString(w, p.String()); err != nil {
		return fmt.Errorf("EmitTestbench(%s): %w", e.mod.Name, err)
	}
	return nil
}
