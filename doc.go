// Package dpforge is a deterministic random-netlist generator: given a
// configuration and a seed it builds a pseudo-random hardware dataflow
// design — typed signals, weighted-random operations, pipeline tags and
// mutually-exclusive control blocks — and renders it as Verilog for
// stress-testing synthesis tools.
//
// 🚀 What is dpforge?
//
//	A reproducible benchmark-design factory:
//		• Signal registry: inputs, outputs, wires and registers with width
//		  and signedness
//		• Weighted operation mix: arithmetic, logical, comparison, shift,
//		  mux, concatenation, reduction
//		• Width/type inference per operation kind
//		• Control blocks: case statements and if/else chains whose branches
//		  write the same registers, handing the tool under test legal
//		  resource-sharing opportunities
//		• Verilog rendering with an optional self-checking testbench
//
// ✨ Why choose dpforge?
//
//   - Bit-for-bit reproducible – one seed, one design, every time
//   - Structurally valid by construction – arity and width invariants are
//     enforced where entities are created
//   - Pure Go – no cgo, no simulation backend required
//
// Everything is organized under four subpackages and one command:
//
//	netlist/   — Module, Signal, Operation & ControlBlock data model
//	generator/ — the seeded generation engine (phases, draws, pools)
//	config/    — parameters, defaults, YAML loading & validation
//	verilog/   — pure rendering of a finished module (+ testbench)
//	cmd/dpforge — the command-line front end
//
// Quick start:
//
//	dpforge -s 42 -n 100 -i 16 -O 8 -o bench.v
//
// generates a 100-operation design with 16 inputs and 8 outputs,
// reproducibly from seed 42.
package dpforge
