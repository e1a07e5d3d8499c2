// Package netlist defines the central Module, Signal, Operation and
// ControlBlock types: the in-memory representation of one generated
// hardware dataflow design.
//
// A Module owns every entity created during a generation run. Signals live
// in an append-only arena and are referenced everywhere else by SignalID
// handles, never by pointer and never by copy; Operations and ControlBlocks
// hold handles into that arena. All sequences are ordered and append-only:
// insertion order is declaration order and is significant for deterministic
// rendering.
//
// The package is a pure data model plus the per-kind invariants that make
// a model structurally valid: operation arity and the width/signedness
// inference rules live here, on OpKind. It performs no randomness and no
// I/O; the generator package builds modules and the verilog package renders
// them read-only.
//
// Errors:
//
//	ErrBadWidth        - signal width below 1.
//	ErrArityMismatch   - operand count does not match the kind's arity.
//	ErrBadAssignment   - control-block assignment target is not a register.
//	ErrBadControlBlock - structurally malformed control block.
package netlist
