// Package netlist: core signal types and sentinel errors.
//
// This file declares SignalID, SignalKind, Signal and the package sentinel
// errors. The Module arena that owns signals lives in module.go.
package netlist

import (
	"errors"
	"strconv"
)

// Sentinel errors for netlist construction.
var (
	// ErrBadWidth indicates a requested signal width below the minimum of 1.
	ErrBadWidth = errors.New("netlist: signal width must be >= 1")

	// ErrArityMismatch indicates an operation was constructed with an operand
	// count that does not match its kind's required arity.
	ErrArityMismatch = errors.New("netlist: operand count does not match kind arity")

	// ErrBadAssignment indicates a control-block assignment whose destination
	// is not a register. Only registers may be written from more than one
	// mutually-exclusive region without a multiple-driver conflict.
	ErrBadAssignment = errors.New("netlist: assignment target must be a register")
)

// SignalID is a handle into a Module's signal arena.
//
// Handles are stable for the lifetime of the run: the arena is append-only
// and signals are immutable once created. A smaller handle always refers to
// a signal created earlier.
type SignalID int

// NoSignal is the absent-signal sentinel, used for the condition of a final
// else branch. It is never a valid arena index.
const NoSignal SignalID = -1

// SignalKind is the role of a signal within the module.
type SignalKind uint8

const (
	// Input is a module input port.
	Input SignalKind = iota
	// Output is a module output port. Outputs are never read as operands.
	Output
	// Wire is an internal combinational net driven by exactly one operation.
	Wire
	// Reg is an internal register, written from control blocks.
	Reg
)

// String returns the Verilog declaration keyword for the kind.
func (k SignalKind) String() string {
	switch k {
	case Input:
		return "input"
	case Output:
		return "output"
	case Wire:
		return "wire"
	case Reg:
		return "reg"
	default:
		return "signal(" + strconv.Itoa(int(k)) + ")"
	}
}

// Signal is a named, width-typed value with a role. Immutable once created;
// identity (Name) is unique within one Module.
type Signal struct {
	// Name is the unique identifier within the module.
	Name string

	// Width is the bit width, always >= 1.
	Width int

	// Kind is the signal's role (Input/Output/Wire/Reg).
	Kind SignalKind

	// Signed marks the signal as two's-complement signed.
	Signed bool
}

// Bit returns the single-bit select expression "name[i]".
func (s Signal) Bit(i int) string {
	return s.Name + "[" + strconv.Itoa(i) + "]"
}

// Slice returns the part-select expression "name[high:low]".
func (s Signal) Slice(high, low int) string {
	return s.Name + "[" + strconv.Itoa(high) + ":" + strconv.Itoa(low) + "]"
}
