// Package netlist: the Module arena and signal registry.
package netlist

import (
	"fmt"
	"strconv"
)

// Module is the finished (or in-progress) design graph. It owns the signal
// arena and the ordered operation, control-block and output-connection
// sequences. Everything is append-only: no entity is removed or mutated
// after creation, except an Operation's Depth/Stage fields which the
// generator sets once in a post-pass.
//
// A Module is not safe for concurrent mutation; a generation run owns its
// module exclusively and readers only ever see the finished graph.
type Module struct {
	// Name is the generated Verilog module name.
	Name string

	signals []Signal // arena; SignalID indexes into it

	inputs  []SignalID
	outputs []SignalID
	wires   []SignalID
	regs    []SignalID

	// nameCounter numbers wires and registers. It is shared between the two
	// kinds so generated names never collide.
	nameCounter int

	// Operations is the ordered datapath sequence (declaration order).
	Operations []Operation

	// Blocks is the ordered control-block sequence.
	Blocks []ControlBlock

	// Conns records output-driving relationships, including unchecked width
	// coercions (no truncation or extension is ever inserted).
	Conns []OutputConn

	// SharingGroups annotates clusters of Operations entries that were
	// generated around one enable signal. The annotation is documentation
	// only: no structural gating is applied to the member operations.
	SharingGroups []SharingGroup
}

// SharingGroup names an enable signal and the Operations indices generated
// under it. Members are ordinary datapath operations; the group exists so a
// reader of the netlist can see which operations were meant to compete for
// one functional unit.
type SharingGroup struct {
	Enable SignalID
	Ops    []int
}

// OutputConn records that Source drives Output. Widths may differ; the
// mismatch is preserved verbatim so the renderer can surface it.
type OutputConn struct {
	Output SignalID
	Source SignalID
}

// NewModule returns an empty module with the given name.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// add appends a signal to the arena and returns its handle.
func (m *Module) add(s Signal) SignalID {
	id := SignalID(len(m.signals))
	m.signals = append(m.signals, s)
	return id
}

// AddInput registers a module input port. Name uniqueness is the caller's
// responsibility for ports (the generator numbers them in_0, in_1, ...).
func (m *Module) AddInput(name string, width int, signed bool) (SignalID, error) {
	if width < minSignalWidth {
		return NoSignal, fmt.Errorf("AddInput(%s): width=%d: %w", name, width, ErrBadWidth)
	}
	id := m.add(Signal{Name: name, Width: width, Kind: Input, Signed: signed})
	m.inputs = append(m.inputs, id)
	return id, nil
}

// AddOutput registers a module output port.
func (m *Module) AddOutput(name string, width int, signed bool) (SignalID, error) {
	if width < minSignalWidth {
		return NoSignal, fmt.Errorf("AddOutput(%s): width=%d: %w", name, width, ErrBadWidth)
	}
	id := m.add(Signal{Name: name, Width: width, Kind: Output, Signed: signed})
	m.outputs = append(m.outputs, id)
	return id, nil
}

// NewWire allocates a fresh uniquely-named internal wire and returns its
// handle. The name counter is shared with NewReg.
func (m *Module) NewWire(width int, signed bool) (SignalID, error) {
	if width < minSignalWidth {
		return NoSignal, fmt.Errorf("NewWire: width=%d: %w", width, ErrBadWidth)
	}
	name := "wire_" + strconv.Itoa(m.nameCounter)
	m.nameCounter++
	id := m.add(Signal{Name: name, Width: width, Kind: Wire, Signed: signed})
	m.wires = append(m.wires, id)
	return id, nil
}

// NewReg allocates a fresh uniquely-named internal register.
func (m *Module) NewReg(width int, signed bool) (SignalID, error) {
	if width < minSignalWidth {
		return NoSignal, fmt.Errorf("NewReg: width=%d: %w", width, ErrBadWidth)
	}
	name := "reg_" + strconv.Itoa(m.nameCounter)
	m.nameCounter++
	id := m.add(Signal{Name: name, Width: width, Kind: Reg, Signed: signed})
	m.regs = append(m.regs, id)
	return id, nil
}

// minSignalWidth is the lower bound the registry enforces. Upper bounds are
// a configuration-tier concern and are not re-checked here.
const minSignalWidth = 1

// Signal resolves a handle. The handle must come from this module; resolving
// NoSignal or a foreign handle is a programmer error and panics.
func (m *Module) Signal(id SignalID) Signal {
	return m.signals[id]
}

// NumSignals reports the arena size (inputs + outputs + wires + regs).
func (m *Module) NumSignals() int { return len(m.signals) }

// Inputs returns the ordered input handles. The returned slice is shared;
// callers must treat it as read-only.
func (m *Module) Inputs() []SignalID { return m.inputs }

// Outputs returns the ordered output handles (read-only).
func (m *Module) Outputs() []SignalID { return m.outputs }

// Wires returns the ordered internal wire handles (read-only).
func (m *Module) Wires() []SignalID { return m.wires }

// Regs returns the ordered internal register handles (read-only).
func (m *Module) Regs() []SignalID { return m.regs }
