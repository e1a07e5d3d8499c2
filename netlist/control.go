// Package netlist: mutually-exclusive control regions.
package netlist

import (
	"errors"
	"fmt"
)

// ErrBadControlBlock indicates a structurally invalid control block (a
// non-final else branch, or diverging written-register sets).
var ErrBadControlBlock = errors.New("netlist: malformed control block")

// ControlKind discriminates the two control-block shapes.
type ControlKind uint8

const (
	// CaseStatement selects one region by matching a selector value.
	CaseStatement ControlKind = iota
	// IfElseChain selects one region by the first true condition.
	IfElseChain
)

// Assign is a direct pass-through assignment inside a control region.
// Dst must have kind Reg: registers may legally be written from every
// mutually-exclusive region, wires may not.
type Assign struct {
	Dst SignalID
	Src SignalID
}

// CaseItem is one arm of a case statement.
type CaseItem struct {
	// Value is the selector match value.
	Value int
	// Ops are scratch operations evaluated inside this arm.
	Ops []Operation
	// Assigns are the register writes performed by this arm.
	Assigns []Assign
}

// Branch is one arm of an if/else-if/else chain. Cond == NoSignal marks the
// final unconditional else; at most one such branch may exist and it must be
// last.
type Branch struct {
	Cond    SignalID
	Ops     []Operation
	Assigns []Assign
}

// ControlBlock groups operations and register writes into mutually-exclusive
// regions. At most one region is active per evaluation, which is what lets a
// synthesis tool share one physical unit across the expensive operations of
// different regions.
type ControlBlock struct {
	Kind ControlKind

	// Selector is the case-statement selector; unused for if/else chains.
	Selector SignalID

	// Cases and Default belong to CaseStatement blocks.
	Cases   []CaseItem
	Default []Assign

	// Branches belongs to IfElseChain blocks.
	Branches []Branch
}

// NewCaseStatement starts an empty case statement over the given selector.
func NewCaseStatement(selector SignalID) *ControlBlock {
	return &ControlBlock{Kind: CaseStatement, Selector: selector}
}

// NewIfElseChain starts an empty if/else chain.
func NewIfElseChain() *ControlBlock {
	return &ControlBlock{Kind: IfElseChain}
}

// AddCase appends an arm matching value and returns its index.
func (b *ControlBlock) AddCase(value int) int {
	b.Cases = append(b.Cases, CaseItem{Value: value})
	return len(b.Cases) - 1
}

// AddCaseOp appends a scratch operation to the arm at idx.
func (b *ControlBlock) AddCaseOp(idx int, op Operation) {
	b.Cases[idx].Ops = append(b.Cases[idx].Ops, op)
}

// AddCaseAssign appends a register write to the arm at idx.
func (b *ControlBlock) AddCaseAssign(idx int, dst, src SignalID) {
	b.Cases[idx].Assigns = append(b.Cases[idx].Assigns, Assign{Dst: dst, Src: src})
}

// SetDefault installs the default arm's pass-through assignments.
func (b *ControlBlock) SetDefault(assigns []Assign) {
	b.Default = assigns
}

// AddBranch appends a conditional branch and returns its index.
func (b *ControlBlock) AddBranch(cond SignalID) int {
	b.Branches = append(b.Branches, Branch{Cond: cond})
	return len(b.Branches) - 1
}

// AddElse appends the final unconditional branch and returns its index.
func (b *ControlBlock) AddElse() int {
	b.Branches = append(b.Branches, Branch{Cond: NoSignal})
	return len(b.Branches) - 1
}

// AddBranchOp appends a scratch operation to the branch at idx.
func (b *ControlBlock) AddBranchOp(idx int, op Operation) {
	b.Branches[idx].Ops = append(b.Branches[idx].Ops, op)
}

// AddBranchAssign appends a register write to the branch at idx.
func (b *ControlBlock) AddBranchAssign(idx int, dst, src SignalID) {
	b.Branches[idx].Assigns = append(b.Branches[idx].Assigns, Assign{Dst: dst, Src: src})
}

// WrittenSignals returns the deduplicated, first-seen-ordered set of
// registers written anywhere in the block (all arms plus the default).
func (b *ControlBlock) WrittenSignals() []SignalID {
	var out []SignalID
	seen := make(map[SignalID]struct{})
	record := func(assigns []Assign) {
		for _, a := range assigns {
			if _, ok := seen[a.Dst]; ok {
				continue
			}
			seen[a.Dst] = struct{}{}
			out = append(out, a.Dst)
		}
	}
	switch b.Kind {
	case CaseStatement:
		for _, c := range b.Cases {
			record(c.Assigns)
		}
		record(b.Default)
	case IfElseChain:
		for _, br := range b.Branches {
			record(br.Assigns)
		}
	}
	return out
}

// Validate checks the block's structural invariants against its module:
// every assignment destination is a register, every region (case, default,
// branch) writes the block's full shared register set, and for if/else
// chains the first branch carries a condition and at most one branch is
// unconditional, coming last.
func (b *ControlBlock) Validate(m *Module) error {
	shared := len(b.WrittenSignals())
	check := func(where string, assigns []Assign) error {
		seen := make(map[SignalID]struct{}, len(assigns))
		for _, a := range assigns {
			if m.Signal(a.Dst).Kind != Reg {
				return fmt.Errorf("%s: writes %s (%s): %w",
					where, m.Signal(a.Dst).Name, m.Signal(a.Dst).Kind, ErrBadAssignment)
			}
			seen[a.Dst] = struct{}{}
		}
		// seen is a subset of the union by construction, so a size match
		// means this region writes exactly the shared set.
		if len(seen) != shared {
			return fmt.Errorf("%s: writes %d of %d shared registers: %w",
				where, len(seen), shared, ErrBadControlBlock)
		}
		return nil
	}
	switch b.Kind {
	case CaseStatement:
		for _, c := range b.Cases {
			if err := check(fmt.Sprintf("case %d", c.Value), c.Assigns); err != nil {
				return err
			}
		}
		if len(b.Default) > 0 {
			if err := check("default", b.Default); err != nil {
				return err
			}
		}
	case IfElseChain:
		for i, br := range b.Branches {
			if i == 0 && br.Cond == NoSignal {
				return fmt.Errorf("branch 0: chain must open with a condition: %w", ErrBadControlBlock)
			}
			if br.Cond == NoSignal && i != len(b.Branches)-1 {
				return fmt.Errorf("branch %d: else before last branch: %w", i, ErrBadControlBlock)
			}
			if err := check(fmt.Sprintf("branch %d", i), br.Assigns); err != nil {
				return err
			}
		}
	}
	return nil
}
