// Package netlist: operation kinds, arity contracts and width inference.
package netlist

import "fmt"

// OpKind is the closed set of datapath operation kinds. No kind is added or
// removed at runtime; every kind carries a fixed required arity and a width/
// signedness inference rule.
type OpKind uint8

const (
	// Arithmetic.
	OpAdd OpKind = iota
	OpSub
	OpMul
	OpDiv
	OpMod

	// Bitwise logical.
	OpAnd
	OpOr
	OpXor
	OpNot
	OpNand
	OpNor
	OpXnor

	// Comparison.
	OpEq
	OpNeq
	OpLt
	OpGt
	OpLte
	OpGte

	// Shift: logical left, logical right, arithmetic right.
	OpShl
	OpShr
	OpSha

	// Reduction.
	OpRedAnd
	OpRedOr
	OpRedXor
	OpRedNand
	OpRedNor
	OpRedXnor

	// Multiplexers.
	OpMux2
	OpMux4

	// Concatenation.
	OpConcat

	// Conditional (ternary). Part of the closed set; the generator does not
	// currently produce it.
	OpCond
)

// opNames maps kinds to stable mnemonics for diagnostics and tests.
var opNames = map[OpKind]string{
	OpAdd: "add", OpSub: "sub", OpMul: "mul", OpDiv: "div", OpMod: "mod",
	OpAnd: "and", OpOr: "or", OpXor: "xor", OpNot: "not",
	OpNand: "nand", OpNor: "nor", OpXnor: "xnor",
	OpEq: "eq", OpNeq: "neq", OpLt: "lt", OpGt: "gt", OpLte: "lte", OpGte: "gte",
	OpShl: "shl", OpShr: "shr", OpSha: "sha",
	OpRedAnd: "red_and", OpRedOr: "red_or", OpRedXor: "red_xor",
	OpRedNand: "red_nand", OpRedNor: "red_nor", OpRedXnor: "red_xnor",
	OpMux2: "mux2", OpMux4: "mux4", OpConcat: "concat", OpCond: "cond",
}

// String returns the kind's mnemonic.
func (k OpKind) String() string {
	if n, ok := opNames[k]; ok {
		return n
	}
	return fmt.Sprintf("op(%d)", uint8(k))
}

// IsUnary reports whether the kind consumes exactly one operand.
func (k OpKind) IsUnary() bool {
	switch k {
	case OpNot, OpRedAnd, OpRedOr, OpRedXor, OpRedNand, OpRedNor, OpRedXnor:
		return true
	}
	return false
}

// IsBinary reports whether the kind consumes exactly two operands.
func (k OpKind) IsBinary() bool {
	switch k {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod,
		OpAnd, OpOr, OpXor, OpNand, OpNor, OpXnor,
		OpEq, OpNeq, OpLt, OpGt, OpLte, OpGte,
		OpShl, OpShr, OpSha:
		return true
	}
	return false
}

// RequiredOperands returns the kind's required operand count. For OpConcat
// the value is the minimum (2); every other kind requires the exact count.
func (k OpKind) RequiredOperands() int {
	switch {
	case k.IsUnary():
		return 1
	case k.IsBinary():
		return 2
	case k == OpMux2 || k == OpCond:
		return 3
	case k == OpMux4:
		return 5 // 1 selector + 4 data
	case k == OpConcat:
		return 2
	}
	return 0
}

// Infer computes the output width and signedness for the kind given its
// operand signals, per the category inference rules. The operand slice must
// already satisfy the kind's arity.
func (k OpKind) Infer(operands []Signal) (width int, signed bool) {
	switch k {
	case OpAdd, OpSub, OpDiv, OpMod:
		return maxWidth(operands[0], operands[1]), operands[0].Signed || operands[1].Signed
	case OpMul:
		// A multiplier produces the full double-width product.
		return operands[0].Width + operands[1].Width, operands[0].Signed || operands[1].Signed
	case OpAnd, OpOr, OpXor, OpNand, OpNor, OpXnor:
		return maxWidth(operands[0], operands[1]), false
	case OpNot:
		return operands[0].Width, operands[0].Signed
	case OpEq, OpNeq, OpLt, OpGt, OpLte, OpGte:
		return 1, false
	case OpShl, OpShr, OpSha:
		// Shift amount never widens the shifted operand.
		return operands[0].Width, operands[0].Signed
	case OpRedAnd, OpRedOr, OpRedXor, OpRedNand, OpRedNor, OpRedXnor:
		return 1, false
	case OpMux2, OpCond:
		return maxWidth(operands[1], operands[2]), operands[1].Signed || operands[2].Signed
	case OpMux4:
		return operands[1].Width, false
	case OpConcat:
		total := 0
		for _, s := range operands {
			total += s.Width
		}
		return total, false
	}
	return 1, false
}

func maxWidth(a, b Signal) int {
	if a.Width >= b.Width {
		return a.Width
	}
	return b.Width
}

// Operation is a tagged datapath node: it consumes Operands in order and
// produces Output (a fresh wire, or a scratch wire inside a control block).
// Depth and Stage are scheduling metadata set once in a post-pass; neither
// reflects true combinational depth.
type Operation struct {
	Kind     OpKind
	Output   SignalID
	Operands []SignalID
	Depth    int
	Stage    int
}

// NewOperation builds an operation, enforcing the kind's arity. An operation
// that would be emitted with too few operands is rejected here, never later.
func NewOperation(kind OpKind, output SignalID, operands []SignalID) (Operation, error) {
	need := kind.RequiredOperands()
	got := len(operands)
	if kind == OpConcat {
		if got < need {
			return Operation{}, fmt.Errorf("NewOperation(%s): %d operands, need >= %d: %w",
				kind, got, need, ErrArityMismatch)
		}
	} else if got != need {
		return Operation{}, fmt.Errorf("NewOperation(%s): %d operands, need %d: %w",
			kind, got, need, ErrArityMismatch)
	}
	return Operation{Kind: kind, Output: output, Operands: operands}, nil
}
