// SPDX-License-Identifier: MIT
// Package: dpforge/verilog
//
// expr.go - continuous-assignment rendering per operation kind.
package verilog

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dpforge/netlist"
)

// binaryOps maps the two-operand kinds to their Verilog operator token.
var binaryOps = map[netlist.OpKind]string{
	netlist.OpAdd: "+",
	netlist.OpSub: "-",
	netlist.OpMul: "*",
	netlist.OpDiv: "/",
	netlist.OpMod: "%",
	netlist.OpAnd: "&",
	netlist.OpOr:  "|",
	netlist.OpXor: "^",
	netlist.OpEq:  "==",
	netlist.OpNeq: "!=",
	netlist.OpLt:  "<",
	netlist.OpGt:  ">",
	netlist.OpLte: "<=",
	netlist.OpGte: ">=",
	netlist.OpShl: "<<",
	netlist.OpShr: ">>",
	netlist.OpSha: ">>>",
}

// invertedOps maps the negated binary kinds to the operator inside ~( ).
var invertedOps = map[netlist.OpKind]string{
	netlist.OpNand: "&",
	netlist.OpNor:  "|",
	netlist.OpXnor: "^",
}

// reductionOps maps the reduction kinds to their unary prefix.
var reductionOps = map[netlist.OpKind]string{
	netlist.OpRedAnd:  "&",
	netlist.OpRedOr:   "|",
	netlist.OpRedXor:  "^",
	netlist.OpRedNand: "~&",
	netlist.OpRedNor:  "~|",
	netlist.OpRedXnor: "~^",
}

// assignment renders "assign out = <expr>;" for one operation.
func (e *Emitter) assignment(op *netlist.Operation) string {
	return fmt.Sprintf("assign %s = %s;", e.mod.Signal(op.Output).Name, e.expr(op))
}

// expr renders the right-hand side for an operation. Operand arity was
// enforced at construction; expr indexes the operand slice directly.
func (e *Emitter) expr(op *netlist.Operation) string {
	name := func(i int) string { return e.mod.Signal(op.Operands[i]).Name }

	if tok, ok := binaryOps[op.Kind]; ok {
		return fmt.Sprintf("(%s %s %s)", name(0), tok, name(1))
	}
	if tok, ok := invertedOps[op.Kind]; ok {
		return fmt.Sprintf("~((%s %s %s))", name(0), tok, name(1))
	}
	if tok, ok := reductionOps[op.Kind]; ok {
		return fmt.Sprintf("(%s%s)", tok, name(0))
	}

	switch op.Kind {
	case netlist.OpNot:
		return fmt.Sprintf("(~%s)", name(0))
	case netlist.OpMux2, netlist.OpCond:
		return fmt.Sprintf("(%s ? %s : %s)", name(0), name(1), name(2))
	case netlist.OpMux4:
		// {sel[1], sel[0]} indexes the four data operands d0..d3.
		sel := e.mod.Signal(op.Operands[0])
		return fmt.Sprintf("(%s ? (%s ? %s : %s) : (%s ? %s : %s))",
			sel.Bit(1), sel.Bit(0), name(4), name(3),
			sel.Bit(0), name(2), name(1))
	case netlist.OpConcat:
		parts := make([]string, len(op.Operands))
		for i := range op.Operands {
			parts[i] = name(i)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return fmt.Sprintf("/* unknown operation %s */", op.Kind)
}
