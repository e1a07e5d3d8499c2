// SPDX-License-Identifier: MIT
// Package: dpforge/verilog
//
// printer.go - indentation-aware line buffer shared by the emitters.
package verilog

import (
	"fmt"
	"strings"
)

// printer accumulates output lines at the current indentation level. One
// level is four spaces.
type printer struct {
	out    strings.Builder
	indent int
}

func newPrinter() *printer {
	return &printer{}
}

// line writes one indented line with optional format args.
func (p *printer) line(format string, args ...any) {
	for i := 0; i < p.indent; i++ {
		p.out.WriteString("    ")
	}
	if len(args) == 0 {
		p.out.WriteString(format)
	} else {
		fmt.Fprintf(&p.out, format, args...)
	}
	p.out.WriteByte('\n')
}

// blank writes an empty line (never indented).
func (p *printer) blank() {
	p.out.WriteByte('\n')
}

// push increases indentation.
func (p *printer) push() { p.indent++ }

// pop decreases indentation.
func (p *printer) pop() { p.indent-- }

func (p *printer) String() string { return p.out.String() }
