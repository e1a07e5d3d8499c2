// SPDX-License-Identifier: MIT
// Package: dpforge/generator
//
// Package generator builds pseudo-random netlist.Modules for stress-testing
// hardware-synthesis tools.
//
// A Generator owns one seeded pseudo-random stream and one module under
// construction; nothing is shared across runs. Generation is a fixed
// sequence of phases, each drawing from the stream in a documented order so
// that a (config.Config, seed) pair is bit-for-bit reproducible:
//
//  1. Inputs - widths drawn from the input range, signedness per signal.
//  2. Outputs - symmetric, from the output range. Undriven until phase 6.
//  3. Datapath - a two-level weighted category draw per operation, operands
//     drawn with replacement from the available pool (inputs + wires so
//     far). A draw that cannot find operands is skipped, never an error.
//  4. Pipeline tagging - stage labels from the declared depth heuristic.
//  5. Control blocks - case statements, if/else chains and sharing groups
//     that write shared registers from mutually-exclusive regions, giving
//     the tool under test legal resource-sharing opportunities.
//  6. Output connection - one pool draw per output; width mismatches are
//     recorded as explicit unchecked coercions, never corrected.
//  7. Depth assignment - creation-index labeling, not dependency depth.
//
// The engine never re-validates its configuration: config.Config.Validate
// is the configuration tier and runs before New is ever called.
package generator
