// SPDX-License-Identifier: MIT
// Package: dpforge/generator
//
// constants.go - phase tags and generation constants.
//
// Every probability and count the engine draws with lives here; the phase
// tags prefix wrapped errors so a failure names the phase that produced it.
package generator

// Phase tags used as error-context prefixes. Only fallible phases carry a
// tag; output connection and depth assignment cannot fail.
const (
	phaseInputs   = "Inputs"
	phaseOutputs  = "Outputs"
	phaseDatapath = "Datapath"
	phaseControl  = "ControlBlocks"
)

// Signedness is drawn per signal with this probability when signed
// generation is enabled.
const pSigned = 0.5

// pMux4 is the probability that a mux draw produces a 4-way mux instead of
// a 2-way one.
const pMux4 = 0.3

// mux4SelectorWidth is the minimum (and substitute) selector width for a
// 4-way mux. A drawn selector narrower than this is replaced by a fresh
// unwired wire of exactly this width.
const mux4SelectorWidth = 2

// Concatenation draws between concatMinOperands and concatMaxOperands
// operands.
const (
	concatMinOperands = 2
	concatMaxOperands = 4
)

// Control-block generation constants.
const (
	// defaultControlCount is used when a control-flow boolean is set but its
	// count is zero.
	defaultControlCount = 2

	// selectorWidthCap bounds the number of case values derived from the
	// selector width: at most 2^selectorWidthCap cases before the
	// cases-per-statement limit applies.
	selectorWidthCap = 4

	// Each block drives between minBlockOutputs and maxBlockOutputs shared
	// registers.
	minBlockOutputs = 1
	maxBlockOutputs = 3

	// If/else chains carry between minBranches and maxBranches branches,
	// the last always unconditional.
	minBranches = 2
	maxBranches = 4

	// minChainPool is the smallest pool an if/else chain draws from;
	// smaller pools skip the chain.
	minChainPool = 3

	// pCaseSharing is the probability that a case arm computes a fresh
	// arithmetic result instead of passing a pool signal through.
	pCaseSharing = 0.7

	// pBranchSharing is the probability that a branch computes a multiply
	// (the deliberately expensive, shareable operation) instead of a
	// pass-through.
	pBranchSharing = 0.8
)

// Sharing-opportunity group constants.
const (
	// minSharingPool is the smallest pool sharing groups draw from.
	minSharingPool = 4

	minSharingGroups = 1
	maxSharingGroups = 3

	minGroupOps = 2
	maxGroupOps = 3

	// pSharingMul is the probability that a group operation is a multiply
	// rather than an add.
	pSharingMul = 0.7
)
