// SPDX-License-Identifier: MIT
// Package: dpforge/config
//
// validate.go - configuration-tier validation and sentinel errors.
//
// Error policy (strict, mirrors the rest of the repo):
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX); messages add context via %w.
//   - This is the ONLY place generation parameters are checked. The
//     generator trusts a validated Config completely; a config that fails
//     here aborts the whole run before any generation starts.
package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration validation.
var (
	// ErrBadCount indicates a port or structure count outside its sane bounds.
	ErrBadCount = errors.New("config: count out of range")

	// ErrBadWidthRange indicates an invalid width range (min < 1 or min > max).
	ErrBadWidthRange = errors.New("config: invalid width range")

	// ErrBadWeight indicates a non-positive weight total for a draw that is
	// reachable, which would leave the weighted selection with no candidates.
	ErrBadWeight = errors.New("config: weight total must be positive")

	// ErrBadDepth indicates MaxDepth < 1 or a negative pipeline stage count.
	ErrBadDepth = errors.New("config: invalid depth/pipeline parameters")
)

// Bounds for port and structure counts.
const (
	MinPorts = 1
	MaxPorts = 1000
)

// Validate enforces the configuration tier. It returns the first violation
// found, wrapped with the offending parameter for context.
func (c Config) Validate() error {
	if c.NumInputs < MinPorts || c.NumInputs > MaxPorts {
		return fmt.Errorf("num_inputs=%d not in [%d,%d]: %w", c.NumInputs, MinPorts, MaxPorts, ErrBadCount)
	}
	if c.NumOutputs < MinPorts || c.NumOutputs > MaxPorts {
		return fmt.Errorf("num_outputs=%d not in [%d,%d]: %w", c.NumOutputs, MinPorts, MaxPorts, ErrBadCount)
	}
	if c.InputWidthMin < 1 || c.InputWidthMin > c.InputWidthMax {
		return fmt.Errorf("input width range [%d,%d]: %w", c.InputWidthMin, c.InputWidthMax, ErrBadWidthRange)
	}
	if c.OutputWidthMin < 1 || c.OutputWidthMin > c.OutputWidthMax {
		return fmt.Errorf("output width range [%d,%d]: %w", c.OutputWidthMin, c.OutputWidthMax, ErrBadWidthRange)
	}
	if c.NumOperations < 1 {
		return fmt.Errorf("num_operations=%d: %w", c.NumOperations, ErrBadCount)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("max_depth=%d: %w", c.MaxDepth, ErrBadDepth)
	}
	if c.NumPipelineStages < 0 {
		return fmt.Errorf("num_pipeline_stages=%d: %w", c.NumPipelineStages, ErrBadDepth)
	}
	if c.CategoryWeightTotal() <= 0 {
		return fmt.Errorf("category weights sum to %g: %w", c.CategoryWeightTotal(), ErrBadWeight)
	}
	// Sub-weight vectors only matter when their category is reachable. An
	// all-zero vector for a reachable category would leave the second-level
	// draw with no candidates, so it is rejected here.
	if c.WeightArithmetic > 0 && c.ArithmeticWeightTotal() <= 0 {
		return fmt.Errorf("arithmetic sub-weights sum to %g: %w", c.ArithmeticWeightTotal(), ErrBadWeight)
	}
	if c.WeightShift > 0 && c.ShiftWeightTotal() <= 0 {
		return fmt.Errorf("shift sub-weights sum to %g: %w", c.ShiftWeightTotal(), ErrBadWeight)
	}
	if c.NumCaseStatements < 0 {
		return fmt.Errorf("num_case_statements=%d: %w", c.NumCaseStatements, ErrBadCount)
	}
	if c.NumIfElseChains < 0 {
		return fmt.Errorf("num_if_else_chains=%d: %w", c.NumIfElseChains, ErrBadCount)
	}
	if (c.GenerateCaseStatements || c.NumCaseStatements > 0) && c.CasesPerStatement < 1 {
		return fmt.Errorf("cases_per_statement=%d: %w", c.CasesPerStatement, ErrBadCount)
	}
	return nil
}
