// SPDX-License-Identifier: MIT
// Package: dpforge/config
//
// config.go - generation parameters and deterministic defaults.
//
// Design:
//   - Config is the single source of truth for every generation knob.
//   - Defaults are deterministic and documented, except Seed which is
//     time-derived when not set explicitly.
//   - The struct is plain data: it is resolved and validated once at the
//     configuration tier, then passed by value to the generator, which
//     never re-validates it.

// Package config defines the generation parameters consumed by the
// generator package, their defaults, YAML file loading and the
// configuration-tier validation.
package config

import "time"

// Config carries every parameter of one generation run. Weights are
// unnormalized: the generator treats each weight vector as a discrete
// distribution and a weight <= 0 excludes its entry from the candidate set
// entirely.
type Config struct {
	// Seed addresses the pseudo-random stream; a (Config, Seed) pair is
	// bit-for-bit reproducible.
	Seed int64 `yaml:"seed"`

	// Module shape.
	ModuleName     string `yaml:"module_name"`
	NumInputs      int    `yaml:"num_inputs"`
	NumOutputs     int    `yaml:"num_outputs"`
	InputWidthMin  int    `yaml:"input_width_min"`
	InputWidthMax  int    `yaml:"input_width_max"`
	OutputWidthMin int    `yaml:"output_width_min"`
	OutputWidthMax int    `yaml:"output_width_max"`

	// Datapath complexity.
	NumOperations     int `yaml:"num_operations"`
	MaxDepth          int `yaml:"max_depth"`
	NumPipelineStages int `yaml:"num_pipeline_stages"` // 0 keeps the design combinational

	// Category weights for the first-level operation draw.
	WeightArithmetic float64 `yaml:"weight_arithmetic"`
	WeightLogical    float64 `yaml:"weight_logical"`
	WeightComparison float64 `yaml:"weight_comparison"`
	WeightShift      float64 `yaml:"weight_shift"`
	WeightMux        float64 `yaml:"weight_mux"`
	WeightConcat     float64 `yaml:"weight_concat"`
	WeightReduction  float64 `yaml:"weight_reduction"`

	// Arithmetic sub-weights for the second-level draw.
	WeightAdd float64 `yaml:"weight_add"`
	WeightSub float64 `yaml:"weight_sub"`
	WeightMul float64 `yaml:"weight_mult"`
	WeightDiv float64 `yaml:"weight_div"`
	WeightMod float64 `yaml:"weight_mod"`

	// Shift sub-weights.
	WeightShl float64 `yaml:"weight_sll"`
	WeightShr float64 `yaml:"weight_srl"`
	WeightSha float64 `yaml:"weight_sra"`

	// UseSigned enables signed signal generation (signedness is then drawn
	// with probability 0.5 per signal).
	UseSigned bool `yaml:"use_signed"`

	// Control-flow features for synthesis-optimization testing. A boolean
	// flag with a zero count means "use the default repetition count".
	GenerateCaseStatements       bool `yaml:"generate_case_statements"`
	GenerateIfElseChains         bool `yaml:"generate_if_else_chains"`
	GenerateSharingOpportunities bool `yaml:"generate_sharing_opportunities"`
	NumCaseStatements            int  `yaml:"num_case_statements"`
	NumIfElseChains              int  `yaml:"num_if_else_chains"`
	CasesPerStatement            int  `yaml:"cases_per_statement"`

	// Output options (CLI tier).
	OutputFile string `yaml:"output_file"`
	Verbose    bool   `yaml:"verbose"`
}

// Named defaults (no magic literals in Default or validation).
const (
	DefaultModuleName        = "random_datapath"
	DefaultNumInputs         = 8
	DefaultNumOutputs        = 4
	DefaultWidthMin          = 8
	DefaultWidthMax          = 32
	DefaultNumOperations     = 50
	DefaultMaxDepth          = 10
	DefaultCasesPerStatement = 4
	DefaultOutputFile        = "output.v"
)

// Default returns the documented defaults. Seed is derived from the wall
// clock; set it explicitly for reproducible runs.
func Default() Config {
	return Config{
		Seed:           time.Now().UnixNano(),
		ModuleName:     DefaultModuleName,
		NumInputs:      DefaultNumInputs,
		NumOutputs:     DefaultNumOutputs,
		InputWidthMin:  DefaultWidthMin,
		InputWidthMax:  DefaultWidthMax,
		OutputWidthMin: DefaultWidthMin,
		OutputWidthMax: DefaultWidthMax,

		NumOperations:     DefaultNumOperations,
		MaxDepth:          DefaultMaxDepth,
		NumPipelineStages: 0,

		WeightArithmetic: 0.3,
		WeightLogical:    0.2,
		WeightComparison: 0.1,
		WeightShift:      0.15,
		WeightMux:        0.15,
		WeightConcat:     0.05,
		WeightReduction:  0.05,

		WeightAdd: 0.3,
		WeightSub: 0.3,
		WeightMul: 0.25,
		WeightDiv: 0.1,
		WeightMod: 0.05,

		WeightShl: 0.4,
		WeightShr: 0.4,
		WeightSha: 0.2,

		UseSigned:         true,
		CasesPerStatement: DefaultCasesPerStatement,

		OutputFile: DefaultOutputFile,
	}
}

// CategoryWeightTotal sums the first-level category weights.
func (c Config) CategoryWeightTotal() float64 {
	return c.WeightArithmetic + c.WeightLogical + c.WeightComparison +
		c.WeightShift + c.WeightMux + c.WeightConcat + c.WeightReduction
}

// ArithmeticWeightTotal sums the arithmetic sub-weights.
func (c Config) ArithmeticWeightTotal() float64 {
	return c.WeightAdd + c.WeightSub + c.WeightMul + c.WeightDiv + c.WeightMod
}

// ShiftWeightTotal sums the shift sub-weights.
func (c Config) ShiftWeightTotal() float64 {
	return c.WeightShl + c.WeightShr + c.WeightSha
}
