// Package config_test covers the defaults, the configuration-tier
// validation classes and YAML file loading.
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/dpforge/config"
	"github.com/stretchr/testify/require"
)

func TestDefault_Values(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.Equal(t, "random_datapath", cfg.ModuleName)
	require.Equal(t, 8, cfg.NumInputs)
	require.Equal(t, 4, cfg.NumOutputs)
	require.Equal(t, 8, cfg.InputWidthMin)
	require.Equal(t, 32, cfg.InputWidthMax)
	require.Equal(t, 50, cfg.NumOperations)
	require.Equal(t, 10, cfg.MaxDepth)
	require.Equal(t, 0, cfg.NumPipelineStages)
	require.True(t, cfg.UseSigned)
	require.NotZero(t, cfg.Seed) // time-derived unless set explicitly

	require.InDelta(t, 1.0, cfg.CategoryWeightTotal(), 1e-9)
	require.InDelta(t, 1.0, cfg.ArithmeticWeightTotal(), 1e-9)
	require.InDelta(t, 1.0, cfg.ShiftWeightTotal(), 1e-9)

	require.NoError(t, cfg.Validate())
}

func TestValidate_Violations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"zero inputs", func(c *config.Config) { c.NumInputs = 0 }, config.ErrBadCount},
		{"too many outputs", func(c *config.Config) { c.NumOutputs = 1001 }, config.ErrBadCount},
		{"zero operations", func(c *config.Config) { c.NumOperations = 0 }, config.ErrBadCount},
		{"input min above max", func(c *config.Config) { c.InputWidthMin = 16; c.InputWidthMax = 8 }, config.ErrBadWidthRange},
		{"zero output width", func(c *config.Config) { c.OutputWidthMin = 0 }, config.ErrBadWidthRange},
		{"zero max depth", func(c *config.Config) { c.MaxDepth = 0 }, config.ErrBadDepth},
		{"negative pipeline", func(c *config.Config) { c.NumPipelineStages = -1 }, config.ErrBadDepth},
		{"all category weights zero", func(c *config.Config) {
			c.WeightArithmetic = 0
			c.WeightLogical = 0
			c.WeightComparison = 0
			c.WeightShift = 0
			c.WeightMux = 0
			c.WeightConcat = 0
			c.WeightReduction = 0
		}, config.ErrBadWeight},
		{"reachable arithmetic with zero sub-weights", func(c *config.Config) {
			c.WeightAdd = 0
			c.WeightSub = 0
			c.WeightMul = 0
			c.WeightDiv = 0
			c.WeightMod = 0
		}, config.ErrBadWeight},
		{"reachable shift with zero sub-weights", func(c *config.Config) {
			c.WeightShl = 0
			c.WeightShr = 0
			c.WeightSha = 0
		}, config.ErrBadWeight},
		{"negative case count", func(c *config.Config) { c.NumCaseStatements = -1 }, config.ErrBadCount},
		{"case statements without cases", func(c *config.Config) {
			c.GenerateCaseStatements = true
			c.CasesPerStatement = 0
		}, config.ErrBadCount},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}
}

func TestValidate_UnreachableSubWeightsIgnored(t *testing.T) {
	t.Parallel()

	// A zero-weight category makes its sub-weight vector irrelevant.
	cfg := config.Default()
	cfg.WeightShift = 0
	cfg.WeightShl = 0
	cfg.WeightShr = 0
	cfg.WeightSha = 0
	require.NoError(t, cfg.Validate())
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_OverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, `
seed: 42
num_inputs: 16
weight_mult: 0.5
generate_if_else_chains: true
`)
	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	require.Equal(t, int64(42), cfg.Seed)
	require.Equal(t, 16, cfg.NumInputs)
	require.Equal(t, 0.5, cfg.WeightMul)
	require.True(t, cfg.GenerateIfElseChains)

	// Untouched keys keep their defaults.
	require.Equal(t, 4, cfg.NumOutputs)
	require.Equal(t, 50, cfg.NumOperations)
}

func TestLoadFile_EmptyFileIsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFile(writeTemp(t, ""))
	require.NoError(t, err)
	require.Equal(t, 8, cfg.NumInputs)
	require.Equal(t, "random_datapath", cfg.ModuleName)
}

func TestLoadFile_RejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFile(writeTemp(t, "weight_mult: 0.5\nweight_multt: 0.5\n"))
	require.Error(t, err)
}

func TestLoadFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
