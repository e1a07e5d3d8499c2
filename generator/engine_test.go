// Package generator_test covers the generation engine end to end: the
// determinism contract, the structural invariants of generated modules and
// the fixed fallback/skip behavior of the operand pool.
package generator_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/dpforge/config"
	"github.com/katalvlaran/dpforge/generator"
	"github.com/katalvlaran/dpforge/netlist"
	"github.com/stretchr/testify/require"
)

// fullConfig returns a validated configuration exercising every feature.
func fullConfig(t *testing.T, seed int64) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = seed
	cfg.NumOperations = 80
	cfg.NumPipelineStages = 3
	cfg.GenerateCaseStatements = true
	cfg.GenerateIfElseChains = true
	cfg.GenerateSharingOpportunities = true
	require.NoError(t, cfg.Validate())
	return cfg
}

func generate(t *testing.T, cfg config.Config) *netlist.Module {
	t.Helper()
	mod, err := generator.New(cfg).Generate()
	require.NoError(t, err)
	return mod
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	cfg := fullConfig(t, 1234)
	a := generate(t, cfg)
	b := generate(t, cfg)

	// Bit-for-bit identical modules: same arena, same sequences.
	require.Equal(t, a, b)

	// A different seed produces a different module.
	cfg.Seed = 1235
	c := generate(t, cfg)
	require.NotEqual(t, a, c)
}

func TestGenerate_SingleAddScenario(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Seed = 42
	cfg.NumInputs = 2
	cfg.InputWidthMin = 8
	cfg.InputWidthMax = 8
	cfg.NumOutputs = 1
	cfg.OutputWidthMin = 8
	cfg.OutputWidthMax = 8
	cfg.NumOperations = 1
	cfg.UseSigned = false
	cfg.WeightArithmetic = 1
	cfg.WeightLogical = 0
	cfg.WeightComparison = 0
	cfg.WeightShift = 0
	cfg.WeightMux = 0
	cfg.WeightConcat = 0
	cfg.WeightReduction = 0
	cfg.WeightAdd = 1
	cfg.WeightSub = 0
	cfg.WeightMul = 0
	cfg.WeightDiv = 0
	cfg.WeightMod = 0
	require.NoError(t, cfg.Validate())

	mod := generate(t, cfg)

	require.Len(t, mod.Operations, 1)
	op := mod.Operations[0]
	require.Equal(t, netlist.OpAdd, op.Kind)
	require.Len(t, op.Operands, 2)
	for _, id := range op.Operands {
		require.Equal(t, 8, mod.Signal(id).Width)
		require.False(t, mod.Signal(id).Signed)
	}
	out := mod.Signal(op.Output)
	require.Equal(t, 8, out.Width)
	require.False(t, out.Signed)

	// The sole declared output gets connected.
	require.Len(t, mod.Conns, 1)
	require.Equal(t, mod.Outputs()[0], mod.Conns[0].Output)
}

func TestGenerate_NoInputsSkipsEveryOperation(t *testing.T) {
	t.Parallel()

	// Deliberately below the configuration tier's port minimum: the engine
	// trusts its caller and must degrade by skipping, not by failing.
	cfg := config.Default()
	cfg.Seed = 7
	cfg.NumInputs = 0
	cfg.NumOperations = 10
	cfg.WeightArithmetic = 1
	cfg.WeightLogical = 0
	cfg.WeightComparison = 0
	cfg.WeightShift = 0
	cfg.WeightMux = 0
	cfg.WeightConcat = 0
	cfg.WeightReduction = 0

	mod := generate(t, cfg)
	require.Empty(t, mod.Operations)
	require.Empty(t, mod.Wires())
	require.Empty(t, mod.Conns)
}

func TestGenerate_ArityInvariant(t *testing.T) {
	t.Parallel()

	mod := generate(t, fullConfig(t, 99))
	require.NotEmpty(t, mod.Operations)

	checkOp := func(op netlist.Operation) {
		need := op.Kind.RequiredOperands()
		if op.Kind == netlist.OpConcat {
			require.GreaterOrEqual(t, len(op.Operands), need)
		} else {
			require.Len(t, op.Operands, need, "kind %s", op.Kind)
		}
	}
	for _, op := range mod.Operations {
		checkOp(op)
	}
	for _, b := range mod.Blocks {
		for _, c := range b.Cases {
			for _, op := range c.Ops {
				checkOp(op)
			}
		}
		for _, br := range b.Branches {
			for _, op := range br.Ops {
				checkOp(op)
			}
		}
	}
}

func TestGenerate_WidthInferenceInvariant(t *testing.T) {
	t.Parallel()

	mod := generate(t, fullConfig(t, 7))

	check := func(op netlist.Operation) {
		sigs := make([]netlist.Signal, len(op.Operands))
		for i, id := range op.Operands {
			sigs[i] = mod.Signal(id)
		}
		wantW, wantS := op.Kind.Infer(sigs)
		out := mod.Signal(op.Output)
		require.Equal(t, wantW, out.Width, "kind %s output %s", op.Kind, out.Name)
		require.Equal(t, wantS, out.Signed, "kind %s output %s", op.Kind, out.Name)
	}
	for _, op := range mod.Operations {
		check(op)
	}
	for _, b := range mod.Blocks {
		for _, c := range b.Cases {
			for _, op := range c.Ops {
				check(op)
			}
		}
		for _, br := range b.Branches {
			for _, op := range br.Ops {
				check(op)
			}
		}
	}
}

func TestGenerate_NoDanglingOperands(t *testing.T) {
	t.Parallel()

	mod := generate(t, fullConfig(t, 314))

	// Handles are allocated in creation order, so "created strictly before"
	// is "smaller handle than the operation's output".
	check := func(op netlist.Operation) {
		for _, id := range op.Operands {
			require.Less(t, id, op.Output, "operand %s of %s",
				mod.Signal(id).Name, mod.Signal(op.Output).Name)
		}
	}
	for _, op := range mod.Operations {
		check(op)
	}
	for _, b := range mod.Blocks {
		for _, c := range b.Cases {
			for _, op := range c.Ops {
				check(op)
			}
		}
		for _, br := range b.Branches {
			for _, op := range br.Ops {
				check(op)
			}
		}
	}
}

func TestGenerate_OperandsNeverRegsOrOutputs(t *testing.T) {
	t.Parallel()

	mod := generate(t, fullConfig(t, 2718))
	for _, op := range mod.Operations {
		for _, id := range op.Operands {
			kind := mod.Signal(id).Kind
			require.NotEqual(t, netlist.Reg, kind)
			require.NotEqual(t, netlist.Output, kind)
		}
	}
}

func TestGenerate_MutualExclusivityInvariant(t *testing.T) {
	t.Parallel()

	mod := generate(t, fullConfig(t, 555))
	require.NotEmpty(t, mod.Blocks)

	dstSet := func(assigns []netlist.Assign) map[netlist.SignalID]struct{} {
		set := make(map[netlist.SignalID]struct{}, len(assigns))
		for _, a := range assigns {
			set[a.Dst] = struct{}{}
		}
		return set
	}
	for i, b := range mod.Blocks {
		require.NoError(t, b.Validate(mod))

		// Every region of a block writes the same register set.
		var regions []map[netlist.SignalID]struct{}
		switch b.Kind {
		case netlist.CaseStatement:
			for _, c := range b.Cases {
				regions = append(regions, dstSet(c.Assigns))
			}
			regions = append(regions, dstSet(b.Default))
		case netlist.IfElseChain:
			for _, br := range b.Branches {
				regions = append(regions, dstSet(br.Assigns))
			}
		}
		require.NotEmpty(t, regions, "block %d", i)
		for r := 1; r < len(regions); r++ {
			require.Equal(t, regions[0], regions[r], "block %d region %d", i, r)
		}

		// And every written signal is a register.
		for _, id := range b.WrittenSignals() {
			require.Equal(t, netlist.Reg, mod.Signal(id).Kind)
		}
	}
}

func TestGenerate_IfElseChainShape(t *testing.T) {
	t.Parallel()

	mod := generate(t, fullConfig(t, 8080))
	found := false
	for _, b := range mod.Blocks {
		if b.Kind != netlist.IfElseChain {
			continue
		}
		found = true
		require.GreaterOrEqual(t, len(b.Branches), 2)
		require.LessOrEqual(t, len(b.Branches), 4)
		for i, br := range b.Branches {
			if i < len(b.Branches)-1 {
				require.NotEqual(t, netlist.NoSignal, br.Cond)
			} else {
				require.Equal(t, netlist.NoSignal, br.Cond)
			}
		}
	}
	require.True(t, found)
}

func TestGenerate_SharingGroups(t *testing.T) {
	t.Parallel()

	mod := generate(t, fullConfig(t, 6174))
	require.NotEmpty(t, mod.SharingGroups)
	for _, g := range mod.SharingGroups {
		require.NotEqual(t, netlist.NoSignal, g.Enable)
		for _, idx := range g.Ops {
			require.Less(t, idx, len(mod.Operations))
			kind := mod.Operations[idx].Kind
			require.Contains(t, []netlist.OpKind{netlist.OpMul, netlist.OpAdd}, kind)
		}
	}
}

func TestGenerate_DepthAssignment(t *testing.T) {
	t.Parallel()

	cfg := fullConfig(t, 31337)
	mod := generate(t, cfg)
	for i, op := range mod.Operations {
		require.Equal(t, i%cfg.MaxDepth, op.Depth)
	}
}

func TestGenerate_PipelineStagesInRange(t *testing.T) {
	t.Parallel()

	cfg := fullConfig(t, 4096)
	mod := generate(t, cfg)
	for _, op := range mod.Operations {
		require.GreaterOrEqual(t, op.Stage, 0)
		require.Less(t, op.Stage, cfg.NumPipelineStages)
	}
}

func TestGenerate_PortNamingAndWidths(t *testing.T) {
	t.Parallel()

	cfg := fullConfig(t, 12)
	mod := generate(t, cfg)

	require.Len(t, mod.Inputs(), cfg.NumInputs)
	require.Len(t, mod.Outputs(), cfg.NumOutputs)
	for i, id := range mod.Inputs() {
		s := mod.Signal(id)
		require.Equal(t, fmt.Sprintf("in_%d", i), s.Name)
		require.GreaterOrEqual(t, s.Width, cfg.InputWidthMin)
		require.LessOrEqual(t, s.Width, cfg.InputWidthMax)
	}
	for _, id := range mod.Outputs() {
		s := mod.Signal(id)
		require.GreaterOrEqual(t, s.Width, cfg.OutputWidthMin)
		require.LessOrEqual(t, s.Width, cfg.OutputWidthMax)
	}

	// Every output is driven once.
	require.Len(t, mod.Conns, cfg.NumOutputs)
}

func TestGenerate_UnsignedWhenDisabled(t *testing.T) {
	t.Parallel()

	cfg := fullConfig(t, 64)
	cfg.UseSigned = false
	mod := generate(t, cfg)
	for id := netlist.SignalID(0); int(id) < mod.NumSignals(); id++ {
		require.False(t, mod.Signal(id).Signed, "signal %s", mod.Signal(id).Name)
	}
}
