// SPDX-License-Identifier: MIT
// Package: dpforge/cmd/dpforge
//
// dpforge generates random Verilog datapath modules for synthesis-tool
// benchmarking. A configuration file (if given) is loaded first; explicit
// command-line flags override it; the merged configuration is validated
// once before generation starts.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dpforge/config"
	"github.com/katalvlaran/dpforge/generator"
	"github.com/katalvlaran/dpforge/netlist"
	"github.com/katalvlaran/dpforge/verilog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configFile string
		testbench  bool
		overrides  = config.Default()
	)

	cmd := &cobra.Command{
		Use:   "dpforge",
		Short: "Random Verilog datapath generator for synthesis benchmarking",
		Long: "dpforge generates a pseudo-random, reproducible Verilog datapath\n" +
			"(weighted operation mix, pipeline tags, mutually-exclusive control\n" +
			"blocks) for stress-testing synthesis tools.",
		Example: "  dpforge -n 100 -i 16 -O 8 -o large_datapath.v\n" +
			"  dpforge -c my_config.yaml -t\n" +
			"  dpforge -s 12345 -n 200 -v",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configFile != "" {
				var err error
				cfg, err = config.LoadFile(configFile)
				if err != nil {
					return err
				}
			}
			applyOverrides(cmd, &cfg, overrides)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg, testbench)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configFile, "config", "c", "", "load configuration from YAML file")
	f.StringVarP(&overrides.OutputFile, "output", "o", config.DefaultOutputFile, "output Verilog file")
	f.StringVarP(&overrides.ModuleName, "module", "m", config.DefaultModuleName, "module name")
	f.IntVarP(&overrides.NumOperations, "num-ops", "n", config.DefaultNumOperations, "number of operations")
	f.IntVarP(&overrides.NumInputs, "inputs", "i", config.DefaultNumInputs, "number of inputs")
	f.IntVarP(&overrides.NumOutputs, "outputs", "O", config.DefaultNumOutputs, "number of outputs")
	f.Int64VarP(&overrides.Seed, "seed", "s", 0, "random seed (default: current time)")
	f.IntVarP(&overrides.MaxDepth, "depth", "d", config.DefaultMaxDepth, "maximum logic depth")
	f.IntVarP(&overrides.NumPipelineStages, "pipeline", "p", 0, "number of pipeline stages")
	f.BoolVarP(&testbench, "testbench", "t", false, "generate testbench alongside the module")
	f.BoolVarP(&overrides.Verbose, "verbose", "v", false, "verbose output")

	return cmd
}

// applyOverrides copies every flag the user actually set over the loaded
// configuration, so file values survive unless explicitly overridden.
func applyOverrides(cmd *cobra.Command, cfg *config.Config, o config.Config) {
	set := func(name string, apply func()) {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	set("output", func() { cfg.OutputFile = o.OutputFile })
	set("module", func() { cfg.ModuleName = o.ModuleName })
	set("num-ops", func() { cfg.NumOperations = o.NumOperations })
	set("inputs", func() { cfg.NumInputs = o.NumInputs })
	set("outputs", func() { cfg.NumOutputs = o.NumOutputs })
	set("seed", func() { cfg.Seed = o.Seed })
	set("depth", func() { cfg.MaxDepth = o.MaxDepth })
	set("pipeline", func() { cfg.NumPipelineStages = o.NumPipelineStages })
	set("verbose", func() { cfg.Verbose = o.Verbose })
}

// run generates the module and writes the Verilog file(s).
func run(cfg config.Config, testbench bool) error {
	if cfg.Verbose {
		printConfig(cfg)
		fmt.Println("Generating netlist...")
	}

	mod, err := generator.New(cfg).Generate()
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printSummary(mod)
	}

	emitter := verilog.New(mod)
	if err := writeFile(cfg.OutputFile, emitter.EmitModule); err != nil {
		return err
	}
	fmt.Println("Successfully generated:", cfg.OutputFile)

	if testbench {
		tbFile := "tb_" + cfg.OutputFile
		if err := writeFile(tbFile, emitter.EmitTestbench); err != nil {
			return err
		}
		fmt.Println("Successfully generated testbench:", tbFile)
	}

	if cfg.Verbose {
		fmt.Println()
		fmt.Println("Generation complete!")
		fmt.Println("To synthesize with your favorite tool:")
		fmt.Printf("  Yosys:    yosys -p 'synth -top %s' %s\n", cfg.ModuleName, cfg.OutputFile)
		fmt.Println("  Vivado:   vivado -mode batch -source synth.tcl")
		fmt.Println("  Quartus:  quartus_sh --flow compile <project>")
	}
	return nil
}

// writeFile creates path and streams emit into it.
func writeFile(path string, emit func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := emit(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printConfig(cfg config.Config) {
	fmt.Println("Configuration:")
	fmt.Println("  Module name:    ", cfg.ModuleName)
	fmt.Println("  Inputs:         ", cfg.NumInputs)
	fmt.Println("  Outputs:        ", cfg.NumOutputs)
	fmt.Println("  Operations:     ", cfg.NumOperations)
	fmt.Println("  Max depth:      ", cfg.MaxDepth)
	fmt.Println("  Pipeline stages:", cfg.NumPipelineStages)
	fmt.Println("  Seed:           ", cfg.Seed)
	fmt.Println("  Output file:    ", cfg.OutputFile)
}

func printSummary(mod *netlist.Module) {
	fmt.Println("Generated", len(mod.Operations), "operations")
	fmt.Println("Generated", len(mod.Blocks), "control blocks")
	fmt.Println("Total signals:", mod.NumSignals())
}
