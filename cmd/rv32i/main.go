// Command rv32i loads a flat RV32I program image and executes it, either in
// one-shot batch mode or in a step-driven interactive mode.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/rv32i-emulator/config"
	"github.com/lookbusy1344/rv32i-emulator/debugger"
	"github.com/lookbusy1344/rv32i-emulator/disasm"
	"github.com/lookbusy1344/rv32i-emulator/loader"
	"github.com/lookbusy1344/rv32i-emulator/vm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rv32i: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()
	if loaded, err := config.Load(); err == nil {
		cfg = loaded
	}

	var (
		memorySize  uint32
		maxCycles   uint64
		interactive bool
		configPath  string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "rv32i <program-image>",
		Short: "Emulate a flat RV32I program image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				loaded, err := config.LoadFrom(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if !cmd.Flags().Changed("memory") {
				memorySize = cfg.Execution.MemorySize
			}
			if !cmd.Flags().Changed("max-cycles") {
				maxCycles = cfg.Execution.MaxCycles
			}
			return run(args[0], memorySize, maxCycles, interactive, verbose)
		},
	}

	cmd.Flags().Uint32VarP(&memorySize, "memory", "m", cfg.Execution.MemorySize, "total memory size in bytes (required)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "enter interactive single-step mode")
	cmd.Flags().Uint64Var(&maxCycles, "max-cycles", cfg.Execution.MaxCycles, "optional cycle ceiling; 0 means unbounded")
	cmd.Flags().StringVar(&configPath, "config", "", "load configuration from this TOML file instead of the platform default")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "echo load/run summary lines to stderr")
	_ = cmd.MarkFlagRequired("memory")

	return cmd
}

func run(imagePath string, memorySize uint32, maxCycles uint64, interactive, verbose bool) error {
	mem, err := loader.LoadFile(imagePath, memorySize)
	if err != nil {
		return err
	}

	engine := vm.NewEngine(mem)
	engine.Out = os.Stderr

	if verbose {
		fmt.Fprintf(os.Stderr, "rv32i: loaded %q into %d bytes of memory\n", imagePath, memorySize)
	}

	if interactive {
		// NewDriver wires engine.Trace to its own output stream, so every
		// stepped instruction still prints a disassembly line.
		driver, err := debugger.NewDriver(engine, os.Stdout)
		if err != nil {
			return err
		}
		return driver.Run()
	}

	engine.Trace = func(pc uint32, d vm.Decoded) {
		fmt.Println(disasm.Line(pc, d))
	}

	cycles := uint64(0)
	for !engine.Halted && engine.PC+vm.InstructionSize <= mem.Size() {
		if maxCycles != 0 && cycles >= maxCycles {
			break
		}
		if err := engine.Step(); err != nil {
			return err
		}
		cycles++
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "rv32i: halted=%v pc=0x%08x cycles=%d\n", engine.Halted, engine.PC, cycles)
	}
	return nil
}
