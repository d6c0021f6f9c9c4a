// Package debugger drives the engine's single-step primitive from raw,
// non-echoing terminal key presses: space steps one instruction, r dumps
// registers, m dumps memory, q quits. Any other key is ignored.
package debugger

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/lookbusy1344/rv32i-emulator/disasm"
	"github.com/lookbusy1344/rv32i-emulator/vm"
)

// Driver runs the interactive key-polling loop over an engine.
type Driver struct {
	Engine *vm.Engine
	Out    io.Writer
	screen tcell.Screen
}

// NewDriver constructs a Driver that polls the real terminal.
func NewDriver(engine *vm.Engine, out io.Writer) (*Driver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("debugger: failed to acquire terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("debugger: failed to init terminal screen: %w", err)
	}
	d := &Driver{Engine: engine, Out: out, screen: screen}
	d.wireTrace()
	return d, nil
}

// NewDriverWithScreen constructs a Driver over a caller-supplied screen,
// used by tests to drive the loop with tcell's simulation screen instead of
// a real terminal.
func NewDriverWithScreen(engine *vm.Engine, out io.Writer, screen tcell.Screen) *Driver {
	d := &Driver{Engine: engine, Out: out, screen: screen}
	d.wireTrace()
	return d
}

// wireTrace points the engine's trace hook at the driver's output stream, so
// every stepped instruction prints a disassembly line the same way batch
// mode does.
func (d *Driver) wireTrace() {
	d.Engine.Trace = func(pc uint32, decoded vm.Decoded) {
		fmt.Fprintln(d.Out, disasm.Line(pc, decoded))
	}
}

// Run polls single key presses until the user quits or the engine halts.
func (d *Driver) Run() error {
	defer d.screen.Fini()

	fmt.Fprintln(d.Out, "---INTERACTIVE MODE---")
	fmt.Fprintln(d.Out, "<space> - run next instruction")
	fmt.Fprintln(d.Out, "r - dump registers")
	fmt.Fprintln(d.Out, "m - dump memory")
	fmt.Fprintln(d.Out, "q - quit")
	fmt.Fprintln(d.Out)

	for !d.Engine.Halted {
		ev := d.screen.PollEvent()
		keyEv, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		switch {
		case keyEv.Rune() == ' ':
			if err := d.Engine.Step(); err != nil {
				return err
			}
		case keyEv.Rune() == 'r':
			fmt.Fprint(d.Out, disasm.DumpRegisters(d.Engine.Registers.Dump(), d.Engine.PC))
		case keyEv.Rune() == 'm':
			fmt.Fprint(d.Out, disasm.DumpMemory(d.Engine.Memory))
		case keyEv.Rune() == 'q':
			return nil
		}
	}
	return nil
}
