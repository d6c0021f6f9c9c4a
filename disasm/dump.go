package disasm

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/rv32i-emulator/vm"
)

// DumpRegisters renders the 32 registers in row-major groups of 8, each an
// 8-hex-digit lowercase word, preceded on row boundaries by "x{idx:02}  ",
// followed by "pc  {8-hex}".
func DumpRegisters(regs [vm.RegisterCount]uint32, pc uint32) string {
	var b strings.Builder
	for i, word := range regs {
		if i%8 == 0 {
			fmt.Fprintf(&b, "x%02d  ", i)
		}
		fmt.Fprintf(&b, "%08x ", word)
		if i%8 == 3 {
			b.WriteString(" ")
		}
		if i%8 == 7 {
			b.WriteString("\n")
		}
	}
	fmt.Fprintf(&b, " pc  %08x\n", pc)
	return b.String()
}

// DumpMemory renders 16 bytes per row starting at offset 16 (offset 0
// omitted), one row per 16-byte block up to the buffer's length: offset in
// 8-hex, 16 space-separated hex bytes (extra space after the 8th), then the
// row's printable ASCII rendering between asterisks.
func DumpMemory(mem *vm.Memory) string {
	data := mem.Bytes()
	rows := len(data) / 16

	var b strings.Builder
	for row := 1; row < rows; row++ {
		base := row * 16
		fmt.Fprintf(&b, "%08x  ", base)

		for col := 0; col < 16; col++ {
			fmt.Fprintf(&b, "%02x ", data[base+col])
			if col == 7 {
				b.WriteString(" ")
			}
		}

		b.WriteString("  *")
		for col := 0; col < 16; col++ {
			c := data[base+col]
			if c >= 0x20 && c <= 0x7E {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("*\n")
	}
	return b.String()
}
