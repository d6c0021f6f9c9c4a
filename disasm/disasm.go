// Package disasm renders decoded instructions and engine state as the
// human-readable text formats named in the external interface: one
// disassembly line per executed instruction, a register dump, and a memory
// dump. None of this formatting is part of the execution core; it consumes
// the core's exported accessors only.
package disasm

import (
	"fmt"

	"github.com/lookbusy1344/rv32i-emulator/vm"
)

// Line formats one disassembly line for the instruction decoded at pc:
// "<pc 8-hex>    <mnemonic, 5-col left-padded lowercase> <operands>".
func Line(pc uint32, d vm.Decoded) string {
	return fmt.Sprintf("%08x    %s", pc, Format(d))
}

// Format renders the mnemonic and its operands, matching the per-form
// operand shapes of the external interface.
func Format(d vm.Decoded) string {
	return fmt.Sprintf("%-5s %s", d.Mnemonic.String(), operands(d))
}

func operands(d vm.Decoded) string {
	switch d.Mnemonic {
	case vm.LUI, vm.AUIPC:
		return fmt.Sprintf("x%d,%#x", d.Rd, d.ImmU)

	case vm.JAL:
		return fmt.Sprintf("x%d,%#x", d.Rd, uint32(d.ImmJ))

	case vm.JALR:
		return fmt.Sprintf("x%d,%d(x%d)", d.Rd, uint32(d.ImmI), d.Rs1)

	case vm.BEQ, vm.BNE, vm.BLT, vm.BGE, vm.BLTU, vm.BGEU:
		return fmt.Sprintf("x%d,x%d,%#x", d.Rs1, d.Rs2, uint32(d.ImmB))

	case vm.LB, vm.LH, vm.LW, vm.LBU, vm.LHU:
		return fmt.Sprintf("x%d,%#x,x%d", d.Rd, uint32(d.ImmI), d.Rs1)

	case vm.SB, vm.SH, vm.SW:
		return fmt.Sprintf("x%d,%#x(x%d)", d.Rs2, uint32(d.ImmS), d.Rs1)

	case vm.ADDI, vm.SLTI, vm.SLTIU, vm.XORI, vm.ORI, vm.ANDI:
		return fmt.Sprintf("x%d,x%d,%#x", d.Rd, d.Rs1, uint32(d.ImmI))

	case vm.SLLI, vm.SRLI, vm.SRAI:
		return fmt.Sprintf("x%d,x%d,%#x", d.Rd, d.Rs1, d.Shamt)

	case vm.ADD, vm.SUB, vm.SLL, vm.SLT, vm.SLTU, vm.XOR, vm.SRL, vm.SRA, vm.OR, vm.AND:
		return fmt.Sprintf("x%d,x%d,x%d", d.Rd, d.Rs1, d.Rs2)

	case vm.ECALL, vm.EBREAK:
		return ""

	case vm.CSRRW, vm.CSRRS, vm.CSRRC, vm.CSRRWI, vm.CSRRSI, vm.CSRRCI:
		return fmt.Sprintf("x%d,%#x,x%d", d.Rd, uint32(d.ImmI), d.Rs1)

	default:
		return ""
	}
}
