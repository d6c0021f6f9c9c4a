package vm

import (
	"fmt"
	"io"
)

// Engine owns the program counter, the halt flag, memory, and the register
// file, and drives the fetch-decode-execute cycle. It is the sole core
// component with mutable, stateful behavior; Decoder, Memory, and
// RegisterFile accesses are routed exclusively through it during a run.
type Engine struct {
	Memory    *Memory
	Registers *RegisterFile
	PC        uint32
	Halted    bool

	// Trace, if non-nil, is called once per successfully decoded
	// instruction, before it executes, with its pc and decoded form.
	// Rendering a disassembly line lives outside the core (see the disasm
	// package); the engine only owns the hook.
	Trace func(pc uint32, d Decoded)

	// Out receives illegal-instruction diagnostics. Defaults to nil,
	// meaning such diagnostics are dropped; callers that want them
	// surfaced (e.g. the CLI) set this to os.Stderr or similar.
	Out io.Writer
}

// NewEngine constructs an engine over its own copy of mem and a fresh
// register file, so execution never writes into the caller's buffer. The
// program counter starts at 0 and the halt flag starts false.
func NewEngine(mem *Memory) *Engine {
	own := NewMemory(mem.Size())
	copy(own.bytes, mem.bytes)
	return &Engine{
		Memory:    own,
		Registers: NewRegisterFile(),
	}
}

// Run executes instructions until halted or the program counter runs past
// the last fully-fetchable word.
func (e *Engine) Run() error {
	for !e.Halted && e.PC+InstructionSize <= e.Memory.Size() {
		if err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step fetches, decodes, and executes a single instruction. Once Halted is
// true, Step is a no-op (halt monotonicity).
func (e *Engine) Step() error {
	if e.Halted {
		return nil
	}

	word, err := e.Memory.ReadWord(e.PC)
	if err != nil {
		return fmt.Errorf("rv32i: fetch at pc 0x%08x: %w", e.PC, err)
	}

	d, decodeErr := Decode(word)
	if decodeErr != nil {
		if e.Out != nil {
			fmt.Fprintf(e.Out, "Illegal Instruction 0x%x\n", word)
		}
		// Corrected behavior: halt with a diagnostic instead of the
		// reference source's silent stall, which can livelock.
		e.Halted = true
		return nil
	}

	if e.Trace != nil {
		e.Trace(e.PC, d)
	}

	return e.execute(d)
}

func (e *Engine) execute(d Decoded) error {
	switch d.Mnemonic {
	case LUI:
		e.Registers.Set(d.Rd, d.ImmU<<12)
		e.PC += InstructionSize

	case AUIPC:
		e.Registers.Set(d.Rd, (d.ImmU<<12)+e.PC)
		e.PC += InstructionSize

	case JAL:
		e.Registers.Set(d.Rd, e.PC+InstructionSize)
		e.PC = uint32(int32(e.PC) + d.ImmJ)

	case JALR:
		rs1 := e.Registers.Get(d.Rs1)
		target := uint32(int32(rs1)+d.ImmI) &^ 1
		e.Registers.Set(d.Rd, e.PC+InstructionSize)
		e.PC = target

	case BEQ, BNE, BLT, BGE, BLTU, BGEU:
		e.executeBranch(d)

	case LB, LH, LW, LBU, LHU:
		return e.executeLoad(d)

	case SB, SH, SW:
		return e.executeStore(d)

	case ADDI:
		rs1 := e.Registers.Get(d.Rs1)
		e.Registers.Set(d.Rd, uint32(int32(rs1)+d.ImmI))
		e.PC += InstructionSize

	case SLTI:
		rs1 := int32(e.Registers.Get(d.Rs1))
		e.Registers.Set(d.Rd, boolToWord(rs1 < d.ImmI))
		e.PC += InstructionSize

	case SLTIU:
		rs1 := e.Registers.Get(d.Rs1)
		e.Registers.Set(d.Rd, boolToWord(rs1 < uint32(d.ImmI)))
		e.PC += InstructionSize

	case XORI:
		rs1 := e.Registers.Get(d.Rs1)
		e.Registers.Set(d.Rd, rs1^uint32(d.ImmI))
		e.PC += InstructionSize

	case ORI:
		rs1 := e.Registers.Get(d.Rs1)
		e.Registers.Set(d.Rd, rs1|uint32(d.ImmI))
		e.PC += InstructionSize

	case ANDI:
		rs1 := e.Registers.Get(d.Rs1)
		e.Registers.Set(d.Rd, rs1&uint32(d.ImmI))
		e.PC += InstructionSize

	case SLLI:
		rs1 := e.Registers.Get(d.Rs1)
		e.Registers.Set(d.Rd, rs1<<d.Shamt)
		e.PC += InstructionSize

	case SRLI:
		rs1 := e.Registers.Get(d.Rs1)
		e.Registers.Set(d.Rd, rs1>>d.Shamt)
		e.PC += InstructionSize

	case SRAI:
		rs1 := int32(e.Registers.Get(d.Rs1))
		e.Registers.Set(d.Rd, uint32(rs1>>d.Shamt))
		e.PC += InstructionSize

	case ADD:
		rs1, rs2 := e.Registers.Get(d.Rs1), e.Registers.Get(d.Rs2)
		e.Registers.Set(d.Rd, rs1+rs2)
		e.PC += InstructionSize

	case SUB:
		rs1, rs2 := e.Registers.Get(d.Rs1), e.Registers.Get(d.Rs2)
		e.Registers.Set(d.Rd, rs1-rs2)
		e.PC += InstructionSize

	case SLL:
		rs1, rs2 := e.Registers.Get(d.Rs1), e.Registers.Get(d.Rs2)
		e.Registers.Set(d.Rd, rs1<<(rs2&Mask5Bit))
		e.PC += InstructionSize

	case SLT:
		rs1, rs2 := int32(e.Registers.Get(d.Rs1)), int32(e.Registers.Get(d.Rs2))
		e.Registers.Set(d.Rd, boolToWord(rs1 < rs2))
		e.PC += InstructionSize

	case SLTU:
		rs1, rs2 := e.Registers.Get(d.Rs1), e.Registers.Get(d.Rs2)
		e.Registers.Set(d.Rd, boolToWord(rs1 < rs2))
		e.PC += InstructionSize

	case XOR:
		rs1, rs2 := e.Registers.Get(d.Rs1), e.Registers.Get(d.Rs2)
		e.Registers.Set(d.Rd, rs1^rs2)
		e.PC += InstructionSize

	case SRL:
		rs1, rs2 := e.Registers.Get(d.Rs1), e.Registers.Get(d.Rs2)
		e.Registers.Set(d.Rd, rs1>>(rs2&Mask5Bit))
		e.PC += InstructionSize

	case SRA:
		rs1, rs2 := int32(e.Registers.Get(d.Rs1)), e.Registers.Get(d.Rs2)
		e.Registers.Set(d.Rd, uint32(rs1>>(rs2&Mask5Bit)))
		e.PC += InstructionSize

	case OR:
		rs1, rs2 := e.Registers.Get(d.Rs1), e.Registers.Get(d.Rs2)
		e.Registers.Set(d.Rd, rs1|rs2)
		e.PC += InstructionSize

	case AND:
		rs1, rs2 := e.Registers.Get(d.Rs1), e.Registers.Get(d.Rs2)
		e.Registers.Set(d.Rd, rs1&rs2)
		e.PC += InstructionSize

	case ECALL, CSRRW, CSRRS, CSRRC, CSRRWI, CSRRSI, CSRRCI:
		// No architectural effect beyond advancing the program counter.
		e.PC += InstructionSize

	case EBREAK:
		e.Halted = true

	default:
		return fmt.Errorf("rv32i: unreachable mnemonic %v at pc 0x%08x", d.Mnemonic, e.PC)
	}
	return nil
}

func (e *Engine) executeBranch(d Decoded) {
	rs1, rs2 := e.Registers.Get(d.Rs1), e.Registers.Get(d.Rs2)
	var taken bool
	switch d.Mnemonic {
	case BEQ:
		taken = rs1 == rs2
	case BNE:
		taken = rs1 != rs2
	case BLT:
		taken = int32(rs1) < int32(rs2)
	case BGE:
		taken = int32(rs1) >= int32(rs2)
	case BLTU:
		taken = rs1 < rs2
	case BGEU:
		taken = rs1 >= rs2
	}
	if taken {
		e.PC = uint32(int32(e.PC) + d.ImmB)
	} else {
		e.PC += InstructionSize
	}
}

func (e *Engine) executeLoad(d Decoded) error {
	addr := uint32(int32(e.Registers.Get(d.Rs1)) + d.ImmI)
	var value uint32
	var err error
	switch d.Mnemonic {
	case LB:
		value, err = e.Memory.ReadByteSigned(addr)
	case LH:
		value, err = e.Memory.ReadHalfwordSigned(addr)
	case LW:
		value, err = e.Memory.ReadWord(addr)
	case LBU:
		value, err = e.Memory.ReadByte(addr)
	case LHU:
		value, err = e.Memory.ReadHalfword(addr)
	}
	if err != nil {
		return fmt.Errorf("rv32i: load at pc 0x%08x: %w", e.PC, err)
	}
	e.Registers.Set(d.Rd, value)
	e.PC += InstructionSize
	return nil
}

func (e *Engine) executeStore(d Decoded) error {
	addr := uint32(int32(e.Registers.Get(d.Rs1)) + d.ImmS)
	value := e.Registers.Get(d.Rs2)
	var err error
	switch d.Mnemonic {
	case SB:
		err = e.Memory.WriteByte(addr, value)
	case SH:
		err = e.Memory.WriteHalfword(addr, value)
	case SW:
		err = e.Memory.WriteWord(addr, value)
	}
	if err != nil {
		return fmt.Errorf("rv32i: store at pc 0x%08x: %w", e.PC, err)
	}
	e.PC += InstructionSize
	return nil
}

func boolToWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
