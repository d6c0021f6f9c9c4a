package vm

// ============================================================================
// RV32I Architecture Constants
// ============================================================================
// These values are defined by the RISC-V base integer ISA and should not be
// modified.

const (
	InstructionSize = 4 // bytes per instruction word

	RegisterCount = 32 // x0-x31

	// Register initialization sentinel. Non-zero slots start with this
	// value so uninitialized-register reads are visibly non-zero in dumps.
	RegisterSentinel = 0xF0F0F0F0

	// Byte shift positions for little-endian composition.
	ByteShift8  = 8
	ByteShift16 = 16
	ByteShift24 = 24

	// Sign bits for the narrow load sign-extension variants.
	SignBitByte = 0x80
	SignBitHalf = 0x8000

	// Masks
	Mask5Bit  = 0x1F
	Mask8Bit  = 0xFF
	Mask16Bit = 0xFFFF
)

// Opcodes (low 7 bits of the instruction word).
const (
	OpcodeLUI    = 0b0110111
	OpcodeAUIPC  = 0b0010111
	OpcodeJAL    = 0b1101111
	OpcodeJALR   = 0b1100111
	OpcodeBranch = 0b1100011
	OpcodeLoad   = 0b0000011
	OpcodeStore  = 0b0100011
	OpcodeOpImm  = 0b0010011
	OpcodeOp     = 0b0110011
	OpcodeSystem = 0b1110011
)

// funct3 values for the Branch opcode.
const (
	Funct3BEQ  = 0b000
	Funct3BNE  = 0b001
	Funct3BLT  = 0b100
	Funct3BGE  = 0b101
	Funct3BLTU = 0b110
	Funct3BGEU = 0b111
)

// funct3 values for the Load opcode.
const (
	Funct3LB  = 0b000
	Funct3LH  = 0b001
	Funct3LW  = 0b010
	Funct3LBU = 0b100
	Funct3LHU = 0b101
)

// funct3 values for the Store opcode.
const (
	Funct3SB = 0b000
	Funct3SH = 0b001
	Funct3SW = 0b010
)

// funct3 values shared by OP-IMM and OP.
const (
	Funct3ADD_SUB = 0b000
	Funct3SLL     = 0b001
	Funct3SLT     = 0b010
	Funct3SLTU    = 0b011
	Funct3XOR     = 0b100
	Funct3SRL_SRA = 0b101
	Funct3OR      = 0b110
	Funct3AND     = 0b111
)

// funct7 values distinguishing ADD/SUB and SRL/SRA.
const (
	Funct7Default = 0b0000000
	Funct7Alt     = 0b0100000
)

// funct3 values for the SYSTEM opcode.
const (
	Funct3ECALL_EBREAK = 0b000
	Funct3CSRRW        = 0b001
	Funct3CSRRS        = 0b010
	Funct3CSRRC        = 0b011
	Funct3CSRRWI       = 0b101
	Funct3CSRRSI       = 0b110
	Funct3CSRRCI       = 0b111
)
