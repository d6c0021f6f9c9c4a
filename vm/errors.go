package vm

import "errors"

// ErrOutOfRange is returned when a memory access falls outside [0, size).
var ErrOutOfRange = errors.New("rv32i: address out of range")

// ErrIllegalInstruction is returned by Decode when no opcode/funct3/funct7
// combination matches a recognized mnemonic.
var ErrIllegalInstruction = errors.New("rv32i: illegal instruction")
