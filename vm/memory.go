package vm

import "fmt"

// Memory is a contiguous, fixed-size, zero-filled byte buffer. All
// multi-byte accesses are little-endian; there is no alignment requirement.
// Accesses outside [0, Size()) fail with ErrOutOfRange.
type Memory struct {
	bytes []byte
}

// NewMemory allocates a zero-filled buffer of the given size.
func NewMemory(size uint32) *Memory {
	return &Memory{bytes: make([]byte, size)}
}

// Size returns the memory's fixed byte capacity.
func (m *Memory) Size() uint32 {
	return uint32(len(m.bytes))
}

// LoadImage copies data into the buffer starting at offset 0. It is the
// single entry point the loader package uses to perform its plain byte
// copy; kept here so the size invariant is enforced in one place.
func (m *Memory) LoadImage(data []byte) error {
	if uint32(len(data)) > m.Size() {
		return fmt.Errorf("rv32i: program image of %d bytes exceeds memory size %d: %w", len(data), m.Size(), ErrOutOfRange)
	}
	copy(m.bytes, data)
	return nil
}

func (m *Memory) checkRange(addr uint32, width uint32) error {
	if width > m.Size() || addr > m.Size()-width {
		return fmt.Errorf("rv32i: access at 0x%08x (width %d) exceeds memory size %d: %w", addr, width, m.Size(), ErrOutOfRange)
	}
	return nil
}

// ReadByte reads one byte at addr, zero-extended.
func (m *Memory) ReadByte(addr uint32) (uint32, error) {
	if err := m.checkRange(addr, 1); err != nil {
		return 0, err
	}
	return uint32(m.bytes[addr]), nil
}

// ReadByteSigned reads one byte at addr, sign-extended from bit 7.
func (m *Memory) ReadByteSigned(addr uint32) (uint32, error) {
	value, err := m.ReadByte(addr)
	if err != nil {
		return 0, err
	}
	if value&SignBitByte != 0 {
		value |= 0xFFFFFF00
	}
	return value, nil
}

// ReadHalfword reads a little-endian 16-bit value at addr, zero-extended.
func (m *Memory) ReadHalfword(addr uint32) (uint32, error) {
	if err := m.checkRange(addr, 2); err != nil {
		return 0, err
	}
	lo, _ := m.ReadByte(addr)
	hi, _ := m.ReadByte(addr + 1)
	return (hi << ByteShift8) | lo, nil
}

// ReadHalfwordSigned reads a little-endian 16-bit value at addr, sign-extended from bit 15.
func (m *Memory) ReadHalfwordSigned(addr uint32) (uint32, error) {
	value, err := m.ReadHalfword(addr)
	if err != nil {
		return 0, err
	}
	if value&SignBitHalf != 0 {
		value |= 0xFFFF0000
	}
	return value, nil
}

// ReadWord reads a little-endian 32-bit value at addr.
func (m *Memory) ReadWord(addr uint32) (uint32, error) {
	if err := m.checkRange(addr, 4); err != nil {
		return 0, err
	}
	lo, _ := m.ReadHalfword(addr)
	hi, _ := m.ReadHalfword(addr + 2)
	return (hi << ByteShift16) | lo, nil
}

// WriteByte writes the low 8 bits of value at addr.
func (m *Memory) WriteByte(addr uint32, value uint32) error {
	if err := m.checkRange(addr, 1); err != nil {
		return err
	}
	m.bytes[addr] = byte(value)
	return nil
}

// WriteHalfword writes the low 16 bits of value at addr, little-endian.
func (m *Memory) WriteHalfword(addr uint32, value uint32) error {
	if err := m.checkRange(addr, 2); err != nil {
		return err
	}
	_ = m.WriteByte(addr, value&Mask8Bit)
	_ = m.WriteByte(addr+1, (value>>ByteShift8)&Mask8Bit)
	return nil
}

// WriteWord writes all 32 bits of value at addr, little-endian.
func (m *Memory) WriteWord(addr uint32, value uint32) error {
	if err := m.checkRange(addr, 4); err != nil {
		return err
	}
	_ = m.WriteHalfword(addr, value&Mask16Bit)
	_ = m.WriteHalfword(addr+2, value>>ByteShift16)
	return nil
}

// Bytes returns the raw underlying buffer; used for dump rendering.
func (m *Memory) Bytes() []byte {
	return m.bytes
}
