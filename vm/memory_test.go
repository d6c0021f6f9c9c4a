package vm

import (
	"errors"
	"testing"
)

func TestMemory_WordRoundTrip(t *testing.T) {
	m := NewMemory(64)
	const addr, value = 0x10, uint32(0xDEADBEEF)

	if err := m.WriteWord(addr, value); err != nil {
		t.Fatalf("WriteWord: %v", err)
	}

	got, err := m.ReadWord(addr)
	if err != nil {
		t.Fatalf("ReadWord: %v", err)
	}
	if got != value {
		t.Errorf("ReadWord = 0x%x, want 0x%x", got, value)
	}

	if lo, _ := m.ReadHalfword(addr); lo != value&0xFFFF {
		t.Errorf("low halfword = 0x%x, want 0x%x", lo, value&0xFFFF)
	}
	if hi, _ := m.ReadHalfword(addr + 2); hi != (value>>16)&0xFFFF {
		t.Errorf("high halfword = 0x%x, want 0x%x", hi, (value>>16)&0xFFFF)
	}
	if b, _ := m.ReadByte(addr); b != value&0xFF {
		t.Errorf("low byte = 0x%x, want 0x%x", b, value&0xFF)
	}
}

func TestMemory_SignExtension(t *testing.T) {
	m := NewMemory(16)
	_ = m.WriteByte(0, 0xFF)
	if v, _ := m.ReadByteSigned(0); v != 0xFFFFFFFF {
		t.Errorf("ReadByteSigned(0xFF) = 0x%x, want 0xFFFFFFFF", v)
	}
	if v, _ := m.ReadByte(0); v != 0xFF {
		t.Errorf("ReadByte(0xFF) = 0x%x, want 0xFF", v)
	}

	_ = m.WriteHalfword(4, 0x8000)
	if v, _ := m.ReadHalfwordSigned(4); v != 0xFFFF8000 {
		t.Errorf("ReadHalfwordSigned(0x8000) = 0x%x, want 0xFFFF8000", v)
	}
}

func TestMemory_OutOfRange(t *testing.T) {
	m := NewMemory(8)

	if _, err := m.ReadWord(6); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ReadWord(6) err = %v, want ErrOutOfRange", err)
	}
	if err := m.WriteByte(8, 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("WriteByte(8) err = %v, want ErrOutOfRange", err)
	}
	if _, err := m.ReadByte(100); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ReadByte(100) err = %v, want ErrOutOfRange", err)
	}
}

func TestMemory_LoadImage(t *testing.T) {
	m := NewMemory(4)
	if err := m.LoadImage([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if got, _ := m.ReadWord(0); got != 0x04030201 {
		t.Errorf("ReadWord after LoadImage = 0x%x, want 0x04030201", got)
	}

	if err := m.LoadImage([]byte{1, 2, 3, 4, 5}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("LoadImage oversize err = %v, want ErrOutOfRange", err)
	}
}
