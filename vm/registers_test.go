package vm

import "testing"

func TestRegisterFile_ZeroAlwaysZero(t *testing.T) {
	rf := NewRegisterFile()

	if got := rf.Get(0); got != 0 {
		t.Errorf("Get(0) = 0x%x, want 0", got)
	}

	rf.Set(0, 0xAAAAAAAA)
	if got := rf.Get(0); got != 0 {
		t.Errorf("Get(0) after Set(0,...) = 0x%x, want 0", got)
	}
}

func TestRegisterFile_SentinelInit(t *testing.T) {
	rf := NewRegisterFile()

	for i := uint8(1); i < RegisterCount; i++ {
		if got := rf.Get(i); got != RegisterSentinel {
			t.Errorf("Get(%d) = 0x%x, want sentinel 0x%x", i, got, uint32(RegisterSentinel))
		}
	}
}

func TestRegisterFile_SetGet(t *testing.T) {
	tests := []struct {
		index uint8
		value uint32
	}{
		{1, 0xAA},
		{2, 0xBBBB},
		{3, 0xCCCCCC},
		{31, 0xDDDDDDDD},
	}

	rf := NewRegisterFile()
	for _, tt := range tests {
		rf.Set(tt.index, tt.value)
	}
	for _, tt := range tests {
		if got := rf.Get(tt.index); got != tt.value {
			t.Errorf("Get(%d) = 0x%x, want 0x%x", tt.index, got, tt.value)
		}
	}
}
