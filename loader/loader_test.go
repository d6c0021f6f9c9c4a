package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lookbusy1344/rv32i-emulator/vm"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.bin")
	image := []byte{0x93, 0x00, 0xA0, 0x00, 0x73, 0x00, 0x10, 0x00}
	if err := os.WriteFile(path, image, 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	mem, err := LoadFile(path, 4096)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if mem.Size() != 4096 {
		t.Errorf("Size() = %d, want 4096", mem.Size())
	}
	if got, _ := mem.ReadWord(0); got != 0x00A00093 {
		t.Errorf("word at 0 = 0x%x, want 0x00A00093", got)
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile("/nonexistent/path/image.bin", 4096)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFile_OversizeImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.bin")
	if err := os.WriteFile(path, make([]byte, 16), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := LoadFile(path, 8)
	if !errors.Is(err, vm.ErrOutOfRange) {
		t.Errorf("err = %v, want ErrOutOfRange", err)
	}
}
