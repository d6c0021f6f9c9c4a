// Package loader provides the program image loading collaborator named as
// out of scope for the execution core: a plain byte copy of a flat binary
// image into a freshly constructed memory, with no header or relocation.
package loader

import (
	"fmt"
	"os"

	"github.com/lookbusy1344/rv32i-emulator/vm"
)

// LoadFile reads the program image at path and copies it into a new
// Memory of the given size, starting at offset 0. Execution begins at
// offset 0.
func LoadFile(path string, memorySize uint32) (*vm.Memory, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the user-supplied program image
	if err != nil {
		return nil, fmt.Errorf("loader: failed to read program image %q: %w", path, err)
	}

	mem := vm.NewMemory(memorySize)
	if err := mem.LoadImage(data); err != nil {
		return nil, fmt.Errorf("loader: failed to load program image %q: %w", path, err)
	}

	return mem, nil
}
