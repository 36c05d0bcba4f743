// Package files loads static resources into memory and maps file names to
// MIME types.
package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrNotFound reports that the requested file does not exist. Callers check
// it with errors.Is to distinguish a miss from a real I/O failure.
var ErrNotFound = errors.New("file not found")

// FileData holds a loaded file's bytes. The buffer belongs to the caller
// that loaded it (or to the cache, once stored there).
type FileData struct {
	Data []byte
	Size int
}

// Load reads the whole file at path into memory.
func Load(path string) (*FileData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return &FileData{
		Data: data,
		Size: len(data),
	}, nil
}
