package project

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileProvider supplies the raw bytes of designs and receives generated files.
type FileProvider interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

type OS struct{}

func (OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile creates missing parent directories before writing.
func (OS) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Memory keeps files in a map keyed by cleaned path.
type Memory struct {
	mutex sync.RWMutex
	files map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{
		files: make(map[string][]byte),
	}
}

func (r *Memory) ReadFile(path string) ([]byte, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	data, ok := r.files[filepath.Clean(path)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (r *Memory) WriteFile(path string, data []byte) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.files[filepath.Clean(path)] = append([]byte(nil), data...)
	return nil
}

// Paths lists the stored paths in lexical order.
func (r *Memory) Paths() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	paths := make([]string, 0, len(r.files))
	for path := range r.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
