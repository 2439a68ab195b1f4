package kvstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

const fileBackend = "file"

// File stores each key as a file in a directory. Writes go to a temporary file
// that is renamed into place, so a crash never leaves a half-written value.
type File struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

// NewFile returns a File store rooted at dir on fs, creating the directory if needed.
func NewFile(fs afero.Fs, dir string) (*File, error) {
	if dir == "" {
		return nil, fmt.Errorf("file store directory is empty")
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, wrap(fileBackend, "mkdir", dir, err)
	}
	return &File{fs: fs, dir: dir}, nil
}

func (f *File) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(f.dir, key), nil
}

func (f *File) Get(_ context.Context, key string) (string, error) {
	p, err := f.path(key)
	if err != nil {
		return "", wrap(fileBackend, "get", key, err)
	}
	data, err := afero.ReadFile(f.fs, p)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", wrap(fileBackend, "get", key, err)
	}
	return string(data), nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	p, err := f.path(key)
	if err != nil {
		return wrap(fileBackend, "set", key, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp := p + ".tmp"
	if err := afero.WriteFile(f.fs, tmp, []byte(value), 0o644); err != nil {
		return wrap(fileBackend, "set", key, err)
	}
	if err := f.fs.Rename(tmp, p); err != nil {
		_ = f.fs.Remove(tmp)
		return wrap(fileBackend, "set", key, err)
	}
	return nil
}

func (f *File) Remove(_ context.Context, key string) error {
	p, err := f.path(key)
	if err != nil {
		return wrap(fileBackend, "remove", key, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fs.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return wrap(fileBackend, "remove", key, err)
	}
	return nil
}

func (f *File) Close() error { return nil }
