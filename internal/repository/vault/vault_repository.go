package vault

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"legal-drafting-be/internal/repository/contract"
)

// DirRepository stores reference documents flat in one local directory.
type DirRepository struct {
	dir string
}

var _ contract.VaultRepository = &DirRepository{}

func NewDirRepository(dir string) (*DirRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create vault dir: %w", err)
	}
	return &DirRepository{dir: dir}, nil
}

// List returns stored file names in lexical order.
func (r *DirRepository) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read vault dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() && !strings.HasPrefix(e.Name(), ".") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Save writes content under name, replacing a file of the same name.
func (r *DirRepository) Save(_ context.Context, name string, content io.Reader) error {
	path, err := r.path(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(r.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, content); err != nil {
		tmp.Close()
		return fmt.Errorf("write reference: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close reference: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("store reference: %w", err)
	}
	return nil
}

func (r *DirRepository) Open(_ context.Context, name string) (contract.ReferenceFile, error) {
	path, err := r.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, contract.ErrReferenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open reference: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat reference: %w", err)
	}
	return &file{File: f, size: info.Size()}, nil
}

// path rejects anything that is not a plain file name inside the vault.
func (r *DirRepository) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", contract.ErrInvalidReference
	}
	return filepath.Join(r.dir, name), nil
}

type file struct {
	*os.File
	size int64
}

func (f *file) Size() int64 {
	return f.size
}
