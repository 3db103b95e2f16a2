package contract

import (
	"context"
	"errors"
	"io"
)

var (
	ErrReferenceNotFound = errors.New("reference document not found")
	ErrInvalidReference  = errors.New("invalid reference document name")
)

// VaultRepository is the write-once namespace for uploaded reference files.
// There is no delete.
type VaultRepository interface {
	List(ctx context.Context) ([]string, error)
	Save(ctx context.Context, name string, content io.Reader) error
	Open(ctx context.Context, name string) (ReferenceFile, error)
}

// ReferenceFile is an opened stored document.
type ReferenceFile interface {
	io.ReaderAt
	io.Closer
	Size() int64
}
