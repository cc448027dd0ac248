package storage

import (
	"context"
	"errors"
)

// BlobStore is the remote object store holding the annotated snapshot.
// Upload always overwrites; there is no versioning and no listing.
type BlobStore interface {
	Download(ctx context.Context, container, key string) ([]byte, error)
	Upload(ctx context.Context, container, key string, data []byte) error
	Healthy(ctx context.Context) bool
	Close() error
}

type Type string

const (
	FS    Type = "fs"
	PG    Type = "pg"
	ES    Type = "es"
	S3    Type = "s3"
	InMem Type = "in_mem"
)

var Types = []Type{FS, PG, ES, S3, InMem}

const (
	DefaultContainer = "annotations"
	DefaultObjectKey = "annotated_data.json"
	ContentTypeJSON  = "application/json"
)

// ErrNotFound is returned by Download when the object does not exist.
var ErrNotFound = errors.New("blob not found")

type StorerError string

const (
	ErrUnsupportedStore StorerError = "unsupported blob store type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
