package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage is the blob store boundary: path-addressed binary upload,
// download and delete, returning durable URLs embeddable in documents.
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, reader io.Reader, size int64, contentType string) error

	// Get retrieves a file from the given path
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file at the given path. Deleting an absent path
	// is not an error.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path
	Exists(ctx context.Context, path string) (bool, error)

	// URL returns the public retrieval URL for the path
	URL(path string) string

	// Path resolves a URL previously returned by URL back to a storage
	// path, or reports that the URL does not belong to this store.
	Path(url string) (string, bool)
}

// Config holds storage configuration
type Config struct {
	Type      string // local, s3
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string // for S3
	AccessKey string // for S3
	SecretKey string // for S3
	Endpoint  string // for S3-compatible endpoints
	UseSSL    bool
}

// NewStorage creates a storage instance based on configuration
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
