package assets

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"agencyportal/internal/logger"
	"agencyportal/internal/storage"
	"agencyportal/pkg/apperrors"
)

// File is an incoming binary attachment.
type File struct {
	Name        string
	Size        int64
	ContentType string
	Reader      io.Reader
}

// Manager uploads binary files to the blob store and reclaims them on
// deletion. Validation happens before any store call; documents only ever
// hold URLs, never raw bytes.
type Manager struct {
	store        storage.Storage
	maxSize      int64
	allowedTypes map[string]bool
}

func NewManager(store storage.Storage, maxSize int64, allowedTypes []string) *Manager {
	allowed := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = true
	}
	return &Manager{
		store:        store,
		maxSize:      maxSize,
		allowedTypes: allowed,
	}
}

// Upload validates the file, stores it under a collision-resistant path and
// returns the durable retrieval URL.
func (m *Manager) Upload(ctx context.Context, file File, pathHint string) (string, error) {
	if m.maxSize > 0 && file.Size > m.maxSize {
		return "", apperrors.ValidationError(fmt.Sprintf(
			"file %q exceeds the maximum upload size of %d bytes", file.Name, m.maxSize))
	}
	if len(m.allowedTypes) > 0 && !m.allowedTypes[file.ContentType] {
		return "", apperrors.ValidationError(fmt.Sprintf(
			"file type %q is not allowed", file.ContentType))
	}

	path := fmt.Sprintf("%s/%d-%s", strings.Trim(pathHint, "/"),
		time.Now().UnixMilli(), sanitizeName(file.Name))

	if err := m.store.Save(ctx, path, file.Reader, file.Size, file.ContentType); err != nil {
		return "", apperrors.ErrAssetStore(err)
	}
	return m.store.URL(path), nil
}

// Remove reclaims the asset behind a URL. It is idempotent: a URL whose
// object is already absent, or one that does not belong to this store at
// all, is a no-op.
func (m *Manager) Remove(ctx context.Context, url string) error {
	path, ok := m.store.Path(url)
	if !ok {
		logger.Warn("asset url does not belong to this store, skipping", "url", url)
		return nil
	}

	exists, err := m.store.Exists(ctx, path)
	if err != nil {
		return apperrors.ErrAssetStore(err)
	}
	if !exists {
		return nil
	}

	if err := m.store.Delete(ctx, path); err != nil {
		return apperrors.ErrAssetStore(err)
	}
	return nil
}

// sanitizeName keeps only the final path element of a client-supplied name.
func sanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.ReplaceAll(name, " ", "_")
}
