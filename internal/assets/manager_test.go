package assets

import (
	"context"
	"strings"
	"testing"

	"agencyportal/internal/storage"
	"agencyportal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: t.TempDir(),
		BaseURL:  "/files",
	})
	require.NoError(t, err)
	return NewManager(store, 1024, []string{"image/jpeg", "image/png"})
}

func TestManager_UploadAndRemove(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	url, err := m.Upload(ctx, File{
		Name:        "head shot.jpg",
		Size:        9,
		ContentType: "image/jpeg",
		Reader:      strings.NewReader("jpegbytes"),
	}, "models")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/files/models/"))
	assert.True(t, strings.HasSuffix(url, "-head_shot.jpg"))

	require.NoError(t, m.Remove(ctx, url))
}

func TestManager_RemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	url, err := m.Upload(ctx, File{
		Name:        "a.png",
		Size:        3,
		ContentType: "image/png",
		Reader:      strings.NewReader("png"),
	}, "blog")
	require.NoError(t, err)

	require.NoError(t, m.Remove(ctx, url))
	// Second removal of the same URL is a no-op, not an error.
	require.NoError(t, m.Remove(ctx, url))
}

func TestManager_RemoveForeignURL(t *testing.T) {
	m := newTestManager(t)
	assert.NoError(t, m.Remove(context.Background(), "https://elsewhere.example/x.jpg"))
}

func TestManager_RejectsOversizedFile(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Upload(context.Background(), File{
		Name:        "huge.jpg",
		Size:        2048,
		ContentType: "image/jpeg",
		Reader:      strings.NewReader("x"),
	}, "models")

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestManager_RejectsDisallowedType(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Upload(context.Background(), File{
		Name:        "video.mp4",
		Size:        10,
		ContentType: "video/mp4",
		Reader:      strings.NewReader("x"),
	}, "models")

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}
