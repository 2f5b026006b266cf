package annotation

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportFolder(t *testing.T) {
	ctx := context.Background()
	st, root := newTestStore(t)
	photos := filepath.Join(root, "photos")
	writeFiles(t, photos, "a.jpg", "B.JPG", "notes.txt", "sub/c.png")

	t.Run("top level only", func(t *testing.T) {
		res, err := ImportFolder(ctx, st, photos, ImportOptions{})
		require.NoError(t, err)
		assert.Equal(t, ImportResult{Added: 2, Skipped: 1}, res)

		images, err := st.LoadImages(ctx)
		require.NoError(t, err)
		require.Len(t, images, 2)
		assert.Equal(t, filepath.Join("..", "photos", "B.JPG"), images[0].FilePath)
		assert.Equal(t, "B.JPG", images[0].DisplayName)
		assert.Equal(t, filepath.Join(photos, "a.jpg"), st.ResolveImagePath(images[1].FilePath))
	})

	t.Run("reimport does not duplicate", func(t *testing.T) {
		_, err := ImportFolder(ctx, st, photos, ImportOptions{})
		require.NoError(t, err)

		images, err := st.LoadImages(ctx)
		require.NoError(t, err)
		assert.Len(t, images, 2)
	})

	t.Run("recursive", func(t *testing.T) {
		res, err := ImportFolder(ctx, st, photos, ImportOptions{Recursive: true})
		require.NoError(t, err)
		assert.Equal(t, 3, res.Added)

		images, err := st.LoadImages(ctx)
		require.NoError(t, err)
		require.Len(t, images, 3)
		assert.Equal(t, filepath.Join("..", "photos", "sub", "c.png"), images[2].FilePath)
	})

	t.Run("custom extensions", func(t *testing.T) {
		res, err := ImportFolder(ctx, st, photos, ImportOptions{Extensions: []string{".TXT"}})
		require.NoError(t, err)
		assert.Equal(t, ImportResult{Added: 1, Skipped: 2}, res)
	})

	t.Run("missing folder", func(t *testing.T) {
		_, err := ImportFolder(ctx, st, filepath.Join(root, "absent"), ImportOptions{})
		assert.Error(t, err)
	})

	t.Run("file instead of folder", func(t *testing.T) {
		_, err := ImportFolder(ctx, st, filepath.Join(photos, "a.jpg"), ImportOptions{})
		assert.ErrorContains(t, err, "is not a folder")
	})
}

type failingUpserter struct {
	baseDir string
	fail    string
	paths   []string
}

func (f *failingUpserter) BaseDir() string { return f.baseDir }

func (f *failingUpserter) UpsertImage(_ context.Context, filePath, _ string) (int64, error) {
	if strings.HasSuffix(filePath, f.fail) {
		return 0, errors.New("disk on fire")
	}
	f.paths = append(f.paths, filePath)
	return int64(len(f.paths)), nil
}

func TestImportFolder_CollectsFailures(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg", "b.jpg", "c.jpg")
	up := &failingUpserter{baseDir: dir, fail: "b.jpg"}

	res, err := ImportFolder(context.Background(), up, dir, ImportOptions{})
	require.Error(t, err)
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, []string{"a.jpg", "c.jpg"}, up.paths)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 1)
	assert.ErrorContains(t, err, "disk on fire")
}

func TestImportFolder_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := ImportFolder(ctx, &failingUpserter{baseDir: dir}, dir, ImportOptions{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.Added)
}

func TestStoredPath(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "data")
	assert.Equal(t, filepath.Join("x", "a.jpg"), storedPath(base, filepath.Join(base, "x", "a.jpg")))
	assert.Equal(t, "/abs/a.jpg", storedPath("", "/abs/a.jpg"))
}
