package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	ref, err := store.Save("avatar.PNG", strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "uploads/"), "reference %q", ref)
	assert.True(t, strings.HasSuffix(ref, ".png"), "reference %q", ref)

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(ref, "uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestDiskStore_Save_UnsupportedType(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	tests := []string{"script.exe", "notes.txt", "archive.tar.gz", "noextension"}
	for _, name := range tests {
		_, err := store.Save(name, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrUnsupportedFileType, "name %q", name)
	}
}

func TestDiskStore_Save_UniqueNames(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save("a.jpg", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := store.Save("a.jpg", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewDiskStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewDiskStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
