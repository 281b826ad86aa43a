package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"event-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testUploadConfig(t *testing.T) utils.UploadConfig {
	return utils.UploadConfig{
		Folder:       t.TempDir(),
		MaxFileSize:  64,
		AllowedTypes: []string{"pdf", "jpg", "jpeg", "png"},
	}
}

func TestLocalStore_Save(t *testing.T) {
	config := testUploadConfig(t)
	store, err := NewLocalStore(config, zap.NewNop())
	require.NoError(t, err)

	path, err := store.Save(strings.NewReader("document body"), "emirates.pdf")

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, config.Folder))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "document body", string(content))
}

func TestLocalStore_Save_RejectsDisallowedType(t *testing.T) {
	config := testUploadConfig(t)
	store, err := NewLocalStore(config, zap.NewNop())
	require.NoError(t, err)

	testCases := []string{"malware.exe", "script.sh", "noextension", "archive.tar.gz"}

	for _, name := range testCases {
		_, err := store.Save(strings.NewReader("x"), name)
		assert.Error(t, err, name)
	}
}

func TestLocalStore_Save_SizeCap(t *testing.T) {
	config := testUploadConfig(t)
	store, err := NewLocalStore(config, zap.NewNop())
	require.NoError(t, err)

	oversized := strings.Repeat("a", int(config.MaxFileSize)+1)
	_, err = store.Save(strings.NewReader(oversized), "big.pdf")
	assert.Error(t, err)

	// Nothing may be left behind after a rejected write
	entries, readErr := os.ReadDir(config.Folder)
	require.NoError(t, readErr)
	assert.Empty(t, entries)

	exact := strings.Repeat("a", int(config.MaxFileSize))
	path, err := store.Save(strings.NewReader(exact), "exact.pdf")
	assert.NoError(t, err)
	assert.FileExists(t, path)
}

func TestLocalStore_Save_UniqueNames(t *testing.T) {
	config := testUploadConfig(t)
	store, err := NewLocalStore(config, zap.NewNop())
	require.NoError(t, err)

	first, err := store.Save(strings.NewReader("a"), "emirates.pdf")
	require.NoError(t, err)
	second, err := store.Save(strings.NewReader("b"), "emirates.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, filepath.Dir(first), filepath.Dir(second))
}

func TestAllowed(t *testing.T) {
	config := utils.UploadConfig{AllowedTypes: []string{"pdf", "png"}}

	assert.True(t, Allowed(config, "scan.pdf"))
	assert.True(t, Allowed(config, "SCAN.PDF"))
	assert.True(t, Allowed(config, "photo.png"))
	assert.False(t, Allowed(config, "photo.gif"))
	assert.False(t, Allowed(config, "photo"))
}
