package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFS_WriteAndRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	fs := NewOSFS(dir)

	n, err := fs.WriteFile("a.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)

	data, err := os.ReadFile(filepath.Join(dir, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, fs.Remove("a.png"))
	assert.NoFileExists(t, filepath.Join(dir, "a.png"))

	assert.NoError(t, fs.Remove("a.png"), "removing a missing file is not an error")
}

func TestOSFS_StaysInsideDir(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "images")
	fs := NewOSFS(dir)

	_, err := fs.WriteFile("../escape.png", strings.NewReader("x"))
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "escape.png"))
	assert.NoFileExists(t, filepath.Join(root, "escape.png"))
}
