package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.c")
	testContent := []byte("int main(void) { return 0; }\n")
	require.NoError(t, os.WriteFile(testFile, testContent, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "sub"), 0755))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.c", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	r, err := fs.Open(testFile)
	require.NoError(t, err)
	content, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, testContent, content)
}

func TestSymlinkOperations(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "real.h")
	require.NoError(t, os.WriteFile(target, []byte("#pragma once\n"), 0644))
	link := filepath.Join(tmpDir, "alias.h")
	require.NoError(t, os.Symlink("real.h", link))

	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	dest, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, "real.h", dest)

	real, err := fs.Realpath(link)
	require.NoError(t, err)
	wantReal, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, wantReal, real)
	assert.True(t, filepath.IsAbs(real))
}
