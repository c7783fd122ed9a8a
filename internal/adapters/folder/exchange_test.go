package folder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenameAside(t *testing.T) {
	root := t.TempDir()
	scratch := filepath.Join(root, "scratch")
	destination := filepath.Join(root, "destination")
	require.NoError(t, os.MkdirAll(scratch, 0o750))
	require.NoError(t, os.MkdirAll(destination, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(scratch, "new"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(destination, "old"), nil, 0o600))

	require.NoError(t, renameAside(scratch, destination))

	assert.FileExists(t, filepath.Join(destination, "new"))
	assert.FileExists(t, filepath.Join(scratch, "old"))
	assert.NoDirExists(t, scratch+".previous")
}

func TestExchange(t *testing.T) {
	root := t.TempDir()
	scratch := filepath.Join(root, "scratch")
	destination := filepath.Join(root, "destination")
	require.NoError(t, os.MkdirAll(scratch, 0o750))
	require.NoError(t, os.MkdirAll(destination, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(scratch, "new"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(destination, "old"), nil, 0o600))

	require.NoError(t, exchange(scratch, destination))

	assert.FileExists(t, filepath.Join(destination, "new"))
	assert.FileExists(t, filepath.Join(scratch, "old"))
}
