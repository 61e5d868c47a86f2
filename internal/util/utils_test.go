package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHelpers(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")

	assert.False(t, DirExists(nested))
	require.NoError(t, CreateDirIfNotExist(nested))
	assert.True(t, DirExists(nested))
	require.NoError(t, CreateDirIfNotExist(nested))

	file := filepath.Join(nested, "cfg.yaml")
	assert.False(t, FileExists(file))
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	assert.True(t, FileExists(file))
	assert.False(t, FileExists(nested))
}

func TestReplaceExt(t *testing.T) {
	assert.Equal(t, "out/preview.json", ReplaceExt("out/preview.png", ".json"))
	assert.Equal(t, "noext.toml", ReplaceExt("noext", ".toml"))
}

func TestTimeTrack(t *testing.T) {
	var got string
	TimeTrack(time.Now(), "render", func(format string, v ...interface{}) {
		got = format
		assert.Equal(t, "render", v[0])
	})
	assert.Equal(t, "%s took %s", got)
}
