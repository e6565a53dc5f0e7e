package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	files := []GeneratedFile{
		{Filename: "account_staging.go", Content: []byte("package basic\n")},
		{Filename: "signup_staging.go", Content: []byte("package basic\n")},
	}

	require.NoError(t, WriteFiles(files, dir))

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f.Filename))
		require.NoError(t, err)
		assert.Equal(t, f.Content, data)
	}
}

func TestWriteDebugUnformatted(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, writeDebugUnformatted(dir, "broken.go", []byte("package basic\nfunc {")))

	data, err := os.ReadFile(filepath.Join(dir, "broken.unformatted.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "func {")

	// Empty inputs are a no-op, never an error.
	assert.NoError(t, writeDebugUnformatted("", "x.go", nil))
	assert.NoError(t, writeDebugUnformatted(dir, "", nil))
}
