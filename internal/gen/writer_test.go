package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "views")

	files := []GeneratedFile{
		{Filename: "user_response_view.gen.go", Content: []byte("package views\n")},
	}

	require.NoError(t, WriteFiles(files, dir))

	got, err := os.ReadFile(filepath.Join(dir, "user_response_view.gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "package views\n", string(got))
}

func TestWriteFiles_RemovesStaleSidecar(t *testing.T) {
	dir := t.TempDir()

	// Simulate an earlier failed run that left unformatted debug output.
	require.NoError(t, writeDebugUnformatted(dir, "user_response_view.gen.go", []byte("package views")))

	sidecar := filepath.Join(dir, "user_response_view.gen.unformatted.go")
	_, err := os.Stat(sidecar)
	require.NoError(t, err)

	files := []GeneratedFile{
		{Filename: "user_response_view.gen.go", Content: []byte("package views\n")},
	}
	require.NoError(t, WriteFiles(files, dir))

	_, err = os.Stat(sidecar)
	assert.True(t, os.IsNotExist(err))
}
