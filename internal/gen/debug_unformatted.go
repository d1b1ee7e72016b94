package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. This is best-effort and should never make generation fail
// harder.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	p := filepath.Join(outDir, sidecarName(filename))

	return os.WriteFile(p, content, filePerm)
}

// sidecarName derives the debug sidecar file name for a generated file.
// It stays a .go file so editors can syntax highlight, but never
// collides with real output.
func sidecarName(filename string) string {
	return strings.TrimSuffix(filename, ".go") + ".unformatted.go"
}
