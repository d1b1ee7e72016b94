package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FullConfig(t *testing.T) {
	cfg, err := Parse([]byte(`
version: "1"
package: views
package_path: example.com/app/views
output: ./internal/views
models:
  - ./store/...
declarations:
  - views/user.view
variants:
  - Owned
  - Ref
comments: true
`))

	require.NoError(t, err)
	assert.Equal(t, "views", cfg.Package)
	assert.Equal(t, "example.com/app/views", cfg.PackagePath)
	assert.Equal(t, "./internal/views", cfg.Output)
	assert.Equal(t, []string{"./store/..."}, cfg.Models)
	assert.Equal(t, []string{"views/user.view"}, cfg.Declarations)
	assert.True(t, cfg.Comments)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(`
models:
  - ./store/...
declarations:
  - views/user.view
`))

	require.NoError(t, err)
	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "views", cfg.Package)
	assert.Equal(t, "./views", cfg.Output)
	assert.Empty(t, cfg.Variants)
}

func TestParse_NoModels(t *testing.T) {
	_, err := Parse([]byte(`
declarations:
  - views/user.view
`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no model packages")
}

func TestParse_NoDeclarations(t *testing.T) {
	_, err := Parse([]byte(`
models:
  - ./store/...
`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no declaration files")
}

func TestParse_UnknownVariant(t *testing.T) {
	_, err := Parse([]byte(`
models:
  - ./store/...
declarations:
  - views/user.view
variants:
  - Arc
`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown variant "Arc"`)
}

func TestGeneratorConfig(t *testing.T) {
	cfg, err := Parse([]byte(`
package: views
models:
  - ./store/...
declarations:
  - views/user.view
variants:
  - Vec
`))
	require.NoError(t, err)

	gc, err := cfg.GeneratorConfig()

	require.NoError(t, err)
	assert.Equal(t, "views", gc.PackageName)
	require.Len(t, gc.Variants, 1)
	assert.Equal(t, "Vec", gc.Variants[0].Suffix())
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("models: [unclosed"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}
