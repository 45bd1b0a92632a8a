package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `dependencies_file: crates.txt
project_kind: lib
build_command: cargo build --release
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "crates.txt", s.DependenciesFile)
	assert.Equal(t, "lib", s.ProjectKind)
	assert.Equal(t, []string{"cargo", "build", "--release"}, s.BuildArgv())
}

func TestLoad_PartialFileKeepsRemainingDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("project_kind: lib\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lib", s.ProjectKind)
	assert.Equal(t, Default().DependenciesFile, s.DependenciesFile)
	assert.Equal(t, Default().BuildCommand, s.BuildCommand)
}

func TestLoad_BlankValuesFallBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `dependencies_file: "  "
build_command: "   "
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().DependenciesFile, s.DependenciesFile)
	assert.Equal(t, Default().BuildCommand, s.BuildCommand)
	assert.NotEmpty(t, s.BuildArgv(), "a loaded build command must always split into an argv")
}

func TestLoad_InvalidProjectKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("project_kind: wasm\n"), 0644))

	s, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wasm")
	// Defaults come back alongside the error so the caller can warn and continue.
	assert.Equal(t, Default(), s)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("dependencies_file: [unclosed\n"), 0644))

	s, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, Default(), s)
}
