package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the optional settings file looked up in the working directory.
const FileName = "crate-setup.yaml"

// Settings holds the tool's tunables. All fields are optional; zero values
// fall back to the defaults below, so an absent or partial settings file
// just means "use the defaults".
type Settings struct {
	// DependenciesFile is the name of the plain-text crate list, looked up
	// in the project directory first and then the working directory.
	DependenciesFile string `yaml:"dependencies_file"`

	// ProjectKind selects the `cargo new` flavor: "bin" or "lib".
	ProjectKind string `yaml:"project_kind"`

	// BuildCommand overrides the command run to fetch/build crates,
	// e.g. "cargo build --release".
	BuildCommand string `yaml:"build_command"`
}

// Default returns the settings used when no settings file is present.
func Default() Settings {
	return Settings{
		DependenciesFile: "dependencies.txt",
		ProjectKind:      "bin",
		BuildCommand:     "cargo build",
	}
}

// Load reads the settings file at path. A missing file is not an error,
// the defaults apply. A file that exists but cannot be parsed, or that
// names an unknown project kind, returns the defaults alongside the error
// so the caller can warn and continue.
func Load(path string) (Settings, error) {
	s := Default()

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return Default(), fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Explicit empty (or blank) strings in the file fall back to defaults too.
	if strings.TrimSpace(s.DependenciesFile) == "" {
		s.DependenciesFile = Default().DependenciesFile
	}
	if strings.TrimSpace(s.BuildCommand) == "" {
		s.BuildCommand = Default().BuildCommand
	}
	switch s.ProjectKind {
	case "":
		s.ProjectKind = Default().ProjectKind
	case "bin", "lib":
	default:
		return Default(), fmt.Errorf("invalid project_kind %q in %s (want bin or lib)", s.ProjectKind, path)
	}

	return s, nil
}

// BuildArgv splits the build command into the argv passed to the runner.
func (s Settings) BuildArgv() []string {
	return strings.Fields(s.BuildCommand)
}
