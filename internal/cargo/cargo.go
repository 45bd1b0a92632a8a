package cargo

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"crate-setup/internal/logger"
)

// ManifestName is the manifest filename cargo expects at a project root.
// Its presence is the sole signal that a project already exists.
const ManifestName = "Cargo.toml"

// Runner executes an external command in a directory and returns its
// combined stdout/stderr. It exists so tests can substitute a fake for
// the real toolchain.
type Runner interface {
	Run(dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec, capturing combined output.
type ExecRunner struct{}

func (ExecRunner) Run(dir, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	logger.Debug("[debug] Running command: %s\n", strings.Join(cmd.Args, " "))
	return cmd.CombinedOutput()
}

// Cargo wraps the two toolchain invocations this tool makes: scaffolding a
// new project and building it.
type Cargo struct {
	Runner Runner
}

// New returns a Cargo that shells out to the real toolchain.
func New() *Cargo {
	return &Cargo{Runner: ExecRunner{}}
}

// EnsureProject makes sure a cargo project named name exists under workDir.
// If the project's Cargo.toml is already present this is a no-op. Otherwise
// `cargo new` is invoked with the configured kind ("bin" or "lib"). A
// non-zero exit is returned as an error carrying the command output; the
// caller treats it as fatal since nothing downstream works without a
// project skeleton.
func (c *Cargo) EnsureProject(workDir, name, kind string) error {
	projectDir := filepath.Join(workDir, name)
	if _, err := os.Stat(filepath.Join(projectDir, ManifestName)); err == nil {
		logger.Info("[ok] Project '%s' already exists at %s\n", name, projectDir)
		return nil
	}

	logger.Info("[info] Creating cargo project '%s'...\n", name)
	out, err := c.Runner.Run(workDir, "cargo", "new", name, "--"+kind)
	if err != nil {
		return fmt.Errorf("cargo new failed: %w\nOutput:\n%s", err, out)
	}
	logger.Info("[ok] Project created.\n")
	return nil
}

// Build runs the build command in the project directory so the toolchain
// fetches and compiles the declared crates. Failure is reported with the
// captured output but is not fatal: build tools resume from partial state,
// so the fix is simply to re-run.
func (c *Cargo) Build(projectDir string, command []string) bool {
	if len(command) == 0 {
		logger.Error("[error] No build command configured; skipping build.\n")
		return false
	}
	logger.Info("[info] Running `%s` to fetch/build dependencies...\n", strings.Join(command, " "))
	out, err := c.Runner.Run(projectDir, command[0], command[1:]...)
	if err != nil {
		logger.Error("[error] %s failed. Showing output:\n%s\n", strings.Join(command, " "), out)
		return false
	}
	logger.Info("[ok] %s succeeded.\n", strings.Join(command, " "))
	return true
}
