package platform

import (
	"os/exec"
	"runtime"
)

// InstallHint is printed when the Rust toolchain is not found on PATH.
const InstallHint = `Please install the Rust toolchain first:
  curl https://sh.rustup.rs -sSf | sh
or visit https://rustup.rs
After installation, re-run crate-setup.`

// OSName reports the host platform using the naming users expect
// ("macos", "windows", "linux"); other platforms pass through as
// reported by the runtime.
func OSName() string {
	return osName(runtime.GOOS)
}

func osName(goos string) string {
	if goos == "darwin" {
		return "macos"
	}
	return goos
}

// HasTool reports whether the named executable can be found on PATH.
func HasTool(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// ToolchainReady reports whether both cargo and rustc are on PATH.
// A missing toolchain is a warning, not a hard stop: the manifest can
// still be created and edited, only fetching/building needs cargo.
func ToolchainReady() bool {
	return HasTool("cargo") && HasTool("rustc")
}
