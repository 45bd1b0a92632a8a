package main

import (
	"crate-setup/cmd" // Import the cmd package which contains the CLI command and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// The crate-setup project is a cargo project bootstrapper that:
//   - Detects the host platform and checks that the Rust toolchain (cargo, rustc) is on PATH
//   - Creates a new cargo project skeleton via `cargo new` when one does not exist yet
//   - Reads desired crates from a plain-text dependencies file (one declaration per line)
//   - Merges any crate not already declared into the project's Cargo.toml, never touching
//     entries that are already there
//   - Runs `cargo build` so the toolchain fetches and compiles the declared crates
//
// The tool is designed to be re-run until everything is installed: the merge step skips
// crates that are already declared and `cargo build` resumes from whatever partial state
// the previous run left behind, so repeated invocations converge without side effects.
//
// Error handling strategy:
//   - A missing dependencies file and unparseable dependency lines are tolerated silently
//   - A missing toolchain produces a warning with installation guidance, and execution
//     continues so the manifest can still be edited
//   - A failed `cargo new` or an unreadable Cargo.toml is fatal (exit code 1), since
//     nothing downstream can proceed without a valid project skeleton
//   - A failed `cargo build` is reported with its output but does not change the exit
//     code; the closing message reminds the user that re-running retries the build
func main() {
	cmd.Execute()
}
