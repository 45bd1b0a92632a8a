package cmd

import (
	"github.com/spf13/cobra"

	"crate-setup/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the CLI tool `crate-setup`.
// The tool has a single behavior, so the root command carries it directly:
// one optional positional argument naming the project folder to create/use.
var rootCmd = &cobra.Command{
	Use:   "crate-setup [project-name]",
	Short: "Bootstrap a cargo project and keep its declared crates installed",
	Args:  cobra.MaximumNArgs(1),

	// PersistentPreRun is a hook that runs before the command body.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug) // Set up logging (verbose if --debug is true)
	},

	Run: runSetup,
}

// Execute initializes flags and starts the command execution.
// It's the entry point for the CLI when invoked by the user.
func Execute() {
	// Register the global --debug flag before the command is executed.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Execute runs the command or displays help on a usage error.
	// Errors are ignored here with `_ =` since Cobra prints them itself.
	_ = rootCmd.Execute()
}
