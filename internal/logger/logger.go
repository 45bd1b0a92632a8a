package logger

import (
	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Define colorized printing functions for different log levels using fatih/color.
// These are package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the log level. Every status message the
// tool prints goes through one of these, carrying its own prefix such as [ok],
// [info], [warning] or [error].

// Info logs informational messages in green color.
// Green is typically used for success or normal info to catch user attention pleasantly.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta color.
// Magenta is bright and stands out, signaling caution without being too alarming.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red color.
// Red is commonly associated with errors or critical problems to draw immediate attention.
var Error = color.New(color.FgRed).PrintfFunc()

// Done logs the closing message of a run in bright green color.
var Done = color.New(color.FgHiGreen).PrintfFunc()

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It defaults to a no-op so library code can log before Init has run.
var Debug = func(format string, a ...any) {}

// Init initializes the logger package, specifically enabling or disabling debug logging.
// When enabled, Debug will print messages in cyan color.
// When disabled, Debug stays a no-op function that silently ignores debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		// Assign Debug to print cyan-colored debug messages.
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
