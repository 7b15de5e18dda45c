package cli

import (
	"fmt"
	"io"
)

// ANSI color codes
const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorGray    = "\033[90m"
)

// Status output goes to the root command's writers so tests can capture it
// with SetOut/SetErr. Machine-readable output (--json) goes to the running
// command's OutOrStdout and must not be mixed with these helpers.

func stdout() io.Writer { return rootCmd.OutOrStdout() }

func stderr() io.Writer { return rootCmd.ErrOrStderr() }

// paint wraps s in color unless --no-color is set.
func paint(color, s string) string {
	if globalNoColor {
		return s
	}
	return color + s + colorReset
}

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout(), msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout(), "%s %s\n", paint(colorGreen, "✓"), msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout(), "%s %s\n", paint(colorYellow, "⚠"), msg)
}

// printVerbose prints a verbose message (only if verbose is enabled)
func printVerbose(verbose bool, msg string) {
	if !verbose || globalQuiet {
		return
	}
	fmt.Fprintf(stdout(), "%s %s\n", paint(colorGray, "[VERBOSE]"), msg)
}

// printProgress prints a progress indicator
func printProgress(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout(), "%s %s\n", paint(colorBlue, "→"), msg)
}

// printHeader prints a section header
func printHeader(title string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout(), "\n%s\n", paint(colorMagenta, fmt.Sprintf("=== %s ===", title)))
}

// printError prints the error a command returned. Commands return errors
// instead of printing them, so each failure is reported once. Errors are
// printed even with --quiet.
func printError(err error) {
	fmt.Fprintf(stderr(), "%s %v\n", paint(colorRed, "✗"), err)
}
