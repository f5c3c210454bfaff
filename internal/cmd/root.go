// Package cmd implements the CLI commands for logctl.
//
// Every subcommand consumes a strict positional grammar, so flag
// parsing is disabled throughout and arguments reach the handlers raw.
// Handlers print their results through internal/term and return typed
// outcome errors; Execute maps outcomes to exit codes.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pmlog/logctl/internal/pmlog"
	"github.com/pmlog/logctl/internal/term"
)

// openLibrary opens the logging subsystem client. Swapped by tests to
// inject a fake library.
var openLibrary = func() (pmlog.Library, error) {
	return pmlog.OpenDefault()
}

// errHelpShown marks the always-successful help outcome, which maps to
// its own exit code rather than success or failure.
var errHelpShown = errors.New("help shown")

// rootCmd dispatches the subcommand keyword. Unmatched keywords fall
// through to runRoot.
var rootCmd = &cobra.Command{
	Use:   "logctl",
	Short: "Inspect and adjust runtime logging context levels",
	Long: `logctl is an operator tool for the pmlog logging subsystem. It shows and
adjusts the verbosity of named logging contexts and injects test log
entries, including kernel-log entries.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE:               runRoot,
}

func init() {
	rootCmd.SetHelpCommand(helpCmd)
}

// runRoot handles the no-command and unknown-command cases, plus the
// "-help" spelling that flag parsing would otherwise swallow.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return paramErrorf("No command specified.")
	}
	if args[0] == "-help" || args[0] == "--help" {
		return runHelp(cmd, args[1:])
	}
	return paramErrorf("Invalid command '%s'", args[0])
}

// Execute runs the root command, prints any outcome diagnostics, and
// returns an ExitCodeError for non-success outcomes.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}
	if errors.Is(err, errHelpShown) {
		return NewExitCodeError(exitHelp)
	}

	var pErr *paramError
	if errors.As(err, &pErr) {
		term.Println(pErr.msg)
		term.Println("Use 'logctl help' for usage information.")
		return NewExitCodeError(exitFailure)
	}
	var rErr *runError
	if errors.As(err, &rErr) {
		term.Println(rErr.msg)
		return NewExitCodeError(exitFailure)
	}

	term.Errorf("logctl: %v", err)
	return NewExitCodeError(exitFailure)
}
