package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pmlog/logctl/internal/pattern"
	"github.com/pmlog/logctl/internal/pmlog"
)

var logCmd = &cobra.Command{
	Use:   "log <context> <level> <msg>",
	Short: "Log a message through the subsystem",
	Long: `Log a test message on the given context with the given level. The
context must already exist; wildcards are not supported. With a single
argument, the message is logged to the global context at notice level.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE:               runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return libError("opening logging subsystem", err)
	}

	var (
		ctx   pmlog.Context
		level pmlog.Level
		msg   string
	)

	// A single argument is the message; context and level default to
	// the global context at notice.
	if len(args) == 1 {
		ctx, err = pmlog.FindExact(lib, pattern.GlobalContextName)
		if err != nil {
			return libError("finding global context", err)
		}
		level = pmlog.LevelNotice
		msg = args[0]
	} else {
		slots := []*slot{
			{missing: "Context", fill: func(arg string) error {
				found, err := pmlog.FindExact(lib, pattern.ResolveAlias(arg))
				if err != nil {
					return paramErrorf("Invalid context '%s'.", arg)
				}
				ctx = found
				return nil
			}},
			{missing: "Level", fill: func(arg string) error {
				parsed, ok := pmlog.ParseLevel(arg)
				if !ok || parsed == pmlog.LevelNone {
					return paramErrorf("Invalid level '%s'.", arg)
				}
				level = parsed
				return nil
			}},
			{missing: "Message", fill: func(arg string) error {
				msg = arg
				return nil
			}},
		}
		if err := fillSlots(args, slots); err != nil {
			return err
		}
	}

	if err := lib.Print(ctx, level, "%s", msg); err != nil {
		return libError("logging", err)
	}
	return nil
}
