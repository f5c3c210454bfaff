package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pmlog/logctl/internal/pattern"
	"github.com/pmlog/logctl/internal/pmlog"
	"github.com/pmlog/logctl/internal/term"
)

var setCmd = &cobra.Command{
	Use:   "set <context> <level>",
	Short: "Set a logging context level",
	Long: `Set the active logging level for the specified context. The context may
be a name pattern with a trailing '*', in which case the level is
applied to every matching context. A non-wildcard name must refer to an
existing context.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE:               runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return libError("opening logging subsystem", err)
	}

	var (
		matchName string
		matched   pmlog.Context
		level     pmlog.Level
	)
	slots := []*slot{
		{missing: "Context", fill: func(arg string) error {
			matchName = pattern.ResolveAlias(arg)
			if pattern.IsWildcard(matchName) {
				return nil
			}
			ctx, err := pmlog.FindExact(lib, matchName)
			if err != nil {
				return paramErrorf("Context '%s' not found.", matchName)
			}
			matched = ctx
			return nil
		}},
		{missing: "Level", fill: func(arg string) error {
			parsed, ok := pmlog.ParseLevel(arg)
			if !ok {
				return paramErrorf("Invalid level '%s'.", arg)
			}
			level = parsed
			return nil
		}},
	}
	if err := fillSlots(args, slots); err != nil {
		return err
	}

	if matched != nil {
		term.Printf("Setting context level for '%s'.\n", matchName)
		if err := lib.SetContextLevel(matched, level); err != nil {
			return libError("setting context log level", err)
		}
		return nil
	}

	// Wildcard path: apply to every match, in sorted order, aborting on
	// the first failure. Already-applied levels stay applied.
	records, err := pmlog.List(lib, pattern.Name(matchName))
	if err != nil {
		return libError("getting contexts info", err)
	}
	if len(records) == 0 {
		return runErrorf("No contexts matched '%s'.", matchName)
	}
	for _, rec := range records {
		term.Printf("Setting context level for '%s'.\n", rec.Name)
		if err := lib.SetContextLevel(rec.Context, level); err != nil {
			return libError("setting context log level", err)
		}
	}
	return nil
}
