package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pmlog/logctl/internal/pattern"
	"github.com/pmlog/logctl/internal/pmlog"
	"github.com/pmlog/logctl/internal/term"
)

var showCmd = &cobra.Command{
	Use:   "show [<context>]",
	Short: "Show logging contexts",
	Long: `Show the name and active level of registered logging contexts, sorted by
name. With no argument every context is shown; with a name or trailing
'*' pattern only the matching contexts are shown.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE:               runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return libError("opening logging subsystem", err)
	}

	var (
		matchName  string
		matchGiven bool
	)
	slots := []*slot{
		{fill: func(arg string) error {
			matchName = pattern.ResolveAlias(arg)
			matchGiven = true
			return nil
		}},
	}
	if err := fillSlots(args, slots); err != nil {
		return err
	}

	pat := pattern.All()
	if matchGiven {
		pat = pattern.Name(matchName)
	}

	records, err := pmlog.List(lib, pat)
	if err != nil {
		return libError("getting contexts info", err)
	}

	for _, rec := range records {
		levelName := "Unknown"
		if level, err := lib.ContextLevel(rec.Context); err == nil {
			levelName = level.String()
		}
		term.Printf("Context '%s' = %s\n", rec.Name, levelName)
	}

	if matchGiven && len(records) == 0 {
		if pattern.IsWildcard(matchName) {
			return runErrorf("No contexts matched '%s'.", matchName)
		}
		return runErrorf("Context '%s' not found.", matchName)
	}
	return nil
}
