package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pmlog/logctl/internal/pattern"
	"github.com/pmlog/logctl/internal/pmlog"
)

var defCmd = &cobra.Command{
	Use:   "def <context> [<level>]",
	Short: "Define a logging context",
	Long: `Define the specified logging context. If a level is given it is applied
after creation; otherwise the context gets the subsystem default.
Defining a context that already exists is an error.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE:               runDef,
}

func init() {
	rootCmd.AddCommand(defCmd)
}

func runDef(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return libError("opening logging subsystem", err)
	}

	var (
		contextName string
		level       pmlog.Level
		haveLevel   bool
	)
	slots := []*slot{
		{missing: "Context", fill: func(arg string) error {
			contextName = pattern.ResolveAlias(arg)
			if _, err := pmlog.FindExact(lib, contextName); err == nil {
				return paramErrorf("Context '%s' is already defined.", contextName)
			}
			return nil
		}},
		{fill: func(arg string) error {
			parsed, ok := pmlog.ParseLevel(arg)
			if !ok {
				return paramErrorf("Invalid level '%s'.", arg)
			}
			level, haveLevel = parsed, true
			return nil
		}},
	}
	if err := fillSlots(args, slots); err != nil {
		return err
	}

	ctx, err := lib.GetContext(contextName)
	if err != nil {
		return libError("defining context", err)
	}
	if haveLevel {
		if err := lib.SetContextLevel(ctx, level); err != nil {
			return libError("setting context log level", err)
		}
	}
	return nil
}
