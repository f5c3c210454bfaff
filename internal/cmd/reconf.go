package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pmlog/logctl/internal/pattern"
	"github.com/pmlog/logctl/internal/pmlog"
)

// reloadControlMessage instructs the subsystem to re-read its
// configuration. It is delivered in-band through the global context.
const reloadControlMessage = "!loglib loadconf"

var reconfCmd = &cobra.Command{
	Use:                "reconf",
	Short:              "Re-load subsystem options from configuration",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE:               runReconf,
}

func init() {
	rootCmd.AddCommand(reconfCmd)
}

func runReconf(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return paramErrorf("Invalid parameter '%s'.", args[0])
	}

	lib, err := openLibrary()
	if err != nil {
		return libError("opening logging subsystem", err)
	}

	ctx, err := pmlog.FindExact(lib, pattern.GlobalContextName)
	if err != nil {
		return libError("finding global context", err)
	}
	if err := lib.Print(ctx, pmlog.LevelEmerg, "%s", reloadControlMessage); err != nil {
		return libError("logging", err)
	}
	return nil
}
