package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pmlog/logctl/internal/pmlog"
)

// flushContextName is the tool's own context. Emitting a highest-
// severity message through it forces the subsystem to commit its
// buffered log data.
const flushContextName = "LogCtl"

var flushCmd = &cobra.Command{
	Use:                "flush",
	Short:              "Flush all ring buffers",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE:               runFlush,
}

func init() {
	rootCmd.AddCommand(flushCmd)
}

func runFlush(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return paramErrorf("Invalid parameter '%s'.", args[0])
	}

	lib, err := openLibrary()
	if err != nil {
		return libError("opening logging subsystem", err)
	}

	ctx, err := pmlog.FindExact(lib, flushContextName)
	if err != nil {
		return libError("getting context "+flushContextName, err)
	}
	if err := lib.Print(ctx, pmlog.LevelEmerg, "%s", "Manually Flushing Buffers"); err != nil {
		return libError("logging", err)
	}
	return nil
}
