package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pmlog/logctl/internal/pmlog"
	"github.com/pmlog/logctl/internal/term"
)

var helpCmd = &cobra.Command{
	Use:                "help",
	Short:              "Show usage information",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE:               runHelp,
}

// runHelp prints the command and level reference. It always succeeds,
// but the outcome maps to the dedicated help exit code.
func runHelp(cmd *cobra.Command, args []string) error {
	term.Printf("logctl COMMAND [PARAM...]\n")
	term.Printf("  help                         # show usage info\n")
	term.Printf("  def <context> [<level>]      # define logging context\n")
	term.Printf("  flush                        # flush all ring buffers\n")
	term.Printf("  log <context> <level> <msg>  # log a message\n")
	term.Printf("  klog [-p <level>] <msg>      # log a kernel message\n")
	term.Printf("  reconf                       # re-load subsystem options from conf\n")
	term.Printf("  set <context> <level>        # set logging context level\n")
	term.Printf("  show [<context>]             # show logging context(s)\n")
	term.Printf("  version                      # show logctl version\n")
	term.Printf("\n")

	term.Printf("Contexts:\n")
	term.Printf("  The global context can be specified as '.'\n")
	term.Printf("\n")

	term.Printf("Levels:\n")
	for level := pmlog.MinLevel; level <= pmlog.MaxLevel; level++ {
		term.Printf("  %-10s  # %d\n", level, int(level))
	}

	return errHelpShown
}
