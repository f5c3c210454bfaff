package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pmlog/logctl/internal/term"
	"github.com/pmlog/logctl/internal/version"
)

var versionCmd = &cobra.Command{
	Use:                "version",
	Short:              "Show logctl version",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE:               runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return paramErrorf("Invalid parameter '%s'.", args[0])
	}
	term.Printf("logctl %s\n", version.Version)
	return nil
}
