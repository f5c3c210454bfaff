package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pmlog/logctl/internal/kmsg"
	"github.com/pmlog/logctl/internal/pmlog"
)

// writeKernelMessage is swapped by tests to avoid touching the device.
var writeKernelMessage = kmsg.Write

var klogCmd = &cobra.Command{
	Use:   "klog [-p <level>] <msg>",
	Short: "Log a kernel message",
	Long: `Write a single test line to the kernel message interface. With -p the
line is prefixed with the numeric priority of the given level; without
it the kernel applies its default priority.`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	RunE:               runKlog,
}

func init() {
	rootCmd.AddCommand(klogCmd)
}

func runKlog(cmd *cobra.Command, args []string) error {
	var (
		level     pmlog.Level
		haveLevel bool
		msg       string
		haveMsg   bool
	)

	for i := 0; i < len(args); {
		arg := args[i]
		switch {
		case strings.HasPrefix(arg, "-"):
			if arg != "-p" {
				return paramErrorf("Invalid parameter '%s'.", arg)
			}
			i++
			if i >= len(args) {
				return paramErrorf("Invalid parameter: -p requires value")
			}
			parsed, ok := pmlog.ParseLevel(args[i])
			if !ok {
				return paramErrorf("Invalid level '%s'.", args[i])
			}
			level, haveLevel = parsed, true
			i++
		case !haveMsg:
			msg, haveMsg = arg, true
			i++
		default:
			return paramErrorf("Invalid parameter '%s'.", arg)
		}
	}

	if !haveMsg {
		return paramErrorf("Message not specified.")
	}

	// "-p none" behaves like no -p at all: the priority prefix is
	// omitted and the kernel applies its default.
	priority := -1
	if haveLevel && level != pmlog.LevelNone {
		priority = int(level)
	}
	if err := writeKernelMessage(priority, msg); err != nil {
		return runErrorf("Error %v", err)
	}
	return nil
}
