package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "frequentwords <input> <min-count> <output>",
		Short: "List the words of a text file that occur at least min-count times",
		Long: `frequentwords reads a text file, counts every word with both a sorted
linked list and a binary search tree, drops the words seen fewer than
min-count times and writes the rest, one "count  word" pair per line,
in alphabetical order.`,
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			minCount, err := strconv.Atoi(args[1])
			if err != nil || minCount < 1 {
				return fmt.Errorf("min-count must be a positive integer, got %q", args[1])
			}

			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			setupLogging(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

			return run(cmd.Context(), cfg, options{
				inputPath:  args[0],
				minCount:   minCount,
				outputPath: args[2],
			}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	return cmd
}
