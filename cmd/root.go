// SPDX-License-Identifier: GPL-3.0-or-later
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

type options struct {
	configFile string
	loglevel   string
	threshold  int
}

// NewRootCmd builds a fresh command tree, each call has its own flag state.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "bowassassin",
		Short: "Bag-of-words spam classifier",
		Long: `bowassassin learns word frequencies from ham and spam training corpora
(directory trees or IMAP folders) and classifies other documents with them.

Without a subcommand it runs evaluate.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "config.toml", "configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.loglevel, "loglevel", "", "log level, overrides Loglevel of the configuration")
	rootCmd.PersistentFlags().IntVar(&opts.threshold, "threshold", 0, "minimum token count, overrides Threshold of the configuration")

	rootCmd.AddCommand(newEvaluateCmd(opts))
	rootCmd.AddCommand(newClassifyCmd(opts))
	rootCmd.AddCommand(newStatsCmd(opts))
	rootCmd.AddCommand(newRunsCmd(opts))

	return rootCmd
}

// Execute runs the command line, an interrupt cancels a running check.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}
