// SPDX-License-Identifier: GPL-3.0-or-later
package cmd

import (
	"fmt"

	"github.com/CrawX/go-bow-assassin/bowassassin"

	"github.com/spf13/cobra"
)

func newEvaluateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Train and print the spam and ham counts of every check source",
		Long: `Train on the configured ham and spam sources, then classify every check source
and print how many of its documents are spam and how many are ham.

When no check sources are configured the training sources themselves are checked.
Results are recorded in Database unless DryRun is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd, opts)
		},
	}
}

func runEvaluate(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()
	progress := bowassassin.Progress(
		func(source string) {
			fmt.Fprintf(out, "Classifying %s..\n", source)
		},
		func(report *bowassassin.Report) {
			fmt.Fprintf(out, "Spam count : %d\n", report.Tally.Spam)
			fmt.Fprintf(out, "Ham count : %d\n", report.Tally.Ham)
		},
	)

	env, err := setup(cmd, opts, true, progress)
	if err != nil {
		return err
	}
	defer env.Close()

	fmt.Fprintln(out, "Training..")
	model, err := env.assassin.Train(env.hamSources, env.spamSources)
	if err != nil {
		return err
	}

	_, err = env.assassin.Check(cmd.Context(), model, env.checkSources)
	return err
}
