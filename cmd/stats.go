// SPDX-License-Identifier: GPL-3.0-or-later
package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Train and print vocabulary and total statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd, opts, false)
			if err != nil {
				return err
			}
			defer env.Close()

			model, err := env.assassin.Train(env.hamSources, env.spamSources)
			if err != nil {
				return err
			}

			stats := model.Stats()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Threshold\t%d\n", stats.Threshold)
			fmt.Fprintf(w, "\tham\tspam\n")
			fmt.Fprintf(w, "Total\t%d\t%d\n", stats.HamTotal, stats.SpamTotal)
			fmt.Fprintf(w, "Vocabulary\t%d\t%d\n", stats.HamVocabulary, stats.SpamVocabulary)
			fmt.Fprintf(w, "Qualifying\t%d\t%d\n", stats.HamQualifying, stats.SpamQualifying)
			fmt.Fprintf(w, "Admitted\t%d\n", stats.Admitted)

			return w.Flush()
		},
	}
}
