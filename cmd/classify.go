// SPDX-License-Identifier: GPL-3.0-or-later
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newClassifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "classify FILE...",
		Short: "Train and print both scores and the label of each file",
		Args:  cobra.MinimumNArgs(1),
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

			out := cmd.OutOrStdout()
			for _, file := range args {
				raw, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("could not read %s: %w", file, err)
				}

				outcome := model.ClassifyDocument(raw)
				fmt.Fprintf(out, "%s\t%s\tspam=%.6f\tham=%.6f\n", file, outcome.Class(), outcome.SpamScore, outcome.HamScore)
			}

			return nil
		},
	}
}
