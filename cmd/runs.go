// SPDX-License-Identifier: GPL-3.0-or-later
package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/CrawX/go-bow-assassin/persistence"

	"github.com/spf13/cobra"
)

func newRunsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List the evaluation runs recorded in Database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if len(conf.Database) == 0 {
				return errors.New("no Database configured")
			}

			p, err := persistence.NewPersistence(conf.Database)
			if err != nil {
				return fmt.Errorf("could not open database: %w", err)
			}
			defer p.Close()

			runs, err := p.Runs()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, run := range runs {
				fmt.Fprintf(
					out, "Run %d started %s threshold %d ham %d spam %d\n",
					run.Id, run.Started.Local().Format(time.RFC3339), run.Threshold, run.HamTotal, run.SpamTotal,
				)

				tallies, err := p.TalliesForRun(run.Id)
				if err != nil {
					return err
				}
				for _, tally := range tallies {
					fmt.Fprintf(out, "\t%s\tspam %d\tham %d\n", tally.Source, tally.Spam, tally.Ham)
				}
			}

			return nil
		},
	}
}
