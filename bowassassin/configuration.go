// SPDX-License-Identifier: GPL-3.0-or-later
package bowassassin

import "fmt"

type ConfigFunc func(c *configuration) error

func DryRun() ConfigFunc {
	return func(c *configuration) error {
		c.DryRun = true

		return nil
	}
}

func Threshold(threshold int) ConfigFunc {
	return func(c *configuration) error {
		if threshold < 1 {
			return fmt.Errorf("Threshold must be at least 1, got %d", threshold)
		}

		c.Threshold = threshold
		return nil
	}
}

func Concurrency(concurrency int) ConfigFunc {
	return func(c *configuration) error {
		if concurrency < 1 {
			return fmt.Errorf("Concurrency must be at least 1, got %d", concurrency)
		}

		c.Concurrency = concurrency
		return nil
	}
}

// RecordDocuments stores the outcome of every single document, not only the tallies.
func RecordDocuments() ConfigFunc {
	return func(c *configuration) error {
		c.RecordDocuments = true
		return nil
	}
}

// Progress registers callbacks run before a source is checked and with its report afterwards.
// Either may be nil.
func Progress(started func(source string), checked func(report *Report)) ConfigFunc {
	return func(c *configuration) error {
		c.Started = started
		c.Checked = checked
		return nil
	}
}

type configuration struct {
	DryRun bool

	Threshold   int
	Concurrency int

	RecordDocuments bool

	Started func(source string)
	Checked func(report *Report)
}
