// SPDX-License-Identifier: GPL-3.0-or-later
package bowassassin

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDryRun(t *testing.T) {
	cfg := &configuration{}
	err := DryRun()(cfg)

	assert.Equal(t, cfg, &configuration{DryRun: true})
	assert.Nil(t, err)
}

func TestRecordDocuments(t *testing.T) {
	cfg := &configuration{}
	err := RecordDocuments()(cfg)

	assert.Equal(t, cfg, &configuration{RecordDocuments: true})
	assert.Nil(t, err)
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		name          string
		input         int
		expected      *configuration
		expectedError error
	}{
		{"ok", 5, &configuration{Threshold: 5}, nil},
		{"one", 1, &configuration{Threshold: 1}, nil},
		{"zero", 0, nil, fmt.Errorf("Threshold must be at least 1, got 0")},
		{"negative", -1, nil, fmt.Errorf("Threshold must be at least 1, got -1")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &configuration{}
			err := Threshold(tc.input)(cfg)
			if tc.expected != nil {
				assert.Equal(t, tc.expected, cfg)
				assert.Nil(t, err)
			} else {
				assert.Equal(t, tc.expectedError, err)
			}
		})
	}
}

func TestConcurrency(t *testing.T) {
	tests := []struct {
		name          string
		input         int
		expected      *configuration
		expectedError error
	}{
		{"ok", 16, &configuration{Concurrency: 16}, nil},
		{"zero", 0, nil, fmt.Errorf("Concurrency must be at least 1, got 0")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &configuration{}
			err := Concurrency(tc.input)(cfg)
			if tc.expected != nil {
				assert.Equal(t, tc.expected, cfg)
				assert.Nil(t, err)
			} else {
				assert.Equal(t, tc.expectedError, err)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	started := []string{}
	checked := []string{}

	cfg := &configuration{}
	err := Progress(
		func(source string) { started = append(started, source) },
		func(report *Report) { checked = append(checked, report.Source) },
	)(cfg)
	assert.Nil(t, err)

	cfg.Started("a")
	cfg.Checked(&Report{Source: "a"})
	assert.Equal(t, []string{"a"}, started)
	assert.Equal(t, []string{"a"}, checked)
}
