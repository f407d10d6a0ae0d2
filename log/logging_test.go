// SPDX-License-Identifier: GPL-3.0-or-later
package log

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGetLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"DEBUG", logrus.DebugLevel},
		{"trace", logrus.TraceLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"verbose", logrus.InfoLevel},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, getLevel(tc.input))
		})
	}
}

func TestPrefixLogger(t *testing.T) {
	InitLogging("info")
	buf := &bytes.Buffer{}
	SetOutput(buf)

	Logger(LOG_CLASSIFIER).WithField("spam", 3).Info("Classified")
	Logger(LOG_CLASSIFIER).Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "CL:\t")
	assert.Contains(t, out, "spam=3")
	assert.NotContains(t, out, "hidden")

	SetLogLevel("debug")
	Logger(LOG_CORPUS).Debug("visible")
	assert.Contains(t, buf.String(), "CO:\t")
}

func TestUnknownLoggerPanics(t *testing.T) {
	InitLogging("info")
	assert.Panics(t, func() { Logger("XX") })
}
