// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"os"

	"github.com/CrawX/go-bow-assassin/cmd"
	"github.com/CrawX/go-bow-assassin/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Logger(log.LOG_MAIN).WithField("error", err).Error("Failed")
		os.Exit(1)
	}
}
