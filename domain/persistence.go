// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

//go:generate mockgen -destination=mocks/persistence.go -package=mocks . Persistence
type Run struct {
	Id             int64
	Started        time.Time
	Threshold      int
	HamTotal       int
	SpamTotal      int
	HamVocabulary  int
	SpamVocabulary int
}

type SourceTally struct {
	RunId  int64
	Source string
	Spam   int
	Ham    int
}

type SaveResult struct {
	Source    string
	Document  string
	Subject   string
	IsSpam    bool
	SpamScore float64
	HamScore  float64
}

type Persistence interface {
	Close() error
	StartRun(run Run) (int64, error)
	SaveTally(runId int64, source string, tally Tally) error
	SaveResults(runId int64, results []SaveResult) error
	Runs() ([]*Run, error)
	TalliesForRun(runId int64) ([]*SourceTally, error)
}
