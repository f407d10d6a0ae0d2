// SPDX-License-Identifier: GPL-3.0-or-later
package bowassassin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CrawX/go-bow-assassin/bow"
	"github.com/CrawX/go-bow-assassin/classifier"
	"github.com/CrawX/go-bow-assassin/domain"
	"github.com/CrawX/go-bow-assassin/log"
	"github.com/CrawX/go-bow-assassin/mail"

	"github.com/sirupsen/logrus"
)

const BatchSize = 50

// BowAssassin trains a model from labeled sources and checks other sources against it.
type BowAssassin struct {
	// persistence may be nil, nothing is recorded then
	persistence domain.Persistence

	configuration *configuration

	l *logrus.Logger
}

type Report struct {
	Source   string
	Tally    domain.Tally
	Results  []*domain.Result
	Duration time.Duration
}

func NewBowAssassin(persistence domain.Persistence, configFunc ...ConfigFunc) (*BowAssassin, error) {
	config := &configuration{
		Threshold:   classifier.DefaultThreshold,
		Concurrency: 1,
	}
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	if config.RecordDocuments && persistence == nil {
		return nil, errors.New("error applying configuration: RecordDocuments needs a persistence")
	}

	return &BowAssassin{
		persistence:   persistence,
		configuration: config,
		l:             log.Logger(log.LOG_BOWASSASSIN),
	}, nil
}

// Train builds one table per class, every source of a class is merged into its table.
func (ba *BowAssassin) Train(hamSources, spamSources []domain.DocumentSource) (*classifier.Model, error) {
	ham, err := ba.learn(domain.ClassHam, hamSources)
	if err != nil {
		return nil, err
	}

	spam, err := ba.learn(domain.ClassSpam, spamSources)
	if err != nil {
		return nil, err
	}

	model, err := classifier.NewModel(ham, spam, ba.configuration.Threshold)
	if err != nil {
		return nil, fmt.Errorf("could not build model: %w", err)
	}

	stats := model.Stats()
	ba.l.WithFields(logrus.Fields{
		"threshold":      stats.Threshold,
		"hamtotal":       stats.HamTotal,
		"spamtotal":      stats.SpamTotal,
		"hamvocabulary":  stats.HamVocabulary,
		"spamvocabulary": stats.SpamVocabulary,
		"admitted":       stats.Admitted,
	}).Info("Trained model")

	return model, nil
}

func (ba *BowAssassin) learn(class domain.Class, sources []domain.DocumentSource) (bow.Table, error) {
	table := bow.NewTable()
	for _, src := range sources {
		start := time.Now()
		baseSourceLogger := ba.l.WithFields(logrus.Fields{"source": src.Name(), "class": class})
		baseSourceLogger.Debug("Learning source")

		err := bow.AccumulateSource(src, table)
		if err != nil {
			return nil, fmt.Errorf("could not learn %s: %w", class, err)
		}

		baseSourceLogger.WithFields(logrus.Fields{"duration": time.Since(start), "vocabulary": len(table)}).Info("Learned source")
	}

	return table, nil
}

// Check classifies every source and returns one report per source in order.
func (ba *BowAssassin) Check(ctx context.Context, model *classifier.Model, sources []domain.DocumentSource) ([]*Report, error) {
	runId, record, err := ba.startRun(model)
	if err != nil {
		return nil, err
	}

	cc := classifier.NewConcurrentClassifier(model, ba.configuration.Concurrency)
	reports := []*Report{}
	for _, src := range sources {
		if ba.configuration.Started != nil {
			ba.configuration.Started(src.Name())
		}

		start := time.Now()
		results, tally, err := cc.ClassifyAll(ctx, src)
		if err != nil {
			return nil, err
		}

		for _, result := range results {
			ba.l.WithFields(logrus.Fields{
				"document": result.Document,
				"subject":  mail.ShortSubject(result.Subject),
				"isSpam":   result.Outcome.IsSpam(),
				"spam":     result.Outcome.SpamScore,
				"ham":      result.Outcome.HamScore,
			}).Trace("Checked document")
		}

		report := &Report{
			Source:   src.Name(),
			Tally:    tally,
			Results:  results,
			Duration: time.Since(start),
		}
		reports = append(reports, report)

		ba.l.WithFields(logrus.Fields{"source": report.Source, "duration": report.Duration, "spam": tally.Spam, "ham": tally.Ham}).Info("Checked source")

		if record {
			err = ba.record(runId, report)
			if err != nil {
				return nil, err
			}
		}

		if ba.configuration.Checked != nil {
			ba.configuration.Checked(report)
		}
	}

	return reports, nil
}

func (ba *BowAssassin) startRun(model *classifier.Model) (int64, bool, error) {
	if ba.persistence == nil {
		return 0, false, nil
	}

	if ba.configuration.DryRun {
		ba.l.Info("Not recording results due to dry-run")
		return 0, false, nil
	}

	stats := model.Stats()
	runId, err := ba.persistence.StartRun(domain.Run{
		Started:        time.Now(),
		Threshold:      stats.Threshold,
		HamTotal:       stats.HamTotal,
		SpamTotal:      stats.SpamTotal,
		HamVocabulary:  stats.HamVocabulary,
		SpamVocabulary: stats.SpamVocabulary,
	})
	if err != nil {
		return 0, false, fmt.Errorf("could not start run: %w", err)
	}

	ba.l.WithField("run", runId).Debug("Recording results")
	return runId, true, nil
}

func (ba *BowAssassin) record(runId int64, report *Report) error {
	if ba.configuration.RecordDocuments {
		saveResults := make([]domain.SaveResult, 0, len(report.Results))
		for _, r := range report.Results {
			saveResults = append(
				saveResults,
				domain.SaveResult{
					Source:    report.Source,
					Document:  r.Document,
					Subject:   r.Subject,
					IsSpam:    r.Outcome.IsSpam(),
					SpamScore: r.Outcome.SpamScore,
					HamScore:  r.Outcome.HamScore,
				},
			)
		}

		for _, batch := range partition(saveResults, BatchSize) {
			err := ba.persistence.SaveResults(runId, batch)
			if err != nil {
				return fmt.Errorf("could not save results for %s: %w", report.Source, err)
			}
		}
	}

	err := ba.persistence.SaveTally(runId, report.Source, report.Tally)
	if err != nil {
		return fmt.Errorf("could not save tally for %s: %w", report.Source, err)
	}

	return nil
}

// taken from https://github.com/golang/go/wiki/SliceTricks
func partition[T any](items []T, partitionSize int) [][]T {
	batches := make([][]T, 0, (len(items)+partitionSize-1)/partitionSize)

	for partitionSize < len(items) {
		items, batches = items[partitionSize:], append(batches, items[0:partitionSize:partitionSize])
	}
	if len(items) > 0 {
		batches = append(batches, items)
	}

	return batches
}
