// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/CrawX/go-bow-assassin/domain"
	"github.com/CrawX/go-bow-assassin/log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

// Persistence records evaluation runs in sqlite. The trained model itself is never stored.
type Persistence struct {
	db *sqlx.DB
	l  *logrus.Logger
}

func NewPersistence(datasource string) (*Persistence, error) {
	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_PERSISTENCE)
	l.WithField("file", datasource).Info("Connected")

	for _, pragma := range []string{
		`PRAGMA journal_mode=WAL`,
		`PRAGMA synchronous=normal`,
		`PRAGMA foreign_keys=ON`,
	} {
		_, err = db.Exec(pragma)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("could not execute %q: %w", pragma, err)
		}
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrationSource, migrate.Up)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &Persistence{
		db: db,
		l:  l,
	}, nil
}

func (p *Persistence) Close() error {
	err := p.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	p.l.Info("Disconnected")
	return nil
}

func (p *Persistence) StartRun(run domain.Run) (int64, error) {
	if run.Started.IsZero() {
		run.Started = time.Now()
	}

	result, err := p.db.Exec(
		"INSERT INTO runs (started, threshold, hamtotal, spamtotal, hamvocabulary, spamvocabulary) VALUES (?, ?, ?, ?, ?, ?)",
		run.Started.UTC(), run.Threshold, run.HamTotal, run.SpamTotal, run.HamVocabulary, run.SpamVocabulary,
	)
	if err != nil {
		return 0, fmt.Errorf("could not save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("could not get run id: %w", err)
	}

	p.l.WithFields(logrus.Fields{"run": id, "threshold": run.Threshold}).Debug("Persisted run")
	return id, nil
}

func (p *Persistence) SaveTally(runId int64, source string, tally domain.Tally) error {
	_, err := p.db.Exec(
		"INSERT OR REPLACE INTO tallies (runid, source, spam, ham) VALUES (?, ?, ?, ?)",
		runId, source, tally.Spam, tally.Ham,
	)
	if err != nil {
		return fmt.Errorf("could not save tally: %w", err)
	}

	p.l.WithFields(logrus.Fields{"run": runId, "source": source, "spam": tally.Spam, "ham": tally.Ham}).Debug("Persisted tally")
	return nil
}

func (p *Persistence) SaveResults(runId int64, results []domain.SaveResult) error {
	tx, err := p.db.BeginTxx(context.TODO(), nil)
	if err != nil {
		return fmt.Errorf("could not start transaction: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO results (runid, source, document, subject, isspam, spamscore, hamscore) VALUES (?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return txEnd(tx, fmt.Errorf("could not prepare statement: %w", err))
	}
	defer stmt.Close()

	for _, r := range results {
		_, err := stmt.Exec(
			runId, r.Source, r.Document, r.Subject, r.IsSpam, r.SpamScore, r.HamScore,
		)
		if err != nil {
			return txEnd(tx, fmt.Errorf("could not save result: %w", err))
		}
	}

	return txEnd(tx, nil)
}

func (p *Persistence) Runs() ([]*domain.Run, error) {
	dbRuns := []struct {
		Id             int64
		Started        time.Time
		Threshold      int
		HamTotal       int
		SpamTotal      int
		HamVocabulary  int
		SpamVocabulary int
	}{}

	err := p.db.Select(
		&dbRuns,
		`SELECT id, started, threshold, hamtotal, spamtotal, hamvocabulary, spamvocabulary FROM runs ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	runs := []*domain.Run{}
	for _, r := range dbRuns {
		runs = append(
			runs,
			&domain.Run{
				Id:             r.Id,
				Started:        r.Started,
				Threshold:      r.Threshold,
				HamTotal:       r.HamTotal,
				SpamTotal:      r.SpamTotal,
				HamVocabulary:  r.HamVocabulary,
				SpamVocabulary: r.SpamVocabulary,
			},
		)
	}

	return runs, nil
}

func (p *Persistence) TalliesForRun(runId int64) ([]*domain.SourceTally, error) {
	tallies := []*domain.SourceTally{}
	err := p.db.Select(
		&tallies,
		`SELECT runid, source, spam, ham FROM tallies WHERE runid = ? ORDER BY source`,
		runId,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	return tallies, nil
}

// ResultsForRun returns the recorded documents of one source, mainly for inspection and tests.
func (p *Persistence) ResultsForRun(runId int64, source string) ([]domain.SaveResult, error) {
	results := []domain.SaveResult{}
	err := p.db.Select(
		&results,
		`SELECT source, document, subject, isspam, spamscore, hamscore FROM results WHERE runid = ? AND source = ? ORDER BY id`,
		runId, source,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	return results, nil
}

func txEnd(tx *sqlx.Tx, err error) error {
	if err == nil {
		err = tx.Commit()
		if err != nil {
			return fmt.Errorf("could not commit tx: %w", err)
		}
		return nil
	}

	rollbackErr := tx.Rollback()
	if rollbackErr != nil {
		return fmt.Errorf("%s, could not rollback tx: %w", err.Error(), rollbackErr)
	}
	return err
}
