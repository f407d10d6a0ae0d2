// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/CrawX/go-bow-assassin/domain"
	"github.com/CrawX/go-bow-assassin/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPersistence(t *testing.T) *Persistence {
	t.Helper()
	log.InitLogging("error")
	p, err := NewPersistence(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })
	return p
}

func TestNewPersistence_File(t *testing.T) {
	log.InitLogging("error")
	path := filepath.Join(t.TempDir(), "results.db")

	p, err := NewPersistence(path)
	require.NoError(t, err)
	_, err = p.StartRun(domain.Run{Threshold: 100})
	require.NoError(t, err)
	require.NoError(t, p.Close())

	// reopening applies no migrations twice and keeps the data
	p, err = NewPersistence(path)
	require.NoError(t, err)
	defer p.Close()
	runs, err := p.Runs()
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestPersistence_Runs(t *testing.T) {
	p := newTestPersistence(t)

	runs, err := p.Runs()
	require.NoError(t, err)
	assert.Empty(t, runs)

	started := time.Date(2026, 10, 14, 12, 30, 0, 0, time.UTC)
	id, err := p.StartRun(domain.Run{
		Started:        started,
		Threshold:      100,
		HamTotal:       250,
		SpamTotal:      310,
		HamVocabulary:  2,
		SpamVocabulary: 3,
	})
	require.NoError(t, err)

	second, err := p.StartRun(domain.Run{Threshold: 5})
	require.NoError(t, err)
	assert.Greater(t, second, id)

	runs, err = p.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, id, runs[0].Id)
	assert.True(t, started.Equal(runs[0].Started), runs[0].Started)
	assert.Equal(t, 100, runs[0].Threshold)
	assert.Equal(t, 250, runs[0].HamTotal)
	assert.Equal(t, 310, runs[0].SpamTotal)
	assert.Equal(t, 2, runs[0].HamVocabulary)
	assert.Equal(t, 3, runs[0].SpamVocabulary)
	assert.Equal(t, 5, runs[1].Threshold)
	assert.WithinDuration(t, time.Now(), runs[1].Started, time.Minute)
}

func TestPersistence_Tallies(t *testing.T) {
	p := newTestPersistence(t)

	id, err := p.StartRun(domain.Run{Threshold: 100})
	require.NoError(t, err)

	require.NoError(t, p.SaveTally(id, "data/enron6/spam", domain.Tally{Spam: 10, Ham: 2}))
	require.NoError(t, p.SaveTally(id, "data/enron6/ham", domain.Tally{Spam: 1, Ham: 20}))
	// saving the same source again replaces the tally
	require.NoError(t, p.SaveTally(id, "data/enron6/ham", domain.Tally{Spam: 3, Ham: 18}))

	tallies, err := p.TalliesForRun(id)
	require.NoError(t, err)
	assert.Equal(t, []*domain.SourceTally{
		{RunId: id, Source: "data/enron6/ham", Spam: 3, Ham: 18},
		{RunId: id, Source: "data/enron6/spam", Spam: 10, Ham: 2},
	}, tallies)

	tallies, err = p.TalliesForRun(id + 1)
	require.NoError(t, err)
	assert.Empty(t, tallies)
}

func TestPersistence_TallyForUnknownRun(t *testing.T) {
	p := newTestPersistence(t)

	err := p.SaveTally(99, "src", domain.Tally{})
	assert.Error(t, err)
}

func TestPersistence_SaveResults(t *testing.T) {
	p := newTestPersistence(t)

	id, err := p.StartRun(domain.Run{Threshold: 100})
	require.NoError(t, err)

	results := []domain.SaveResult{
		{Source: "check", Document: "check/1.txt", IsSpam: true, SpamScore: -0.15, HamScore: -1.9},
		{Source: "check", Document: "check/2.txt", Subject: "Hello", IsSpam: false, SpamScore: -3, HamScore: -1},
		{Source: "other", Document: "other/1.txt", IsSpam: false},
	}
	require.NoError(t, p.SaveResults(id, results))
	require.NoError(t, p.SaveResults(id, nil))

	saved, err := p.ResultsForRun(id, "check")
	require.NoError(t, err)
	assert.Equal(t, results[:2], saved)

	saved, err = p.ResultsForRun(id, "other")
	require.NoError(t, err)
	assert.Equal(t, results[2:], saved)
}

func TestPersistence_SaveResultsRollsBack(t *testing.T) {
	p := newTestPersistence(t)

	err := p.SaveResults(42, []domain.SaveResult{{Source: "check", Document: "a"}})
	assert.Error(t, err)

	saved, err := p.ResultsForRun(42, "check")
	require.NoError(t, err)
	assert.Empty(t, saved)
}
