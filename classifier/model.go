// SPDX-License-Identifier: GPL-3.0-or-later
package classifier

import (
	"errors"
	"fmt"
	"math"

	"github.com/CrawX/go-bow-assassin/bow"
	"github.com/CrawX/go-bow-assassin/corpus"
	"github.com/CrawX/go-bow-assassin/domain"
)

// DefaultThreshold is the minimum number of occurrences for a token to count.
const DefaultThreshold = 100

var (
	ErrInsufficientTrainingData = errors.New("insufficient training data")
	ErrInvalidThreshold         = errors.New("threshold must be at least 1")
)

// Model is a trained ham/spam bag-of-words model. It is never modified after NewModel and
// can be shared between goroutines.
type Model struct {
	ham       bow.Table
	spam      bow.Table
	hamTotal  int
	spamTotal int
	threshold int
}

// NewModel takes ownership of both tables, callers must not modify them afterwards.
// threshold is used for the per-table totals and for admitting document tokens.
func NewModel(ham, spam bow.Table, threshold int) (*Model, error) {
	if threshold < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidThreshold, threshold)
	}

	m := &Model{
		ham:       ham,
		spam:      spam,
		hamTotal:  bow.TotalQualifyingCount(ham, threshold),
		spamTotal: bow.TotalQualifyingCount(spam, threshold),
		threshold: threshold,
	}

	if m.hamTotal == 0 {
		return nil, fmt.Errorf("%w: no ham token occurs at least %d times", ErrInsufficientTrainingData, threshold)
	}
	if m.spamTotal == 0 {
		return nil, fmt.Errorf("%w: no spam token occurs at least %d times", ErrInsufficientTrainingData, threshold)
	}

	return m, nil
}

func (m *Model) Threshold() int {
	return m.threshold
}

func (m *Model) HamTotal() int {
	return m.hamTotal
}

func (m *Model) SpamTotal() int {
	return m.spamTotal
}

// ClassifyDocument scores a single raw document.
func (m *Model) ClassifyDocument(doc []byte) domain.Outcome {
	tokens := bow.NewTable()
	tokens.Add(doc)
	return m.Score(tokens)
}

// Score computes
//
//	Σ ln P(t|spam) + ln P(spam) - Σ ln P(t)
//	Σ ln P(t|ham)  + ln P(ham)  - Σ ln P(t)
//
// over the distinct tokens of a document. Only the keys of tokens are used. Tokens seen fewer
// than threshold times in both training tables together are ignored, and a class in which a
// token never occurred gets no contribution for it.
func (m *Model) Score(tokens bow.Table) domain.Outcome {
	total := float64(m.hamTotal + m.spamTotal)
	hamPrior := math.Log(float64(m.hamTotal) / total)
	spamPrior := math.Log(float64(m.spamTotal) / total)

	docLogp, spamLogp, hamLogp := 0.0, 0.0, 0.0
	for token := range tokens {
		spamFreq := m.spam[token]
		hamFreq := m.ham[token]

		n := spamFreq + hamFreq
		if n < m.threshold {
			continue
		}
		if spamFreq != 0 {
			spamLogp += math.Log(float64(spamFreq) / float64(m.spamTotal))
		}
		if hamFreq != 0 {
			hamLogp += math.Log(float64(hamFreq) / float64(m.hamTotal))
		}
		if n != 0 {
			docLogp += math.Log(float64(n) / total)
		}
	}

	return domain.Outcome{
		SpamScore: spamLogp + spamPrior - docLogp,
		HamScore:  hamLogp + hamPrior - docLogp,
	}
}

// ClassifySource classifies every document of src in order.
func (m *Model) ClassifySource(src domain.DocumentSource) (domain.Tally, error) {
	tally := domain.Tally{}
	err := src.Walk(func(doc *domain.Document) error {
		tally.Add(m.ClassifyDocument(doc.Raw))
		return nil
	})
	if err != nil {
		return domain.Tally{}, fmt.Errorf("could not classify %s: %w", src.Name(), err)
	}

	return tally, nil
}

// ClassifyDirectory classifies every regular file below path.
func (m *Model) ClassifyDirectory(path string) (domain.Tally, error) {
	return m.ClassifySource(corpus.NewDirectory(path))
}

type Stats struct {
	Threshold int

	HamTotal  int
	SpamTotal int

	HamVocabulary  int
	SpamVocabulary int

	HamQualifying  int
	SpamQualifying int

	// Admitted counts the distinct tokens whose combined count reaches the threshold.
	Admitted int
}

func (m *Model) Stats() Stats {
	admitted := 0
	for token, hamFreq := range m.ham {
		if hamFreq+m.spam[token] >= m.threshold {
			admitted++
		}
	}
	for token, spamFreq := range m.spam {
		if _, ok := m.ham[token]; !ok && spamFreq >= m.threshold {
			admitted++
		}
	}

	return Stats{
		Threshold:      m.threshold,
		HamTotal:       m.hamTotal,
		SpamTotal:      m.spamTotal,
		HamVocabulary:  len(m.ham),
		SpamVocabulary: len(m.spam),
		HamQualifying:  m.ham.Qualifying(m.threshold),
		SpamQualifying: m.spam.Qualifying(m.threshold),
		Admitted:       admitted,
	}
}
