// SPDX-License-Identifier: GPL-3.0-or-later
package classifier

import (
	"context"
	"fmt"

	"github.com/CrawX/go-bow-assassin/domain"
	"github.com/CrawX/go-bow-assassin/log"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ConcurrentClassifier scores the documents of a source on up to concurrency goroutines.
// The source itself is walked on the calling goroutine.
type ConcurrentClassifier struct {
	model       *Model
	concurrency int

	l *logrus.Logger
}

func NewConcurrentClassifier(model *Model, concurrency int) *ConcurrentClassifier {
	if concurrency < 1 {
		concurrency = 1
	}
	return &ConcurrentClassifier{
		model:       model,
		concurrency: concurrency,
		l:           log.Logger(log.LOG_CLASSIFIER),
	}
}

// ClassifyAll returns one result per document in the order the source produced them.
func (cc *ConcurrentClassifier) ClassifyAll(ctx context.Context, src domain.DocumentSource) ([]*domain.Result, domain.Tally, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cc.concurrency)

	results := []*domain.Result{}
	walkErr := src.Walk(func(doc *domain.Document) error {
		if err := gctx.Err(); err != nil {
			return err
		}

		result := &domain.Result{
			Document: doc.Id,
			Subject:  doc.Subject,
		}
		results = append(results, result)

		raw := doc.Raw
		g.Go(func() error {
			result.Outcome = cc.model.ClassifyDocument(raw)
			return nil
		})
		return nil
	})

	err := g.Wait()
	if walkErr != nil {
		return nil, domain.Tally{}, fmt.Errorf("could not classify %s: %w", src.Name(), walkErr)
	}
	if err != nil {
		return nil, domain.Tally{}, err
	}

	tally := domain.Tally{}
	for _, result := range results {
		tally.Add(result.Outcome)
	}
	cc.l.WithFields(logrus.Fields{"source": src.Name(), "documents": len(results), "concurrency": cc.concurrency}).Debug("Classified source")

	return results, tally, nil
}
