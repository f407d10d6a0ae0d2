// SPDX-License-Identifier: GPL-3.0-or-later
package classifier

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/CrawX/go-bow-assassin/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSource struct {
	docs []*domain.Document
	err  error
}

func (s *sliceSource) Name() string {
	return "slice"
}

func (s *sliceSource) Walk(fn func(doc *domain.Document) error) error {
	for _, doc := range s.docs {
		if err := fn(doc); err != nil {
			return err
		}
	}
	return s.err
}

func mixedSource(n int) *sliceSource {
	contents := []string{"free", "offer", "", "free offer", "offer of the day", "FREE FREE money"}
	src := &sliceSource{}
	for i := 0; i < n; i++ {
		src.docs = append(src.docs, &domain.Document{
			Id:  fmt.Sprintf("doc%d", i),
			Raw: []byte(contents[i%len(contents)]),
		})
	}
	return src
}

func Test_ClassifyAllMatchesSequential(t *testing.T) {
	model := freeOfferModel(t)
	src := mixedSource(100)

	expected, err := model.ClassifySource(src)
	require.NoError(t, err)

	for _, concurrency := range []int{0, 1, 3, 16} {
		t.Run(fmt.Sprintf("concurrency%d", concurrency), func(t *testing.T) {
			results, tally, err := NewConcurrentClassifier(model, concurrency).ClassifyAll(context.Background(), src)
			require.NoError(t, err)
			assert.Equal(t, expected, tally)
			require.Len(t, results, len(src.docs))
			for i, result := range results {
				assert.Equal(t, src.docs[i].Id, result.Document)
				assert.Equal(t, model.ClassifyDocument(src.docs[i].Raw), result.Outcome)
			}
		})
	}
}

func Test_ClassifyAllWalkError(t *testing.T) {
	model := freeOfferModel(t)
	src := mixedSource(3)
	src.err = errors.New("disk gone")

	results, tally, err := NewConcurrentClassifier(model, 2).ClassifyAll(context.Background(), src)
	assert.EqualError(t, err, "could not classify slice: disk gone")
	assert.Nil(t, results)
	assert.Equal(t, domain.Tally{}, tally)
}

func Test_ClassifyAllCanceled(t *testing.T) {
	model := freeOfferModel(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewConcurrentClassifier(model, 2).ClassifyAll(ctx, mixedSource(3))
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_ClassifyAllEmpty(t *testing.T) {
	model := freeOfferModel(t)

	results, tally, err := NewConcurrentClassifier(model, 4).ClassifyAll(context.Background(), &sliceSource{})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 0, tally.Total())
}
