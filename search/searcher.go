// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/lessonsim/core"
	"github.com/poiesic/lessonsim/storage"
)

// Searcher ranks the stored lesson catalog against query profiles.
type Searcher struct {
	repository    storage.LessonRepository
	weights       core.Weights
	minSimilarity float64
	poolSize      int
	logger        *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithWeights sets the dimension weights.
// Default is core.DefaultWeights().
func WithWeights(w core.Weights) Option {
	return func(s *Searcher) error {
		if err := core.ValidateWeights(w); err != nil {
			return err
		}
		s.weights = w
		return nil
	}
}

// WithMinSimilarity sets the score below which matches are dropped.
// Default is 0, which keeps every candidate.
func WithMinSimilarity(threshold float64) Option {
	return func(s *Searcher) error {
		s.minSimilarity = threshold
		return nil
	}
}

// WithPoolSize sets the worker pool size used by FindSimilarBatch.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 1 {
			size = 1
		}
		s.poolSize = size
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(repository storage.LessonRepository, opts ...Option) (*Searcher, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	s := &Searcher{
		repository: repository,
		weights:    core.DefaultWeights(),
		poolSize:   max(runtime.NumCPU(), 1),
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.logger = s.logger.With("component", "searcher")

	return s, nil
}

// Weights returns the dimension weights the searcher ranks with.
func (s *Searcher) Weights() core.Weights {
	return s.weights
}

// FindSimilar ranks the catalog against query.
// Returns up to topK matches, best first.
func (s *Searcher) FindSimilar(ctx context.Context, query *core.Lesson, topK int) ([]*core.Match, error) {
	return s.FindSimilarWithMonitor(ctx, query, topK, nil)
}

// FindSimilarWithMonitor ranks the catalog against query with monitoring.
// The monitor receives callbacks at each stage of the search process.
func (s *Searcher) FindSimilarWithMonitor(ctx context.Context, query *core.Lesson, topK int, monitor SearchMonitor) ([]*core.Match, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if query == nil {
		return nil, ErrQueryRequired
	}

	monitor.Start(query)

	catalog, err := s.repository.AllLessons(ctx)
	if err != nil {
		s.logger.Error("error loading catalog", "err", err)
		return nil, err
	}
	monitor.AfterCatalogLoad(len(catalog))

	results, err := rank(ctx, query, catalog, s.weights, topK, s.minSimilarity, monitor)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("ranked catalog", "catalog", len(catalog), "results", len(results), "topK", topK)
	monitor.Finish(results)

	return results, nil
}

// FindSimilarBatch ranks several queries against one catalog snapshot.
// Queries are ranked concurrently on a worker pool; results[i] holds the
// matches of queries[i]. If any query fails, the error of the earliest
// failing query is returned.
func (s *Searcher) FindSimilarBatch(ctx context.Context, queries []*core.Lesson, topK int) ([][]*core.Match, error) {
	if len(queries) == 0 {
		return [][]*core.Match{}, nil
	}

	catalog, err := s.repository.AllLessons(ctx)
	if err != nil {
		s.logger.Error("error loading catalog", "err", err)
		return nil, err
	}

	pool, err := ants.NewPool(min(s.poolSize, len(queries)))
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	results := make([][]*core.Match, len(queries))
	errs := make([]error, len(queries))
	var wg sync.WaitGroup

	for i, query := range queries {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			results[i], errs[i] = Rank(ctx, query, catalog, s.weights, topK, s.minSimilarity)
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			s.logger.Warn("batch query failed", "index", i, "err", err)
			return nil, err
		}
	}
	return results, nil
}

// FindByCriteria returns the stored lessons satisfying criteria, in catalog order.
func (s *Searcher) FindByCriteria(ctx context.Context, criteria Criteria) ([]*core.Lesson, error) {
	catalog, err := s.repository.AllLessons(ctx)
	if err != nil {
		s.logger.Error("error loading catalog", "err", err)
		return nil, err
	}
	return MatchCriteria(catalog, criteria), nil
}
