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
	"cmp"
	"context"
	"slices"

	"github.com/poiesic/lessonsim/core"
	"github.com/poiesic/lessonsim/similarity"
)

// Rank scores every catalog lesson against query and returns the best matches.
//
// Candidates identical to the query (the same pointer, or the same non-zero
// Id) are skipped. Candidates scoring below minSimilarity are dropped. The
// remaining matches are ordered by descending score; equal scores keep their
// catalog order. At most topK matches are returned, and none when topK <= 0.
//
// The context is checked between candidates.
func Rank(ctx context.Context, query *core.Lesson, catalog []*core.Lesson, w core.Weights, topK int, minSimilarity float64) ([]*core.Match, error) {
	return rank(ctx, query, catalog, w, topK, minSimilarity, &noopMonitor{})
}

func rank(ctx context.Context, query *core.Lesson, catalog []*core.Lesson, w core.Weights, topK int, minSimilarity float64, monitor SearchMonitor) ([]*core.Match, error) {
	if query == nil {
		return nil, ErrQueryRequired
	}
	if err := core.ValidateWeights(w); err != nil {
		return nil, err
	}
	if topK <= 0 {
		return []*core.Match{}, nil
	}

	matches := make([]*core.Match, 0, min(len(catalog), 64))
	for _, candidate := range catalog {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if candidate == nil || isSelf(query, candidate) {
			continue
		}

		bd := similarity.Explain(query, candidate, w)
		match := &core.Match{
			Lesson:    candidate,
			Score:     bd.Total(),
			Breakdown: bd,
		}
		monitor.Scored(match)

		if match.Score < minSimilarity {
			monitor.Filtered(match)
			continue
		}
		matches = append(matches, match)
	}

	slices.SortStableFunc(matches, func(a, b *core.Match) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// isSelf reports whether candidate is the query itself.
func isSelf(query, candidate *core.Lesson) bool {
	return candidate == query || (query.Id != 0 && candidate.Id == query.Id)
}
