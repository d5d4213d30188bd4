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


package similarity

import (
	"math"

	"github.com/poiesic/lessonsim/core"
)

// Jaccard returns |a ∩ b| / |a ∪ b|.
// An empty set on either side scores 0: absence is no evidence of similarity.
func Jaccard(a, b core.TagSet) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	shared := a.IntersectionSize(b)
	union := len(a) + len(b) - shared
	return float64(shared) / float64(union)
}

// Shared returns the tags present in both sets.
func Shared(a, b core.TagSet) core.TagSet {
	return a.Intersect(b)
}

// Age returns the inclusive overlap of two age ranges divided by the
// length of the longer range. Missing ranges score 0.
func Age(a, b *core.IntRange) float64 {
	if a == nil || b == nil {
		return 0
	}
	overlap := min(a.Max, b.Max) - max(a.Min, b.Min) + 1
	if overlap <= 0 {
		return 0
	}
	longest := max(a.Len(), b.Len())
	if longest <= 0 {
		return 0
	}
	return float64(overlap) / float64(longest)
}

// Duration returns the ratio of the shorter duration to the longer one.
// Missing or non-positive durations score 0.
func Duration(a, b float64) float64 {
	if !(a > 0) || !(b > 0) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return 0
	}
	return min(a, b) / max(a, b)
}

// Domain scores 1 when both lessons share the same domain and 0 otherwise,
// including when either lesson has no domain.
func Domain(a, b core.TagID) float64 {
	if a == core.NoTag || b == core.NoTag {
		return 0
	}
	if a == b {
		return 1
	}
	return 0
}

// Score computes the raw similarity of one dimension.
func Score(d core.Dimension, a, b *core.Lesson) float64 {
	switch d {
	case core.DimensionAge:
		return Age(a.Age, b.Age)
	case core.DimensionDuration:
		return Duration(a.Duration, b.Duration)
	case core.DimensionDomain:
		return Domain(a.Domain, b.Domain)
	}
	return Jaccard(a.Tags(d), b.Tags(d))
}

// Explain computes the per-dimension breakdown of the similarity between
// two lessons under the given weights.
func Explain(a, b *core.Lesson, w core.Weights) core.Breakdown {
	var bd core.Breakdown
	for _, d := range core.Dimensions() {
		score := Score(d, a, b)
		weight := w.Of(d)
		line := core.DimensionScore{
			Dimension:    d,
			Score:        score,
			Weight:       weight,
			Contribution: score * weight,
		}
		if d.IsSet() {
			line.Shared = Shared(a.Tags(d), b.Tags(d))
		}
		bd.Scores[d] = line
	}
	return bd
}

// Composite returns the weighted similarity of two lessons.
// It is derived from Explain so the total always matches the breakdown.
// Composite(a, b, w) == Composite(b, a, w) for all inputs.
func Composite(a, b *core.Lesson, w core.Weights) float64 {
	return Explain(a, b, w).Total()
}
