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


package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for persisted lessons.
// It is generated from database sequences or content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// IntRange is an inclusive integer range such as a target age span.
type IntRange struct {
	Min int
	Max int
}

// Len returns the number of integers covered by the range.
func (r IntRange) Len() int {
	return r.Max - r.Min + 1
}

// NewRange returns a pointer to a range, for use in optional fields.
func NewRange(min, max int) *IntRange {
	return &IntRange{Min: min, Max: max}
}

// Lesson is a pedagogical lesson profile, either persisted in the catalog
// or built transiently to describe a query.
type Lesson struct {
	Id          ID
	Key         string // External identifier assigned at ingestion (e.g. "lesson_001")
	Title       string
	Description string
	Domain      TagID // NoTag when the lesson has no domain
	Discipline  string
	Axes        TagSet
	Tools       TagSet
	Virtues     TagSet
	Strategies  TagSet
	Age         *IntRange // nil when unknown
	Duration    float64   // Hours; 0 when unknown
	GroupSize   *IntRange // nil when unknown
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// Tags returns the tag set for a set-valued dimension.
// Returns nil for scalar dimensions.
func (l *Lesson) Tags(d Dimension) TagSet {
	switch d {
	case DimensionAxes:
		return l.Axes
	case DimensionTools:
		return l.Tools
	case DimensionVirtues:
		return l.Virtues
	case DimensionStrategies:
		return l.Strategies
	}
	return nil
}

// Clone returns a deep copy of the lesson.
func (l *Lesson) Clone() *Lesson {
	c := *l
	c.Axes = l.Axes.Clone()
	c.Tools = l.Tools.Clone()
	c.Virtues = l.Virtues.Clone()
	c.Strategies = l.Strategies.Clone()
	if l.Age != nil {
		age := *l.Age
		c.Age = &age
	}
	if l.GroupSize != nil {
		size := *l.GroupSize
		c.GroupSize = &size
	}
	return &c
}

// DimensionScore is one line of a similarity breakdown.
type DimensionScore struct {
	Dimension    Dimension
	Score        float64 // Raw dimension similarity in [0,1]
	Weight       float64
	Contribution float64 // Score * Weight
	Shared       TagSet  // Shared tags; set-valued dimensions only
}

// Breakdown decomposes a composite similarity score per dimension.
// Scores are stored in Dimensions() order.
type Breakdown struct {
	Scores [DimensionCount]DimensionScore
}

// Get returns the score line for a dimension.
func (b Breakdown) Get(d Dimension) DimensionScore {
	return b.Scores[d]
}

// Total sums the contributions in dimension order.
func (b Breakdown) Total() float64 {
	var total float64
	for _, s := range b.Scores {
		total += s.Contribution
	}
	return total
}

// Match is a ranked catalog candidate.
type Match struct {
	Lesson    *Lesson
	Score     float64
	Breakdown Breakdown
}
