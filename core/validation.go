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
	"fmt"
	"math"
)

// ValidateLesson validates a Lesson according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Age range, when present, must be non-negative with Min <= Max
//   - Group size range, when present, must be non-negative with Min <= Max
//   - Duration must be finite and not negative (0 means unknown)
//   - Tag sets must be sorted and duplicate-free
//
// NOT validated:
//   - ID (0 is valid for transient query profiles)
//   - Domain (NoTag means the lesson has no domain)
func ValidateLesson(lesson *Lesson) error {
	if lesson == nil {
		return fmt.Errorf("%w: lesson is nil", ErrInvalidLesson)
	}

	if lesson.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidLesson, ErrEmptyTitle)
	}

	if lesson.Age != nil {
		if err := ValidateRange(*lesson.Age); err != nil {
			return fmt.Errorf("%w: %w: %w", ErrInvalidLesson, ErrInvalidAgeRange, err)
		}
	}

	if lesson.GroupSize != nil {
		if err := ValidateRange(*lesson.GroupSize); err != nil {
			return fmt.Errorf("%w: %w: %w", ErrInvalidLesson, ErrInvalidGroupSize, err)
		}
	}

	if !IsValidDuration(lesson.Duration) {
		return fmt.Errorf("%w: %w: %v", ErrInvalidLesson, ErrInvalidDuration, lesson.Duration)
	}

	for _, d := range Dimensions() {
		if !d.IsSet() {
			continue
		}
		if !lesson.Tags(d).IsNormalized() {
			return fmt.Errorf("%w: %s: %w", ErrInvalidLesson, d, ErrUnsortedTagSet)
		}
	}

	return nil
}

// ValidateRange checks that a range is non-negative and not inverted.
func ValidateRange(r IntRange) error {
	if r.Min < 0 || r.Max < 0 {
		return fmt.Errorf("negative bound in [%d,%d]", r.Min, r.Max)
	}
	if r.Min > r.Max {
		return fmt.Errorf("min %d greater than max %d", r.Min, r.Max)
	}
	return nil
}

// IsValidDuration checks that a duration is finite and not negative.
func IsValidDuration(hours float64) bool {
	return !math.IsNaN(hours) && !math.IsInf(hours, 0) && hours >= 0
}

// ValidateWeights checks that every weight is finite and not negative.
func ValidateWeights(w Weights) error {
	for _, d := range Dimensions() {
		v := w.Of(d)
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: %s weight %v", ErrInvalidWeights, d, v)
		}
	}
	return nil
}
