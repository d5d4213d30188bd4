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

import "errors"

// Domain validation errors
var (
	// ErrInvalidLesson indicates a Lesson failed validation.
	ErrInvalidLesson = errors.New("invalid lesson")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrInvalidAgeRange indicates a negative or inverted age range.
	ErrInvalidAgeRange = errors.New("invalid age range")

	// ErrInvalidGroupSize indicates a negative or inverted group size range.
	ErrInvalidGroupSize = errors.New("invalid group size range")

	// ErrInvalidDuration indicates a negative or non-finite duration.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrUnsortedTagSet indicates a tag set that is not sorted or has duplicates.
	ErrUnsortedTagSet = errors.New("tag set is not normalized")

	// ErrInvalidWeights indicates a negative or non-finite weight.
	ErrInvalidWeights = errors.New("invalid weights")

	// ErrInvalidTagKind indicates an unknown tag kind name.
	ErrInvalidTagKind = errors.New("invalid tag kind")

	// ErrMalformedRecord indicates serialized lesson bytes that cannot be decoded.
	ErrMalformedRecord = errors.New("malformed record")
)
