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


package storage

import (
	"context"

	"github.com/poiesic/lessonsim/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// LessonRepository provides operations for managing the lesson catalog.
type LessonRepository interface {
	Repository

	// AddLessons adds one or more lessons to the catalog.
	// Generates new IDs from a sequence and sets InsertedAt and UpdatedAt.
	// Returns ErrDuplicateKey if a lesson's Key is already in use.
	// Lessons failing core.ValidateLesson are rejected.
	AddLessons(ctx context.Context, lessons ...*core.Lesson) ([]*core.Lesson, error)

	// UpdateLessons replaces existing lessons.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any lesson doesn't exist.
	UpdateLessons(ctx context.Context, lessons ...*core.Lesson) ([]*core.Lesson, error)

	// DeleteLessons removes lessons by their IDs, along with their key index entries.
	// Returns ErrNotFound if any lesson doesn't exist.
	DeleteLessons(ctx context.Context, ids ...core.ID) error

	// GetLesson retrieves a single lesson by ID.
	// Returns ErrNotFound if the lesson doesn't exist.
	GetLesson(ctx context.Context, id core.ID) (*core.Lesson, error)

	// GetLessons retrieves multiple lessons by their IDs.
	// Returns only the lessons that exist (no error for missing lessons).
	GetLessons(ctx context.Context, ids ...core.ID) ([]*core.Lesson, error)

	// FindLessonByKey finds a lesson by its external key.
	// Returns ErrNotFound if no lesson carries the key.
	FindLessonByKey(ctx context.Context, key string) (*core.Lesson, error)

	// AllLessons returns the whole catalog in insertion order.
	AllLessons(ctx context.Context) ([]*core.Lesson, error)

	// CountLessons returns the number of lessons in the catalog.
	CountLessons(ctx context.Context) (int, error)
}
