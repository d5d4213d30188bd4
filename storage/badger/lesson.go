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


package badger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/lessonsim/core"
	"github.com/poiesic/lessonsim/storage"
)

// LessonRepository implements storage.LessonRepository for BadgerDB.
type LessonRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.LessonRepository = (*LessonRepository)(nil)

// NewLessonRepository creates a new LessonRepository.
func NewLessonRepository(backend *Backend) (*LessonRepository, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}
	idSeq, err := backend.GetSequence(lessonIDSeq)
	if err != nil {
		return nil, err
	}

	return &LessonRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *LessonRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *LessonRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddLessons adds one or more lessons to the catalog.
func (r *LessonRepository) AddLessons(ctx context.Context, lessons ...*core.Lesson) ([]*core.Lesson, error) {
	for _, lesson := range lessons {
		if err := core.ValidateLesson(lesson); err != nil {
			return nil, err
		}
	}

	err := r.backend.WithTx(ctx, func(tx *badger.Txn) error {
		for _, lesson := range lessons {
			if lesson.Key != "" {
				taken, err := keyExists(tx, lesson.Key)
				if err != nil {
					return err
				}
				if taken {
					return fmt.Errorf("%w: lesson key %q", storage.ErrDuplicateKey, lesson.Key)
				}
			}

			id, err := r.nextID()
			if err != nil {
				return err
			}
			lesson.Id = id
			lesson.InsertedAt = now()
			lesson.UpdatedAt = lesson.InsertedAt

			if err := tx.Set(makeLessonKey(lesson.Id), storage.MarshalLesson(lesson)); err != nil {
				return err
			}
			if lesson.Key != "" {
				if err := tx.Set(makeLessonIndexKey(lesson.Key), storage.MarshalID(lesson.Id)); err != nil {
					return err
				}
			}
		}
		return nil
	}, true)
	if err != nil {
		return nil, err
	}

	r.backend.logger.Debug("lessons added", "count", len(lessons))
	return lessons, nil
}

// nextID draws the next lesson ID from the sequence.
func (r *LessonRepository) nextID() (core.ID, error) {
	nextID, err := r.idSeq.Next()
	if err != nil {
		return 0, err
	}
	// BadgerDB sequences can return 0 on first call, so we skip it
	if nextID == 0 {
		nextID, err = r.idSeq.Next()
		if err != nil {
			return 0, err
		}
	}
	return core.ID(nextID), nil
}

// UpdateLessons replaces existing lessons.
func (r *LessonRepository) UpdateLessons(ctx context.Context, lessons ...*core.Lesson) ([]*core.Lesson, error) {
	for _, lesson := range lessons {
		if err := core.ValidateLesson(lesson); err != nil {
			return nil, err
		}
	}

	err := r.backend.WithTx(ctx, func(tx *badger.Txn) error {
		for _, lesson := range lessons {
			key := makeLessonKey(lesson.Id)

			old, err := readLesson(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return fmt.Errorf("%w: lesson %d", storage.ErrNotFound, lesson.Id)
			}

			if old.Key != lesson.Key {
				if lesson.Key != "" {
					taken, err := keyExists(tx, lesson.Key)
					if err != nil {
						return err
					}
					if taken {
						return fmt.Errorf("%w: lesson key %q", storage.ErrDuplicateKey, lesson.Key)
					}
					if err := tx.Set(makeLessonIndexKey(lesson.Key), storage.MarshalID(lesson.Id)); err != nil {
						return err
					}
				}
				if old.Key != "" {
					if err := tx.Delete(makeLessonIndexKey(old.Key)); err != nil {
						return err
					}
				}
			}

			lesson.InsertedAt = old.InsertedAt
			lesson.UpdatedAt = now()
			if err := tx.Set(key, storage.MarshalLesson(lesson)); err != nil {
				return err
			}
		}
		return nil
	}, true)
	if err != nil {
		return nil, err
	}
	return lessons, nil
}

// DeleteLessons removes lessons by their IDs.
func (r *LessonRepository) DeleteLessons(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(ctx, func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeLessonKey(id)

			lesson, err := readLesson(tx, key)
			if err != nil {
				return err
			}
			if lesson == nil {
				return fmt.Errorf("%w: lesson %d", storage.ErrNotFound, id)
			}

			if lesson.Key != "" {
				if err := tx.Delete(makeLessonIndexKey(lesson.Key)); err != nil {
					return err
				}
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return nil
	}, true)
}

// GetLesson retrieves a single lesson by ID.
func (r *LessonRepository) GetLesson(ctx context.Context, id core.ID) (*core.Lesson, error) {
	var result *core.Lesson
	err := r.backend.WithTx(ctx, func(tx *badger.Txn) error {
		var err error
		result, err = readLesson(tx, makeLessonKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetLessons retrieves multiple lessons by their IDs.
func (r *LessonRepository) GetLessons(ctx context.Context, ids ...core.ID) ([]*core.Lesson, error) {
	var result []*core.Lesson
	err := r.backend.WithTx(ctx, func(tx *badger.Txn) error {
		for _, id := range ids {
			lesson, err := readLesson(tx, makeLessonKey(id))
			if err != nil {
				return err
			}
			if lesson != nil {
				result = append(result, lesson)
			}
		}
		return nil
	}, false)
	return result, err
}

// FindLessonByKey finds a lesson by its external key.
func (r *LessonRepository) FindLessonByKey(ctx context.Context, key string) (*core.Lesson, error) {
	var result *core.Lesson
	err := r.backend.WithTx(ctx, func(tx *badger.Txn) error {
		item, err := tx.Get(makeLessonIndexKey(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}

		var id core.ID
		err = item.Value(func(val []byte) error {
			id, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		result, err = readLesson(tx, makeLessonKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// AllLessons returns the whole catalog ordered by ID, which is insertion order.
func (r *LessonRepository) AllLessons(ctx context.Context) ([]*core.Lesson, error) {
	var results []*core.Lesson
	err := r.backend.WithTx(ctx, func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(lessonPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var lesson *core.Lesson
			err := iter.Item().Value(func(val []byte) error {
				var err error
				lesson, err = storage.UnmarshalLesson(val)
				return err
			})
			if err != nil {
				return err
			}
			results = append(results, lesson)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// CountLessons returns the number of lessons in the catalog.
func (r *LessonRepository) CountLessons(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(ctx, func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(lessonPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// keyExists reports whether an external key is already indexed.
func keyExists(tx *badger.Txn, key string) (bool, error) {
	_, err := tx.Get(makeLessonIndexKey(key))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return false, err
}

// readLesson reads a lesson from the transaction.
// Returns nil without error when the key does not exist.
func readLesson(tx *badger.Txn, key []byte) (*core.Lesson, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var lesson *core.Lesson
	err = item.Value(func(val []byte) error {
		var err error
		lesson, err = storage.UnmarshalLesson(val)
		return err
	})
	return lesson, err
}

// now returns the current time at the precision timestamps are stored with.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
