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


package lessonsim

import (
	"log/slog"
	"sync"

	"github.com/poiesic/lessonsim/ai"
	"github.com/poiesic/lessonsim/ai/openai"
	"github.com/poiesic/lessonsim/ingestion"
	"github.com/poiesic/lessonsim/query"
	"github.com/poiesic/lessonsim/search"
	"github.com/poiesic/lessonsim/storage"
	"github.com/poiesic/lessonsim/storage/badger"
	"github.com/poiesic/lessonsim/vocab"
)

// Database ties the lesson catalog to the vocabulary and the services that
// use them.
type Database struct {
	backend    *badger.Backend
	lessonRepo storage.LessonRepository
	vocabulary *vocab.Vocabulary
	aiConfig   *ai.Config
	logger     *slog.Logger

	drafterOnce sync.Once
	drafter     ai.Drafter
	drafterErr  error
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig   *ai.Config
	vocabulary *vocab.Vocabulary
	inMemory   bool
}

// WithAIConfig sets the configuration used by NewDrafter.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithVocabulary replaces the built-in vocabulary.
func WithVocabulary(v *vocab.Vocabulary) DatabaseOption {
	return func(o *databaseOptions) {
		o.vocabulary = v
	}
}

// WithInMemory keeps the catalog in memory; the path is ignored.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// NewDatabase opens the lesson catalog stored under filePath.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig:   ai.DefaultConfig(),
		vocabulary: vocab.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.aiConfig == nil {
		options.aiConfig = ai.DefaultConfig()
	}
	if options.vocabulary == nil {
		options.vocabulary = vocab.Default()
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	lessonRepo, err := badger.NewLessonRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:    backend,
		lessonRepo: lessonRepo,
		vocabulary: options.vocabulary,
		aiConfig:   options.aiConfig,
		logger:     slog.Default().With("component", "database"),
	}, nil
}

// Close releases the repository and closes the backend.
func (db *Database) Close() error {
	if err := db.lessonRepo.Close(); err != nil {
		db.logger.Error("error closing lesson repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) LessonRepository() storage.LessonRepository {
	return db.lessonRepo
}

func (db *Database) Vocabulary() *vocab.Vocabulary {
	return db.vocabulary
}

func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.lessonRepo, opts...)
}

func (db *Database) NewQueryBuilder(opts ...query.Option) (*query.Builder, error) {
	return query.NewBuilder(db.vocabulary, opts...)
}

func (db *Database) NewLoader(opts ...ingestion.Option) (*ingestion.Loader, error) {
	return ingestion.NewLoader(db.lessonRepo, db.vocabulary, opts...)
}

// NewDrafter returns the lesson drafter, creating it on first use.
// The AI configuration is only validated at that point, so a catalog can be
// used without a reachable model.
func (db *Database) NewDrafter() (ai.Drafter, error) {
	db.drafterOnce.Do(func() {
		db.drafter, db.drafterErr = openai.NewDrafter(db.aiConfig, db.vocabulary)
	})
	return db.drafter, db.drafterErr
}
