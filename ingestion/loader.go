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


package ingestion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/poiesic/lessonsim/core"
	"github.com/poiesic/lessonsim/storage"
	"github.com/poiesic/lessonsim/vocab"
)

// Summary counts the outcome of a load.
type Summary struct {
	Added   int
	Updated int
	Skipped int
}

// Loader ingests catalog files into a lesson repository.
type Loader struct {
	repository     storage.LessonRepository
	resolver       vocab.Resolver
	progressWriter io.Writer
	reportInterval int
	logger         *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// WithProgress reports load progress to w every interval lessons.
// Progress is not reported by default.
func WithProgress(w io.Writer, interval int) Option {
	return func(l *Loader) error {
		l.progressWriter = w
		l.reportInterval = interval
		return nil
	}
}

// NewLoader creates a new catalog loader.
func NewLoader(repository storage.LessonRepository, resolver vocab.Resolver, opts ...Option) (*Loader, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if resolver == nil {
		return nil, ErrResolverRequired
	}

	l := &Loader{
		repository: repository,
		resolver:   resolver,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	l.logger = l.logger.With("component", "loader")
	return l, nil
}

// LoadFile loads the catalog file at path.
func (l *Loader) LoadFile(ctx context.Context, path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, err
	}
	defer f.Close()

	summary, err := l.Load(ctx, f)
	if err != nil {
		return summary, fmt.Errorf("loading %s: %w", path, err)
	}
	return summary, nil
}

// Load reads a catalog document from r and stores its lessons.
// Either every stored change of the document is committed or none is.
func (l *Loader) Load(ctx context.Context, r io.Reader) (Summary, error) {
	var file catalogFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return Summary{}, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	var progress *ProgressTracker
	if l.progressWriter != nil {
		progress = NewProgressTracker(l.progressWriter, len(file.Lessons), l.reportInterval)
		progress.Start()
	}

	var summary Summary
	err := l.repository.WithTransaction(ctx, func(ctx context.Context) error {
		summary = Summary{}
		for i, doc := range file.Lessons {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := l.store(ctx, i, doc, &summary); err != nil {
				return err
			}
			if progress != nil {
				progress.Increment(1)
			}
		}
		return nil
	})
	if progress != nil {
		progress.Finish()
	}
	if err != nil {
		return Summary{}, err
	}

	l.logger.Info("catalog loaded", "added", summary.Added, "updated", summary.Updated, "skipped", summary.Skipped)
	return summary, nil
}

// store upserts one document. Invalid documents are counted as skipped.
func (l *Loader) store(ctx context.Context, index int, doc Document, summary *Summary) error {
	lesson := l.toLesson(doc)
	if err := core.ValidateLesson(lesson); err != nil {
		l.logger.Warn("skipping invalid lesson", "index", index, "key", lesson.Key, "err", err)
		summary.Skipped++
		return nil
	}

	if lesson.Key != "" {
		existing, err := l.repository.FindLessonByKey(ctx, lesson.Key)
		switch {
		case err == nil:
			lesson.Id = existing.Id
			if _, err := l.repository.UpdateLessons(ctx, lesson); err != nil {
				return err
			}
			summary.Updated++
			return nil
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}
	}

	if _, err := l.repository.AddLessons(ctx, lesson); err != nil {
		return err
	}
	summary.Added++
	return nil
}

// toLesson resolves a document into a lesson profile.
func (l *Loader) toLesson(doc Document) *core.Lesson {
	lesson := &core.Lesson{
		Key:         doc.key(),
		Title:       strings.TrimSpace(doc.Title),
		Description: strings.TrimSpace(doc.Description),
		Discipline:  strings.TrimSpace(doc.Discipline),
		Axes:        l.resolveSet(doc, core.TagKindAxis, doc.Axes),
		Tools:       l.resolveSet(doc, core.TagKindTool, doc.Tools),
		Virtues:     l.resolveSet(doc, core.TagKindVirtue, doc.Virtues),
		Strategies:  l.resolveSet(doc, core.TagKindStrategy, doc.Strategies),
		Age:         documentRange(doc.TargetAgeMin, doc.TargetAgeMax),
		Duration:    documentDuration(doc.Duration),
		GroupSize:   documentRange(doc.GroupSizeMin, doc.GroupSizeMax),
	}

	if domain := strings.TrimSpace(doc.Domain); domain != "" {
		if id, ok := l.resolver.Resolve(core.TagKindDomain, domain); ok {
			lesson.Domain = id
		} else {
			l.logger.Warn("unknown vocabulary name", "key", lesson.Key, "kind", core.TagKindDomain, "name", domain)
		}
	}
	return lesson
}

func (l *Loader) resolveSet(doc Document, kind core.TagKind, names []string) core.TagSet {
	set, missing := vocab.ResolveAll(l.resolver, kind, names)
	for _, name := range missing {
		l.logger.Warn("unknown vocabulary name", "key", doc.key(), "kind", kind, "name", name)
	}
	return set
}
