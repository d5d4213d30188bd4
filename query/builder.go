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


package query

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/lessonsim/core"
	"github.com/poiesic/lessonsim/vocab"
)

// Raw holds the unresolved arguments of a query. Only Title is required.
type Raw struct {
	Title        string
	Description  string
	Domain       string
	Discipline   string
	Axes         []string
	Tools        []string
	Virtues      []string
	Strategies   []string
	TargetAgeMin *int
	TargetAgeMax *int
	Duration     *float64
	GroupSizeMin *int
	GroupSizeMax *int
}

// Builder turns raw query arguments into transient lesson profiles.
// It never writes to the catalog.
type Builder struct {
	resolver vocab.Resolver
	logger   *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBuilder creates a query builder resolving names through resolver.
func NewBuilder(resolver vocab.Resolver, opts ...Option) (*Builder, error) {
	if resolver == nil {
		return nil, ErrResolverRequired
	}

	b := &Builder{
		resolver: resolver,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	b.logger = b.logger.With("component", "query")
	return b, nil
}

// Build validates raw and resolves it into a lesson profile with Id 0.
//
// Vocabulary names that do not resolve are dropped. An empty domain leaves
// the profile without a domain, and omitted numeric options leave the
// matching fields absent. When only one bound of a range is given the range
// collapses to that single value.
//
// Validation failures are returned as *FieldError.
func (b *Builder) Build(raw Raw) (*core.Lesson, error) {
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		return nil, &FieldError{Field: "title", Err: core.ErrEmptyTitle}
	}

	age, err := buildRange(raw.TargetAgeMin, raw.TargetAgeMax)
	if err != nil {
		return nil, &FieldError{Field: "age", Err: fmt.Errorf("%w: %w", core.ErrInvalidAgeRange, err)}
	}

	groupSize, err := buildRange(raw.GroupSizeMin, raw.GroupSizeMax)
	if err != nil {
		return nil, &FieldError{Field: "group_size", Err: fmt.Errorf("%w: %w", core.ErrInvalidGroupSize, err)}
	}

	var duration float64
	if raw.Duration != nil {
		duration = *raw.Duration
		if !(duration > 0) || !core.IsValidDuration(duration) {
			return nil, &FieldError{Field: "duration", Err: fmt.Errorf("%w: %v", core.ErrInvalidDuration, duration)}
		}
	}

	lesson := &core.Lesson{
		Title:       title,
		Description: strings.TrimSpace(raw.Description),
		Discipline:  strings.TrimSpace(raw.Discipline),
		Axes:        b.resolveSet(core.TagKindAxis, raw.Axes),
		Tools:       b.resolveSet(core.TagKindTool, raw.Tools),
		Virtues:     b.resolveSet(core.TagKindVirtue, raw.Virtues),
		Strategies:  b.resolveSet(core.TagKindStrategy, raw.Strategies),
		Age:         age,
		Duration:    duration,
		GroupSize:   groupSize,
	}

	if domain := strings.TrimSpace(raw.Domain); domain != "" {
		if id, ok := b.resolver.Resolve(core.TagKindDomain, domain); ok {
			lesson.Domain = id
		} else {
			b.logger.Debug("dropping unknown name", "kind", core.TagKindDomain, "name", domain)
		}
	}

	return lesson, nil
}

func (b *Builder) resolveSet(kind core.TagKind, names []string) core.TagSet {
	set, missing := vocab.ResolveAll(b.resolver, kind, names)
	for _, name := range missing {
		b.logger.Debug("dropping unknown name", "kind", kind, "name", name)
	}
	return set
}

// buildRange combines optional bounds. Returns nil when both are absent.
func buildRange(lo, hi *int) (*core.IntRange, error) {
	switch {
	case lo == nil && hi == nil:
		return nil, nil
	case lo == nil:
		lo = hi
	case hi == nil:
		hi = lo
	}
	r := core.IntRange{Min: *lo, Max: *hi}
	if err := core.ValidateRange(r); err != nil {
		return nil, err
	}
	return &r, nil
}
