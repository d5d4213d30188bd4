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


package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/poiesic/lessonsim/ai"
	"github.com/poiesic/lessonsim/core"
)

// MockDrafter is a test double for ai.Drafter.
// It allows custom behavior injection via function fields.
type MockDrafter struct {
	// DraftLessonFunc is called by DraftLesson if set.
	// If nil, a draft is derived from the brief and examples.
	DraftLessonFunc func(ctx context.Context, brief *core.Lesson, examples []*core.Match) (*ai.Draft, error)

	mu           sync.Mutex
	callCount    int
	lastExamples []*core.Match
}

// NewMockDrafter creates a mock drafter with default behavior.
func NewMockDrafter() *MockDrafter {
	return &MockDrafter{}
}

// WithDraftLessonFunc sets custom DraftLesson behavior.
func (m *MockDrafter) WithDraftLessonFunc(fn func(ctx context.Context, brief *core.Lesson, examples []*core.Match) (*ai.Draft, error)) *MockDrafter {
	m.DraftLessonFunc = fn
	return m
}

// DraftLesson returns a deterministic draft for brief.
func (m *MockDrafter) DraftLesson(ctx context.Context, brief *core.Lesson, examples []*core.Match) (*ai.Draft, error) {
	m.mu.Lock()
	m.callCount++
	m.lastExamples = examples
	fn := m.DraftLessonFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, brief, examples)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if brief == nil {
		return nil, ai.ErrBriefRequired
	}

	total := 60
	if brief.Duration > 0 {
		total = int(brief.Duration * 60)
	}

	draft := &ai.Draft{
		Title:      brief.Title,
		Summary:    brief.Description,
		Objectives: []string{fmt.Sprintf("Explore %q", brief.Title)},
	}
	n := 0
	for _, match := range examples {
		if match != nil && match.Lesson != nil {
			n++
		}
	}
	if n == 0 {
		draft.Activities = []ai.Activity{{Name: "Activity", Minutes: total}}
		return draft, nil
	}
	for _, match := range examples {
		if match == nil || match.Lesson == nil {
			continue
		}
		draft.Activities = append(draft.Activities, ai.Activity{
			Name:        match.Lesson.Title,
			Minutes:     total / n,
			Description: match.Lesson.Description,
		})
	}
	return draft, nil
}

// CallCount returns the number of times DraftLesson was called.
func (m *MockDrafter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastExamples returns the examples passed to the most recent call.
func (m *MockDrafter) LastExamples() []*core.Match {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastExamples
}

// Reset clears the call state and custom functions.
func (m *MockDrafter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastExamples = nil
	m.DraftLessonFunc = nil
}

var _ ai.Drafter = (*MockDrafter)(nil)
