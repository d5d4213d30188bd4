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


// Package mock provides a test double implementation of ai.Drafter.
//
// The mock lets tests exercise drafting flows without an external model
// and with controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	drafter := mock.NewMockDrafter()
//	draft, err := drafter.DraftLesson(ctx, brief, matches)
//
//	// Custom behavior injection
//	drafter := mock.NewMockDrafter().
//	    WithDraftLessonFunc(func(ctx context.Context, brief *core.Lesson, examples []*core.Match) (*ai.Draft, error) {
//	        return nil, errors.New("model unavailable")
//	    })
//
//	// Check calls
//	count := drafter.CallCount()
//
// # Default Behavior
//
// The default draft reuses the brief's title and turns every example into
// one activity, splitting the brief's duration (one hour when unknown)
// evenly between them.
package mock
