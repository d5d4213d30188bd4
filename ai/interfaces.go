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


package ai

import (
	"context"

	"github.com/poiesic/lessonsim/core"
)

// Drafter writes new lesson sheets from a brief and similar catalog lessons.
// Implementations must be thread-safe for concurrent use.
type Drafter interface {
	// DraftLesson generates a lesson sheet matching brief, using examples
	// (ranked catalog matches, best first) as models of style and content.
	// Returns an error if generation fails or the response cannot be parsed.
	DraftLesson(ctx context.Context, brief *core.Lesson, examples []*core.Match) (*Draft, error)
}
