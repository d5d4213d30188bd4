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


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/lessonsim/ai"
	"github.com/poiesic/lessonsim/core"
	"github.com/poiesic/lessonsim/vocab"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Drafter implements ai.Drafter using OpenAI-compatible chat APIs.
type Drafter struct {
	client llms.Model
	config ai.Config
	namer  vocab.Namer
	logger *slog.Logger
}

// newDrafter is an internal constructor that accepts any llms.Model.
func newDrafter(client llms.Model, config *ai.Config, namer vocab.Namer) *Drafter {
	return &Drafter{
		client: client,
		config: *config,
		namer:  namer,
		logger: slog.Default().With("component", "openai-drafter"),
	}
}

// NewDrafter creates a new lesson drafter using the provided configuration.
// Tag identifiers in prompts are rendered with namer.
//
// Returns ai.Drafter interface to enforce abstraction.
func NewDrafter(config *ai.Config, namer vocab.Namer) (ai.Drafter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return newDrafter(client, config, namer), nil
}

// DraftLesson generates a lesson sheet for brief, showing the model at most
// MaxExamples of the ranked examples. Malformed or empty responses are
// retried up to MaxAttempts times.
func (d *Drafter) DraftLesson(ctx context.Context, brief *core.Lesson, examples []*core.Match) (*ai.Draft, error) {
	if brief == nil {
		return nil, ai.ErrBriefRequired
	}

	input := ai.BuildPromptInput(brief, examples, d.namer, d.config.MaxExamples)
	system, err := buildSystemPrompt()
	if err != nil {
		return nil, err
	}
	user, err := buildUserPrompt(input.Values())
	if err != nil {
		return nil, err
	}

	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(system)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(user)},
		},
	}

	var draft *ai.Draft
	attempt := 0
	err = ai.RetryWithBackoff(ctx, func() error {
		attempt++
		result, err := d.generate(ctx, content)
		if err != nil {
			d.logger.Warn("draft attempt failed", "attempt", attempt, "err", err)
			return err
		}
		draft = result
		return nil
	}, d.config.MaxAttempts, d.config.RetryDelay)
	if err != nil {
		d.logger.Error("failed to draft lesson", "title", brief.Title, "attempts", attempt, "err", err)
		return nil, err
	}

	d.logger.Debug("drafted lesson",
		"title", draft.Title,
		"examples", input.Count,
		"activities", len(draft.Activities),
		"minutes", draft.TotalMinutes())
	return draft, nil
}

// generate runs one completion and parses its response.
func (d *Drafter) generate(ctx context.Context, content []llms.MessageContent) (*ai.Draft, error) {
	response, err := d.client.GenerateContent(ctx, content,
		llms.WithTemperature(d.config.Temperature),
		llms.WithJSONMode())
	if err != nil {
		return nil, err
	}
	if len(response.Choices) < 1 {
		return nil, ai.ErrEmptyDraft
	}
	return parseDraft(response.Choices[0].Content)
}

// parseDraft decodes a model response into a draft.
func parseDraft(text string) (*ai.Draft, error) {
	text = repairJSON(stripCodeFences(text))

	var draft ai.Draft
	if err := json.Unmarshal([]byte(text), &draft); err != nil {
		return nil, fmt.Errorf("parsing draft response: %w", err)
	}

	draft.Title = strings.TrimSpace(draft.Title)
	if draft.Title == "" {
		return nil, ai.ErrEmptyDraft
	}
	draft.Summary = strings.TrimSpace(draft.Summary)
	draft.Objectives = cleanList(draft.Objectives)
	draft.Virtues = cleanList(draft.Virtues)

	activities := draft.Activities[:0]
	for _, a := range draft.Activities {
		a.Name = strings.TrimSpace(a.Name)
		a.Description = strings.TrimSpace(a.Description)
		if a.Name == "" && a.Description == "" {
			continue
		}
		if a.Minutes < 0 {
			a.Minutes = 0
		}
		activities = append(activities, a)
	}
	if len(activities) == 0 {
		activities = nil
	}
	draft.Activities = activities
	return &draft, nil
}
