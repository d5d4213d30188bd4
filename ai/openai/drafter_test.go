package openai

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/poiesic/lessonsim/ai"
	"github.com/poiesic/lessonsim/core"
	"github.com/poiesic/lessonsim/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel returns queued responses in order, repeating the last one.
type fakeModel struct {
	mu        sync.Mutex
	responses []string
	err       error
	calls     int
	messages  []llms.MessageContent
}

func (m *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.messages = messages
	if m.err != nil {
		return nil, m.err
	}
	if len(m.responses) == 0 {
		return &llms.ContentResponse{}, nil
	}
	idx := min(m.calls-1, len(m.responses)-1)
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.responses[idx]}},
	}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

const validDraft = `{
  "title": "Sharing the garden",
  "summary": "Students plan a shared vegetable patch.",
  "objectives": ["Cooperate on a common plan", " "],
  "activities": [
    {"name": "Circle", "minutes": 15, "description": "Opening circle"},
    {"name": "Planting", "minutes": 45, "description": "Work in pairs"}
  ],
  "virtues": ["responsibility"]
}`

func testConfig() *ai.Config {
	cfg := ai.NewConfig(ai.WithRetry(3, time.Millisecond))
	cfg.Normalize()
	return cfg
}

func testBrief() *core.Lesson {
	return &core.Lesson{
		Title:   "Garden project",
		Virtues: core.NewTagSet(core.TagIDFor(core.TagKindVirtue, "responsibility")),
		Age:     core.NewRange(9, 11),
	}
}

func userText(t *testing.T, messages []llms.MessageContent) string {
	t.Helper()
	require.Len(t, messages, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, messages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, messages[1].Role)
	part, ok := messages[1].Parts[0].(llms.TextContent)
	require.True(t, ok)
	return part.Text
}

func TestDraftLesson(t *testing.T) {
	model := &fakeModel{responses: []string{validDraft}}
	d := newDrafter(model, testConfig(), vocab.Default())

	examples := []*core.Match{
		{Lesson: &core.Lesson{Id: 1, Title: "School garden"}, Score: 0.8},
	}
	draft, err := d.DraftLesson(context.Background(), testBrief(), examples)
	require.NoError(t, err)

	assert.Equal(t, "Sharing the garden", draft.Title)
	assert.Equal(t, []string{"Cooperate on a common plan"}, draft.Objectives)
	assert.Equal(t, []string{"responsibility"}, draft.Virtues)
	assert.Len(t, draft.Activities, 2)
	assert.Equal(t, 60, draft.TotalMinutes())
	assert.Equal(t, 1, model.calls)

	text := userText(t, model.messages)
	assert.Contains(t, text, "Title: Garden project")
	assert.Contains(t, text, "Virtues: responsibility")
	assert.Contains(t, text, "Similar lessons from the catalog (1):")
	assert.Contains(t, text, "Example 1 (similarity 0.80)")
}

func TestDraftLesson_RetriesMalformedResponses(t *testing.T) {
	model := &fakeModel{responses: []string{"not json", `{"title": ""}`, "```json\n" + validDraft + "\n```"}}
	d := newDrafter(model, testConfig(), vocab.Default())

	draft, err := d.DraftLesson(context.Background(), testBrief(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Sharing the garden", draft.Title)
	assert.Equal(t, 3, model.calls)

	assert.Contains(t, userText(t, model.messages), "No similar lessons are available.")
}

func TestDraftLesson_GivesUp(t *testing.T) {
	model := &fakeModel{responses: []string{`{"title": "   "}`}}
	d := newDrafter(model, testConfig(), vocab.Default())

	_, err := d.DraftLesson(context.Background(), testBrief(), nil)
	assert.ErrorIs(t, err, ai.ErrEmptyDraft)
	assert.Equal(t, 3, model.calls)
}

func TestDraftLesson_NoChoices(t *testing.T) {
	model := &fakeModel{}
	d := newDrafter(model, testConfig(), vocab.Default())

	_, err := d.DraftLesson(context.Background(), testBrief(), nil)
	assert.ErrorIs(t, err, ai.ErrEmptyDraft)
}

func TestDraftLesson_ModelError(t *testing.T) {
	boom := errors.New("connection refused")
	model := &fakeModel{err: boom}
	d := newDrafter(model, testConfig(), vocab.Default())

	_, err := d.DraftLesson(context.Background(), testBrief(), nil)
	assert.ErrorIs(t, err, boom)
}

func TestDraftLesson_RequiresBrief(t *testing.T) {
	model := &fakeModel{responses: []string{validDraft}}
	d := newDrafter(model, testConfig(), vocab.Default())

	_, err := d.DraftLesson(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ai.ErrBriefRequired)
	assert.Zero(t, model.calls)
}

func TestDraftLesson_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	model := &fakeModel{responses: []string{validDraft}}
	d := newDrafter(model, testConfig(), vocab.Default())

	_, err := d.DraftLesson(ctx, testBrief(), nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, model.calls)
}

func TestNewDrafter_InvalidConfig(t *testing.T) {
	cfg := ai.NewConfig(ai.WithModel(""))
	_, err := NewDrafter(cfg, vocab.Default())
	assert.Error(t, err)
}

func TestParseDraft_DropsEmptyActivities(t *testing.T) {
	draft, err := parseDraft(`{"title":"T","activities":[{"name":" ","description":""},{"name":"Walk","minutes":-5}],}`)
	require.NoError(t, err)
	require.Len(t, draft.Activities, 1)
	assert.Equal(t, "Walk", draft.Activities[0].Name)
	assert.Zero(t, draft.Activities[0].Minutes)
	assert.Nil(t, draft.Objectives)
}

func TestBuildPrompts(t *testing.T) {
	system, err := buildSystemPrompt()
	require.NoError(t, err)
	assert.Contains(t, system, `"activities"`)
	assert.NotContains(t, system, "{{")

	user, err := buildUserPrompt(ai.PromptInput{Brief: "Title: X\n", Examples: "none\n", Count: 0}.Values())
	require.NoError(t, err)
	assert.Equal(t, "Brief:\nTitle: X\n\nSimilar lessons from the catalog (0):\nnone\n", user)
}
