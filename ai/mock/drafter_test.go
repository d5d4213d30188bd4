package mock

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/lessonsim/ai"
	"github.com/poiesic/lessonsim/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockDrafter_Default(t *testing.T) {
	d := NewMockDrafter()
	brief := &core.Lesson{Title: "Kindness week", Duration: 1.5}
	examples := []*core.Match{
		{Lesson: &core.Lesson{Title: "Thank-you notes"}},
		nil,
		{Lesson: &core.Lesson{Title: "Buddy bench"}},
	}

	draft, err := d.DraftLesson(context.Background(), brief, examples)
	require.NoError(t, err)
	assert.Equal(t, "Kindness week", draft.Title)
	require.Len(t, draft.Activities, 2)
	assert.Equal(t, "Thank-you notes", draft.Activities[0].Name)
	assert.Equal(t, 90, draft.TotalMinutes())
	assert.Equal(t, 1, d.CallCount())
	assert.Len(t, d.LastExamples(), 3)
}

func TestMockDrafter_NoExamples(t *testing.T) {
	d := NewMockDrafter()

	draft, err := d.DraftLesson(context.Background(), &core.Lesson{Title: "Solo"}, nil)
	require.NoError(t, err)
	require.Len(t, draft.Activities, 1)
	assert.Equal(t, 60, draft.TotalMinutes())
}

func TestMockDrafter_RequiresBrief(t *testing.T) {
	d := NewMockDrafter()
	_, err := d.DraftLesson(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ai.ErrBriefRequired)
}

func TestMockDrafter_CustomFunc(t *testing.T) {
	boom := errors.New("model unavailable")
	d := NewMockDrafter().WithDraftLessonFunc(func(ctx context.Context, brief *core.Lesson, examples []*core.Match) (*ai.Draft, error) {
		return nil, boom
	})

	_, err := d.DraftLesson(context.Background(), &core.Lesson{Title: "x"}, nil)
	assert.ErrorIs(t, err, boom)

	d.Reset()
	assert.Zero(t, d.CallCount())
	_, err = d.DraftLesson(context.Background(), &core.Lesson{Title: "x"}, nil)
	assert.NoError(t, err)
}
