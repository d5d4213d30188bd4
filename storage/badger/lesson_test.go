package badger

import (
	"context"
	"testing"

	"github.com/poiesic/lessonsim/core"
	"github.com/poiesic/lessonsim/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) storage.LessonRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func sampleLesson(key, title string) *core.Lesson {
	return &core.Lesson{
		Key:      key,
		Title:    title,
		Domain:   core.TagIDFor(core.TagKindDomain, "sciences"),
		Axes:     core.NewTagSet(core.TagIDFor(core.TagKindAxis, "peace_with_environment")),
		Virtues:  core.NewTagSet(core.TagIDFor(core.TagKindVirtue, "responsibility")),
		Age:      core.NewRange(9, 12),
		Duration: 2,
	}
}

func TestLessonBasics(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.AddLessons(ctx, sampleLesson("lesson_001", "Ecosystem walk"))
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.NotZero(t, added[0].Id)
	assert.False(t, added[0].InsertedAt.IsZero())
	assert.Equal(t, added[0].InsertedAt, added[0].UpdatedAt)

	got, err := repo.GetLesson(ctx, added[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "Ecosystem walk", got.Title)
	assert.Equal(t, added[0].Virtues, got.Virtues)
	assert.Equal(t, 9, got.Age.Min)

	found, err := repo.FindLessonByKey(ctx, "lesson_001")
	require.NoError(t, err)
	assert.Equal(t, added[0].Id, found.Id)

	_, err = repo.GetLesson(ctx, core.ID(9999))
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = repo.FindLessonByKey(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAddLessons_Validation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		lesson  *core.Lesson
		wantErr error
	}{
		{"empty title", &core.Lesson{}, core.ErrEmptyTitle},
		{"inverted age", &core.Lesson{Title: "x", Age: core.NewRange(12, 8)}, core.ErrInvalidAgeRange},
		{"negative duration", &core.Lesson{Title: "x", Duration: -1}, core.ErrInvalidDuration},
		{"unsorted tags", &core.Lesson{Title: "x", Tools: core.TagSet{5, 2}}, core.ErrUnsortedTagSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.AddLessons(ctx, tt.lesson)
			assert.ErrorIs(t, err, core.ErrInvalidLesson)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	count, err := repo.CountLessons(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAddLessons_DuplicateKey(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddLessons(ctx, sampleLesson("lesson_001", "First"))
	require.NoError(t, err)

	_, err = repo.AddLessons(ctx, sampleLesson("lesson_001", "Second"))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	_, err = repo.AddLessons(ctx, sampleLesson("dup", "A"), sampleLesson("dup", "B"))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	count, err := repo.CountLessons(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAddLessons_EmptyKeysAllowed(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddLessons(ctx, sampleLesson("", "A"), sampleLesson("", "B"))
	require.NoError(t, err)

	count, err := repo.CountLessons(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAllLessons_InsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	titles := []string{"Zebra", "Apple", "Mango", "Banana"}
	for i, title := range titles {
		_, err := repo.AddLessons(ctx, sampleLesson("k"+string(rune('a'+i)), title))
		require.NoError(t, err)
	}

	all, err := repo.AllLessons(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(titles))
	for i, lesson := range all {
		assert.Equal(t, titles[i], lesson.Title)
		if i > 0 {
			assert.Greater(t, lesson.Id, all[i-1].Id)
		}
	}
}

func TestAllLessons_Empty(t *testing.T) {
	repo := newTestRepo(t)

	all, err := repo.AllLessons(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateLessons(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.AddLessons(ctx, sampleLesson("old_key", "Original"))
	require.NoError(t, err)
	insertedAt := added[0].InsertedAt

	lesson := added[0].Clone()
	lesson.Title = "Revised"
	lesson.Key = "new_key"
	lesson.Duration = 3

	_, err = repo.UpdateLessons(ctx, lesson)
	require.NoError(t, err)

	got, err := repo.GetLesson(ctx, lesson.Id)
	require.NoError(t, err)
	assert.Equal(t, "Revised", got.Title)
	assert.Equal(t, 3.0, got.Duration)
	assert.True(t, insertedAt.Equal(got.InsertedAt))
	assert.False(t, got.UpdatedAt.Before(insertedAt))

	_, err = repo.FindLessonByKey(ctx, "old_key")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	found, err := repo.FindLessonByKey(ctx, "new_key")
	require.NoError(t, err)
	assert.Equal(t, lesson.Id, found.Id)
}

func TestUpdateLessons_Errors(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.UpdateLessons(ctx, &core.Lesson{Id: 404, Title: "Ghost"})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	added, err := repo.AddLessons(ctx, sampleLesson("a", "A"), sampleLesson("b", "B"))
	require.NoError(t, err)

	clash := added[1].Clone()
	clash.Key = "a"
	_, err = repo.UpdateLessons(ctx, clash)
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	invalid := added[0].Clone()
	invalid.Title = ""
	_, err = repo.UpdateLessons(ctx, invalid)
	assert.ErrorIs(t, err, core.ErrEmptyTitle)
}

func TestDeleteLessons(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.AddLessons(ctx, sampleLesson("a", "A"), sampleLesson("b", "B"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteLessons(ctx, added[0].Id))

	_, err = repo.GetLesson(ctx, added[0].Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.FindLessonByKey(ctx, "a")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = repo.DeleteLessons(ctx, added[0].Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// The freed key can be reused.
	_, err = repo.AddLessons(ctx, sampleLesson("a", "A again"))
	require.NoError(t, err)
}

func TestGetLessons_SkipsMissing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	added, err := repo.AddLessons(ctx, sampleLesson("a", "A"), sampleLesson("b", "B"))
	require.NoError(t, err)

	got, err := repo.GetLessons(ctx, added[1].Id, core.ID(9999), added[0].Id)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].Title)
	assert.Equal(t, "A", got[1].Title)
}

func TestNewLessonRepository_RequiresBackend(t *testing.T) {
	_, err := NewLessonRepository(nil)
	assert.ErrorIs(t, err, ErrBackendRequired)
}

func TestLessonRepository_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	backend, err := OpenBackend(dir, false)
	require.NoError(t, err)
	repo, err := NewLessonRepository(backend)
	require.NoError(t, err)
	_, err = repo.AddLessons(ctx, sampleLesson("a", "First"))
	require.NoError(t, err)
	require.NoError(t, repo.Close())
	require.NoError(t, backend.Close())

	backend, err = OpenBackend(dir, false)
	require.NoError(t, err)
	repo, err = NewLessonRepository(backend)
	require.NoError(t, err)
	defer func() { repo.Close(); backend.Close() }()

	_, err = repo.AddLessons(ctx, sampleLesson("b", "Second"))
	require.NoError(t, err)

	all, err := repo.AllLessons(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "First", all[0].Title)
	assert.Equal(t, "Second", all[1].Title)
}
