package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/lessonsim/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sciences", "sciences"},
		{"Sciences", "sciences"},
		{"  peace with others ", "peace_with_others"},
		{"Peace-With-Self", "peace_with_self"},
		{"project__based  learning", "project_based_learning"},
		{"Éthique", "ethique"},
		{"bienveillance!", "bienveillance"},
		{"", ""},
		{"___", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestDefault(t *testing.T) {
	v := Default()
	require.NotNil(t, v)
	assert.Same(t, v, Default())

	assert.Len(t, v.Entries(core.TagKindAxis), 3)
	assert.Len(t, v.Entries(core.TagKindTool), 5)
	assert.Len(t, v.Entries(core.TagKindStrategy), 5)
	assert.Len(t, v.Entries(core.TagKindDomain), 4)
	assert.Len(t, v.Entries(core.TagKindVirtue), 6)
	assert.Equal(t, 23, v.Len())

	assert.Equal(t, "peace_with_self", v.Entries(core.TagKindAxis)[0].Name)
}

func TestResolve(t *testing.T) {
	v := Default()

	id, ok := v.Resolve(core.TagKindDomain, "Sciences")
	require.True(t, ok)
	assert.Equal(t, core.TagIDFor(core.TagKindDomain, "sciences"), id)

	name, ok := v.Name(id)
	require.True(t, ok)
	assert.Equal(t, "sciences", name)

	_, ok = v.Resolve(core.TagKindVirtue, "sciences")
	assert.False(t, ok, "names are scoped to their kind")

	_, ok = v.Resolve(core.TagKindVirtue, "courage")
	assert.False(t, ok)

	_, ok = v.Name(core.TagID(12345))
	assert.False(t, ok)
}

func TestResolveAll(t *testing.T) {
	v := Default()

	set, missing := ResolveAll(v, core.TagKindVirtue, []string{"empathy", "Courage", "patience", "empathy"})
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(core.TagIDFor(core.TagKindVirtue, "empathy")))
	assert.Equal(t, []string{"Courage"}, missing)
}

func TestNames(t *testing.T) {
	v := Default()
	set := core.NewTagSet(
		core.TagIDFor(core.TagKindVirtue, "patience"),
		core.TagIDFor(core.TagKindVirtue, "empathy"),
	)
	assert.Equal(t, []string{"empathy", "patience"}, Names(v, set))
	assert.Equal(t, "", NameOf(v, core.NoTag))
	assert.Equal(t, "#7", NameOf(v, core.TagID(7)))
	assert.Equal(t, "#7", NameOf(nil, core.TagID(7)))
}

func TestNewRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{
			name:    "empty name",
			entries: []Entry{{Kind: core.TagKindTool, Name: " - "}},
			wantErr: ErrInvalidVocabulary,
		},
		{
			name: "duplicate after normalization",
			entries: []Entry{
				{Kind: core.TagKindTool, Name: "meditation"},
				{Kind: core.TagKindTool, Name: "Meditation"},
			},
			wantErr: ErrInvalidVocabulary,
		},
		{
			name:    "unknown kind",
			entries: []Entry{{Kind: core.TagKind(42), Name: "x"}},
			wantErr: core.ErrInvalidTagKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSameNameDifferentKinds(t *testing.T) {
	v, err := New(
		Entry{Kind: core.TagKindTool, Name: "dialogue"},
		Entry{Kind: core.TagKindStrategy, Name: "dialogue"},
	)
	require.NoError(t, err)

	tool, ok := v.Resolve(core.TagKindTool, "dialogue")
	require.True(t, ok)
	strategy, ok := v.Resolve(core.TagKindStrategy, "dialogue")
	require.True(t, ok)
	assert.NotEqual(t, tool, strategy)
}

func TestLoad(t *testing.T) {
	content := `
axes:
  - name: Peace with self
    label: Self
virtues:
  - name: courage
  - name: empathy
    description: Feeling with others
domains:
  - name: sciences
`
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Len())

	id, ok := v.Resolve(core.TagKindAxis, "peace_with_self")
	require.True(t, ok)
	entry, ok := v.Entry(id)
	require.True(t, ok)
	assert.Equal(t, "Self", entry.Label)
	assert.Equal(t, core.TagKindAxis, entry.Kind)

	_, ok = v.Resolve(core.TagKindVirtue, "courage")
	assert.True(t, ok)
	assert.Empty(t, v.Entries(core.TagKindTool))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("axes: [unterminated"))
	assert.ErrorIs(t, err, ErrInvalidVocabulary)
}
