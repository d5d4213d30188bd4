package ai

import (
	"testing"

	"github.com/poiesic/lessonsim/core"
	"github.com/poiesic/lessonsim/similarity"
	"github.com/poiesic/lessonsim/vocab"
	"github.com/stretchr/testify/assert"
)

func tag(kind core.TagKind, name string) core.TagID {
	return core.TagIDFor(kind, name)
}

func testBrief() *core.Lesson {
	return &core.Lesson{
		Title:    "Listening circle",
		Domain:   tag(core.TagKindDomain, "ethics"),
		Axes:     core.NewTagSet(tag(core.TagKindAxis, "peace_with_others")),
		Virtues:  core.NewTagSet(tag(core.TagKindVirtue, "empathy"), tag(core.TagKindVirtue, "patience")),
		Age:      core.NewRange(8, 12),
		Duration: 1.5,
	}
}

func TestBuildPromptInput_Brief(t *testing.T) {
	input := BuildPromptInput(testBrief(), nil, vocab.Default(), 3)

	want := "Title: Listening circle\n" +
		"Domain: ethics\n" +
		"Peace axes: peace_with_others\n" +
		"Virtues: empathy, patience\n" +
		"Target age: 8-12\n" +
		"Duration: 1.5 h\n"
	assert.Equal(t, want, input.Brief)
	assert.Equal(t, "No similar lessons are available.\n", input.Examples)
	assert.Zero(t, input.Count)
}

func TestBuildPromptInput_Examples(t *testing.T) {
	brief := testBrief()
	example := &core.Lesson{
		Id:        1,
		Title:     "Talking stick",
		Domain:    tag(core.TagKindDomain, "ethics"),
		Virtues:   core.NewTagSet(tag(core.TagKindVirtue, "empathy")),
		GroupSize: core.NewRange(10, 10),
	}
	bd := similarity.Explain(brief, example, core.DefaultWeights())
	matches := []*core.Match{
		{Lesson: example, Score: bd.Total(), Breakdown: bd},
		nil,
		{Lesson: &core.Lesson{Id: 2, Title: "Second"}},
	}

	input := BuildPromptInput(brief, matches, vocab.Default(), 1)

	assert.Equal(t, 1, input.Count)
	assert.Contains(t, input.Examples, "Example 1 (similarity ")
	assert.Contains(t, input.Examples, "  Title: Talking stick\n")
	assert.Contains(t, input.Examples, "  Group size: 10\n")
	assert.Contains(t, input.Examples, "  Shared virtues: empathy\n")
	assert.NotContains(t, input.Examples, "Second")
}

func TestBuildPromptInput_SkipsNilMatches(t *testing.T) {
	matches := []*core.Match{nil, {Lesson: nil}, {Lesson: &core.Lesson{Title: "Kept"}}}

	input := BuildPromptInput(testBrief(), matches, vocab.Default(), 5)
	assert.Equal(t, 1, input.Count)
	assert.Contains(t, input.Examples, "Example 1 (similarity 0.00)\n  Title: Kept\n")
}

func TestPromptInputValues(t *testing.T) {
	input := PromptInput{Brief: "b", Examples: "e", Count: 2}
	assert.Equal(t, map[string]any{"brief": "b", "examples": "e", "count": 2}, input.Values())
}

func TestDraftTotalMinutes(t *testing.T) {
	d := &Draft{Activities: []Activity{{Minutes: 10}, {Minutes: 25}, {Minutes: 5}}}
	assert.Equal(t, 40, d.TotalMinutes())
	assert.Zero(t, (&Draft{}).TotalMinutes())
}
