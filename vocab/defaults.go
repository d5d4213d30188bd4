package vocab

import (
	"sync"

	"github.com/poiesic/lessonsim/core"
)

var defaultEntries = []Entry{
	{Kind: core.TagKindAxis, Name: "peace_with_self", Label: "Peace with self", Description: "Inner peace, self-knowledge and emotional balance"},
	{Kind: core.TagKindAxis, Name: "peace_with_others", Label: "Peace with others", Description: "Respectful relationships, dialogue and cooperation"},
	{Kind: core.TagKindAxis, Name: "peace_with_environment", Label: "Peace with the environment", Description: "Care for nature and the shared world"},

	{Kind: core.TagKindTool, Name: "cevq", Label: "CEVQ", Description: "Daily-life values education circle"},
	{Kind: core.TagKindTool, Name: "meditation", Label: "Meditation"},
	{Kind: core.TagKindTool, Name: "project_based_learning", Label: "Project-based learning"},
	{Kind: core.TagKindTool, Name: "artistic_expression", Label: "Artistic expression"},
	{Kind: core.TagKindTool, Name: "solution_oriented_learning", Label: "Solution-oriented learning"},

	{Kind: core.TagKindStrategy, Name: "experiential_learning", Label: "Experiential learning"},
	{Kind: core.TagKindStrategy, Name: "dialogical_approach", Label: "Dialogical approach"},
	{Kind: core.TagKindStrategy, Name: "structured_questioning", Label: "Structured questioning"},
	{Kind: core.TagKindStrategy, Name: "awakening_alterity", Label: "Awakening to alterity"},
	{Kind: core.TagKindStrategy, Name: "collaborative_construction", Label: "Collaborative construction"},

	{Kind: core.TagKindDomain, Name: "sciences", Label: "Sciences"},
	{Kind: core.TagKindDomain, Name: "arts", Label: "Arts"},
	{Kind: core.TagKindDomain, Name: "ethics", Label: "Ethics"},
	{Kind: core.TagKindDomain, Name: "languages", Label: "Languages"},

	{Kind: core.TagKindVirtue, Name: "gratitude", Label: "Gratitude"},
	{Kind: core.TagKindVirtue, Name: "empathy", Label: "Empathy"},
	{Kind: core.TagKindVirtue, Name: "responsibility", Label: "Responsibility"},
	{Kind: core.TagKindVirtue, Name: "compassion", Label: "Compassion"},
	{Kind: core.TagKindVirtue, Name: "patience", Label: "Patience"},
	{Kind: core.TagKindVirtue, Name: "benevolence", Label: "Benevolence"},
}

var (
	defaultOnce  sync.Once
	defaultVocab *Vocabulary
)

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	defaultOnce.Do(func() {
		v, err := New(defaultEntries...)
		if err != nil {
			panic(err)
		}
		defaultVocab = v
	})
	return defaultVocab
}
