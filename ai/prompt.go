package ai

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/poiesic/lessonsim/core"
	"github.com/poiesic/lessonsim/vocab"
)

// PromptInput is the rendered text a drafter feeds into its prompt template.
type PromptInput struct {
	Brief    string
	Examples string
	Count    int // Number of examples rendered
}

// Values returns the input as prompt template variables.
func (p PromptInput) Values() map[string]any {
	return map[string]any{
		"brief":    p.Brief,
		"examples": p.Examples,
		"count":    p.Count,
	}
}

// BuildPromptInput renders a lesson brief and up to limit ranked examples as
// plain text. Tag identifiers are rendered with namer; each example lists
// its score and the tags it shares with the brief.
func BuildPromptInput(brief *core.Lesson, examples []*core.Match, namer vocab.Namer, limit int) PromptInput {
	var b strings.Builder
	writeLesson(&b, brief, namer, "")

	var e strings.Builder
	count := 0
	for _, match := range examples {
		if count >= limit {
			break
		}
		if match == nil || match.Lesson == nil {
			continue
		}
		count++
		if count > 1 {
			e.WriteString("\n")
		}
		fmt.Fprintf(&e, "Example %d (similarity %.2f)\n", count, match.Score)
		writeLesson(&e, match.Lesson, namer, "  ")
		writeShared(&e, match.Breakdown, namer, "  ")
	}
	if count == 0 {
		e.WriteString("No similar lessons are available.\n")
	}

	return PromptInput{
		Brief:    b.String(),
		Examples: e.String(),
		Count:    count,
	}
}

func writeLesson(b *strings.Builder, l *core.Lesson, namer vocab.Namer, indent string) {
	line := func(label, value string) {
		if value != "" {
			fmt.Fprintf(b, "%s%s: %s\n", indent, label, value)
		}
	}

	line("Title", l.Title)
	line("Description", l.Description)
	line("Domain", vocab.NameOf(namer, l.Domain))
	line("Discipline", l.Discipline)
	line("Peace axes", strings.Join(vocab.Names(namer, l.Axes), ", "))
	line("Tools", strings.Join(vocab.Names(namer, l.Tools), ", "))
	line("Virtues", strings.Join(vocab.Names(namer, l.Virtues), ", "))
	line("Strategies", strings.Join(vocab.Names(namer, l.Strategies), ", "))
	line("Target age", formatRange(l.Age))
	if l.Duration > 0 {
		line("Duration", strconv.FormatFloat(l.Duration, 'f', -1, 64)+" h")
	}
	line("Group size", formatRange(l.GroupSize))
}

func writeShared(b *strings.Builder, bd core.Breakdown, namer vocab.Namer, indent string) {
	for _, d := range core.Dimensions() {
		score := bd.Get(d)
		if len(score.Shared) == 0 {
			continue
		}
		fmt.Fprintf(b, "%sShared %s: %s\n", indent, d, strings.Join(vocab.Names(namer, score.Shared), ", "))
	}
}

func formatRange(r *core.IntRange) string {
	if r == nil {
		return ""
	}
	if r.Min == r.Max {
		return strconv.Itoa(r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}
