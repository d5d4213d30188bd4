package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/poiesic/lessonsim/ai"
	"github.com/poiesic/lessonsim/core"
	"github.com/poiesic/lessonsim/vocab"
)

type rangeView struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type lessonView struct {
	ID          uint64     `json:"id"`
	Key         string     `json:"key,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Domain      string     `json:"domain,omitempty"`
	Discipline  string     `json:"discipline,omitempty"`
	Axes        []string   `json:"axes,omitempty"`
	Tools       []string   `json:"tools,omitempty"`
	Virtues     []string   `json:"virtues,omitempty"`
	Strategies  []string   `json:"strategies,omitempty"`
	Age         *rangeView `json:"target_age,omitempty"`
	Duration    float64    `json:"duration,omitempty"`
	GroupSize   *rangeView `json:"group_size,omitempty"`
}

type dimensionView struct {
	Dimension    string   `json:"dimension"`
	Score        float64  `json:"score"`
	Weight       float64  `json:"weight"`
	Contribution float64  `json:"contribution"`
	Shared       []string `json:"shared,omitempty"`
}

type matchView struct {
	Lesson    lessonView      `json:"lesson"`
	Score     float64         `json:"score"`
	Breakdown []dimensionView `json:"breakdown"`
}

type draftView struct {
	Draft    *ai.Draft   `json:"draft"`
	Examples []matchView `json:"examples"`
}

func toRangeView(r *core.IntRange) *rangeView {
	if r == nil {
		return nil
	}
	return &rangeView{Min: r.Min, Max: r.Max}
}

func toLessonView(l *core.Lesson, namer vocab.Namer) lessonView {
	return lessonView{
		ID:          uint64(l.Id),
		Key:         l.Key,
		Title:       l.Title,
		Description: l.Description,
		Domain:      vocab.NameOf(namer, l.Domain),
		Discipline:  l.Discipline,
		Axes:        vocab.Names(namer, l.Axes),
		Tools:       vocab.Names(namer, l.Tools),
		Virtues:     vocab.Names(namer, l.Virtues),
		Strategies:  vocab.Names(namer, l.Strategies),
		Age:         toRangeView(l.Age),
		Duration:    l.Duration,
		GroupSize:   toRangeView(l.GroupSize),
	}
}

func lessonViews(lessons []*core.Lesson, namer vocab.Namer) []lessonView {
	views := make([]lessonView, 0, len(lessons))
	for _, l := range lessons {
		views = append(views, toLessonView(l, namer))
	}
	return views
}

func matchViews(matches []*core.Match, namer vocab.Namer) []matchView {
	views := make([]matchView, 0, len(matches))
	for _, m := range matches {
		view := matchView{
			Lesson: toLessonView(m.Lesson, namer),
			Score:  m.Score,
		}
		for _, d := range core.Dimensions() {
			s := m.Breakdown.Get(d)
			dv := dimensionView{
				Dimension:    d.String(),
				Score:        s.Score,
				Weight:       s.Weight,
				Contribution: s.Contribution,
			}
			if len(s.Shared) > 0 {
				dv.Shared = vocab.Names(namer, s.Shared)
			}
			view.Breakdown = append(view.Breakdown, dv)
		}
		views = append(views, view)
	}
	return views
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func renderMatches(w io.Writer, matches []*core.Match, namer vocab.Namer) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No similar lessons found.")
		return
	}
	for i, m := range matches {
		fmt.Fprintf(w, "%d. [%.3f] %s\n", i+1, m.Score, lessonLabel(m.Lesson))
		for _, d := range core.Dimensions() {
			s := m.Breakdown.Get(d)
			if s.Contribution == 0 {
				continue
			}
			fmt.Fprintf(w, "     %-10s %.2f x %.2f = %.3f", d, s.Score, s.Weight, s.Contribution)
			if len(s.Shared) > 0 {
				fmt.Fprintf(w, "  (%s)", strings.Join(vocab.Names(namer, s.Shared), ", "))
			}
			fmt.Fprintln(w)
		}
	}
}

func renderLessons(w io.Writer, lessons []*core.Lesson, namer vocab.Namer) {
	if len(lessons) == 0 {
		fmt.Fprintln(w, "No lessons.")
		return
	}
	for _, l := range lessons {
		fmt.Fprintln(w, lessonLabel(l))
		var details []string
		if name := vocab.NameOf(namer, l.Domain); name != "" {
			details = append(details, "domain "+name)
		}
		if l.Age != nil {
			details = append(details, "ages "+formatRange(l.Age))
		}
		if l.Duration > 0 {
			details = append(details, strconv.FormatFloat(l.Duration, 'f', -1, 64)+" h")
		}
		if len(l.Virtues) > 0 {
			details = append(details, "virtues "+strings.Join(vocab.Names(namer, l.Virtues), ", "))
		}
		if len(details) > 0 {
			fmt.Fprintf(w, "     %s\n", strings.Join(details, "; "))
		}
	}
}

func renderDraft(w io.Writer, draft *ai.Draft, examples []*core.Match) {
	fmt.Fprintf(w, "%s\n%s\n", draft.Title, strings.Repeat("=", len([]rune(draft.Title))))
	if draft.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", draft.Summary)
	}
	if len(draft.Objectives) > 0 {
		fmt.Fprintln(w, "\nObjectives:")
		for _, o := range draft.Objectives {
			fmt.Fprintf(w, "  - %s\n", o)
		}
	}
	if len(draft.Activities) > 0 {
		fmt.Fprintf(w, "\nActivities (%d min):\n", draft.TotalMinutes())
		for i, a := range draft.Activities {
			fmt.Fprintf(w, "  %d. %s (%d min)\n", i+1, a.Name, a.Minutes)
			if a.Description != "" {
				fmt.Fprintf(w, "     %s\n", a.Description)
			}
		}
	}
	if len(draft.Virtues) > 0 {
		fmt.Fprintf(w, "\nVirtues: %s\n", strings.Join(draft.Virtues, ", "))
	}
	if len(examples) > 0 {
		fmt.Fprintln(w, "\nBased on:")
		for _, m := range examples {
			fmt.Fprintf(w, "  [%.3f] %s\n", m.Score, lessonLabel(m.Lesson))
		}
	}
}

func lessonLabel(l *core.Lesson) string {
	if l.Key != "" {
		return fmt.Sprintf("%s (%s)", l.Title, l.Key)
	}
	return fmt.Sprintf("%s (#%d)", l.Title, l.Id)
}

func formatRange(r *core.IntRange) string {
	if r.Min == r.Max {
		return strconv.Itoa(r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

func renderEntry(w io.Writer, e vocab.Entry, details bool) {
	fmt.Fprintf(w, "%-9s %s", e.Kind, e.Name)
	if e.Label != "" {
		fmt.Fprintf(w, " (%s)", e.Label)
	}
	fmt.Fprintln(w)
	if details && e.Description != "" {
		fmt.Fprintf(w, "          %s\n", e.Description)
	}
}
