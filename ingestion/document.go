package ingestion

import (
	"strings"

	"github.com/poiesic/lessonsim/core"
)

// catalogFile is the JSON layout of a lesson catalog file.
type catalogFile struct {
	Lessons []Document `json:"lessons"`
}

// Document is one lesson record of a catalog file.
// Empty strings, a zero duration and a (0, 0) range mean the value is unknown.
type Document struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Domain       string   `json:"domain"`
	Discipline   string   `json:"discipline"`
	Axes         []string `json:"axes"`
	Tools        []string `json:"tools"`
	Strategies   []string `json:"strategies"`
	Virtues      []string `json:"virtues"`
	TargetAgeMin int      `json:"target_age_min"`
	TargetAgeMax int      `json:"target_age_max"`
	Duration     float64  `json:"duration"`
	GroupSizeMin int      `json:"group_size_min"`
	GroupSizeMax int      `json:"group_size_max"`
}

// documentRange turns a pair of document bounds into an optional range.
// Only the pair (0, 0) is unknown. A zero minimum is a real bound (ages
// 0-5); a missing maximum collapses the range to the minimum.
func documentRange(lo, hi int) *core.IntRange {
	switch {
	case lo == 0 && hi == 0:
		return nil
	case hi == 0:
		hi = lo
	}
	return core.NewRange(lo, hi)
}

// documentDuration maps unknown or non-positive durations to 0.
func documentDuration(hours float64) float64 {
	if !(hours > 0) {
		return 0
	}
	return hours
}

func (d Document) key() string {
	return strings.TrimSpace(d.ID)
}
