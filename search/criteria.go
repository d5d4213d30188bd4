package search

import (
	"github.com/poiesic/lessonsim/core"
)

// Criteria filters the catalog by hard constraints rather than similarity.
// Empty sets and a nil age range impose no constraint.
type Criteria struct {
	Axes    core.TagSet
	Tools   core.TagSet
	Virtues core.TagSet
	Age     *core.IntRange
}

// IsEmpty reports whether the criteria impose no constraint at all.
func (c Criteria) IsEmpty() bool {
	return len(c.Axes) == 0 && len(c.Tools) == 0 && len(c.Virtues) == 0 && c.Age == nil
}

// Matches reports whether a lesson satisfies the criteria. The lesson must
// share at least one tag with every non-empty criteria set, and its age
// range must overlap the criteria age range when one is given. Lessons
// without an age range never satisfy an age constraint.
func (c Criteria) Matches(lesson *core.Lesson) bool {
	if len(c.Axes) > 0 && !lesson.Axes.Overlaps(c.Axes) {
		return false
	}
	if len(c.Tools) > 0 && !lesson.Tools.Overlaps(c.Tools) {
		return false
	}
	if len(c.Virtues) > 0 && !lesson.Virtues.Overlaps(c.Virtues) {
		return false
	}
	if c.Age != nil {
		if lesson.Age == nil {
			return false
		}
		if lesson.Age.Max < c.Age.Min || lesson.Age.Min > c.Age.Max {
			return false
		}
	}
	return true
}

// MatchCriteria returns the catalog lessons satisfying the criteria,
// in catalog order.
func MatchCriteria(catalog []*core.Lesson, criteria Criteria) []*core.Lesson {
	results := make([]*core.Lesson, 0, len(catalog))
	empty := criteria.IsEmpty()
	for _, lesson := range catalog {
		if lesson != nil && (empty || criteria.Matches(lesson)) {
			results = append(results, lesson)
		}
	}
	return results
}
