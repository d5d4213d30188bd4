package search

import (
	"github.com/poiesic/lessonsim/core"
)

// SearchMonitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query *core.Lesson)
	AfterCatalogLoad(size int)
	Scored(match *core.Match)
	Filtered(match *core.Match)
	Finish(results []*core.Match)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *core.Lesson)   {}
func (n *noopMonitor) AfterCatalogLoad(_ int) {}
func (n *noopMonitor) Scored(_ *core.Match)   {}
func (n *noopMonitor) Filtered(_ *core.Match) {}
func (n *noopMonitor) Finish(_ []*core.Match) {}
