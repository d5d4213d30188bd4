// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"slices"
	"strings"
)

// TagKind identifies which controlled vocabulary a tag belongs to.
type TagKind int

const (
	// TagKindAxis is a peace axis (peace with self, others, environment).
	TagKindAxis TagKind = iota + 1
	// TagKindTool is a pedagogical tool.
	TagKindTool
	// TagKindVirtue is a virtue cultivated by a lesson.
	TagKindVirtue
	// TagKindStrategy is a teaching strategy.
	TagKindStrategy
	// TagKindDomain is an academic domain.
	TagKindDomain
)

var tagKindNames = map[TagKind]string{
	TagKindAxis:     "axis",
	TagKindTool:     "tool",
	TagKindVirtue:   "virtue",
	TagKindStrategy: "strategy",
	TagKindDomain:   "domain",
}

// TagKinds returns every tag kind in declaration order.
func TagKinds() []TagKind {
	return []TagKind{TagKindAxis, TagKindTool, TagKindVirtue, TagKindStrategy, TagKindDomain}
}

func (k TagKind) String() string {
	if name, ok := tagKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TagKind(%d)", int(k))
}

// ParseTagKind parses a tag kind name. Plural forms ("axes", "tools") are accepted.
func ParseTagKind(s string) (TagKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "axis", "axes":
		return TagKindAxis, nil
	case "tool", "tools":
		return TagKindTool, nil
	case "virtue", "virtues":
		return TagKindVirtue, nil
	case "strategy", "strategies":
		return TagKindStrategy, nil
	case "domain", "domains":
		return TagKindDomain, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTagKind, s)
}

// TagID identifies one entry of the controlled vocabulary.
// Two distinct entries never share a TagID.
type TagID uint64

// NoTag marks an absent tag, e.g. a lesson without a domain.
const NoTag TagID = 0

// TagIDFor derives the identifier of a canonical vocabulary name.
func TagIDFor(kind TagKind, name string) TagID {
	return TagID(IDFromContent("(" + kind.String() + "," + name + ")"))
}

// TagSet is a sorted, duplicate-free set of tag identifiers.
// Build sets with NewTagSet; the zero value is the empty set.
type TagSet []TagID

// NewTagSet returns the normalized set of the given identifiers.
// NoTag entries are discarded.
func NewTagSet(ids ...TagID) TagSet {
	if len(ids) == 0 {
		return nil
	}
	set := make(TagSet, 0, len(ids))
	for _, id := range ids {
		if id != NoTag {
			set = append(set, id)
		}
	}
	slices.Sort(set)
	set = slices.Compact(set)
	if len(set) == 0 {
		return nil
	}
	return set
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int {
	return len(s)
}

// Contains reports whether id is in the set.
func (s TagSet) Contains(id TagID) bool {
	_, found := slices.BinarySearch(s, id)
	return found
}

// IsNormalized reports whether the set is sorted and duplicate-free.
func (s TagSet) IsNormalized() bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}

// Intersect returns the tags present in both sets, in sorted order.
func (s TagSet) Intersect(other TagSet) TagSet {
	var out TagSet
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] == other[j]:
			out = append(out, s[i])
			i++
			j++
		case s[i] < other[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// IntersectionSize counts the tags present in both sets.
func (s TagSet) IntersectionSize(other TagSet) int {
	n := 0
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] == other[j]:
			n++
			i++
			j++
		case s[i] < other[j]:
			i++
		default:
			j++
		}
	}
	return n
}

// Overlaps reports whether the sets share at least one tag.
func (s TagSet) Overlaps(other TagSet) bool {
	return s.IntersectionSize(other) > 0
}

// Clone returns a copy of the set.
func (s TagSet) Clone() TagSet {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}
