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


package vocab

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/poiesic/lessonsim/core"
	"gopkg.in/yaml.v3"
)

// Resolver maps a vocabulary name to its canonical tag identifier.
type Resolver interface {
	// Resolve returns the identifier of name within the vocabulary of kind.
	// Returns false when the name is not part of the vocabulary.
	Resolve(kind core.TagKind, name string) (core.TagID, bool)
}

// Namer maps a tag identifier back to its canonical name.
type Namer interface {
	// Name returns the canonical name of id.
	// Returns false when id is not part of the vocabulary.
	Name(id core.TagID) (string, bool)
}

// Entry is one controlled-vocabulary term.
type Entry struct {
	Kind        core.TagKind `yaml:"-"`
	Name        string       `yaml:"name"`
	Label       string       `yaml:"label,omitempty"`
	Description string       `yaml:"description,omitempty"`
}

// ID returns the tag identifier of the entry.
func (e Entry) ID() core.TagID {
	return core.TagIDFor(e.Kind, e.Name)
}

type nameKey struct {
	kind core.TagKind
	name string
}

// Vocabulary is an immutable controlled vocabulary.
// It is safe for concurrent use.
type Vocabulary struct {
	entries map[core.TagID]Entry
	byName  map[nameKey]core.TagID
	order   map[core.TagKind][]core.TagID
}

var _ Resolver = (*Vocabulary)(nil)
var _ Namer = (*Vocabulary)(nil)

// New builds a vocabulary from entries. Names are normalized; entries
// whose normalized name is empty or already present are rejected.
func New(entries ...Entry) (*Vocabulary, error) {
	v := &Vocabulary{
		entries: make(map[core.TagID]Entry, len(entries)),
		byName:  make(map[nameKey]core.TagID, len(entries)),
		order:   make(map[core.TagKind][]core.TagID),
	}
	for _, e := range entries {
		if _, ok := tagKindSet[e.Kind]; !ok {
			return nil, fmt.Errorf("%w: %v", core.ErrInvalidTagKind, e.Kind)
		}
		e.Name = Normalize(e.Name)
		if e.Name == "" {
			return nil, fmt.Errorf("%w: %s entry with empty name", ErrInvalidVocabulary, e.Kind)
		}
		key := nameKey{kind: e.Kind, name: e.Name}
		if _, exists := v.byName[key]; exists {
			return nil, fmt.Errorf("%w: duplicate %s %q", ErrInvalidVocabulary, e.Kind, e.Name)
		}
		id := e.ID()
		v.entries[id] = e
		v.byName[key] = id
		v.order[e.Kind] = append(v.order[e.Kind], id)
	}
	return v, nil
}

var tagKindSet = map[core.TagKind]struct{}{
	core.TagKindAxis:     {},
	core.TagKindTool:     {},
	core.TagKindVirtue:   {},
	core.TagKindStrategy: {},
	core.TagKindDomain:   {},
}

// Resolve implements Resolver. The name is normalized before lookup, so
// "Sciences", "sciences" and "  sciences " all resolve to the same tag.
func (v *Vocabulary) Resolve(kind core.TagKind, name string) (core.TagID, bool) {
	id, ok := v.byName[nameKey{kind: kind, name: Normalize(name)}]
	return id, ok
}

// Name implements Namer.
func (v *Vocabulary) Name(id core.TagID) (string, bool) {
	e, ok := v.entries[id]
	if !ok {
		return "", false
	}
	return e.Name, true
}

// Entry returns the vocabulary entry of id.
func (v *Vocabulary) Entry(id core.TagID) (Entry, bool) {
	e, ok := v.entries[id]
	return e, ok
}

// Entries returns the entries of a kind in definition order.
func (v *Vocabulary) Entries(kind core.TagKind) []Entry {
	ids := v.order[kind]
	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		out = append(out, v.entries[id])
	}
	return out
}

// Len returns the number of entries across all kinds.
func (v *Vocabulary) Len() int {
	return len(v.entries)
}

// Names renders a tag set as canonical names, sorted alphabetically.
// Unknown identifiers are rendered by their numeric value.
func Names(namer Namer, set core.TagSet) []string {
	names := make([]string, 0, len(set))
	for _, id := range set {
		names = append(names, NameOf(namer, id))
	}
	slices.Sort(names)
	return names
}

// NameOf renders a single tag. NoTag renders as the empty string.
func NameOf(namer Namer, id core.TagID) string {
	if id == core.NoTag {
		return ""
	}
	if namer != nil {
		if name, ok := namer.Name(id); ok {
			return name
		}
	}
	return fmt.Sprintf("#%d", uint64(id))
}

// ResolveAll resolves names of one kind into a tag set.
// Unresolved names are returned separately.
func ResolveAll(r Resolver, kind core.TagKind, names []string) (core.TagSet, []string) {
	var ids []core.TagID
	var missing []string
	for _, name := range names {
		if id, ok := r.Resolve(kind, name); ok {
			ids = append(ids, id)
		} else {
			missing = append(missing, name)
		}
	}
	return core.NewTagSet(ids...), missing
}

// file is the YAML layout of a vocabulary file.
type file struct {
	Axes       []Entry `yaml:"axes"`
	Tools      []Entry `yaml:"tools"`
	Virtues    []Entry `yaml:"virtues"`
	Strategies []Entry `yaml:"strategies"`
	Domains    []Entry `yaml:"domains"`
}

// Parse reads a vocabulary from YAML.
func Parse(data []byte) (*Vocabulary, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidVocabulary, err)
	}
	var entries []Entry
	for _, g := range []struct {
		kind    core.TagKind
		entries []Entry
	}{
		{core.TagKindAxis, f.Axes},
		{core.TagKindTool, f.Tools},
		{core.TagKindVirtue, f.Virtues},
		{core.TagKindStrategy, f.Strategies},
		{core.TagKindDomain, f.Domains},
	} {
		for _, e := range g.entries {
			e.Kind = g.kind
			entries = append(entries, e)
		}
	}
	return New(entries...)
}

// Load reads a vocabulary YAML file.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded vocabulary", "path", path, "entries", v.Len())
	return v, nil
}
