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


// Package vocab holds the controlled vocabularies lessons are tagged with.
//
// Each tag kind (axis, tool, virtue, strategy, domain) has its own closed set
// of canonical names. A name maps to a core.TagID derived from its kind and
// canonical form, so identifiers are stable across processes and databases.
//
// Names are compared after Normalize, which folds case, accents and
// separators. The built-in vocabulary is returned by Default; custom
// vocabularies are read from YAML with Load:
//
//	axes:
//	  - name: peace_with_self
//	    label: Peace with self
//	virtues:
//	  - name: empathy
package vocab
