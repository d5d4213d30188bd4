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


// Package search ranks catalog lessons by similarity to a query profile.
//
// Rank is the pure entry point: it scores an in-memory catalog with the
// similarity package and returns the top matches, each carrying its
// per-dimension breakdown. Searcher wraps a storage.LessonRepository,
// snapshots the catalog and ranks against it, either one query at a time
// or several queries concurrently with FindSimilarBatch.
//
// Ranking is deterministic. Matches are ordered by descending score and
// equal scores keep catalog order, which for stored catalogs is insertion
// order.
//
// Criteria search is a separate, non-scored filter: MatchCriteria keeps
// lessons that share at least one tag with each requested tag set and
// whose age range overlaps the requested one.
package search
