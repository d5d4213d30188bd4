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


// Package similarity scores how alike two lesson profiles are.
//
// Seven dimensions are compared independently:
//   - axes, tools, virtues, strategies: Jaccard similarity of tag sets
//   - age: overlap of the target age ranges
//   - duration: ratio of the shorter to the longer duration
//   - domain: exact match of the academic domain
//
// Each dimension score lies in [0,1]. The composite score is the weighted
// sum of the dimension scores; with weights summing to 1.0 it also lies in
// [0,1]. Missing data on either side scores 0 for the affected dimension.
//
// All functions are pure and symmetric in their lesson arguments.
package similarity
