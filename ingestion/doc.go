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


// Package ingestion loads lesson catalog files into the lesson repository.
//
// A catalog file is a JSON document of the form
//
//	{"lessons": [{"id": "lesson_001", "title": "...", "domain": "sciences",
//	  "axes": [...], "tools": [...], "strategies": [...], "virtues": [...],
//	  "target_age_min": 8, "target_age_max": 12, "duration": 2.0,
//	  "group_size_min": 15, "group_size_max": 30}]}
//
// Vocabulary names are resolved through a vocab.Resolver; unknown names are
// dropped with a warning. The "id" field is the lesson's external key:
// loading a key that already exists updates the stored lesson instead of
// adding a second one. Records that fail validation are skipped.
//
// A whole file is loaded in one transaction.
package ingestion
