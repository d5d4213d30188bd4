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


// Package ai defines the lesson drafting service and its configuration.
//
// The Drafter interface abstracts a generative model that writes a new
// lesson sheet from a brief (a query profile) and a few ranked examples
// from the catalog. This is the example-based generation step that the
// similarity search is meant to feed.
//
// Implementations live in subpackages:
//   - openai: OpenAI-compatible chat APIs (Ollama, LocalAI, vLLM, OpenAI)
//   - mock: deterministic drafter for tests
//
// # Usage
//
//	config := ai.NewConfig(ai.WithHost("http://localhost:11434"), ai.WithModel("qwen2.5:7b"))
//	drafter, err := openai.NewDrafter(config, vocab.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	matches, err := searcher.FindSimilar(ctx, brief, config.MaxExamples)
//	draft, err := drafter.DraftLesson(ctx, brief, matches)
//
// BuildPromptInput renders a brief and its examples as plain text and is
// shared by every drafter implementation.
package ai
