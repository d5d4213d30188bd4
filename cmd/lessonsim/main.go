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


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "lessonsim",
		Usage: "Find similar pedagogical lessons and draft new ones from them",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"LESSONSIM_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory",
				EnvVars: []string{"LESSONSIM_DB"},
			},
			&cli.StringFlag{
				Name:    "vocab",
				Usage:   "Vocabulary YAML file (built-in vocabulary when empty)",
				EnvVars: []string{"LESSONSIM_VOCAB"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "load",
				Usage:  "Load a JSON lesson catalog into the database",
				Action: loadCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Catalog JSON file",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N lessons",
						Value: 100,
					},
				},
			},
			{
				Name:   "similar",
				Usage:  "Rank catalog lessons by similarity to a query profile",
				Action: similarCommand,
				Flags:  append(queryFlags(), rankFlags()...),
			},
			{
				Name:   "criteria",
				Usage:  "List catalog lessons matching hard criteria",
				Action: criteriaCommand,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "axis", Usage: "Peace axis (repeatable)"},
					&cli.StringSliceFlag{Name: "tool", Usage: "Pedagogical tool (repeatable)"},
					&cli.StringSliceFlag{Name: "virtue", Usage: "Virtue (repeatable)"},
					&cli.IntFlag{Name: "age-min", Usage: "Minimum target age"},
					&cli.IntFlag{Name: "age-max", Usage: "Maximum target age"},
					&cli.BoolFlag{Name: "json", Usage: "Print JSON instead of text"},
				},
			},
			{
				Name:   "list",
				Usage:  "List the catalog",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Print JSON instead of text"},
				},
			},
			{
				Name:      "vocab",
				Usage:     "List vocabulary entries, or show the named entries of one kind",
				ArgsUsage: "[name...]",
				Action:    vocabCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "kind", Usage: "Tag kind (axis, tool, virtue, strategy, domain)"},
				},
			},
			{
				Name:   "draft",
				Usage:  "Draft a new lesson from a brief and its most similar lessons",
				Action: draftCommand,
				Flags: append(append(queryFlags(), rankFlags()...),
					&cli.StringFlag{
						Name:    "llm-host",
						Usage:   "OpenAI-compatible API host URL",
						Value:   "http://localhost:11434/v1",
						EnvVars: []string{"LESSONSIM_LLM_HOST"},
					},
					&cli.StringFlag{
						Name:    "llm-model",
						Usage:   "Chat model name",
						Value:   "qwen2.5:7b",
						EnvVars: []string{"LESSONSIM_LLM_MODEL"},
					},
					&cli.StringFlag{
						Name:    "llm-token",
						Usage:   "API token (local servers accept any value)",
						EnvVars: []string{"LESSONSIM_LLM_TOKEN", "OPENAI_API_KEY"},
					},
				),
			},
		},
	}
}

func queryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "title", Usage: "Lesson title", Required: true},
		&cli.StringFlag{Name: "description", Usage: "Lesson description"},
		&cli.StringFlag{Name: "domain", Usage: "Subject domain"},
		&cli.StringFlag{Name: "discipline", Usage: "Discipline"},
		&cli.StringSliceFlag{Name: "axis", Usage: "Peace axis (repeatable)"},
		&cli.StringSliceFlag{Name: "tool", Usage: "Pedagogical tool (repeatable)"},
		&cli.StringSliceFlag{Name: "virtue", Usage: "Virtue (repeatable)"},
		&cli.StringSliceFlag{Name: "strategy", Usage: "Teaching strategy (repeatable)"},
		&cli.IntFlag{Name: "age-min", Usage: "Minimum target age"},
		&cli.IntFlag{Name: "age-max", Usage: "Maximum target age"},
		&cli.Float64Flag{Name: "duration", Usage: "Duration in hours"},
		&cli.IntFlag{Name: "group-min", Usage: "Minimum group size"},
		&cli.IntFlag{Name: "group-max", Usage: "Maximum group size"},
	}
}

func rankFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "top-k", Aliases: []string{"k"}, Usage: "Number of results", Value: 5},
		&cli.Float64Flag{Name: "min-similarity", Usage: "Minimum similarity score", Value: 0},
		&cli.StringFlag{Name: "weights-file", Usage: "YAML file overriding dimension weights"},
		&cli.StringSliceFlag{Name: "weight", Usage: "Override one weight as dimension=value (repeatable)"},
		&cli.BoolFlag{Name: "json", Usage: "Print JSON instead of text"},
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
