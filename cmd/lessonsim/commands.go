package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/poiesic/lessonsim"
	"github.com/poiesic/lessonsim/ai"
	"github.com/poiesic/lessonsim/core"
	"github.com/poiesic/lessonsim/ingestion"
	"github.com/poiesic/lessonsim/query"
	"github.com/poiesic/lessonsim/search"
	"github.com/poiesic/lessonsim/vocab"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// openDatabase opens the catalog named by the global --db and --vocab flags.
func openDatabase(c *cli.Context, opts ...lessonsim.DatabaseOption) (*lessonsim.Database, error) {
	dbPath := c.String("db")
	if dbPath == "" {
		return nil, fmt.Errorf("database path is required (--db or LESSONSIM_DB)")
	}

	if path := c.String("vocab"); path != "" {
		v, err := vocab.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load vocabulary: %w", err)
		}
		opts = append(opts, lessonsim.WithVocabulary(v))
	}

	db, err := lessonsim.NewDatabase(dbPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func loadCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	interval := c.Int("report-interval")
	if interval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}

	loader, err := db.NewLoader(ingestion.WithProgress(os.Stderr, interval))
	if err != nil {
		return fmt.Errorf("failed to create loader: %w", err)
	}

	summary, err := loader.LoadFile(ctx, c.String("file"))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Added: %d, updated: %d, skipped: %d\n", summary.Added, summary.Updated, summary.Skipped)
	return nil
}

func similarCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	brief, searcher, err := prepareSearch(c, db)
	if err != nil {
		return err
	}

	matches, err := searcher.FindSimilar(ctx, brief, c.Int("top-k"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if c.Bool("json") {
		return writeJSON(c.App.Writer, matchViews(matches, db.Vocabulary()))
	}
	renderMatches(c.App.Writer, matches, db.Vocabulary())
	return nil
}

func criteriaCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	v := db.Vocabulary()
	criteria := search.Criteria{
		Axes:    resolveFlag(v, core.TagKindAxis, c.StringSlice("axis")),
		Tools:   resolveFlag(v, core.TagKindTool, c.StringSlice("tool")),
		Virtues: resolveFlag(v, core.TagKindVirtue, c.StringSlice("virtue")),
	}
	if c.IsSet("age-min") || c.IsSet("age-max") {
		age, err := rangeFlags(c, "age-min", "age-max")
		if err != nil {
			return err
		}
		criteria.Age = age
	}

	searcher, err := db.NewSearcher()
	if err != nil {
		return err
	}
	lessons, err := searcher.FindByCriteria(ctx, criteria)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if c.Bool("json") {
		return writeJSON(c.App.Writer, lessonViews(lessons, v))
	}
	renderLessons(c.App.Writer, lessons, v)
	return nil
}

func listCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	lessons, err := db.LessonRepository().AllLessons(ctx)
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}

	if c.Bool("json") {
		return writeJSON(c.App.Writer, lessonViews(lessons, db.Vocabulary()))
	}
	renderLessons(c.App.Writer, lessons, db.Vocabulary())
	return nil
}

func draftCommand(c *cli.Context) error {
	ctx := context.Background()

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("llm-host")),
		ai.WithModel(c.String("llm-model")),
		ai.WithToken(c.String("llm-token")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := openDatabase(c, lessonsim.WithAIConfig(aiConfig))
	if err != nil {
		return err
	}
	defer db.Close()

	brief, searcher, err := prepareSearch(c, db)
	if err != nil {
		return err
	}
	drafter, err := db.NewDrafter()
	if err != nil {
		return fmt.Errorf("failed to create drafter: %w", err)
	}

	topK := min(c.Int("top-k"), aiConfig.MaxExamples)
	matches, draft, err := draftLesson(ctx, searcher, drafter, brief, topK)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		return writeJSON(c.App.Writer, draftView{
			Draft:    draft,
			Examples: matchViews(matches, db.Vocabulary()),
		})
	}
	renderDraft(c.App.Writer, draft, matches)
	return nil
}

// draftLesson ranks the catalog against brief and drafts a lesson from the
// best matches.
func draftLesson(ctx context.Context, searcher *search.Searcher, drafter ai.Drafter, brief *core.Lesson, topK int) ([]*core.Match, *ai.Draft, error) {
	matches, err := searcher.FindSimilar(ctx, brief, topK)
	if err != nil {
		return nil, nil, fmt.Errorf("search failed: %w", err)
	}
	draft, err := drafter.DraftLesson(ctx, brief, matches)
	if err != nil {
		return nil, nil, fmt.Errorf("drafting failed: %w", err)
	}
	return matches, draft, nil
}

// prepareSearch builds the query profile and a searcher from the query
// and rank flags.
func prepareSearch(c *cli.Context, db *lessonsim.Database) (*core.Lesson, *search.Searcher, error) {
	builder, err := db.NewQueryBuilder()
	if err != nil {
		return nil, nil, err
	}
	brief, err := builder.Build(rawQuery(c))
	if err != nil {
		return nil, nil, err
	}

	weights := core.DefaultWeights()
	if path := c.String("weights-file"); path != "" {
		weights, err = loadWeights(path)
		if err != nil {
			return nil, nil, err
		}
	}
	weights, err = applyWeightOverrides(weights, c.StringSlice("weight"))
	if err != nil {
		return nil, nil, err
	}

	searcher, err := db.NewSearcher(
		search.WithWeights(weights),
		search.WithMinSimilarity(c.Float64("min-similarity")),
	)
	if err != nil {
		return nil, nil, err
	}
	return brief, searcher, nil
}

// rawQuery collects the query flags. Numeric flags are only passed on when
// set explicitly.
func rawQuery(c *cli.Context) query.Raw {
	raw := query.Raw{
		Title:       c.String("title"),
		Description: c.String("description"),
		Domain:      c.String("domain"),
		Discipline:  c.String("discipline"),
		Axes:        c.StringSlice("axis"),
		Tools:       c.StringSlice("tool"),
		Virtues:     c.StringSlice("virtue"),
		Strategies:  c.StringSlice("strategy"),
	}
	raw.TargetAgeMin = intFlag(c, "age-min")
	raw.TargetAgeMax = intFlag(c, "age-max")
	raw.GroupSizeMin = intFlag(c, "group-min")
	raw.GroupSizeMax = intFlag(c, "group-max")
	if c.IsSet("duration") {
		d := c.Float64("duration")
		raw.Duration = &d
	}
	return raw
}

func intFlag(c *cli.Context, name string) *int {
	if !c.IsSet(name) {
		return nil
	}
	v := c.Int(name)
	return &v
}

func rangeFlags(c *cli.Context, minName, maxName string) (*core.IntRange, error) {
	lo, hi := intFlag(c, minName), intFlag(c, maxName)
	if lo == nil {
		lo = hi
	}
	if hi == nil {
		hi = lo
	}
	r := core.IntRange{Min: *lo, Max: *hi}
	if err := core.ValidateRange(r); err != nil {
		return nil, fmt.Errorf("--%s/--%s: %w", minName, maxName, err)
	}
	return &r, nil
}

func resolveFlag(v *vocab.Vocabulary, kind core.TagKind, names []string) core.TagSet {
	set, missing := vocab.ResolveAll(v, kind, names)
	for _, name := range missing {
		slog.Warn("ignoring unknown vocabulary name", "component", "cli", "kind", kind, "name", name)
	}
	return set
}

// loadWeights reads a YAML weights file. Dimensions missing from the file
// keep their default weight.
func loadWeights(path string) (core.Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Weights{}, fmt.Errorf("failed to read weights file: %w", err)
	}
	return parseWeights(data)
}

func parseWeights(data []byte) (core.Weights, error) {
	weights := core.DefaultWeights()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&weights); err != nil && !errors.Is(err, io.EOF) {
		return core.Weights{}, fmt.Errorf("invalid weights file: %w", err)
	}
	if err := core.ValidateWeights(weights); err != nil {
		return core.Weights{}, err
	}
	return weights, nil
}

// applyWeightOverrides applies --weight flags of the form "dimension=value".
func applyWeightOverrides(weights core.Weights, overrides []string) (core.Weights, error) {
	for _, o := range overrides {
		name, value, ok := strings.Cut(o, "=")
		if !ok {
			return core.Weights{}, fmt.Errorf("invalid --weight %q: expected dimension=value", o)
		}
		d, err := core.ParseDimension(strings.TrimSpace(name))
		if err != nil {
			return core.Weights{}, fmt.Errorf("invalid --weight %q: %w", o, err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return core.Weights{}, fmt.Errorf("invalid --weight %q: %w", o, err)
		}
		weights = weights.With(d, v)
	}
	if err := core.ValidateWeights(weights); err != nil {
		return core.Weights{}, err
	}
	return weights, nil
}

func vocabCommand(c *cli.Context) error {
	v := vocab.Default()
	if path := c.String("vocab"); path != "" {
		loaded, err := vocab.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load vocabulary: %w", err)
		}
		v = loaded
	}

	kinds := core.TagKinds()
	if name := c.String("kind"); name != "" {
		kind, err := core.ParseTagKind(name)
		if err != nil {
			return err
		}
		kinds = []core.TagKind{kind}
	}

	if c.Args().Present() {
		if len(kinds) != 1 {
			return fmt.Errorf("--kind is required to look up names")
		}
		for _, name := range c.Args().Slice() {
			id, ok := v.Resolve(kinds[0], name)
			if !ok {
				return fmt.Errorf("unknown %s %q", kinds[0], name)
			}
			entry, _ := v.Entry(id)
			renderEntry(c.App.Writer, entry, true)
		}
		return nil
	}

	for _, kind := range kinds {
		for _, entry := range v.Entries(kind) {
			renderEntry(c.App.Writer, entry, false)
		}
	}
	return nil
}
