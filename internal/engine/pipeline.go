package engine

import (
	"context"

	"github.com/PandaNeatBook/analizza-log-traccia3/internal/model"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// LoaderFunc reads a dataset from path.
// This allows the engine package to not depend on storage package directly.
type LoaderFunc func(ctx context.Context, path string) ([]model.LogRecord, error)

// PersisterFunc writes a result to path.
type PersisterFunc func(ctx context.Context, result *AnalysisResult, path string) error

// Config carries the resolved paths of one run.
type Config struct {
	InputPath  string
	OutputPath string
}

// Pipeline runs load -> view -> aggregate -> persist, stopping at the first error.
type Pipeline struct {
	Load    LoaderFunc
	Persist PersisterFunc

	// Columns defaults to DefaultColumns when nil.
	Columns Columns
	// Filter, if set, drops rows before the view is built.
	Filter *RowFilter
	// Strict validates every row width when the view is built.
	Strict bool
	// Concurrent computes the three aggregates in parallel.
	Concurrent bool
}

// Run executes one analysis. Nothing is written when any stage fails.
func (p *Pipeline) Run(ctx context.Context, cfg Config) (*AnalysisResult, error) {
	logger := zerolog.Ctx(ctx)
	cols := p.Columns
	if cols == nil {
		cols = DefaultColumns
	}

	// === Step 1: Load ===
	records, err := p.Load(ctx, cfg.InputPath)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	logger.Info().Int("rows", len(records)).Str("path", cfg.InputPath).Msg("logs loaded")

	if !p.Filter.Empty() {
		records = p.Filter.Apply(records)
		logger.Info().Str("filter", p.Filter.String()).Int("rows", len(records)).Msg("filter applied")
		if len(records) == 0 {
			return nil, ErrEmptyInput
		}
	}

	// === Step 2: Build view ===
	var opts []ViewOption
	if p.Strict {
		opts = append(opts, WithStrictWidth())
	}
	view, err := NewTabularView(records, opts...)
	if err != nil {
		return nil, err
	}
	rows, columns := view.Size()
	logger.Info().Int("rows", rows).Int("columns", columns).Msg("table created")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// === Step 3: Aggregate ===
	result, err := aggregate(ctx, view, cols, p.Concurrent)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Int("users", len(result.UniqueUsers)).
		Int("events", len(result.UniqueEvents)).
		Msg("aggregates computed")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// === Step 4: Persist ===
	if err := p.Persist(ctx, result, cfg.OutputPath); err != nil {
		return nil, err
	}
	logger.Info().Str("path", cfg.OutputPath).Msg("results saved")

	return result, nil
}

// aggregate computes the three aggregates. They only read the view, so the
// concurrent mode needs no locking.
func aggregate(ctx context.Context, view *TabularView, cols Columns, concurrent bool) (*AnalysisResult, error) {
	var res AnalysisResult
	tasks := []func() error{
		func() (err error) {
			res.UniqueUsers, err = UniqueColumn(view, cols.UserColumn())
			return err
		},
		func() (err error) {
			res.UniqueEvents, err = UniqueColumn(view, cols.EventColumn())
			return err
		},
		func() (err error) {
			res.EventCounts, err = CountColumn(view, cols.EventColumn())
			return err
		},
	}

	if !concurrent {
		for _, task := range tasks {
			if err := task(); err != nil {
				return nil, err
			}
		}
		return &res, nil
	}

	g, _ := errgroup.WithContext(ctx)
	for _, task := range tasks {
		g.Go(task)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &res, nil
}
