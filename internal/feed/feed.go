// Package feed reads historical bars and replays them into an indicator graph.
package feed

import (
	"context"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

// Range limits a read to bars whose time lies in [Start, End]. Absent bounds are open.
type Range struct {
	Start optional.Option[time.Time]
	End   optional.Option[time.Time]
}

// All is the unbounded range.
func All() Range {
	return Range{Start: optional.None[time.Time](), End: optional.None[time.Time]()}
}

// Contains reports whether t lies in the range.
func (r Range) Contains(t time.Time) bool {
	if r.Start.IsSome() && t.Before(r.Start.Unwrap()) {
		return false
	}

	if r.End.IsSome() && t.After(r.End.Unwrap()) {
		return false
	}

	return true
}

// Source is a finite, time ordered bar feed.
type Source interface {
	// Count returns the number of bars in the range.
	Count(r Range) (int, error)
	// ReadAll yields the bars in the range in time order. Iteration stops at
	// the first error.
	ReadAll(r Range) func(yield func(types.Bar, error) bool)
	Close() error
}

// Sink receives replayed bars, typically a bar node or a composite.
type Sink interface {
	Add(bar types.Bar)
}

type replayConfig struct {
	progress bool
	limit    int
}

// ReplayOption configures Replay.
type ReplayOption func(*replayConfig)

// WithProgress draws a progress bar on stderr while replaying.
func WithProgress() ReplayOption {
	return func(c *replayConfig) {
		c.progress = true
	}
}

// WithLimit keeps only the last n bars of the range.
func WithLimit(n int) ReplayOption {
	return func(c *replayConfig) {
		c.limit = n
	}
}

// Replay pushes every bar of the range into sink in time order and returns the
// number of bars pushed.
func Replay(ctx context.Context, source Source, sink Sink, r Range, opts ...ReplayOption) (int, error) {
	var cfg replayConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	total, err := source.Count(r)
	if err != nil {
		return 0, err
	}

	skip := 0
	if cfg.limit > 0 && total > cfg.limit {
		skip = total - cfg.limit
	}

	var bar *progressbar.ProgressBar
	if cfg.progress {
		bar = progressbar.NewOptions(total-skip,
			progressbar.OptionSetDescription("Replaying bars"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	seen, pushed := 0, 0

	for b, err := range source.ReadAll(r) {
		if err != nil {
			return pushed, errors.Wrap(errors.ErrCodeFeedReadFailed, "failed to read bar", err)
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return pushed, ctxErr
		}

		seen++
		if seen <= skip {
			continue
		}

		sink.Add(b)
		pushed++

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return pushed, nil
}

// Collect reads the whole range into memory.
func Collect(source Source, r Range) ([]types.Bar, error) {
	var bars []types.Bar

	for b, err := range source.ReadAll(r) {
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFeedReadFailed, "failed to read bar", err)
		}

		bars = append(bars, b)
	}

	return bars, nil
}
