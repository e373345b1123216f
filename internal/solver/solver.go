// Package solver finds the price of the newest bar at which an indicator
// reaches a target, by bisecting over that bar's close.
package solver

import (
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Bars is a bar series whose last index may be rewritten. Every update must
// cascade synchronously through the indicators the objective reads.
type Bars interface {
	Len() int
	SourceAt(index int) (types.Bar, error)
	Update(index int, bar types.Bar) error
}

// Direction tells the solver which way the price has to move.
type Direction int

const (
	// Up means raising the price moves toward the target.
	Up Direction = iota
	// Down means lowering the price moves toward the target.
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}

	return "up"
}

// Side is the outcome of one probe.
type Side int

const (
	// Short means the target is not reached.
	Short Side = iota
	// Exact means the target is hit exactly.
	Exact
	// Over means the target is passed. It counts as a match.
	Over
)

func (s Side) String() string {
	switch s {
	case Exact:
		return "exact"
	case Over:
		return "over"
	default:
		return "short"
	}
}

// Objective evaluates the graph at the probed index.
type Objective interface {
	// Direction is read once, on the unmodified graph, before probing.
	Direction() Direction
	Evaluate(index int) Side
}

// Result is the outcome of a search. Price is meaningful only when Found.
type Result struct {
	Price      decimal.Decimal
	Found      bool
	Exact      bool
	Iterations int
}

const defaultIterations = 100

var two = decimal.NewFromInt(2)

// Solver bisects the close of the last bar.
type Solver struct {
	iterations int
	tolerance  decimal.Decimal
	logger     *zap.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithIterations caps the number of probes.
func WithIterations(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.iterations = n
		}
	}
}

// WithTolerance stops the search once the bracket is narrower than d.
func WithTolerance(d decimal.Decimal) Option {
	return func(s *Solver) {
		s.tolerance = d
	}
}

// WithLogger sets the logger used for per-probe debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a solver with 100 iterations and no tolerance.
func New(opts ...Option) *Solver {
	s := &Solver{
		iterations: defaultIterations,
		tolerance:  decimal.Zero,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve searches the close of the last bar that makes objective reach its
// target. The search range is [min(lows)/2, max(highs)*2]. The last bar is
// restored before Solve returns and no other bar is touched. When the target
// is already reached, or cannot be reached, Found is false.
func (s *Solver) Solve(bars Bars, objective Objective) Result {
	last := bars.Len() - 1
	if last < 0 {
		return Result{}
	}

	original, err := bars.SourceAt(last)
	if err != nil {
		s.logger.Warn("Failed to read last bar", zap.Error(err))

		return Result{}
	}

	if side := objective.Evaluate(last); side != Short {
		s.logger.Debug("Target already reached", zap.Stringer("side", side))

		return Result{}
	}

	direction := objective.Direction()

	low, high, err := priceRange(bars, last)
	if err != nil {
		s.logger.Warn("Failed to read bars", zap.Error(err))

		return Result{}
	}

	defer func() {
		if err := bars.Update(last, original); err != nil {
			s.logger.Error("Failed to restore last bar", zap.Error(err))
		}
	}()

	var result Result

	for result.Iterations < s.iterations {
		if high.Sub(low).LessThanOrEqual(s.tolerance) {
			break
		}

		result.Iterations++
		mid := low.Add(high).Div(two)

		if err := bars.Update(last, original.WithClose(mid)); err != nil {
			s.logger.Warn("Failed to probe price", zap.String("price", mid.String()), zap.Error(err))

			break
		}

		side := objective.Evaluate(last)
		s.logger.Debug("Probe",
			zap.Int("iteration", result.Iterations),
			zap.String("price", mid.String()),
			zap.Stringer("side", side),
			zap.Stringer("direction", direction),
		)

		switch side {
		case Exact:
			result.Price = mid
			result.Found = true
			result.Exact = true

			return result
		case Over:
			result.Price = mid
			result.Found = true

			if direction == Up {
				high = mid
			} else {
				low = mid
			}
		default:
			if direction == Up {
				low = mid
			} else {
				high = mid
			}
		}
	}

	return result
}

// priceRange brackets the search between half the lowest low and twice the
// highest high.
func priceRange(bars Bars, last int) (low, high decimal.Decimal, err error) {
	for i := 0; i <= last; i++ {
		bar, err := bars.SourceAt(i)
		if err != nil {
			return low, high, err
		}

		if i == 0 || bar.Low.LessThan(low) {
			low = bar.Low
		}

		if i == 0 || bar.High.GreaterThan(high) {
			high = bar.High
		}
	}

	return low.Div(two), high.Mul(two), nil
}

// Solve runs a solver built from opts.
func Solve(bars Bars, objective Objective, opts ...Option) Result {
	return New(opts...).Solve(bars, objective)
}
