package feed

import (
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
)

// CSVSource reads bars from a CSV file with a header of time, symbol, open,
// high, low, close and volume. Times are RFC 3339 and rows must be in time order.
type CSVSource struct {
	path string
}

// NewCSVSource checks that path exists and returns a source reading it.
func NewCSVSource(path string) (*CSVSource, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeFeedOpenFailed, err, "failed to open %s", path)
	}

	return &CSVSource{path: path}, nil
}

// Count implements Source.
func (c *CSVSource) Count(r Range) (int, error) {
	count := 0

	for _, err := range c.ReadAll(r) {
		if err != nil {
			return 0, err
		}

		count++
	}

	return count, nil
}

// errStop ends gocsv's callback loop when the consumer stops iterating.
var errStop = errors.New(errors.ErrCodeUnknown, "iteration stopped")

// ReadAll implements Source.
func (c *CSVSource) ReadAll(r Range) func(yield func(types.Bar, error) bool) {
	return func(yield func(types.Bar, error) bool) {
		file, err := os.Open(c.path)
		if err != nil {
			yield(types.Bar{}, errors.Wrapf(errors.ErrCodeFeedOpenFailed, err, "failed to open %s", c.path))

			return
		}
		defer file.Close()

		err = gocsv.UnmarshalToCallbackWithError(file, func(bar types.Bar) error {
			if !r.Contains(bar.Time) {
				return nil
			}

			if !yield(bar, nil) {
				return errStop
			}

			return nil
		})
		if err != nil && !errors.Is(err, errStop) {
			yield(types.Bar{}, errors.Wrapf(errors.ErrCodeFeedParseFailed, err, "failed to parse %s", c.path))
		}
	}
}

// Close implements Source.
func (c *CSVSource) Close() error {
	return nil
}

// WriteCSV writes bars to path in the format CSVSource reads.
func WriteCSV(path string, bars []types.Bar) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeFeedOpenFailed, err, "failed to create %s", path)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&bars, file); err != nil {
		return errors.Wrapf(errors.ErrCodeFeedParseFailed, err, "failed to write %s", path)
	}

	return nil
}
