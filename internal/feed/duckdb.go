package feed

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/rxtech-lab/argo-indicator/internal/logger"
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const barsView = "market_data"

// DuckDBSource reads bars from parquet or CSV files through an in-memory
// DuckDB view, optionally restricted to one symbol.
type DuckDBSource struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
	symbol string
}

// DuckDBOption configures a DuckDBSource.
type DuckDBOption func(*DuckDBSource)

// WithSymbol keeps only the bars of symbol.
func WithSymbol(symbol string) DuckDBOption {
	return func(d *DuckDBSource) {
		d.symbol = symbol
	}
}

// NewDuckDBSource opens an in-memory database and exposes the file at path as
// the bars view. Parquet is assumed unless the extension is .csv.
func NewDuckDBSource(path string, log *logger.Logger, opts ...DuckDBOption) (*DuckDBSource, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFeedOpenFailed, "failed to open duckdb", err)
	}

	if log == nil {
		log = &logger.Logger{Logger: zap.NewNop()}
	}

	d := &DuckDBSource{
		db:     db,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}

	for _, opt := range opts {
		opt(d)
	}

	if err := d.initialize(path); err != nil {
		_ = db.Close()

		return nil, err
	}

	return d, nil
}

func (d *DuckDBSource) initialize(path string) error {
	d.logger.Debug("Initializing DuckDB feed", zap.String("path", path))

	reader := "read_parquet"
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		reader = "read_csv_auto"
	}

	// squirrel has no CREATE VIEW; the path is quoted as a SQL literal
	query := fmt.Sprintf(`CREATE OR REPLACE VIEW %s AS SELECT * FROM %s('%s');`,
		barsView, reader, strings.ReplaceAll(path, "'", "''"))

	if _, err := d.db.Exec(query); err != nil {
		return errors.Wrapf(errors.ErrCodeFeedOpenFailed, err, "failed to load %s", path)
	}

	return nil
}

func (d *DuckDBSource) filter(builder squirrel.SelectBuilder, r Range) squirrel.SelectBuilder {
	if r.Start.IsSome() {
		builder = builder.Where(squirrel.GtOrEq{"time": r.Start.Unwrap()})
	}

	if r.End.IsSome() {
		builder = builder.Where(squirrel.LtOrEq{"time": r.End.Unwrap()})
	}

	if d.symbol != "" {
		builder = builder.Where(squirrel.Eq{"symbol": d.symbol})
	}

	return builder
}

// Count implements Source.
func (d *DuckDBSource) Count(r Range) (int, error) {
	query, args, err := d.filter(d.sq.Select("COUNT(*)").From(barsView), r).ToSql()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeFeedReadFailed, "failed to build count query", err)
	}

	var count int
	if err := d.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(errors.ErrCodeFeedReadFailed, "failed to count bars", err)
	}

	return count, nil
}

// ReadAll implements Source.
func (d *DuckDBSource) ReadAll(r Range) func(yield func(types.Bar, error) bool) {
	return func(yield func(types.Bar, error) bool) {
		query, args, err := d.filter(
			d.sq.Select(
				"time",
				"symbol",
				"CAST(open AS DOUBLE)",
				"CAST(high AS DOUBLE)",
				"CAST(low AS DOUBLE)",
				"CAST(close AS DOUBLE)",
				"CAST(volume AS DOUBLE)",
			).From(barsView), r).
			OrderBy("time ASC").
			ToSql()
		if err != nil {
			yield(types.Bar{}, errors.Wrap(errors.ErrCodeFeedReadFailed, "failed to build query", err))

			return
		}

		d.logger.Debug("Reading bars from DuckDB", zap.String("query", query))

		rows, err := d.db.Query(query, args...)
		if err != nil {
			yield(types.Bar{}, errors.Wrap(errors.ErrCodeFeedReadFailed, "failed to query bars", err))

			return
		}
		defer rows.Close()

		for rows.Next() {
			var (
				timestamp                      time.Time
				symbol                         string
				open, high, low, close, volume float64
			)

			if err := rows.Scan(&timestamp, &symbol, &open, &high, &low, &close, &volume); err != nil {
				yield(types.Bar{}, errors.Wrap(errors.ErrCodeFeedParseFailed, "failed to scan bar", err))

				return
			}

			bar := types.Bar{
				Time:   timestamp,
				Symbol: symbol,
				Open:   decimal.NewFromFloat(open),
				High:   decimal.NewFromFloat(high),
				Low:    decimal.NewFromFloat(low),
				Close:  decimal.NewFromFloat(close),
				Volume: decimal.NewFromFloat(volume),
			}

			if !yield(bar, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(types.Bar{}, errors.Wrap(errors.ErrCodeFeedReadFailed, "failed to iterate bars", err))
		}
	}
}

// Close releases the database.
func (d *DuckDBSource) Close() error {
	return d.db.Close()
}
