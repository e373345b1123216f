package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-indicator/internal/feed"
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AppTestSuite struct {
	suite.Suite

	data string
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

// fallingBars drops the close by 0.5 every minute, from 200 down to 140.5.
func fallingBars(n int) []types.Bar {
	start := time.Date(2025, 1, 2, 9, 30, 0, 0, time.UTC)
	step := decimal.NewFromFloat(0.5)
	bars := make([]types.Bar, n)

	for i := range bars {
		closing := decimal.NewFromInt(200).Sub(step.Mul(decimal.NewFromInt(int64(i))))
		open := closing.Add(step)
		bars[i] = types.Bar{
			Time:   start.Add(time.Duration(i) * time.Minute),
			Symbol: "TEST",
			Open:   open,
			High:   open.Add(decimal.NewFromFloat(0.2)),
			Low:    closing.Sub(decimal.NewFromFloat(0.2)),
			Close:  closing,
			Volume: decimal.NewFromInt(1000),
		}
	}

	return bars
}

func (suite *AppTestSuite) SetupTest() {
	suite.data = filepath.Join(suite.T().TempDir(), "bars.csv")
	suite.Require().NoError(feed.WriteCSV(suite.data, fallingBars(120)))
}

func (suite *AppTestSuite) run(args ...string) (string, error) {
	var out bytes.Buffer

	app := newApp()
	app.Writer = &out
	err := app.Run(context.Background(), append([]string{"argo-indicator", "--log-level", "error"}, args...))

	return out.String(), err
}

func (suite *AppTestSuite) TestRatings() {
	out, err := suite.run("ratings", "--data", suite.data, "--rows", "3", "--votes")
	suite.Require().NoError(err)

	suite.Contains(out, "Technical ratings")
	suite.Contains(out, "Summary")
	suite.Contains(out, "140.5")
	suite.Contains(out, string(types.Named(types.IndicatorTypeSMA, 10)))
}

func (suite *AppTestSuite) TestSolveRating() {
	out, err := suite.run("solve", "--data", suite.data, "--target", "buy")
	suite.Require().NoError(err)

	suite.Contains(out, "Solve rating BUY")
	suite.Contains(out, "Last close: 140.5")
}

func (suite *AppTestSuite) TestSolveRSIRestoresLastBar() {
	out, err := suite.run("solve", "--data", suite.data, "--rsi-above", "70")
	suite.Require().NoError(err)

	// The RSI of a steady fall is 0, so a large enough last close lifts it past 70.
	suite.Contains(out, "Solve RSI above 70")
	suite.Regexp(`(Exact price|Price): `, out)
	suite.NotContains(out, "No price in range")
	suite.Contains(out, "Last close: 140.5")
}

func (suite *AppTestSuite) TestSolveNeedsObjective() {
	_, err := suite.run("solve", "--data", suite.data)
	suite.True(errors.HasCode(err, errors.ErrCodeMissingParameter))

	_, err = suite.run("solve", "--data", suite.data, "--target", "moon")
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))
}

func (suite *AppTestSuite) TestMissingData() {
	_, err := suite.run("ratings", "--data", filepath.Join(suite.T().TempDir(), "missing.csv"))
	suite.True(errors.HasCode(err, errors.ErrCodeFeedOpenFailed))
}

func (suite *AppTestSuite) TestSchema() {
	out, err := suite.run("schema")
	suite.Require().NoError(err)

	suite.Contains(out, "ma_periods")
	suite.Contains(out, "range_filter")
}
