package feed

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-indicator/internal/indicator"
	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/rxtech-lab/argo-indicator/mocks"
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type FeedTestSuite struct {
	suite.Suite
	bars []types.Bar
	path string
}

func TestFeedSuite(t *testing.T) {
	suite.Run(t, new(FeedTestSuite))
}

func (suite *FeedTestSuite) SetupTest() {
	suite.bars = mocks.GenerateBars(50)
	suite.path = filepath.Join(suite.T().TempDir(), "bars.csv")
	suite.Require().NoError(WriteCSV(suite.path, suite.bars))
}

func (suite *FeedTestSuite) between(from, to int) Range {
	return Range{
		Start: optional.Some(suite.bars[from].Time),
		End:   optional.Some(suite.bars[to].Time),
	}
}

func (suite *FeedTestSuite) TestRangeContains() {
	r := suite.between(10, 20)

	suite.True(r.Contains(suite.bars[10].Time))
	suite.True(r.Contains(suite.bars[20].Time))
	suite.False(r.Contains(suite.bars[9].Time))
	suite.False(r.Contains(suite.bars[21].Time))
	suite.True(All().Contains(time.Time{}))
}

func (suite *FeedTestSuite) TestCSVRoundTrip() {
	source, err := NewCSVSource(suite.path)
	suite.Require().NoError(err)
	defer source.Close()

	bars, err := Collect(source, All())
	suite.Require().NoError(err)
	suite.Require().Len(bars, len(suite.bars))

	for i, bar := range bars {
		suite.True(bar.Time.Equal(suite.bars[i].Time))
		suite.Equal(suite.bars[i].Symbol, bar.Symbol)
		suite.True(bar.Close.Equal(suite.bars[i].Close), "close %d", i)
		suite.True(bar.Volume.Equal(suite.bars[i].Volume), "volume %d", i)
	}
}

func (suite *FeedTestSuite) TestCSVRange() {
	source, err := NewCSVSource(suite.path)
	suite.Require().NoError(err)

	count, err := source.Count(suite.between(10, 19))
	suite.NoError(err)
	suite.Equal(10, count)

	bars, err := Collect(source, suite.between(10, 19))
	suite.NoError(err)
	suite.True(bars[0].Time.Equal(suite.bars[10].Time))
}

func (suite *FeedTestSuite) TestCSVMissingFile() {
	_, err := NewCSVSource(filepath.Join(suite.T().TempDir(), "missing.csv"))
	suite.True(errors.HasCode(err, errors.ErrCodeFeedOpenFailed))
}

func (suite *FeedTestSuite) TestReplayIntoGraph() {
	source, err := NewCSVSource(suite.path)
	suite.Require().NoError(err)

	node := indicator.NewBarIdentity(nil)
	sma, err := indicator.NewSMA(node, 5)
	suite.Require().NoError(err)

	pushed, err := Replay(context.Background(), source, node, All())
	suite.NoError(err)
	suite.Equal(len(suite.bars), pushed)
	suite.Equal(len(suite.bars), sma.Len())
	suite.True(sma.Tail().IsSome())
}

func (suite *FeedTestSuite) TestReplayWithLimitAndProgress() {
	source, err := NewCSVSource(suite.path)
	suite.Require().NoError(err)

	node := indicator.NewBarIdentity(nil)

	pushed, err := Replay(context.Background(), source, node, All(), WithLimit(20), WithProgress())
	suite.NoError(err)
	suite.Equal(20, pushed)

	first, err := node.SourceAt(0)
	suite.NoError(err)
	suite.True(first.Time.Equal(suite.bars[30].Time))
}

func (suite *FeedTestSuite) TestReplayCancelled() {
	source, err := NewCSVSource(suite.path)
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pushed, err := Replay(ctx, source, indicator.NewBarIdentity(nil), All())
	suite.ErrorIs(err, context.Canceled)
	suite.Zero(pushed)
}

func (suite *FeedTestSuite) TestDuckDBFromCSV() {
	source, err := NewDuckDBSource(suite.path, nil)
	suite.Require().NoError(err)
	defer source.Close()

	count, err := source.Count(All())
	suite.NoError(err)
	suite.Equal(len(suite.bars), count)

	bars, err := Collect(source, All())
	suite.Require().NoError(err)
	suite.Require().Len(bars, len(suite.bars))

	for i, bar := range bars {
		suite.InDelta(suite.bars[i].Close.InexactFloat64(), bar.Close.InexactFloat64(), 1e-9)
	}

	count, err = source.Count(suite.between(5, 14))
	suite.NoError(err)
	suite.Equal(10, count)
}

func (suite *FeedTestSuite) TestDuckDBSymbolFilter() {
	source, err := NewDuckDBSource(suite.path, nil, WithSymbol("ETHUSDT"))
	suite.Require().NoError(err)
	defer source.Close()

	count, err := source.Count(All())
	suite.NoError(err)
	suite.Zero(count)
}

func (suite *FeedTestSuite) TestDuckDBMissingFile() {
	_, err := NewDuckDBSource(filepath.Join(suite.T().TempDir(), "missing.parquet"), nil)
	suite.True(errors.HasCode(err, errors.ErrCodeFeedOpenFailed))
}
