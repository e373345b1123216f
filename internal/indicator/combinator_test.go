package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type CombinatorTestSuite struct {
	suite.Suite
}

func TestCombinatorSuite(t *testing.T) {
	suite.Run(t, new(CombinatorTestSuite))
}

func sum(values []types.Value) types.Value {
	total := types.NewValue(0)
	for _, v := range values {
		total = total.Add(v)
	}

	return total
}

func (suite *CombinatorTestSuite) TestJoinRecomputesOnEitherInput() {
	a := NewIdentity(nil)
	b := NewIdentity(nil)
	j, err := NewJoin(sum, a, b)
	suite.Require().NoError(err)

	a.Add(types.NewValue(2))
	suite.Equal(1, j.Len())
	suite.True(j.Tail().IsNone())

	b.Add(types.NewValue(3))
	assertSeries(suite.T(), []any{5}, j)

	suite.NoError(b.Update(0, types.NewValue(4)))
	assertSeries(suite.T(), []any{6}, j)
}

func (suite *CombinatorTestSuite) TestJoinReplaysUnevenInputs() {
	a := source(1, 2, 3)
	b := source(10)
	j, err := NewJoin(sum, a, b)
	suite.Require().NoError(err)

	assertSeries(suite.T(), []any{11, none, none}, j)
}

func (suite *CombinatorTestSuite) TestJoinArity() {
	a := source(1)

	_, err := NewJoin(sum, a)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidArity))

	_, err = NewJoin(sum, a, a, a, a, a, a, a)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidArity))

	j, err := NewJoin(sum, a, a, a, a, a, a)
	suite.NoError(err)
	assertSeries(suite.T(), []any{6}, j)
}

func (suite *CombinatorTestSuite) TestJoinAtReadsPreviousIndices() {
	a := source(1, 4)
	b := source(0, 0)
	j, err := NewJoinAt(func(index int) types.Value {
		return a.Value(index).Sub(a.Value(index - 1)).Add(b.Value(index))
	}, a, b)
	suite.Require().NoError(err)

	a.Add(types.NewValue(10))
	b.Add(types.NewValue(1))

	assertSeries(suite.T(), []any{none, 3, 7}, j)
}

func (suite *CombinatorTestSuite) TestTransform() {
	bars := barSource(bar(1, 2, 0, 1, 5))
	hlc3 := Project(Sourced(bars), FieldHLC3)

	assertSeries(suite.T(), []any{1}, hlc3)
}

func (suite *CombinatorTestSuite) TestMovingAggregates() {
	n := source(3, 1, 2, 5, 4)

	total, err := NewMovingSum(n, 2)
	suite.Require().NoError(err)
	highest, err := NewHighest(n, 3)
	suite.Require().NoError(err)
	lowest, err := NewLowest(n, 3)
	suite.Require().NoError(err)

	assertSeries(suite.T(), []any{none, 4, 3, 7, 9}, total)
	assertSeries(suite.T(), []any{none, none, 3, 5, 5}, highest)
	assertSeries(suite.T(), []any{none, none, 1, 1, 2}, lowest)
}

func (suite *CombinatorTestSuite) TestSMAWarmUp() {
	n := source(1, 2, 3, 4, 5)

	sma, err := NewSMA(n, 3)
	suite.Require().NoError(err)
	warm, err := NewSMA(n, 3, WithWarmUp())
	suite.Require().NoError(err)

	assertSeries(suite.T(), []any{none, none, 2, 3, 4}, sma)
	assertSeries(suite.T(), []any{1, 1.5, 2, 3, 4}, warm)
	suite.Equal(3, sma.Period())
}

func (suite *CombinatorTestSuite) TestWindowSkipsGaps() {
	n := NewIdentity(nil)
	sma := newSMA(n, 2)

	n.Add(types.NewValue(1))
	n.Add(types.None())
	n.Add(types.NewValue(3))
	n.Add(types.NewValue(4))

	assertSeries(suite.T(), []any{none, none, none, 3.5}, sma)
}

func (suite *CombinatorTestSuite) TestReplaceLastKeepsExtremes() {
	n := source(1, 5, 2)
	highest := newHighest(n, 3)
	lowest := newLowest(n, 3)

	suite.NoError(n.Update(2, types.NewValue(9)))
	suite.InDelta(9.0, highest.Tail().Float64(), tolerance)
	suite.InDelta(1.0, lowest.Tail().Float64(), tolerance)

	suite.NoError(n.Update(2, types.NewValue(0)))
	suite.InDelta(5.0, highest.Tail().Float64(), tolerance)
	suite.InDelta(0.0, lowest.Tail().Float64(), tolerance)
}

func (suite *CombinatorTestSuite) TestUpdateInsideWindowRebuilds() {
	n := source(1, 2, 3, 4)
	sma := newSMA(n, 2)

	suite.NoError(n.Update(1, types.NewValue(10)))
	n.Add(types.NewValue(6))

	assertSeries(suite.T(), []any{none, 5.5, 2.5, 3.5, 5}, sma)
}

func (suite *CombinatorTestSuite) TestVarianceAndStdDev() {
	n := source(1, 2, 3)

	variance, err := NewVariance(n, 3)
	suite.Require().NoError(err)
	stddev, err := NewStdDev(n, 3)
	suite.Require().NoError(err)

	assertSeries(suite.T(), []any{none, none, 2.0 / 3.0}, variance)
	assertSeries(suite.T(), []any{none, none, 0.816496580927726}, stddev)
}

func (suite *CombinatorTestSuite) TestMovingWindowSnapshot() {
	n := source(1, 2, 3, 4)
	w, err := NewMovingWindow(n, 3)
	suite.Require().NoError(err)

	assertSeries(suite.T(), []any{none, none, 3, 4}, w)

	snapshot := w.Snapshot(3)
	suite.Len(snapshot, 3)
	suite.InDelta(2.0, snapshot[0].Float64(), tolerance)
	suite.InDelta(4.0, snapshot[2].Float64(), tolerance)
	suite.Len(w.Snapshot(0), 1)
	suite.Nil(w.Snapshot(4))
}

func (suite *CombinatorTestSuite) TestInvalidPeriods() {
	n := source(1)

	_, err := NewSMA(n, 0)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))

	_, err = NewEMA(n, -1)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))

	_, err = NewMovingAverage(n, Method("median"), 3)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidMethod))

	_, err = NewShift(n, -1)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))

	_, err = NewChange(n, 0)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))
}

func (suite *CombinatorTestSuite) TestEMA() {
	ema, err := NewEMA(source(1, 2, 3, 4, 5), 3)
	suite.Require().NoError(err)

	assertSeries(suite.T(), []any{none, none, 2, 3, 4}, ema)
}

func (suite *CombinatorTestSuite) TestEMAReseedsAfterGap() {
	n := source(1, 2)
	ema := newEMA(n, 2)
	n.Add(types.None())
	n.Add(types.NewValue(4))
	n.Add(types.NewValue(6))

	assertSeries(suite.T(), []any{none, 1.5, none, none, 5}, ema)
}

func (suite *CombinatorTestSuite) TestRMA() {
	rma, err := NewRMA(source(1, 2, 3, 4), 2)
	suite.Require().NoError(err)

	// seed 1.5, then 3*0.5 + 1.5*0.5 and 4*0.5 + 2.25*0.5
	assertSeries(suite.T(), []any{none, 1.5, 2.25, 3.125}, rma)
}

func (suite *CombinatorTestSuite) TestWMA() {
	wma, err := NewWMA(source(1, 2, 3, 4), 3)
	suite.Require().NoError(err)

	assertSeries(suite.T(), []any{none, none, 14.0 / 6.0, 20.0 / 6.0}, wma)
}

func (suite *CombinatorTestSuite) TestHMATracksLinearInput() {
	hma, err := NewHMA(source(1, 2, 3, 4, 5, 6, 7, 8), 4)
	suite.Require().NoError(err)

	assertSeries(suite.T(), []any{none, none, none, none, 5, 6, 7, 8}, hma)
}

func (suite *CombinatorTestSuite) TestMovingAverageDispatch() {
	n := source(1, 2, 3)

	for _, method := range []Method{MethodSMA, MethodEMA, MethodRMA, MethodWMA} {
		avg, err := NewMovingAverage(n, method, 3)
		suite.Require().NoError(err, method)
		suite.Equal(3, avg.Len(), method)
	}
}

func (suite *CombinatorTestSuite) TestDifferences() {
	n := source(1, 3, 2)

	change, err := NewChange(n, 1)
	suite.Require().NoError(err)
	gain, err := NewGain(n, 1)
	suite.Require().NoError(err)
	loss, err := NewLoss(n, 1)
	suite.Require().NoError(err)
	absLoss, err := NewAbsLoss(n, 1)
	suite.Require().NoError(err)
	momentum, err := NewMomentum(n, 2)
	suite.Require().NoError(err)

	assertSeries(suite.T(), []any{none, 2, -1}, change)
	assertSeries(suite.T(), []any{none, 2, 0}, gain)
	assertSeries(suite.T(), []any{none, 0, -1}, loss)
	assertSeries(suite.T(), []any{none, 0, 1}, absLoss)
	assertSeries(suite.T(), []any{none, none, 1}, momentum)
}

func (suite *CombinatorTestSuite) TestGapFill() {
	n := NewIdentity(nil)
	filled := NewGapFill(n)

	n.Add(types.None())
	n.Add(types.NewValue(1))
	n.Add(types.None())
	n.Add(types.NewValue(3))

	assertSeries(suite.T(), []any{none, 1, 1, 3}, filled)
}

func (suite *CombinatorTestSuite) TestShiftAndRecurrence() {
	n := source(1, 2, 3)

	shifted, err := NewShift(n, 2)
	suite.Require().NoError(err)
	cumulative := NewRecurrence(n, identity, add)

	assertSeries(suite.T(), []any{none, none, 1}, shifted)
	assertSeries(suite.T(), []any{1, 3, 6}, cumulative)
}
