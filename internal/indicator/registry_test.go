package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-indicator/internal/types"
	"github.com/rxtech-lab/argo-indicator/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (suite *RegistryTestSuite) TestRegisterAndGet() {
	registry := NewRegistry()
	rsi := newRSI(source(1, 2, 3), 2)

	suite.NoError(registry.Register(types.IndicatorTypeRSI, rsi))

	retrieved, err := registry.Get(types.IndicatorTypeRSI)
	suite.NoError(err)
	suite.Equal(Series(rsi), retrieved)
}

func (suite *RegistryTestSuite) TestRegisterDuplicate() {
	registry := NewRegistry()
	n := source(1)

	suite.NoError(registry.Register(types.IndicatorTypeSMA, n))

	err := registry.Register(types.IndicatorTypeSMA, n)
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorAlreadyExists))
	suite.Contains(err.Error(), "already registered")
}

func (suite *RegistryTestSuite) TestGetMissing() {
	registry := NewRegistry()

	_, err := registry.Get(types.IndicatorTypeRSI)
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorNotFound))
}

func (suite *RegistryTestSuite) TestListIsSorted() {
	registry := NewRegistry()
	n := source(1)

	suite.NoError(registry.Register(types.Named(types.IndicatorTypeSMA, 20), n))
	suite.NoError(registry.Register(types.IndicatorTypeADX, n))
	suite.NoError(registry.Register(types.Named(types.IndicatorTypeEMA, 10), n))

	suite.Equal([]types.IndicatorType{"adx", "ema_10", "sma_20"}, registry.List())
}

func (suite *RegistryTestSuite) TestRemove() {
	registry := NewRegistry()
	n := source(1)

	suite.NoError(registry.Register(types.IndicatorTypeCCI, n))
	suite.NoError(registry.Remove(types.IndicatorTypeCCI))
	suite.Empty(registry.List())

	err := registry.Remove(types.IndicatorTypeCCI)
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorNotFound))
}
