package calculator

import (
	"testing"

	"beercool/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatorRun(t *testing.T) {
	c := NewCalculator(DefaultGrid(), DefaultLimits())
	res, err := c.Run(model.DefaultEnv())
	require.NoError(t, err)
	assert.Equal(t, 0.1, res.K)
	assert.Len(t, res.Temperature, DefaultSamples)

	env := model.DefaultEnv()
	env.StartTemperature = 100
	_, err = c.Run(env)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestCalculatorCompare(t *testing.T) {
	c := NewCalculator(Grid{End: 60, Samples: 10}, DefaultLimits())
	_, err := c.Compare(model.DefaultEnv())
	assert.ErrorIs(t, err, ErrNotDerived)

	env := model.DefaultEnv()
	env.Mode = model.ModeDerived
	results, err := c.Compare(env)
	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Len(t, results[0].Time, 10)
	assert.Equal(t, Grid{End: 60, Samples: 10}, c.Grid())
	assert.Equal(t, DefaultLimits(), c.Limits())
}
