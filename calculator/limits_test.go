package calculator

import (
	"errors"
	"testing"

	"beercool/material"
	"beercool/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func derivedEnv() model.Env {
	env := model.DefaultEnv()
	env.Mode = model.ModeDerived
	return env
}

func TestLimitsCheck(t *testing.T) {
	limits := DefaultLimits()
	assert.NoError(t, limits.Check(model.DefaultEnv()))
	assert.NoError(t, limits.Check(derivedEnv()))

	tests := []struct {
		name  string
		env   func() model.Env
		field string
	}{
		{"start too hot", func() model.Env { e := model.DefaultEnv(); e.StartTemperature = 31; return e }, "start_temperature"},
		{"ambient below zero", func() model.Env { e := model.DefaultEnv(); e.AmbientTemperature = -1; return e }, "ambient_temperature"},
		{"k too large", func() model.Env { e := model.DefaultEnv(); e.K = 2; return e }, "k"},
		{"k zero", func() model.Env { e := model.DefaultEnv(); e.K = 0; return e }, "k"},
		{"thickness too thin", func() model.Env { e := derivedEnv(); e.Thickness = 0.00001; return e }, "thickness"},
		{"mass too light", func() model.Env { e := derivedEnv(); e.Mass = 50; return e }, "mass"},
		{"h_outer zero", func() model.Env { e := derivedEnv(); e.HOuter = 0; return e }, "h_outer"},
		{"specific heat too high", func() model.Env { e := derivedEnv(); e.SpecificHeat = 11; return e }, "specific_heat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := limits.Check(tt.env())
			require.ErrorIs(t, err, ErrOutOfRange)
			var rangeErr *RangeError
			require.True(t, errors.As(err, &rangeErr))
			assert.Equal(t, tt.field, rangeErr.Field)
		})
	}
}

func TestLimitsCheckIgnoresInactiveMode(t *testing.T) {
	env := model.DefaultEnv()
	env.Mass = 0
	assert.NoError(t, DefaultLimits().Check(env))

	env = derivedEnv()
	env.K = 0
	assert.NoError(t, DefaultLimits().Check(env))
}

func TestLimitsCheckMaterialAndMode(t *testing.T) {
	env := derivedEnv()
	env.Material = "wood"
	assert.ErrorIs(t, DefaultLimits().Check(env), material.ErrUnknownMaterial)

	env = model.DefaultEnv()
	env.Mode = "guess"
	assert.ErrorIs(t, DefaultLimits().Check(env), ErrUnknownMode)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]string{
		"":         model.ModeDirect,
		"direct":   model.ModeDirect,
		"Derived":  model.ModeDerived,
		" derive ": model.ModeDerived,
	} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(model.DefaultEnv(), DefaultGrid())
	require.NoError(t, err)
	assert.Equal(t, Direct{K: 0.1}, cfg.Rate)
	assert.Equal(t, 5.0, cfg.StartTemperature)
	assert.Equal(t, 22.0, cfg.AmbientTemperature)

	env := derivedEnv()
	env.Material = "Aluminium"
	env.Mass = 330
	cfg, err = FromEnv(env, DefaultGrid())
	require.NoError(t, err)
	d, ok := cfg.Rate.(Derived)
	require.True(t, ok)
	assert.Equal(t, material.Aluminum, d.Vessel.Material)
	assert.Equal(t, 330.0, d.Vessel.Mass)
	assert.Equal(t, 0.003, d.Vessel.Thickness)
}
