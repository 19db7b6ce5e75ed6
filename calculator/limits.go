package calculator

import (
	"fmt"
	"strings"

	"beercool/material"
	"beercool/model"
	"beercool/vessel"
)

type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Limits 每个输入量允许的取值范围
type Limits struct {
	Thickness          Range `json:"thickness"`
	HInner             Range `json:"h_inner"`
	HOuter             Range `json:"h_outer"`
	Area               Range `json:"area"`
	Mass               Range `json:"mass"`
	SpecificHeat       Range `json:"specific_heat"`
	StartTemperature   Range `json:"start_temperature"`
	AmbientTemperature Range `json:"ambient_temperature"`
	RateConstant       Range `json:"k"`
}

func DefaultLimits() Limits {
	return Limits{
		Thickness:          Range{0.0001, 0.1},
		HInner:             Range{0.1, 10000},
		HOuter:             Range{0.1, 10000},
		Area:               Range{0.01, 1.0},
		Mass:               Range{100, 2000},
		SpecificHeat:       Range{1.0, 10.0},
		StartTemperature:   Range{0, 30},
		AmbientTemperature: Range{0, 40},
		RateConstant:       Range{0.0001, 1.0},
	}
}

type check struct {
	field string
	value float64
	rng   Range
}

// Check 校验前端输入，返回第一个越界的值
func (l Limits) Check(env model.Env) error {
	mode, err := ParseMode(env.Mode)
	if err != nil {
		return err
	}
	checks := []check{
		{"start_temperature", env.StartTemperature, l.StartTemperature},
		{"ambient_temperature", env.AmbientTemperature, l.AmbientTemperature},
	}
	if mode == model.ModeDerived {
		if _, err := material.Parse(env.Material); err != nil {
			return err
		}
		checks = append(checks,
			check{"thickness", env.Thickness, l.Thickness},
			check{"h_inner", env.HInner, l.HInner},
			check{"h_outer", env.HOuter, l.HOuter},
			check{"area", env.Area, l.Area},
			check{"mass", env.Mass, l.Mass},
			check{"specific_heat", env.SpecificHeat, l.SpecificHeat},
		)
	} else {
		checks = append(checks, check{"k", env.K, l.RateConstant})
	}
	for _, c := range checks {
		if !c.rng.Contains(c.value) {
			return &RangeError{Field: c.field, Value: c.value, Range: c.rng}
		}
	}
	return nil
}

// ParseMode 空字符串视为直接输入 k
func ParseMode(mode string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", model.ModeDirect:
		return model.ModeDirect, nil
	case model.ModeDerived, "derive":
		return model.ModeDerived, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// FromEnv 把前端输入转换为不可变的模拟配置
func FromEnv(env model.Env, grid Grid) (Config, error) {
	mode, err := ParseMode(env.Mode)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		StartTemperature:   env.StartTemperature,
		AmbientTemperature: env.AmbientTemperature,
		Grid:               grid,
	}
	if mode == model.ModeDirect {
		cfg.Rate = Direct{K: env.K}
		return cfg, nil
	}

	m, err := material.Parse(env.Material)
	if err != nil {
		return Config{}, err
	}
	v := vessel.NewVessel()
	v.SetMaterial(m)
	v.SetThickness(env.Thickness)
	v.SetCoefficients(env.HInner, env.HOuter)
	v.SetContent(env.Area, env.Mass, env.SpecificHeat)
	cfg.Rate = Derived{Vessel: v}
	return cfg, nil
}
