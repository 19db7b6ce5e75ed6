package calculator

import (
	"math"

	"beercool/material"
)

// Config 一次模拟所需的全部参数
type Config struct {
	Rate               RateSource
	StartTemperature   float64
	AmbientTemperature float64
	Grid               Grid
}

type Result struct {
	Material    string    `json:"material,omitempty"`
	Time        []float64 `json:"time"`
	Temperature []float64 `json:"temperature"`
	Start       float64   `json:"start"`
	Ambient     float64   `json:"ambient"`
	Final       float64   `json:"final"`
	K           float64   `json:"k"`
	HTotal      float64   `json:"h_total,omitempty"`
	Derived     bool      `json:"derived"`
	// k = 0 时为 0，表示不衰减
	TimeConstant float64 `json:"time_constant"`
	HalfLife     float64 `json:"half_life"`
}

// Simulate 在时间网格上计算温度曲线
func Simulate(cfg Config) (*Result, error) {
	rate, err := Resolve(cfg.Rate)
	if err != nil {
		return nil, err
	}
	times, err := cfg.Grid.Times()
	if err != nil {
		return nil, err
	}
	temperature, err := Temperature(times, cfg.StartTemperature, cfg.AmbientTemperature, rate.K)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Time:        times,
		Temperature: temperature,
		Start:       cfg.StartTemperature,
		Ambient:     cfg.AmbientTemperature,
		Final:       temperature[len(temperature)-1],
		K:           rate.K,
		HTotal:      rate.HTotal,
		Derived:     rate.Derived,
	}
	if d, ok := cfg.Rate.(Derived); ok {
		res.Material = d.Vessel.Material.String()
	}
	if tau := TimeConstant(rate.K); !math.IsInf(tau, 0) {
		res.TimeConstant = tau
		res.HalfLife = HalfLife(rate.K)
	}
	return res, nil
}

// Compare 同一容器分别使用每种材料进行模拟
func Compare(cfg Config) ([]*Result, error) {
	d, ok := cfg.Rate.(Derived)
	if !ok {
		return nil, ErrNotDerived
	}
	results := make([]*Result, 0, len(material.All()))
	for _, m := range material.All() {
		v := d.Vessel
		v.Material = m
		c := cfg
		c.Rate = Derived{Vessel: v}
		res, err := Simulate(c)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
