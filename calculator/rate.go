package calculator

import (
	"fmt"

	"beercool/vessel"
)

// RateSource 冷却常数 k 的来源，只有 Derived 和 Direct 两种
type RateSource interface {
	rateSource()
}

// Derived 根据容器材料与几何参数推导 k
type Derived struct {
	Vessel vessel.Vessel
}

// Direct 直接给定 k，单位 1/min
type Direct struct {
	K float64
}

func (Derived) rateSource() {}
func (Direct) rateSource()  {}

type Rate struct {
	K       float64 // 冷却常数，1/min
	HTotal  float64 // 综合换热系数，仅 Derived 有效
	Derived bool
}

// Resolve 把 RateSource 解析为一个冷却常数
func Resolve(src RateSource) (Rate, error) {
	switch s := src.(type) {
	case Derived:
		v := s.Vessel
		if err := v.Validate(); err != nil {
			return Rate{}, err
		}
		hTotal, err := HeatTransferCoefficient(v.HInner, v.Conductivity(), v.Thickness, v.HOuter)
		if err != nil {
			return Rate{}, err
		}
		k, err := RateConstant(hTotal, v.Area, v.Mass, v.SpecificHeat)
		if err != nil {
			return Rate{}, err
		}
		return Rate{K: k, HTotal: hTotal, Derived: true}, nil
	case Direct:
		if err := checkFinite("k", s.K); err != nil {
			return Rate{}, err
		}
		if s.K < 0 {
			return Rate{}, fmt.Errorf("k = %v: %w", s.K, ErrNegativeRate)
		}
		return Rate{K: s.K}, nil
	default:
		return Rate{}, fmt.Errorf("%T: %w", src, ErrUnknownMode)
	}
}

// RateConstant k = h_total * A / (m * c)
//
// 单位未做换算：W/m²K * m² / (g * J/g·K) 得到的是 1/s，结果直接按 1/min 使用。
func RateConstant(hTotal, area, mass, specificHeat float64) (float64, error) {
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"h_total", hTotal},
		{"area", area},
		{"mass", mass},
		{"specific_heat", specificHeat},
	} {
		if err := checkPositive(p.name, p.value); err != nil {
			return 0, err
		}
	}
	return hTotal * area / (mass * specificHeat), nil
}
