package calculator

import (
	"fmt"
	"math"
)

// HeatTransferCoefficient 计算串联热阻的综合换热系数
//
//	1/h_total = 1/h_inner + d/k_material + 1/h_outer
//
// 所有参数必须为有限正数。
func HeatTransferCoefficient(hInner, kMaterial, d, hOuter float64) (float64, error) {
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"h_inner", hInner},
		{"k_material", kMaterial},
		{"thickness", d},
		{"h_outer", hOuter},
	} {
		if err := checkPositive(p.name, p.value); err != nil {
			return 0, err
		}
	}
	return 1 / (1/hInner + d/kMaterial + 1/hOuter), nil
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s = %v: %w", name, v, ErrNotFinite)
	}
	return nil
}

func checkPositive(name string, v float64) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("%s = %v: %w", name, v, ErrNonPositive)
	}
	return nil
}
