package calculator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Temperature 牛顿冷却定律的解析解
//
//	T(t) = T_ambient + (T_start - T_ambient) * e^(-k*t)
//
// k 允许为 0（温度保持 T_start），t 中的每个值必须为非负有限数。
func Temperature(t []float64, tStart, tAmbient, k float64) ([]float64, error) {
	if err := checkModel(tStart, tAmbient, k); err != nil {
		return nil, err
	}
	for i, v := range t {
		if err := checkFinite("t", v); err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, fmt.Errorf("t[%d] = %v: %w", i, v, ErrNegativeTime)
		}
	}

	out := make([]float64, len(t))
	if k == 0 || tStart == tAmbient {
		for i := range out {
			out[i] = tStart
		}
		return out, nil
	}

	floats.ScaleTo(out, -k, t)
	for i := range out {
		out[i] = math.Exp(out[i])
	}
	floats.Scale(tStart-tAmbient, out)
	floats.AddConst(tAmbient, out)

	// 边界条件 t = 0 时严格等于初始温度
	for i, v := range t {
		if v == 0 {
			out[i] = tStart
		}
	}
	return out, nil
}

// TemperatureAt 单个时刻的温度
func TemperatureAt(t, tStart, tAmbient, k float64) (float64, error) {
	out, err := Temperature([]float64{t}, tStart, tAmbient, k)
	if err != nil {
		return 0, err
	}
	return out[0], nil
}

func checkModel(tStart, tAmbient, k float64) error {
	if err := checkFinite("start_temperature", tStart); err != nil {
		return err
	}
	if err := checkFinite("ambient_temperature", tAmbient); err != nil {
		return err
	}
	if err := checkFinite("k", k); err != nil {
		return err
	}
	if k < 0 {
		return fmt.Errorf("k = %v: %w", k, ErrNegativeRate)
	}
	return nil
}

// TimeConstant 时间常数 1/k，k = 0 时为 +Inf
func TimeConstant(k float64) float64 {
	if k <= 0 {
		return math.Inf(1)
	}
	return 1 / k
}

// HalfLife 温差减半所需的时间
func HalfLife(k float64) float64 {
	return math.Ln2 * TimeConstant(k)
}

// TimeToReach 达到目标温度所需时间（分钟）
func TimeToReach(target, tStart, tAmbient, k float64) (float64, error) {
	if err := checkModel(tStart, tAmbient, k); err != nil {
		return 0, err
	}
	if err := checkFinite("target", target); err != nil {
		return 0, err
	}
	if target == tStart {
		return 0, nil
	}
	if k == 0 || tStart == tAmbient {
		return 0, fmt.Errorf("target %v: %w", target, ErrUnreachable)
	}
	ratio := (target - tAmbient) / (tStart - tAmbient)
	if !(ratio > 0 && ratio < 1) {
		return 0, fmt.Errorf("target %v not between %v and %v: %w", target, tStart, tAmbient, ErrUnreachable)
	}
	return -math.Log(ratio) / k, nil
}
