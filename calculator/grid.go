package calculator

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const (
	DefaultTimeEnd = 240.0 // 分钟
	DefaultSamples = 1000
)

// Grid 模拟时间轴，[0, End] 上等间距的 Samples 个点
type Grid struct {
	End     float64 `json:"end"`
	Samples int     `json:"samples"`
}

func DefaultGrid() Grid {
	return Grid{End: DefaultTimeEnd, Samples: DefaultSamples}
}

func (g Grid) Validate() error {
	if err := checkPositive("time_end", g.End); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidGrid, err)
	}
	if g.Samples < 2 {
		return fmt.Errorf("%w: samples = %d, need at least 2", ErrInvalidGrid, g.Samples)
	}
	return nil
}

// Times 返回时间序列，首元素为 0，末元素为 End
func (g Grid) Times() ([]float64, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return floats.Span(make([]float64, g.Samples), 0, g.End), nil
}
