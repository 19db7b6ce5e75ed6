package calculator

import (
	"errors"
	"fmt"

	"beercool/vessel"
)

var (
	// 物理量必须为正，与 vessel 包共用同一个错误值
	ErrNonPositive  = vessel.ErrNonPositive
	ErrNotFinite    = errors.New("value must be finite")
	ErrNegativeRate = errors.New("rate constant must not be negative")
	ErrNegativeTime = errors.New("time must not be negative")
	ErrUnreachable  = errors.New("target temperature is never reached")
	ErrOutOfRange   = errors.New("value out of range")
	ErrUnknownMode  = errors.New("unknown rate mode")
	ErrNotDerived   = errors.New("comparison needs a derived rate constant")
	ErrInvalidGrid  = errors.New("invalid time grid")
)

// RangeError 输入值超出界面允许的范围
type RangeError struct {
	Field string
	Value float64
	Range Range
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s = %g out of range [%g, %g]", e.Field, e.Value, e.Range.Min, e.Range.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
