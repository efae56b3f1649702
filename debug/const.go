package debug

import (
	"errors"

	"gonum.org/v1/plot/vg"
)

// 默认参数
var (
	DefaultPoints         = 21          // 每个元件的采样点数
	DefaultSpan           = 2.0         // 扫描范围倍数，相对于工作点电流
	DefaultWidth          = 6 * vg.Inch // 图像宽度
	DefaultHeight         = 4 * vg.Inch // 图像高度
	DefaultFormat         = "svg"       // 输出格式
	DefaultTitle          = "I-V characteristic"
	DefaultCurrentLabel   = "I (A)"
	DefaultVoltageLabel   = "V (V)"
	DefaultOperatingLabel = "operating point"
)

var (
	ErrNoData    = errors.New("debug: no element recorded")
	ErrNotFinite = errors.New("debug: element value is NaN or Inf")
	ErrPoints    = errors.New("debug: at least two sample points are required")
	ErrSpan      = errors.New("debug: sweep span must be positive and finite")
)
