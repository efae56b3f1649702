package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"

	"ohm/element"
	"ohm/law"
)

// Record 记录元件的伏安特性采样
type Record struct {
	Elements  []string     // 元件列表
	Operating [][2]float64 // 工作点（电流，电压）
	Current   [][]float64  // 电流列
	Voltage   [][]float64  // 电压列
}

// Update 记录元件数据。
// 电流在 [-s, s] 上均匀采样，s = span * max(|I|, 1)，保证工作点落在扫描范围内。
// 采样结果溢出为 Inf 的元件不记录。
func (list *Record) Update(ele element.Element, points int, span float64) error {
	if points < 2 {
		return ErrPoints
	}
	if !(span > 0) || math.IsInf(span, 1) {
		return fmt.Errorf("%w: %g", ErrSpan, span)
	}
	v, i, r := ele.GetVoltage(), ele.GetCurrent(), ele.GetResistance()
	if !finite(v) || !finite(i) || !finite(r) {
		return fmt.Errorf("%w: %s", ErrNotFinite, ele)
	}
	s := span * math.Max(math.Abs(i), 1)
	current := floats.Span(make([]float64, points), -s, s)
	voltage := make([]float64, points)
	for n, c := range current {
		voltage[n] = law.Voltage(r, c)
	}
	if !allFinite(current) || !allFinite(voltage) {
		return fmt.Errorf("%w: sweep overflow: %s", ErrNotFinite, ele)
	}
	name, ok := ele.GetName()
	if !ok {
		name = fmt.Sprintf("Element(%d)", len(list.Elements)+1)
	}
	list.Elements = append(list.Elements, name)
	list.Operating = append(list.Operating, [2]float64{i, v})
	list.Current = append(list.Current, current)
	list.Voltage = append(list.Voltage, voltage)
	return nil
}

// Len 已记录的元件数量
func (list *Record) Len() int { return len(list.Elements) }

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(list) }

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func allFinite(s []float64) bool {
	if floats.HasNaN(s) {
		return false
	}
	for _, x := range s {
		if math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
