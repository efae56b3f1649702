package element

import (
	"fmt"

	"ohm/law"
)

// Element 已求解的元件，创建后不可修改。
type Element struct {
	name       *string
	voltage    float64
	current    float64
	resistance float64
}

// GetName 元件名称，未设置名称时返回 false。
func (e Element) GetName() (string, bool) { return get(e.name) }

// GetVoltage 电压
func (e Element) GetVoltage() float64 { return e.voltage }

// GetCurrent 电流
func (e Element) GetCurrent() float64 { return e.current }

// GetResistance 电阻
func (e Element) GetResistance() float64 { return e.resistance }

// String 调试输出
func (e Element) String() string {
	name, ok := e.GetName()
	if !ok {
		name = "-"
	}
	return fmt.Sprintf("%s 电压:%+g 电流:%+g 电阻:%g", name, e.voltage, e.current, e.resistance)
}

// Build 求解元件。
// 三个量都给出时只做校验；给出两个时由欧姆定律计算第三个，
// 此时不校验数值本身（0、负数、Inf、NaN 原样传递）。
func (b Builder) Build() (Element, error) {
	v, i, r, err := b.solve()
	if err != nil {
		return Element{}, err
	}
	ele := Element{voltage: v, current: i, resistance: r}
	if b.name != nil {
		name := *b.name
		ele.name = &name
	}
	return ele, nil
}

// solve 根据已知量选择求解方式，三个量齐全的情况必须最先判断。
func (b Builder) solve() (v, i, r float64, err error) {
	switch {
	case b.voltage != nil && b.current != nil && b.resistance != nil:
		v, i, r = *b.voltage, *b.current, *b.resistance
		if !law.IsValid(v, i, r) {
			return 0, 0, 0, InvalidData
		}
		return v, i, r, nil
	case b.voltage != nil && b.current != nil:
		v, i = *b.voltage, *b.current
		return v, i, law.Resistance(v, i), nil
	case b.voltage != nil && b.resistance != nil:
		v, r = *b.voltage, *b.resistance
		return v, law.Current(r, v), r, nil
	case b.current != nil && b.resistance != nil:
		i, r = *b.current, *b.resistance
		return law.Voltage(r, i), i, r, nil
	}
	return 0, 0, 0, NotEnoughData
}
