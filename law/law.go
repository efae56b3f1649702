package law

import "math"

// Resistance 由电压和电流计算电阻 R = |V / I|
// 电阻恒为非负，与电流方向无关；I 为 0 时得到 +Inf。
func Resistance(voltage, current float64) float64 {
	return math.Abs(voltage / current)
}

// Voltage 由电阻和电流计算电压 V = R * I
func Voltage(resistance, current float64) float64 {
	return resistance * current
}

// Current 由电阻和电压计算电流 I = V / R
func Current(resistance, voltage float64) float64 {
	return voltage / resistance
}

// IsValid 校验电压、电流、电阻是否满足欧姆定律
// 三个量分别由另外两个量重新计算，结果必须与输入完全相等（不使用容差）。
func IsValid(voltage, current, resistance float64) bool {
	// 负电阻无物理意义
	if resistance < 0 {
		return false
	}
	return Voltage(resistance, current) == voltage &&
		Current(resistance, voltage) == current &&
		Resistance(voltage, current) == resistance
}
