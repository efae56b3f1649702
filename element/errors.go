package element

// BuildError 元件构建错误
type BuildError uint8

// 元件构建错误类型
const (
	NotEnoughData BuildError = iota + 1 // 电压、电流、电阻至少需要给出两个
	InvalidData                         // 三个量均已给出，但不满足欧姆定律
)

// buildErrorString 错误描述
var buildErrorString = map[BuildError]string{
	NotEnoughData: "not enough data: at least two of voltage, current and resistance are required",
	InvalidData:   "invalid data: voltage, current and resistance do not satisfy Ohm's law",
}

// Error 实现 error 接口
func (e BuildError) Error() string {
	if s, ok := buildErrorString[e]; ok {
		return "element: " + s
	}
	return "element: unknown build error"
}
