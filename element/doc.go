// Package element 元件构建。
//
// Builder 收集元件的名称以及电压、电流、电阻中的任意几个量，
// Build 根据已知量补全其余的量，或者校验三个量是否一致：
//
//	ele, err := element.NewBuilder().Name("R1").Voltage(5).Current(0.5).Build()
//
// 已知量不足两个时返回 NotEnoughData，三个量不满足欧姆定律时返回 InvalidData。
package element
