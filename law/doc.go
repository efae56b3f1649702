// Package law 欧姆定律计算。
//
// 提供由任意两个量计算第三个量的纯函数，以及三者一致性的校验。
// 所有函数均不返回错误：除零、NaN 等情况按 IEEE-754 规则直接传播。
package law
