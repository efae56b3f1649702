// Package debug 绘制元件的伏安特性曲线，用于调试。
package debug
