package element

// Builder 元件配置，记录尚未求解的元件参数。
// 名称与三个电学量均可独立设置或缺省，调用 Build 前不做任何校验。
// 同一字段可多次设置，以最后一次为准。
//
// 提供两种设置方式：
//   - Name/Voltage/Current/Resistance 返回更新后的副本，用于链式构建；
//   - SetName/SetVoltage/SetCurrent/SetResistance 原地修改。
type Builder struct {
	name       *string  // 元件名称
	voltage    *float64 // 电压
	current    *float64 // 电流
	resistance *float64 // 电阻
}

// NewBuilder 创建空配置，与零值等价。
func NewBuilder() Builder { return Builder{} }

// Name 设置名称（链式）。
func (b Builder) Name(name string) Builder {
	b.SetName(name)
	return b
}

// Voltage 设置电压（链式）。
func (b Builder) Voltage(voltage float64) Builder {
	b.SetVoltage(voltage)
	return b
}

// Current 设置电流（链式）。
func (b Builder) Current(current float64) Builder {
	b.SetCurrent(current)
	return b
}

// Resistance 设置电阻（链式）。
func (b Builder) Resistance(resistance float64) Builder {
	b.SetResistance(resistance)
	return b
}

// SetName 设置名称。
func (b *Builder) SetName(name string) { b.name = &name }

// SetVoltage 设置电压。
func (b *Builder) SetVoltage(voltage float64) { b.voltage = &voltage }

// SetCurrent 设置电流。
func (b *Builder) SetCurrent(current float64) { b.current = &current }

// SetResistance 设置电阻。
func (b *Builder) SetResistance(resistance float64) { b.resistance = &resistance }

// GetName 元件名称。
func (b Builder) GetName() (string, bool) { return get(b.name) }

// GetVoltage 电压。
func (b Builder) GetVoltage() (float64, bool) { return get(b.voltage) }

// GetCurrent 电流。
func (b Builder) GetCurrent() (float64, bool) { return get(b.current) }

// GetResistance 电阻。
func (b Builder) GetResistance() (float64, bool) { return get(b.resistance) }

func get[T any](v *T) (value T, ok bool) {
	if v == nil {
		return value, false
	}
	return *v, true
}
