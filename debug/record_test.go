package debug_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ohm/debug"
	"ohm/element"
)

func mustBuild(t *testing.T, b element.Builder) element.Element {
	t.Helper()
	ele, err := b.Build()
	require.NoError(t, err)
	return ele
}

func TestRecordUpdate(t *testing.T) {
	var rec debug.Record
	ele := mustBuild(t, element.NewBuilder().Name("R1").Current(4).Resistance(10))

	require.NoError(t, rec.Update(ele, 5, 2))
	require.Equal(t, 1, rec.Len())
	assert.Equal(t, []string{"R1"}, rec.Elements)
	assert.Equal(t, [2]float64{4, 40}, rec.Operating[0])
	// 扫描范围 [-8, 8]
	assert.Equal(t, []float64{-8, -4, 0, 4, 8}, rec.Current[0])
	assert.Equal(t, []float64{-80, -40, 0, 40, 80}, rec.Voltage[0])
}

func TestRecordUpdateSmallCurrent(t *testing.T) {
	var rec debug.Record
	ele := mustBuild(t, element.NewBuilder().Voltage(0).Resistance(3))

	require.NoError(t, rec.Update(ele, 3, 1))
	assert.Equal(t, []float64{-1, 0, 1}, rec.Current[0])
	assert.Equal(t, []float64{-3, 0, 3}, rec.Voltage[0])
	assert.Equal(t, []string{"Element(1)"}, rec.Elements)
}

func TestRecordUpdateErrors(t *testing.T) {
	var rec debug.Record
	ok := mustBuild(t, element.NewBuilder().Voltage(1).Current(1))
	require.ErrorIs(t, rec.Update(ok, 1, 2), debug.ErrPoints)

	inf := mustBuild(t, element.NewBuilder().Voltage(1).Current(0))
	err := rec.Update(inf, 5, 2)
	require.ErrorIs(t, err, debug.ErrNotFinite)
	assert.Contains(t, err.Error(), "电阻:+Inf")

	nan := mustBuild(t, element.NewBuilder().Current(math.NaN()).Resistance(1))
	require.ErrorIs(t, rec.Update(nan, 5, 2), debug.ErrNotFinite)

	assert.Zero(t, rec.Len())
}

func TestRecordUpdateSpan(t *testing.T) {
	var rec debug.Record
	ok := mustBuild(t, element.NewBuilder().Voltage(1).Current(1))
	for _, span := range []float64{0, -2, math.Inf(1), math.Inf(-1), math.NaN()} {
		require.ErrorIs(t, rec.Update(ok, 5, span), debug.ErrSpan, "span=%v", span)
	}
	assert.Zero(t, rec.Len())
}

// 输入有限但采样溢出
func TestRecordUpdateOverflow(t *testing.T) {
	var rec debug.Record
	big := mustBuild(t, element.NewBuilder().Voltage(1e308).Current(1))
	err := rec.Update(big, 5, 2)
	require.ErrorIs(t, err, debug.ErrNotFinite)
	assert.Contains(t, err.Error(), "sweep overflow")

	wide := mustBuild(t, element.NewBuilder().Current(1e308).Resistance(1))
	require.ErrorIs(t, rec.Update(wide, 5, 2), debug.ErrNotFinite)
	assert.Zero(t, rec.Len())
}

func TestRecordRender(t *testing.T) {
	var rec debug.Record
	require.NoError(t, rec.Update(mustBuild(t, element.NewBuilder().Name("R1").Voltage(2).Current(1)), 2, 1))

	var buf bytes.Buffer
	require.NoError(t, rec.Render(&buf))

	var got debug.Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, rec, got)
}
