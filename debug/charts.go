package debug

import (
	"fmt"
	"io"
	"log/slog"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"ohm/element"
)

// Chart 伏安特性曲线绘制
type Chart struct {
	Record
	Title  string       // 标题
	Points int          // 采样点数
	Span   float64      // 扫描范围倍数
	Width  vg.Length    // 图像宽度
	Height vg.Length    // 图像高度
	Format string       // 输出格式：svg, png, pdf, eps ...
	Logger *slog.Logger // 日志
}

// NewChart 使用默认参数创建
func NewChart() *Chart {
	return &Chart{
		Title:  DefaultTitle,
		Points: DefaultPoints,
		Span:   DefaultSpan,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Format: DefaultFormat,
		Logger: slog.Default(),
	}
}

// Add 添加元件，无法绘制的元件记录日志后跳过
func (c *Chart) Add(elements ...element.Element) {
	for _, ele := range elements {
		if err := c.Update(ele, c.Points, c.Span); err != nil {
			c.Error(err)
			continue
		}
		c.logger().Debug("element recorded", "element", ele.String(), "count", c.Len())
	}
}

// Plot 构建图表
func (c *Chart) Plot() (*plot.Plot, error) {
	if c.Len() == 0 {
		return nil, ErrNoData
	}
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = DefaultCurrentLabel
	p.Y.Label.Text = DefaultVoltageLabel
	p.Add(plotter.NewGrid())

	operating := make(plotter.XYs, c.Len())
	for n := range c.Elements {
		xys := make(plotter.XYs, len(c.Current[n]))
		for k := range xys {
			xys[k].X, xys[k].Y = c.Current[n][k], c.Voltage[n][k]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("debug: line %s: %w", c.Elements[n], err)
		}
		line.Color = plotutil.Color(n)
		p.Add(line)
		p.Legend.Add(c.Elements[n], line)
		operating[n].X, operating[n].Y = c.Operating[n][0], c.Operating[n][1]
	}
	scatter, err := plotter.NewScatter(operating)
	if err != nil {
		return nil, fmt.Errorf("debug: operating points: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)
	p.Legend.Add(DefaultOperatingLabel, scatter)
	return p, nil
}

// Render 格式化输出
func (c *Chart) Render(w io.Writer) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(c.Width, c.Height, c.Format)
	if err != nil {
		return fmt.Errorf("debug: format %q: %w", c.Format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("debug: write chart: %w", err)
	}
	c.logger().Info("chart rendered", "elements", c.Len(), "format", c.Format)
	return nil
}

// Error 记录错误
func (c *Chart) Error(err error) { c.logger().Warn("element skipped", "error", err) }

func (c *Chart) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
