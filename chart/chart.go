package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"beercool/calculator"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var ErrNoData = errors.New("nothing to plot")

// Options 图表的标题、尺寸与格式
type Options struct {
	Title        string
	XLabel       string
	YLabel       string
	CurveLabel   string
	AmbientLabel string
	Format       string // svg 或 png
	Width        vg.Length
	Height       vg.Length
}

func DefaultOptions() Options {
	return Options{
		Title:        "Beverage temperature over time",
		XLabel:       "Time (minutes)",
		YLabel:       "Temperature (°C)",
		CurveLabel:   "Beverage temperature",
		AmbientLabel: "Ambient temperature",
		Format:       "svg",
		Width:        10 * vg.Inch,
		Height:       6 * vg.Inch,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Title == "" {
		o.Title = def.Title
	}
	if o.XLabel == "" {
		o.XLabel = def.XLabel
	}
	if o.YLabel == "" {
		o.YLabel = def.YLabel
	}
	if o.CurveLabel == "" {
		o.CurveLabel = def.CurveLabel
	}
	if o.AmbientLabel == "" {
		o.AmbientLabel = def.AmbientLabel
	}
	if o.Format == "" {
		o.Format = def.Format
	}
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	return o
}

// ContentType 返回图片格式对应的 MIME 类型
func ContentType(format string) (string, error) {
	switch format {
	case "", "svg":
		return "image/svg+xml", nil
	case "png":
		return "image/png", nil
	default:
		return "", fmt.Errorf("unsupported chart format %q", format)
	}
}

// Render 绘制温度曲线以及环境温度参考线
func Render(w io.Writer, res *calculator.Result, opts Options) error {
	if res == nil || len(res.Time) == 0 {
		return ErrNoData
	}
	opts = opts.withDefaults()
	p := newPlot(opts)

	curve, err := plotter.NewLine(xys(res))
	if err != nil {
		return err
	}
	curve.Width = vg.Points(1.5)
	curve.Color = plotutil.Color(0)
	p.Add(curve)
	p.Legend.Add(opts.CurveLabel, curve)

	if err := addAmbient(p, res, opts.AmbientLabel); err != nil {
		return err
	}
	return save(w, p, opts)
}

// RenderCompare 多条曲线绘制在同一张图上，图例使用材料名称
func RenderCompare(w io.Writer, results []*calculator.Result, opts Options) error {
	if len(results) == 0 {
		return ErrNoData
	}
	opts = opts.withDefaults()
	p := newPlot(opts)

	for i, res := range results {
		if res == nil || len(res.Time) == 0 {
			return ErrNoData
		}
		line, err := plotter.NewLine(xys(res))
		if err != nil {
			return err
		}
		line.Width = vg.Points(1.5)
		line.Color = plotutil.Color(i)
		p.Add(line)
		label := res.Material
		if label == "" {
			label = fmt.Sprintf("%s %d", opts.CurveLabel, i+1)
		}
		p.Legend.Add(label, line)
	}

	if err := addAmbient(p, results[0], opts.AmbientLabel); err != nil {
		return err
	}
	return save(w, p, opts)
}

func newPlot(opts Options) *plot.Plot {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return p
}

// 环境温度水平虚线
func addAmbient(p *plot.Plot, res *calculator.Result, label string) error {
	last := res.Time[len(res.Time)-1]
	ambient, err := plotter.NewLine(plotter.XYs{
		{X: res.Time[0], Y: res.Ambient},
		{X: last, Y: res.Ambient},
	})
	if err != nil {
		return err
	}
	ambient.Color = color.RGBA{R: 255, A: 255}
	ambient.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	p.Add(ambient)
	p.Legend.Add(label, ambient)
	p.X.Min = res.Time[0]
	p.X.Max = last
	return nil
}

func save(w io.Writer, p *plot.Plot, opts Options) error {
	if _, err := ContentType(opts.Format); err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func xys(res *calculator.Result) plotter.XYs {
	pts := make(plotter.XYs, len(res.Time))
	for i := range res.Time {
		pts[i].X = res.Time[i]
		pts[i].Y = res.Temperature[i]
	}
	return pts
}
