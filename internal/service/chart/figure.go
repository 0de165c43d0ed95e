package chart

import (
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/traefik/yaegi/interp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const defaultBins = 10

type seriesKind int

const (
	seriesBar seriesKind = iota
	seriesLine
	seriesScatter
	seriesHist
)

type series struct {
	kind       seriesKind
	xs, ys     []float64
	bins       int
	horizontal bool
}

// Figure 一次请求独占的画布, 图表脚本通过 plt 包调用它的方法.
// 方法只记录数据, 出错后后续调用全部忽略, 真正的绘制由 Plot 完成.
type Figure struct {
	title  string
	xLabel string
	yLabel string
	labels []string
	legend []string
	series []series
	err    error
}

func NewFigure() *Figure {
	return &Figure{}
}

func (f *Figure) Title(title string) {
	f.title = title
}

func (f *Figure) XLabel(label string) {
	f.xLabel = label
}

func (f *Figure) YLabel(label string) {
	f.yLabel = label
}

// Legend 按绘制顺序给每个序列命名
func (f *Figure) Legend(names ...string) {
	f.legend = names
}

func (f *Figure) Bar(labels []string, values []float64) {
	f.addBar(labels, values, false)
}

func (f *Figure) BarH(labels []string, values []float64) {
	f.addBar(labels, values, true)
}

func (f *Figure) addBar(labels []string, values []float64, horizontal bool) {
	if f.err != nil {
		return
	}
	if len(labels) == 0 || len(labels) != len(values) {
		f.fail("bar needs the same non-zero number of labels and values, got %d and %d", len(labels), len(values))
		return
	}
	if f.labels != nil && !slices.Equal(f.labels, labels) {
		f.fail("all bar series must share the same labels")
		return
	}
	for _, s := range f.series {
		if s.kind == seriesBar && s.horizontal != horizontal {
			f.fail("cannot mix Bar and BarH in one figure")
			return
		}
	}
	if !f.finite(values) {
		return
	}
	f.labels = slices.Clone(labels)
	f.series = append(f.series, series{kind: seriesBar, ys: slices.Clone(values), horizontal: horizontal})
}

func (f *Figure) Plot(xs, ys []float64) {
	f.addXY(seriesLine, xs, ys)
}

func (f *Figure) Scatter(xs, ys []float64) {
	f.addXY(seriesScatter, xs, ys)
}

func (f *Figure) addXY(kind seriesKind, xs, ys []float64) {
	if f.err != nil {
		return
	}
	if len(xs) == 0 || len(xs) != len(ys) {
		f.fail("x and y need the same non-zero length, got %d and %d", len(xs), len(ys))
		return
	}
	if !f.finite(xs) || !f.finite(ys) {
		return
	}
	f.series = append(f.series, series{kind: kind, xs: slices.Clone(xs), ys: slices.Clone(ys)})
}

func (f *Figure) Hist(values []float64, bins int) {
	if f.err != nil {
		return
	}
	if len(values) == 0 {
		f.fail("histogram needs at least one value")
		return
	}
	if !f.finite(values) {
		return
	}
	if bins <= 0 {
		bins = defaultBins
	}
	f.series = append(f.series, series{kind: seriesHist, ys: slices.Clone(values), bins: bins})
}

func (f *Figure) finite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			f.fail("values must be finite numbers")
			return false
		}
	}
	return true
}

func (f *Figure) fail(format string, args ...any) {
	f.err = fmt.Errorf("%w: %s", ErrInvalidChart, fmt.Sprintf(format, args...))
}

func (f *Figure) Err() error {
	return f.err
}

// exports 绑定到解释器里的 plt 包, 只暴露这些符号
func (f *Figure) exports() interp.Exports {
	return interp.Exports{
		LibraryName + "/" + LibraryName: {
			"Title":   reflect.ValueOf(f.Title),
			"XLabel":  reflect.ValueOf(f.XLabel),
			"YLabel":  reflect.ValueOf(f.YLabel),
			"Legend":  reflect.ValueOf(f.Legend),
			"Bar":     reflect.ValueOf(f.Bar),
			"BarH":    reflect.ValueOf(f.BarH),
			"Plot":    reflect.ValueOf(f.Plot),
			"Scatter": reflect.ValueOf(f.Scatter),
			"Hist":    reflect.ValueOf(f.Hist),
		},
	}
}

// plot 把记录下来的数据画成 gonum 图
func (f *Figure) plot(barWidth vg.Length) (*plot.Plot, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.series) == 0 {
		return nil, ErrEmptyFigure
	}

	p := plot.New()
	p.Title.Text = f.title
	p.X.Label.Text = f.xLabel
	p.Y.Label.Text = f.yLabel

	var bars []*plotter.BarChart
	horizontal := false
	for i, s := range f.series {
		color := plotutil.Color(i)
		var thumb plot.Thumbnailer

		switch s.kind {
		case seriesBar:
			bar, err := plotter.NewBarChart(plotter.Values(s.ys), barWidth)
			if err != nil {
				return nil, err
			}
			bar.Color = color
			bar.LineStyle.Width = vg.Length(0)
			bar.Horizontal = s.horizontal
			horizontal = s.horizontal
			bars = append(bars, bar)
			p.Add(bar)
			thumb = bar
		case seriesLine:
			line, err := plotter.NewLine(toXYs(s.xs, s.ys))
			if err != nil {
				return nil, err
			}
			line.Color = color
			line.Width = vg.Points(1.5)
			p.Add(line)
			thumb = line
		case seriesScatter:
			scatter, err := plotter.NewScatter(toXYs(s.xs, s.ys))
			if err != nil {
				return nil, err
			}
			scatter.GlyphStyle.Color = color
			p.Add(scatter)
			thumb = scatter
		case seriesHist:
			hist, err := plotter.NewHist(plotter.Values(s.ys), s.bins)
			if err != nil {
				return nil, err
			}
			hist.FillColor = color
			p.Add(hist)
			thumb = hist
		}

		if i < len(f.legend) && f.legend[i] != "" {
			p.Legend.Add(f.legend[i], thumb)
		}
	}

	// 多组柱子并排居中
	for i, bar := range bars {
		bar.Offset = vg.Length(float64(i)-float64(len(bars)-1)/2) * barWidth
	}
	if len(bars) > 0 {
		if horizontal {
			p.NominalY(f.labels...)
		} else {
			p.NominalX(f.labels...)
		}
	}
	return p, nil
}

func toXYs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}
