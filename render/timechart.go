package render

import (
	"bytes"
	"image"
	"image/color"
	stddraw "image/draw"
	"image/png"
	"io"
	"strings"
	"time"

	"github.com/DMaendlen/netmeasure/common"
	"github.com/DMaendlen/netmeasure/evaluation"

	"github.com/hyp3rd/ewrap"
	chart "github.com/wcharczuk/go-chart/v2"
)

// TimeChart renders the panels with go-chart and stacks them into one PNG.
type TimeChart struct {
	Charts []chart.Chart
	opts   Options
	// panel size in pixels at 96 dpi, scaled by the requested dpi
	panelW, panelH int
}

const screenDPI = 96

// NewTimeChart builds one go-chart panel per series.
func NewTimeChart(series []evaluation.Series, opts Options) *TimeChart {
	w, h := opts.inches()
	n := len(series)
	if n == 0 {
		n = 1
	}
	tc := &TimeChart{
		opts:   opts,
		panelW: int(w * screenDPI),
		panelH: int(h*screenDPI) / n,
	}
	for _, s := range series {
		times, ys := s.Times(), s.Mbps()
		//go-chart cannot range a single point
		if len(times) == 1 {
			times = append(times, times[0].Add(time.Minute))
			ys = append(ys, ys[0])
		}
		ch := chart.Chart{
			Title:      Title(s.Direction),
			Background: chart.Style{Padding: chart.Box{Top: 30, Left: 16, Right: 16, Bottom: 16}},
			XAxis: chart.XAxis{
				Name:           XLabel,
				ValueFormatter: chart.TimeValueFormatterWithFormat(common.TimestampLayout),
			},
			YAxis: chart.YAxis{Name: YLabel(s.Direction), Range: yRange(ys)},
		}
		if len(times) > 0 {
			ch.Series = []chart.Series{chart.TimeSeries{Name: s.Direction.String(), XValues: times, YValues: ys}}
		}
		tc.Charts = append(tc.Charts, ch)
	}
	return tc
}

//from zero to 10% above the peak, go-chart rejects an empty y delta
func yRange(ys []float64) *chart.ContinuousRange {
	peak := 0.0
	for _, y := range ys {
		if y > peak {
			peak = y
		}
	}
	if peak == 0 {
		peak = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: peak * 1.1}
}

func (tc *TimeChart) Image(dpi int) (image.Image, error) {
	if dpi <= 0 {
		dpi = tc.opts.dpi()
	}
	scale := float64(dpi) / screenDPI
	pw, ph := int(float64(tc.panelW)*scale), int(float64(tc.panelH)*scale)
	out := image.NewRGBA(image.Rect(0, 0, pw, ph*len(tc.Charts)))
	stddraw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, stddraw.Src)
	for i, ch := range tc.Charts {
		if len(ch.Series) == 0 {
			continue
		}
		ch.Width, ch.Height = pw, ph
		ch.DPI = float64(dpi)
		var buf bytes.Buffer
		if err := ch.Render(chart.PNG, &buf); err != nil {
			return nil, ewrap.Wrapf(err, "render %s", ch.Title)
		}
		panel, err := png.Decode(&buf)
		if err != nil {
			return nil, ewrap.Wrapf(err, "decode %s", ch.Title)
		}
		r := image.Rect(0, i*ph, pw, (i+1)*ph)
		stddraw.Draw(out, r, panel, panel.Bounds().Min, stddraw.Over)
	}
	return out, nil
}

// Encode supports png only.
func (tc *TimeChart) Encode(w io.Writer, format string) (int64, error) {
	if f := strings.ToLower(strings.TrimPrefix(format, ".")); f != "png" {
		return 0, ewrap.Wrapf(common.ErrInvalidConfig, "go-chart renderer writes png, not %q", format)
	}
	img, err := tc.Image(0)
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: w}
	if err := png.Encode(cw, img); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
