// Package render turns per-direction throughput series into stacked line charts.
package render

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/DMaendlen/netmeasure/common"
	"github.com/DMaendlen/netmeasure/evaluation"

	"github.com/hyp3rd/ewrap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

type Options struct {
	WidthIn  float64
	HeightIn float64
	DPI      int
}

func DefaultOptions() Options {
	return Options{WidthIn: 6.4, HeightIn: 4.8, DPI: 600}
}

func (o Options) inches() (float64, float64) {
	if o.WidthIn <= 0 || o.HeightIn <= 0 {
		d := DefaultOptions()
		return d.WidthIn, d.HeightIn
	}
	return o.WidthIn, o.HeightIn
}

func (o Options) size() (vg.Length, vg.Length) {
	w, h := o.inches()
	return vg.Length(w) * vg.Inch, vg.Length(h) * vg.Inch
}

func (o Options) dpi() int {
	if o.DPI <= 0 {
		return DefaultOptions().DPI
	}
	return o.DPI
}

// Drawing is a rendered figure that can be written in several formats.
type Drawing interface {
	// Encode encodes the figure; format is a file extension without the dot.
	Encode(w io.Writer, format string) (int64, error)
	// Image rasterizes the figure at the given resolution.
	Image(dpi int) (image.Image, error)
}

// Chart holds one gonum plot per direction, drawn as vertically stacked tiles.
type Chart struct {
	Plots []*plot.Plot
	opts  Options
}

// Title is the panel title of a direction.
func Title(d common.Direction) string {
	return fmt.Sprintf("Average %s over Time", d)
}

func YLabel(d common.Direction) string {
	return fmt.Sprintf("%s [Mbps]", d)
}

const XLabel = "Time [Timestamp]"

// halfStep pads a single-timestamp axis by half an hour on each side
const halfStep = 1800

// Figure builds one line subplot per series sharing a common time axis.
func Figure(series []evaluation.Series, opts Options) (*Chart, error) {
	first, last, ok := evaluation.TimeRange(series)
	c := &Chart{Plots: make([]*plot.Plot, 0, len(series)), opts: opts}
	for _, s := range series {
		p := plot.New()
		p.Title.Text = Title(s.Direction)
		p.X.Label.Text = XLabel
		p.Y.Label.Text = YLabel(s.Direction)
		p.X.Tick.Marker = plot.TimeTicks{Format: common.TimestampLayout, Time: plot.UTCUnixTime}
		p.Add(plotter.NewGrid())
		if len(s.Points) > 0 {
			if err := plotutil.AddLinePoints(p, s.XYs()); err != nil {
				return nil, ewrap.Wrapf(err, "plot %s", s.Direction)
			}
		}
		if ok {
			p.X.Min = float64(first.Unix())
			p.X.Max = float64(last.Unix())
			if p.X.Min == p.X.Max {
				p.X.Min -= halfStep
				p.X.Max += halfStep
			}
		}
		p.Y.Min = 0
		c.Plots = append(c.Plots, p)
	}
	return c, nil
}

// Draw lays the plots out in one column on dc.
func (c *Chart) Draw(dc draw.Canvas) {
	if len(c.Plots) == 0 {
		return
	}
	rows := make([][]*plot.Plot, len(c.Plots))
	for i, p := range c.Plots {
		rows[i] = []*plot.Plot{p}
	}
	t := draw.Tiles{
		Rows:      len(rows),
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      2 * vg.Millimeter,
		PadTop:    vg.Points(2),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(4),
	}
	canvases := plot.Align(rows, t, dc)
	for i := range rows {
		rows[i][0].Draw(canvases[i][0])
	}
}

func (c *Chart) raster(dpi int) *vgimg.Canvas {
	w, h := c.opts.size()
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	c.Draw(draw.New(img))
	return img
}

func (c *Chart) Encode(w io.Writer, format string) (int64, error) {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if format == "png" {
		return vgimg.PngCanvas{Canvas: c.raster(c.opts.dpi())}.WriteTo(w)
	}
	width, height := c.opts.size()
	var cw vg.CanvasWriterTo
	switch format {
	case "svg":
		cw = vgsvg.New(width, height)
	case "pdf":
		cw = vgpdf.New(width, height)
	case "eps":
		cw = vgeps.New(width, height)
	default:
		return 0, ewrap.Wrapf(common.ErrInvalidConfig, "unsupported figure format %q", format)
	}
	c.Draw(draw.New(cw))
	return cw.WriteTo(w)
}

func (c *Chart) Image(dpi int) (image.Image, error) {
	if dpi <= 0 {
		dpi = c.opts.dpi()
	}
	return c.raster(dpi).Image(), nil
}
