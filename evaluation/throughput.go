package evaluation

import (
	"math"
	"strconv"
	"time"

	"github.com/DMaendlen/netmeasure/common"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/plot/plotter"
)

//one plotted value of a direction's time series
type Point struct {
	Timestamp time.Time
	Label     string
	Bps       float64
	Mbps      float64
	Valid     int
	Rejected  int
}

// Display is the Mbps value with exactly two decimals.
func (p Point) Display() string {
	return strconv.FormatFloat(p.Mbps, 'f', 2, 64)
}

type Series struct {
	Direction common.Direction
	Points    []Point
}

// ToMbps converts bits/s to Mbit/s rounded half-up to two decimals.
func ToMbps(bps float64) float64 {
	return math.Round(bps/1e4) / 100
}

// BuildSeries orders an HourlyAverage by ascending timestamp and converts it for display.
func BuildSeries(d common.Direction, hourly HourlyAverage) Series {
	keys := maps.Keys(hourly)
	slices.SortFunc(keys, func(a, b time.Time) int { return a.Compare(b) })
	s := Series{Direction: d, Points: make([]Point, 0, len(keys))}
	for _, ts := range keys {
		avg := hourly[ts]
		s.Points = append(s.Points, Point{
			Timestamp: ts,
			Label:     common.FormatTimestamp(ts),
			Bps:       avg.Bps,
			Mbps:      ToMbps(avg.Bps),
			Valid:     avg.Valid,
			Rejected:  avg.Rejected,
		})
	}
	return s
}

// BuildAll builds the series of every direction in common.Directions order.
func BuildAll(res Result) [common.NumDirections]Series {
	var all [common.NumDirections]Series
	for _, d := range common.Directions {
		all[d] = BuildSeries(d, res[d])
	}
	return all
}

//X is the unix timestamp in seconds, Y is Mbps
func (s Series) XYs() plotter.XYs {
	xys := make(plotter.XYs, len(s.Points))
	for i, p := range s.Points {
		xys[i].X = float64(p.Timestamp.Unix())
		xys[i].Y = p.Mbps
	}
	return xys
}

func (s Series) Times() []time.Time {
	ts := make([]time.Time, len(s.Points))
	for i, p := range s.Points {
		ts[i] = p.Timestamp
	}
	return ts
}

func (s Series) Mbps() []float64 {
	ys := make([]float64, len(s.Points))
	for i, p := range s.Points {
		ys[i] = p.Mbps
	}
	return ys
}

// TimeRange returns the earliest and latest timestamp over all series; ok is false if all are empty.
func TimeRange(all []Series) (first, last time.Time, ok bool) {
	for _, s := range all {
		if len(s.Points) == 0 {
			continue
		}
		f, l := s.Points[0].Timestamp, s.Points[len(s.Points)-1].Timestamp
		if !ok || f.Before(first) {
			first = f
		}
		if !ok || l.After(last) {
			last = l
		}
		ok = true
	}
	return first, last, ok
}
