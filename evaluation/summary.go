package evaluation

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/DMaendlen/netmeasure/common"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes one direction's series. Statistics are over unrounded Mbps values.
type Summary struct {
	Direction   common.Direction
	Batches     int
	Files       int
	Rejected    int
	First       time.Time
	Last        time.Time
	MeanMbps    float64
	StdDevMbps  float64
	MinMbps     float64
	MaxMbps     float64
	Fingerprint uint64
}

func Summarize(s Series, hourly HourlyAverage) Summary {
	sum := Summary{Direction: s.Direction, Batches: len(s.Points), Fingerprint: Fingerprint(hourly)}
	if len(s.Points) == 0 {
		return sum
	}
	mbps := make([]float64, len(s.Points))
	for i, p := range s.Points {
		mbps[i] = p.Bps / 1e6
		sum.Files += p.Valid
		sum.Rejected += p.Rejected
	}
	sum.First = s.Points[0].Timestamp
	sum.Last = s.Points[len(s.Points)-1].Timestamp
	sum.MinMbps = floats.Min(mbps)
	sum.MaxMbps = floats.Max(mbps)
	if len(mbps) < 2 {
		sum.MeanMbps = mbps[0]
		return sum
	}
	sum.MeanMbps, sum.StdDevMbps = stat.MeanStdDev(mbps, nil)
	return sum
}

// Fingerprint hashes an HourlyAverage in timestamp order. Equal inputs give equal
// fingerprints, so two runs over unchanged directories can be compared.
func Fingerprint(hourly HourlyAverage) uint64 {
	keys := maps.Keys(hourly)
	slices.SortFunc(keys, func(a, b time.Time) int { return a.Compare(b) })
	h := xxhash.New()
	var buf [24]byte
	for _, ts := range keys {
		avg := hourly[ts]
		binary.BigEndian.PutUint64(buf[0:8], uint64(ts.UnixNano()))
		binary.BigEndian.PutUint64(buf[8:16], math.Float64bits(avg.Bps))
		binary.BigEndian.PutUint64(buf[16:24], uint64(avg.Valid))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
