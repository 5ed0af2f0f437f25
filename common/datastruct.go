package common

import (
	"strings"
	"time"

	"github.com/hyp3rd/ewrap"
)

//measurement direction of one iperf3 run
type Direction int

const (
	Upload Direction = iota
	Download
)

// NumDirections is the size of every per-direction table.
const NumDirections = 2

// Directions lists the directions in rendering order.
var Directions = [NumDirections]Direction{Upload, Download}

var directionNames = [NumDirections]string{"upload", "download"}

func (d Direction) String() string {
	if d < 0 || int(d) >= NumDirections {
		return "unknown"
	}
	return directionNames[d]
}

// ParseDirection maps "upload"/"download" (any case) to a Direction.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Directions {
		if directionNames[d] == name {
			return d, nil
		}
	}
	return Upload, ewrap.Wrapf(ErrInvalidConfig, "unknown direction %q", s)
}

// TimestampLayout is the layout of batch directory names (YYYY-MM-DD_HH-MM).
const TimestampLayout = "2006-01-02_15-04"

// ParseTimestamp parses a batch directory base name. Parsed times are UTC.
// Only the zero-padded form is accepted, so distinct names never share a timestamp.
func ParseTimestamp(name string) (time.Time, error) {
	ts, err := time.Parse(TimestampLayout, name)
	if err != nil {
		return time.Time{}, ewrap.Wrapf(ErrTimestampFormat, "batch %q: %v", name, err)
	}
	if FormatTimestamp(ts) != name {
		return time.Time{}, ewrap.Wrapf(ErrTimestampFormat, "batch %q: want %s", name, FormatTimestamp(ts))
	}
	return ts, nil
}

// FormatTimestamp is the inverse of ParseTimestamp.
func FormatTimestamp(ts time.Time) string {
	return ts.UTC().Format(TimestampLayout)
}
