package common

import (
	"path/filepath"
	"strings"

	"github.com/hyp3rd/ewrap"
)

// Convention decides which direction a measurement file belongs to.
type Convention string

const (
	// ConventionSuffix matches names ending in "upload" / "download".
	ConventionSuffix Convention = "suffix"
	// ConventionLog matches "*.log" files whose stem ends in the direction.
	ConventionLog Convention = "log"
)

const logExt = ".log"

// ParseConvention validates a convention name; empty selects ConventionSuffix.
func ParseConvention(s string) (Convention, error) {
	switch Convention(strings.ToLower(strings.TrimSpace(s))) {
	case "", ConventionSuffix:
		return ConventionSuffix, nil
	case ConventionLog:
		return ConventionLog, nil
	}
	return "", ewrap.Wrapf(ErrInvalidConfig, "unknown file convention %q", s)
}

//input is a file base name, ok is false if it belongs to no direction
func (c Convention) MatchDirection(filename string) (Direction, bool) {
	name := filename
	if c == ConventionLog {
		ext := filepath.Ext(filename)
		if ext != logExt {
			return Upload, false
		}
		name = filename[:len(filename)-len(ext)]
	}
	for _, d := range Directions {
		if strings.HasSuffix(name, d.String()) {
			return d, true
		}
	}
	return Upload, false
}

// BatchName is the base name of a batch directory path.
func BatchName(dir string) string {
	return filepath.Base(filepath.Clean(dir))
}
