package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/DMaendlen/netmeasure/common"
	"github.com/DMaendlen/netmeasure/evaluation"
	"github.com/DMaendlen/netmeasure/logger"

	"github.com/hyp3rd/ewrap"
)

const (
	RendererGonum   = "gonum"
	RendererGoChart = "gochart"
)

// New renders series with the named backend; empty selects gonum.
func New(renderer string, series []evaluation.Series, opts Options) (Drawing, error) {
	switch strings.ToLower(renderer) {
	case "", RendererGonum:
		c, err := Figure(series, opts)
		if err != nil {
			return nil, err
		}
		return c, nil
	case RendererGoChart:
		return NewTimeChart(series, opts), nil
	}
	return nil, ewrap.Wrapf(common.ErrInvalidConfig, "unknown renderer %q", renderer)
}

// Save writes d to path in the format named by its extension.
func Save(d Drawing, path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return ewrap.Wrapf(common.ErrInvalidConfig, "figure file %q has no extension", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return ewrap.Wrap(err, "create figure")
	}
	n, err := d.Encode(f, format)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return ewrap.Wrapf(err, "write %s", path)
	}
	logger.Infof("saved figure %s (%d bytes)", path, n)
	return nil
}
