// Package analyzer wires scanning, aggregation, rendering and exports into one run.
package analyzer

import (
	"context"
	"time"

	"github.com/DMaendlen/netmeasure/common"
	"github.com/DMaendlen/netmeasure/config"
	"github.com/DMaendlen/netmeasure/evaluation"
	"github.com/DMaendlen/netmeasure/logger"
	"github.com/DMaendlen/netmeasure/render"
	"github.com/DMaendlen/netmeasure/savedata"
	"github.com/DMaendlen/netmeasure/scan"
	"github.com/DMaendlen/netmeasure/spdb"

	"github.com/hyp3rd/ewrap"
	"golang.org/x/exp/slices"
)

type NetMeasureAnalyzer struct {
	WorkingDir string
	YearPrefix string
	Convention common.Convention
	Options    evaluation.Options
	Renderer   string
	Figure     render.Options
}

// Results is everything derived from one pass over the working directory.
type Results struct {
	Averages evaluation.Result
	Series   [common.NumDirections]evaluation.Series
}

func (r *Results) SeriesList() []evaluation.Series {
	return r.Series[:]
}

func New(cfg *config.Config) (*NetMeasureAnalyzer, error) {
	conv, err := common.ParseConvention(cfg.Convention)
	if err != nil {
		return nil, err
	}
	if !slices.Contains([]string{"", render.RendererGonum, render.RendererGoChart}, cfg.Figure.Renderer) {
		return nil, ewrap.Wrapf(common.ErrInvalidConfig, "unknown renderer %q", cfg.Figure.Renderer)
	}
	return &NetMeasureAnalyzer{
		WorkingDir: cfg.WorkingDir,
		YearPrefix: cfg.YearPrefix,
		Convention: conv,
		Options:    evaluation.Options{StrictTimestamps: cfg.StrictTimestamps},
		Renderer:   cfg.Figure.Renderer,
		Figure: render.Options{
			WidthIn:  cfg.Figure.WidthIn,
			HeightIn: cfg.Figure.HeightIn,
			DPI:      cfg.Figure.DPI,
		},
	}, nil
}

// Analyze reads every batch from disk and builds the series. Nothing is cached between calls.
func (a *NetMeasureAnalyzer) Analyze() (*Results, error) {
	start := time.Now()
	sets, err := scan.Discover(a.WorkingDir, a.YearPrefix, a.Convention)
	if err != nil {
		return nil, err
	}
	avg, err := evaluation.AggregateAll(sets, a.Options)
	if err != nil {
		return nil, err
	}
	res := &Results{Averages: avg, Series: evaluation.BuildAll(avg)}
	for _, s := range res.Series {
		logger.Infof("%s: %d batches", s.Direction, len(s.Points))
	}
	logger.Debugf("analysis of %s took %s", a.WorkingDir, time.Since(start))
	return res, nil
}

// Plot renders the series; the figure is only produced when Analyze succeeded.
func (a *NetMeasureAnalyzer) Plot() (render.Drawing, *Results, error) {
	res, err := a.Analyze()
	if err != nil {
		return nil, nil, err
	}
	d, err := render.New(a.Renderer, res.SeriesList(), a.Figure)
	if err != nil {
		return nil, nil, err
	}
	return d, res, nil
}

func (a *NetMeasureAnalyzer) Summaries(res *Results) []evaluation.Summary {
	sums := make([]evaluation.Summary, 0, common.NumDirections)
	for _, d := range common.Directions {
		sums = append(sums, evaluation.Summarize(res.Series[d], res.Averages[d]))
	}
	return sums
}

// ExportCSV writes <dir>/upload.csv and <dir>/download.csv.
func (a *NetMeasureAnalyzer) ExportCSV(dir string, res *Results) error {
	for _, s := range res.Series {
		path := savedata.CSVName(dir, s)
		if err := savedata.SaveSeriesCSV(path, s); err != nil {
			return err
		}
		logger.Infof("wrote %s", path)
	}
	return nil
}

func (a *NetMeasureAnalyzer) ExportReport(path string, res *Results) error {
	if err := savedata.SaveReport(path, savedata.NewReport(a.WorkingDir, time.Now(), res.SeriesList())); err != nil {
		return err
	}
	logger.Infof("wrote %s", path)
	return nil
}

// Publish upserts the averages into MongoDB using the JSON connection file at mongoConfig.
func (a *NetMeasureAnalyzer) Publish(ctx context.Context, mongoConfig, db, collection string, res *Results) error {
	mgo, err := spdb.NewMongoDB(ctx, mongoConfig, db)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := mgo.Close(context.Background()); cerr != nil {
			logger.Warnf("%v", cerr)
		}
	}()
	docs := spdb.Documents(a.WorkingDir, time.Now(), res.SeriesList())
	inserted, err := mgo.InsertAverages(ctx, collection, docs)
	if err != nil {
		return err
	}
	logger.Infof("published %d averages (%d new) to %s.%s", len(docs), inserted, db, collection)
	return nil
}
