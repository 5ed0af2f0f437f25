package main

import (
	"context"
	"os"
	"time"

	"github.com/DMaendlen/netmeasure/analyzer"
	"github.com/DMaendlen/netmeasure/common"

	"github.com/hyp3rd/ewrap"
	"github.com/spf13/cobra"
)

const publishTimeout = time.Minute

var (
	csvDirFlag string
	reportFlag string
	mongoFlag  string
)

func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [workdir]",
		Short: "Write the batch averages as CSV, JSON or to MongoDB",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExport,
	}
	cmd.Flags().StringVar(&csvDirFlag, "csv-dir", "", "Directory for upload.csv and download.csv")
	cmd.Flags().StringVar(&reportFlag, "report", "", "JSON report file")
	cmd.Flags().StringVar(&mongoFlag, "mongo", "", "MongoDB connection file (JSON)")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("csv-dir") {
		cfg.Export.CSVDir = csvDirFlag
	}
	if flags.Changed("report") {
		cfg.Export.Report = reportFlag
	}
	if flags.Changed("mongo") {
		cfg.Export.MongoConfig = mongoFlag
	}
	exp := cfg.Export
	if exp.CSVDir == "" && exp.Report == "" && exp.MongoConfig == "" {
		return ewrap.Wrap(common.ErrInvalidConfig, "nothing to export: set --csv-dir, --report or --mongo")
	}

	a, err := analyzer.New(cfg)
	if err != nil {
		return err
	}
	res, err := a.Analyze()
	if err != nil {
		return err
	}
	if exp.CSVDir != "" {
		if err := os.MkdirAll(exp.CSVDir, 0755); err != nil {
			return ewrap.Wrap(err, "create csv directory")
		}
		if err := a.ExportCSV(exp.CSVDir, res); err != nil {
			return err
		}
	}
	if exp.Report != "" {
		if err := a.ExportReport(exp.Report, res); err != nil {
			return err
		}
	}
	if exp.MongoConfig != "" {
		ctx, cancel := context.WithTimeout(cmd.Context(), publishTimeout)
		defer cancel()
		if err := a.Publish(ctx, exp.MongoConfig, exp.MongoDB, exp.MongoCollection, res); err != nil {
			return err
		}
	}
	return nil
}
