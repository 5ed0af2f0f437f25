package main

import (
	"github.com/DMaendlen/netmeasure/common"
	"github.com/DMaendlen/netmeasure/config"
	"github.com/DMaendlen/netmeasure/logger"

	"github.com/hyp3rd/ewrap"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFlag     string
	logLevelFlag   string
	prefixFlag     string
	conventionFlag string
	strictFlag     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "netmeasure",
		Short: "Average iperf3 throughput per batch and plot it over time",
		Long: `netmeasure reads iperf3 JSON results stored as <workdir>/<YYYY-MM-DD_HH-MM>/<file>,
averages the received bits per second of every batch for upload and download,
and plots the averages over time.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", config.DefaultPath, "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&prefixFlag, "prefix", "", "Batch directory name prefix (year)")
	rootCmd.PersistentFlags().StringVar(&conventionFlag, "convention", "", "File naming convention: suffix, log")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "Abort on batch directories that are not timestamps")

	rootCmd.AddCommand(NewPlotCmd())
	rootCmd.AddCommand(NewSummaryCmd())
	rootCmd.AddCommand(NewExportCmd())

	return rootCmd
}

// loadConfig reads the config file and applies the flags the user set explicitly.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		cfg.WorkingDir = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}
	if flags.Changed("prefix") {
		cfg.YearPrefix = prefixFlag
	}
	if flags.Changed("convention") {
		cfg.Convention = conventionFlag
	}
	if flags.Changed("strict") {
		cfg.StrictTimestamps = strictFlag
	}
	if cfg.LogLevel != "" && !logger.SetLogLevel(cfg.LogLevel) {
		return nil, ewrap.Wrapf(common.ErrInvalidConfig, "unknown log level %q", cfg.LogLevel)
	}
	return cfg, nil
}
