package main

import (
	"github.com/DMaendlen/netmeasure/analyzer"
	"github.com/DMaendlen/netmeasure/render"
	"github.com/DMaendlen/netmeasure/viewer"

	"github.com/spf13/cobra"
)

const viewerDPI = 96

var (
	saveFlag     bool
	showFlag     bool
	outFlag      string
	dpiFlag      int
	rendererFlag string
)

func NewPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot [workdir]",
		Short: "Plot average upload and download throughput over time",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlot,
	}
	cmd.Flags().BoolVar(&saveFlag, "save", true, "Write the figure to --out")
	cmd.Flags().BoolVar(&showFlag, "show", true, "Open the figure in a window")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "fig.png", "Figure file; the extension selects png, svg, eps, pdf")
	cmd.Flags().IntVar(&dpiFlag, "dpi", 600, "Resolution of png output")
	cmd.Flags().StringVar(&rendererFlag, "renderer", "gonum", "Chart backend: gonum, gochart")
	return cmd
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("save") {
		cfg.Save = saveFlag
	}
	if flags.Changed("show") {
		cfg.Show = showFlag
	}
	if flags.Changed("out") {
		cfg.Figure.File = outFlag
	}
	if flags.Changed("dpi") {
		cfg.Figure.DPI = dpiFlag
	}
	if flags.Changed("renderer") {
		cfg.Figure.Renderer = rendererFlag
	}

	a, err := analyzer.New(cfg)
	if err != nil {
		return err
	}
	fig, _, err := a.Plot()
	if err != nil {
		return err
	}
	if cfg.Save {
		if err := render.Save(fig, cfg.Figure.File); err != nil {
			return err
		}
	}
	if cfg.Show {
		img, err := fig.Image(viewerDPI)
		if err != nil {
			return err
		}
		viewer.Show("netmeasure "+cfg.WorkingDir, img)
	}
	return nil
}
