package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/DMaendlen/netmeasure/analyzer"
	"github.com/DMaendlen/netmeasure/common"
	"github.com/DMaendlen/netmeasure/evaluation"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var pointsFlag bool

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Width(12)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func NewSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary [workdir]",
		Short: "Print per-direction statistics of the batch averages",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSummary,
	}
	cmd.Flags().BoolVar(&pointsFlag, "points", false, "Also list every batch average")
	return cmd
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	a, err := analyzer.New(cfg)
	if err != nil {
		return err
	}
	res, err := a.Analyze()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, sum := range a.Summaries(res) {
		printSummary(out, sum)
		if pointsFlag {
			printPoints(out, res.Series[sum.Direction])
		}
		fmt.Fprintln(out)
	}
	return nil
}

func row(label, value string) string {
	return labelStyle.Render(label) + value
}

func printSummary(w io.Writer, s evaluation.Summary) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Average %s", s.Direction)))
	if s.Batches == 0 {
		fmt.Fprintln(w, dimStyle.Render("no batch with a valid measurement"))
		return
	}
	lines := []string{
		row("batches", fmt.Sprintf("%d (%d files, %d rejected)", s.Batches, s.Files, s.Rejected)),
		row("from", common.FormatTimestamp(s.First)),
		row("to", common.FormatTimestamp(s.Last)),
		row("mean", fmt.Sprintf("%.2f Mbps", s.MeanMbps)),
		row("stddev", fmt.Sprintf("%.2f Mbps", s.StdDevMbps)),
		row("min", fmt.Sprintf("%.2f Mbps", s.MinMbps)),
		row("max", fmt.Sprintf("%.2f Mbps", s.MaxMbps)),
		row("fingerprint", dimStyle.Render(fmt.Sprintf("%016x", s.Fingerprint))),
	}
	fmt.Fprintln(w, strings.Join(lines, "\n"))
}

func printPoints(w io.Writer, s evaluation.Series) {
	for _, p := range s.Points {
		fmt.Fprintf(w, "  %s  %8s Mbps  %s\n", p.Label, p.Display(),
			dimStyle.Render(fmt.Sprintf("%d/%d files", p.Valid, p.Valid+p.Rejected)))
	}
}
