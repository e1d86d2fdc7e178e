package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"brandstudio/adapters/excel"
	"brandstudio/domain/insights"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		topN      int
		rateFloor float64
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a CSV or Excel performance export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := insights.DefaultConfig()
			if topN > 0 {
				cfg.TopN = topN
			}
			if rateFloor >= 0 {
				cfg.RateFloor = rateFloor
			}
			return runAnalyze(cmd.OutOrStdout(), args[0], cfg)
		},
	}

	cmd.Flags().IntVar(&topN, "top", 0, "rows per ranked list (default 6)")
	cmd.Flags().Float64Var(&rateFloor, "rate-floor", -1, "minimum traffic for rate ranking (default 25)")
	return cmd
}

func runAnalyze(out io.Writer, path string, cfg insights.Config) error {
	raw, err := readFile(path, cfg)
	if err != nil {
		return err
	}

	summary := insights.Aggregate(raw, cfg)

	tbl := table.NewWriter()
	tbl.SetOutputMirror(out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Rows", "Traffic", "Conversions", "Overall Rate"})
	tbl.AppendRow(table.Row{
		summary.RowCount,
		fmt.Sprintf("%.0f", summary.TotalTraffic),
		fmt.Sprintf("%.0f", summary.TotalConversions),
		fmt.Sprintf("%.2f%%", summary.OverallRate*100),
	})
	tbl.Render()

	renderRanking(out, "Top by volume", summary.TopByVolume)
	if len(summary.TopByRate) == 0 {
		fmt.Fprintf(out, "\nTop by rate: not enough data (no rows with traffic >= %.0f)\n", cfg.RateFloor)
	} else {
		renderRanking(out, "Top by rate", summary.TopByRate)
	}
	return nil
}

func renderRanking(out io.Writer, title string, rows []insights.EnrichedRow) {
	fmt.Fprintf(out, "\n%s\n", title)
	tbl := table.NewWriter()
	tbl.SetOutputMirror(out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Label", "Traffic", "Conversions", "Rate"})
	for _, r := range rows {
		tbl.AppendRow(table.Row{
			r.Label,
			fmt.Sprintf("%.0f", r.Traffic),
			fmt.Sprintf("%.0f", r.Conversions),
			fmt.Sprintf("%.2f%%", r.Rate*100),
		})
	}
	tbl.Render()
}

func readFile(path string, cfg insights.Config) (insights.RawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return insights.RawTable{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return excel.ReadWorkbook(data)
	}

	text := string(data)
	if cfg.MaxTextBytes > 0 && len(text) > cfg.MaxTextBytes {
		text = text[:cfg.MaxTextBytes]
	}
	return insights.Parse(text), nil
}
