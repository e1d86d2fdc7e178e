package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "insightctl",
	Short: "Brand Studio insights engine, offline",
	Long:  `insightctl runs the market-insights engine against a local performance export and prints the dashboard KPIs without starting the server.`,
}

func main() {
	rootCmd.AddCommand(newAnalyzeCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
