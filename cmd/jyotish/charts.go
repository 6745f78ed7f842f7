package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var chartsCmd = &cobra.Command{
	Use:   "charts [id]",
	Short: "List or show archived charts",
	Long: "Without arguments, lists every chart in the local archive. With a\n" +
		"chart ID, prints that chart in full.",
	Args: cobra.MaximumNArgs(1),
	RunE: runCharts,
}

func init() {
	rootCmd.AddCommand(chartsCmd)
}

func runCharts(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 1 {
		chart, err := store.GetChart(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if jsonOutput(cmd) {
			return printJSON(chart)
		}
		printChart(chart)
		return nil
	}

	charts, err := store.ListCharts(cmd.Context())
	if err != nil {
		return err
	}
	if jsonOutput(cmd) {
		return printJSON(charts)
	}
	if len(charts) == 0 {
		fmt.Println("No archived charts.")
		return nil
	}
	fmt.Printf("%-36s %-12s %-6s %10s %11s  %s\n", "ID", "Date", "Time", "Lat", "Lon", "Created")
	for _, c := range charts {
		fmt.Printf("%-36s %-12s %-6s %10.4f %11.4f  %s\n",
			c.ID, c.BirthDate, c.BirthTime, c.Latitude, c.Longitude,
			c.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
