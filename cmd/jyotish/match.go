package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kushalp/jyotish/internal/logger"
	"github.com/kushalp/jyotish/internal/match"
	"github.com/kushalp/jyotish/internal/models"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score Ashtakoot compatibility between two charts",
	Long: "Computes the eight-factor Ashtakoot Guna Milan score for two people.\n" +
		"Provide either two archived chart IDs (--chart-a/--chart-b) or two\n" +
		"full sets of birth details (--date-a/... and --date-b/...).",
	RunE: runMatch,
}

var (
	matchChartA string
	matchChartB string
	matchDateA  string
	matchTimeA  string
	matchLatA   float64
	matchLonA   float64
	matchTZA    float64
	matchDateB  string
	matchTimeB  string
	matchLatB   float64
	matchLonB   float64
	matchTZB    float64
	matchSave   bool
)

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVar(&matchChartA, "chart-a", "", "archived chart ID for the first person")
	matchCmd.Flags().StringVar(&matchChartB, "chart-b", "", "archived chart ID for the second person")

	matchCmd.Flags().StringVar(&matchDateA, "date-a", "", "first person's birth date (YYYY-MM-DD)")
	matchCmd.Flags().StringVar(&matchTimeA, "time-a", "", "first person's birth time")
	matchCmd.Flags().Float64Var(&matchLatA, "lat-a", 0, "first person's birth latitude")
	matchCmd.Flags().Float64Var(&matchLonA, "lon-a", 0, "first person's birth longitude")
	matchCmd.Flags().Float64Var(&matchTZA, "tz-a", 5.5, "first person's UTC offset in hours")

	matchCmd.Flags().StringVar(&matchDateB, "date-b", "", "second person's birth date (YYYY-MM-DD)")
	matchCmd.Flags().StringVar(&matchTimeB, "time-b", "", "second person's birth time")
	matchCmd.Flags().Float64Var(&matchLatB, "lat-b", 0, "second person's birth latitude")
	matchCmd.Flags().Float64Var(&matchLonB, "lon-b", 0, "second person's birth longitude")
	matchCmd.Flags().Float64Var(&matchTZB, "tz-b", 5.5, "second person's UTC offset in hours")

	matchCmd.Flags().BoolVar(&matchSave, "save", false, "archive the result (requires archived charts)")
}

func runMatch(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("tz-a") {
		matchTZA = cfg.Chart.DefaultUTCOffset
	}
	if !cmd.Flags().Changed("tz-b") {
		matchTZB = cfg.Chart.DefaultUTCOffset
	}

	chartA, err := resolveMatchChart(cmd, matchChartA, matchDateA, matchTimeA, matchLatA, matchLonA, matchTZA, "a")
	if err != nil {
		return err
	}
	chartB, err := resolveMatchChart(cmd, matchChartB, matchDateB, matchTimeB, matchLatB, matchLonB, matchTZB, "b")
	if err != nil {
		return err
	}

	result, err := match.Score(chartA, chartB)
	if err != nil {
		return err
	}

	if matchSave {
		if chartA.ID == "" || chartB.ID == "" {
			return errors.New("--save requires both charts to come from the archive (--chart-a/--chart-b)")
		}
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()
		id := uuid.New().String()
		if err := store.SaveMatch(cmd.Context(), id, chartA.ID, chartB.ID, result); err != nil {
			return err
		}
		logger.Info("Match result archived with ID %s", id)
	}

	if jsonOutput(cmd) {
		return printJSON(result)
	}
	printMatch(result)
	return nil
}

// resolveMatchChart produces one side's chart, either from the archive or by
// computing it from birth details.
func resolveMatchChart(cmd *cobra.Command, chartID, dateStr, timeStr string, lat, lon, tz float64, side string) (*models.NatalChart, error) {
	if chartID != "" {
		store, err := openStore(cmd.Context())
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.GetChart(cmd.Context(), chartID)
	}

	if dateStr == "" || timeStr == "" {
		return nil, fmt.Errorf("either --chart-%s or --date-%s and --time-%s must be given", side, side, side)
	}
	instant, err := resolveBirth(dateStr, timeStr, tz)
	if err != nil {
		return nil, err
	}
	assembler, err := newAssembler()
	if err != nil {
		return nil, err
	}
	return assembler.Compute(instant, lat, lon)
}

// printMatch renders the factor breakdown and verdict as text.
func printMatch(result models.CompatibilityResult) {
	fmt.Printf("%-14s %6s %5s  %s\n", "Factor", "Score", "Max", "Basis")
	for _, f := range result.Factors {
		fmt.Printf("%-14s %6d %5d  %s\n", f.Name, f.Score, f.Max, f.Basis)
	}
	fmt.Println()
	fmt.Printf("Total: %d/%d (%.1f%%)  %s\n",
		result.Total, models.MaxGunaScore, result.Percentage, result.Tier)
}
