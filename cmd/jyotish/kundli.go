package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kushalp/jyotish/internal/logger"
	"github.com/kushalp/jyotish/internal/models"
)

var kundliCmd = &cobra.Command{
	Use:   "kundli",
	Short: "Compute a natal chart",
	Long: "Computes the full sidereal natal chart for a birth instant and place:\n" +
		"ascendant, the nine grahas with sign, nakshatra, pada, and house,\n" +
		"tithi, yoga, Sade-Sati status, and the Vimshottari timeline.",
	RunE: runKundli,
}

var (
	kundliDate string
	kundliTime string
	kundliLat  float64
	kundliLon  float64
	kundliTZ   float64
	kundliSave bool
)

func init() {
	rootCmd.AddCommand(kundliCmd)

	kundliCmd.Flags().StringVar(&kundliDate, "date", "", "birth date (YYYY-MM-DD)")
	kundliCmd.Flags().StringVar(&kundliTime, "time", "", "birth time (e.g. 19:20 or \"7:20 PM\")")
	kundliCmd.Flags().Float64Var(&kundliLat, "lat", 0, "birth latitude in degrees")
	kundliCmd.Flags().Float64Var(&kundliLon, "lon", 0, "birth longitude in degrees")
	kundliCmd.Flags().Float64Var(&kundliTZ, "tz", 5.5, "UTC offset of the birth time in hours")
	kundliCmd.Flags().BoolVar(&kundliSave, "save", false, "archive the chart in the local database")
	_ = kundliCmd.MarkFlagRequired("date")
	_ = kundliCmd.MarkFlagRequired("time")
	_ = kundliCmd.MarkFlagRequired("lat")
	_ = kundliCmd.MarkFlagRequired("lon")
}

func runKundli(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("tz") {
		kundliTZ = cfg.Chart.DefaultUTCOffset
	}

	instant, err := resolveBirth(kundliDate, kundliTime, kundliTZ)
	if err != nil {
		return err
	}

	assembler, err := newAssembler()
	if err != nil {
		return err
	}
	chart, err := assembler.Compute(instant, kundliLat, kundliLon)
	if err != nil {
		return err
	}

	if kundliSave {
		chart.ID = uuid.New().String()
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.SaveChart(cmd.Context(), chart); err != nil {
			return err
		}
		logger.Info("Chart archived with ID %s", chart.ID)
	}

	if jsonOutput(cmd) {
		return printJSON(chart)
	}
	printChart(chart)
	return nil
}

// printChart renders the chart as an aligned text table.
func printChart(chart *models.NatalChart) {
	fmt.Printf("Birth: %04d-%02d-%02d %02d:%02d (UTC%+.1f)  Lat %.4f  Lon %.4f  JD %.5f\n",
		chart.Instant.Year, chart.Instant.Month, chart.Instant.Day,
		chart.Instant.Hour, chart.Instant.Minute, chart.Instant.UTCOffset,
		chart.Latitude, chart.Longitude, chart.Instant.JulianDay)
	if chart.ID != "" {
		fmt.Printf("ID:    %s\n", chart.ID)
	}
	fmt.Println()

	fmt.Printf("%-10s %-12s %8s %-18s %4s %5s %3s\n",
		"Body", "Sign", "Degree", "Nakshatra", "Pada", "House", "")
	asc := chart.Ascendant
	fmt.Printf("%-10s %-12s %8.3f %-18s %4d %5d\n",
		models.Lagna, asc.Zodiac.Sign, asc.Zodiac.DegreeInSign, asc.Nakshatra.Name, asc.Nakshatra.Pada, asc.House)
	for _, body := range models.ChartBodies() {
		p := chart.Planets[body]
		marker := ""
		if p.Retrograde {
			marker = "(R)"
		}
		fmt.Printf("%-10s %-12s %8.3f %-18s %4d %5d %3s\n",
			p.Body, p.Zodiac.Sign, p.Zodiac.DegreeInSign, p.Nakshatra.Name, p.Nakshatra.Pada, p.House, marker)
	}

	fmt.Println()
	fmt.Printf("Tithi: %d (%s Paksha)   Yoga: %d (%s)\n",
		chart.Tithi.Number, chart.Tithi.Paksha, chart.Yoga.Number, chart.Yoga.Name)
	fmt.Printf("Sade-Sati: %s", chart.Transit.Phase)
	if chart.Transit.Phase != models.PhaseNone {
		fmt.Printf(" (intensity %.0f)", chart.Transit.Intensity)
	}
	fmt.Println()

	if len(chart.Timeline.Majors) > 0 {
		fmt.Println()
		fmt.Println("Vimshottari major periods:")
		for _, m := range chart.Timeline.Majors {
			fmt.Printf("  %-10s %s to %s (%.1f years)\n",
				m.Lord, formatJD(m.StartJD), formatJD(m.EndJD), m.Days()/365.25)
		}
	}
}
