package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kushalp/jyotish/internal/ephemeris"
	"github.com/kushalp/jyotish/internal/models"
	"github.com/kushalp/jyotish/internal/panchanga"
	"github.com/kushalp/jyotish/internal/transit"
)

var sadesatiCmd = &cobra.Command{
	Use:   "sadesati",
	Short: "Analyze the Sade-Sati transit of Saturn",
	Long: "Reports the Sade-Sati status for a natal Moon sign: the current phase\n" +
		"and intensity, plus Saturn's sign ingress dates across the scan window.",
	RunE: runSadesati,
}

var (
	sadesatiDate   string
	sadesatiTime   string
	sadesatiTZ     float64
	sadesatiRef    string
	sadesatiWindow int
)

func init() {
	rootCmd.AddCommand(sadesatiCmd)

	sadesatiCmd.Flags().StringVar(&sadesatiDate, "date", "", "birth date (YYYY-MM-DD)")
	sadesatiCmd.Flags().StringVar(&sadesatiTime, "time", "", "birth time")
	sadesatiCmd.Flags().Float64Var(&sadesatiTZ, "tz", 5.5, "UTC offset of the birth time in hours")
	sadesatiCmd.Flags().StringVar(&sadesatiRef, "ref", "", "reference date (YYYY-MM-DD, default today)")
	sadesatiCmd.Flags().IntVar(&sadesatiWindow, "window", 0, "scan window in years (default from config)")
	_ = sadesatiCmd.MarkFlagRequired("date")
	_ = sadesatiCmd.MarkFlagRequired("time")
}

func runSadesati(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("tz") {
		sadesatiTZ = cfg.Chart.DefaultUTCOffset
	}
	window := sadesatiWindow
	if window == 0 {
		window = cfg.Transit.WindowYears
	}

	instant, err := resolveBirth(sadesatiDate, sadesatiTime, sadesatiTZ)
	if err != nil {
		return err
	}

	refJD := nowJD()
	if sadesatiRef != "" {
		ref, err := resolveBirth(sadesatiRef, "12:00", 0)
		if err != nil {
			return fmt.Errorf("invalid --ref date: %w", err)
		}
		refJD = ref.JulianDay
	}

	provider, err := ephemeris.NewAnalyticProvider(ephemeris.Config{Ayanamsa: cfg.Chart.Ayanamsa})
	if err != nil {
		return err
	}
	moonLon, _, err := provider.Longitude(models.Moon, instant.JulianDay)
	if err != nil {
		return err
	}
	moonSign := panchanga.SignOf(ephemeris.Sidereal(moonLon, provider.Ayanamsa(instant.JulianDay)))

	state, err := transit.New(provider).Compute(moonSign.SignIndex, refJD, window)
	if err != nil {
		return err
	}

	if jsonOutput(cmd) {
		return printJSON(state)
	}
	printTransit(state, moonSign.Sign)
	return nil
}

func printTransit(state models.TransitState, moonSignName string) {
	fmt.Printf("Natal Moon sign: %s\n", moonSignName)
	fmt.Printf("Saturn: %s %.3f deg (sign %d)\n",
		panchanga.SignNames[state.SaturnSign-1], state.SaturnDegree, state.SaturnSign)
	fmt.Printf("Phase: %s", state.Phase)
	if state.Phase != models.PhaseNone {
		fmt.Printf("  Intensity: %.0f/100", state.Intensity)
	}
	fmt.Println()

	if len(state.Effects) > 0 {
		fmt.Println("Effects:")
		for _, e := range state.Effects {
			fmt.Printf("  - %s\n", e)
		}
	}

	if len(state.Boundaries) > 0 {
		fmt.Println("Saturn sign ingresses:")
		for _, b := range state.Boundaries {
			fmt.Printf("  %s  enters %s\n", formatJD(b.JulianDay), panchanga.SignNames[b.Sign-1])
		}
	}
}
