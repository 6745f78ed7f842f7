package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kushalp/jyotish/internal/ephemeris"
	"github.com/kushalp/jyotish/internal/models"
	"github.com/kushalp/jyotish/internal/panchanga"
)

var panchangaCmd = &cobra.Command{
	Use:   "panchanga",
	Short: "Compute panchanga elements for an instant",
	Long: "Reports the lunar calendar elements for a civil instant: the Moon's\n" +
		"sign and nakshatra, the tithi, and the yoga.",
	RunE: runPanchanga,
}

var (
	panchangaDate string
	panchangaTime string
	panchangaTZ   float64
)

func init() {
	rootCmd.AddCommand(panchangaCmd)

	panchangaCmd.Flags().StringVar(&panchangaDate, "date", "", "date (YYYY-MM-DD)")
	panchangaCmd.Flags().StringVar(&panchangaTime, "time", "12:00", "local time")
	panchangaCmd.Flags().Float64Var(&panchangaTZ, "tz", 5.5, "UTC offset in hours")
	_ = panchangaCmd.MarkFlagRequired("date")
}

func runPanchanga(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("tz") {
		panchangaTZ = cfg.Chart.DefaultUTCOffset
	}

	instant, err := resolveBirth(panchangaDate, panchangaTime, panchangaTZ)
	if err != nil {
		return err
	}

	provider, err := ephemeris.NewAnalyticProvider(ephemeris.Config{Ayanamsa: cfg.Chart.Ayanamsa})
	if err != nil {
		return err
	}
	ayanamsa := provider.Ayanamsa(instant.JulianDay)

	sunLon, _, err := provider.Longitude(models.Sun, instant.JulianDay)
	if err != nil {
		return err
	}
	moonLon, _, err := provider.Longitude(models.Moon, instant.JulianDay)
	if err != nil {
		return err
	}
	sunSidereal := ephemeris.Sidereal(sunLon, ayanamsa)
	moonSidereal := ephemeris.Sidereal(moonLon, ayanamsa)

	out := struct {
		Instant   models.Instant            `json:"instant"`
		MoonSign  models.ZodiacPlacement    `json:"moon_sign"`
		Nakshatra models.NakshatraPlacement `json:"nakshatra"`
		Tithi     models.Tithi              `json:"tithi"`
		Yoga      models.Yoga               `json:"yoga"`
	}{
		Instant:   instant,
		MoonSign:  panchanga.SignOf(moonSidereal),
		Nakshatra: panchanga.NakshatraOf(moonSidereal),
		Tithi:     panchanga.TithiOf(sunSidereal, moonSidereal),
		Yoga:      panchanga.YogaOf(sunSidereal, moonSidereal),
	}

	if jsonOutput(cmd) {
		return printJSON(out)
	}
	fmt.Printf("Moon:      %s %.3f deg\n", out.MoonSign.Sign, out.MoonSign.DegreeInSign)
	fmt.Printf("Nakshatra: %s (pada %d)\n", out.Nakshatra.Name, out.Nakshatra.Pada)
	fmt.Printf("Tithi:     %d (%s Paksha)\n", out.Tithi.Number, out.Tithi.Paksha)
	fmt.Printf("Yoga:      %d (%s)\n", out.Yoga.Number, out.Yoga.Name)
	return nil
}
