package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kushalp/jyotish/internal/dasha"
	"github.com/kushalp/jyotish/internal/ephemeris"
	"github.com/kushalp/jyotish/internal/models"
)

var dashaCmd = &cobra.Command{
	Use:   "dasha",
	Short: "Compute the Vimshottari dasha timeline",
	Long: "Builds the Vimshottari major/sub-period timeline from the natal Moon\n" +
		"nakshatra. With --at, also reports the periods active on that date\n" +
		"and their combined effects.",
	RunE: runDasha,
}

var (
	dashaDate  string
	dashaTime  string
	dashaTZ    float64
	dashaYears int
	dashaAt    string
	dashaSubs  bool
)

func init() {
	rootCmd.AddCommand(dashaCmd)

	dashaCmd.Flags().StringVar(&dashaDate, "date", "", "birth date (YYYY-MM-DD)")
	dashaCmd.Flags().StringVar(&dashaTime, "time", "", "birth time")
	dashaCmd.Flags().Float64Var(&dashaTZ, "tz", 5.5, "UTC offset of the birth time in hours")
	dashaCmd.Flags().IntVar(&dashaYears, "years", 0, "timeline horizon in years (default from config)")
	dashaCmd.Flags().StringVar(&dashaAt, "at", "", "report the active periods on this date (YYYY-MM-DD)")
	dashaCmd.Flags().BoolVar(&dashaSubs, "subs", false, "list sub-periods under every major period")
	_ = dashaCmd.MarkFlagRequired("date")
	_ = dashaCmd.MarkFlagRequired("time")
}

func runDasha(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("tz") {
		dashaTZ = cfg.Chart.DefaultUTCOffset
	}
	years := dashaYears
	if years == 0 {
		years = cfg.Dasha.HorizonYears
	}

	instant, err := resolveBirth(dashaDate, dashaTime, dashaTZ)
	if err != nil {
		return err
	}

	provider, err := ephemeris.NewAnalyticProvider(ephemeris.Config{Ayanamsa: cfg.Chart.Ayanamsa})
	if err != nil {
		return err
	}
	moonLon, _, err := provider.Longitude(models.Moon, instant.JulianDay)
	if err != nil {
		return err
	}
	moonSidereal := ephemeris.Sidereal(moonLon, provider.Ayanamsa(instant.JulianDay))

	timeline, err := dasha.BuildTimeline(moonSidereal, instant.JulianDay, years)
	if err != nil {
		return err
	}

	var current *dasha.CurrentPeriods
	if dashaAt != "" {
		at, err := resolveBirth(dashaAt, "12:00", 0)
		if err != nil {
			return fmt.Errorf("invalid --at date: %w", err)
		}
		cp, err := dasha.CurrentPeriod(timeline, at.JulianDay)
		if err != nil {
			return err
		}
		current = &cp
	}

	if jsonOutput(cmd) {
		out := struct {
			Timeline models.PeriodTimeline `json:"timeline"`
			Current  *dasha.CurrentPeriods `json:"current,omitempty"`
		}{timeline, current}
		return printJSON(out)
	}

	printTimeline(timeline, dashaSubs)
	if current != nil {
		printCurrent(*current)
	}
	return nil
}

func printTimeline(timeline models.PeriodTimeline, withSubs bool) {
	fmt.Printf("Vimshottari timeline from JD %.5f (%s):\n", timeline.BirthJD, formatJD(timeline.BirthJD))
	for _, m := range timeline.Majors {
		fmt.Printf("%-10s %s to %s (%.2f years)\n",
			m.Lord, formatJD(m.StartJD), formatJD(m.EndJD), m.Days()/dasha.DaysPerYear)
		if !withSubs {
			continue
		}
		for _, s := range m.Sub {
			fmt.Printf("    %-10s %s to %s\n", s.Lord, formatJD(s.StartJD), formatJD(s.EndJD))
		}
	}
}

func printCurrent(cp dasha.CurrentPeriods) {
	effects := dasha.Effects(cp.Major.Lord, cp.Sub.Lord)
	fmt.Println()
	fmt.Printf("Active major: %s (%.1f%% complete)\n", cp.Major.Lord, cp.MajorCompletion)
	fmt.Printf("Active sub:   %s (%.1f%% complete)\n", cp.Sub.Lord, cp.SubCompletion)
	fmt.Printf("Intensity:    %s\n", effects.Intensity)
	printTraits("Positives", effects.Positives)
	printTraits("Challenges", effects.Challenges)
	printTraits("Career", effects.Career)
	printTraits("Health", effects.Health)
	printTraits("Relationships", effects.Relationships)
}

func printTraits(name string, entries []string) {
	if len(entries) == 0 {
		return
	}
	fmt.Printf("%s:\n", name)
	for _, e := range entries {
		fmt.Printf("  - %s\n", e)
	}
}
