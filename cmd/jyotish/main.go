package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kushalp/jyotish/internal/config"
	"github.com/kushalp/jyotish/internal/ephemeris"
	"github.com/kushalp/jyotish/internal/kundli"
	"github.com/kushalp/jyotish/internal/logger"
	"github.com/kushalp/jyotish/internal/models"
	"github.com/kushalp/jyotish/internal/storage"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "jyotish",
	Short: "Vedic astrology computation engine",
	Long: "Jyotish computes sidereal natal charts, Vimshottari dasha timelines,\n" +
		"Sade-Sati transit analysis, and Ashtakoot compatibility scores from\n" +
		"birth date, time, and place.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (built-in defaults when omitted)")
	rootCmd.PersistentFlags().Bool("json", false, "emit JSON instead of formatted text")
}

// setup loads configuration and initializes logging before any subcommand.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	if cfgFile != "" {
		logger.Debug("Configuration loaded from %s", cfgFile)
	}
	return nil
}

// newAssembler builds the chart assembler from the loaded configuration.
func newAssembler() (*kundli.Assembler, error) {
	provider, err := ephemeris.NewAnalyticProvider(ephemeris.Config{Ayanamsa: cfg.Chart.Ayanamsa})
	if err != nil {
		return nil, err
	}
	return kundli.New(provider, cfg.Transit.WindowYears, cfg.Dasha.HorizonYears)
}

// resolveBirth parses the shared --date/--time/--tz flags into an Instant.
// A NaN-sentinel is avoided by letting cobra default tz to the configured
// offset before the flag set is parsed, so the flag value is always usable.
func resolveBirth(dateStr, timeStr string, tz float64) (models.Instant, error) {
	return ephemeris.ResolveInstant(dateStr, timeStr, tz)
}

// openStore opens the chart archive at the configured path.
func openStore(ctx context.Context) (*storage.Storage, error) {
	return storage.New(ctx, cfg.Storage.DBPath)
}

// nowJD returns the current instant as a Julian Day.
func nowJD() float64 {
	now := time.Now().UTC()
	utHours := float64(now.Hour()) + float64(now.Minute())/60.0 + float64(now.Second())/3600.0
	return ephemeris.JulianDay(now.Year(), int(now.Month()), now.Day(), utHours)
}

// jsonOutput reports whether the persistent --json flag was set.
func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatJD renders a Julian Day as a civil UTC date for display.
func formatJD(jd float64) string {
	year, month, day, _ := ephemeris.CivilFromJulianDay(jd)
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
