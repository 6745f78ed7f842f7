package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Chart   ChartConfig   `mapstructure:"chart"`
	Transit TransitConfig `mapstructure:"transit"`
	Dasha   DashaConfig   `mapstructure:"dasha"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ChartConfig holds chart computation defaults
type ChartConfig struct {
	DefaultUTCOffset float64 `mapstructure:"default_utc_offset"`
	Ayanamsa         string  `mapstructure:"ayanamsa"`
}

// TransitConfig holds Sade-Sati scan configuration
type TransitConfig struct {
	WindowYears int `mapstructure:"window_years"`
}

// DashaConfig holds Vimshottari timeline configuration
type DashaConfig struct {
	HorizonYears int `mapstructure:"horizon_years"`
}

// StorageConfig holds the chart archive configuration
type StorageConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)
	setDefaults(v)

	v.SetEnvPrefix("JYOTISH")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Unmarshal of pure defaults cannot fail.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	// Chart defaults: Indian Standard Time, Lahiri ayanamsa.
	v.SetDefault("chart.default_utc_offset", 5.5)
	v.SetDefault("chart.ayanamsa", "lahiri")

	// Transit defaults
	v.SetDefault("transit.window_years", 30)

	// Dasha defaults: the full 120-year cycle.
	v.SetDefault("dasha.horizon_years", 120)

	// Storage defaults
	v.SetDefault("storage.db_path", "./data/jyotish.db")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if c.Chart.DefaultUTCOffset < -12.0 || c.Chart.DefaultUTCOffset > 14.0 {
		return fmt.Errorf("chart.default_utc_offset must be between -12 and +14")
	}
	if c.Chart.Ayanamsa != "lahiri" {
		return fmt.Errorf("chart.ayanamsa must be %q", "lahiri")
	}

	if c.Transit.WindowYears < 1 || c.Transit.WindowYears > 100 {
		return fmt.Errorf("transit.window_years must be between 1 and 100")
	}

	if c.Dasha.HorizonYears < 1 || c.Dasha.HorizonYears > 120 {
		return fmt.Errorf("dasha.horizon_years must be between 1 and 120")
	}

	if c.Storage.DBPath == "" {
		return fmt.Errorf("storage.db_path is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}
