// Package ephemeris computes tropical and sidereal ecliptic longitudes for
// the nine grahas of the Vedic chart, plus the ascendant, from self-contained
// analytic series.
//
// The Sun uses the low-precision solar theory (three periodic terms plus
// aberration and nutation, good to a few arc-seconds near J2000). The Moon
// uses a truncated ELP2000-style series of ~45 periodic terms with
// eccentricity damping, good to a few arc-minutes. Mercury through Saturn use
// J2000 mean orbital elements with secular rates, solved through Kepler's
// equation. Rahu is the mean lunar ascending node; Ketu is always derived as
// Rahu + 180 degrees and never computed independently.
//
// Sidereal longitudes subtract the Lahiri ayanamsa, approximated by a
// linear+quadratic polynomial anchored at epoch 1900.0 plus the nutation in
// longitude.
package ephemeris

import (
	"fmt"

	"github.com/kushalp/jyotish/internal/models"
)

// AyanamsaLahiri is the only precession model currently supported.
const AyanamsaLahiri = "lahiri"

// Config carries the provider's explicit configuration. There is no hidden
// library-wide state: two providers with different configs can run
// concurrently without interference.
type Config struct {
	Ayanamsa string // precession model name; see AyanamsaLahiri
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Ayanamsa != AyanamsaLahiri {
		return fmt.Errorf("unsupported ayanamsa %q: only %q is available", c.Ayanamsa, AyanamsaLahiri)
	}
	return nil
}

// PositionProvider yields tropical longitudes with speeds, and the ayanamsa
// used to convert them to sidereal. Implementations must be safe for
// concurrent use.
type PositionProvider interface {
	// Longitude returns the apparent tropical ecliptic longitude in degrees
	// [0, 360) and the longitude rate in degrees per day (negative while
	// retrograde) for the given body at the given Julian Day.
	Longitude(body models.Body, jd float64) (lon, speed float64, err error)
	// Ayanamsa returns the tropical-to-sidereal offset in degrees.
	Ayanamsa(jd float64) float64
}

// AnalyticProvider implements PositionProvider from the built-in series. It
// is stateless after construction.
type AnalyticProvider struct {
	cfg Config
}

// NewAnalyticProvider constructs a provider for the given configuration.
func NewAnalyticProvider(cfg Config) (*AnalyticProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &AnalyticProvider{cfg: cfg}, nil
}

// Longitude implements PositionProvider.
func (p *AnalyticProvider) Longitude(body models.Body, jd float64) (float64, float64, error) {
	f, err := p.longitudeFunc(body)
	if err != nil {
		return 0, 0, err
	}
	lon := f(jd)
	// Central difference over one day; wrap-aware so a 359->1 degree step
	// does not read as a huge retrograde jump.
	speed := signedDelta(f(jd+0.5), f(jd-0.5))
	return lon, speed, nil
}

func (p *AnalyticProvider) longitudeFunc(body models.Body) (func(float64) float64, error) {
	switch body {
	case models.Sun:
		return apparentSolarLongitude, nil
	case models.Moon:
		return apparentLunarLongitude, nil
	case models.Rahu:
		return meanLunarNode, nil
	case models.Ketu:
		return func(jd float64) float64 {
			return Normalize(meanLunarNode(jd) + 180)
		}, nil
	case models.Mercury, models.Venus, models.Mars, models.Jupiter, models.Saturn:
		return func(jd float64) float64 {
			return planetGeocentricLongitude(body, jd)
		}, nil
	default:
		return nil, fmt.Errorf("no longitude series for body %q", body)
	}
}

// Ayanamsa implements PositionProvider with the Lahiri approximation.
func (p *AnalyticProvider) Ayanamsa(jd float64) float64 {
	return lahiriAyanamsa(jd)
}

// Sidereal converts a tropical longitude to sidereal for the given instant.
// The conversion is a single subtraction; applying it twice would double-
// subtract, so callers hold tropical and sidereal values in separate fields.
func Sidereal(tropical float64, ayanamsa float64) float64 {
	return Normalize(tropical - ayanamsa)
}
