// Package kundli assembles complete natal charts: it runs the ephemeris for
// the ascendant and all nine grahas, derives the categorical placements, and
// attaches the Saturn transit state and Vimshottari timeline.
package kundli

import (
	"fmt"

	"github.com/kushalp/jyotish/internal/dasha"
	"github.com/kushalp/jyotish/internal/ephemeris"
	"github.com/kushalp/jyotish/internal/models"
	"github.com/kushalp/jyotish/internal/panchanga"
	"github.com/kushalp/jyotish/internal/transit"
)

// Assembler orchestrates one chart computation. It is stateless between
// calls: two charts can be computed concurrently on one assembler.
type Assembler struct {
	provider           ephemeris.PositionProvider
	transitEngine      *transit.Engine
	transitWindowYears int
	dashaHorizonYears  int
}

// New creates an assembler. transitWindowYears bounds the Sade-Sati boundary
// scan; dashaHorizonYears bounds the period timeline.
func New(provider ephemeris.PositionProvider, transitWindowYears, dashaHorizonYears int) (*Assembler, error) {
	if provider == nil {
		return nil, fmt.Errorf("position provider is required")
	}
	if transitWindowYears < 1 {
		return nil, fmt.Errorf("transit window %d must be at least 1 year", transitWindowYears)
	}
	if dashaHorizonYears < 1 || dashaHorizonYears > dasha.TotalYears {
		return nil, fmt.Errorf("dasha horizon %d must be between 1 and %d years", dashaHorizonYears, dasha.TotalYears)
	}
	return &Assembler{
		provider:           provider,
		transitEngine:      transit.New(provider),
		transitWindowYears: transitWindowYears,
		dashaHorizonYears:  dashaHorizonYears,
	}, nil
}

// Compute builds the chart with the transit state referenced to the birth
// instant itself, making the result fully deterministic in its inputs.
func (a *Assembler) Compute(instant models.Instant, latitude, longitude float64) (*models.NatalChart, error) {
	return a.ComputeAt(instant, latitude, longitude, instant.JulianDay)
}

// ComputeAt builds the chart with the Sade-Sati state evaluated at an
// explicit reference instant (for "where is Saturn for this person today").
// A failed upstream step aborts the whole computation; no partial charts.
func (a *Assembler) ComputeAt(instant models.Instant, latitude, longitude float64, transitRefJD float64) (*models.NatalChart, error) {
	if err := instant.Validate(); err != nil {
		return nil, fmt.Errorf("invalid instant: %w", err)
	}
	jd := instant.JulianDay
	ayanamsa := a.provider.Ayanamsa(jd)

	ascTropical, err := ephemeris.Ascendant(jd, latitude, longitude)
	if err != nil {
		return nil, fmt.Errorf("ascendant: %w", err)
	}
	ascSidereal := ephemeris.Sidereal(ascTropical, ayanamsa)
	ascendant := models.AscendantPlacement{
		TropicalLongitude: ascTropical,
		SiderealLongitude: ascSidereal,
		Zodiac:            panchanga.SignOf(ascSidereal),
		Nakshatra:         panchanga.NakshatraOf(ascSidereal),
		House:             1,
	}

	planets := make(map[models.Body]models.PlanetPlacement, 9)
	for _, body := range models.ChartBodies() {
		tropical, speed, err := a.provider.Longitude(body, jd)
		if err != nil {
			return nil, fmt.Errorf("%s position: %w", body, err)
		}
		sidereal := ephemeris.Sidereal(tropical, ayanamsa)
		planets[body] = models.PlanetPlacement{
			Body:              body,
			TropicalLongitude: tropical,
			SiderealLongitude: sidereal,
			Speed:             speed,
			Retrograde:        speed < 0,
			Zodiac:            panchanga.SignOf(sidereal),
			Nakshatra:         panchanga.NakshatraOf(sidereal),
			House:             panchanga.HouseOf(sidereal, ascSidereal),
		}
	}

	sunLon := planets[models.Sun].SiderealLongitude
	moonLon := planets[models.Moon].SiderealLongitude

	chart := &models.NatalChart{
		Instant:   instant,
		Latitude:  latitude,
		Longitude: longitude,
		Ascendant: ascendant,
		Planets:   planets,
		Tithi:     panchanga.TithiOf(sunLon, moonLon),
		Yoga:      panchanga.YogaOf(sunLon, moonLon),
	}

	transitState, err := a.transitEngine.Compute(chart.MoonSign(), transitRefJD, a.transitWindowYears)
	if err != nil {
		return nil, fmt.Errorf("sade-sati: %w", err)
	}
	chart.Transit = transitState

	timeline, err := dasha.BuildTimeline(moonLon, jd, a.dashaHorizonYears)
	if err != nil {
		return nil, fmt.Errorf("dasha timeline: %w", err)
	}
	chart.Timeline = timeline

	if err := chart.Validate(); err != nil {
		return nil, fmt.Errorf("assembled chart failed validation: %w", err)
	}
	return chart, nil
}
