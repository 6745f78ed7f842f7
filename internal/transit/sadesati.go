// Package transit tracks Saturn's sidereal sign relative to a natal Moon
// sign across a rolling multi-year window (Sade-Sati).
//
// The window is scanned in coarse yearly steps; every step landing in one of
// the three Moon-adjacent signs seeds a bisection search that narrows the
// exact sign-ingress instant to under 0.001 Julian days (~86 ms). The search
// assumes a single monotonic crossing inside its bracket, which holds for
// Saturn's ~2.5-year sign transits; see ScanStepDays for the caveat on short
// retrograde re-entries.
package transit

import (
	"fmt"
	"math"

	"github.com/kushalp/jyotish/internal/ephemeris"
	"github.com/kushalp/jyotish/internal/logger"
	"github.com/kushalp/jyotish/internal/models"
)

// Engine computes Sade-Sati states from a position provider. It holds no
// per-query state and is safe for concurrent use.
type Engine struct {
	provider ephemeris.PositionProvider
}

// New creates a transit engine backed by the given provider.
func New(provider ephemeris.PositionProvider) *Engine {
	return &Engine{provider: provider}
}

// Phase classifies Saturn's sidereal sign against the natal Moon sign:
// one sign behind is rising, the Moon sign itself is peak, one sign past is
// setting, anything else is none. Both arguments are 1-12.
func Phase(natalMoonSign, saturnSign int) models.TransitPhase {
	prev := wrapSign(natalMoonSign - 1)
	next := wrapSign(natalMoonSign + 1)
	switch saturnSign {
	case prev:
		return models.PhaseRising
	case natalMoonSign:
		return models.PhasePeak
	case next:
		return models.PhaseSetting
	default:
		return models.PhaseNone
	}
}

// Intensity maps a phase and Saturn's degree-in-sign progress to 0-100.
// Rising builds 0 to 90 across the sign, peak holds 100, setting falls from
// 100 toward 10 as Saturn exits.
func Intensity(phase models.TransitPhase, saturnDegree float64) float64 {
	progress := saturnDegree / 30.0
	switch phase {
	case models.PhaseRising:
		return progress * 90.0
	case models.PhasePeak:
		return 100.0
	case models.PhaseSetting:
		return 100.0 - progress*90.0
	default:
		return 0.0
	}
}

// Compute returns the full transit state for a natal Moon sign at the
// reference instant, including the ingress boundaries found inside
// ±yearsWindow years.
func (e *Engine) Compute(natalMoonSign int, referenceJD float64, yearsWindow int) (models.TransitState, error) {
	if natalMoonSign < 1 || natalMoonSign > 12 {
		return models.TransitState{}, fmt.Errorf("natal moon sign %d out of range 1-12", natalMoonSign)
	}
	if yearsWindow < 1 {
		return models.TransitState{}, fmt.Errorf("years window %d must be at least 1", yearsWindow)
	}

	satLon, err := e.saturnSidereal(referenceJD)
	if err != nil {
		return models.TransitState{}, err
	}
	sign := signIndex(satLon)
	degree := satLon - float64(sign-1)*30.0
	phase := Phase(natalMoonSign, sign)

	state := models.TransitState{
		NatalMoonSign: natalMoonSign,
		SaturnSign:    sign,
		SaturnDegree:  degree,
		Phase:         phase,
		Intensity:     Intensity(phase, degree),
		Effects:       Effects(sign, phase),
	}

	targets := []int{wrapSign(natalMoonSign - 1), natalMoonSign, wrapSign(natalMoonSign + 1)}
	boundaries, err := e.findBoundaries(targets, referenceJD, yearsWindow)
	if err != nil {
		return models.TransitState{}, err
	}
	state.Boundaries = boundaries
	return state, nil
}

// saturnSidereal returns Saturn's sidereal longitude at jd.
func (e *Engine) saturnSidereal(jd float64) (float64, error) {
	lon, _, err := e.provider.Longitude(models.Saturn, jd)
	if err != nil {
		return 0, fmt.Errorf("saturn position: %w", err)
	}
	return ephemeris.Sidereal(lon, e.provider.Ayanamsa(jd)), nil
}

func signIndex(lon float64) int {
	idx := int(math.Mod(lon, 360)/30.0) + 1
	if idx > 12 {
		idx = 12
	}
	return idx
}

func wrapSign(sign int) int {
	return ((sign-1)%12+12)%12 + 1
}

// debugRetrograde logs when a coarse scan step brackets a retrograde
// interval, where a short re-entry could hide between steps.
func (e *Engine) debugRetrograde(jd float64) {
	_, speed, err := e.provider.Longitude(models.Saturn, jd)
	if err == nil && speed < 0 {
		logger.Debug("saturn retrograde at JD %.2f inside scan step; short re-entries may be missed", jd)
	}
}
