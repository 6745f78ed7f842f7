package transit

import (
	"fmt"
	"sort"

	"github.com/kushalp/jyotish/internal/models"
)

const (
	// ScanStepDays is the coarse scan step. One year per step is far
	// shorter than Saturn's ~2.5-year sign transit, so every transit is
	// sampled at least twice. A short-lived retrograde re-entry between two
	// steps can still be missed; this is a documented approximation, not
	// corrected here.
	ScanStepDays = 365.25

	// ingressBracketDays is the half-width of the refinement bracket placed
	// around a coarse hit before bisection.
	ingressBracketDays = 100.0

	// ingressToleranceDays is the bisection convergence span, ~86 seconds.
	ingressToleranceDays = 0.001

	// maxBisectionSteps caps the search; a 200-day bracket halves to below
	// the tolerance well inside this bound.
	maxBisectionSteps = 64

	// dedupeWindowDays merges coarse hits that belong to the same sign
	// transit. Saturn re-enters a given sign only after a full ~29.5-year
	// revolution, so hits for one sign within ~5.5 years are one ingress;
	// the scan runs ascending, keeping the earliest (true) crossing.
	dedupeWindowDays = 2000.0
)

// findBoundaries locates the instants Saturn enters each target sign within
// ±yearsWindow years of referenceJD, sorted ascending and deduplicated.
func (e *Engine) findBoundaries(targetSigns []int, referenceJD float64, yearsWindow int) ([]models.PhaseBoundary, error) {
	targets := make(map[int]bool, len(targetSigns))
	for _, s := range targetSigns {
		targets[s] = true
	}

	fromJD := referenceJD - float64(yearsWindow)*ScanStepDays
	toJD := referenceJD + float64(yearsWindow)*ScanStepDays

	var found []models.PhaseBoundary
	for jd := fromJD; jd <= toJD; jd += ScanStepDays {
		lon, err := e.saturnSidereal(jd)
		if err != nil {
			return nil, err
		}
		sign := signIndex(lon)
		if !targets[sign] {
			continue
		}
		e.debugRetrograde(jd)

		low := jd - ingressBracketDays
		high := jd + ingressBracketDays
		ingress, err := e.FindIngress(sign, low, high)
		if err != nil {
			return nil, err
		}
		if isDuplicate(found, ingress, sign) {
			continue
		}
		found = append(found, models.PhaseBoundary{JulianDay: ingress, Sign: sign})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].JulianDay < found[j].JulianDay })
	return found, nil
}

// FindIngress bisects [lowJD, highJD] to the instant Saturn's sidereal sign
// first equals targetSign. The bracket must be chosen so the sign progresses
// monotonically across it; if Saturn already occupies the target sign at the
// low edge, the low edge is returned (the ingress predates the bracket).
func (e *Engine) FindIngress(targetSign int, lowJD, highJD float64) (float64, error) {
	if highJD <= lowJD {
		return 0, fmt.Errorf("ingress bracket [%f, %f] is empty", lowJD, highJD)
	}

	lowLon, err := e.saturnSidereal(lowJD)
	if err != nil {
		return 0, err
	}
	startSign := signIndex(lowLon)
	if startSign == targetSign {
		return lowJD, nil
	}

	for iter := 0; iter < maxBisectionSteps; iter++ {
		if highJD-lowJD < ingressToleranceDays {
			return highJD, nil
		}
		mid := (lowJD + highJD) / 2
		lon, err := e.saturnSidereal(mid)
		if err != nil {
			return 0, err
		}
		if signsReached(startSign, signIndex(lon), targetSign) {
			highJD = mid
		} else {
			lowJD = mid
		}
	}
	return 0, fmt.Errorf("ingress search for sign %d did not converge within %d steps", targetSign, maxBisectionSteps)
}

// signsReached reports whether current, moving forward cyclically from
// start, has reached or passed target.
func signsReached(start, current, target int) bool {
	toCurrent := ((current-start)%12 + 12) % 12
	toTarget := ((target-start)%12 + 12) % 12
	return toCurrent >= toTarget
}

func isDuplicate(found []models.PhaseBoundary, jd float64, sign int) bool {
	for _, b := range found {
		if b.Sign != sign {
			continue
		}
		if diff := b.JulianDay - jd; diff < dedupeWindowDays && diff > -dedupeWindowDays {
			return true
		}
	}
	return false
}
