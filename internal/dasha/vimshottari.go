// Package dasha builds Vimshottari period timelines: a fixed 120-year cycle
// of nine planetary lords, seeded by the natal Moon's fractional progress
// through its birth nakshatra, with each major period subdivided into nine
// proportional sub-periods.
package dasha

import (
	"fmt"

	"github.com/kushalp/jyotish/internal/models"
	"github.com/kushalp/jyotish/internal/panchanga"
)

// DaysPerYear converts lord year-weights into Julian Day spans.
const DaysPerYear = 365.25

// TotalYears is the length of one full Vimshottari cycle.
const TotalYears = 120

// lordOrder is the strict cyclic sequence of period lords.
var lordOrder = [9]models.Body{
	models.Ketu, models.Venus, models.Sun, models.Moon, models.Mars,
	models.Rahu, models.Jupiter, models.Saturn, models.Mercury,
}

// lordYears maps each lord to its fixed whole-year weight. The weights sum
// to 120.
var lordYears = map[models.Body]float64{
	models.Ketu:    7,
	models.Venus:   20,
	models.Sun:     6,
	models.Moon:    10,
	models.Mars:    7,
	models.Rahu:    18,
	models.Jupiter: 16,
	models.Saturn:  19,
	models.Mercury: 17,
}

// LordOf returns the ruling lord of a nakshatra (1-27). The nine-lord cycle
// repeats three times across the 27 mansions.
func LordOf(nakshatra int) models.Body {
	return lordOrder[(nakshatra-1)%9]
}

// YearsOf returns the fixed year-weight of a lord.
func YearsOf(lord models.Body) float64 {
	return lordYears[lord]
}

// BuildTimeline constructs the period timeline for a natal Moon sidereal
// longitude and birth instant, covering at least yearsAhead years. The first
// major period is the balance of the birth nakshatra lord's span; all later
// periods run their full fixed durations in strict cyclic order.
func BuildTimeline(moonSiderealLon, birthJD float64, yearsAhead int) (models.PeriodTimeline, error) {
	if yearsAhead < 1 || yearsAhead > TotalYears {
		return models.PeriodTimeline{}, fmt.Errorf("years ahead %d must be between 1 and %d", yearsAhead, TotalYears)
	}

	nak := panchanga.NakshatraOf(moonSiderealLon)
	completed := nak.Degree / panchanga.NakshatraSpan

	startIdx := (nak.Number - 1) % 9
	birthLord := lordOrder[startIdx]
	balanceDays := lordYears[birthLord] * (1 - completed) * DaysPerYear

	horizonJD := birthJD + float64(yearsAhead)*DaysPerYear

	timeline := models.PeriodTimeline{BirthJD: birthJD}
	start := birthJD
	for i := 0; ; i++ {
		lord := lordOrder[(startIdx+i)%9]
		days := lordYears[lord] * DaysPerYear
		if i == 0 {
			days = balanceDays
		}
		major := models.MajorPeriod{
			Period: models.Period{Lord: lord, StartJD: start, EndJD: start + days},
		}
		major.Sub = subPeriods(major.Period)
		timeline.Majors = append(timeline.Majors, major)
		start = major.EndJD
		if start >= horizonJD {
			break
		}
	}
	return timeline, nil
}

// subPeriods subdivides a major period into exactly nine antar dashas,
// starting from the major lord itself and cycling through all nine lords.
// Each sub-period lasts (its lord's year-weight / 120) of the major
// duration: proportional subdivision preserving each lord's relative
// weight, not equal ninths. The nine spans sum back to the major duration.
func subPeriods(major models.Period) []models.Period {
	startIdx := 0
	for i, lord := range lordOrder {
		if lord == major.Lord {
			startIdx = i
			break
		}
	}
	duration := major.Days()
	subs := make([]models.Period, 0, 9)
	start := major.StartJD
	for i := 0; i < 9; i++ {
		lord := lordOrder[(startIdx+i)%9]
		days := duration * lordYears[lord] / TotalYears
		subs = append(subs, models.Period{Lord: lord, StartJD: start, EndJD: start + days})
		start += days
	}
	// Close any floating residue so the last sub-period ends exactly with
	// the major period.
	subs[8].EndJD = major.EndJD
	return subs
}
