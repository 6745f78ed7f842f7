package models

import (
	"errors"
	"fmt"
)

// Period is one planetary-ruled span of a Vimshottari timeline, bounded by
// Julian Day instants.
type Period struct {
	Lord    Body    `json:"lord"`
	StartJD float64 `json:"start_jd"`
	EndJD   float64 `json:"end_jd"`
}

// Days returns the period duration in days.
func (p *Period) Days() float64 {
	return p.EndJD - p.StartJD
}

// Contains reports whether jd falls inside the period. The start is
// inclusive and the end exclusive, so chained periods bracket every instant
// exactly once.
func (p *Period) Contains(jd float64) bool {
	return jd >= p.StartJD && jd < p.EndJD
}

// Validate checks that the period fields are valid.
func (p *Period) Validate() error {
	if !p.Lord.IsChartBody() {
		return fmt.Errorf("period lord %q is not a graha", p.Lord)
	}
	if p.EndJD <= p.StartJD {
		return errors.New("period end must be after start")
	}
	return nil
}

// MajorPeriod is a mahadasha together with its nine proportional sub-periods.
type MajorPeriod struct {
	Period
	Sub []Period `json:"sub"`
}

// PeriodTimeline is an ordered chain of major periods starting at birth.
// It is created once per natal chart and never mutated, only re-derived.
type PeriodTimeline struct {
	BirthJD float64       `json:"birth_jd"`
	Majors  []MajorPeriod `json:"majors"`
}

// Validate checks ordering and containment across the whole timeline: major
// periods chain end-to-start, and each major's sub-periods tile it exactly.
func (t *PeriodTimeline) Validate() error {
	if len(t.Majors) == 0 {
		return errors.New("timeline must contain at least one major period")
	}
	if t.Majors[0].StartJD != t.BirthJD {
		return errors.New("first major period must start at birth")
	}
	const tol = 1e-6
	for i := range t.Majors {
		m := &t.Majors[i]
		if err := m.Period.Validate(); err != nil {
			return fmt.Errorf("major period %d: %w", i, err)
		}
		if i > 0 && absDiff(m.StartJD, t.Majors[i-1].EndJD) > tol {
			return fmt.Errorf("major period %d does not start where period %d ends", i, i-1)
		}
		if len(m.Sub) != 9 {
			return fmt.Errorf("major period %d must have 9 sub-periods, has %d", i, len(m.Sub))
		}
		if absDiff(m.Sub[0].StartJD, m.StartJD) > tol {
			return fmt.Errorf("major period %d: first sub-period must start with the major", i)
		}
		if absDiff(m.Sub[8].EndJD, m.EndJD) > tol {
			return fmt.Errorf("major period %d: last sub-period must end with the major", i)
		}
		for j := 1; j < len(m.Sub); j++ {
			if absDiff(m.Sub[j].StartJD, m.Sub[j-1].EndJD) > tol {
				return fmt.Errorf("major period %d: sub-period %d is not contiguous", i, j)
			}
		}
	}
	return nil
}

// HorizonJD returns the end of the last computed major period.
func (t *PeriodTimeline) HorizonJD() float64 {
	if len(t.Majors) == 0 {
		return t.BirthJD
	}
	return t.Majors[len(t.Majors)-1].EndJD
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
