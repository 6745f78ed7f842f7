package dasha

import (
	"errors"
	"sort"

	"github.com/kushalp/jyotish/internal/models"
)

// ErrOutsideTimeline is returned when a reference instant falls outside the
// computed horizon. The timeline is never silently extrapolated.
var ErrOutsideTimeline = errors.New("reference instant outside the computed timeline")

// CurrentPeriods brackets one reference instant: the active major period and
// sub-period with their completion percentages.
type CurrentPeriods struct {
	Major           models.MajorPeriod `json:"major"`
	MajorCompletion float64            `json:"major_completion"` // 0-100
	Sub             models.Period      `json:"sub"`
	SubCompletion   float64            `json:"sub_completion"` // 0-100
}

// CurrentPeriod finds the major and sub-period bracketing referenceJD.
// Periods are chained and sorted, so the major is found by binary search.
func CurrentPeriod(timeline models.PeriodTimeline, referenceJD float64) (CurrentPeriods, error) {
	majors := timeline.Majors
	if len(majors) == 0 || referenceJD < majors[0].StartJD || referenceJD >= majors[len(majors)-1].EndJD {
		return CurrentPeriods{}, ErrOutsideTimeline
	}

	idx := sort.Search(len(majors), func(i int) bool {
		return majors[i].EndJD > referenceJD
	})
	major := majors[idx]

	sub := major.Sub[0]
	for _, s := range major.Sub {
		if s.Contains(referenceJD) {
			sub = s
			break
		}
	}

	return CurrentPeriods{
		Major:           major,
		MajorCompletion: completion(major.Period, referenceJD),
		Sub:             sub,
		SubCompletion:   completion(sub, referenceJD),
	}, nil
}

func completion(p models.Period, jd float64) float64 {
	if p.Days() <= 0 {
		return 0
	}
	return (jd - p.StartJD) / p.Days() * 100.0
}
