package dasha

import (
	"math"
	"testing"

	"github.com/kushalp/jyotish/internal/models"
)

func TestLordOf(t *testing.T) {
	tests := []struct {
		nakshatra int
		want      models.Body
	}{
		{1, models.Ketu},
		{2, models.Venus},
		{9, models.Mercury},
		{10, models.Ketu},
		{19, models.Ketu},
		{27, models.Mercury},
	}
	for _, tt := range tests {
		if got := LordOf(tt.nakshatra); got != tt.want {
			t.Errorf("LordOf(%d) = %s, want %s", tt.nakshatra, got, tt.want)
		}
	}
}

func TestLordYearsSumTo120(t *testing.T) {
	sum := 0.0
	for _, lord := range []models.Body{
		models.Ketu, models.Venus, models.Sun, models.Moon, models.Mars,
		models.Rahu, models.Jupiter, models.Saturn, models.Mercury,
	} {
		sum += YearsOf(lord)
	}
	if sum != TotalYears {
		t.Errorf("lord years sum to %v, want %d", sum, TotalYears)
	}
}

func TestBuildTimelineFullCycle(t *testing.T) {
	// Moon exactly at the start of Ashwini: no balance to deduct, so the
	// 120-year horizon is covered by exactly nine full periods.
	birthJD := 2448057.70
	timeline, err := BuildTimeline(0, birthJD, TotalYears)
	if err != nil {
		t.Fatalf("BuildTimeline returned error: %v", err)
	}
	if err := timeline.Validate(); err != nil {
		t.Fatalf("timeline should validate: %v", err)
	}
	if len(timeline.Majors) != 9 {
		t.Fatalf("expected 9 major periods, got %d", len(timeline.Majors))
	}

	wantOrder := []models.Body{
		models.Ketu, models.Venus, models.Sun, models.Moon, models.Mars,
		models.Rahu, models.Jupiter, models.Saturn, models.Mercury,
	}
	for i, m := range timeline.Majors {
		if m.Lord != wantOrder[i] {
			t.Errorf("major %d lord = %s, want %s", i, m.Lord, wantOrder[i])
		}
		wantDays := YearsOf(m.Lord) * DaysPerYear
		if math.Abs(m.Days()-wantDays) > 1e-6 {
			t.Errorf("major %s spans %v days, want %v", m.Lord, m.Days(), wantDays)
		}
	}

	total := timeline.Majors[8].EndJD - birthJD
	if math.Abs(total-TotalYears*DaysPerYear) > 1e-6 {
		t.Errorf("cycle spans %v days, want %v", total, TotalYears*DaysPerYear)
	}
}

func TestBuildTimelineBalance(t *testing.T) {
	// Moon halfway through Ashwini: half of Ketu's 7 years remain.
	moonLon := (360.0 / 27.0) / 2.0
	birthJD := 2448057.70
	timeline, err := BuildTimeline(moonLon, birthJD, TotalYears)
	if err != nil {
		t.Fatalf("BuildTimeline returned error: %v", err)
	}

	first := timeline.Majors[0]
	if first.Lord != models.Ketu {
		t.Errorf("first lord = %s, want %s", first.Lord, models.Ketu)
	}
	wantBalance := 3.5 * DaysPerYear
	if math.Abs(first.Days()-wantBalance) > 1e-6 {
		t.Errorf("balance period spans %v days, want %v", first.Days(), wantBalance)
	}

	// The second period is Venus at its full span.
	second := timeline.Majors[1]
	if second.Lord != models.Venus {
		t.Errorf("second lord = %s, want %s", second.Lord, models.Venus)
	}
	if math.Abs(second.Days()-20*DaysPerYear) > 1e-6 {
		t.Errorf("venus period spans %v days, want %v", second.Days(), 20*DaysPerYear)
	}
}

func TestBuildTimelineContiguous(t *testing.T) {
	timeline, err := BuildTimeline(200.0, 2451545.0, 60)
	if err != nil {
		t.Fatalf("BuildTimeline returned error: %v", err)
	}
	if timeline.Majors[0].StartJD != timeline.BirthJD {
		t.Errorf("first major starts at %v, want birth %v", timeline.Majors[0].StartJD, timeline.BirthJD)
	}
	for i := 1; i < len(timeline.Majors); i++ {
		if timeline.Majors[i].StartJD != timeline.Majors[i-1].EndJD {
			t.Errorf("gap between major %d and %d", i-1, i)
		}
	}
	horizon := timeline.BirthJD + 60*DaysPerYear
	if last := timeline.Majors[len(timeline.Majors)-1].EndJD; last < horizon {
		t.Errorf("timeline ends at %v, short of the horizon %v", last, horizon)
	}
}

func TestBuildTimelineRejectsInvalidHorizon(t *testing.T) {
	if _, err := BuildTimeline(0, 2451545.0, 0); err == nil {
		t.Error("zero-year horizon should be rejected")
	}
	if _, err := BuildTimeline(0, 2451545.0, 121); err == nil {
		t.Error("horizon beyond one cycle should be rejected")
	}
}

func TestSubPeriods(t *testing.T) {
	timeline, err := BuildTimeline(0, 2451545.0, TotalYears)
	if err != nil {
		t.Fatalf("BuildTimeline returned error: %v", err)
	}

	for _, major := range timeline.Majors {
		if len(major.Sub) != 9 {
			t.Fatalf("major %s has %d sub-periods, want 9", major.Lord, len(major.Sub))
		}
		if major.Sub[0].Lord != major.Lord {
			t.Errorf("major %s: first sub lord = %s, want the major lord", major.Lord, major.Sub[0].Lord)
		}
		if major.Sub[0].StartJD != major.StartJD {
			t.Errorf("major %s: subs do not start with the major", major.Lord)
		}
		if major.Sub[8].EndJD != major.EndJD {
			t.Errorf("major %s: subs do not end with the major", major.Lord)
		}
		for i, s := range major.Sub {
			if i > 0 && s.StartJD != major.Sub[i-1].EndJD {
				t.Errorf("major %s: gap before sub %d", major.Lord, i)
			}
			wantDays := major.Days() * YearsOf(s.Lord) / TotalYears
			if math.Abs(s.Days()-wantDays) > 1e-6 {
				t.Errorf("major %s sub %s spans %v days, want %v", major.Lord, s.Lord, s.Days(), wantDays)
			}
		}
	}
}

func TestCurrentPeriod(t *testing.T) {
	birthJD := 2448057.70
	timeline, err := BuildTimeline(0, birthJD, TotalYears)
	if err != nil {
		t.Fatalf("BuildTimeline returned error: %v", err)
	}

	// 10 years in: Ketu's 7 years are done, Venus is 3/20 through.
	ref := birthJD + 10*DaysPerYear
	cp, err := CurrentPeriod(timeline, ref)
	if err != nil {
		t.Fatalf("CurrentPeriod returned error: %v", err)
	}
	if cp.Major.Lord != models.Venus {
		t.Errorf("major lord = %s, want %s", cp.Major.Lord, models.Venus)
	}
	if math.Abs(cp.MajorCompletion-15.0) > 1e-6 {
		t.Errorf("major completion = %v, want 15", cp.MajorCompletion)
	}
	if !cp.Sub.Contains(ref) {
		t.Error("returned sub-period does not contain the reference instant")
	}
	if cp.SubCompletion < 0 || cp.SubCompletion > 100 {
		t.Errorf("sub completion = %v out of range", cp.SubCompletion)
	}
}

func TestCurrentPeriodAtBirth(t *testing.T) {
	timeline, err := BuildTimeline(0, 2451545.0, TotalYears)
	if err != nil {
		t.Fatalf("BuildTimeline returned error: %v", err)
	}
	cp, err := CurrentPeriod(timeline, 2451545.0)
	if err != nil {
		t.Fatalf("CurrentPeriod at birth returned error: %v", err)
	}
	if cp.Major.Lord != models.Ketu || cp.Sub.Lord != models.Ketu {
		t.Errorf("at birth got %s/%s, want Ketu/Ketu", cp.Major.Lord, cp.Sub.Lord)
	}
	if cp.MajorCompletion != 0 {
		t.Errorf("major completion at birth = %v, want 0", cp.MajorCompletion)
	}
}

func TestCurrentPeriodOutsideTimeline(t *testing.T) {
	timeline, err := BuildTimeline(0, 2451545.0, 30)
	if err != nil {
		t.Fatalf("BuildTimeline returned error: %v", err)
	}
	if _, err := CurrentPeriod(timeline, 2451544.0); err != ErrOutsideTimeline {
		t.Errorf("before birth: got %v, want ErrOutsideTimeline", err)
	}
	end := timeline.Majors[len(timeline.Majors)-1].EndJD
	if _, err := CurrentPeriod(timeline, end); err != ErrOutsideTimeline {
		t.Errorf("at timeline end: got %v, want ErrOutsideTimeline", err)
	}
}

func TestEffects(t *testing.T) {
	tests := []struct {
		major, sub    models.Body
		wantIntensity string
	}{
		{models.Jupiter, models.Venus, IntensityFavorable},
		{models.Saturn, models.Mars, IntensityChallenging},
		{models.Jupiter, models.Saturn, IntensityMixed},
		{models.Ketu, models.Moon, IntensityMixed},
	}
	for _, tt := range tests {
		got := Effects(tt.major, tt.sub)
		if got.Intensity != tt.wantIntensity {
			t.Errorf("Effects(%s, %s).Intensity = %s, want %s", tt.major, tt.sub, got.Intensity, tt.wantIntensity)
		}
		if len(got.Positives) == 0 || len(got.Challenges) == 0 {
			t.Errorf("Effects(%s, %s) has empty trait lists", tt.major, tt.sub)
		}
	}
}

func TestEffectsSameLordDeduplicates(t *testing.T) {
	got := Effects(models.Saturn, models.Saturn)
	if len(got.Positives) != 2 {
		t.Errorf("same-lord positives = %d entries, want the 2 leading traits once", len(got.Positives))
	}
}
