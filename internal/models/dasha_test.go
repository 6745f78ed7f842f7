package models

import "testing"

func TestPeriodContains(t *testing.T) {
	p := Period{Lord: Venus, StartJD: 100, EndJD: 200}
	tests := []struct {
		jd   float64
		want bool
	}{
		{99.999, false},
		{100, true}, // start inclusive
		{150, true},
		{199.999, true},
		{200, false}, // end exclusive
	}
	for _, tt := range tests {
		if got := p.Contains(tt.jd); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.jd, got, tt.want)
		}
	}
}

func TestPeriodValidate(t *testing.T) {
	p := Period{Lord: Venus, StartJD: 100, EndJD: 200}
	if err := p.Validate(); err != nil {
		t.Errorf("valid period rejected: %v", err)
	}
	p = Period{Lord: Lagna, StartJD: 100, EndJD: 200}
	if err := p.Validate(); err == nil {
		t.Error("non-graha lord should be rejected")
	}
	p = Period{Lord: Venus, StartJD: 200, EndJD: 100}
	if err := p.Validate(); err == nil {
		t.Error("inverted period should be rejected")
	}
	p = Period{Lord: Venus, StartJD: 100, EndJD: 100}
	if err := p.Validate(); err == nil {
		t.Error("empty period should be rejected")
	}
}

// evenMajor builds a major period whose nine sub-periods are equal ninths,
// which satisfies the tiling rules the timeline validator enforces.
func evenMajor(lord Body, start, end float64) MajorPeriod {
	m := MajorPeriod{Period: Period{Lord: lord, StartJD: start, EndJD: end}}
	step := (end - start) / 9
	for i := 0; i < 9; i++ {
		m.Sub = append(m.Sub, Period{
			Lord:    Venus,
			StartJD: start + float64(i)*step,
			EndJD:   start + float64(i+1)*step,
		})
	}
	m.Sub[8].EndJD = end
	return m
}

func TestPeriodTimelineValidate(t *testing.T) {
	timeline := PeriodTimeline{
		BirthJD: 1000,
		Majors: []MajorPeriod{
			evenMajor(Ketu, 1000, 2000),
			evenMajor(Venus, 2000, 3500),
		},
	}
	if err := timeline.Validate(); err != nil {
		t.Fatalf("valid timeline rejected: %v", err)
	}
	if got := timeline.HorizonJD(); got != 3500 {
		t.Errorf("HorizonJD = %v, want 3500", got)
	}

	empty := PeriodTimeline{BirthJD: 1000}
	if err := empty.Validate(); err == nil {
		t.Error("empty timeline should be rejected")
	}

	shifted := timeline
	shifted.BirthJD = 999
	if err := shifted.Validate(); err == nil {
		t.Error("timeline not starting at birth should be rejected")
	}

	gapped := PeriodTimeline{
		BirthJD: 1000,
		Majors: []MajorPeriod{
			evenMajor(Ketu, 1000, 2000),
			evenMajor(Venus, 2100, 3500),
		},
	}
	if err := gapped.Validate(); err == nil {
		t.Error("gap between majors should be rejected")
	}

	short := timeline
	short.Majors = []MajorPeriod{{Period: Period{Lord: Ketu, StartJD: 1000, EndJD: 2000}}}
	if err := short.Validate(); err == nil {
		t.Error("major without sub-periods should be rejected")
	}
}

func TestTransitStateValidate(t *testing.T) {
	valid := TransitState{
		NatalMoonSign: 5,
		SaturnSign:    4,
		SaturnDegree:  12.5,
		Phase:         PhaseRising,
		Intensity:     37.5,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid state rejected: %v", err)
	}

	mutate := func(f func(*TransitState)) TransitState {
		s := valid
		f(&s)
		return s
	}
	tests := []struct {
		name  string
		state TransitState
	}{
		{"moon sign 0", mutate(func(s *TransitState) { s.NatalMoonSign = 0 })},
		{"saturn sign 13", mutate(func(s *TransitState) { s.SaturnSign = 13 })},
		{"degree 30", mutate(func(s *TransitState) { s.SaturnDegree = 30 })},
		{"unknown phase", mutate(func(s *TransitState) { s.Phase = "waxing" })},
		{"intensity 101", mutate(func(s *TransitState) { s.Intensity = 101 })},
		{"bad boundary sign", mutate(func(s *TransitState) {
			s.Boundaries = []PhaseBoundary{{JulianDay: 2451545, Sign: 0}}
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.state.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
