package ephemeris

import (
	"math"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input      string
		wantHour   int
		wantMinute int
	}{
		{"7:20 PM", 19, 20},
		{"19:20", 19, 20},
		{"07:20", 7, 20},
		{"12:00 AM", 0, 0},
		{"12:00 PM", 12, 0},
		{"07:20pm", 19, 20},
		{"1:05 am", 1, 5},
		{"0:00", 0, 0},
		{"23:59", 23, 59},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			hour, minute, err := ParseTimeOfDay(tt.input)
			if err != nil {
				t.Fatalf("ParseTimeOfDay(%q) returned error: %v", tt.input, err)
			}
			if hour != tt.wantHour || minute != tt.wantMinute {
				t.Errorf("ParseTimeOfDay(%q) = %d:%02d, want %d:%02d",
					tt.input, hour, minute, tt.wantHour, tt.wantMinute)
			}
		})
	}
}

func TestParseTimeOfDayRejectsInvalid(t *testing.T) {
	inputs := []string{"", "25:00", "13:70", "13:00 PM", "0:30 AM", "abc", "7:xx"}
	for _, input := range inputs {
		if _, _, err := ParseTimeOfDay(input); err == nil {
			t.Errorf("ParseTimeOfDay(%q) should have failed", input)
		}
	}
}

func TestJulianDay(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   int
		day     int
		utHours float64
		want    float64
	}{
		{"J2000 epoch", 2000, 1, 1, 12.0, 2451545.0},
		{"J2000 midnight", 2000, 1, 1, 0.0, 2451544.5},
		{"mid-1990", 1990, 6, 15, 5.0, 2448057.7083333},
		{"unix epoch", 1970, 1, 1, 0.0, 2440587.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDay(tt.year, tt.month, tt.day, tt.utHours)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("JulianDay(%d, %d, %d, %v) = %.7f, want %.7f",
					tt.year, tt.month, tt.day, tt.utHours, got, tt.want)
			}
		})
	}
}

func TestCivilFromJulianDayRoundTrip(t *testing.T) {
	dates := []struct {
		year, month, day int
		utHours          float64
	}{
		{2000, 1, 1, 12.0},
		{1990, 6, 15, 5.0},
		{2024, 2, 29, 23.5},
		{1900, 3, 1, 0.25},
		{2050, 12, 31, 18.75},
	}
	for _, d := range dates {
		jd := JulianDay(d.year, d.month, d.day, d.utHours)
		year, month, day, utHours := CivilFromJulianDay(jd)
		if year != d.year || month != d.month || day != d.day {
			t.Errorf("round trip of %d-%02d-%02d gave %d-%02d-%02d",
				d.year, d.month, d.day, year, month, day)
		}
		if math.Abs(utHours-d.utHours) > 1e-6 {
			t.Errorf("round trip of %d-%02d-%02d %vh gave %vh",
				d.year, d.month, d.day, d.utHours, utHours)
		}
	}
}

func TestResolveInstant(t *testing.T) {
	instant, err := ResolveInstant("1990-06-15", "10:30", 5.5)
	if err != nil {
		t.Fatalf("ResolveInstant returned error: %v", err)
	}
	if instant.Year != 1990 || instant.Month != 6 || instant.Day != 15 {
		t.Errorf("unexpected civil date: %+v", instant)
	}
	if instant.Hour != 10 || instant.Minute != 30 {
		t.Errorf("unexpected civil time: %+v", instant)
	}
	// 10:30 IST is 05:00 UT.
	want := JulianDay(1990, 6, 15, 5.0)
	if math.Abs(instant.JulianDay-want) > 1e-9 {
		t.Errorf("JulianDay = %.7f, want %.7f", instant.JulianDay, want)
	}
}

func TestResolveInstantRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
		tz   float64
	}{
		{"bad date format", "15/06/1990", "10:30", 5.5},
		{"month out of range", "1990-13-15", "10:30", 5.5},
		{"day out of range", "1990-06-31", "10:30", 5.5},
		{"non-leap february 29", "1990-02-29", "10:30", 5.5},
		{"bad time", "1990-06-15", "25:00", 5.5},
		{"offset out of range", "1990-06-15", "10:30", 16.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ResolveInstant(tt.date, tt.time, tt.tz); err == nil {
				t.Errorf("ResolveInstant(%q, %q, %v) should have failed", tt.date, tt.time, tt.tz)
			}
		})
	}
}

func TestResolveInstantLeapDay(t *testing.T) {
	if _, err := ResolveInstant("2024-02-29", "00:00", 0); err != nil {
		t.Errorf("2024-02-29 should be accepted: %v", err)
	}
	if _, err := ResolveInstant("2000-02-29", "00:00", 0); err != nil {
		t.Errorf("2000-02-29 should be accepted: %v", err)
	}
	if _, err := ResolveInstant("1900-02-29", "00:00", 0); err == nil {
		t.Error("1900-02-29 should be rejected")
	}
}
