package ephemeris

import (
	"math"
	"testing"

	"github.com/kushalp/jyotish/internal/models"
)

func mustProvider(t *testing.T) *AnalyticProvider {
	t.Helper()
	p, err := NewAnalyticProvider(Config{Ayanamsa: AyanamsaLahiri})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	return p
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{Ayanamsa: AyanamsaLahiri}).Validate(); err != nil {
		t.Errorf("lahiri config should be valid: %v", err)
	}
	if err := (Config{Ayanamsa: "raman"}).Validate(); err == nil {
		t.Error("unsupported ayanamsa should be rejected")
	}
	if _, err := NewAnalyticProvider(Config{}); err == nil {
		t.Error("empty config should be rejected")
	}
}

func TestLongitudeRange(t *testing.T) {
	p := mustProvider(t)
	// A spread of epochs across a century.
	jds := []float64{2415020.5, 2436116.31, 2448057.70, 2451545.0, 2460000.0}
	for _, jd := range jds {
		for _, body := range models.ChartBodies() {
			lon, _, err := p.Longitude(body, jd)
			if err != nil {
				t.Fatalf("Longitude(%s, %v) returned error: %v", body, jd, err)
			}
			if lon < 0 || lon >= 360 {
				t.Errorf("Longitude(%s, %v) = %v, want [0, 360)", body, jd, lon)
			}
		}
	}
}

func TestLongitudeUnknownBody(t *testing.T) {
	p := mustProvider(t)
	if _, _, err := p.Longitude(models.Body("Pluto"), J2000); err == nil {
		t.Error("unknown body should return an error")
	}
	if _, _, err := p.Longitude(models.Lagna, J2000); err == nil {
		t.Error("the ascendant has no longitude series and should return an error")
	}
}

func TestKetuOppositeRahu(t *testing.T) {
	p := mustProvider(t)
	for _, jd := range []float64{2448057.70, J2000, 2465000.0} {
		rahu, _, err := p.Longitude(models.Rahu, jd)
		if err != nil {
			t.Fatalf("rahu: %v", err)
		}
		ketu, _, err := p.Longitude(models.Ketu, jd)
		if err != nil {
			t.Fatalf("ketu: %v", err)
		}
		want := Normalize(rahu + 180)
		if math.Abs(ketu-want) > 1e-9 {
			t.Errorf("at JD %v ketu = %v, want %v", jd, ketu, want)
		}
	}
}

func TestSolarLongitudeAtJ2000(t *testing.T) {
	p := mustProvider(t)
	lon, speed, err := p.Longitude(models.Sun, J2000)
	if err != nil {
		t.Fatalf("sun: %v", err)
	}
	// Apparent solar longitude at the J2000 epoch.
	if math.Abs(lon-280.372) > 0.05 {
		t.Errorf("sun longitude at J2000 = %v, want ~280.372", lon)
	}
	// The Sun advances close to one degree per day, slightly faster near
	// perihelion in early January.
	if speed < 0.95 || speed > 1.1 {
		t.Errorf("sun speed at J2000 = %v deg/day, want ~1.02", speed)
	}
}

func TestLunarSpeed(t *testing.T) {
	p := mustProvider(t)
	for _, jd := range []float64{2448057.70, J2000, 2458849.5} {
		_, speed, err := p.Longitude(models.Moon, jd)
		if err != nil {
			t.Fatalf("moon: %v", err)
		}
		if speed < 11.0 || speed > 15.5 {
			t.Errorf("moon speed at JD %v = %v deg/day, want within [11, 15.5]", jd, speed)
		}
	}
}

func TestSaturnSpeed(t *testing.T) {
	p := mustProvider(t)
	// Saturn's geocentric rate stays well under 0.15 deg/day, prograde or
	// retrograde.
	for jd := J2000; jd < J2000+10000; jd += 500 {
		_, speed, err := p.Longitude(models.Saturn, jd)
		if err != nil {
			t.Fatalf("saturn: %v", err)
		}
		if math.Abs(speed) > 0.15 {
			t.Errorf("saturn speed at JD %v = %v deg/day, want |speed| <= 0.15", jd, speed)
		}
	}
}

func TestSaturnGoesRetrograde(t *testing.T) {
	p := mustProvider(t)
	// Saturn spends roughly a third of every year retrograde; a one-year
	// sweep must show both signs of motion.
	var sawPrograde, sawRetrograde bool
	for jd := J2000; jd < J2000+400; jd += 5 {
		_, speed, err := p.Longitude(models.Saturn, jd)
		if err != nil {
			t.Fatalf("saturn: %v", err)
		}
		if speed > 0 {
			sawPrograde = true
		}
		if speed < 0 {
			sawRetrograde = true
		}
	}
	if !sawPrograde || !sawRetrograde {
		t.Errorf("expected both prograde and retrograde motion in one year, got prograde=%v retrograde=%v",
			sawPrograde, sawRetrograde)
	}
}

func TestAyanamsaLahiri(t *testing.T) {
	p := mustProvider(t)
	got := p.Ayanamsa(J2000)
	if math.Abs(got-23.85) > 0.05 {
		t.Errorf("ayanamsa at J2000 = %v, want ~23.85", got)
	}
	// The ayanamsa accumulates about 50 arc-seconds per year.
	later := p.Ayanamsa(J2000 + 100*365.25)
	ratePerYear := (later - got) / 100
	if ratePerYear < 0.012 || ratePerYear > 0.016 {
		t.Errorf("ayanamsa rate = %v deg/year, want ~0.0139", ratePerYear)
	}
}

func TestSidereal(t *testing.T) {
	tests := []struct {
		tropical float64
		ayanamsa float64
		want     float64
	}{
		{100.0, 24.0, 76.0},
		{10.0, 24.0, 346.0},
		{359.9, 23.85, 336.05},
		{0.0, 0.0, 0.0},
	}
	for _, tt := range tests {
		got := Sidereal(tt.tropical, tt.ayanamsa)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Sidereal(%v, %v) = %v, want %v", tt.tropical, tt.ayanamsa, got, tt.want)
		}
	}
}
