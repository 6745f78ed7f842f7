package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Instant is a moment in civil time together with its Julian Day equivalent.
// The UTC offset is applied exactly once, during conversion to Julian Day;
// the civil fields always hold the local wall-clock values as given.
type Instant struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Day       int     `json:"day"`
	Hour      int     `json:"hour"`
	Minute    int     `json:"minute"`
	UTCOffset float64 `json:"utc_offset"` // hours east of UTC
	JulianDay float64 `json:"julian_day"`
}

// Validate checks that all instant fields are valid.
func (i *Instant) Validate() error {
	if i.Year < 1 || i.Year > 9999 {
		return errors.New("year must be between 1 and 9999")
	}
	if i.Month < 1 || i.Month > 12 {
		return errors.New("month must be between 1 and 12")
	}
	if i.Day < 1 || i.Day > 31 {
		return errors.New("day must be between 1 and 31")
	}
	if i.Hour < 0 || i.Hour > 23 {
		return errors.New("hour must be between 0 and 23")
	}
	if i.Minute < 0 || i.Minute > 59 {
		return errors.New("minute must be between 0 and 59")
	}
	if i.UTCOffset < -12.0 || i.UTCOffset > 14.0 {
		return errors.New("utc offset must be between -12 and +14 hours")
	}
	if i.JulianDay <= 0 {
		return errors.New("julian day must be positive")
	}
	return nil
}

// Time returns the instant as a time.Time in a fixed zone matching UTCOffset.
func (i *Instant) Time() time.Time {
	zone := time.FixedZone("", int(i.UTCOffset*3600))
	return time.Date(i.Year, time.Month(i.Month), i.Day, i.Hour, i.Minute, 0, 0, zone)
}

// ZodiacPlacement locates a sidereal longitude within the twelve signs.
type ZodiacPlacement struct {
	Sign         string  `json:"sign"`
	SignIndex    int     `json:"sign_index"`     // 1-12, Aries = 1
	DegreeInSign float64 `json:"degree_in_sign"` // [0, 30)
}

// NakshatraPlacement locates a sidereal longitude within the 27 lunar mansions.
type NakshatraPlacement struct {
	Name   string  `json:"name"`
	Number int     `json:"number"` // 1-27, Ashwini = 1
	Pada   int     `json:"pada"`   // 1-4
	Degree float64 `json:"degree"` // degrees traversed within the nakshatra, [0, 13.333...)
}

// Tithi is one of the 30 lunar-day segments of the synodic month.
type Tithi struct {
	Number int    `json:"number"` // 1-30
	Paksha string `json:"paksha"` // "Shukla" (1-15) or "Krishna" (16-30)
}

// Yoga is one of the 27 segments defined by the Sun+Moon longitude sum.
type Yoga struct {
	Number int    `json:"number"` // 1-27
	Name   string `json:"name"`
}

// PlanetPlacement is the full placement of one graha in a natal chart.
// Speed is the tropical longitude rate in degrees per day; a negative value
// means the body is retrograde.
type PlanetPlacement struct {
	Body              Body               `json:"body"`
	TropicalLongitude float64            `json:"tropical_longitude"`
	SiderealLongitude float64            `json:"sidereal_longitude"`
	Speed             float64            `json:"speed"`
	Retrograde        bool               `json:"retrograde"`
	Zodiac            ZodiacPlacement    `json:"zodiac"`
	Nakshatra         NakshatraPlacement `json:"nakshatra"`
	House             int                `json:"house"` // 1-12, equal houses from the ascendant
}

// Validate checks that all placement fields are valid.
func (p *PlanetPlacement) Validate() error {
	if !p.Body.IsChartBody() {
		return fmt.Errorf("body %q is not a chart graha", p.Body)
	}
	if p.TropicalLongitude < 0 || p.TropicalLongitude >= 360 {
		return errors.New("tropical longitude must be in [0, 360)")
	}
	if p.SiderealLongitude < 0 || p.SiderealLongitude >= 360 {
		return errors.New("sidereal longitude must be in [0, 360)")
	}
	if p.Retrograde != (p.Speed < 0) {
		return errors.New("retrograde flag must match the sign of speed")
	}
	if p.Zodiac.SignIndex < 1 || p.Zodiac.SignIndex > 12 {
		return errors.New("sign index must be between 1 and 12")
	}
	if p.Nakshatra.Number < 1 || p.Nakshatra.Number > 27 {
		return errors.New("nakshatra number must be between 1 and 27")
	}
	if p.Nakshatra.Pada < 1 || p.Nakshatra.Pada > 4 {
		return errors.New("pada must be between 1 and 4")
	}
	if p.House < 1 || p.House > 12 {
		return errors.New("house must be between 1 and 12")
	}
	return nil
}

// AscendantPlacement is the Lagna: placement-shaped but always in house 1 and
// with no speed or retrograde concept.
type AscendantPlacement struct {
	TropicalLongitude float64            `json:"tropical_longitude"`
	SiderealLongitude float64            `json:"sidereal_longitude"`
	Zodiac            ZodiacPlacement    `json:"zodiac"`
	Nakshatra         NakshatraPlacement `json:"nakshatra"`
	House             int                `json:"house"` // always 1
}

// Validate checks that all ascendant fields are valid.
func (a *AscendantPlacement) Validate() error {
	if a.TropicalLongitude < 0 || a.TropicalLongitude >= 360 {
		return errors.New("tropical longitude must be in [0, 360)")
	}
	if a.SiderealLongitude < 0 || a.SiderealLongitude >= 360 {
		return errors.New("sidereal longitude must be in [0, 360)")
	}
	if a.House != 1 {
		return errors.New("ascendant house must be 1")
	}
	return nil
}

// NatalChart is one complete computed chart. It is immutable once computed:
// every field derives deterministically from the birth inputs.
type NatalChart struct {
	ID        string                   `json:"id,omitempty"` // assigned only when archived
	Instant   Instant                  `json:"instant"`
	Latitude  float64                  `json:"latitude"`
	Longitude float64                  `json:"longitude"`
	Ascendant AscendantPlacement       `json:"ascendant"`
	Planets   map[Body]PlanetPlacement `json:"planets"`
	Tithi     Tithi                    `json:"tithi"`
	Yoga      Yoga                     `json:"yoga"`
	Transit   TransitState             `json:"transit"`
	Timeline  PeriodTimeline           `json:"timeline"`
}

// Validate checks cross-field integrity of the chart: input ranges, all nine
// grahas present and valid, and the Ketu-Rahu opposition invariant.
func (c *NatalChart) Validate() error {
	if err := c.Instant.Validate(); err != nil {
		return fmt.Errorf("invalid instant: %w", err)
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return errors.New("latitude must be between -90 and 90")
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return errors.New("longitude must be between -180 and 180")
	}
	if err := c.Ascendant.Validate(); err != nil {
		return fmt.Errorf("invalid ascendant: %w", err)
	}
	for _, body := range ChartBodies() {
		p, ok := c.Planets[body]
		if !ok {
			return fmt.Errorf("missing placement for %s", body)
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("invalid placement for %s: %w", body, err)
		}
	}
	rahu := c.Planets[Rahu].SiderealLongitude
	ketu := c.Planets[Ketu].SiderealLongitude
	want := math.Mod(rahu+180, 360)
	if math.Abs(ketu-want) > 1e-9 && math.Abs(ketu-want) < 360-1e-9 {
		return errors.New("ketu must be exactly opposite rahu")
	}
	if c.Tithi.Number < 1 || c.Tithi.Number > 30 {
		return errors.New("tithi number must be between 1 and 30")
	}
	if c.Yoga.Number < 1 || c.Yoga.Number > 27 {
		return errors.New("yoga number must be between 1 and 27")
	}
	return nil
}

// MoonSign returns the sidereal Moon sign index (1-12).
func (c *NatalChart) MoonSign() int {
	return c.Planets[Moon].Zodiac.SignIndex
}

// MoonNakshatra returns the natal Moon nakshatra number (1-27).
func (c *NatalChart) MoonNakshatra() int {
	return c.Planets[Moon].Nakshatra.Number
}
