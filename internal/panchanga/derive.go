// Package panchanga maps sidereal longitudes onto the categorical scales of
// the Vedic almanac: zodiac sign, nakshatra with pada, tithi, yoga, and
// equal-house placement.
//
// Every function is total over all real inputs: longitudes are defensively
// normalized into [0, 360) before classification, so slight drift from
// upstream longitude arithmetic can never push an index out of table range.
package panchanga

import (
	"math"

	"github.com/kushalp/jyotish/internal/models"
)

const (
	// NakshatraSpan is the angular width of one lunar mansion: 13 degrees 20'.
	NakshatraSpan = 360.0 / 27.0
	// PadaSpan is one quarter of a nakshatra: 3 degrees 20'.
	PadaSpan = NakshatraSpan / 4.0
	// TithiSpan is the Sun-Moon separation covered by one lunar day.
	TithiSpan = 12.0
	// YogaSpan is the Sun+Moon sum covered by one yoga.
	YogaSpan = 360.0 / 27.0
)

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SignOf returns the zodiac placement for a sidereal longitude.
func SignOf(lon float64) models.ZodiacPlacement {
	lon = normalize(lon)
	idx := int(lon / 30.0)
	if idx > 11 {
		idx = 11 // guards lon == 360 after float rounding
	}
	return models.ZodiacPlacement{
		Sign:         SignNames[idx],
		SignIndex:    idx + 1,
		DegreeInSign: lon - float64(idx)*30.0,
	}
}

// NakshatraOf returns the lunar-mansion placement for a sidereal longitude.
func NakshatraOf(lon float64) models.NakshatraPlacement {
	lon = normalize(lon)
	idx := int(lon / NakshatraSpan)
	if idx > 26 {
		idx = 26
	}
	within := lon - float64(idx)*NakshatraSpan
	pada := int(within/PadaSpan) + 1
	if pada > 4 {
		pada = 4
	}
	return models.NakshatraPlacement{
		Name:   NakshatraNames[idx],
		Number: idx + 1,
		Pada:   pada,
		Degree: within,
	}
}

// TithiOf returns the lunar day from the Sun and Moon sidereal longitudes.
func TithiOf(sunLon, moonLon float64) models.Tithi {
	diff := normalize(moonLon - sunLon)
	number := int(diff/TithiSpan) + 1
	if number > 30 {
		number = 30
	}
	paksha := PakshaShukla
	if number > 15 {
		paksha = PakshaKrishna
	}
	return models.Tithi{Number: number, Paksha: paksha}
}

// YogaOf returns the yoga from the Sun and Moon sidereal longitudes.
func YogaOf(sunLon, moonLon float64) models.Yoga {
	sum := normalize(sunLon + moonLon)
	number := int(sum/YogaSpan) + 1
	if number > 27 {
		number = 27
	}
	return models.Yoga{Number: number, Name: YogaNames[number-1]}
}

// HouseOf returns the equal-house number (1-12) of a body relative to the
// ascendant: house 1 spans the 30 degrees starting at the ascendant degree.
func HouseOf(bodyLon, ascLon float64) int {
	diff := normalize(bodyLon - ascLon)
	house := int(diff/30.0) + 1
	if house > 12 {
		house = 12
	}
	return house
}
