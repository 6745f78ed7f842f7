// Package models defines the core domain entities for the jyotish engine.
// These models represent instants in time, sidereal placements, natal charts,
// Saturn transit states, Vimshottari period timelines, and compatibility results.
// All models include built-in validation to ensure data integrity throughout
// the application.
//
// Terminology (matching classical Vedic usage):
//   - Graha: one of the nine bodies of the Vedic chart (Sun through Saturn plus
//     the lunar nodes Rahu and Ketu).
//   - Lagna: the ascendant, the ecliptic degree rising on the eastern horizon.
package models

// Body identifies one of the nine grahas of the Vedic chart, or the ascendant.
type Body string

const (
	Sun     Body = "Sun"
	Moon    Body = "Moon"
	Mars    Body = "Mars"
	Mercury Body = "Mercury"
	Jupiter Body = "Jupiter"
	Venus   Body = "Venus"
	Saturn  Body = "Saturn"
	Rahu    Body = "Rahu"
	Ketu    Body = "Ketu"
	Lagna   Body = "Lagna"
)

// ChartBodies lists the nine grahas placed in a natal chart, in the
// conventional ordering. The ascendant (Lagna) is carried separately.
func ChartBodies() []Body {
	return []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}
}

// IsChartBody reports whether b is one of the nine chart grahas.
func (b Body) IsChartBody() bool {
	switch b {
	case Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu:
		return true
	}
	return false
}
