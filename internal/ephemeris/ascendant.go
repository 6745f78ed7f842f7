package ephemeris

import (
	"errors"
	"fmt"
)

// maxAscendantLatitude bounds the geographic latitude for the horizon
// formula. Beyond the polar circles the ecliptic can fail to cross the
// horizon and the tangent term degenerates.
const maxAscendantLatitude = 66.5

// Ascendant returns the tropical ecliptic longitude of the eastern horizon
// (the first-house cusp) in degrees for the given instant and location.
// Longitude is positive east. The caller converts to sidereal with the same
// ayanamsa applied to the planets.
func Ascendant(jd, latitude, longitude float64) (float64, error) {
	if latitude < -90 || latitude > 90 {
		return 0, errors.New("latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return 0, errors.New("longitude must be between -180 and 180")
	}
	if latitude < -maxAscendantLatitude || latitude > maxAscendantLatitude {
		return 0, fmt.Errorf("latitude %.4f is beyond the polar circle: ascendant is undefined", latitude)
	}

	ramc := localSiderealDegrees(jd, longitude)
	obliq := trueObliquity(jd)

	asc := atan2Deg(cosDeg(ramc), -(sinDeg(ramc)*cosDeg(obliq) + tanDeg(latitude)*sinDeg(obliq)))
	return asc, nil
}

// localSiderealDegrees returns the local apparent sidereal time expressed in
// degrees (the right ascension of the local meridian).
func localSiderealDegrees(jd, longitude float64) float64 {
	t := centuries(jd)
	gmst := 280.46061837 + 360.98564736629*(jd-J2000) +
		t*t*(0.000387933-t/38710000.0)
	// Apparent sidereal time: add the equation of the equinoxes.
	gast := gmst + nutationLongitude(jd)*cosDeg(trueObliquity(jd))
	return Normalize(gast + longitude)
}
