package ephemeris

// jd1900 is Julian Day of epoch 1900 January 0.5, the anchor of the Lahiri
// polynomial below.
const jd1900 = 2415020.0

// lahiriAyanamsa approximates the Lahiri (Chitrapaksha) ayanamsa in degrees:
// a linear+quadratic drift anchored at 1900.0 plus the nutation in
// longitude, so that the sidereal frame tracks the true equinox the same way
// the tropical longitudes do.
func lahiriAyanamsa(jd float64) float64 {
	t := (jd - jd1900) / DaysPerCentury
	ayan := 22.460148 + t*(1.396042+t*0.000308)
	return ayan + nutationLongitude(jd)
}
