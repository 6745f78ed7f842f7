package ephemeris

// apparentSolarLongitude returns the Sun's apparent tropical ecliptic
// longitude in degrees. Mean longitude and mean anomaly are degree
// polynomials in Julian centuries T; the equation of center supplies the
// periodic correction, then aberration and nutation reduce the true
// longitude to apparent.
func apparentSolarLongitude(jd float64) float64 {
	t := centuries(jd)

	meanLon := 280.46646 + t*(36000.76983+t*0.0003032)
	meanAnom := 357.52911 + t*(35999.05029-t*0.0001537)

	center := (1.914602-t*(0.004817+t*0.000014))*sinDeg(meanAnom) +
		(0.019993-t*0.000101)*sinDeg(2*meanAnom) +
		0.000289*sinDeg(3*meanAnom)

	trueLon := meanLon + center

	// Aberration, plus nutation in longitude folded into the node term.
	node := 125.04 - 1934.136*t
	apparent := trueLon - 0.00569 - 0.00478*sinDeg(node)

	return Normalize(apparent)
}
