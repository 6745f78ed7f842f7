package ephemeris

// nutationLongitude returns the nutation in longitude in degrees, from the
// four largest terms of the IAU 1980 series. Accurate to about 0.5
// arc-seconds, which is ample for classification work.
func nutationLongitude(jd float64) float64 {
	t := centuries(jd)

	node := 125.04452 - 1934.136261*t
	sunMean := 280.4665 + 36000.7698*t
	moonMean := 218.3165 + 481267.8813*t

	arcsec := -17.20*sinDeg(node) -
		1.32*sinDeg(2*sunMean) -
		0.23*sinDeg(2*moonMean) +
		0.21*sinDeg(2*node)
	return arcsec / 3600.0
}

// meanObliquity returns the mean obliquity of the ecliptic in degrees.
func meanObliquity(jd float64) float64 {
	t := centuries(jd)
	return 23.43929111 - t*(0.0130042+t*(0.00000016-t*0.000000504))
}

// trueObliquity is the mean obliquity corrected for nutation in obliquity.
func trueObliquity(jd float64) float64 {
	t := centuries(jd)

	node := 125.04452 - 1934.136261*t
	sunMean := 280.4665 + 36000.7698*t
	moonMean := 218.3165 + 481267.8813*t

	arcsec := 9.20*cosDeg(node) +
		0.57*cosDeg(2*sunMean) +
		0.10*cosDeg(2*moonMean) -
		0.09*cosDeg(2*node)
	return meanObliquity(jd) + arcsec/3600.0
}
