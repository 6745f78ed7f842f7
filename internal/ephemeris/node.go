package ephemeris

// meanLunarNode returns the tropical longitude of the Moon's mean ascending
// node (Rahu) in degrees. The node regresses through the zodiac in about
// 18.6 years; the mean node is the conventional choice for Vedic charts.
func meanLunarNode(jd float64) float64 {
	t := centuries(jd)
	lon := 125.0445479 + t*(-1934.1362891+t*(0.0020754+t*(1.0/467441.0-t/60616000.0)))
	return Normalize(lon)
}
