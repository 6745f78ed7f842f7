package ephemeris

// lunarTerm is one periodic term of the lunar longitude series: an amplitude
// in millionths of a degree applied to sin(d·D + m·M + mp·M' + f·F), where D
// is the mean elongation, M the solar mean anomaly, M' the lunar mean
// anomaly and F the argument of latitude.
type lunarTerm struct {
	d, m, mp, f int
	amp         float64 // 1e-6 degrees
}

// lunarLongitudeTerms is the truncated ELP2000-analog longitude series,
// largest terms first. Terms involving the solar anomaly are damped by the
// eccentricity factor E (E squared for twice the anomaly).
var lunarLongitudeTerms = []lunarTerm{
	{0, 0, 1, 0, 6288774},
	{2, 0, -1, 0, 1274027},
	{2, 0, 0, 0, 658314},
	{0, 0, 2, 0, 213618},
	{0, 1, 0, 0, -185116},
	{0, 0, 0, 2, -114332},
	{2, 0, -2, 0, 58793},
	{2, -1, -1, 0, 57066},
	{2, 0, 1, 0, 53322},
	{2, -1, 0, 0, 45758},
	{0, 1, -1, 0, -40923},
	{1, 0, 0, 0, -34720},
	{0, 1, 1, 0, -30383},
	{2, 0, 0, -2, 15327},
	{0, 0, 1, 2, -12528},
	{0, 0, 1, -2, 10980},
	{4, 0, -1, 0, 10675},
	{0, 0, 3, 0, 10034},
	{4, 0, -2, 0, 8548},
	{2, 1, -1, 0, -7888},
	{2, 1, 0, 0, -6766},
	{1, 0, -1, 0, -5163},
	{1, 1, 0, 0, 4987},
	{2, -1, 1, 0, 4036},
	{2, 0, 2, 0, 3994},
	{4, 0, 0, 0, 3861},
	{2, 0, -3, 0, 3665},
	{0, 1, -2, 0, -2689},
	{2, 0, -1, 2, -2602},
	{2, -1, -2, 0, 2390},
	{1, 0, 1, 0, -2348},
	{2, -2, 0, 0, 2236},
	{0, 1, 2, 0, -2120},
	{0, 2, 0, 0, -2069},
	{2, -2, -1, 0, 2048},
	{2, 0, 1, -2, -1773},
	{2, 0, 0, 2, -1595},
	{4, -1, -1, 0, 1215},
	{0, 0, 2, 2, -1110},
	{3, 0, -1, 0, -892},
	{2, 1, 1, 0, -810},
	{4, -1, -2, 0, 759},
	{0, 2, -1, 0, -713},
	{2, 2, -1, 0, -700},
	{2, 1, -2, 0, 691},
	{2, -1, 0, -2, 596},
	{4, 0, 1, 0, 549},
	{0, 0, 4, 0, 537},
}

// apparentLunarLongitude returns the Moon's apparent tropical ecliptic
// longitude in degrees, accurate to a few arc-minutes over several centuries
// around J2000.
func apparentLunarLongitude(jd float64) float64 {
	t := centuries(jd)

	// Mean arguments, degree polynomials in Julian centuries.
	meanLon := 218.3164477 + t*(481267.88123421+t*(-0.0015786+t*(1.0/538841.0-t/65194000.0)))
	elong := 297.8501921 + t*(445267.1114034+t*(-0.0018819+t*(1.0/545868.0-t/113065000.0)))
	sunAnom := 357.5291092 + t*(35999.0502909+t*(-0.0001536+t/24490000.0))
	moonAnom := 134.9633964 + t*(477198.8675055+t*(0.0087414+t*(1.0/69699.0-t/14712000.0)))
	latArg := 93.2720950 + t*(483202.0175233+t*(-0.0036539+t*(-1.0/3526000.0+t/863310000.0)))

	// Eccentricity damping for terms carrying the solar anomaly.
	ecc := 1.0 - t*(0.002516+t*0.0000074)

	sum := 0.0
	for _, term := range lunarLongitudeTerms {
		arg := float64(term.d)*elong + float64(term.m)*sunAnom +
			float64(term.mp)*moonAnom + float64(term.f)*latArg
		amp := term.amp
		switch term.m {
		case 1, -1:
			amp *= ecc
		case 2, -2:
			amp *= ecc * ecc
		}
		sum += amp * sinDeg(arg)
	}

	// Planetary perturbations and the flattening term.
	a1 := 119.75 + 131.849*t
	a2 := 53.09 + 479264.290*t
	sum += 3958*sinDeg(a1) + 1962*sinDeg(meanLon-latArg) + 318*sinDeg(a2)

	lon := meanLon + sum/1e6 + nutationLongitude(jd)
	return Normalize(lon)
}
