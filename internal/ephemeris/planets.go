package ephemeris

import (
	"math"

	"github.com/kushalp/jyotish/internal/models"
)

// orbit holds J2000 mean Keplerian elements and their per-century rates,
// referred to the mean ecliptic and equinox of J2000: semi-major axis (au),
// eccentricity, inclination, mean longitude, longitude of perihelion and
// longitude of the ascending node (degrees).
type orbit struct {
	a, aDot       float64
	e, eDot       float64
	i, iDot       float64
	l, lDot       float64
	peri, periDot float64
	node, nodeDot float64
}

var planetOrbits = map[models.Body]orbit{
	models.Mercury: {
		0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749,
		252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081,
	},
	models.Venus: {
		0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890,
		181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418,
	},
	models.Mars: {
		1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131,
		-4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343,
	},
	models.Jupiter: {
		5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714,
		34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106,
	},
	models.Saturn: {
		9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609,
		49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794,
	},
}

// earthOrbit is the Earth-Moon barycentre, used as the observer position.
var earthOrbit = orbit{
	1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668,
	100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0.0, 0.0,
}

// planetGeocentricLongitude returns the geocentric ecliptic longitude of a
// planet in degrees, from heliocentric positions of the planet and the
// Earth-Moon barycentre. Accuracy is at the arc-minute level, sufficient for
// sign and nakshatra classification.
func planetGeocentricLongitude(body models.Body, jd float64) float64 {
	t := centuries(jd)
	px, py := heliocentricEcliptic(planetOrbits[body], t)
	ex, ey := heliocentricEcliptic(earthOrbit, t)
	return atan2Deg(py-ey, px-ex)
}

// heliocentricEcliptic returns the rectangular heliocentric coordinates of a
// body in the J2000 ecliptic plane, in au. The small z component is dropped:
// only the ecliptic longitude is consumed downstream.
func heliocentricEcliptic(o orbit, t float64) (x, y float64) {
	a := o.a + o.aDot*t
	e := o.e + o.eDot*t
	incl := o.i + o.iDot*t
	meanLon := o.l + o.lDot*t
	periLon := o.peri + o.periDot*t
	nodeLon := o.node + o.nodeDot*t

	argPeri := periLon - nodeLon
	meanAnom := Normalize(meanLon - periLon)

	eccAnom := solveKepler(meanAnom, e)

	// Position in the orbital plane, perihelion along +x.
	xo := a * (cosDeg(eccAnom) - e)
	yo := a * math.Sqrt(1-e*e) * sinDeg(eccAnom)

	cw, sw := cosDeg(argPeri), sinDeg(argPeri)
	cn, sn := cosDeg(nodeLon), sinDeg(nodeLon)
	ci := cosDeg(incl)

	x = (cw*cn-sw*sn*ci)*xo + (-sw*cn-cw*sn*ci)*yo
	y = (cw*sn+sw*cn*ci)*xo + (-sw*sn+cw*cn*ci)*yo
	return x, y
}

// solveKepler solves Kepler's equation E - e·sin(E) = M by Newton iteration,
// with M and the returned eccentric anomaly in degrees.
func solveKepler(meanAnomDeg, e float64) float64 {
	m := meanAnomDeg * degToRad
	ecc := m
	if e > 0.8 {
		ecc = math.Pi
	}
	for iter := 0; iter < 30; iter++ {
		delta := (ecc - e*math.Sin(ecc) - m) / (1 - e*math.Cos(ecc))
		ecc -= delta
		if math.Abs(delta) < 1e-12 {
			break
		}
	}
	return ecc / degToRad
}
