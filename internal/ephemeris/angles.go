package ephemeris

import "math"

const (
	// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00 UT).
	J2000 = 2451545.0
	// DaysPerCentury converts Julian Days to Julian centuries.
	DaysPerCentury = 36525.0

	degToRad = math.Pi / 180.0
)

// Normalize wraps an angle in degrees into [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// centuries returns Julian centuries since J2000.0 for the given Julian Day.
func centuries(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

func sinDeg(deg float64) float64 { return math.Sin(deg * degToRad) }

func cosDeg(deg float64) float64 { return math.Cos(deg * degToRad) }

func tanDeg(deg float64) float64 { return math.Tan(deg * degToRad) }

// atan2Deg returns atan2(y, x) in degrees, normalized to [0, 360).
func atan2Deg(y, x float64) float64 {
	return Normalize(math.Atan2(y, x) / degToRad)
}

// signedDelta returns the smallest signed difference a-b of two angles in
// degrees, in (-180, 180]. Used for wrap-aware finite differences.
func signedDelta(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d > 180 {
		d -= 360
	}
	if d <= -180 {
		d += 360
	}
	return d
}
