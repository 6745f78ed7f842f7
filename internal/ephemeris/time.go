package ephemeris

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kushalp/jyotish/internal/models"
)

// DefaultUTCOffset is the offset assumed when the caller supplies none
// (Indian Standard Time).
const DefaultUTCOffset = 5.5

// ResolveInstant parses a civil date and time string, applies the UTC offset,
// and returns the instant with its Julian Day filled in.
//
// The date must be YYYY-MM-DD. The time may be 24-hour ("19:20", "7:20") or
// 12-hour with an AM/PM marker, case-insensitive, with or without a space
// before the marker ("7:20 PM", "07:20pm"). Malformed or out-of-range input
// is rejected with a descriptive error; nothing is silently clamped.
func ResolveInstant(dateStr, timeStr string, utcOffsetHours float64) (models.Instant, error) {
	year, month, day, err := parseDate(dateStr)
	if err != nil {
		return models.Instant{}, err
	}
	hour, minute, err := ParseTimeOfDay(timeStr)
	if err != nil {
		return models.Instant{}, err
	}
	instant := models.Instant{
		Year:      year,
		Month:     month,
		Day:       day,
		Hour:      hour,
		Minute:    minute,
		UTCOffset: utcOffsetHours,
	}
	ut := float64(hour) + float64(minute)/60.0 - utcOffsetHours
	instant.JulianDay = JulianDay(year, month, day, ut)
	if err := instant.Validate(); err != nil {
		return models.Instant{}, fmt.Errorf("invalid instant: %w", err)
	}
	return instant, nil
}

func parseDate(dateStr string) (year, month, day int, err error) {
	parts := strings.Split(strings.TrimSpace(dateStr), "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateStr)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date %q: year is not a number", dateStr)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date %q: month is not a number", dateStr)
	}
	day, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date %q: day is not a number", dateStr)
	}
	if month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("invalid date %q: month out of range", dateStr)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return 0, 0, 0, fmt.Errorf("invalid date %q: day out of range", dateStr)
	}
	return year, month, day, nil
}

func daysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// ParseTimeOfDay normalizes a flexible 12h/24h time string into an hour and
// minute in 24-hour convention. "12:00 AM" maps to 00:00 and "12:00 PM"
// stays 12:00.
func ParseTimeOfDay(timeStr string) (hour, minute int, err error) {
	s := strings.ToUpper(strings.ReplaceAll(timeStr, " ", ""))
	if s == "" {
		return 0, 0, fmt.Errorf("invalid time %q: empty", timeStr)
	}

	marker := ""
	if strings.HasSuffix(s, "AM") || strings.HasSuffix(s, "PM") {
		marker = s[len(s)-2:]
		s = s[:len(s)-2]
	}

	parts := strings.Split(s, ":")
	if len(parts) < 1 || len(parts) > 3 || parts[0] == "" {
		return 0, 0, fmt.Errorf("invalid time %q", timeStr)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: hour is not a number", timeStr)
	}
	if len(parts) > 1 {
		minute, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid time %q: minute is not a number", timeStr)
		}
	}

	if marker != "" {
		if hour < 1 || hour > 12 {
			return 0, 0, fmt.Errorf("invalid time %q: 12-hour value must be between 1 and 12", timeStr)
		}
		if marker == "AM" && hour == 12 {
			hour = 0
		} else if marker == "PM" && hour != 12 {
			hour += 12
		}
	}

	if hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid time %q: hour out of range", timeStr)
	}
	if minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time %q: minute out of range", timeStr)
	}
	return hour, minute, nil
}

// JulianDay converts a Gregorian calendar date plus UT hours into a Julian
// Day number. utHours may be negative or exceed 24 after offset subtraction;
// the day count absorbs the spill.
func JulianDay(year, month, day int, utHours float64) float64 {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	return float64(jdn) + (utHours-12.0)/24.0
}

// CivilFromJulianDay converts a Julian Day back into a Gregorian calendar
// date and UT time of day. It is the inverse of JulianDay over the Gregorian
// era.
func CivilFromJulianDay(jd float64) (year, month, day int, utHours float64) {
	z := math.Floor(jd + 0.5)
	f := jd + 0.5 - z

	alpha := math.Floor((z - 1867216.25) / 36524.25)
	a := z + 1 + alpha - math.Floor(alpha/4)
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day = int(b - d - math.Floor(30.6001*e))
	if e < 14 {
		month = int(e - 1)
	} else {
		month = int(e - 13)
	}
	if month > 2 {
		year = int(c - 4716)
	} else {
		year = int(c - 4715)
	}
	utHours = f * 24.0
	return year, month, day, utHours
}
