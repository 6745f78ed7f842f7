package panchanga

// Fixed name tables. These are content, not algorithm: they are loaded once
// and never rebuilt per call, and could be swapped wholesale for a localized
// set without touching the derivation logic.

// SignNames are the twelve sidereal zodiac signs in order, Aries first.
var SignNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// NakshatraNames are the 27 lunar mansions in order, Ashwini first.
var NakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// YogaNames are the 27 Sun+Moon yogas in order, Vishkambha first.
var YogaNames = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana", "Atiganda",
	"Sukarma", "Dhriti", "Shula", "Ganda", "Vriddhi", "Dhruva", "Vyaghata",
	"Harshana", "Vajra", "Siddhi", "Vyatipata", "Variyana", "Parigha",
	"Shiva", "Siddha", "Sadhya", "Shubha", "Shukla", "Brahma", "Indra",
	"Vaidhriti",
}

// Paksha names for the waxing and waning halves of the lunar month.
const (
	PakshaShukla  = "Shukla"
	PakshaKrishna = "Krishna"
)
