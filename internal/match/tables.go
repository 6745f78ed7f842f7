package match

import "github.com/kushalp/jyotish/internal/models"

// Fixed Ashtakoot lookup tables. All are content loaded once at process
// start; the scoring rules in ashtakoot.go are the algorithmic part.

// Varna castes by Moon sign (index 0 = Aries), and their ordinal rank.
// Higher rank is "higher" caste.
var varnaOfSign = [12]string{
	"Kshatriya", "Vaishya", "Shudra", "Brahmin", "Kshatriya", "Vaishya",
	"Shudra", "Brahmin", "Kshatriya", "Vaishya", "Shudra", "Brahmin",
}

var varnaRank = map[string]int{
	"Brahmin": 4, "Kshatriya": 3, "Vaishya": 2, "Shudra": 1,
}

// Vashya temperament categories by Moon sign.
const (
	vashyaQuadruped = "Chatushpada"
	vashyaHuman     = "Manava"
	vashyaWater     = "Jalachara"
	vashyaWild      = "Vanachara"
	vashyaInsect    = "Keeta"
)

var vashyaOfSign = [12]string{
	vashyaQuadruped, // Aries
	vashyaQuadruped, // Taurus
	vashyaHuman,     // Gemini
	vashyaWater,     // Cancer
	vashyaWild,      // Leo
	vashyaHuman,     // Virgo
	vashyaHuman,     // Libra
	vashyaInsect,    // Scorpio
	vashyaQuadruped, // Sagittarius
	vashyaWater,     // Capricorn
	vashyaHuman,     // Aquarius
	vashyaWater,     // Pisces
}

// vashyaCompatible lists, per category, the partner categories that earn
// partial credit. The lists are asymmetric: a human partner controls a
// quadruped, not the reverse.
var vashyaCompatible = map[string][]string{
	vashyaQuadruped: {vashyaWild},
	vashyaHuman:     {vashyaQuadruped, vashyaWater},
	vashyaWater:     {vashyaHuman},
	vashyaWild:      {},
	vashyaInsect:    {vashyaQuadruped},
}

// taraAuspicious is the fixed set of 13 auspicious forward counts out of the
// 27 possible nakshatra-to-nakshatra distances.
var taraAuspicious = map[int]bool{
	2: true, 4: true, 6: true, 8: true, 9: true,
	11: true, 13: true, 15: true, 17: true, 18: true,
	20: true, 22: true, 24: true,
}

// Yoni animal symbols by nakshatra (index 0 = Ashwini).
var yoniOfNakshatra = [27]string{
	"Horse", "Elephant", "Sheep", "Serpent", "Serpent", "Dog",
	"Cat", "Sheep", "Cat", "Rat", "Rat", "Cow",
	"Buffalo", "Tiger", "Buffalo", "Tiger", "Deer", "Deer",
	"Dog", "Monkey", "Mongoose", "Monkey", "Lion", "Horse",
	"Lion", "Cow", "Elephant",
}

// yoniEnemies pairs the seven mutually hostile animals.
var yoniEnemies = map[string]string{
	"Horse": "Buffalo", "Buffalo": "Horse",
	"Elephant": "Lion", "Lion": "Elephant",
	"Sheep": "Monkey", "Monkey": "Sheep",
	"Serpent": "Mongoose", "Mongoose": "Serpent",
	"Dog": "Deer", "Deer": "Dog",
	"Cat": "Rat", "Rat": "Cat",
	"Cow": "Tiger", "Tiger": "Cow",
}

// yoniFriends lists friendly animal pairings (symmetric).
var yoniFriends = map[string][]string{
	"Horse":    {"Serpent", "Sheep"},
	"Elephant": {"Sheep", "Monkey"},
	"Sheep":    {"Horse", "Elephant", "Cow"},
	"Serpent":  {"Horse", "Cow"},
	"Dog":      {"Horse", "Monkey"},
	"Cat":      {"Cow", "Buffalo"},
	"Rat":      {"Buffalo", "Deer"},
	"Cow":      {"Sheep", "Serpent", "Cat"},
	"Buffalo":  {"Cat", "Rat", "Lion"},
	"Tiger":    {"Deer", "Lion"},
	"Deer":     {"Rat", "Tiger"},
	"Monkey":   {"Elephant", "Dog"},
	"Mongoose": {"Cow"},
	"Lion":     {"Buffalo", "Tiger"},
}

// yoniNeutral lists neutral animal pairings (symmetric, one direction per
// pair). Pairs in none of the three relationship tables score 1.
var yoniNeutral = map[string][]string{
	"Horse":    {"Elephant", "Cat", "Rat", "Mongoose", "Deer", "Monkey"},
	"Elephant": {"Serpent", "Dog", "Cat", "Rat", "Cow", "Buffalo", "Mongoose", "Deer"},
	"Sheep":    {"Serpent", "Cat", "Buffalo", "Mongoose", "Deer"},
	"Serpent":  {"Dog", "Monkey", "Deer", "Lion", "Tiger"},
	"Dog":      {"Cat", "Cow", "Buffalo"},
	"Cat":      {"Deer", "Monkey", "Mongoose"},
	"Rat":      {"Cow", "Tiger", "Monkey", "Lion"},
	"Cow":      {"Monkey"},
	"Buffalo":  {"Deer", "Monkey", "Mongoose"},
	"Tiger":    {"Mongoose"},
	"Deer":     {"Mongoose", "Lion", "Monkey"},
	"Monkey":   {"Mongoose", "Lion"},
	"Mongoose": {"Lion"},
}

// signLord maps each sign (index 0 = Aries) to its ruling planet.
var signLord = [12]models.Body{
	models.Mars, models.Venus, models.Mercury, models.Moon,
	models.Sun, models.Mercury, models.Venus, models.Mars,
	models.Jupiter, models.Saturn, models.Saturn, models.Jupiter,
}

// planetFriends and planetEnemies encode the classical seven-planet
// friendship scheme used for Graha Maitri.
var planetFriends = map[models.Body][]models.Body{
	models.Sun:     {models.Moon, models.Mars, models.Jupiter},
	models.Moon:    {models.Sun, models.Mercury},
	models.Mars:    {models.Sun, models.Moon, models.Jupiter},
	models.Mercury: {models.Sun, models.Venus},
	models.Jupiter: {models.Sun, models.Moon, models.Mars},
	models.Venus:   {models.Mercury, models.Saturn},
	models.Saturn:  {models.Mercury, models.Venus},
}

var planetEnemies = map[models.Body][]models.Body{
	models.Sun:     {models.Venus, models.Saturn},
	models.Moon:    {},
	models.Mars:    {models.Mercury},
	models.Mercury: {models.Moon},
	models.Jupiter: {models.Mercury, models.Venus},
	models.Venus:   {models.Sun, models.Moon},
	models.Saturn:  {models.Sun, models.Moon, models.Mars},
}

// Gana temperament classes by Moon sign.
const (
	ganaDev      = "Dev"
	ganaManushya = "Manushya"
	ganaRakshasa = "Rakshasa"
)

var ganaOfSign = [12]string{
	ganaManushya, // Aries
	ganaDev,      // Taurus
	ganaManushya, // Gemini
	ganaDev,      // Cancer
	ganaManushya, // Leo
	ganaRakshasa, // Virgo
	ganaDev,      // Libra
	ganaRakshasa, // Scorpio
	ganaRakshasa, // Sagittarius
	ganaRakshasa, // Capricorn
	ganaManushya, // Aquarius
	ganaDev,      // Pisces
}

// bhakootScore maps the minimal sign distance (0 = same sign, 6 =
// opposition) to points. The 2/12 and 6/8 configurations are the classical
// doshas and score zero.
var bhakootScore = [7]int{7, 0, 4, 2, 4, 0, 7}

// Nadi pulse categories by nakshatra (index 0 = Ashwini). The pattern runs
// Adi-Madhya-Antya-Antya-Madhya-Adi, repeating.
var nadiOfNakshatra = [27]string{
	"Adi", "Madhya", "Antya", "Antya", "Madhya", "Adi",
	"Adi", "Madhya", "Antya", "Antya", "Madhya", "Adi",
	"Adi", "Madhya", "Antya", "Antya", "Madhya", "Adi",
	"Adi", "Madhya", "Antya", "Antya", "Madhya", "Adi",
	"Adi", "Madhya", "Antya",
}

// nadiPairScore scores differing nadi pairs, favoring the maximally distant
// Adi-Antya pairing. Identical nadis score zero (handled in the scorer).
var nadiPairScore = map[[2]string]int{
	{"Adi", "Madhya"}:   6,
	{"Madhya", "Adi"}:   6,
	{"Madhya", "Antya"}: 6,
	{"Antya", "Madhya"}: 6,
	{"Adi", "Antya"}:    8,
	{"Antya", "Adi"}:    8,
}
