// Package match scores the compatibility of two natal charts with the
// eight-factor Ashtakoot Guna Milan system.
//
// Each factor is an independent table-driven comparison of already-derived
// chart attributes (Moon sign, nakshatra, sign lord), capped at its
// traditional maximum (1 through 8, totalling 36). Six factors are
// symmetric in their arguments; Varna and Tara read argument order: chart A
// is the first/groom position, chart B the second/bride position.
package match

import (
	"fmt"

	"github.com/kushalp/jyotish/internal/models"
)

// Tier thresholds over the percentage score.
const (
	TierExcellent = "Excellent"
	TierVeryGood  = "Very Good"
	TierGood      = "Good"
	TierAverage   = "Average"
	TierPoor      = "Poor"
)

// Score computes the full Ashtakoot result for charts a and b.
func Score(a, b *models.NatalChart) (models.CompatibilityResult, error) {
	if err := a.Validate(); err != nil {
		return models.CompatibilityResult{}, fmt.Errorf("invalid chart A: %w", err)
	}
	if err := b.Validate(); err != nil {
		return models.CompatibilityResult{}, fmt.Errorf("invalid chart B: %w", err)
	}

	signA, signB := a.MoonSign(), b.MoonSign()
	nakA, nakB := a.MoonNakshatra(), b.MoonNakshatra()

	factors := []models.FactorScore{
		varna(signA, signB),
		vashya(signA, signB),
		tara(nakA, nakB),
		yoni(nakA, nakB),
		grahaMaitri(signA, signB),
		gana(signA, signB),
		bhakoot(signA, signB),
		nadi(nakA, nakB),
	}

	total := 0
	for _, f := range factors {
		total += f.Score
	}
	pct := float64(total) / float64(models.MaxGunaScore) * 100.0

	result := models.CompatibilityResult{
		Factors:    factors,
		Total:      total,
		Percentage: pct,
		Tier:       tierFor(pct),
	}
	if err := result.Validate(); err != nil {
		return models.CompatibilityResult{}, fmt.Errorf("inconsistent result: %w", err)
	}
	return result, nil
}

func tierFor(pct float64) string {
	switch {
	case pct >= 85:
		return TierExcellent
	case pct >= 70:
		return TierVeryGood
	case pct >= 50:
		return TierGood
	case pct >= 30:
		return TierAverage
	default:
		return TierPoor
	}
}

// varna scores 1 when A's caste rank is at least B's. Order-sensitive.
func varna(signA, signB int) models.FactorScore {
	casteA := varnaOfSign[signA-1]
	casteB := varnaOfSign[signB-1]
	score := 0
	if varnaRank[casteA] >= varnaRank[casteB] {
		score = 1
	}
	return models.FactorScore{
		Name: "Varna", Score: score, Max: 1,
		Basis: fmt.Sprintf("%s vs %s", casteA, casteB),
	}
}

// vashya scores 2 for identical temperament categories, 1 when B's category
// appears in A's compatibility list, else 0.
func vashya(signA, signB int) models.FactorScore {
	catA := vashyaOfSign[signA-1]
	catB := vashyaOfSign[signB-1]
	score := 0
	switch {
	case catA == catB:
		score = 2
	case contains(vashyaCompatible[catA], catB):
		score = 1
	}
	return models.FactorScore{
		Name: "Vashya", Score: score, Max: 2,
		Basis: fmt.Sprintf("%s vs %s", catA, catB),
	}
}

// tara counts forward around the 27-nakshatra cycle in both directions; each
// auspicious count contributes 1.5, and the floored sum is capped at 3. The
// two directional sub-counts differ under argument swap, but their sum does
// not.
func tara(nakA, nakB int) models.FactorScore {
	countAB := taraCount(nakA, nakB)
	countBA := taraCount(nakB, nakA)
	sum := 0.0
	if taraAuspicious[countAB] {
		sum += 1.5
	}
	if taraAuspicious[countBA] {
		sum += 1.5
	}
	score := int(sum)
	if score > 3 {
		score = 3
	}
	return models.FactorScore{
		Name: "Tara", Score: score, Max: 3,
		Basis: fmt.Sprintf("counts %d and %d", countAB, countBA),
	}
}

// taraCount is the inclusive forward count from nakshatra a to b (1-27).
func taraCount(a, b int) int {
	return ((b-a)%27+27)%27 + 1
}

// yoni scores the animal-symbol pairing: same animal 4, friends 3, declared
// enemies 0, neutral 2, and 1 for pairs in none of the relationship tables.
func yoni(nakA, nakB int) models.FactorScore {
	animalA := yoniOfNakshatra[nakA-1]
	animalB := yoniOfNakshatra[nakB-1]
	var score int
	switch {
	case animalA == animalB:
		score = 4
	case yoniEnemies[animalA] == animalB:
		score = 0
	case contains(yoniFriends[animalA], animalB) || contains(yoniFriends[animalB], animalA):
		score = 3
	case contains(yoniNeutral[animalA], animalB) || contains(yoniNeutral[animalB], animalA):
		score = 2
	default:
		score = 1
	}
	return models.FactorScore{
		Name: "Yoni", Score: score, Max: 4,
		Basis: fmt.Sprintf("%s vs %s", animalA, animalB),
	}
}

// grahaMaitri scores the friendship of the two Moon-sign lords: same lord 5,
// friends (either direction) 4, declared enemies 0, neutral 1.
func grahaMaitri(signA, signB int) models.FactorScore {
	lordA := signLord[signA-1]
	lordB := signLord[signB-1]
	var score int
	switch {
	case lordA == lordB:
		score = 5
	case containsBody(planetEnemies[lordA], lordB) || containsBody(planetEnemies[lordB], lordA):
		score = 0
	case containsBody(planetFriends[lordA], lordB) || containsBody(planetFriends[lordB], lordA):
		score = 4
	default:
		score = 1
	}
	return models.FactorScore{
		Name: "Graha Maitri", Score: score, Max: 5,
		Basis: fmt.Sprintf("%s vs %s", lordA, lordB),
	}
}

// gana scores temperament classes: same 6, Dev-Manushya 5, Manushya-Rakshasa
// 1, Dev-Rakshasa 0.
func gana(signA, signB int) models.FactorScore {
	ganaA := ganaOfSign[signA-1]
	ganaB := ganaOfSign[signB-1]
	var score int
	switch {
	case ganaA == ganaB:
		score = 6
	case pairEither(ganaA, ganaB, ganaDev, ganaManushya):
		score = 5
	case pairEither(ganaA, ganaB, ganaManushya, ganaRakshasa):
		score = 1
	default: // Dev with Rakshasa
		score = 0
	}
	return models.FactorScore{
		Name: "Gana", Score: score, Max: 6,
		Basis: fmt.Sprintf("%s vs %s", ganaA, ganaB),
	}
}

// bhakoot scores the minimal sign distance between the Moon signs via a
// fixed table; 2/12 and 6/8 are the dosha configurations scoring zero.
func bhakoot(signA, signB int) models.FactorScore {
	forward := ((signB-signA)%12 + 12) % 12
	dist := forward
	if dist > 6 {
		dist = 12 - dist
	}
	score := bhakootScore[dist]
	return models.FactorScore{
		Name: "Bhakoot", Score: score, Max: 7,
		Basis: fmt.Sprintf("sign distance %d", dist),
	}
}

// nadi is the one factor where sameness is worst: identical pulse categories
// score zero, differing categories score 6 or 8 favoring maximal distance.
func nadi(nakA, nakB int) models.FactorScore {
	nadiA := nadiOfNakshatra[nakA-1]
	nadiB := nadiOfNakshatra[nakB-1]
	score := 0
	if nadiA != nadiB {
		score = nadiPairScore[[2]string{nadiA, nadiB}]
	}
	return models.FactorScore{
		Name: "Nadi", Score: score, Max: 8,
		Basis: fmt.Sprintf("%s vs %s", nadiA, nadiB),
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsBody(list []models.Body, v models.Body) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func pairEither(a, b, x, y string) bool {
	return (a == x && b == y) || (a == y && b == x)
}
