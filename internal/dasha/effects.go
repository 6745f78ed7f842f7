package dasha

import "github.com/kushalp/jyotish/internal/models"

// lordTraits is the fixed per-planet trait table. Content, not algorithm:
// the assembly rules in Effects are what matter behaviorally.
type lordTraits struct {
	Positives     []string
	Challenges    []string
	Career        []string
	Health        []string
	Relationships []string
}

var traits = map[models.Body]lordTraits{
	models.Ketu: {
		Positives:     []string{"Spiritual insight", "Detachment from material worry", "Intuitive breakthroughs"},
		Challenges:    []string{"Confusion about direction", "Sudden separations", "Restlessness"},
		Career:        []string{"Research", "Occult sciences", "Healing professions"},
		Health:        []string{"Nervous system", "Mysterious ailments"},
		Relationships: []string{"Karmic ties resurface", "Need for solitude"},
	},
	models.Venus: {
		Positives:     []string{"Comfort and luxury", "Artistic flowering", "Harmonious alliances"},
		Challenges:    []string{"Overindulgence", "Relationship entanglements", "Vanity"},
		Career:        []string{"Arts and entertainment", "Luxury trade", "Diplomacy"},
		Health:        []string{"Kidneys", "Reproductive system"},
		Relationships: []string{"Romance flourishes", "Marriage prospects strengthen"},
	},
	models.Sun: {
		Positives:     []string{"Authority and recognition", "Vitality", "Clarity of purpose"},
		Challenges:    []string{"Ego conflicts", "Friction with superiors", "Arrogance"},
		Career:        []string{"Government service", "Leadership roles", "Administration"},
		Health:        []string{"Heart", "Eyes", "Bones"},
		Relationships: []string{"Father figures prominent", "Pride strains bonds"},
	},
	models.Moon: {
		Positives:     []string{"Emotional fulfillment", "Public favor", "Fertile imagination"},
		Challenges:    []string{"Mood swings", "Over-sensitivity", "Dependency"},
		Career:        []string{"Public dealing", "Hospitality", "Nurturing professions"},
		Health:        []string{"Digestion", "Mind and sleep"},
		Relationships: []string{"Mother figures prominent", "Domestic happiness"},
	},
	models.Mars: {
		Positives:     []string{"Courage and drive", "Decisive victories", "Physical strength"},
		Challenges:    []string{"Conflicts and accidents", "Impatience", "Litigation"},
		Career:        []string{"Engineering", "Defense and police", "Surgery", "Real estate"},
		Health:        []string{"Blood", "Muscles", "Injuries"},
		Relationships: []string{"Passion runs high", "Quarrels need tempering"},
	},
	models.Rahu: {
		Positives:     []string{"Worldly ambition rewarded", "Foreign opportunities", "Unconventional success"},
		Challenges:    []string{"Illusion and deception", "Obsessive desires", "Scandal risk"},
		Career:        []string{"Foreign trade", "Technology", "Speculation", "Politics"},
		Health:        []string{"Toxicity", "Anxiety", "Skin"},
		Relationships: []string{"Unconventional alliances", "Misunderstandings from ambiguity"},
	},
	models.Jupiter: {
		Positives:     []string{"Wisdom and expansion", "Wealth accumulation", "Divine grace"},
		Challenges:    []string{"Over-optimism", "Weight gain", "Dogmatism"},
		Career:        []string{"Teaching", "Law", "Finance", "Counseling"},
		Health:        []string{"Liver", "Fat metabolism"},
		Relationships: []string{"Blessings through mentors", "Children bring joy"},
	},
	models.Saturn: {
		Positives:     []string{"Discipline pays off", "Durable achievements", "Mature judgment"},
		Challenges:    []string{"Delays and obstacles", "Loneliness", "Chronic strain"},
		Career:        []string{"Industry and labor", "Mining", "Agriculture", "Long-term institutions"},
		Health:        []string{"Joints", "Teeth", "Chronic conditions"},
		Relationships: []string{"Duty before pleasure", "Elders demand attention"},
	},
	models.Mercury: {
		Positives:     []string{"Sharp intellect", "Commercial gains", "Persuasive communication"},
		Challenges:    []string{"Nervous overthinking", "Scattered efforts", "Trickery"},
		Career:        []string{"Commerce", "Writing and media", "Accounting", "Analytics"},
		Health:        []string{"Nerves", "Speech", "Respiration"},
		Relationships: []string{"Friendship as foundation", "Wit keeps bonds fresh"},
	},
}

// benefics and malefics classify lords for the intensity verdict.
var benefics = map[models.Body]bool{
	models.Jupiter: true, models.Venus: true, models.Moon: true, models.Mercury: true,
}

// Intensity verdicts for a (major, sub) lord pairing.
const (
	IntensityFavorable   = "Highly Favorable"
	IntensityChallenging = "Challenging"
	IntensityMixed       = "Mixed"
)

// PeriodEffects is the combined reading for a (major lord, sub lord) pair.
type PeriodEffects struct {
	Positives     []string `json:"positives"`
	Challenges    []string `json:"challenges"`
	Career        []string `json:"career"`
	Health        []string `json:"health"`
	Relationships []string `json:"relationships"`
	Intensity     string   `json:"intensity"`
}

// Effects derives the combined-period reading: the first two entries of each
// trait list from each lord, with the domain lists unioned, and an intensity
// verdict from the benefic/malefic classification of the two lords.
func Effects(major, sub models.Body) PeriodEffects {
	mt, st := traits[major], traits[sub]

	out := PeriodEffects{
		Positives:     mergeLeading(mt.Positives, st.Positives),
		Challenges:    mergeLeading(mt.Challenges, st.Challenges),
		Career:        mergeLeading(mt.Career, st.Career),
		Health:        mergeLeading(mt.Health, st.Health),
		Relationships: mergeLeading(mt.Relationships, st.Relationships),
	}

	switch {
	case benefics[major] && benefics[sub]:
		out.Intensity = IntensityFavorable
	case !benefics[major] && !benefics[sub]:
		out.Intensity = IntensityChallenging
	default:
		out.Intensity = IntensityMixed
	}
	return out
}

// mergeLeading unions the first two entries of each list, preserving order
// and dropping duplicates.
func mergeLeading(a, b []string) []string {
	out := make([]string, 0, 4)
	seen := make(map[string]bool, 4)
	for _, list := range [][]string{a, b} {
		n := len(list)
		if n > 2 {
			n = 2
		}
		for _, entry := range list[:n] {
			if !seen[entry] {
				seen[entry] = true
				out = append(out, entry)
			}
		}
	}
	return out
}
