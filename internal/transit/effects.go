package transit

import "github.com/kushalp/jyotish/internal/models"

// Effect descriptions keyed by phase and by Saturn's transiting sign. These
// tables are fixed content, separate from the phase algorithm, and could be
// swapped for localized text without touching the engine.

var phaseEffects = map[models.TransitPhase][]string{
	models.PhaseRising: {
		"Increased responsibilities and slow-building pressure in daily life",
		"Financial caution advised; avoid new large commitments",
		"Foundations laid now determine how the peak phase unfolds",
	},
	models.PhasePeak: {
		"Maximum testing period; health and emotional resilience under strain",
		"Career restructuring and karmic settlements come due",
		"Discipline and patience yield lasting gains despite delays",
	},
	models.PhaseSetting: {
		"Pressure gradually lifts; lessons of the cycle consolidate",
		"Recovery of finances and relationships begins",
		"Avoid complacency: residual obstacles persist until Saturn exits",
	},
}

var signEffects = map[int][]string{
	1:  {"Impulsive decisions carry a higher cost while Saturn transits Aries"},
	2:  {"Material security themes dominate; steady accumulation is favored"},
	3:  {"Communication and contracts need extra diligence"},
	4:  {"Home and family matters demand structural attention"},
	5:  {"Creative ventures face delays but gain durability"},
	6:  {"Health routines and service obligations intensify"},
	7:  {"Partnerships are tested and formalized"},
	8:  {"Deep transformation; shared resources need careful handling"},
	9:  {"Long-term plans and beliefs are restructured"},
	10: {"Career climbs slowly under heavy scrutiny"},
	11: {"Gains arrive late but prove reliable; networks consolidate"},
	12: {"Retreat, expenditure and release; rest is productive"},
}

// Effects returns the fixed effect descriptions for a (Saturn sign, phase)
// pair. An inactive phase has no effects.
func Effects(saturnSign int, phase models.TransitPhase) []string {
	if phase == models.PhaseNone {
		return nil
	}
	out := make([]string, 0, 4)
	out = append(out, phaseEffects[phase]...)
	out = append(out, signEffects[saturnSign]...)
	return out
}
