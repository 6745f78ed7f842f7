package models

import (
	"errors"
	"fmt"
)

// MaxGunaScore is the Ashtakoot total across all eight factors.
const MaxGunaScore = 36

// FactorScore is one of the eight Ashtakoot factor results. Basis records
// which underlying attributes of the two charts were compared, for display.
type FactorScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Max   int    `json:"max"`
	Basis string `json:"basis"`
}

// CompatibilityResult is the full Ashtakoot Guna Milan outcome for a pair of
// natal charts. It is a pure function of the two charts' derived attributes;
// chart A is the first/groom position, chart B the second/bride position for
// the two order-sensitive factors (Varna, Tara).
type CompatibilityResult struct {
	Factors    []FactorScore `json:"factors"`
	Total      int           `json:"total"`
	Percentage float64       `json:"percentage"`
	Tier       string        `json:"tier"`
}

// Validate checks factor count, per-factor caps, and aggregate consistency.
func (r *CompatibilityResult) Validate() error {
	if len(r.Factors) != 8 {
		return fmt.Errorf("expected 8 factors, got %d", len(r.Factors))
	}
	sum := 0
	maxSum := 0
	for _, f := range r.Factors {
		if f.Name == "" {
			return errors.New("factor name must not be empty")
		}
		if f.Max < 1 || f.Max > 8 {
			return errors.New("factor max must be between 1 and 8")
		}
		if f.Score < 0 || f.Score > f.Max {
			return fmt.Errorf("factor %s score %d exceeds its cap %d", f.Name, f.Score, f.Max)
		}
		sum += f.Score
		maxSum += f.Max
	}
	if maxSum != MaxGunaScore {
		return fmt.Errorf("factor caps must sum to %d, got %d", MaxGunaScore, maxSum)
	}
	if r.Total != sum {
		return errors.New("total must equal the sum of factor scores")
	}
	if r.Percentage < 0 || r.Percentage > 100 {
		return errors.New("percentage must be between 0 and 100")
	}
	if r.Tier == "" {
		return errors.New("tier must not be empty")
	}
	return nil
}
