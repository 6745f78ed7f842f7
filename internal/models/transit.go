package models

import (
	"errors"
	"fmt"
)

// TransitPhase names the stage of a Sade-Sati cycle relative to the natal Moon.
type TransitPhase string

const (
	// PhaseNone means Saturn is not in the Moon-adjacent sign band.
	PhaseNone TransitPhase = "none"
	// PhaseRising is Saturn one sign behind the natal Moon sign.
	PhaseRising TransitPhase = "rising"
	// PhasePeak is Saturn in the natal Moon sign itself.
	PhasePeak TransitPhase = "peak"
	// PhaseSetting is Saturn one sign past the natal Moon sign.
	PhaseSetting TransitPhase = "setting"
)

// PhaseBoundary marks the instant Saturn enters a given sidereal sign.
type PhaseBoundary struct {
	JulianDay float64 `json:"julian_day"`
	Sign      int     `json:"sign"` // sidereal sign entered, 1-12
}

// TransitState is a Sade-Sati reading for one (natal Moon sign, reference
// instant) pair. It is recomputed fresh for every query, never persisted.
type TransitState struct {
	NatalMoonSign int             `json:"natal_moon_sign"` // 1-12
	SaturnSign    int             `json:"saturn_sign"`     // current transiting sidereal sign, 1-12
	SaturnDegree  float64         `json:"saturn_degree"`   // degree within the sign, [0, 30)
	Phase         TransitPhase    `json:"phase"`
	Intensity     float64         `json:"intensity"` // 0-100
	Boundaries    []PhaseBoundary `json:"boundaries,omitempty"`
	Effects       []string        `json:"effects,omitempty"`
}

// Validate checks that all transit state fields are valid.
func (t *TransitState) Validate() error {
	if t.NatalMoonSign < 1 || t.NatalMoonSign > 12 {
		return errors.New("natal moon sign must be between 1 and 12")
	}
	if t.SaturnSign < 1 || t.SaturnSign > 12 {
		return errors.New("saturn sign must be between 1 and 12")
	}
	if t.SaturnDegree < 0 || t.SaturnDegree >= 30 {
		return errors.New("saturn degree must be in [0, 30)")
	}
	switch t.Phase {
	case PhaseNone, PhaseRising, PhasePeak, PhaseSetting:
	default:
		return fmt.Errorf("unknown transit phase %q", t.Phase)
	}
	if t.Intensity < 0 || t.Intensity > 100 {
		return errors.New("intensity must be between 0 and 100")
	}
	for _, b := range t.Boundaries {
		if b.Sign < 1 || b.Sign > 12 {
			return errors.New("boundary sign must be between 1 and 12")
		}
		if b.JulianDay <= 0 {
			return errors.New("boundary julian day must be positive")
		}
	}
	return nil
}
