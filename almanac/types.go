// Package almanac defines table types and sentinel errors for the
// almanac subpackage of github.com/liuhe-dev/wuxing.
package almanac

import (
	"errors"

	"github.com/liuhe-dev/wuxing/symbol"
)

// ErrNoTableEntry indicates a lookup against a compiled-in table with a
// symbol or kind that has no entry. Tables are closed; this is always a
// caller-side configuration error, never a data gap.
var ErrNoTableEntry = errors.New("almanac: no table entry")

// InteractionKind enumerates every interaction the engine can detect.
// The enum is closed: switches over it must be exhaustive, and the
// priority table declares a profile for each member.
type InteractionKind int

const (
	// KindOfficerStrife is the output-vs-authority interference
	// (intensity product gated at 36).
	KindOfficerStrife InteractionKind = iota
	// KindOwlSeizure is the indirect-resource-vs-output interference
	// (intensity product gated at 25).
	KindOwlSeizure
	// KindRivalSeizure is the peer-vs-wealth interference
	// (intensity product gated at 20).
	KindRivalSeizure
	// KindSealBreach is the wealth-vs-resource interference
	// (intensity product gated at 20).
	KindSealBreach
	// KindSeasonalTriad is a 3-branch directional combination (三会).
	KindSeasonalTriad
	// KindHarmonyTriad is a 3-branch harmonic combination (三合).
	KindHarmonyTriad
	// KindHarmonyPair is a 2-branch harmonic combination (六合).
	KindHarmonyPair
	// KindClash is a 2-branch opposition (六冲).
	KindClash
	// KindSelfResonance is a repeated-branch echo (伏吟).
	KindSelfResonance
	// KindPunishment is a 3-branch punishment group (三刑).
	KindPunishment
	// KindRudePunishment is the 2-branch 子卯 punishment.
	KindRudePunishment
	// KindSelfPunishment is a branch punishing its own repeat (自刑).
	KindSelfPunishment
	// KindHarm is a 2-branch harm pair (六害).
	KindHarm
)

// NumInteractionKinds is the cardinality of the closed kind enum.
const NumInteractionKinds = 13

// kindNames maps InteractionKind to its canonical registry key.
var kindNames = [NumInteractionKinds]string{
	"OFFICER_STRIFE",
	"OWL_SEIZURE",
	"RIVAL_SEIZURE",
	"SEAL_BREACH",
	"SEASONAL_TRIAD",
	"HARMONY_TRIAD",
	"HARMONY_PAIR",
	"CLASH",
	"SELF_RESONANCE",
	"PUNISHMENT",
	"RUDE_PUNISHMENT",
	"SELF_PUNISHMENT",
	"HARM",
}

// Valid reports whether k is a declared interaction kind.
func (k InteractionKind) Valid() bool {
	return k >= KindOfficerStrife && k < NumInteractionKinds
}

// String returns the canonical registry key, or "Kind(?)" when out of range.
func (k InteractionKind) String() string {
	if !k.Valid() {
		return "Kind(?)"
	}

	return kindNames[k]
}

// ParseInteractionKind resolves a registry key back to its kind.
func ParseInteractionKind(name string) (InteractionKind, error) {
	for i, n := range kindNames {
		if n == name {
			return InteractionKind(i), nil
		}
	}

	return 0, errors.Join(ErrNoTableEntry, errors.New("unknown interaction kind "+name))
}

// InteractionProfile is one row of the priority table: the fixed
// arbitration inputs attached to an interaction kind. Lower Priority
// sorts earlier in the matcher's raw list.
type InteractionProfile struct {
	// Priority orders the matcher's raw output ascending.
	Priority int
	// ResonanceMult scales the interaction's effect on field resonance.
	ResonanceMult float64
	// PhaseShift is the phase offset (radians) the interaction injects.
	PhaseShift float64
	// Lock marks combinations that freeze their participant branches.
	Lock bool
}

// StemWeight is one hidden-stem channel: a sub-symbol and its share of
// the branch's fixed total weight of 10.
type StemWeight struct {
	Stem   symbol.Stem
	Weight float64
}
