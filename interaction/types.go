// Package interaction defines the relation and record types for the
// interaction subpackage of github.com/liuhe-dev/wuxing.
package interaction

import (
	"github.com/liuhe-dev/wuxing/almanac"
	"github.com/liuhe-dev/wuxing/symbol"
)

// Relation is one of the 10 relationship categories between the day
// master and another stem: 5 base relations, each split by the polarity
// parity bit (same polarity → the "shadow" variant, opposite → the
// "direct" variant).
type Relation int

const (
	// RelFriend: same element, same polarity.
	RelFriend Relation = iota
	// RelRival: same element, opposite polarity.
	RelRival
	// RelEatingGod: the day master generates it, same polarity.
	RelEatingGod
	// RelHurtingOfficer: the day master generates it, opposite polarity.
	RelHurtingOfficer
	// RelIndirectWealth: the day master controls it, same polarity.
	RelIndirectWealth
	// RelDirectWealth: the day master controls it, opposite polarity.
	RelDirectWealth
	// RelSevenKillings: it controls the day master, same polarity.
	RelSevenKillings
	// RelDirectOfficer: it controls the day master, opposite polarity.
	RelDirectOfficer
	// RelIndirectResource: it generates the day master, same polarity.
	RelIndirectResource
	// RelDirectResource: it generates the day master, opposite polarity.
	RelDirectResource
)

// NumRelations is the fixed category count.
const NumRelations = 10

// relationNames maps Relation to its canonical name.
var relationNames = [NumRelations]string{
	"FRIEND", "RIVAL",
	"EATING_GOD", "HURTING_OFFICER",
	"INDIRECT_WEALTH", "DIRECT_WEALTH",
	"SEVEN_KILLINGS", "DIRECT_OFFICER",
	"INDIRECT_RESOURCE", "DIRECT_RESOURCE",
}

// Valid reports whether r is a declared relation.
func (r Relation) Valid() bool { return r >= RelFriend && r < NumRelations }

// String returns the canonical relation name.
func (r Relation) String() string {
	if !r.Valid() {
		return "Relation(?)"
	}

	return relationNames[r]
}

// IntensityVector holds the 10 category scores, indexed by Relation.
type IntensityVector [NumRelations]float64

// Get returns the score of relation r (0 for invalid relations).
func (v IntensityVector) Get(r Relation) float64 {
	if !r.Valid() {
		return 0
	}

	return v[r]
}

// Record is one detected interaction, ready for arbitration.
type Record struct {
	// ID is a human-readable instance id: kind name plus participants.
	ID string
	// Kind is the closed interaction kind.
	Kind almanac.InteractionKind
	// Priority is the list-order priority copied from the almanac table
	// (lower sorts earlier in the raw list).
	Priority int
	// PhaseShift and ResonanceMult are the table's wave constants.
	PhaseShift    float64
	ResonanceMult float64
	// Lock marks combinations that freeze their participants.
	Lock bool
	// Participants are the branches involved; empty for interference
	// records, which live on the intensity plane.
	Participants []symbol.Branch
	// Intensity is the triggering product for interference records,
	// 0 otherwise.
	Intensity float64
}

// RegistryKey is the id the arbiter resolves against its registry.
func (r Record) RegistryKey() string { return r.Kind.String() }

// Interference thresholds: the fixed category-product gates of the four
// special interactions.
const (
	officerStrifeGate = 36.0 // HurtingOfficer × DirectOfficer
	owlSeizureGate    = 25.0 // IndirectResource × EatingGod
	rivalSeizureGate  = 20.0 // Rival × DirectWealth
	sealBreachGate    = 20.0 // IndirectWealth × DirectResource
)

// Options configures intensity scoring.
//
// Fields:
//   - Geo           — the external geo multiplier scaling all intensities
//     (default 1.0).
//   - Progress      — time progress for the dynamic hidden-stem resolver
//     (default 0.5, clamped into [0,1]).
//   - StaticWeights — use the static hidden-stem table instead.
type Options struct {
	Geo           float64
	Progress      float64
	StaticWeights bool
}

// DefaultOptions returns Geo=1.0, Progress=0.5, dynamic weights.
func DefaultOptions() Options {
	return Options{Geo: 1.0, Progress: 0.5}
}
