package almanac

import (
	"fmt"
	"math"

	"github.com/liuhe-dev/wuxing/symbol"
)

// ElementPhaseStep is the angular spacing between adjacent elements on
// the unit circle: 2π/5.
const ElementPhaseStep = 2 * math.Pi / symbol.NumElements

// Seasonal strength levels. The month's element column assigns one
// level to each of the 5 elements (the classical prosperous / assisted /
// resting / trapped / dead ladder).
const (
	SeasonProsperous = 1.4 // element in its own season
	SeasonAssisted   = 1.2 // element the season generates
	SeasonResting    = 1.0 // element that generates the season
	SeasonTrapped    = 0.8 // element that controls the season
	SeasonDead       = 0.6 // element the season controls
)

// generationNext maps each element to its generation-cycle successor:
// Wood→Fire→Earth→Metal→Water→Wood.
var generationNext = [symbol.NumElements]symbol.Element{
	symbol.Fire, symbol.Earth, symbol.Metal, symbol.Water, symbol.Wood,
}

// controlNext maps each element to its control-cycle successor:
// Wood→Earth→Water→Fire→Metal→Wood.
var controlNext = [symbol.NumElements]symbol.Element{
	symbol.Earth, symbol.Metal, symbol.Water, symbol.Fire, symbol.Wood,
}

// seasonalMatrix[branch][element] holds the 12×5 strength multipliers.
// Derived once at init from the month element and the two cycles.
var seasonalMatrix [symbol.NumBranches][symbol.NumElements]float64

func init() {
	for b := symbol.BranchZi; b <= symbol.BranchHai; b++ {
		month := b.Element()
		for _, e := range symbol.Elements() {
			seasonalMatrix[b][e] = seasonLevel(month, e)
		}
	}
}

// seasonLevel assigns the seasonal strength of element e under month
// element m according to the classical ladder.
func seasonLevel(m, e symbol.Element) float64 {
	switch {
	case e == m:
		return SeasonProsperous
	case generationNext[m] == e:
		return SeasonAssisted
	case generationNext[e] == m:
		return SeasonResting
	case controlNext[e] == m:
		return SeasonTrapped
	default: // controlNext[m] == e
		return SeasonDead
	}
}

// PhaseOf returns element e's fixed phase angle in [0, 2π).
func PhaseOf(e symbol.Element) (float64, error) {
	if !e.Valid() {
		return 0, fmt.Errorf("%w: element %d", ErrNoTableEntry, int(e))
	}

	return float64(e) * ElementPhaseStep, nil
}

// GenerationSuccessor returns the element e generates.
func GenerationSuccessor(e symbol.Element) (symbol.Element, error) {
	if !e.Valid() {
		return 0, fmt.Errorf("%w: element %d", ErrNoTableEntry, int(e))
	}

	return generationNext[e], nil
}

// ControlSuccessor returns the element e controls.
func ControlSuccessor(e symbol.Element) (symbol.Element, error) {
	if !e.Valid() {
		return 0, fmt.Errorf("%w: element %d", ErrNoTableEntry, int(e))
	}

	return controlNext[e], nil
}

// SeasonalMultiplier returns the strength of element e in the month
// anchored by branch month.
func SeasonalMultiplier(month symbol.Branch, e symbol.Element) (float64, error) {
	if !month.Valid() {
		return 0, fmt.Errorf("%w: branch %d", ErrNoTableEntry, int(month))
	}
	if !e.Valid() {
		return 0, fmt.Errorf("%w: element %d", ErrNoTableEntry, int(e))
	}

	return seasonalMatrix[month][e], nil
}

// priorityTable maps each interaction kind to its fixed arbitration
// profile. Ascending priority = earlier in the matcher's raw list; kinds
// sharing a value are ordered by discovery sequence.
var priorityTable = [NumInteractionKinds]InteractionProfile{
	KindOfficerStrife:  {Priority: 5, ResonanceMult: 0.60, PhaseShift: math.Pi, Lock: false},
	KindOwlSeizure:     {Priority: 5, ResonanceMult: 0.65, PhaseShift: math.Pi, Lock: false},
	KindRivalSeizure:   {Priority: 5, ResonanceMult: 0.70, PhaseShift: math.Pi, Lock: false},
	KindSealBreach:     {Priority: 5, ResonanceMult: 0.70, PhaseShift: math.Pi, Lock: false},
	KindSeasonalTriad:  {Priority: 10, ResonanceMult: 1.80, PhaseShift: 0, Lock: true},
	KindHarmonyTriad:   {Priority: 20, ResonanceMult: 1.50, PhaseShift: 0, Lock: true},
	KindHarmonyPair:    {Priority: 30, ResonanceMult: 1.20, PhaseShift: math.Pi / 6, Lock: true},
	KindClash:          {Priority: 40, ResonanceMult: 0.60, PhaseShift: math.Pi, Lock: false},
	KindSelfResonance:  {Priority: 50, ResonanceMult: 1.30, PhaseShift: 0, Lock: false},
	KindPunishment:     {Priority: 60, ResonanceMult: 0.75, PhaseShift: 2 * math.Pi / 3, Lock: false},
	KindRudePunishment: {Priority: 60, ResonanceMult: 0.80, PhaseShift: 2 * math.Pi / 3, Lock: false},
	KindSelfPunishment: {Priority: 60, ResonanceMult: 0.85, PhaseShift: 2 * math.Pi / 3, Lock: false},
	KindHarm:           {Priority: 70, ResonanceMult: 0.80, PhaseShift: math.Pi / 2, Lock: false},
}

// ProfileOf returns the arbitration profile of kind k.
func ProfileOf(k InteractionKind) (InteractionProfile, error) {
	if !k.Valid() {
		return InteractionProfile{}, fmt.Errorf("%w: kind %d", ErrNoTableEntry, int(k))
	}

	return priorityTable[k], nil
}
