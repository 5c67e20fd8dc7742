package interaction

import (
	"fmt"
	"sort"

	"github.com/liuhe-dev/wuxing/almanac"
	"github.com/liuhe-dev/wuxing/symbol"
)

// Match runs the full detection pass: interference events on the
// intensity plane, then the structural scan over the raw branch set
// (chart branches plus injections). The result is sorted ascending by
// table priority with ties keeping discovery order.
func Match(chart symbol.Chart, dayMaster symbol.Stem, injected []symbol.Branch, opts Options) ([]Record, IntensityVector, error) {
	intensities, err := Intensities(chart, dayMaster, opts)
	if err != nil {
		return nil, IntensityVector{}, err
	}

	records, err := interferences(intensities)
	if err != nil {
		return nil, IntensityVector{}, err
	}

	branches := chart.Branches()
	for _, b := range injected {
		if !b.Valid() {
			return nil, IntensityVector{}, fmt.Errorf("%w: injected branch %d", symbol.ErrUnknownBranch, int(b))
		}
		branches = append(branches, b)
	}

	structural, err := scanStructural(branches)
	if err != nil {
		return nil, IntensityVector{}, err
	}
	records = append(records, structural...)

	// Ascending priority; sort.SliceStable preserves discovery order on ties.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Priority < records[j].Priority
	})

	return records, intensities, nil
}

// interferenceGate pairs a kind with its two categories and threshold.
type interferenceGate struct {
	kind almanac.InteractionKind
	a, b Relation
	gate float64
}

// interferenceGates lists the four special interactions in discovery order.
var interferenceGates = []interferenceGate{
	{almanac.KindOfficerStrife, RelHurtingOfficer, RelDirectOfficer, officerStrifeGate},
	{almanac.KindOwlSeizure, RelIndirectResource, RelEatingGod, owlSeizureGate},
	{almanac.KindRivalSeizure, RelRival, RelDirectWealth, rivalSeizureGate},
	{almanac.KindSealBreach, RelIndirectWealth, RelDirectResource, sealBreachGate},
}

// interferences emits a record for every gate whose category product
// exceeds its threshold.
func interferences(v IntensityVector) ([]Record, error) {
	var out []Record
	for _, g := range interferenceGates {
		product := v.Get(g.a) * v.Get(g.b)
		if product <= g.gate {
			continue
		}
		rec, err := newRecord(g.kind, nil)
		if err != nil {
			return nil, err
		}
		rec.Intensity = product
		out = append(out, rec)
	}

	return out, nil
}

// scanStructural walks the raw branch set against every structural
// relation map, in discovery order. Repeated branches pair
// combinatorially; completed triads fire once per map entry.
func scanStructural(branches []symbol.Branch) ([]Record, error) {
	var out []Record

	emitTriads := func(triads []almanac.BranchTriad, kind almanac.InteractionKind) error {
		for _, tr := range triads {
			if !containsAll(branches, tr.Members) {
				continue
			}
			rec, err := newRecord(kind, tr.Members[:])
			if err != nil {
				return err
			}
			out = append(out, rec)
		}

		return nil
	}

	emitPairs := func(pairs []almanac.BranchPair, kind almanac.InteractionKind) error {
		for i := 0; i < len(branches); i++ {
			for j := i + 1; j < len(branches); j++ {
				if !matchesPair(pairs, branches[i], branches[j]) {
					continue
				}
				rec, err := newRecord(kind, []symbol.Branch{branches[i], branches[j]})
				if err != nil {
					return err
				}
				out = append(out, rec)
			}
		}

		return nil
	}

	if err := emitTriads(almanac.SeasonalTriads(), almanac.KindSeasonalTriad); err != nil {
		return nil, err
	}
	if err := emitTriads(almanac.HarmonyTriads(), almanac.KindHarmonyTriad); err != nil {
		return nil, err
	}
	if err := emitPairs(almanac.HarmonyPairs(), almanac.KindHarmonyPair); err != nil {
		return nil, err
	}
	if err := emitPairs(almanac.ClashPairs(), almanac.KindClash); err != nil {
		return nil, err
	}

	// Repeat resonance: every identical pair echoes.
	for i := 0; i < len(branches); i++ {
		for j := i + 1; j < len(branches); j++ {
			if branches[i] != branches[j] {
				continue
			}
			rec, err := newRecord(almanac.KindSelfResonance, []symbol.Branch{branches[i], branches[j]})
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
		}
	}

	if err := emitTriads(almanac.PunishmentTriads(), almanac.KindPunishment); err != nil {
		return nil, err
	}
	if err := emitPairs([]almanac.BranchPair{almanac.RudePunishmentPair()}, almanac.KindRudePunishment); err != nil {
		return nil, err
	}

	// Self punishment: repeats of the four self-punishing branches.
	selfSet := make(map[symbol.Branch]bool, 4)
	for _, b := range almanac.SelfPunishing() {
		selfSet[b] = true
	}
	for i := 0; i < len(branches); i++ {
		for j := i + 1; j < len(branches); j++ {
			if branches[i] != branches[j] || !selfSet[branches[i]] {
				continue
			}
			rec, err := newRecord(almanac.KindSelfPunishment, []symbol.Branch{branches[i], branches[j]})
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
		}
	}

	if err := emitPairs(almanac.HarmPairs(), almanac.KindHarm); err != nil {
		return nil, err
	}

	return out, nil
}

// newRecord stamps a record with kind k's table profile.
func newRecord(k almanac.InteractionKind, participants []symbol.Branch) (Record, error) {
	profile, err := almanac.ProfileOf(k)
	if err != nil {
		return Record{}, err
	}

	id := k.String()
	for _, b := range participants {
		if len(id) == len(k.String()) {
			id += ":"
		}
		id += b.String()
	}

	cp := make([]symbol.Branch, len(participants))
	copy(cp, participants)

	return Record{
		ID:            id,
		Kind:          k,
		Priority:      profile.Priority,
		PhaseShift:    profile.PhaseShift,
		ResonanceMult: profile.ResonanceMult,
		Lock:          profile.Lock,
		Participants:  cp,
	}, nil
}

// containsAll reports whether every member appears in branches.
func containsAll(branches []symbol.Branch, members [3]symbol.Branch) bool {
	for _, m := range members {
		found := false
		for _, b := range branches {
			if b == m {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// matchesPair reports whether {a, b} equals any pair in the map,
// orientation-free.
func matchesPair(pairs []almanac.BranchPair, a, b symbol.Branch) bool {
	for _, p := range pairs {
		if (p.A == a && p.B == b) || (p.A == b && p.B == a) {
			return true
		}
	}

	return false
}
