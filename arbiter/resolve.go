package arbiter

import (
	"sort"

	"github.com/liuhe-dev/wuxing/interaction"
)

// silentDefault is the entry assigned to a triggered id absent from the
// registry: priority 0, tier STRUCTURAL, no conflicts, ACTIVE. A
// deliberate non-error — unregistered interactions still flow through
// arbitration at the bottom of the priority order.
var silentDefault = Entry{Priority: 0, Tier: TierStructural, Status: StatusActive}

// Resolve arbitrates the matcher's raw list: status filtering, scenario
// affinity bonus, higher-wins sorting, greedy-fusion suppression and
// tier grouping. The input slice is never mutated.
func Resolve(records []interaction.Record, opts Options) Result {
	registry := opts.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}

	type candidate struct {
		rec      interaction.Record
		entry    Entry
		priority int
	}

	candidates := make([]candidate, 0, len(records))
	for _, rec := range records {
		entry, ok := registry[rec.RegistryKey()]
		if !ok {
			entry = silentDefault
		}
		if entry.Status != StatusActive {
			continue
		}

		priority := entry.Priority
		if hasAffinity(entry, opts.Scenario) {
			priority += AffinityBonus
		}
		candidates = append(candidates, candidate{rec: rec, entry: entry, priority: priority})
	}

	// Higher-wins; stable keeps the matcher's list order on ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].priority > candidates[j].priority
	})

	var result Result
	suppressed := make(map[string]bool)
	for _, c := range candidates {
		if opts.GreedyFusion && suppressed[c.rec.RegistryKey()] {
			continue
		}
		if opts.GreedyFusion {
			for _, id := range c.entry.Conflicts {
				suppressed[id] = true
			}
		}

		result.Resolved = append(result.Resolved, c.rec)

		tier := c.entry.Tier
		if !tier.Valid() {
			tier = TierStructural
		}
		result.tiers[tier] = append(result.tiers[tier], c.rec)
	}

	return result
}

// hasAffinity reports whether the entry's affinity list names the
// scenario. GENERAL never triggers a bonus.
func hasAffinity(e Entry, s Scenario) bool {
	if s == ScenarioGeneral {
		return false
	}
	for _, a := range e.Affinity {
		if a == s {
			return true
		}
	}

	return false
}
