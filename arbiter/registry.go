package arbiter

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/liuhe-dev/wuxing/almanac"
)

// defaultEntries is the compiled-in registry covering every interaction
// kind. Registry priority is the higher-wins axis; it is unrelated to
// the almanac's list-order priority.
var defaultEntries = map[string]Entry{
	almanac.KindSeasonalTriad.String(): {
		Priority: 95, Tier: TierEnvironment,
		Conflicts: []string{almanac.KindClash.String(), almanac.KindHarm.String()},
	},
	almanac.KindHarmonyTriad.String(): {
		Priority: 90, Tier: TierFundamental,
		Conflicts: []string{almanac.KindClash.String(), almanac.KindPunishment.String()},
	},
	almanac.KindOfficerStrife.String(): {
		Priority: 80, Tier: TierFlow,
		Affinity: []Scenario{ScenarioCareer},
	},
	almanac.KindOwlSeizure.String(): {
		Priority: 75, Tier: TierFlow,
		Affinity: []Scenario{ScenarioHealth},
	},
	almanac.KindRivalSeizure.String(): {
		Priority: 70, Tier: TierFlow,
		Affinity: []Scenario{ScenarioWealth},
	},
	almanac.KindSealBreach.String(): {
		Priority: 65, Tier: TierFlow,
		Affinity: []Scenario{ScenarioStudy},
	},
	almanac.KindHarmonyPair.String(): {
		Priority: 60, Tier: TierStructural,
		Conflicts: []string{almanac.KindHarm.String()},
	},
	almanac.KindClash.String(): {
		Priority: 55, Tier: TierStructural,
		Conflicts: []string{almanac.KindSelfResonance.String()},
	},
	almanac.KindPunishment.String(): {
		Priority: 50, Tier: TierStructural,
	},
	almanac.KindRudePunishment.String(): {
		Priority: 45, Tier: TierStructural,
	},
	almanac.KindSelfResonance.String(): {
		Priority: 40, Tier: TierTemporal,
	},
	almanac.KindSelfPunishment.String(): {
		Priority: 35, Tier: TierStructural,
	},
	almanac.KindHarm.String(): {
		Priority: 30, Tier: TierStructural,
		Affinity: []Scenario{ScenarioRelationship},
	},
}

// DefaultRegistry returns a fresh copy of the compiled-in registry.
func DefaultRegistry() Registry {
	out := make(Registry, len(defaultEntries))
	for id, e := range defaultEntries {
		out[id] = cloneEntry(e)
	}

	return out
}

// Merge lays overlay entries over r, returning a new registry. Entries
// present in the overlay replace base entries wholesale.
func (r Registry) Merge(overlay Registry) Registry {
	out := make(Registry, len(r)+len(overlay))
	for id, e := range r {
		out[id] = cloneEntry(e)
	}
	for id, e := range overlay {
		out[id] = cloneEntry(e)
	}

	return out
}

// yamlEntry is the overlay wire format of one registry row.
type yamlEntry struct {
	Priority  int      `yaml:"priority"`
	Tier      string   `yaml:"tier"`
	Conflicts []string `yaml:"conflicts"`
	Status    string   `yaml:"status"`
	Affinity  []string `yaml:"affinity"`
}

// yamlRegistry is the overlay document root.
type yamlRegistry struct {
	Interactions map[string]yamlEntry `yaml:"interactions"`
}

// ParseRegistry decodes a YAML registry overlay from bytes. The engine
// performs no file I/O; callers own how the bytes are obtained. Empty
// tier fields default to STRUCTURAL and empty status fields to ACTIVE.
func ParseRegistry(data []byte) (Registry, error) {
	var doc yamlRegistry
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRegistry, err)
	}

	out := make(Registry, len(doc.Interactions))
	for id, ye := range doc.Interactions {
		entry := Entry{Priority: ye.Priority, Tier: TierStructural}

		if ye.Tier != "" {
			tier, err := ParseTier(ye.Tier)
			if err != nil {
				return nil, err
			}
			entry.Tier = tier
		}

		switch ye.Status {
		case "", "ACTIVE", "active":
			entry.Status = StatusActive
		default:
			entry.Status = StatusInactive
		}

		entry.Conflicts = append(entry.Conflicts, ye.Conflicts...)
		for _, name := range ye.Affinity {
			sc, err := ParseScenario(name)
			if err != nil {
				return nil, err
			}
			entry.Affinity = append(entry.Affinity, sc)
		}

		out[id] = entry
	}

	return out, nil
}

// cloneEntry deep-copies an entry's slices.
func cloneEntry(e Entry) Entry {
	cp := e
	cp.Conflicts = append([]string(nil), e.Conflicts...)
	cp.Affinity = append([]Scenario(nil), e.Affinity...)

	return cp
}
