// Package arbiter defines registry and tier types for the arbiter
// subpackage of github.com/liuhe-dev/wuxing.
package arbiter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/liuhe-dev/wuxing/interaction"
)

// Sentinel errors for arbitration inputs.
var (
	// ErrUnknownScenario indicates a scenario name outside the closed enum.
	ErrUnknownScenario = errors.New("arbiter: unknown scenario")
	// ErrBadRegistry indicates a malformed registry overlay.
	ErrBadRegistry = errors.New("arbiter: malformed registry")
)

// AffinityBonus is added to an interaction's registry priority when the
// run's scenario appears in its affinity list.
const AffinityBonus = 100

// Tier is one of the 5 fixed causal-execution buckets, in order.
type Tier int

const (
	// TierEnvironment resolves first: seasonal/contextual combinations.
	TierEnvironment Tier = iota
	// TierFundamental: deep structural combinations.
	TierFundamental
	// TierStructural: pairwise structural relations (and the default).
	TierStructural
	// TierFlow: intensity-plane interference events.
	TierFlow
	// TierTemporal resolves last: repeat echoes.
	TierTemporal
)

// NumTiers is the fixed tier count.
const NumTiers = 5

// tierNames maps Tier to its canonical name.
var tierNames = [NumTiers]string{
	"ENVIRONMENT", "FUNDAMENTAL", "STRUCTURAL", "FLOW", "TEMPORAL",
}

// Valid reports whether t is a declared tier.
func (t Tier) Valid() bool { return t >= TierEnvironment && t < NumTiers }

// String returns the canonical tier name.
func (t Tier) String() string {
	if !t.Valid() {
		return "Tier(?)"
	}

	return tierNames[t]
}

// ParseTier resolves a tier name, case-insensitively.
func ParseTier(name string) (Tier, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range tierNames {
		if n == upper {
			return Tier(i), nil
		}
	}

	return 0, fmt.Errorf("%w: tier %q", ErrBadRegistry, name)
}

// Status gates an interaction's participation in arbitration.
type Status int

const (
	// StatusActive admits the interaction.
	StatusActive Status = iota
	// StatusInactive drops it before sorting.
	StatusInactive
)

// String returns "ACTIVE" or "INACTIVE".
func (s Status) String() string {
	if s == StatusActive {
		return "ACTIVE"
	}

	return "INACTIVE"
}

// Scenario is the closed run-context enum. Matching is case-insensitive;
// the zero value GENERAL is the default.
type Scenario int

const (
	// ScenarioGeneral is the default, affinity-neutral context.
	ScenarioGeneral Scenario = iota
	// ScenarioCareer boosts authority-plane interactions.
	ScenarioCareer
	// ScenarioWealth boosts wealth-plane interactions.
	ScenarioWealth
	// ScenarioRelationship boosts harm/harmony interactions.
	ScenarioRelationship
	// ScenarioHealth boosts depletion interactions.
	ScenarioHealth
	// ScenarioStudy boosts resource-plane interactions.
	ScenarioStudy
)

// scenarioNames maps Scenario to its canonical name.
var scenarioNames = [...]string{
	"GENERAL", "CAREER", "WEALTH", "RELATIONSHIP", "HEALTH", "STUDY",
}

// String returns the canonical scenario name.
func (s Scenario) String() string {
	if s < ScenarioGeneral || int(s) >= len(scenarioNames) {
		return "Scenario(?)"
	}

	return scenarioNames[s]
}

// ParseScenario resolves a scenario name case-insensitively. The empty
// string resolves to GENERAL.
func ParseScenario(name string) (Scenario, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	if upper == "" {
		return ScenarioGeneral, nil
	}
	for i, n := range scenarioNames {
		if n == upper {
			return Scenario(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
}

// Entry is one registry row.
type Entry struct {
	// Priority is the registry-axis priority; higher wins.
	Priority int
	// Tier is the execution bucket; invalid values fall back to STRUCTURAL.
	Tier Tier
	// Conflicts lists registry ids this interaction suppresses when emitted.
	Conflicts []string
	// Status gates participation.
	Status Status
	// Affinity lists scenarios granting the AffinityBonus.
	Affinity []Scenario
}

// Registry maps interaction registry ids to their arbitration entries.
type Registry map[string]Entry

// Options configures Resolve.
//
// Fields:
//   - Scenario     — the run context (default GENERAL).
//   - GreedyFusion — emitted interactions suppress their conflicts
//     (default true).
//   - Registry     — arbitration entries; nil means DefaultRegistry().
type Options struct {
	Scenario     Scenario
	GreedyFusion bool
	Registry     Registry
}

// DefaultOptions returns GENERAL scenario, greedy fusion on, default
// registry.
func DefaultOptions() Options {
	return Options{Scenario: ScenarioGeneral, GreedyFusion: true}
}

// Result is the arbitration outcome: the resolved, priority-sorted
// records plus their grouping into the 5 fixed tiers.
type Result struct {
	Resolved []interaction.Record
	tiers    [NumTiers][]interaction.Record
}

// Tier returns the records grouped under t, in resolved order. Invalid
// tiers yield nil.
func (r Result) Tier(t Tier) []interaction.Record {
	if !t.Valid() {
		return nil
	}

	return r.tiers[t]
}

// Tiers returns the 5 buckets in tier order.
func (r Result) Tiers() [NumTiers][]interaction.Record { return r.tiers }
