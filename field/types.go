// Package field defines options and tuning constants for the field
// subpackage of github.com/liuhe-dev/wuxing.
package field

// SaturationCeiling is the amplitude ceiling applied after construction
// and after every flux iteration.
const SaturationCeiling = 100.0

// FluxIterations is the fixed redistribution round count. The 3-round
// contract is part of the engine's determinism guarantee, not a
// convergence bound.
const FluxIterations = 3

// Construction weights.
const (
	// baseScore is the raw contribution of one full symbol, matching the
	// hidden-stem weight budget of 10.
	baseScore = 10.0
	// branchBoost scales branch-side matter relative to stems.
	branchBoost = 1.5
	// clashStemDamping multiplies stem contributions of clash-flagged pillars.
	clashStemDamping = 0.5
	// clashBranchDamping multiplies branch-side contributions of
	// clash-flagged pillars.
	clashBranchDamping = 0.3
	// injectionImportance is the positional weight of injected symbols;
	// they carry no chart position, so they weigh like a year pillar.
	injectionImportance = 1.0
)

// Flux tuning.
const (
	// generationGain is the 0.4 factor of the transfer-ratio law.
	generationGain = 0.4
	// childFloor floors the child amplitude inside the transfer ratio.
	childFloor = 0.5
	// transferMin / transferMax clip the per-step transfer ratio.
	transferMin = 0.1
	transferMax = 0.7
	// controlCoupling scales the destructive control-cycle term.
	controlCoupling = 0.3
	// epsImpedance floors the impedance denominator.
	epsImpedance = 1e-9
)

// Options configures field construction.
//
// Fields:
//   - Progress      — time progress t ∈ [0,1] for the dynamic hidden-stem
//     resolver; clamped, default 0.5.
//   - StaticWeights — bypass the dynamic resolver and use the static
//     hidden-stem table.
type Options struct {
	Progress      float64
	StaticWeights bool
}

// DefaultOptions returns the canonical construction settings:
// Progress=0.5, dynamic hidden-stem weights.
func DefaultOptions() Options {
	return Options{Progress: 0.5}
}
