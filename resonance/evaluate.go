package resonance

import (
	"math"

	"github.com/liuhe-dev/wuxing/symbol"
	"github.com/liuhe-dev/wuxing/wave"
)

// Classification thresholds. All fixed; none are tunable at runtime.
const (
	// epsAmp floors every amplitude division.
	epsAmp = 1e-9

	// sigmoidGain and sigmoidCenter shape the dominance boost.
	sigmoidGain   = 12.0
	sigmoidCenter = 0.60
	// boostWeight scales how strongly the sigmoid inflates locking.
	boostWeight = 2.0

	// voidSyncFactor and voidLockFactor damp the profile when the
	// external void flag is set.
	voidSyncFactor = 0.8
	voidLockFactor = 0.3

	// coherentLockMin gates the locked regimes.
	coherentLockMin = 2.0
	// coherentSyncMin separates COHERENT from BEATING.
	coherentSyncMin = 0.85
	// beatingSyncMin separates BEATING from DAMPED.
	beatingSyncMin = 0.4
	// annihilationSyncMax triggers the cancellation override.
	annihilationSyncMax = 0.12

	// followLockMin, followFragMax and followConfidenceMin gate the
	// follow regime.
	followLockMin       = 1.5
	followFragMax       = 0.35
	followConfidenceMin = 0.55
	// followConfidenceGain scales dominance×boost into confidence.
	followConfidenceGain = 1.5

	// brittlenessFloor and brittlenessBand map sync into brittleness.
	brittlenessFloor = 0.85
	brittlenessBand  = 0.15

	// fragmentationAmpMin is the loudness bar for the phase-scatter set.
	fragmentationAmpMin = 1.0
	// superfluidFragMax reclassifies a fragmentation-free annihilation.
	superfluidFragMax = 0.15
	// superfluidFlow is the flow efficiency of the reclassified regime.
	superfluidFlow = 2.5

	// followFlowFactor doubles throughput in the follow regime;
	// annihilationFlowFactor collapses it.
	followFlowFactor       = 2.0
	annihilationFlowFactor = 0.1
)

// Evaluate builds the stability profile of field f against the day
// master's element. void applies the external emptiness damping before
// classification. Evaluate never fails: degenerate inputs settle into a
// zero-energy DAMPED profile.
func Evaluate(f wave.FieldMap, dayMaster symbol.Stem, void bool) Profile {
	selfElem := dayMaster.Element()
	self := f.Get(selfElem)
	rest := f.SumExcept(selfElem)

	rawLocking := rest.Amp / math.Max(self.Amp, epsAmp)
	dominance := rest.Amp / math.Max(rest.Amp+self.Amp, epsAmp)
	boost := logistic(sigmoidGain * (dominance - sigmoidCenter))
	locking := rawLocking * (1 + boostWeight*boost)

	sync := cosHalfSquared(phaseDiff(self.Phase, rest.Phase))
	if void {
		sync *= voidSyncFactor
		locking *= voidLockFactor
	}

	frag := fragmentation(f)

	mode := classify(locking, sync, rest.Amp)

	confidence := math.Min(1, dominance*boost*followConfidenceGain)
	isFollow := (mode == ModeCoherent && locking > followLockMin && frag < followFragMax) ||
		confidence > followConfidenceMin

	flow := sync
	if isFollow {
		flow *= followFlowFactor
	}
	if mode == ModeAnnihilation {
		flow *= annihilationFlowFactor
		// Superfluid exception: an annihilation verdict without phase
		// scatter is a perfectly ordered counter-flow.
		if frag < superfluidFragMax {
			mode = ModeCoherent
			flow = superfluidFlow
		}
	}

	return Profile{
		Mode:           mode,
		Sync:           sync,
		LockingRatio:   locking,
		Brittleness:    brittleness(sync),
		Fragmentation:  frag,
		FlowEfficiency: flow,
		IsFollow:       isFollow,
	}
}

// classify applies the locking/sync ladder. The annihilation override
// requires actual field energy: an empty field has nothing to cancel
// and stays DAMPED.
func classify(locking, sync, fieldAmp float64) Mode {
	mode := ModeDamped
	if locking >= coherentLockMin {
		switch {
		case sync > coherentSyncMin:
			mode = ModeCoherent
		case sync > beatingSyncMin:
			mode = ModeBeating
		default:
			mode = ModeDamped
		}
	}
	if sync < annihilationSyncMax && fieldAmp > epsAmp {
		mode = ModeAnnihilation
	}

	return mode
}

// brittleness maps sync into the over-synchronization band. The upper
// clamp matters: 1−0.85 exceeds 0.15 by one ulp in float64, so the raw
// ratio can tick past 1 at perfect sync.
func brittleness(sync float64) float64 {
	return math.Min(1, math.Max(0, (sync-brittlenessFloor)/brittlenessBand))
}

// phaseDiff wraps the absolute phase difference and folds it into [0, π].
func phaseDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	d = math.Mod(d, 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}

	return d
}

// cosHalfSquared is the sync law cos²(Δφ/2).
func cosHalfSquared(d float64) float64 {
	c := math.Cos(d / 2)

	return c * c
}

// logistic is the standard sigmoid 1/(1+e^{-x}).
func logistic(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// fragmentation returns the population standard deviation of the phases
// of elements louder than fragmentationAmpMin, normalized by π. Fewer
// than 2 qualifying elements mean no scatter to measure.
func fragmentation(f wave.FieldMap) float64 {
	phases := make([]float64, 0, symbol.NumElements)
	for _, e := range symbol.Elements() {
		if p := f.Get(e); p.Amp > fragmentationAmpMin {
			phases = append(phases, p.Phase)
		}
	}
	if len(phases) < 2 {
		return 0
	}

	mean := 0.0
	for _, p := range phases {
		mean += p
	}
	mean /= float64(len(phases))

	variance := 0.0
	for _, p := range phases {
		d := p - mean
		variance += d * d
	}
	variance /= float64(len(phases))

	return math.Sqrt(variance) / math.Pi
}
