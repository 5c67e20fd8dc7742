// Package resonance classifies the settled field's stability against a
// distinguished "self" element.
//
// What:
//
//	Evaluate splits the field into the self phasor (the day master's
//	element) and the vector sum of the remaining four, then derives:
//	  • LockingRatio — field/self amplitude ratio, sigmoid-boosted when
//	    the field dominates (logistic gain 12 around dominance 0.60).
//	  • Sync — cos²(Δφ/2) of the wrapped self/field phase difference.
//	  • Mode — COHERENT, BEATING, DAMPED or ANNIHILATION.
//	  • Brittleness — how deep into the over-synchronized band the
//	    field sits: max(0, (sync−0.85)/0.15).
//	  • Fragmentation — population σ of the phases of elements with
//	    amplitude > 1, normalized by π (0 when fewer than 2 qualify).
//	  • IsFollow / FlowEfficiency — follow-regime detection and the
//	    resulting throughput factor, including the superfluid
//	    exception: an ANNIHILATION verdict with fragmentation < 0.15
//	    reclassifies to COHERENT at flow efficiency 2.5.
//
// The external void flag damps sync ×0.8 and locking ×0.3 before
// classification.
//
// Contract:
//
//   - LockingRatio ≥ 0 and Sync ∈ [0,1] for every input.
//   - Every division is ε-floored; an all-zero field yields a valid
//     DAMPED profile, never an error.
//   - The returned Profile is immutable once built.
//
// Complexity: O(5).
package resonance
