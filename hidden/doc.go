// Package hidden resolves per-branch hidden-stem weights, either from
// the static almanac table or as a smooth function of time progress.
//
// What:
//
//   - Static(b): the compiled-in channel weights (sum = 10).
//   - Dynamic(b, t): time-varying weights for progress t ∈ [0,1], built
//     from three sin² waveforms phase-offset by 0, π/3 and 2π/3 (channel
//     order primary/secondary/residual), the residual additionally
//     scaled by a damping constant, then renormalized to sum to 10.
//
// Contract:
//
//   - Single-channel branches return their full weight of 10 for every t.
//   - Weights always sum to 10 (±1e-9 numerically).
//   - Continuity: a 0.001 step in t moves any channel by less than 0.1,
//     including across the t=0 / t=1 boundary (the waveforms are
//     periodic over [0,1], so the boundary wraps seamlessly).
//   - Out-of-range t is clamped into [0,1]; it never errors.
//
// Errors:
//
//   - Both modes fail only on an out-of-alphabet branch, surfacing the
//     almanac's ErrNoTableEntry.
//
// Complexity: O(1) per call (≤3 channels).
package hidden
