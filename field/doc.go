// Package field builds the 5-element phasor field from a chart and
// settles it through a fixed-iteration energy-flux simulation.
//
// What:
//
//   - Initialize: Chart → FieldMap in two explicit passes. Pass 1 scans
//     raw branches for opposition ("clash") membership and flags the
//     participating pillar indices. Pass 2 accumulates, as complex
//     values, each pillar's stem contribution and its branch + hidden
//     sub-stems (positional importance × seasonal multiplier × weight
//     fraction, clash-damped ×0.5 for stems and ×0.3 for branch matter),
//     then decomposes back to amplitude/phase and saturates.
//   - Inject: merges extra branch symbols into an existing field — the
//     pre-flux injection hook.
//   - Flux: exactly FluxIterations (3) redistribution rounds. Each
//     round transfers clip(0.4·mother/max(child, 0.5), 0.1, 0.7) of the
//     mother's amplitude along the generation cycle, applies a
//     π-shifted impedance-dependent interference along the control
//     cycle, and re-saturates every element. 3 iterations is the
//     contract; no convergence claim is made.
//
// Why two passes:
//
//   - Clash damping depends on a property of the undamped branch set, a
//     small forward dependency. Keeping the scan and the accumulation
//     as separate sequential passes keeps Initialize side-effect-free
//     and each pass independently testable.
//
// Errors:
//
//   - Initialize/Inject surface symbol or almanac sentinels on
//     out-of-alphabet input; numeric edge cases never error (ε-floors).
//
// Complexity: O(pillars × channels) per pass, O(5) per flux round.
package field
