// Package almanac is the compiled-in fact base of the engine: every
// static domain table the pipeline consults lives here, read-only.
//
// What:
//
//   - PhaseOf: the 5 element phase angles, spaced 2π/5 apart.
//   - GenerationSuccessor / ControlSuccessor: the two element bijections
//     (Wood→Fire→Earth→Metal→Water→Wood and Wood→Earth→Water→Fire→Metal→Wood).
//   - SeasonalMultiplier: the 12×5 month-branch × element strength matrix,
//     derived once at init from the prosperous/assisted/resting/trapped/dead
//     seasonal rule.
//   - Structural relation maps: seasonal triads, harmony triads, harmony
//     pairs, clash pairs, punishment groups (3-branch, 2-branch, self) and
//     harm pairs.
//   - HiddenStems: the static per-branch sub-stem weight table (weights
//     sum to 10, channel order primary/secondary/residual).
//   - RootingGain: the {0.5, 1.2, 1.5, 2.0} stem/branch co-occurrence gain.
//   - ProfileOf: InteractionKind → (priority, resonance multiplier, phase
//     shift, lock flag).
//
// Why:
//
//   - Down-stream stages stay pure: all shared state is immutable and
//     process-wide, a configuration artifact rather than runtime state.
//
// Errors:
//
//   - ErrNoTableEntry: a lookup with an out-of-alphabet symbol or an
//     undeclared interaction kind. There is no mutation API, so this is
//     the package's only failure mode.
//
// Complexity: every lookup is O(1) (hidden-stem lists have ≤3 entries).
package almanac
