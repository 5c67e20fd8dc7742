// Package interaction detects the symbolic interactions of a chart:
// weighted relationship intensities, threshold-gated interference
// events and static structural relations.
//
// What:
//
//   - RelationOf: the 10 relationship categories between the day master
//     and any stem — 5 base relations (mirror, output, wealth,
//     authority, resource) split by a polarity parity bit.
//   - Intensities: per-category scores summed over every stem and
//     hidden sub-stem across all pillars, weighted by positional
//     importance, seasonal multiplier and rooting gain, globally scaled
//     by the caller's geo factor.
//   - Match: the full detection pass —
//     (b) 4 interference interactions fire when fixed category-intensity
//     products exceed their thresholds (36, 25, 20, 20);
//     (c) the raw branch set (chart + injections) is scanned for the
//     almanac's structural relations.
//     The final list is sorted ascending by table priority; ties keep
//     discovery order (interference, seasonal triads, harmony triads,
//     harmony pairs, clashes, repeat resonance, punishment, harm).
//     Repeated branches pair combinatorially — no dedup.
//
// Errors:
//
//   - Match/Intensities fail fast on out-of-alphabet symbols with the
//     symbol/almanac sentinels. ε-floors absorb numeric degeneracy.
//
// Complexity: O(pillars² × channels) — ≤6 pillars, so effectively O(1).
package interaction
