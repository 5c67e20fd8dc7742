// Package arbiter resolves the matcher's raw interaction list into a
// final, priority-ordered set grouped into 5 fixed execution tiers.
//
// What:
//
//   - Registry: per-interaction arbitration entries — registry priority
//     (higher wins; an axis independent of the matcher's list-order
//     priority), execution tier, explicit conflicts, ACTIVE/INACTIVE
//     status and an optional scenario-affinity list. A compiled-in
//     default registry ships with the package; ParseRegistry reads a
//     YAML overlay from bytes and Merge lays it over the default.
//   - Resolve:
//     1. drops every interaction whose registry status is not ACTIVE;
//     2. adds a fixed +100 bonus when the run's scenario appears in an
//     interaction's affinity list;
//     3. sorts by (registry priority + bonus) descending;
//     4. with greedy fusion (default on), each emitted interaction
//     suppresses every id on its conflicts list — later arrivals
//     already suppressed are dropped;
//     5. groups survivors into the ordered tiers ENVIRONMENT,
//     FUNDAMENTAL, STRUCTURAL, FLOW, TEMPORAL. An unknown or missing
//     tier defaults to STRUCTURAL.
//
// Failure semantics:
//
//   - A triggered id absent from the registry gets the silent default:
//     priority 0, tier STRUCTURAL, no conflicts, ACTIVE. This is a
//     deliberate non-error (see DESIGN.md).
//   - ErrUnknownScenario: a scenario name outside the closed enum.
//   - ErrBadRegistry: malformed YAML overlay input.
//
// Complexity: O(n log n) over a list that is O(1) in practice.
package arbiter
