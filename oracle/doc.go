// Package oracle is the façade of github.com/liuhe-dev/wuxing: one call
// runs the whole pipeline from a parsed chart to a fully arbitrated
// Reading.
//
// What:
//
//	Evaluate(chart, dayMaster, opts...) performs, in order:
//	  1. field.Initialize  — chart symbols → 5-element phasor field;
//	  2. field.Inject      — optional transient branches (WithInjection);
//	  3. field.Flux        — the fixed 3-round energy redistribution;
//	  4. resonance.Evaluate — stability profile of the day master
//	     against the settled field;
//	  5. interaction.Match — interference and structural detection;
//	  6. arbiter.Resolve   — registry arbitration into the 5 tiers.
//
// Why:
//
//	The stage packages are usable on their own, but every consumer ends
//	up wiring them in exactly this order. The façade owns that order,
//	the option plumbing and the structured logging around each stage.
//
// Configuration is by functional options (WithScenario, WithGeoFactor,
// WithProgress, WithStaticWeights, WithVoid, WithInjection,
// WithRegistry, WithGreedyFusion, WithLogger). Option constructors
// validate their inputs and panic on programmer error; Evaluate itself
// never panics and reports data problems as errors.
//
// Errors:
//
//   - ErrBadDayMaster — the day-master stem is outside the closed enum.
//   - Stage errors (symbol.ErrChartTooShort, almanac.ErrNoTableEntry,
//     …) pass through wrapped; test with errors.Is.
//
// Determinism: identical inputs and options yield byte-identical
// Readings. No randomness, no wall clock, no I/O beyond the injected
// logger.
//
// Complexity: O(P·H) field construction plus O(B²) structural matching
// for P pillars, H hidden channels, B branches. All bounded by the
// 6-pillar chart cap.
package oracle
