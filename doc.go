// Package wuxing turns discrete stem/branch charts into a continuous
// five-element phasor field and distills it into stability metrics and
// a deterministic, priority-resolved interaction list.
//
// 🚀 What is wuxing?
//
//	A pure-Go, deterministic analysis engine that brings together:
//		• Symbol layer: the 10-stem / 12-branch alphabets, pillars & charts
//		• Almanac: compiled-in phase angles, cycles, seasonal strengths,
//		  structural relation maps and the interaction priority table
//		• Hidden stems: static and time-varying sub-symbol weights
//		• Wave laws: phasor superposition and tanh amplitude saturation
//		• Field: two-pass chart → field construction + 3-step energy flux
//		• Resonance: locking ratio, sync, mode classification, follow logic
//		• Interactions: intensity scoring, interference & structural scans
//		• Arbiter: registry-driven conflict resolution into 5 causal tiers
//
// ✨ Why choose wuxing?
//
//   - Deterministic – identical inputs yield byte-identical readings
//   - Pure functions – no I/O, no globals beyond read-only tables
//   - Fail-fast – alphabet/table violations error immediately via
//     sentinel errors; numeric edge cases are absorbed by ε-floors
//   - Re-entrant – safe to run concurrently across invocations
//
// Under the hood, everything is organized under small subpackages:
//
//	symbol/      — stems, branches, pillars, charts, validation
//	almanac/     — read-only constant tables & lookups
//	hidden/      — hidden-stem weight resolver (static & dynamic)
//	wave/        — Phasor value type, Superposition, Saturation, FieldMap
//	field/       — field initializer and energy-flux simulator
//	resonance/   — stability evaluation of the settled field
//	interaction/ — intensity rules, interference & structural detection
//	arbiter/     — priority arbitration, suppression, tier grouping
//	oracle/      — one-call orchestration of the whole pipeline
//
// Quick start:
//
//	chart, _ := symbol.ParseChart([]string{"甲子", "丙寅", "庚辰", "壬午"})
//	reading, _ := oracle.Evaluate(chart, symbol.StemGeng)
//	fmt.Println(reading.Profile.Mode)
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
package wuxing
