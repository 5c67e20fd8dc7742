// Package wave provides the phasor arithmetic the field pipeline is
// built on: an explicit (amplitude, phase) value type, linear
// superposition and tanh amplitude saturation.
//
// What:
//
//   - Phasor: amplitude ≥ 0, phase ∈ [0,2π), frequency (default 1.0).
//     Rectangular helpers (Re/Im, FromRect) convert to and from the
//     complex plane without relying on a native complex type.
//   - Superposition(w1, w2, coupling): the phasor recovered from the
//     complex sum w1 + coupling·w2. Pure, no side effects.
//   - Saturation(w, ceiling): ceiling·tanh(amp/ceiling) with phase
//     unchanged — output amplitude is < ceiling for every finite input,
//     and zero maps to zero.
//   - FieldMap: exactly 5 fixed element keys → Phasor. Keys are never
//     added or removed; zero amplitude is a legal state.
//
// Why:
//
//   - All field construction and flux arithmetic reduces to these three
//     primitives, so their contracts are the numeric backbone of the
//     whole engine.
//
// Complexity: every operation is O(1); FieldMap helpers are O(5).
package wave
