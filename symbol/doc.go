// Package symbol defines the closed stem/branch alphabets, pillars and
// charts that every other wuxing package consumes.
//
// What:
//
//   - Stem: one of 10 calendrical symbols (甲乙丙丁戊己庚辛壬癸), each
//     carrying an Element and a polarity bit.
//   - Branch: one of 12 calendrical symbols (子丑寅卯辰巳午未申酉戌亥),
//     each carrying an Element.
//   - Pillar: an immutable (Stem, Branch) pair, parsed from a 2-rune code.
//   - Chart: an ordered pillar sequence — four natal positions plus an
//     optional decade-cycle and annual overlay (6 positions max).
//   - Element: one of the 5 fixed field categories (Wood..Water).
//
// Why:
//
//   - Alphabet membership is the engine's only input contract; every
//     violation fails fast here so downstream stages never re-validate.
//   - Positions carry fixed importance weights used by field
//     construction and intensity scoring alike.
//
// Errors:
//
//   - ErrUnknownStem / ErrUnknownBranch: symbol outside its alphabet.
//   - ErrBadPillar: pillar code is not exactly one stem + one branch.
//   - ErrChartTooShort / ErrChartTooLong: chart outside the 2..6 range.
//
// All types are value types; a Chart is never mutated after NewChart.
package symbol
