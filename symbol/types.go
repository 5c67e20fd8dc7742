// Package symbol defines core types and sentinel errors for the symbol
// subpackage of github.com/liuhe-dev/wuxing.
package symbol

import "errors"

// Sentinel errors for symbol parsing and chart validation.
var (
	// ErrUnknownStem indicates a rune outside the 10-stem alphabet.
	ErrUnknownStem = errors.New("symbol: unknown stem")
	// ErrUnknownBranch indicates a rune outside the 12-branch alphabet.
	ErrUnknownBranch = errors.New("symbol: unknown branch")
	// ErrBadPillar indicates a pillar code that is not exactly one stem rune
	// followed by one branch rune.
	ErrBadPillar = errors.New("symbol: pillar code must be exactly one stem and one branch")
	// ErrChartTooShort indicates a chart with fewer than MinChartLen pillars.
	ErrChartTooShort = errors.New("symbol: chart must contain at least 2 pillars")
	// ErrChartTooLong indicates a chart with more than MaxChartLen pillars.
	ErrChartTooLong = errors.New("symbol: chart must contain at most 6 pillars")
)

// MinChartLen is the fail-fast floor for chart length. Charts of 2 or 3
// pillars are degenerate but valid; anything shorter is a configuration
// error.
const MinChartLen = 2

// MaxChartLen bounds a chart at the four natal pillars plus the optional
// decade-cycle and annual overlays.
const MaxChartLen = 6

// NatalChartLen is the canonical birth-record length (year, month, day, hour).
const NatalChartLen = 4

// Element is one of the 5 fixed field categories. Elements sit at equal
// phase intervals on the unit circle (see almanac.PhaseOf).
type Element int

const (
	// Wood is the first element; phase angle 0.
	Wood Element = iota
	// Fire follows Wood on the generation cycle.
	Fire
	// Earth follows Fire on the generation cycle.
	Earth
	// Metal follows Earth on the generation cycle.
	Metal
	// Water follows Metal and closes the generation cycle back to Wood.
	Water
)

// NumElements is the fixed cardinality of the Element alphabet.
const NumElements = 5

// elementNames maps Element to its canonical English name.
var elementNames = [NumElements]string{"Wood", "Fire", "Earth", "Metal", "Water"}

// String returns the canonical element name, or "Element(n)" when out of range.
func (e Element) String() string {
	if !e.Valid() {
		return "Element(?)"
	}

	return elementNames[e]
}

// Valid reports whether e is one of the 5 declared elements.
func (e Element) Valid() bool { return e >= Wood && e <= Water }

// Elements returns the 5 elements in canonical (generation-cycle) order.
// The slice is freshly allocated; callers may mutate it freely.
func Elements() []Element {
	return []Element{Wood, Fire, Earth, Metal, Water}
}

// Stem is a member of the 10-symbol heavenly-stem alphabet.
type Stem int

// The 10 stems in canonical order. Even ordinals are yang, odd are yin.
const (
	StemJia  Stem = iota // 甲 — yang Wood
	StemYi               // 乙 — yin Wood
	StemBing             // 丙 — yang Fire
	StemDing             // 丁 — yin Fire
	StemWu               // 戊 — yang Earth
	StemJi               // 己 — yin Earth
	StemGeng             // 庚 — yang Metal
	StemXin              // 辛 — yin Metal
	StemRen              // 壬 — yang Water
	StemGui              // 癸 — yin Water
)

// NumStems is the fixed cardinality of the stem alphabet.
const NumStems = 10

// stemRunes holds the canonical spelling of each stem.
var stemRunes = [NumStems]rune{'甲', '乙', '丙', '丁', '戊', '己', '庚', '辛', '壬', '癸'}

// Valid reports whether s is one of the 10 declared stems.
func (s Stem) Valid() bool { return s >= StemJia && s <= StemGui }

// String returns the canonical rune spelling, or "?" when out of range.
func (s Stem) String() string {
	if !s.Valid() {
		return "?"
	}

	return string(stemRunes[s])
}

// Element returns the element the stem belongs to: stems pair up along
// the generation order (甲乙 Wood, 丙丁 Fire, 戊己 Earth, 庚辛 Metal, 壬癸 Water).
func (s Stem) Element() Element { return Element(s / 2) }

// Yang reports the stem's polarity bit: even ordinals are yang.
func (s Stem) Yang() bool { return s%2 == 0 }

// Branch is a member of the 12-symbol earthly-branch alphabet.
type Branch int

// The 12 branches in canonical order.
const (
	BranchZi   Branch = iota // 子 — Water
	BranchChou               // 丑 — Earth
	BranchYin                // 寅 — Wood
	BranchMao                // 卯 — Wood
	BranchChen               // 辰 — Earth
	BranchSi                 // 巳 — Fire
	BranchWu                 // 午 — Fire
	BranchWei                // 未 — Earth
	BranchShen               // 申 — Metal
	BranchYou                // 酉 — Metal
	BranchXu                 // 戌 — Earth
	BranchHai                // 亥 — Water
)

// NumBranches is the fixed cardinality of the branch alphabet.
const NumBranches = 12

// branchRunes holds the canonical spelling of each branch.
var branchRunes = [NumBranches]rune{'子', '丑', '寅', '卯', '辰', '巳', '午', '未', '申', '酉', '戌', '亥'}

// branchElements maps each branch to its principal element.
var branchElements = [NumBranches]Element{
	Water, Earth, Wood, Wood, Earth, Fire,
	Fire, Earth, Metal, Metal, Earth, Water,
}

// Valid reports whether b is one of the 12 declared branches.
func (b Branch) Valid() bool { return b >= BranchZi && b <= BranchHai }

// String returns the canonical rune spelling, or "?" when out of range.
func (b Branch) String() string {
	if !b.Valid() {
		return "?"
	}

	return string(branchRunes[b])
}

// Element returns the branch's principal element.
func (b Branch) Element() Element { return branchElements[b] }

// Pillar is an immutable (stem, branch) pair — one chart position.
type Pillar struct {
	Stem   Stem
	Branch Branch
}

// String renders the pillar as its canonical 2-rune code (e.g. "甲子").
func (p Pillar) String() string { return p.Stem.String() + p.Branch.String() }

// Position identifies a pillar's ordinal role inside a chart.
type Position int

const (
	// PositionYear is chart index 0.
	PositionYear Position = iota
	// PositionMonth is chart index 1; it selects the seasonal column.
	PositionMonth
	// PositionDay is chart index 2; its stem is the conventional day master.
	PositionDay
	// PositionHour is chart index 3.
	PositionHour
	// PositionDecade is the optional decade-cycle overlay at index 4.
	PositionDecade
	// PositionAnnual is the optional annual overlay at index 5.
	PositionAnnual
)

// positionNames maps Position to its canonical name.
var positionNames = [MaxChartLen]string{"Year", "Month", "Day", "Hour", "Decade", "Annual"}

// String returns the canonical position name, or "Position(?)" when out of range.
func (p Position) String() string {
	if p < PositionYear || p > PositionAnnual {
		return "Position(?)"
	}

	return positionNames[p]
}

// positionImportance is the fixed weighting of each chart position used
// by field construction and intensity scoring. The month dominates
// (seasonal anchor), the day carries the self, overlays sit in between.
var positionImportance = [MaxChartLen]float64{
	1.0, // Year
	1.8, // Month
	1.5, // Day
	1.1, // Hour
	1.4, // Decade
	1.3, // Annual
}

// Importance returns the position's fixed weighting factor.
// Out-of-range positions weigh 0 so that a misuse is visible, not fatal.
func (p Position) Importance() float64 {
	if p < PositionYear || p > PositionAnnual {
		return 0
	}

	return positionImportance[p]
}
