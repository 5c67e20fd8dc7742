package symbol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuhe-dev/wuxing/symbol"
)

// TestStem_ElementAndPolarity verifies the stem→element pairing and the
// yang/yin alternation across the whole alphabet.
func TestStem_ElementAndPolarity(t *testing.T) {
	assert.Equal(t, symbol.Wood, symbol.StemJia.Element(), "甲 is Wood")
	assert.Equal(t, symbol.Wood, symbol.StemYi.Element(), "乙 is Wood")
	assert.Equal(t, symbol.Metal, symbol.StemGeng.Element(), "庚 is Metal")
	assert.Equal(t, symbol.Water, symbol.StemGui.Element(), "癸 is Water")

	for s := symbol.StemJia; s <= symbol.StemGui; s++ {
		assert.Equal(t, s%2 == 0, s.Yang(), "polarity alternates: %v", s)
	}
}

// TestBranch_Element spot-checks the branch→element table.
func TestBranch_Element(t *testing.T) {
	assert.Equal(t, symbol.Water, symbol.BranchZi.Element())
	assert.Equal(t, symbol.Wood, symbol.BranchYin.Element())
	assert.Equal(t, symbol.Fire, symbol.BranchWu.Element())
	assert.Equal(t, symbol.Earth, symbol.BranchXu.Element())
	assert.Equal(t, symbol.Metal, symbol.BranchYou.Element())
}

// TestParsePillar_RoundTrip confirms parse → String is the identity on
// every canonical pillar code.
func TestParsePillar_RoundTrip(t *testing.T) {
	for s := symbol.StemJia; s <= symbol.StemGui; s++ {
		for b := symbol.BranchZi; b <= symbol.BranchHai; b++ {
			code := symbol.Pillar{Stem: s, Branch: b}.String()
			p, err := symbol.ParsePillar(code)
			require.NoError(t, err, "code %q", code)
			assert.Equal(t, code, p.String())
		}
	}
}

// TestParsePillar_Rejections verifies the parse sentinels.
func TestParsePillar_Rejections(t *testing.T) {
	_, err := symbol.ParsePillar("唉子")
	assert.ErrorIs(t, err, symbol.ErrUnknownStem, "non-stem first rune")

	_, err = symbol.ParsePillar("甲甲")
	assert.ErrorIs(t, err, symbol.ErrUnknownBranch, "stem rune in branch slot")

	_, err = symbol.ParsePillar("甲")
	assert.ErrorIs(t, err, symbol.ErrBadPillar, "too short")

	_, err = symbol.ParsePillar("甲子丑")
	assert.ErrorIs(t, err, symbol.ErrBadPillar, "too long")
}

// TestNewChart_LengthBounds checks the 2..6 validation window.
func TestNewChart_LengthBounds(t *testing.T) {
	one := []symbol.Pillar{{Stem: symbol.StemJia, Branch: symbol.BranchZi}}
	_, err := symbol.NewChart(one)
	assert.ErrorIs(t, err, symbol.ErrChartTooShort)

	seven := make([]symbol.Pillar, 7)
	_, err = symbol.NewChart(seven)
	assert.ErrorIs(t, err, symbol.ErrChartTooLong)

	four := symbol.MustParseChart([]string{"甲子", "丙寅", "庚辰", "壬午"})
	assert.Equal(t, 4, four.Len())
	assert.Equal(t, "丙寅", four.Month().String(), "month pillar at index 1")
}

// TestChart_Immutability confirms the constructor copies its input and
// accessors hand out copies, never internal state.
func TestChart_Immutability(t *testing.T) {
	src := []symbol.Pillar{
		{Stem: symbol.StemJia, Branch: symbol.BranchZi},
		{Stem: symbol.StemBing, Branch: symbol.BranchYin},
	}
	c, err := symbol.NewChart(src)
	require.NoError(t, err)

	src[0] = symbol.Pillar{Stem: symbol.StemGui, Branch: symbol.BranchHai}
	assert.Equal(t, "甲子", c.Pillar(0).String(), "constructor must copy input")

	out := c.Pillars()
	out[1] = symbol.Pillar{}
	assert.Equal(t, "丙寅", c.Pillar(1).String(), "accessor must return a copy")
}

// TestPosition_Importance verifies the month carries the highest weight
// and out-of-range positions weigh zero.
func TestPosition_Importance(t *testing.T) {
	for p := symbol.PositionYear; p <= symbol.PositionAnnual; p++ {
		if p == symbol.PositionMonth {
			continue
		}
		assert.Less(t, p.Importance(), symbol.PositionMonth.Importance(),
			"month importance dominates %v", p)
	}
	assert.Zero(t, symbol.Position(42).Importance())
}
