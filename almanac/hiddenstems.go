package almanac

import (
	"fmt"

	"github.com/liuhe-dev/wuxing/symbol"
)

// HiddenWeightTotal is the fixed per-branch weight budget: every
// branch's hidden-stem weights sum to exactly this value.
const HiddenWeightTotal = 10.0

// Rooting gains keyed on which hidden channel (if any) carries the stem
// inside a branch. The values are the closed {0.5, 1.2, 1.5, 2.0} set.
const (
	RootingPrimary   = 2.0 // stem is the branch's principal hidden stem
	RootingSecondary = 1.5 // stem sits in the secondary channel
	RootingResidual  = 1.2 // stem sits in the residual channel
	RootingNone      = 0.5 // stem has no root in the branch
)

// hiddenTable lists each branch's hidden stems in channel order
// primary, secondary, residual. Weights sum to HiddenWeightTotal.
var hiddenTable = [symbol.NumBranches][]StemWeight{
	symbol.BranchZi:   {{symbol.StemGui, 10}},
	symbol.BranchChou: {{symbol.StemJi, 6}, {symbol.StemGui, 2}, {symbol.StemXin, 2}},
	symbol.BranchYin:  {{symbol.StemJia, 6}, {symbol.StemBing, 3}, {symbol.StemWu, 1}},
	symbol.BranchMao:  {{symbol.StemYi, 10}},
	symbol.BranchChen: {{symbol.StemWu, 6}, {symbol.StemYi, 2}, {symbol.StemGui, 2}},
	symbol.BranchSi:   {{symbol.StemBing, 6}, {symbol.StemGeng, 3}, {symbol.StemWu, 1}},
	symbol.BranchWu:   {{symbol.StemDing, 7}, {symbol.StemJi, 3}},
	symbol.BranchWei:  {{symbol.StemJi, 6}, {symbol.StemDing, 2}, {symbol.StemYi, 2}},
	symbol.BranchShen: {{symbol.StemGeng, 6}, {symbol.StemRen, 3}, {symbol.StemWu, 1}},
	symbol.BranchYou:  {{symbol.StemXin, 10}},
	symbol.BranchXu:   {{symbol.StemWu, 6}, {symbol.StemXin, 2}, {symbol.StemDing, 2}},
	symbol.BranchHai:  {{symbol.StemRen, 7}, {symbol.StemJia, 3}},
}

// HiddenStems returns branch b's hidden stems in channel order
// (primary, secondary, residual). The slice is freshly allocated.
func HiddenStems(b symbol.Branch) ([]StemWeight, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: branch %d", ErrNoTableEntry, int(b))
	}

	src := hiddenTable[b]
	cp := make([]StemWeight, len(src))
	copy(cp, src)

	return cp, nil
}

// RootingGain returns the stem/branch co-occurrence gain: how firmly
// stem s is rooted in branch b's hidden channels.
func RootingGain(s symbol.Stem, b symbol.Branch) (float64, error) {
	if !s.Valid() {
		return 0, fmt.Errorf("%w: stem %d", ErrNoTableEntry, int(s))
	}
	if !b.Valid() {
		return 0, fmt.Errorf("%w: branch %d", ErrNoTableEntry, int(b))
	}

	for i, sw := range hiddenTable[b] {
		if sw.Stem != s {
			continue
		}
		switch i {
		case 0:
			return RootingPrimary, nil
		case 1:
			return RootingSecondary, nil
		default:
			return RootingResidual, nil
		}
	}

	return RootingNone, nil
}
