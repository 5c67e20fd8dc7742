package almanac

import "github.com/liuhe-dev/wuxing/symbol"

// BranchTriad is a 3-branch structural relation and the element the
// completed combination transforms into.
type BranchTriad struct {
	Members [3]symbol.Branch
	Element symbol.Element
}

// BranchPair is a 2-branch structural relation. Element is meaningful
// only for harmony pairs (the transformation target); clash, punishment
// and harm pairs leave it at the first member's element.
type BranchPair struct {
	A, B    symbol.Branch
	Element symbol.Element
}

// seasonalTriads are the four directional 3-branch combinations (三会):
// each spans one season and transforms into that season's element.
var seasonalTriads = []BranchTriad{
	{Members: [3]symbol.Branch{symbol.BranchYin, symbol.BranchMao, symbol.BranchChen}, Element: symbol.Wood},
	{Members: [3]symbol.Branch{symbol.BranchSi, symbol.BranchWu, symbol.BranchWei}, Element: symbol.Fire},
	{Members: [3]symbol.Branch{symbol.BranchShen, symbol.BranchYou, symbol.BranchXu}, Element: symbol.Metal},
	{Members: [3]symbol.Branch{symbol.BranchHai, symbol.BranchZi, symbol.BranchChou}, Element: symbol.Water},
}

// harmonyTriads are the four harmonic 3-branch combinations (三合).
var harmonyTriads = []BranchTriad{
	{Members: [3]symbol.Branch{symbol.BranchShen, symbol.BranchZi, symbol.BranchChen}, Element: symbol.Water},
	{Members: [3]symbol.Branch{symbol.BranchHai, symbol.BranchMao, symbol.BranchWei}, Element: symbol.Wood},
	{Members: [3]symbol.Branch{symbol.BranchYin, symbol.BranchWu, symbol.BranchXu}, Element: symbol.Fire},
	{Members: [3]symbol.Branch{symbol.BranchSi, symbol.BranchYou, symbol.BranchChou}, Element: symbol.Metal},
}

// harmonyPairs are the six 2-branch combinations (六合) with their
// transformation elements.
var harmonyPairs = []BranchPair{
	{A: symbol.BranchZi, B: symbol.BranchChou, Element: symbol.Earth},
	{A: symbol.BranchYin, B: symbol.BranchHai, Element: symbol.Wood},
	{A: symbol.BranchMao, B: symbol.BranchXu, Element: symbol.Fire},
	{A: symbol.BranchChen, B: symbol.BranchYou, Element: symbol.Metal},
	{A: symbol.BranchSi, B: symbol.BranchShen, Element: symbol.Water},
	{A: symbol.BranchWu, B: symbol.BranchWei, Element: symbol.Fire},
}

// clashPairs are the six oppositions (六冲): branches 6 apart.
var clashPairs = []BranchPair{
	{A: symbol.BranchZi, B: symbol.BranchWu, Element: symbol.Water},
	{A: symbol.BranchChou, B: symbol.BranchWei, Element: symbol.Earth},
	{A: symbol.BranchYin, B: symbol.BranchShen, Element: symbol.Wood},
	{A: symbol.BranchMao, B: symbol.BranchYou, Element: symbol.Wood},
	{A: symbol.BranchChen, B: symbol.BranchXu, Element: symbol.Earth},
	{A: symbol.BranchSi, B: symbol.BranchHai, Element: symbol.Fire},
}

// punishmentTriads are the two 3-branch punishment groups (三刑).
var punishmentTriads = []BranchTriad{
	{Members: [3]symbol.Branch{symbol.BranchYin, symbol.BranchSi, symbol.BranchShen}, Element: symbol.Fire},
	{Members: [3]symbol.Branch{symbol.BranchChou, symbol.BranchXu, symbol.BranchWei}, Element: symbol.Earth},
}

// rudePunishmentPair is the single 2-branch punishment (子卯).
var rudePunishmentPair = BranchPair{A: symbol.BranchZi, B: symbol.BranchMao, Element: symbol.Water}

// selfPunishing lists the four branches that punish their own repeats (自刑).
var selfPunishing = []symbol.Branch{
	symbol.BranchChen, symbol.BranchWu, symbol.BranchYou, symbol.BranchHai,
}

// harmPairs are the six 2-branch harm relations (六害).
var harmPairs = []BranchPair{
	{A: symbol.BranchZi, B: symbol.BranchWei, Element: symbol.Water},
	{A: symbol.BranchChou, B: symbol.BranchWu, Element: symbol.Earth},
	{A: symbol.BranchYin, B: symbol.BranchSi, Element: symbol.Wood},
	{A: symbol.BranchMao, B: symbol.BranchChen, Element: symbol.Wood},
	{A: symbol.BranchShen, B: symbol.BranchHai, Element: symbol.Metal},
	{A: symbol.BranchYou, B: symbol.BranchXu, Element: symbol.Metal},
}

// SeasonalTriads returns a copy of the four directional combinations.
func SeasonalTriads() []BranchTriad { return copyTriads(seasonalTriads) }

// HarmonyTriads returns a copy of the four harmonic combinations.
func HarmonyTriads() []BranchTriad { return copyTriads(harmonyTriads) }

// HarmonyPairs returns a copy of the six 2-branch combinations.
func HarmonyPairs() []BranchPair { return copyPairs(harmonyPairs) }

// ClashPairs returns a copy of the six oppositions.
func ClashPairs() []BranchPair { return copyPairs(clashPairs) }

// PunishmentTriads returns a copy of the two 3-branch punishment groups.
func PunishmentTriads() []BranchTriad { return copyTriads(punishmentTriads) }

// RudePunishmentPair returns the 子卯 punishment pair.
func RudePunishmentPair() BranchPair { return rudePunishmentPair }

// SelfPunishing returns a copy of the branches that punish their repeats.
func SelfPunishing() []symbol.Branch {
	cp := make([]symbol.Branch, len(selfPunishing))
	copy(cp, selfPunishing)

	return cp
}

// HarmPairs returns a copy of the six harm relations.
func HarmPairs() []BranchPair { return copyPairs(harmPairs) }

// InClash reports whether branch b participates in any opposition, and
// with which opponent.
func InClash(b symbol.Branch) (symbol.Branch, bool) {
	for _, p := range clashPairs {
		if p.A == b {
			return p.B, true
		}
		if p.B == b {
			return p.A, true
		}
	}

	return 0, false
}

func copyTriads(src []BranchTriad) []BranchTriad {
	cp := make([]BranchTriad, len(src))
	copy(cp, src)

	return cp
}

func copyPairs(src []BranchPair) []BranchPair {
	cp := make([]BranchPair, len(src))
	copy(cp, src)

	return cp
}
