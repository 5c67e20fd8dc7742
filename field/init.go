package field

import (
	"fmt"

	"github.com/liuhe-dev/wuxing/almanac"
	"github.com/liuhe-dev/wuxing/hidden"
	"github.com/liuhe-dev/wuxing/symbol"
	"github.com/liuhe-dev/wuxing/wave"
)

// accumulator collects complex contributions per element before the
// final polar decomposition.
type accumulator [symbol.NumElements]struct{ re, im float64 }

// add folds amplitude amp at element e's table phase into the sum.
func (a *accumulator) add(e symbol.Element, amp float64) error {
	phase, err := almanac.PhaseOf(e)
	if err != nil {
		return err
	}
	p := wave.NewPhasor(amp, phase)
	a[e].re += p.Re()
	a[e].im += p.Im()

	return nil
}

// settle decomposes the sums into a saturated FieldMap. Elements that
// accumulated nothing keep their table phase at zero amplitude.
func (a *accumulator) settle() (wave.FieldMap, error) {
	var f wave.FieldMap
	for _, e := range symbol.Elements() {
		p := wave.FromRect(a[e].re, a[e].im)
		if p.Amp == 0 {
			phase, err := almanac.PhaseOf(e)
			if err != nil {
				return wave.FieldMap{}, err
			}
			p = wave.NewPhasor(0, phase)
		}
		f.Set(e, wave.Saturation(p, SaturationCeiling))
	}

	return f, nil
}

// Initialize builds the element field from a chart in two passes:
// clash flagging first, damped complex accumulation second.
func Initialize(chart symbol.Chart, opts Options) (wave.FieldMap, error) {
	// A zero-value Chart bypasses the constructor's length check.
	if chart.Len() < symbol.MinChartLen {
		return wave.FieldMap{}, fmt.Errorf("field: %w", symbol.ErrChartTooShort)
	}

	flagged := clashFlags(chart)
	month := chart.Month().Branch

	var acc accumulator
	for i, p := range chart.Pillars() {
		pos := symbol.Position(i)
		if err := accumulatePillar(&acc, p, pos.Importance(), month, flagged[i], opts); err != nil {
			return wave.FieldMap{}, err
		}
	}

	return acc.settle()
}

// clashFlags is pass 1: it marks every pillar index whose branch stands
// in opposition to another pillar's branch. The scan reads only raw,
// undamped branches.
func clashFlags(chart symbol.Chart) []bool {
	branches := chart.Branches()
	flagged := make([]bool, len(branches))
	for i, b := range branches {
		opp, ok := almanac.InClash(b)
		if !ok {
			continue
		}
		for j, other := range branches {
			if j != i && other == opp {
				flagged[i] = true
				break
			}
		}
	}

	return flagged
}

// accumulatePillar is one pillar's share of pass 2.
func accumulatePillar(acc *accumulator, p symbol.Pillar, importance float64, month symbol.Branch, clashed bool, opts Options) error {
	// Stem contribution.
	stemElem := p.Stem.Element()
	season, err := almanac.SeasonalMultiplier(month, stemElem)
	if err != nil {
		return err
	}
	stemAmp := baseScore * importance * season
	if clashed {
		stemAmp *= clashStemDamping
	}
	if err = acc.add(stemElem, stemAmp); err != nil {
		return err
	}

	return accumulateBranch(acc, p.Branch, importance, month, clashed, opts)
}

// accumulateBranch folds a branch's principal element plus its hidden
// sub-stems into the sums. Shared by pillar accumulation and Inject.
func accumulateBranch(acc *accumulator, b symbol.Branch, importance float64, month symbol.Branch, clashed bool, opts Options) error {
	damping := 1.0
	if clashed {
		damping = clashBranchDamping
	}

	branchElem := b.Element()
	season, err := almanac.SeasonalMultiplier(month, branchElem)
	if err != nil {
		return err
	}
	if err = acc.add(branchElem, baseScore*importance*branchBoost*season*damping); err != nil {
		return err
	}

	stems, err := resolveHidden(b, opts)
	if err != nil {
		return err
	}
	for _, sw := range stems {
		subElem := sw.Stem.Element()
		season, err = almanac.SeasonalMultiplier(month, subElem)
		if err != nil {
			return err
		}
		fraction := sw.Weight / almanac.HiddenWeightTotal
		if err = acc.add(subElem, baseScore*importance*branchBoost*season*fraction*damping); err != nil {
			return err
		}
	}

	return nil
}

// resolveHidden picks the static or dynamic hidden-stem mode.
func resolveHidden(b symbol.Branch, opts Options) ([]almanac.StemWeight, error) {
	if opts.StaticWeights {
		return hidden.Static(b)
	}

	return hidden.Dynamic(b, opts.Progress)
}

// Inject merges extra branch symbols into an existing field — the
// pre-flux injection hook of the pipeline. Injected symbols weigh like
// a year pillar and are never clash-damped: they arrive after pass 1.
func Inject(f wave.FieldMap, month symbol.Branch, injected []symbol.Branch, opts Options) (wave.FieldMap, error) {
	if len(injected) == 0 {
		return f, nil
	}

	var acc accumulator
	for _, e := range symbol.Elements() {
		p := f.Get(e)
		acc[e].re += p.Re()
		acc[e].im += p.Im()
	}
	for _, b := range injected {
		if !b.Valid() {
			return wave.FieldMap{}, symbol.ErrUnknownBranch
		}
		if err := accumulateBranch(&acc, b, injectionImportance, month, false, opts); err != nil {
			return wave.FieldMap{}, err
		}
	}

	return acc.settle()
}
