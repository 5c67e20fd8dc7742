package interaction

import (
	"fmt"

	"github.com/liuhe-dev/wuxing/almanac"
	"github.com/liuhe-dev/wuxing/hidden"
	"github.com/liuhe-dev/wuxing/symbol"
)

// Intensities scores the 10 relationship categories over every stem and
// hidden sub-stem of the chart. Each contribution is weighted by its
// pillar's positional importance, the seasonal multiplier of the
// contributing element and the stem's rooting gain; the whole vector is
// scaled by the geo factor at the end.
func Intensities(chart symbol.Chart, dayMaster symbol.Stem, opts Options) (IntensityVector, error) {
	var v IntensityVector
	if !dayMaster.Valid() {
		return v, fmt.Errorf("%w: day master", symbol.ErrUnknownStem)
	}

	month := chart.Month().Branch
	branches := chart.Branches()

	for i, p := range chart.Pillars() {
		importance := symbol.Position(i).Importance()

		// Surface stem: full weight, rooted wherever the chart roots it.
		gain := bestRooting(p.Stem, branches)
		if err := score(&v, dayMaster, p.Stem, almanac.HiddenWeightTotal, importance, month, gain); err != nil {
			return IntensityVector{}, err
		}

		// Hidden sub-stems: channel weight, rooted in their own branch.
		stems, err := resolveHidden(p.Branch, opts)
		if err != nil {
			return IntensityVector{}, err
		}
		for _, sw := range stems {
			gain, err = almanac.RootingGain(sw.Stem, p.Branch)
			if err != nil {
				return IntensityVector{}, err
			}
			if err = score(&v, dayMaster, sw.Stem, sw.Weight, importance, month, gain); err != nil {
				return IntensityVector{}, err
			}
		}
	}

	geo := opts.Geo
	if geo == 0 {
		geo = 1.0
	}
	for r := range v {
		v[r] *= geo
	}

	return v, nil
}

// score folds one stem contribution into its relation category.
func score(v *IntensityVector, dayMaster, s symbol.Stem, weight, importance float64, month symbol.Branch, gain float64) error {
	rel, err := RelationOf(dayMaster, s)
	if err != nil {
		return err
	}
	season, err := almanac.SeasonalMultiplier(month, s.Element())
	if err != nil {
		return err
	}
	v[rel] += weight * importance * season * gain

	return nil
}

// bestRooting returns the strongest rooting gain of stem s across the
// chart's branches: a stem counts as rooted wherever it co-occurs.
func bestRooting(s symbol.Stem, branches []symbol.Branch) float64 {
	best := almanac.RootingNone
	for _, b := range branches {
		gain, err := almanac.RootingGain(s, b)
		if err != nil {
			continue // branches come from a validated chart
		}
		if gain > best {
			best = gain
		}
	}

	return best
}

// resolveHidden picks the static or dynamic hidden-stem mode.
func resolveHidden(b symbol.Branch, opts Options) ([]almanac.StemWeight, error) {
	if opts.StaticWeights {
		return hidden.Static(b)
	}

	return hidden.Dynamic(b, opts.Progress)
}
