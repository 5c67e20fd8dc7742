package field

import (
	"math"

	"github.com/liuhe-dev/wuxing/almanac"
	"github.com/liuhe-dev/wuxing/symbol"
	"github.com/liuhe-dev/wuxing/wave"
)

// Flux runs the fixed 3-iteration energy redistribution and returns the
// settled field. Each iteration applies the generation-cycle transfer,
// then the control-cycle interference, then re-saturates every element.
// Both sub-passes read a snapshot taken at their start, so the update
// order of elements cannot influence the result.
func Flux(f wave.FieldMap) wave.FieldMap {
	for i := 0; i < FluxIterations; i++ {
		f = generationPass(f)
		f = controlPass(f)
		f = saturate(f)
	}

	return f
}

// generationPass moves amplitude from each mother element to its
// generation successor. The transferred share is
// clip(0.4·mother/max(child, 0.5), 0.1, 0.7) of the mother's amplitude,
// carried at the mother's phase.
func generationPass(f wave.FieldMap) wave.FieldMap {
	snap := f
	var acc accumulator
	for _, e := range symbol.Elements() {
		p := snap.Get(e)
		acc[e].re += p.Re()
		acc[e].im += p.Im()
	}

	for _, e := range symbol.Elements() {
		mother := snap.Get(e)
		if mother.Amp == 0 {
			continue
		}
		child, err := almanac.GenerationSuccessor(e)
		if err != nil {
			continue // unreachable over the closed element enum
		}

		ratio := clip(generationGain*mother.Amp/math.Max(snap.Get(child).Amp, childFloor), transferMin, transferMax)
		amount := wave.NewPhasor(ratio*mother.Amp, mother.Phase)

		acc[e].re -= amount.Re()
		acc[e].im -= amount.Im()
		acc[child].re += amount.Re()
		acc[child].im += amount.Im()
	}

	return rebuild(acc, snap)
}

// controlPass applies the destructive interference along the control
// cycle: each controller injects a π-shifted term into its successor,
// scaled by the amplitude ratio across the pair's impedance.
func controlPass(f wave.FieldMap) wave.FieldMap {
	snap := f
	var acc accumulator
	for _, e := range symbol.Elements() {
		p := snap.Get(e)
		acc[e].re += p.Re()
		acc[e].im += p.Im()
	}

	for _, e := range symbol.Elements() {
		controller := snap.Get(e)
		if controller.Amp == 0 {
			continue
		}
		target, err := almanac.ControlSuccessor(e)
		if err != nil {
			continue // unreachable over the closed element enum
		}

		impedance := controller.Amp + snap.Get(target).Amp + epsImpedance
		strike := controlCoupling * controller.Amp * controller.Amp / impedance
		term := wave.NewPhasor(strike, controller.Phase+math.Pi)

		acc[target].re += term.Re()
		acc[target].im += term.Im()
	}

	return rebuild(acc, snap)
}

// rebuild converts accumulated rectangular sums back into a field,
// keeping each element's previous phase when its amplitude collapses
// to zero.
func rebuild(acc accumulator, prev wave.FieldMap) wave.FieldMap {
	var out wave.FieldMap
	for _, e := range symbol.Elements() {
		p := wave.FromRect(acc[e].re, acc[e].im)
		if p.Amp == 0 {
			p = wave.NewPhasor(0, prev.Get(e).Phase)
		}
		out.Set(e, p)
	}

	return out
}

// saturate reapplies the amplitude ceiling to every element.
func saturate(f wave.FieldMap) wave.FieldMap {
	var out wave.FieldMap
	for _, e := range symbol.Elements() {
		out.Set(e, wave.Saturation(f.Get(e), SaturationCeiling))
	}

	return out
}

// clip confines x to [lo, hi].
func clip(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}
