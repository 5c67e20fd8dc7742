// Package hidden implements the hidden-stem weight resolver of
// github.com/liuhe-dev/wuxing.
package hidden

import (
	"math"

	"github.com/liuhe-dev/wuxing/almanac"
	"github.com/liuhe-dev/wuxing/symbol"
)

const (
	// channelPhaseStep is the waveform offset between adjacent channels.
	channelPhaseStep = math.Pi / 3

	// residualDamping scales the third (residual) channel's waveform.
	residualDamping = 0.6

	// epsWeight floors the renormalization denominator. With ≥2 channels
	// the waveform sum never drops below 0.5, so the floor only guards
	// against future table edits.
	epsWeight = 1e-9
)

// Static returns branch b's compiled-in hidden-stem weights in channel
// order (primary, secondary, residual).
func Static(b symbol.Branch) ([]almanac.StemWeight, error) {
	return almanac.HiddenStems(b)
}

// Dynamic returns branch b's hidden-stem weights at progress t ∈ [0,1].
// Channel i follows sin²(π·t + i·π/3); the residual channel is damped by
// residualDamping; the result is renormalized to sum to 10. A branch
// with a single hidden stem returns its full weight regardless of t.
func Dynamic(b symbol.Branch, t float64) ([]almanac.StemWeight, error) {
	stems, err := almanac.HiddenStems(b)
	if err != nil {
		return nil, err
	}
	if len(stems) == 1 {
		return stems, nil
	}

	t = clamp01(t)

	raw := make([]float64, len(stems))
	sum := 0.0
	for i := range stems {
		w := channelWave(t, i)
		if i == 2 {
			w *= residualDamping
		}
		raw[i] = w
		sum += w
	}
	if sum < epsWeight {
		sum = epsWeight
	}

	for i := range stems {
		stems[i].Weight = almanac.HiddenWeightTotal * raw[i] / sum
	}

	return stems, nil
}

// channelWave is the sin² waveform of channel i at progress t.
func channelWave(t float64, i int) float64 {
	s := math.Sin(math.Pi*t + float64(i)*channelPhaseStep)

	return s * s
}

// clamp01 confines t to the closed unit interval.
func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
