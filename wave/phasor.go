// Package wave implements phasor arithmetic for github.com/liuhe-dev/wuxing.
package wave

import "math"

// DefaultFrequency is the carrier frequency assigned by NewPhasor.
const DefaultFrequency = 1.0

// twoPi is the phase normalization modulus.
const twoPi = 2 * math.Pi

// Phasor is a complex-plane (amplitude, phase) value. Amplitude is
// always ≥ 0 and phase is normalized into [0, 2π); a negative input
// amplitude is folded into a π phase flip at construction.
type Phasor struct {
	Amp   float64
	Phase float64
	Freq  float64
}

// NewPhasor builds a normalized phasor at the default frequency.
func NewPhasor(amp, phase float64) Phasor {
	if amp < 0 {
		amp, phase = -amp, phase+math.Pi
	}

	return Phasor{Amp: amp, Phase: normalizePhase(phase), Freq: DefaultFrequency}
}

// FromRect recovers a phasor from rectangular coordinates.
// The zero vector maps to a zero-amplitude phasor at phase 0.
func FromRect(re, im float64) Phasor {
	amp := math.Hypot(re, im)
	if amp == 0 {
		return Phasor{Freq: DefaultFrequency}
	}

	return Phasor{Amp: amp, Phase: normalizePhase(math.Atan2(im, re)), Freq: DefaultFrequency}
}

// Re returns the real (in-phase) component.
func (p Phasor) Re() float64 { return p.Amp * math.Cos(p.Phase) }

// Im returns the imaginary (quadrature) component.
func (p Phasor) Im() float64 { return p.Amp * math.Sin(p.Phase) }

// Scale returns the phasor with amplitude multiplied by k ≥ 0; a
// negative k flips the phase by π, mirroring NewPhasor's convention.
func (p Phasor) Scale(k float64) Phasor {
	if k < 0 {
		return Phasor{Amp: p.Amp * -k, Phase: normalizePhase(p.Phase + math.Pi), Freq: p.Freq}
	}

	return Phasor{Amp: p.Amp * k, Phase: p.Phase, Freq: p.Freq}
}

// Shift returns the phasor rotated by delta radians.
func (p Phasor) Shift(delta float64) Phasor {
	return Phasor{Amp: p.Amp, Phase: normalizePhase(p.Phase + delta), Freq: p.Freq}
}

// Superposition returns the phasor recovered from the complex sum
// w1 + coupling·w2. Pure function; inputs are untouched.
func Superposition(w1, w2 Phasor, coupling float64) Phasor {
	out := FromRect(w1.Re()+coupling*w2.Re(), w1.Im()+coupling*w2.Im())
	if w1.Freq != 0 {
		out.Freq = w1.Freq
	}

	return out
}

// Saturation compresses the amplitude through ceiling·tanh(amp/ceiling),
// leaving phase and frequency unchanged. For any finite amplitude the
// output stays strictly below ceiling, and zero maps to zero. A
// non-positive ceiling returns the input unchanged.
func Saturation(w Phasor, ceiling float64) Phasor {
	if ceiling <= 0 {
		return w
	}

	amp := ceiling * math.Tanh(w.Amp/ceiling)
	// tanh rounds to exactly 1.0 for large finite inputs; keep the
	// strict bound by stepping one ulp below the ceiling.
	if amp >= ceiling {
		amp = math.Nextafter(ceiling, 0)
	}

	return Phasor{
		Amp:   amp,
		Phase: w.Phase,
		Freq:  w.Freq,
	}
}

// normalizePhase folds an angle into [0, 2π).
func normalizePhase(phase float64) float64 {
	phase = math.Mod(phase, twoPi)
	if phase < 0 {
		phase += twoPi
	}

	return phase
}
