package wave_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuhe-dev/wuxing/symbol"
	"github.com/liuhe-dev/wuxing/wave"
)

// TestNewPhasor_Normalization checks amplitude sign folding and phase
// wrapping into [0, 2π).
func TestNewPhasor_Normalization(t *testing.T) {
	p := wave.NewPhasor(-2, 0)
	assert.Equal(t, 2.0, p.Amp, "negative amplitude folds positive")
	assert.InDelta(t, math.Pi, p.Phase, 1e-12, "fold flips phase by π")

	p = wave.NewPhasor(1, -math.Pi/2)
	assert.InDelta(t, 3*math.Pi/2, p.Phase, 1e-12, "negative phase wraps")

	p = wave.NewPhasor(1, 5*math.Pi)
	assert.InDelta(t, math.Pi, p.Phase, 1e-12, "large phase wraps")
	assert.Equal(t, wave.DefaultFrequency, p.Freq)
}

// TestRectRoundTrip verifies polar → rect → polar is the identity.
func TestRectRoundTrip(t *testing.T) {
	for _, phase := range []float64{0, 1, math.Pi / 3, math.Pi, 5.5} {
		p := wave.NewPhasor(3.25, phase)
		back := wave.FromRect(p.Re(), p.Im())
		assert.InDelta(t, p.Amp, back.Amp, 1e-9)
		assert.InDelta(t, p.Phase, back.Phase, 1e-9, "phase %v", phase)
	}

	zero := wave.FromRect(0, 0)
	assert.Zero(t, zero.Amp)
	assert.Zero(t, zero.Phase)
}

// TestSuperposition_Basics checks in-phase addition, cancellation and
// coupling scaling.
func TestSuperposition_Basics(t *testing.T) {
	a := wave.NewPhasor(1, 0)
	b := wave.NewPhasor(1, 0)

	sum := wave.Superposition(a, b, 1)
	assert.InDelta(t, 2.0, sum.Amp, 1e-12, "in-phase amplitudes add")

	opp := wave.NewPhasor(1, math.Pi)
	cancel := wave.Superposition(a, opp, 1)
	assert.InDelta(t, 0.0, cancel.Amp, 1e-12, "antiphase cancels")

	half := wave.Superposition(a, b, 0.5)
	assert.InDelta(t, 1.5, half.Amp, 1e-12, "coupling scales the second wave")

	// Purity: inputs untouched.
	assert.Equal(t, 1.0, a.Amp)
	assert.Equal(t, 1.0, b.Amp)
}

// TestSaturation_CeilingContract: Saturation guarantees output <
// ceiling for any finite input and maps zero to zero, with phase
// untouched. The huge amplitudes pin the strict bound where tanh
// itself rounds to 1.
func TestSaturation_CeilingContract(t *testing.T) {
	const ceiling = 100.0

	for _, amp := range []float64{0.5, 1, 50, 99, 100, 1000, 1e9, 1e300} {
		in := wave.NewPhasor(amp, 1.25)
		out := wave.Saturation(in, ceiling)
		assert.Less(t, out.Amp, ceiling, "amp %v must stay below ceiling", amp)
		assert.GreaterOrEqual(t, out.Amp, 0.0)
		assert.Equal(t, in.Phase, out.Phase, "phase unchanged")
	}

	zero := wave.Saturation(wave.NewPhasor(0, 2), ceiling)
	assert.Zero(t, zero.Amp, "zero maps to zero")

	// Small amplitudes pass nearly unchanged (tanh x ≈ x near 0).
	small := wave.Saturation(wave.NewPhasor(0.001, 0), ceiling)
	assert.InDelta(t, 0.001, small.Amp, 1e-9)
}

// TestFieldMap_FixedKeys confirms keys are closed: invalid elements
// read zero and writes to them are dropped.
func TestFieldMap_FixedKeys(t *testing.T) {
	var f wave.FieldMap
	f.Set(symbol.Fire, wave.NewPhasor(3, 1))
	assert.Equal(t, 3.0, f.Get(symbol.Fire).Amp)

	f.Set(symbol.Element(9), wave.NewPhasor(5, 0))
	assert.Zero(t, f.Get(symbol.Element(9)).Amp, "invalid key reads zero")
}

// TestFieldMap_TotalAndSumExcept verifies the vector-sum helpers agree.
func TestFieldMap_TotalAndSumExcept(t *testing.T) {
	var f wave.FieldMap
	f.Set(symbol.Wood, wave.NewPhasor(1, 0))
	f.Set(symbol.Fire, wave.NewPhasor(2, 0))
	f.Set(symbol.Water, wave.NewPhasor(3, math.Pi))

	total := f.Total()
	rest := f.SumExcept(symbol.Wood)
	joined := wave.Superposition(rest, f.Get(symbol.Wood), 1)
	require.InDelta(t, total.Amp, joined.Amp, 1e-9)
	assert.InDelta(t, 0.0, total.Amp, 1e-9, "1+2-3 cancels on the real axis")
}

// TestFieldMap_Dominant checks the deterministic tie-break toward the
// earlier canonical element.
func TestFieldMap_Dominant(t *testing.T) {
	var f wave.FieldMap
	f.Set(symbol.Earth, wave.NewPhasor(4, 0))
	f.Set(symbol.Metal, wave.NewPhasor(4, 1))
	assert.Equal(t, symbol.Earth, f.Dominant(), "tie resolves to earlier element")

	f.Set(symbol.Metal, wave.NewPhasor(5, 1))
	assert.Equal(t, symbol.Metal, f.Dominant())
}
