package field_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuhe-dev/wuxing/field"
	"github.com/liuhe-dev/wuxing/symbol"
	"github.com/liuhe-dev/wuxing/wave"
)

// referenceChart is the canonical 4-pillar fixture used across packages.
var referenceChart = symbol.MustParseChart([]string{"甲子", "丙寅", "庚辰", "壬午"})

// TestInitialize_BasicInvariants checks amplitude bounds and phase
// normalization over the whole field.
func TestInitialize_BasicInvariants(t *testing.T) {
	f, err := field.Initialize(referenceChart, field.DefaultOptions())
	require.NoError(t, err)

	for _, e := range symbol.Elements() {
		p := f.Get(e)
		assert.GreaterOrEqual(t, p.Amp, 0.0, "element %v", e)
		assert.Less(t, p.Amp, field.SaturationCeiling, "element %v saturated", e)
		assert.GreaterOrEqual(t, p.Phase, 0.0)
		assert.Less(t, p.Phase, 6.2831853072)
	}
}

// TestInitialize_Deterministic runs the constructor twice and demands a
// byte-identical field.
func TestInitialize_Deterministic(t *testing.T) {
	a, err := field.Initialize(referenceChart, field.DefaultOptions())
	require.NoError(t, err)
	b, err := field.Initialize(referenceChart, field.DefaultOptions())
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(dump(a), dump(b)))
}

// TestInitialize_ClashDampsParticipants compares a clashing chart with
// a clash-free sibling: the damped chart must carry strictly less total
// amplitude.
func TestInitialize_ClashDampsParticipants(t *testing.T) {
	// 子/午 clash in the reference chart. Swapping 午→未 removes it
	// (未 harms 子 but opposes 丑, which is absent).
	clashed := referenceChart
	clean := symbol.MustParseChart([]string{"甲子", "丙寅", "庚辰", "壬未"})

	fClashed, err := field.Initialize(clashed, field.DefaultOptions())
	require.NoError(t, err)
	fClean, err := field.Initialize(clean, field.DefaultOptions())
	require.NoError(t, err)

	assert.Less(t, totalAmp(fClashed), totalAmp(fClean),
		"clash damping must shrink the field")
}

// TestInitialize_StaticVsDynamicWeights verifies the two hidden-stem
// modes actually disagree away from trivial charts.
func TestInitialize_StaticVsDynamicWeights(t *testing.T) {
	static := field.DefaultOptions()
	static.StaticWeights = true
	dynamic := field.DefaultOptions()
	dynamic.Progress = 0.25

	a, err := field.Initialize(referenceChart, static)
	require.NoError(t, err)
	b, err := field.Initialize(referenceChart, dynamic)
	require.NoError(t, err)

	assert.NotEmpty(t, cmp.Diff(dump(a), dump(b)),
		"static and dynamic resolvers must differ on multi-channel branches")
}

// TestInject_EmptyIsIdentity confirms the injection hook is a no-op for
// an empty symbol list.
func TestInject_EmptyIsIdentity(t *testing.T) {
	f, err := field.Initialize(referenceChart, field.DefaultOptions())
	require.NoError(t, err)

	out, err := field.Inject(f, referenceChart.Month().Branch, nil, field.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(dump(f), dump(out)))
}

// TestInject_AddsBranchMatter verifies an injected branch raises its
// element's amplitude and rejects out-of-alphabet symbols.
func TestInject_AddsBranchMatter(t *testing.T) {
	f, err := field.Initialize(referenceChart, field.DefaultOptions())
	require.NoError(t, err)

	out, err := field.Inject(f, referenceChart.Month().Branch,
		[]symbol.Branch{symbol.BranchYou}, field.DefaultOptions())
	require.NoError(t, err)
	assert.Greater(t, out.Get(symbol.Metal).Amp, f.Get(symbol.Metal).Amp,
		"酉 injection feeds Metal")

	_, err = field.Inject(f, referenceChart.Month().Branch,
		[]symbol.Branch{symbol.Branch(77)}, field.DefaultOptions())
	assert.ErrorIs(t, err, symbol.ErrUnknownBranch)
}

// TestFlux_DeterministicAndBounded runs the simulator twice on the same
// field and checks determinism plus the post-iteration ceiling.
func TestFlux_DeterministicAndBounded(t *testing.T) {
	f, err := field.Initialize(referenceChart, field.DefaultOptions())
	require.NoError(t, err)

	a := field.Flux(f)
	b := field.Flux(f)
	assert.Empty(t, cmp.Diff(dump(a), dump(b)))

	for _, e := range symbol.Elements() {
		assert.Less(t, a.Get(e).Amp, field.SaturationCeiling, "element %v", e)
		assert.GreaterOrEqual(t, a.Get(e).Amp, 0.0)
	}
}

// TestFlux_ZeroFieldStaysZero feeds an all-zero field through the
// simulator: the degenerate input must survive unchanged and unerrored.
func TestFlux_ZeroFieldStaysZero(t *testing.T) {
	var zero wave.FieldMap

	out := field.Flux(zero)
	for _, e := range symbol.Elements() {
		assert.Zero(t, out.Get(e).Amp, "element %v", e)
	}
}

// TestFlux_MovesEnergyAlongGeneration seeds a single element and checks
// its generation child gains amplitude.
func TestFlux_MovesEnergyAlongGeneration(t *testing.T) {
	var f wave.FieldMap
	f.Set(symbol.Wood, wave.NewPhasor(10, 0))

	out := field.Flux(f)
	assert.Greater(t, out.Get(symbol.Fire).Amp, 0.0, "Wood feeds Fire")
	assert.Less(t, out.Get(symbol.Wood).Amp, 10.0, "the mother pays for it")
}

// dump flattens a field into a comparable map for cmp.Diff.
func dump(f wave.FieldMap) map[string][2]float64 {
	out := make(map[string][2]float64, symbol.NumElements)
	for _, e := range symbol.Elements() {
		p := f.Get(e)
		out[e.String()] = [2]float64{p.Amp, p.Phase}
	}

	return out
}

func totalAmp(f wave.FieldMap) float64 {
	sum := 0.0
	for _, e := range symbol.Elements() {
		sum += f.Get(e).Amp
	}

	return sum
}
