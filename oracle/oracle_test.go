package oracle_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuhe-dev/wuxing/almanac"
	"github.com/liuhe-dev/wuxing/arbiter"
	"github.com/liuhe-dev/wuxing/oracle"
	"github.com/liuhe-dev/wuxing/symbol"
	"github.com/liuhe-dev/wuxing/wave"
)

// referenceChart is the canonical 4-pillar fixture used across the
// pipeline tests: branches 子寅辰午 carry exactly one opposition (子午).
func referenceChart(t *testing.T) symbol.Chart {
	t.Helper()
	chart, err := symbol.ParseChart([]string{"甲子", "丙寅", "庚辰", "壬午"})
	require.NoError(t, err)

	return chart
}

// kindSet projects a reading's resolved interactions onto their kinds.
func kindSet(r oracle.Reading) map[almanac.InteractionKind]bool {
	out := make(map[almanac.InteractionKind]bool)
	for _, rec := range r.Interactions() {
		out[rec.Kind] = true
	}

	return out
}

// TestEvaluate_Deterministic runs the identical evaluation twice and
// demands byte-identical readings, unexported state included.
func TestEvaluate_Deterministic(t *testing.T) {
	chart := referenceChart(t)
	opts := []oracle.Option{
		oracle.WithScenario(arbiter.ScenarioCareer),
		oracle.WithInjection(symbol.BranchWei),
		oracle.WithGeoFactor(1.2),
	}

	r1, err := oracle.Evaluate(chart, symbol.StemGeng, opts...)
	require.NoError(t, err)
	r2, err := oracle.Evaluate(chart, symbol.StemGeng, opts...)
	require.NoError(t, err)

	diff := cmp.Diff(r1, r2, cmp.AllowUnexported(
		symbol.Chart{}, wave.FieldMap{}, arbiter.Result{}))
	assert.Empty(t, diff, "identical inputs must yield identical readings")
}

// TestEvaluate_ReferencePipeline sanity-checks every stage's output on
// the reference chart under default options.
func TestEvaluate_ReferencePipeline(t *testing.T) {
	r, err := oracle.Evaluate(referenceChart(t), symbol.StemGeng)
	require.NoError(t, err)

	assert.Positive(t, r.Field.Total().Amp, "a populated chart yields a live field")
	assert.True(t, r.Profile.Mode.Valid(), "profile carries a declared mode")
	assert.True(t, kindSet(r)[almanac.KindClash], "the 子午 opposition must surface")
	for rel, v := range r.Intensity {
		assert.GreaterOrEqual(t, v, 0.0, "intensity %d non-negative", rel)
	}

	// Every resolved record lands in exactly one tier bucket.
	var bucketed int
	for tier := arbiter.TierEnvironment; tier.Valid(); tier++ {
		bucketed += len(r.Arbitration.Tier(tier))
	}
	assert.Equal(t, len(r.Interactions()), bucketed)
}

// TestEvaluate_InjectionAndFusion: injecting 未 creates both the 午未
// combination and the 子未 harm; greedy fusion lets the combination
// suppress the harm, and disabling fusion restores it.
func TestEvaluate_InjectionAndFusion(t *testing.T) {
	chart := referenceChart(t)

	fused, err := oracle.Evaluate(chart, symbol.StemGeng,
		oracle.WithInjection(symbol.BranchWei))
	require.NoError(t, err)
	assert.True(t, kindSet(fused)[almanac.KindHarmonyPair])
	assert.False(t, kindSet(fused)[almanac.KindHarm], "fusion suppresses the harm")

	open, err := oracle.Evaluate(chart, symbol.StemGeng,
		oracle.WithInjection(symbol.BranchWei),
		oracle.WithGreedyFusion(false))
	require.NoError(t, err)
	assert.True(t, kindSet(open)[almanac.KindHarmonyPair])
	assert.True(t, kindSet(open)[almanac.KindHarm], "no fusion, harm survives")
}

// TestEvaluate_VoidDampsResonance compares void and non-void profiles.
func TestEvaluate_VoidDampsResonance(t *testing.T) {
	chart := referenceChart(t)

	plain, err := oracle.Evaluate(chart, symbol.StemGeng)
	require.NoError(t, err)
	void, err := oracle.Evaluate(chart, symbol.StemGeng, oracle.WithVoid())
	require.NoError(t, err)

	assert.LessOrEqual(t, void.Profile.Sync, plain.Profile.Sync)
	assert.Less(t, void.Profile.LockingRatio, plain.Profile.LockingRatio)
}

// TestEvaluate_InputErrors covers the façade's error contract.
func TestEvaluate_InputErrors(t *testing.T) {
	chart := referenceChart(t)

	_, err := oracle.Evaluate(chart, symbol.Stem(99))
	assert.ErrorIs(t, err, oracle.ErrBadDayMaster)

	_, err = oracle.Evaluate(symbol.Chart{}, symbol.StemGeng)
	assert.ErrorIs(t, err, symbol.ErrChartTooShort)

	_, err = oracle.Evaluate(chart, symbol.StemGeng,
		oracle.WithInjection(symbol.Branch(42)))
	assert.Error(t, err, "invalid injected branch is a data error")
}

// TestOptions_PanicOnAbuse: option constructors fail fast on
// programmer error.
func TestOptions_PanicOnAbuse(t *testing.T) {
	assert.Panics(t, func() { oracle.WithLogger(nil) })
	assert.Panics(t, func() { oracle.WithRegistry(nil) })
	assert.Panics(t, func() { oracle.WithGeoFactor(-1) })
}
