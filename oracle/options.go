package oracle

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/liuhe-dev/wuxing/arbiter"
	"github.com/liuhe-dev/wuxing/symbol"
)

// Option customizes one Evaluate run by mutating its config before the
// pipeline starts. Applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config carries the merged settings of one run.
type config struct {
	scenario      arbiter.Scenario
	geo           float64
	progress      float64
	staticWeights bool
	void          bool
	injected      []symbol.Branch
	registry      arbiter.Registry
	greedyFusion  bool
	log           *zap.Logger
}

// defaultConfig mirrors the stage defaults: GENERAL scenario, geo 1.0,
// progress 0.5, dynamic weights, greedy fusion on, no-op logger.
func defaultConfig() config {
	return config{
		scenario:     arbiter.ScenarioGeneral,
		geo:          1.0,
		progress:     0.5,
		greedyFusion: true,
		log:          zap.NewNop(),
	}
}

// WithScenario sets the run context used for affinity bonuses during
// arbitration. The zero value GENERAL grants no bonuses.
func WithScenario(s arbiter.Scenario) Option {
	return func(c *config) { c.scenario = s }
}

// WithGeoFactor sets the external multiplier applied to every ten-gods
// intensity. Panics on non-positive or non-finite values to surface
// programmer error early; the zero value means "unset" downstream, so
// an explicit zero is a mistake.
func WithGeoFactor(geo float64) Option {
	if geo <= 0 || math.IsNaN(geo) || math.IsInf(geo, 0) {
		panic(fmt.Sprintf("oracle: WithGeoFactor(%v)", geo))
	}
	return func(c *config) { c.geo = geo }
}

// WithProgress sets the time progress t of the dynamic hidden-stem
// resolver. Values outside [0,1] are clamped downstream; NaN panics.
func WithProgress(t float64) Option {
	if math.IsNaN(t) {
		panic("oracle: WithProgress(NaN)")
	}
	return func(c *config) { c.progress = t }
}

// WithStaticWeights bypasses the dynamic resolver and reads hidden-stem
// weights straight from the almanac table.
func WithStaticWeights() Option {
	return func(c *config) { c.staticWeights = true }
}

// WithVoid marks the day master as void, damping its resonance coupling.
func WithVoid() Option {
	return func(c *config) { c.void = true }
}

// WithInjection adds transient branches on top of the chart field before
// flux. Branch validity is checked by the pipeline, not here, so a bad
// injection is an error, not a panic. The slice is copied.
func WithInjection(branches ...symbol.Branch) Option {
	cp := append([]symbol.Branch(nil), branches...)
	return func(c *config) { c.injected = append(c.injected, cp...) }
}

// WithRegistry replaces the compiled-in arbitration registry. Panics on
// nil; pass arbiter.DefaultRegistry().Merge(overlay) to extend instead
// of replace.
func WithRegistry(r arbiter.Registry) Option {
	if r == nil {
		panic("oracle: WithRegistry(nil)")
	}
	return func(c *config) { c.registry = r }
}

// WithGreedyFusion toggles conflict suppression during arbitration.
func WithGreedyFusion(enabled bool) Option {
	return func(c *config) { c.greedyFusion = enabled }
}

// WithLogger attaches a structured logger for per-stage debug events.
// Panics on nil; the default is zap.NewNop().
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("oracle: WithLogger(nil)")
	}
	return func(c *config) { c.log = log }
}
