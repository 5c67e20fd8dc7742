package oracle

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/liuhe-dev/wuxing/arbiter"
	"github.com/liuhe-dev/wuxing/field"
	"github.com/liuhe-dev/wuxing/interaction"
	"github.com/liuhe-dev/wuxing/resonance"
	"github.com/liuhe-dev/wuxing/symbol"
	"github.com/liuhe-dev/wuxing/wave"
)

// ErrBadDayMaster indicates a day-master stem outside the closed enum.
var ErrBadDayMaster = errors.New("oracle: invalid day master")

// Reading is the full pipeline output for one chart.
type Reading struct {
	// Chart and DayMaster echo the evaluated inputs.
	Chart     symbol.Chart
	DayMaster symbol.Stem
	// Field is the settled 5-element phasor field after flux.
	Field wave.FieldMap
	// Profile is the day master's stability evaluation.
	Profile resonance.Profile
	// Intensity is the ten-gods intensity vector.
	Intensity interaction.IntensityVector
	// Arbitration carries the resolved interactions and their tiers.
	Arbitration arbiter.Result
}

// Interactions returns the resolved, priority-ordered interaction list.
func (r Reading) Interactions() []interaction.Record {
	return r.Arbitration.Resolved
}

// Evaluate runs the whole engine on a chart: field construction,
// optional injection, flux, resonance, matching and arbitration.
// Identical inputs and options produce byte-identical Readings.
func Evaluate(chart symbol.Chart, dayMaster symbol.Stem, opts ...Option) (Reading, error) {
	if !dayMaster.Valid() {
		return Reading{}, fmt.Errorf("%w: %d", ErrBadDayMaster, dayMaster)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	fieldOpts := field.Options{Progress: cfg.progress, StaticWeights: cfg.staticWeights}
	f, err := field.Initialize(chart, fieldOpts)
	if err != nil {
		return Reading{}, fmt.Errorf("oracle: initialize: %w", err)
	}

	if len(cfg.injected) > 0 {
		f, err = field.Inject(f, chart.Month().Branch, cfg.injected, fieldOpts)
		if err != nil {
			return Reading{}, fmt.Errorf("oracle: inject: %w", err)
		}
	}

	f = field.Flux(f)
	cfg.log.Debug("field settled",
		zap.Float64("total", f.Total().Amp),
		zap.Stringer("dominant", f.Dominant()))

	profile := resonance.Evaluate(f, dayMaster, cfg.void)
	cfg.log.Debug("resonance evaluated", zap.Stringer("profile", profile))

	records, intensity, err := interaction.Match(chart, dayMaster, cfg.injected, interaction.Options{
		Geo:           cfg.geo,
		Progress:      cfg.progress,
		StaticWeights: cfg.staticWeights,
	})
	if err != nil {
		return Reading{}, fmt.Errorf("oracle: match: %w", err)
	}

	result := arbiter.Resolve(records, arbiter.Options{
		Scenario:     cfg.scenario,
		GreedyFusion: cfg.greedyFusion,
		Registry:     cfg.registry,
	})
	cfg.log.Debug("arbitration done",
		zap.Int("matched", len(records)),
		zap.Int("resolved", len(result.Resolved)))

	return Reading{
		Chart:       chart,
		DayMaster:   dayMaster,
		Field:       f,
		Profile:     profile,
		Intensity:   intensity,
		Arbitration: result,
	}, nil
}
