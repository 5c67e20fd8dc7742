// Package resonance defines the stability profile types for the
// resonance subpackage of github.com/liuhe-dev/wuxing.
package resonance

import "fmt"

// Mode is the discrete stability regime of the field.
type Mode int

const (
	// ModeDamped: the field and self neither lock nor cancel.
	ModeDamped Mode = iota
	// ModeCoherent: strong locking with high phase sync.
	ModeCoherent
	// ModeBeating: strong locking with partial sync — periodic exchange.
	ModeBeating
	// ModeAnnihilation: near-antiphase cancellation.
	ModeAnnihilation
)

// Valid reports whether m is a declared mode.
func (m Mode) Valid() bool { return m >= ModeDamped && m <= ModeAnnihilation }

// modeNames maps Mode to its canonical name.
var modeNames = [...]string{"DAMPED", "COHERENT", "BEATING", "ANNIHILATION"}

// String returns the canonical mode name.
func (m Mode) String() string {
	if m < ModeDamped || m > ModeAnnihilation {
		return "Mode(?)"
	}

	return modeNames[m]
}

// Profile is the immutable outcome of Evaluate.
type Profile struct {
	// Mode is the discrete stability regime.
	Mode Mode
	// Sync ∈ [0,1] measures self/field phase alignment.
	Sync float64
	// LockingRatio ≥ 0 measures how strongly the field captures the self.
	LockingRatio float64
	// Brittleness ∈ [0,1] grows inside the over-synchronized band.
	Brittleness float64
	// Fragmentation ≥ 0 is the normalized phase scatter of the loud elements.
	Fragmentation float64
	// FlowEfficiency ≥ 0 is the effective throughput of the regime.
	FlowEfficiency float64
	// IsFollow marks the follow regime: the self rides the field.
	IsFollow bool
}

// String renders the profile's headline numbers for report layers.
func (p Profile) String() string {
	return fmt.Sprintf("%s sync=%.3f lock=%.3f flow=%.3f follow=%t",
		p.Mode, p.Sync, p.LockingRatio, p.FlowEfficiency, p.IsFollow)
}
