package symbol

import "fmt"

// Chart is an ordered pillar sequence: the four natal positions plus up
// to two overlays (decade-cycle, annual). Charts are validated once at
// construction and never mutated afterwards.
type Chart struct {
	pillars []Pillar
}

// NewChart validates the pillar sequence and wraps it into a Chart.
// Length must lie in [MinChartLen, MaxChartLen]; every stem and branch
// must belong to its alphabet. The input slice is copied.
func NewChart(pillars []Pillar) (Chart, error) {
	if len(pillars) < MinChartLen {
		return Chart{}, fmt.Errorf("%w: got %d", ErrChartTooShort, len(pillars))
	}
	if len(pillars) > MaxChartLen {
		return Chart{}, fmt.Errorf("%w: got %d", ErrChartTooLong, len(pillars))
	}
	for i, p := range pillars {
		if !p.Stem.Valid() {
			return Chart{}, fmt.Errorf("%w: pillar %d", ErrUnknownStem, i)
		}
		if !p.Branch.Valid() {
			return Chart{}, fmt.Errorf("%w: pillar %d", ErrUnknownBranch, i)
		}
	}

	cp := make([]Pillar, len(pillars))
	copy(cp, pillars)

	return Chart{pillars: cp}, nil
}

// Len returns the number of pillars in the chart.
func (c Chart) Len() int { return len(c.pillars) }

// Pillar returns the pillar at index i. Index must be < Len.
func (c Chart) Pillar(i int) Pillar { return c.pillars[i] }

// Pillars returns a fresh copy of the pillar sequence.
func (c Chart) Pillars() []Pillar {
	cp := make([]Pillar, len(c.pillars))
	copy(cp, c.pillars)

	return cp
}

// Month returns the month pillar (index 1). A validated chart always
// has one, since MinChartLen is 2.
func (c Chart) Month() Pillar { return c.pillars[PositionMonth] }

// Branches returns the raw branch sequence in chart order.
func (c Chart) Branches() []Branch {
	bs := make([]Branch, len(c.pillars))
	for i, p := range c.pillars {
		bs[i] = p.Branch
	}

	return bs
}

// String renders the chart as space-separated pillar codes.
func (c Chart) String() string {
	out := ""
	for i, p := range c.pillars {
		if i > 0 {
			out += " "
		}
		out += p.String()
	}

	return out
}
