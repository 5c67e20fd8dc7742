package wave

import "github.com/liuhe-dev/wuxing/symbol"

// FieldMap holds one phasor per element — exactly 5 fixed keys. The
// zero value is a valid all-zero-amplitude field. FieldMap is a small
// value type; pass it by value and use the pointer receivers only for
// in-place construction.
type FieldMap struct {
	phasors [symbol.NumElements]Phasor
}

// Get returns the phasor stored under element e. An invalid element
// yields a zero phasor rather than panicking; field keys are closed.
func (f FieldMap) Get(e symbol.Element) Phasor {
	if !e.Valid() {
		return Phasor{}
	}

	return f.phasors[e]
}

// Set stores p under element e. Invalid elements are ignored: keys can
// never be added beyond the fixed five.
func (f *FieldMap) Set(e symbol.Element, p Phasor) {
	if !e.Valid() {
		return
	}
	f.phasors[e] = p
}

// Total returns the vector sum of all 5 phasors.
func (f FieldMap) Total() Phasor {
	re, im := 0.0, 0.0
	for _, p := range f.phasors {
		re += p.Re()
		im += p.Im()
	}

	return FromRect(re, im)
}

// SumExcept returns the vector sum of every phasor except element e's.
func (f FieldMap) SumExcept(e symbol.Element) Phasor {
	re, im := 0.0, 0.0
	for i, p := range f.phasors {
		if symbol.Element(i) == e {
			continue
		}
		re += p.Re()
		im += p.Im()
	}

	return FromRect(re, im)
}

// Dominant returns the element carrying the largest amplitude. Ties
// resolve to the earlier element in canonical order, keeping the result
// deterministic.
func (f FieldMap) Dominant() symbol.Element {
	best := symbol.Wood
	for _, e := range symbol.Elements() {
		if f.phasors[e].Amp > f.phasors[best].Amp {
			best = e
		}
	}

	return best
}

// Clone returns an independent copy of the field.
func (f FieldMap) Clone() FieldMap { return f }
