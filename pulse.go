// seehuhn.de/go/antialias - analytically filtered shading patterns
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package antialias

import "math"

// DomainError is the panic value used when a filter function is called
// with arguments outside its domain.
type DomainError struct {
	Func string
	Msg  string
}

func (err *DomainError) Error() string {
	return "antialias." + err.Func + ": " + err.Msg
}

// PulseTrain is an infinite periodic 0/1 step pattern.
// Within each period the pattern is 0 for the first Edge*Period units and 1
// for the rest, so the duty cycle is 1-Edge.
type PulseTrain struct {
	Edge   float64 // edge position as a fraction of the period, in [0, 1]
	Period float64 // must be > 0
}

// At returns the unfiltered value of the pattern at x.
func (p PulseTrain) At(x float64) float64 {
	t := x / p.Period
	if t-math.Floor(t) < p.Edge {
		return 0
	}
	return 1
}

// Filtered returns the average of the pattern over [x-dx/2, x+dx/2].
// See [FilteredPulseTrain].
func (p PulseTrain) Filtered(x, dx float64) float64 {
	return FilteredPulseTrain(p.Edge, p.Period, x, dx)
}

// FilteredPulseTrain returns the average of the pulse train with the given
// edge fraction and period over the interval of width dx centred at x.
//
// The result lies in [0, 1]. As dx approaches 0 it converges to the point
// value of the pattern at x, and for dx much larger than the period it
// converges to the duty cycle 1-edge.
//
// The function panics with a [*DomainError] if period or dx is not positive
// and finite, if x is not finite, or if edge is outside [0, 1]. Callers
// normally obtain dx from one of the filter width estimators, which never
// return zero.
func FilteredPulseTrain(edge, period, x, dx float64) float64 {
	switch {
	case !(period > 0) || math.IsInf(period, 0):
		panic(&DomainError{Func: "FilteredPulseTrain", Msg: "period must be positive and finite"})
	case !(dx > 0) || math.IsInf(dx, 0):
		panic(&DomainError{Func: "FilteredPulseTrain", Msg: "filter width must be positive and finite"})
	case math.IsNaN(x) || math.IsInf(x, 0):
		panic(&DomainError{Func: "FilteredPulseTrain", Msg: "sample position must be finite"})
	case !(edge >= 0 && edge <= 1):
		panic(&DomainError{Func: "FilteredPulseTrain", Msg: "edge must be in [0, 1]"})
	}

	// Normalise so that the period is 1, then move x into [0, 1).
	// The integral difference is invariant under whole-period shifts,
	// and a small t keeps x0 and x1 apart for large x.
	w := dx / period
	t := x / period
	t -= math.Floor(t)
	x0 := t - w/2
	x1 := x0 + w

	v := (pulseTrainIntegral(x1, edge) - pulseTrainIntegral(x0, edge)) / w
	return clamp01(v)
}

// pulseTrainIntegral is the definite integral from 0 to t of the unit-period
// pulse train with edge at nedge.
func pulseTrainIntegral(t, nedge float64) float64 {
	n := math.Floor(t)
	return (1-nedge)*n + max(0, t-n-nedge)
}

// Pulse is a single 0/1 step which is 1 on [Edge0, Edge1) and 0 elsewhere.
// Edge0 <= Edge1 is assumed.
type Pulse struct {
	Edge0, Edge1 float64
}

// At returns the unfiltered value of the pulse at x.
func (p Pulse) At(x float64) float64 {
	if x >= p.Edge0 && x < p.Edge1 {
		return 1
	}
	return 0
}

// Filtered returns the average of the pulse over [x-dx/2, x+dx/2].
// See [FilteredPulse].
func (p Pulse) Filtered(x, dx float64) float64 {
	return FilteredPulse(p.Edge0, p.Edge1, x, dx)
}

// FilteredPulse returns the fraction of the interval of width dx centred at
// x which overlaps [edge0, edge1). This is the box-filtered value of a
// single pulse.
//
// If edge0 > edge1 the result is 0. The function panics with a
// [*DomainError] if dx is not positive and finite, or if x is not finite.
func FilteredPulse(edge0, edge1, x, dx float64) float64 {
	switch {
	case !(dx > 0) || math.IsInf(dx, 0):
		panic(&DomainError{Func: "FilteredPulse", Msg: "filter width must be positive and finite"})
	case math.IsNaN(x) || math.IsInf(x, 0):
		panic(&DomainError{Func: "FilteredPulse", Msg: "sample position must be finite"})
	}

	x0 := x - dx/2
	x1 := x0 + dx
	overlap := min(x1, edge1) - max(x0, edge0)
	return clamp01(overlap / dx)
}

// clamp01 restricts v to [0, 1]. The closed-form integrals can overshoot
// by a few ulp.
func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
