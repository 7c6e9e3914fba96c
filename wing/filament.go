// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wing

import "math"

// filament kinds
const (
	BoundSegment    = iota // bound vortex along the quarter-chord line
	TrailingSegment        // finite trailing segment from quarter-chord to trailing edge
	TrailingSemiInf        // semi-infinite trailing filament along the freestream
)

// underflow guard for the Biot-Savart kernels
const epsAbs = 1e-20

// Filament is one vortex filament of a panel's horseshoe system. Segment
// kinds use P1 and P2; the semi-infinite kind uses Pivot, the freestream
// unit direction Dir (rewritten whenever the inflow changes), the
// circulation sense Sign and the reference length RefLen used to scale the
// viscous core.
type Filament struct {
	Kind   int       // BoundSegment, TrailingSegment or TrailingSemiInf
	P1     []float64 // segment start
	P2     []float64 // segment end
	Pivot  []float64 // semi-infinite anchor
	Dir    []float64 // semi-infinite unit direction (freestream)
	Sign   float64   // +1: from pivot to infinity; -1: from infinity to pivot
	RefLen float64   // core-radius reference length for the semi-infinite kind
}

// AddVel adds to v the velocity induced at point p by the filament carrying
// circulation γ. coreFrac is the Rankine core radius as a fraction of the
// filament (or reference) length. No heap allocation.
func (o *Filament) AddVel(v, p []float64, γ, coreFrac float64) {
	if o.Kind == TrailingSemiInf {
		velSemiInf(v, p, o.Pivot, o.Dir, o.Sign*γ, coreFrac*o.RefLen)
		return
	}
	velSegment(v, p, o.P1, o.P2, γ, coreFrac)
}

// velSegment adds to v the velocity induced at p by a straight vortex
// segment from p1 to p2 with circulation γ, using a Rankine (solid-body)
// core of radius coreFrac·‖p2−p1‖
func velSegment(v, p, p1, p2 []float64, γ, coreFrac float64) {
	var r1, r2, r0, rx [3]float64
	for i := 0; i < 3; i++ {
		r1[i] = p[i] - p1[i]
		r2[i] = p[i] - p2[i]
		r0[i] = p2[i] - p1[i]
	}
	r1n := math.Sqrt(r1[0]*r1[0] + r1[1]*r1[1] + r1[2]*r1[2])
	r2n := math.Sqrt(r2[0]*r2[0] + r2[1]*r2[1] + r2[2]*r2[2])
	r0n := math.Sqrt(r0[0]*r0[0] + r0[1]*r0[1] + r0[2]*r0[2])
	if r0n < epsAbs {
		return
	}
	ρ := coreFrac * r0n
	if ρ < epsAbs {
		ρ = epsAbs
	}
	if r1n < ρ || r2n < ρ {
		return
	}
	rx[0] = r1[1]*r2[2] - r1[2]*r2[1]
	rx[1] = r1[2]*r2[0] - r1[0]*r2[2]
	rx[2] = r1[0]*r2[1] - r1[1]*r2[0]
	rxn2 := rx[0]*rx[0] + rx[1]*rx[1] + rx[2]*rx[2]
	if rxn2 < epsAbs*epsAbs {
		return
	}
	dot := r0[0]*(r1[0]/r1n-r2[0]/r2n) + r0[1]*(r1[1]/r1n-r2[1]/r2n) + r0[2]*(r1[2]/r1n-r2[2]/r2n)
	k := γ / (4.0 * math.Pi) * dot / rxn2
	d := math.Sqrt(rxn2) / r0n // perpendicular distance from p to the filament line
	if d < ρ {
		k *= (d / ρ) * (d / ρ)
	}
	v[0] += k * rx[0]
	v[1] += k * rx[1]
	v[2] += k * rx[2]
}

// velSemiInf adds to v the velocity induced at p by a semi-infinite vortex
// filament leaving pivot along the unit direction û with circulation γ
// (positive flowing towards infinity), with a Rankine core of radius core on
// the perpendicular distance from p to the ray
func velSemiInf(v, p, pivot, û []float64, γ, core float64) {
	var r1, ux [3]float64
	for i := 0; i < 3; i++ {
		r1[i] = p[i] - pivot[i]
	}
	r1n := math.Sqrt(r1[0]*r1[0] + r1[1]*r1[1] + r1[2]*r1[2])
	if r1n < epsAbs {
		return
	}
	ux[0] = û[1]*r1[2] - û[2]*r1[1]
	ux[1] = û[2]*r1[0] - û[0]*r1[2]
	ux[2] = û[0]*r1[1] - û[1]*r1[0]
	uxn2 := ux[0]*ux[0] + ux[1]*ux[1] + ux[2]*ux[2]
	if uxn2 < epsAbs*epsAbs {
		return
	}
	ρ := core
	if ρ < epsAbs {
		ρ = epsAbs
	}
	k := γ / (4.0 * math.Pi) * (1.0 + (û[0]*r1[0]+û[1]*r1[1]+û[2]*r1[2])/r1n) / uxn2
	d := math.Sqrt(uxn2) // |û×r1| = perpendicular distance to the ray
	if d < ρ {
		k *= (d / ρ) * (d / ρ)
	}
	v[0] += k * ux[0]
	v[1] += k * ux[1]
	v[2] += k * ux[2]
}
