// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vsm implements the aerodynamic core: the body aggregator, the
// induced-velocity influence matrices and the nonlinear circulation solvers
// for the lifting-line and vortex-step methods
package vsm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/govsm/wing"
)

// Body aggregates the panels of all wings and holds the apparent inflow.
// Panels are concatenated wing by wing; Offsets[w] is the index of the
// first panel of wing w.
type Body struct {

	// input
	Wings  []*wing.Wing
	Origin []float64 // reference point for the rotational inflow ω × r

	// derived
	Panels  []*wing.Panel
	Offsets []int     // first panel index per wing, plus total
	SpanDir []float64 // spanwise direction (first wing's)

	// inflow
	VaGlobal []float64 // freestream velocity
	Omega    []float64 // solid-body rotation rate
	ProjArea float64   // panel area projected onto the plane perpendicular to the lift axis
}

// NewBody refines all wings, builds their panels and aggregates them
func NewBody(wings []*wing.Wing, origin []float64) (o *Body, err error) {
	if len(wings) < 1 {
		return nil, chk.Err("body: at least one wing is required")
	}
	o = &Body{
		Wings:    wings,
		Origin:   []float64{0, 0, 0},
		VaGlobal: make([]float64, 3),
		Omega:    make([]float64, 3),
	}
	if origin != nil {
		copy(o.Origin, origin)
	}
	for _, w := range wings {
		err = w.BuildPanels()
		if err != nil {
			return nil, err
		}
		o.Offsets = append(o.Offsets, len(o.Panels))
		o.Panels = append(o.Panels, w.Panels...)
	}
	o.Offsets = append(o.Offsets, len(o.Panels))
	o.SpanDir = wings[0].SpanDir
	return
}

// SetVa sets the freestream velocity and the solid-body rotation rate. Each
// panel's inflow becomes va + ω × (aeroCenter − origin); the semi-infinite
// trailing filaments are re-aligned with the local inflow and the projected
// frontal area is recomputed.
func (o *Body) SetVa(va, ω []float64) (err error) {
	if vnorm(va) < 1e-14 {
		return chk.Err("body: freestream velocity must be nonzero")
	}
	copy(o.VaGlobal, va)
	if ω == nil {
		for i := range o.Omega {
			o.Omega[i] = 0
		}
	} else {
		copy(o.Omega, ω)
	}
	vaUnit := make([]float64, 3)
	r := make([]float64, 3)
	for _, p := range o.Panels {
		for i := 0; i < 3; i++ {
			r[i] = p.AeroCenter[i] - o.Origin[i]
		}
		p.Va[0] = va[0] + o.Omega[1]*r[2] - o.Omega[2]*r[1]
		p.Va[1] = va[1] + o.Omega[2]*r[0] - o.Omega[0]*r[2]
		p.Va[2] = va[2] + o.Omega[0]*r[1] - o.Omega[1]*r[0]
		for i := 0; i < 3; i++ {
			if math.IsNaN(p.Va[i]) || math.IsInf(p.Va[i], 0) {
				return chk.Err("body: non-finite inflow at panel")
			}
			vaUnit[i] = p.Va[i]
		}
		n := vnorm(vaUnit)
		if n < 1e-14 {
			return chk.Err("body: vanishing local inflow (rotation cancels the freestream)")
		}
		for i := 0; i < 3; i++ {
			vaUnit[i] /= n
		}
		p.SetFreestream(vaUnit)
	}
	o.ProjArea = o.projectedArea()
	return
}

// projectedArea sums the panel areas projected onto the plane perpendicular
// to the wind lift axis (the frontal area seen by the lift)
func (o *Body) projectedArea() (area float64) {
	d := make([]float64, 3)
	l := make([]float64, 3)
	av := make([]float64, 3)
	copy(d, o.VaGlobal)
	vnormalize(d)
	vcross3(l, d, o.SpanDir)
	if vnormalize(l) < 1e-14 {
		// freestream along the span: fall back to the raw panel area
		for _, p := range o.Panels {
			p.AreaVector(av)
			area += vnorm(av)
		}
		return
	}
	for _, p := range o.Panels {
		p.AreaVector(av)
		area += math.Abs(vdot3(av, l))
	}
	return
}

// 3-vector helpers on caller memory

func vcross3(w, u, v []float64) {
	w[0] = u[1]*v[2] - u[2]*v[1]
	w[1] = u[2]*v[0] - u[0]*v[2]
	w[2] = u[0]*v[1] - u[1]*v[0]
}

func vdot3(u, v []float64) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

func vnorm(u []float64) float64 {
	return math.Sqrt(u[0]*u[0] + u[1]*u[1] + u[2]*u[2])
}

func vnormalize(u []float64) float64 {
	n := vnorm(u)
	if n > 0 {
		u[0] /= n
		u[1] /= n
		u[2] /= n
	}
	return n
}
