// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wing

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/govsm/maero"
)

// Panel is one chordwise-bound, spanwise-stacked vortex panel built from a
// pair of consecutive refined sections. It snapshots the geometry and keeps
// a reference to the sectional aerodynamic model; it holds no owning
// reference to the sections themselves.
//
// The local frame is:
//   Xairf -- chordwise, from LE to TE
//   Yairf -- spanwise, from section 1 to section 2
//   Zairf -- normal, Xairf × Yairf
type Panel struct {

	// geometry
	AeroCenter   []float64 // quarter-chord midpoint
	ControlPoint []float64 // three-quarter-chord midpoint
	Xairf        []float64 // chordwise unit axis
	Yairf        []float64 // spanwise unit axis
	Zairf        []float64 // normal unit axis
	Chord        float64   // ‖TEmid − LEmid‖
	Width        float64   // ‖LE2 − LE1‖

	// corners (snapshots of the bracketing sections)
	LE1, TE1 []float64 // section 1 corners
	LE2, TE2 []float64 // section 2 corners

	// vortex system: bound, two finite trailing segments, two semi-infinite
	Fils []*Filament

	// aerodynamics
	Aero  maero.Model // sectional model
	Delta float64     // control deflection passed to the sectional model
	Va    []float64   // local inflow (set by the body aggregator)
}

// NewPanel builds the panel between refined sections s1 and s2.
// The semi-infinite filament directions are left unset until the inflow is
// known (see SetVa on the body aggregator).
func NewPanel(s1, s2 *Section) (o *Panel, err error) {

	o = &Panel{
		AeroCenter:   make([]float64, 3),
		ControlPoint: make([]float64, 3),
		Xairf:        make([]float64, 3),
		Yairf:        make([]float64, 3),
		Zairf:        make([]float64, 3),
		LE1:          []float64{s1.LE[0], s1.LE[1], s1.LE[2]},
		TE1:          []float64{s1.TE[0], s1.TE[1], s1.TE[2]},
		LE2:          []float64{s2.LE[0], s2.LE[1], s2.LE[2]},
		TE2:          []float64{s2.TE[0], s2.TE[1], s2.TE[2]},
		Aero:         s1.Aero,
		Va:           make([]float64, 3),
	}

	// mid-chord line and local frame
	var lemid, temid [3]float64
	for i := 0; i < 3; i++ {
		lemid[i] = 0.5 * (s1.LE[i] + s2.LE[i])
		temid[i] = 0.5 * (s1.TE[i] + s2.TE[i])
		o.Xairf[i] = temid[i] - lemid[i]
		o.Yairf[i] = s2.LE[i] - s1.LE[i]
		o.AeroCenter[i] = lemid[i] + 0.25*(temid[i]-lemid[i])
		o.ControlPoint[i] = lemid[i] + 0.75*(temid[i]-lemid[i])
	}
	o.Chord = vnormalize(o.Xairf)
	o.Width = vnormalize(o.Yairf)
	if o.Chord < 1e-14 {
		return nil, chk.Err("panel: zero-length chord")
	}
	if o.Width < 1e-14 {
		return nil, chk.Err("panel: zero-width panel (coincident sections)")
	}
	vcross(o.Zairf, o.Xairf, o.Yairf)
	if vnormalize(o.Zairf) < 1e-10 {
		return nil, chk.Err("panel: degenerate panel with colinear chord and span axes")
	}

	// vortex system
	qc1 := make([]float64, 3)
	qc2 := make([]float64, 3)
	s1.QuarterChord(qc1)
	s2.QuarterChord(qc2)
	o.Fils = []*Filament{
		{Kind: BoundSegment, P1: qc1, P2: qc2},
		{Kind: TrailingSegment, P1: o.TE1, P2: qc1},
		{Kind: TrailingSegment, P1: qc2, P2: o.TE2},
		{Kind: TrailingSemiInf, Pivot: o.TE1, Dir: make([]float64, 3), Sign: -1, RefLen: o.Width},
		{Kind: TrailingSemiInf, Pivot: o.TE2, Dir: make([]float64, 3), Sign: +1, RefLen: o.Width},
	}
	return
}

// AddVel adds to v the velocity induced at point p by the whole vortex
// system of this panel carrying circulation γ. No heap allocation.
func (o *Panel) AddVel(v, p []float64, γ, coreFrac float64) {
	for _, f := range o.Fils {
		f.AddVel(v, p, γ, coreFrac)
	}
}

// AddVelBound adds to v the velocity induced at p by the bound filament only
func (o *Panel) AddVelBound(v, p []float64, γ, coreFrac float64) {
	o.Fils[0].AddVel(v, p, γ, coreFrac)
}

// SetFreestream rewrites the semi-infinite filament directions with the
// (unit) freestream direction at this panel
func (o *Panel) SetFreestream(vaUnit []float64) {
	for _, f := range o.Fils {
		if f.Kind == TrailingSemiInf {
			copy(f.Dir, vaUnit)
		}
	}
}

// AreaVector writes the panel quadrilateral area vector into av
// (half cross product of the diagonals)
func (o *Panel) AreaVector(av []float64) {
	var d1, d2 [3]float64
	for i := 0; i < 3; i++ {
		d1[i] = o.TE2[i] - o.LE1[i]
		d2[i] = o.LE2[i] - o.TE1[i]
	}
	av[0] = 0.5 * (d1[1]*d2[2] - d1[2]*d2[1])
	av[1] = 0.5 * (d1[2]*d2[0] - d1[0]*d2[2])
	av[2] = 0.5 * (d1[0]*d2[1] - d1[1]*d2[0])
}
