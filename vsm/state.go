// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vsm

import (
	"github.com/cpmech/gosl/la"
)

// State holds the preallocated workspace of one solver. It is created once
// per body and reused across solves; nothing in the γ iteration or the AIC
// assembly allocates.
type State struct {

	// sizes
	P int // total number of panels

	// influence matrices (one per Cartesian component)
	AICx [][]float64 // full system
	AICy [][]float64
	AICz [][]float64
	BICx [][]float64 // bound filaments only
	BICy [][]float64
	BICz [][]float64

	// circulation
	Gamma    []float64
	GammaNew []float64

	// angles of attack
	Alpha    []float64 // re-projected at every iteration
	AlphaGeo []float64 // from the undisturbed inflow

	// geometry snapshots (flat arrays over all panels)
	VaArr  [][]float64 // [P][3] local inflow
	VaNorm []float64   // ‖va‖ per panel
	VaUnit [][]float64 // [P][3] unit inflow
	Xairf  [][]float64 // [P][3] chordwise axes
	Yairf  [][]float64
	Zairf  [][]float64
	Chord  []float64
	Width  []float64

	// iteration scratch
	Ux   []float64   // induced velocity components
	Uy   []float64
	Uz   []float64
	Veff [][]float64 // [P][3] effective inflow
	Cl   []float64
	Cd   []float64
	Cm   []float64
}

// NewState allocates the workspace for p panels
func NewState(p int) (o *State) {
	o = &State{P: p}
	o.AICx = la.MatAlloc(p, p)
	o.AICy = la.MatAlloc(p, p)
	o.AICz = la.MatAlloc(p, p)
	o.BICx = la.MatAlloc(p, p)
	o.BICy = la.MatAlloc(p, p)
	o.BICz = la.MatAlloc(p, p)
	o.Gamma = make([]float64, p)
	o.GammaNew = make([]float64, p)
	o.Alpha = make([]float64, p)
	o.AlphaGeo = make([]float64, p)
	o.VaArr = la.MatAlloc(p, 3)
	o.VaNorm = make([]float64, p)
	o.VaUnit = la.MatAlloc(p, 3)
	o.Xairf = la.MatAlloc(p, 3)
	o.Yairf = la.MatAlloc(p, 3)
	o.Zairf = la.MatAlloc(p, 3)
	o.Chord = make([]float64, p)
	o.Width = make([]float64, p)
	o.Ux = make([]float64, p)
	o.Uy = make([]float64, p)
	o.Uz = make([]float64, p)
	o.Veff = la.MatAlloc(p, 3)
	o.Cl = make([]float64, p)
	o.Cd = make([]float64, p)
	o.Cm = make([]float64, p)
	return
}

// LoadGeometry snapshots the panel inflow and frames into the flat arrays.
// Must be called after the body's SetVa and before assembling the AIC
// matrices. No allocation.
func (o *State) LoadGeometry(b *Body) {
	for i, p := range b.Panels {
		copy(o.VaArr[i], p.Va)
		copy(o.Xairf[i], p.Xairf)
		copy(o.Yairf[i], p.Yairf)
		copy(o.Zairf[i], p.Zairf)
		o.Chord[i] = p.Chord
		o.Width[i] = p.Width
		n := vnorm(p.Va)
		o.VaNorm[i] = n
		for k := 0; k < 3; k++ {
			o.VaUnit[i][k] = p.Va[k] / n
		}
	}
}
