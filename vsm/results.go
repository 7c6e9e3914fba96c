// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vsm

import (
	"math"
)

// Results holds the integrated loads and the spanwise distributions of one
// converged (or best-effort) solve
type Results struct {

	// global coefficients (wind axes, nondimensionalised by q·Sproj)
	Cl float64 // lift coefficient
	Cd float64 // drag coefficient
	Cs float64 // side-force coefficient
	Cm float64 // pitching moment coefficient (about the reference point)

	// global loads
	F []float64 // total aerodynamic force
	M []float64 // total moment about the reference point

	// spanwise distributions (one entry per panel)
	Gamma     []float64 // circulation
	ClDist    []float64 // sectional lift coefficient
	CdDist    []float64 // sectional drag coefficient
	CmDist    []float64 // sectional moment coefficient
	AlphaDist []float64 // re-projected angle of attack
	SpanY     []float64 // spanwise station of the aerodynamic center

	// misc
	ProjArea   float64 // projected frontal area used in q·S
	Converged  bool    // γ iteration converged
	Iterations int     // iterations spent
	Residual   float64 // last relative residual
}

// CalcResults integrates sectional forces and moments about refPoint (the
// body origin when nil) and nondimensionalises them by ½ρU²·Sproj. Must be
// called with the workspace in sync with the final γ (Solve guarantees
// this).
func (o *Solver) CalcResults(refPoint []float64) (res *Results) {

	s := o.St
	b := o.Bdy
	ρ := o.Cfg.Density
	if refPoint == nil {
		refPoint = b.Origin
	}

	res = &Results{
		F:          make([]float64, 3),
		M:          make([]float64, 3),
		Gamma:      make([]float64, s.P),
		ClDist:     make([]float64, s.P),
		CdDist:     make([]float64, s.P),
		CmDist:     make([]float64, s.P),
		AlphaDist:  make([]float64, s.P),
		SpanY:      make([]float64, s.P),
		ProjArea:   b.ProjArea,
		Converged:  o.Converged,
		Iterations: o.Iterations,
		Residual:   o.Residual,
	}

	var dirD, dirL, fi, r, mi [3]float64
	cbar, span := 0.0, 0.0
	for i, p := range b.Panels {

		// in-plane effective inflow
		vx := vdot3(s.Veff[i], s.Xairf[i])
		vz := vdot3(s.Veff[i], s.Zairf[i])
		vp := math.Sqrt(vx*vx + vz*vz)

		// drag and lift directions in the chord/normal plane
		for k := 0; k < 3; k++ {
			dirD[k] = (vx*s.Xairf[i][k] + vz*s.Zairf[i][k]) / vp
		}
		vcross3(dirL[:], dirD[:], s.Yairf[i])

		// sectional loads per unit span
		q := 0.5 * ρ * vp * vp
		lift := ρ * vp * s.Gamma[i]                   // Kutta-Joukowski
		drag := q * s.Chord[i] * s.Cd[i]              // viscous
		mom := q * s.Chord[i] * s.Chord[i] * s.Cm[i]  // about Yairf

		// integrate force and moment about the reference point
		w := s.Width[i]
		for k := 0; k < 3; k++ {
			fi[k] = (lift*dirL[k] + drag*dirD[k]) * w
			r[k] = p.AeroCenter[k] - refPoint[k]
		}
		vcross3(mi[:], r[:], fi[:])
		for k := 0; k < 3; k++ {
			res.F[k] += fi[k]
			res.M[k] += mi[k] + mom*w*s.Yairf[i][k]
		}

		// distributions
		res.Gamma[i] = s.Gamma[i]
		res.ClDist[i] = s.Cl[i]
		res.CdDist[i] = s.Cd[i]
		res.CmDist[i] = s.Cm[i]
		res.AlphaDist[i] = s.Alpha[i]
		res.SpanY[i] = vdot3(p.AeroCenter, b.SpanDir)

		cbar += s.Chord[i] * w
		span += w
	}
	cbar /= span

	// wind axes from the global freestream
	var d, l, side [3]float64
	copy(d[:], b.VaGlobal)
	U := vnorm(d[:])
	vnormalize(d[:])
	vcross3(l[:], d[:], b.SpanDir)
	vnormalize(l[:])
	vcross3(side[:], l[:], d[:])

	// global coefficients
	qS := 0.5 * ρ * U * U * b.ProjArea
	if qS > 0 {
		res.Cl = vdot3(res.F, l[:]) / qS
		res.Cd = vdot3(res.F, d[:]) / qS
		res.Cs = vdot3(res.F, side[:]) / qS
		res.Cm = vdot3(res.M, side[:]) / (qS * cbar)
	}
	return
}
