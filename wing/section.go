// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wing implements wing geometry: spanwise sections, mesh refinement,
// vortex panels and the Biot-Savart filament kernels
package wing

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/govsm/maero"
)

// Section holds one spanwise wing section given by its leading and trailing
// edge points and a sectional aerodynamic model
type Section struct {
	LE   []float64   // leading edge point
	TE   []float64   // trailing edge point
	Aero maero.Model // sectional aerodynamic model
}

// NewSection returns a checked section
func NewSection(le, te []float64, model maero.Model) (o *Section, err error) {
	if len(le) != 3 || len(te) != 3 {
		return nil, chk.Err("section: LE and TE must be 3-vectors")
	}
	o = &Section{LE: []float64{le[0], le[1], le[2]}, TE: []float64{te[0], te[1], te[2]}, Aero: model}
	if o.Chord() < 1e-14 {
		return nil, chk.Err("section: zero-length chord: LE=%v TE=%v", le, te)
	}
	return
}

// Chord returns the chord length
func (o Section) Chord() float64 {
	dx := o.TE[0] - o.LE[0]
	dy := o.TE[1] - o.LE[1]
	dz := o.TE[2] - o.LE[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// QuarterChord writes the quarter-chord point into qc
func (o Section) QuarterChord(qc []float64) {
	for i := 0; i < 3; i++ {
		qc[i] = o.LE[i] + 0.25*(o.TE[i]-o.LE[i])
	}
}

// small 3-vector helpers operating on caller memory

// vcross computes w := u × v
func vcross(w, u, v []float64) {
	w[0] = u[1]*v[2] - u[2]*v[1]
	w[1] = u[2]*v[0] - u[0]*v[2]
	w[2] = u[0]*v[1] - u[1]*v[0]
}

// vdot returns u · v
func vdot(u, v []float64) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// vnorm returns the Euclidean norm of u
func vnorm(u []float64) float64 {
	return math.Sqrt(u[0]*u[0] + u[1]*u[1] + u[2]*u[2])
}

// vnormalize scales u to unit length, returning the original norm
func vnormalize(u []float64) float64 {
	n := vnorm(u)
	if n > 0 {
		u[0] /= n
		u[1] /= n
		u[2] /= n
	}
	return n
}
