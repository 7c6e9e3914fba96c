// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify the
// aerodynamic core
package ana

import "math"

// LiftingLineWing computes lifting-line theory results for an unswept wing
// with an elliptic circulation distribution and a 2π sectional lift slope
type LiftingLineWing struct {

	// input
	AR float64 // aspect ratio b²/S

	// derived
	CLalpha float64 // finite-wing lift slope
}

// Init initialises the structure and computes the lift slope
func (o *LiftingLineWing) Init(ar float64) {
	o.AR = ar
	o.CLalpha = 2.0 * math.Pi * ar / (ar + 2.0)
}

// CL returns the lift coefficient at angle of attack α
func (o LiftingLineWing) CL(α float64) float64 {
	return o.CLalpha * α
}

// CDind returns the induced drag coefficient at lift coefficient cl
// (elliptic loading, span efficiency 1)
func (o LiftingLineWing) CDind(cl float64) float64 {
	return cl * cl / (math.Pi * o.AR)
}
