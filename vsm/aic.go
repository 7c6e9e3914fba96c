// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vsm

// CalcAIC assembles the three induced-velocity influence matrices. Entry
// (i,j) is the velocity induced at the evaluation point of panel i by the
// unit-circulation vortex system of panel j. The bound-filament-only
// matrices are accumulated in the same pass so that the lifting-line
// variant can subtract them. Evaluation points: three-quarter-chord control
// point for VSM, quarter-chord aerodynamic center for LLT.
//
// The semi-infinite filament directions must have been set by SetVa. The
// traversal is row-major over i and nothing here allocates.
func CalcAIC(b *Body, s *State, atControlPoint bool, coreFrac float64) {
	var vf, vb [3]float64
	for i, pi := range b.Panels {
		pt := pi.AeroCenter
		if atControlPoint {
			pt = pi.ControlPoint
		}
		for j, pj := range b.Panels {
			vf[0], vf[1], vf[2] = 0, 0, 0
			vb[0], vb[1], vb[2] = 0, 0, 0
			pj.AddVelBound(vb[:], pt, 1, coreFrac)
			pj.AddVel(vf[:], pt, 1, coreFrac)
			s.AICx[i][j] = vf[0]
			s.AICy[i][j] = vf[1]
			s.AICz[i][j] = vf[2]
			s.BICx[i][j] = vb[0]
			s.BICy[i][j] = vb[1]
			s.BICz[i][j] = vb[2]
		}
	}
}
