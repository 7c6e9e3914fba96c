// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements reporting of solver results: coefficient summary,
// spanwise tables and distribution plots
package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/govsm/vsm"
)

// Report prints the coefficient summary of one solve
func Report(res *vsm.Results) {
	io.Pf("\n")
	io.Pf("%10s = %v\n", "converged", res.Converged)
	io.Pf("%10s = %d\n", "iterations", res.Iterations)
	io.Pf("%10s = %23.15e\n", "residual", res.Residual)
	io.Pf("%10s = %g\n", "proj. area", res.ProjArea)
	io.Pf("%10s = %23.15e\n", "cL", res.Cl)
	io.Pf("%10s = %23.15e\n", "cD", res.Cd)
	io.Pf("%10s = %23.15e\n", "cS", res.Cs)
	io.Pf("%10s = %23.15e\n", "cM", res.Cm)
	io.Pf("%10s = [%g, %g, %g]\n", "F", res.F[0], res.F[1], res.F[2])
	io.Pf("%10s = [%g, %g, %g]\n", "M", res.M[0], res.M[1], res.M[2])
}

// Table prints the spanwise distributions of one solve
func Table(res *vsm.Results) {
	io.Pf("\n%4s%14s%14s%14s%14s%14s%14s\n", "i", "y", "gamma", "alpha", "cl", "cd", "cm")
	for i := range res.Gamma {
		io.Pf("%4d%14.6f%14.6f%14.6f%14.6f%14.6f%14.6f\n", i,
			res.SpanY[i], res.Gamma[i], res.AlphaDist[i], res.ClDist[i], res.CdDist[i], res.CmDist[i])
	}
}
