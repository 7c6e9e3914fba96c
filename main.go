// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/govsm/inp"
	"github.com/cpmech/govsm/out"
	"github.com/cpmech/govsm/vsm"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// message
	io.PfWhite("\nGovsm -- Go Vortex Step Method\n\n")

	// options
	table := flag.Bool("table", false, "print spanwise distribution table")
	plot := flag.Bool("plot", false, "plot spanwise distributions")
	flag.Parse()

	// simulation filenamepath
	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		chk.Panic("Please, provide a filename. Ex.: rectwing.sim")
	}
	if io.FnExt(fnamepath) == "" {
		fnamepath += ".sim"
	}

	// read input
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation input data:\n%v", err)
	}
	if sim.Data.Desc != "" {
		io.Pf("> %s\n", sim.Data.Desc)
	}

	// build body
	wings, err := sim.GetWings()
	if err != nil {
		chk.Panic("cannot build wings:\n%v", err)
	}
	body, err := vsm.NewBody(wings, sim.Flow.Origin)
	if err != nil {
		chk.Panic("cannot build body:\n%v", err)
	}
	err = body.SetVa(sim.Flow.Va, sim.Flow.Omega)
	if err != nil {
		chk.Panic("cannot set inflow:\n%v", err)
	}

	// solve
	solver, err := vsm.NewSolver(body, &sim.Solver)
	if err != nil {
		chk.Panic("cannot allocate solver:\n%v", err)
	}
	res, err := solver.Solve(sim.Flow.RefPoint)
	if err != nil {
		chk.Panic("solve failed:\n%v", err)
	}
	if !res.Converged {
		io.Pfyel("did not converge after %d iterations (residual = %g); results use the last iterate\n",
			res.Iterations, res.Residual)
	}

	// report
	out.Report(res)
	if *table {
		out.Table(res)
	}
	if *plot {
		out.PlotDistributions(res, sim.Data.DirOut, sim.FnKey, false)
	}
}
