// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/govsm/inp"
	"github.com/cpmech/govsm/maero"
	"github.com/cpmech/govsm/vsm"
	"github.com/cpmech/govsm/wing"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. report and table of one solve")

	w, err := wing.NewWing(6, wing.Linear)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	mdl, _ := maero.New("inviscid")
	w.AddSection([]float64{0, 5, 0}, []float64{1, 5, 0}, mdl)
	w.AddSection([]float64{0, -5, 0}, []float64{1, -5, 0}, mdl)
	body, err := vsm.NewBody([]*wing.Wing{w}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	α := 5.0 * math.Pi / 180.0
	err = body.SetVa([]float64{20 * math.Cos(α), 0, 20 * math.Sin(α)}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	cfg := new(inp.SolverData)
	cfg.SetDefaults()
	solver, err := vsm.NewSolver(body, cfg)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	res, err := solver.Solve(nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	Report(res)
	Table(res)

	// plotting is exercised manually
	if false {
		PlotDistributions(res, "/tmp/govsm", "out01", false)
	}
}
