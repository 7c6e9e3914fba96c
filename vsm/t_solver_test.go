// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vsm

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/govsm/ana"
	"github.com/cpmech/govsm/inp"
	"github.com/cpmech/govsm/maero"
	"github.com/cpmech/govsm/wing"
)

func Test_solve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve01. rectangular wing: VSM against LLT")

	α := 30.0 * math.Pi / 180.0
	solve := func(model string) *Results {
		b, err := rectBody(20, 20, 1, α, 20)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return nil
		}
		sv, err := NewSolver(b, testCfg(model))
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return nil
		}
		res, err := sv.Solve(nil)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return nil
		}
		if !res.Converged {
			tst.Errorf("test failed: %s did not converge within %d iterations\n", model, sv.Cfg.NmaxIt)
			return nil
		}
		io.Pforan("%s: it=%d cL=%g cD=%g\n", model, res.Iterations, res.Cl, res.Cd)
		return res
	}

	rv := solve("VSM")
	rl := solve("LLT")
	if rv == nil || rl == nil {
		return
	}

	// projected area
	chk.Scalar(tst, "Sproj", 1e-2, rv.ProjArea, 17.32)

	// both methods agree within the published tolerance
	if math.Abs(rv.Cl-rl.Cl)/math.Abs(rl.Cl) > 0.03 {
		tst.Errorf("test failed: |cL_VSM - cL_LLT| too large: %g vs %g\n", rv.Cl, rl.Cl)
		return
	}

	// γ and cl distributions are symmetric about mid-span
	n := len(rv.Gamma)
	for i := 0; i < n/2; i++ {
		chk.Scalar(tst, io.Sf("γ sym %d", i), 1e-3*math.Abs(rv.Gamma[i]), rv.Gamma[i], rv.Gamma[n-1-i])
		chk.Scalar(tst, io.Sf("cl sym %d", i), 1e-3*math.Abs(rv.ClDist[i]), rv.ClDist[i], rv.ClDist[n-1-i])
	}
}

func Test_solve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve02. lifting-line slope at AR=20")

	α := 3.0 * math.Pi / 180.0
	b, err := rectBody(40, 20, 1, α, 20)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	sv, err := NewSolver(b, testCfg("LLT"))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	res, err := sv.Solve(nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if !res.Converged {
		tst.Errorf("test failed: LLT did not converge\n")
		return
	}

	var llw ana.LiftingLineWing
	llw.Init(20)
	clref := llw.CL(α)
	io.Pforan("cL=%g  analytic=%g\n", res.Cl, clref)
	if math.Abs(res.Cl-clref)/clref > 0.02 {
		tst.Errorf("test failed: cL=%g deviates more than 2%% from analytic %g\n", res.Cl, clref)
	}
}

func Test_solve03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve03. tabulated 2πα polar matches the inviscid wing")

	α := 3.0 * math.Pi / 180.0
	speed := 20.0

	// inviscid reference
	b1, err := rectBody(20, 20, 1, α, speed)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	sv1, _ := NewSolver(b1, testCfg("VSM"))
	r1, err := sv1.Solve(nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// polar-vector wing with cl = 2πα tabulated on ±10°
	na := 41
	αs := make([]float64, na)
	cls := make([]float64, na)
	zz := make([]float64, na)
	for i := 0; i < na; i++ {
		αs[i] = (-10.0 + 20.0*float64(i)/float64(na-1)) * math.Pi / 180.0
		cls[i] = 2.0 * math.Pi * αs[i]
	}
	mdl := new(maero.PolarVectors)
	err = mdl.SetTable(αs, cls, zz, zz, true)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	w, _ := wing.NewWing(20, wing.Linear)
	w.AddSection([]float64{0, 10, 0}, []float64{1, 10, 0}, mdl)
	w.AddSection([]float64{0, -10, 0}, []float64{1, -10, 0}, mdl)
	b2, err := NewBody([]*wing.Wing{w}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	b2.SetVa([]float64{speed * math.Cos(α), 0, speed * math.Sin(α)}, nil)
	sv2, _ := NewSolver(b2, testCfg("VSM"))
	r2, err := sv2.Solve(nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	io.Pforan("inviscid cL=%g  tabulated cL=%g\n", r1.Cl, r2.Cl)
	chk.Scalar(tst, "cL", 0.01*math.Abs(r1.Cl), r2.Cl, r1.Cl)
}

func Test_solve04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve04. rotating inflow: asymmetric γ, same lift magnitude")

	α := 5.0 * math.Pi / 180.0
	speed := 20.0

	// symmetric reference
	b1, err := rectBody(20, 20, 1, α, speed)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	sv1, _ := NewSolver(b1, testCfg("VSM"))
	r1, err := sv1.Solve(nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// rotating case
	b2, err := rectBody(20, 20, 1, α, speed)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = b2.SetVa([]float64{speed * math.Cos(α), 0, speed * math.Sin(α)}, []float64{0, 0, 0.1})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	sv2, _ := NewSolver(b2, testCfg("VSM"))
	r2, err := sv2.Solve(nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// the γ distribution is no longer symmetric
	n := len(r2.Gamma)
	asym := 0.0
	for i := 0; i < n/2; i++ {
		asym = math.Max(asym, math.Abs(r2.Gamma[i]-r2.Gamma[n-1-i]))
	}
	if asym < 1e-6 {
		tst.Errorf("test failed: rotation must break the spanwise symmetry\n")
		return
	}

	// global lift magnitude is preserved within 5%
	f1 := vnorm(r1.F)
	f2 := vnorm(r2.F)
	io.Pforan("|F| sym=%g rot=%g\n", f1, f2)
	if math.Abs(f2-f1)/f1 > 0.05 {
		tst.Errorf("test failed: lift magnitude changed by more than 5%%: %g vs %g\n", f1, f2)
	}
}

func Test_solve05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve05. zeros initial γ and artificial damping")

	α := 5.0 * math.Pi / 180.0
	b, err := rectBody(10, 20, 1, α, 20)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	cfg := testCfg("VSM")
	cfg.InitGamma = "zeros"
	cfg.ArtDamp = true
	cfg.K2 = 0.05
	cfg.K4 = 0.01
	sv, err := NewSolver(b, cfg)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	res, err := sv.Solve(nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if !res.Converged {
		tst.Errorf("test failed: damped solve did not converge\n")
		return
	}
	if res.Cl <= 0 {
		tst.Errorf("test failed: cL=%g must be positive at positive α\n", res.Cl)
	}
}

func Test_solve06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve06. configuration errors")

	b, err := rectBody(4, 20, 1, 0.1, 20)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	cfg := new(inp.SolverData)
	cfg.SetDefaults()
	cfg.Model = "XYZ"
	_, err = NewSolver(b, cfg)
	if err == nil {
		tst.Errorf("test failed: unknown aerodynamic model must be rejected\n")
		return
	}
	cfg.Model = "VSM"
	cfg.Type = "xyz"
	_, err = NewSolver(b, cfg)
	if err == nil {
		tst.Errorf("test failed: unknown γ-solver type must be rejected\n")
	}
}
