// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vsm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/govsm/inp"
)

// GammaSolver solves the nonlinear circulation system on a prepared solver
type GammaSolver interface {
	Run(o *Solver) (err error)
}

// gammaAllocators holds all available γ-solvers
var gammaAllocators = map[string]func() GammaSolver{}

// Solver runs the lifting-line / vortex-step circulation solution on a body
type Solver struct {

	// input
	Cfg *inp.SolverData // solver settings
	Bdy *Body           // body aggregator

	// workspace (reused across solves)
	St *State

	// status of the last solve
	Converged  bool    // γ iteration converged
	Iterations int     // iterations spent
	Residual   float64 // last relative residual
}

// NewSolver allocates a solver (and its workspace) for a body
func NewSolver(b *Body, cfg *inp.SolverData) (o *Solver, err error) {
	cfg.SetDefaults()
	switch cfg.Model {
	case "VSM", "LLT":
	default:
		return nil, chk.Err("solver: unknown aerodynamic model %q", cfg.Model)
	}
	if _, ok := gammaAllocators[cfg.Type]; !ok {
		return nil, chk.Err("solver: unknown γ-solver type %q", cfg.Type)
	}
	o = &Solver{Cfg: cfg, Bdy: b, St: NewState(len(b.Panels))}
	return
}

// Solve assembles the influence matrices and solves for the circulation
// distribution, returning the integrated results about flow.RefPoint (or the
// body origin when refPoint is nil). A non-converged iteration is NOT an
// error: the results carry Converged=false together with the last iterate.
func (o *Solver) Solve(refPoint []float64) (res *Results, err error) {

	// prepare workspace
	o.St.LoadGeometry(o.Bdy)
	CalcAIC(o.Bdy, o.St, o.Cfg.Model == "VSM", o.Cfg.CoreFrac)

	// geometric angles of attack
	for i := 0; i < o.St.P; i++ {
		va := o.St.VaArr[i]
		o.St.AlphaGeo[i] = math.Atan2(vdot3(va, o.St.Zairf[i]), vdot3(va, o.St.Xairf[i]))
	}

	// initial circulation
	o.initGamma()

	// run γ-solver
	gs := gammaAllocators[o.Cfg.Type]()
	err = gs.Run(o)

	// fallback: retry the diverged fixed-point with the Newton solver
	if err != nil && o.Cfg.Type == "fp" {
		if !finite(o.St.Gamma) {
			o.initGamma()
			gs = gammaAllocators["newton"]()
			err = gs.Run(o)
		}
	}
	if err != nil {
		return nil, err
	}

	// refresh α and effective velocities with the final γ
	o.step(o.St.Gamma, o.St.GammaNew)

	return o.CalcResults(refPoint), nil
}

// initGamma sets the initial circulation distribution
func (o *Solver) initGamma() {
	s := o.St
	if o.Cfg.InitGamma == "zeros" {
		la.VecFill(s.Gamma, 0)
		return
	}

	// elliptic distribution scaled by the mid-span 2D solution
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for i, p := range o.Bdy.Panels {
		y := vdot3(p.AeroCenter, o.Bdy.SpanDir)
		s.GammaNew[i] = y // borrow as spanwise station scratch
		ymin = math.Min(ymin, y)
		ymax = math.Max(ymax, y)
	}
	b := ymax - ymin
	if b < 1e-14 {
		la.VecFill(s.Gamma, 0)
		return
	}
	mid := o.St.P / 2
	γ0 := 0.5 * s.VaNorm[mid] * s.Chord[mid] * o.Bdy.Panels[mid].Aero.Cl(s.AlphaGeo[mid], o.Bdy.Panels[mid].Delta)
	for i := 0; i < s.P; i++ {
		η := 2.0*(s.GammaNew[i]-ymin)/b - 1.0
		s.Gamma[i] = γ0 * math.Sqrt(math.Max(0, 1.0-η*η))
	}
}

// step evaluates one fixed-point sweep: given γ it computes the induced
// velocities, the effective inflow, the re-projected angle of attack and the
// new circulation γnew. Also refreshes Veff, Alpha, Cl, Cd, Cm in the
// workspace. No allocation.
func (o *Solver) step(γ, γnew []float64) {
	s := o.St
	llt := o.Cfg.Model == "LLT"

	// induced velocities: u = AIC·γ (minus the bound part for LLT)
	la.MatVecMul(s.Ux, 1, s.AICx, γ)
	la.MatVecMul(s.Uy, 1, s.AICy, γ)
	la.MatVecMul(s.Uz, 1, s.AICz, γ)
	if llt {
		la.MatVecMulAdd(s.Ux, -1, s.BICx, γ)
		la.MatVecMulAdd(s.Uy, -1, s.BICy, γ)
		la.MatVecMulAdd(s.Uz, -1, s.BICz, γ)
	}

	for i := 0; i < s.P; i++ {

		// effective inflow
		s.Veff[i][0] = s.VaArr[i][0] + s.Ux[i]
		s.Veff[i][1] = s.VaArr[i][1] + s.Uy[i]
		s.Veff[i][2] = s.VaArr[i][2] + s.Uz[i]

		// angle of attack re-projected in the chord/normal plane
		vx := vdot3(s.Veff[i], s.Xairf[i])
		vz := vdot3(s.Veff[i], s.Zairf[i])
		α := math.Atan2(vz, vx)
		s.Alpha[i] = α

		// sectional coefficients
		p := o.Bdy.Panels[i]
		s.Cl[i] = p.Aero.Cl(α, p.Delta)
		s.Cd[i], s.Cm[i] = p.Aero.CdCm(α, p.Delta)

		// new circulation from the 2D lift
		vp := math.Sqrt(vx*vx + vz*vz)
		γnew[i] = 0.5 * vp * s.Chord[i] * s.Cl[i]
	}
}

// applyDamping adds Jameson-style second and fourth spanwise differences of
// γ to γnew, wing by wing so that wings do not couple
func (o *Solver) applyDamping(γ, γnew []float64) {
	k2, k4 := o.Cfg.K2, o.Cfg.K4
	for w := 0; w < len(o.Bdy.Offsets)-1; w++ {
		lo, hi := o.Bdy.Offsets[w], o.Bdy.Offsets[w+1]
		for i := lo; i < hi; i++ {
			d2 := clampAt(γ, lo, hi, i+1) - 2.0*clampAt(γ, lo, hi, i) + clampAt(γ, lo, hi, i-1)
			d4 := clampAt(γ, lo, hi, i+2) - 4.0*clampAt(γ, lo, hi, i+1) + 6.0*clampAt(γ, lo, hi, i) -
				4.0*clampAt(γ, lo, hi, i-1) + clampAt(γ, lo, hi, i-2)
			γnew[i] += k2*d2 - k4*d4
		}
	}
}

// clampAt reads γ[i] with the index clamped to the [lo,hi) wing range
func clampAt(γ []float64, lo, hi, i int) float64 {
	if i < lo {
		i = lo
	}
	if i > hi-1 {
		i = hi - 1
	}
	return γ[i]
}

// FixedPoint implements the damped fixed-point γ iteration
type FixedPoint struct {
}

// add solver to factory
func init() {
	gammaAllocators["fp"] = func() GammaSolver { return new(FixedPoint) }
}

// Run iterates γ ← (1−ω)γ + ω γnew until the largest update is small
// relative to max(‖γ‖∞, tolRef)
func (o *FixedPoint) Run(sv *Solver) (err error) {

	s := sv.St
	cfg := sv.Cfg
	ωr := cfg.RelaxFac
	sv.Converged = false

	// message
	if cfg.ShowR {
		io.Pfyel("%6s%23s%23s\n", "it", "resid", "ref")
	}

	var it int
	var resid, ref float64
	for it = 1; it <= cfg.NmaxIt; it++ {

		// new circulation
		sv.step(s.Gamma, s.GammaNew)
		if cfg.ArtDamp {
			sv.applyDamping(s.Gamma, s.GammaNew)
		}

		// largest update and reference value
		resid, ref = 0, cfg.TolRef
		for i := 0; i < s.P; i++ {
			resid = math.Max(resid, math.Abs(s.GammaNew[i]-s.Gamma[i]))
			ref = math.Max(ref, math.Abs(s.Gamma[i]))
		}

		// relaxed update
		for i := 0; i < s.P; i++ {
			s.Gamma[i] = (1.0-ωr)*s.Gamma[i] + ωr*s.GammaNew[i]
		}

		// message
		if cfg.ShowR {
			io.Pf("%6d%23.15e%23.15e\n", it, resid, ref)
		}

		// divergence
		if math.IsNaN(resid) || math.IsInf(resid, 0) {
			return chk.Err("fixed-point γ iteration diverged to a non-finite state at it=%d", it)
		}

		// convergence
		if resid/ref < cfg.Rtol {
			sv.Converged = true
			break
		}
	}
	if it > cfg.NmaxIt {
		it = cfg.NmaxIt
	}
	sv.Iterations = it
	sv.Residual = resid / ref
	return
}

// Newton implements a Newton-Raphson solution of the residual
// F(γ) = γ − γnew(γ)
type Newton struct {
}

// add solver to factory
func init() {
	gammaAllocators["newton"] = func() GammaSolver { return new(Newton) }
}

// Run solves F(γ)=0 with a numerical Jacobian
func (o *Newton) Run(sv *Solver) (err error) {
	s := sv.St
	var nls num.NlSolver
	nls.Init(s.P, func(fx, x []float64) error {
		sv.step(x, s.GammaNew)
		for i := 0; i < s.P; i++ {
			fx[i] = x[i] - s.GammaNew[i]
		}
		if !finite(fx) {
			return chk.Err("newton: non-finite residual")
		}
		return nil
	}, nil, nil, true, true, map[string]float64{"lSearch": 0})
	defer nls.Clean()
	nls.SetTols(cfgAtol(sv.Cfg), sv.Cfg.Rtol, cfgFtol(sv.Cfg), num.EPS)
	silent := !sv.Cfg.ShowR
	err = nls.Solve(s.Gamma, silent)
	if err != nil {
		return chk.Err("newton γ-solver failed:\n%v", err)
	}
	if !finite(s.Gamma) {
		return chk.Err("newton γ-solver produced a non-finite state")
	}
	sv.Converged = true
	sv.Iterations = 0
	sv.Residual = 0
	return
}

func cfgAtol(cfg *inp.SolverData) float64 { return cfg.Rtol * cfg.TolRef }
func cfgFtol(cfg *inp.SolverData) float64 { return cfg.Rtol * cfg.TolRef }

// finite tells whether all components of v are finite
func finite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
