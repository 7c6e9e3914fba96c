// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maero

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// tolerance for deciding that two polar grids coincide
const gridTol = 1e-12

// Blend returns the sectional model at fraction t ∈ [0,1] between models a
// (t=0) and b (t=1), for spanwise interpolation of refined sections.
// Tabulated models must share their grids. An inviscid model next to a
// tabulated one is promoted to a zeroed polar on the neighbour's grid when
// promote is true; otherwise the pair is incompatible.
func Blend(a, b Model, t float64, promote bool) (Model, error) {

	// same position as one of the originals
	if t <= 0 {
		return a, nil
	}
	if t >= 1 {
		return b, nil
	}

	switch ma := a.(type) {

	case *Inviscid:
		if _, ok := b.(*Inviscid); ok {
			return ma, nil
		}
		if !promote {
			return nil, chk.Err("cannot interpolate incompatible sectional models: inviscid next to %T", b)
		}
		pa, err := promoteInviscid(b)
		if err != nil {
			return nil, err
		}
		return Blend(pa, b, t, false)

	case *LeiBreukels:
		mb, ok := b.(*LeiBreukels)
		if !ok {
			return nil, chk.Err("cannot interpolate incompatible sectional models: %T next to %T", a, b)
		}
		return &LeiBreukels{
			TubeDiameter: (1.0-t)*ma.TubeDiameter + t*mb.TubeDiameter,
			CamberHeight: (1.0-t)*ma.CamberHeight + t*mb.CamberHeight,
		}, nil

	case *PolarVectors:
		mb, ok := b.(*PolarVectors)
		if !ok {
			if _, inv := b.(*Inviscid); inv && promote {
				pb, err := promoteInviscid(a)
				if err != nil {
					return nil, err
				}
				return Blend(a, pb, t, false)
			}
			return nil, chk.Err("cannot interpolate incompatible sectional models: %T next to %T", a, b)
		}
		if !sameGrid(ma.Alpha, mb.Alpha) {
			return nil, chk.Err("cannot interpolate polar-vectors sections with different α grids")
		}
		n := len(ma.Alpha)
		r := &PolarVectors{
			Alpha: ma.Alpha,
			Clv:   make([]float64, n),
			Cdv:   make([]float64, n),
			Cmv:   make([]float64, n),
		}
		for i := 0; i < n; i++ {
			r.Clv[i] = (1.0-t)*ma.Clv[i] + t*mb.Clv[i]
			r.Cdv[i] = (1.0-t)*ma.Cdv[i] + t*mb.Cdv[i]
			r.Cmv[i] = (1.0-t)*ma.Cmv[i] + t*mb.Cmv[i]
		}
		return r, nil

	case *PolarMatrices:
		mb, ok := b.(*PolarMatrices)
		if !ok {
			if _, inv := b.(*Inviscid); inv && promote {
				pb, err := promoteInviscid(a)
				if err != nil {
					return nil, err
				}
				return Blend(a, pb, t, false)
			}
			return nil, chk.Err("cannot interpolate incompatible sectional models: %T next to %T", a, b)
		}
		if !sameGrid(ma.Alpha, mb.Alpha) || !sameGrid(ma.Delta, mb.Delta) {
			return nil, chk.Err("cannot interpolate polar-matrices sections with different (α,δ) grids")
		}
		m, n := len(ma.Alpha), len(ma.Delta)
		r := &PolarMatrices{Alpha: ma.Alpha, Delta: ma.Delta}
		r.Clm = lerpMat(ma.Clm, mb.Clm, t, m, n)
		r.Cdm = lerpMat(ma.Cdm, mb.Cdm, t, m, n)
		r.Cmm = lerpMat(ma.Cmm, mb.Cmm, t, m, n)
		return r, nil
	}
	return nil, chk.Err("cannot interpolate sectional model %T", a)
}

// promoteInviscid returns a zeroed polar on the grid of the tabulated model m
func promoteInviscid(m Model) (Model, error) {
	switch mm := m.(type) {
	case *PolarVectors:
		n := len(mm.Alpha)
		return &PolarVectors{
			Alpha: mm.Alpha,
			Clv:   make([]float64, n),
			Cdv:   make([]float64, n),
			Cmv:   make([]float64, n),
		}, nil
	case *PolarMatrices:
		m0, n0 := len(mm.Alpha), len(mm.Delta)
		z := func() [][]float64 {
			a := make([][]float64, m0)
			for i := range a {
				a[i] = make([]float64, n0)
			}
			return a
		}
		return &PolarMatrices{Alpha: mm.Alpha, Delta: mm.Delta, Clm: z(), Cdm: z(), Cmm: z()}, nil
	}
	return nil, chk.Err("cannot promote inviscid section next to %T", m)
}

func sameGrid(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > gridTol {
			return false
		}
	}
	return true
}

func lerpMat(a, b [][]float64, t float64, m, n int) (r [][]float64) {
	r = make([][]float64, m)
	for i := 0; i < m; i++ {
		r[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			r[i][j] = (1.0-t)*a[i][j] + t*b[i][j]
		}
	}
	return
}
