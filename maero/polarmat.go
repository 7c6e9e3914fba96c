// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maero

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// PolarMatrices implements a 2D tabulated section polar: cl, cd and cm given
// on an (α, δ) grid with bilinear interpolation. Lookups outside the grid
// clamp to the borders. NaN holes in the input matrices are filled during
// SetTables by an inverse-distance weighted average of the non-NaN
// neighbours found at increasing Manhattan radius.
type PolarMatrices struct {
	Alpha []float64   // angles of attack [rad] (M entries, strictly increasing)
	Delta []float64   // control deflections [rad] (N entries, strictly increasing)
	Clm   [][]float64 // lift coefficients [M][N]
	Cdm   [][]float64 // drag coefficients [M][N]
	Cmm   [][]float64 // moment coefficients [M][N]
}

// add model to factory
func init() {
	allocators["polar-matrices"] = func() Model { return new(PolarMatrices) }
}

// Init initialises model
func (o *PolarMatrices) Init(prms fun.Prms) (err error) {
	return
}

// GetPrms gets (an example) of parameters
func (o PolarMatrices) GetPrms() fun.Prms {
	return fun.Prms{}
}

// SetTables sets the polar matrices, filling NaN holes
func (o *PolarMatrices) SetTables(α, δ []float64, cl, cd, cm [][]float64) (err error) {
	m, n := len(α), len(δ)
	if m < 2 || n < 2 {
		return chk.Err("polar-matrices: grid must be at least 2×2 (got %d×%d)", m, n)
	}
	for i := 1; i < m; i++ {
		if α[i] <= α[i-1] {
			return chk.Err("polar-matrices: α grid must be strictly increasing")
		}
	}
	for j := 1; j < n; j++ {
		if δ[j] <= δ[j-1] {
			return chk.Err("polar-matrices: δ grid must be strictly increasing")
		}
	}
	o.Alpha = make([]float64, m)
	o.Delta = make([]float64, n)
	copy(o.Alpha, α)
	copy(o.Delta, δ)
	for _, dat := range []struct {
		name string
		src  [][]float64
		dst  *[][]float64
	}{
		{"cl", cl, &o.Clm},
		{"cd", cd, &o.Cdm},
		{"cm", cm, &o.Cmm},
	} {
		if len(dat.src) != m {
			return chk.Err("polar-matrices: %s has %d rows; want %d", dat.name, len(dat.src), m)
		}
		mat := la.MatAlloc(m, n)
		for i := 0; i < m; i++ {
			if len(dat.src[i]) != n {
				return chk.Err("polar-matrices: %s row %d has %d columns; want %d", dat.name, i, len(dat.src[i]), n)
			}
			copy(mat[i], dat.src[i])
		}
		err = fillHoles(mat)
		if err != nil {
			return chk.Err("polar-matrices: %s: %v", dat.name, err)
		}
		*dat.dst = mat
	}
	return
}

// Cl returns the lift coefficient
func (o PolarMatrices) Cl(α, δ float64) float64 {
	return bilinear(o.Alpha, o.Delta, o.Clm, α, δ)
}

// CdCm returns the drag and pitching moment coefficients
func (o PolarMatrices) CdCm(α, δ float64) (cd, cm float64) {
	cd = bilinear(o.Alpha, o.Delta, o.Cdm, α, δ)
	cm = bilinear(o.Alpha, o.Delta, o.Cmm, α, δ)
	return
}

// bilinear interpolates z(x,y) on strictly increasing grids, clamping to the
// borders outside the grid
func bilinear(xx, yy []float64, zz [][]float64, x, y float64) float64 {
	i, s := bracket(xx, x)
	j, t := bracket(yy, y)
	return (1.0-s)*(1.0-t)*zz[i][j] + s*(1.0-t)*zz[i+1][j] + (1.0-s)*t*zz[i][j+1] + s*t*zz[i+1][j+1]
}

// bracket finds the cell index i and local coordinate t∈[0,1] such that
// x ≅ xx[i] + t·(xx[i+1]-xx[i]), clamped to the grid
func bracket(xx []float64, x float64) (i int, t float64) {
	n := len(xx)
	if x <= xx[0] {
		return 0, 0
	}
	if x >= xx[n-1] {
		return n - 2, 1
	}
	k := sort.SearchFloat64s(xx, x)
	i = k - 1
	t = (x - xx[i]) / (xx[i+1] - xx[i])
	return
}

// fillHoles replaces NaN entries by the inverse-Manhattan-distance weighted
// average of the non-NaN neighbours found at the smallest radius containing
// any. Fails if the matrix has no non-NaN entry at all.
func fillHoles(a [][]float64) (err error) {
	m, n := len(a), len(a[0])
	any := false
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if !math.IsNaN(a[i][j]) {
				any = true
			}
		}
	}
	if !any {
		return chk.Err("all entries are NaN")
	}
	filled := la.MatAlloc(m, n)
	for i := 0; i < m; i++ {
		copy(filled[i], a[i])
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if !math.IsNaN(a[i][j]) {
				continue
			}
			for r := 1; r < m+n; r++ {
				var sum, wsum float64
				for di := -r; di <= r; di++ {
					dj := r - abs(di) // |di|+|dj| == r ring
					for _, s := range []int{-1, 1} {
						jj := j + s*dj
						ii := i + di
						if dj == 0 && s == 1 {
							continue
						}
						if ii < 0 || ii >= m || jj < 0 || jj >= n {
							continue
						}
						if math.IsNaN(a[ii][jj]) {
							continue
						}
						w := 1.0 / float64(r)
						sum += w * a[ii][jj]
						wsum += w
					}
				}
				if wsum > 0 {
					filled[i][j] = sum / wsum
					break
				}
			}
		}
	}
	for i := 0; i < m; i++ {
		copy(a[i], filled[i])
	}
	return
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
