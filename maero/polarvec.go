// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maero

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// PolarVectors implements a 1D tabulated section polar: cl, cd and cm given
// on a strictly increasing α grid. Lookups outside the grid clamp to the
// endpoints. The control deflection δ is ignored by this model.
type PolarVectors struct {
	Alpha []float64 // angles of attack [rad]
	Clv   []float64 // lift coefficients
	Cdv   []float64 // drag coefficients
	Cmv   []float64 // moment coefficients
}

// add model to factory
func init() {
	allocators["polar-vectors"] = func() Model { return new(PolarVectors) }
}

// Init initialises model
func (o *PolarVectors) Init(prms fun.Prms) (err error) {
	return
}

// GetPrms gets (an example) of parameters
func (o PolarVectors) GetPrms() fun.Prms {
	return fun.Prms{}
}

// SetTable sets the polar tables. With removeNan, rows where any of
// cl/cd/cm (or α itself) is NaN are dropped consistently from all four
// vectors before storage; otherwise a NaN entry is an error.
func (o *PolarVectors) SetTable(α, cl, cd, cm []float64, removeNan bool) (err error) {
	n := len(α)
	if n < 2 {
		return chk.Err("polar-vectors: at least two α entries are required (got %d)", n)
	}
	if len(cl) != n || len(cd) != n || len(cm) != n {
		return chk.Err("polar-vectors: inconsistent table lengths: nα=%d ncl=%d ncd=%d ncm=%d", n, len(cl), len(cd), len(cm))
	}
	o.Alpha = make([]float64, 0, n)
	o.Clv = make([]float64, 0, n)
	o.Cdv = make([]float64, 0, n)
	o.Cmv = make([]float64, 0, n)
	for i := 0; i < n; i++ {
		nan := math.IsNaN(α[i]) || math.IsNaN(cl[i]) || math.IsNaN(cd[i]) || math.IsNaN(cm[i])
		if nan {
			if !removeNan {
				return chk.Err("polar-vectors: NaN entry in row %d", i)
			}
			continue
		}
		o.Alpha = append(o.Alpha, α[i])
		o.Clv = append(o.Clv, cl[i])
		o.Cdv = append(o.Cdv, cd[i])
		o.Cmv = append(o.Cmv, cm[i])
	}
	if len(o.Alpha) < 2 {
		return chk.Err("polar-vectors: fewer than two rows left after NaN cleanup")
	}
	for i := 1; i < len(o.Alpha); i++ {
		if o.Alpha[i] <= o.Alpha[i-1] {
			return chk.Err("polar-vectors: α grid must be strictly increasing: α[%d]=%g ≤ α[%d]=%g", i, o.Alpha[i], i-1, o.Alpha[i-1])
		}
	}
	return
}

// Cl returns the lift coefficient
func (o PolarVectors) Cl(α, δ float64) float64 {
	return interpClamped(o.Alpha, o.Clv, α)
}

// CdCm returns the drag and pitching moment coefficients
func (o PolarVectors) CdCm(α, δ float64) (cd, cm float64) {
	cd = interpClamped(o.Alpha, o.Cdv, α)
	cm = interpClamped(o.Alpha, o.Cmv, α)
	return
}

// interpClamped interpolates y(x) linearly on a strictly increasing grid,
// clamping to the endpoints outside the grid
func interpClamped(xx, yy []float64, x float64) float64 {
	n := len(xx)
	if x <= xx[0] {
		return yy[0]
	}
	if x >= xx[n-1] {
		return yy[n-1]
	}
	k := sort.SearchFloat64s(xx, x) // xx[k-1] < x ≤ xx[k]
	t := (x - xx[k-1]) / (xx[k] - xx[k-1])
	return yy[k-1] + t*(yy[k]-yy[k-1])
}
