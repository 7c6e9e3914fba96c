// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maero

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// Inviscid implements the thin-airfoil inviscid section: cl = 2π sin(α)
type Inviscid struct {
}

// add model to factory
func init() {
	allocators["inviscid"] = func() Model { return new(Inviscid) }
}

// Init initialises model
func (o *Inviscid) Init(prms fun.Prms) (err error) {
	return
}

// GetPrms gets (an example) of parameters
func (o Inviscid) GetPrms() fun.Prms {
	return fun.Prms{}
}

// Cl returns the lift coefficient
func (o Inviscid) Cl(α, δ float64) float64 {
	return 2.0 * math.Pi * math.Sin(α)
}

// CdCm returns the drag and pitching moment coefficients
func (o Inviscid) CdCm(α, δ float64) (cd, cm float64) {
	return 0, 0
}
