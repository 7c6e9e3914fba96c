// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maero

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// LeiBreukels implements the Breukels polynomial regression for
// leading-edge-inflatable (LEI) kite airfoils. The section is described by
// the inflatable tube diameter and the maximum camber height, both as
// fractions of the chord. The regression polynomials take the angle of
// attack in degrees; outside ±20° cl and cd switch to flat-plate
// expressions, while cm keeps the regression polynomial.
type LeiBreukels struct {
	TubeDiameter float64 // tube diameter over chord
	CamberHeight float64 // max camber height over chord
}

// regression constants (Breukels)
const (
	bkC20 = -0.008011
	bkC21 = -0.000336
	bkC22 = 0.000992
	bkC23 = 0.013936
	bkC24 = -0.003838
	bkC25 = -0.000161
	bkC26 = 0.001243
	bkC27 = -0.009288
	bkC28 = -0.002124
	bkC29 = 0.012267
	bkC30 = -0.002398
	bkC31 = -0.000274
	bkC32 = 0.0
	bkC33 = 0.0
	bkC34 = 0.0
	bkC35 = -3.371000
	bkC36 = 0.858039
	bkC37 = 0.141600
	bkC38 = 7.201140
	bkC39 = -0.676007
	bkC40 = 0.806629
	bkC41 = 0.170454
	bkC42 = -0.390563
	bkC43 = 0.101966
	bkC44 = 0.546094
	bkC45 = 0.022247
	bkC46 = -0.071462
	bkC47 = -0.006527
	bkC48 = 0.002733
	bkC49 = 0.000686
	bkC50 = 0.123685
	bkC51 = 0.143755
	bkC52 = 0.495159
	bkC53 = -0.105362
	bkC54 = 0.033468
	bkC55 = -0.284793
	bkC56 = -0.026199
	bkC57 = -0.024060
	bkC58 = 0.000559
	bkC59 = -1.787703
	bkC60 = 0.352443
	bkC61 = -0.839323
	bkC62 = 0.137932
)

// add model to factory
func init() {
	allocators["lei-breukels"] = func() Model { return new(LeiBreukels) }
}

// Init initialises model
func (o *LeiBreukels) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "t":
			o.TubeDiameter = p.V
		case "k":
			o.CamberHeight = p.V
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o LeiBreukels) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "t", V: 0.1},
		&fun.Prm{N: "k", V: 0.05},
	}
}

// clCoefs computes the cubic cl(α[deg]) polynomial coefficients
func (o LeiBreukels) clCoefs() (c3, c2, c1, c0 float64) {
	t, k := o.TubeDiameter, o.CamberHeight
	s9 := bkC20*t*t + bkC21*t + bkC22
	s10 := bkC23*t*t + bkC24*t + bkC25
	s11 := bkC26*t*t + bkC27*t + bkC28
	s12 := bkC29*t*t + bkC30*t + bkC31
	s13 := bkC32*t*t + bkC33*t + bkC34
	s14 := bkC35*t*t + bkC36*t + bkC37
	s15 := bkC38*t*t + bkC39*t + bkC40
	s16 := bkC41*t*t + bkC42*t + bkC43
	c3 = s9*k + s10
	c2 = s11*k + s12
	c1 = s13*k + s14
	c0 = s15*k + s16
	return
}

// Cl returns the lift coefficient
func (o LeiBreukels) Cl(α, δ float64) float64 {
	a := α * 180.0 / math.Pi
	if a > 20.0 || a < -20.0 {
		// flat-plate behaviour beyond the regression range
		return 2.0 * math.Cos(α) * math.Sin(α) * math.Abs(math.Sin(α))
	}
	c3, c2, c1, c0 := o.clCoefs()
	return ((c3*a+c2)*a+c1)*a + c0
}

// CdCm returns the drag and pitching moment coefficients
func (o LeiBreukels) CdCm(α, δ float64) (cd, cm float64) {
	t, k := o.TubeDiameter, o.CamberHeight
	a := α * 180.0 / math.Pi
	if a > 20.0 || a < -20.0 {
		s := math.Sin(α)
		cd = 2.0 * s * s * math.Abs(s)
	} else {
		cd2 := (bkC44*t+bkC45)*k*k + (bkC46*t+bkC47)*k + (bkC48*t + bkC49)
		cd0 := (bkC50*t+bkC51)*k + (bkC52*t*t + bkC53*t + bkC54)
		cd = cd2*a*a + cd0
	}
	cm2 := (bkC55*t+bkC56)*k + (bkC57*t + bkC58)
	cm0 := (bkC59*t+bkC60)*k + (bkC61*t + bkC62)
	cm = cm2*a*a + cm0
	return
}
