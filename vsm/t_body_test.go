// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vsm

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_body01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("body01. aggregation and projected area")

	α := 30.0 * math.Pi / 180.0
	b, err := rectBody(20, 20, 1, α, 20)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.IntAssert(len(b.Panels), 20)
	chk.IntAssert(b.Offsets[1], 20)

	// frontal area of a 20 m² planform pitched 30° to the flow
	chk.Scalar(tst, "Sproj", 1e-2, b.ProjArea, 20.0*math.Cos(α))

	// every panel sees the freestream
	for _, p := range b.Panels {
		chk.Scalar(tst, "vax", 1e-14, p.Va[0], 20*math.Cos(α))
		chk.Scalar(tst, "vaz", 1e-14, p.Va[2], 20*math.Sin(α))
	}
}

func Test_body02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("body02. rotational inflow ω × r")

	b, err := rectBody(4, 20, 1, 0, 10)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = b.SetVa([]float64{10, 0, 0}, []float64{0, 0, 0.1})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// ω = 0.1 ẑ adds -0.1·y to the x-component at each aerodynamic center
	for _, p := range b.Panels {
		y := p.AeroCenter[1]
		chk.Scalar(tst, "vax", 1e-13, p.Va[0], 10-0.1*y)
		chk.Scalar(tst, "vay", 1e-13, p.Va[1], 0.1*p.AeroCenter[0])
	}

	// zero inflow is rejected
	err = b.SetVa([]float64{0, 0, 0}, nil)
	if err == nil {
		tst.Errorf("test failed: zero freestream must be rejected\n")
	}
}
