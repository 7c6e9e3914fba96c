// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_llwing01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("llwing01. finite-wing lift slope")

	var w LiftingLineWing
	w.Init(20)
	chk.Scalar(tst, "CLα", 1e-14, w.CLalpha, 2.0*math.Pi*20.0/22.0)
	chk.Scalar(tst, "CL", 1e-14, w.CL(0.1), 0.1*w.CLalpha)
	chk.Scalar(tst, "CDi", 1e-14, w.CDind(1.0), 1.0/(math.Pi*20.0))
}

func Test_ring01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ring01. rectangular ring center speed")

	// square ring: V = 2γ√2/(πa)
	a, γ := 2.0, 1.0
	chk.Scalar(tst, "V square", 1e-14, RectRingCenterSpeed(γ, a, a), 2.0*γ*math.Sqrt(2.0)/(math.Pi*a))
}
