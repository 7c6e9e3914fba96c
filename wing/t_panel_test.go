// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wing

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/govsm/maero"
)

func Test_panel01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("panel01. frame, quarter/three-quarter chord and filaments")

	mdl, _ := maero.New("inviscid")
	s1, _ := NewSection([]float64{0, 1, 0}, []float64{2, 1, 0}, mdl)
	s2, _ := NewSection([]float64{0, 0, 0}, []float64{2, 0, 0}, mdl)
	p, err := NewPanel(s1, s2)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// chord and width
	chk.Scalar(tst, "chord", 1e-15, p.Chord, 2)
	chk.Scalar(tst, "width", 1e-15, p.Width, 1)

	// quarter- and three-quarter-chord midpoints
	chk.Vector(tst, "ac", 1e-15, p.AeroCenter, []float64{0.5, 0.5, 0})
	chk.Vector(tst, "cp", 1e-15, p.ControlPoint, []float64{1.5, 0.5, 0})

	// orthonormal frame
	chk.Scalar(tst, "|x|", 1e-15, vnorm(p.Xairf), 1)
	chk.Scalar(tst, "|y|", 1e-15, vnorm(p.Yairf), 1)
	chk.Scalar(tst, "|z|", 1e-15, vnorm(p.Zairf), 1)
	chk.Scalar(tst, "x·y", 1e-15, vdot(p.Xairf, p.Yairf), 0)
	chk.Scalar(tst, "x·z", 1e-15, vdot(p.Xairf, p.Zairf), 0)
	chk.Scalar(tst, "y·z", 1e-15, vdot(p.Yairf, p.Zairf), 0)
	chk.Vector(tst, "z", 1e-15, p.Zairf, []float64{0, 0, -1})

	// bound filament runs between the section quarter chords
	chk.IntAssert(p.Fils[0].Kind, BoundSegment)
	chk.Vector(tst, "qc1", 1e-15, p.Fils[0].P1, []float64{0.5, 1, 0})
	chk.Vector(tst, "qc2", 1e-15, p.Fils[0].P2, []float64{0.5, 0, 0})

	// trailing system: two finite segments, two semi-infinite filaments
	chk.IntAssert(p.Fils[1].Kind, TrailingSegment)
	chk.IntAssert(p.Fils[2].Kind, TrailingSegment)
	chk.IntAssert(p.Fils[3].Kind, TrailingSemiInf)
	chk.IntAssert(p.Fils[4].Kind, TrailingSemiInf)
	chk.Scalar(tst, "signs", 1e-15, p.Fils[3].Sign+p.Fils[4].Sign, 0)

	// degenerate: coincident sections
	_, err = NewPanel(s1, s1)
	if err == nil {
		tst.Errorf("test failed: coincident sections must be a geometry error\n")
	}
}

func Test_panel02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("panel02. projected area vector")

	mdl, _ := maero.New("inviscid")
	s1, _ := NewSection([]float64{0, 1, 0}, []float64{2, 1, 0}, mdl)
	s2, _ := NewSection([]float64{0, 0, 0}, []float64{2, 0, 0}, mdl)
	p, _ := NewPanel(s1, s2)

	av := make([]float64, 3)
	p.AreaVector(av)
	chk.Scalar(tst, "|A|", 1e-14, vnorm(av), 2.0)
	chk.Scalar(tst, "Ax", 1e-14, av[0], 0)
	chk.Scalar(tst, "Ay", 1e-14, av[1], 0)
}
