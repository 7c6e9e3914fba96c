// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vsm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/govsm/inp"
	"github.com/cpmech/govsm/maero"
	"github.com/cpmech/govsm/wing"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// rectBody builds a flat rectangular wing (span along y, chord along x) with
// inviscid sections and the inflow at angle of attack α in the x-z plane
func rectBody(npanels int, span, chord, α, speed float64) (b *Body, err error) {
	w, err := wing.NewWing(npanels, wing.Linear)
	if err != nil {
		return
	}
	mdl, _ := maero.New("inviscid")
	err = w.AddSection([]float64{0, span / 2, 0}, []float64{chord, span / 2, 0}, mdl)
	if err != nil {
		return
	}
	err = w.AddSection([]float64{0, -span / 2, 0}, []float64{chord, -span / 2, 0}, mdl)
	if err != nil {
		return
	}
	b, err = NewBody([]*wing.Wing{w}, nil)
	if err != nil {
		return
	}
	va := []float64{speed * math.Cos(α), 0, speed * math.Sin(α)}
	err = b.SetVa(va, nil)
	return
}

// testCfg returns solver settings for the end-to-end scenarios
func testCfg(model string) *inp.SolverData {
	cfg := new(inp.SolverData)
	cfg.SetDefaults()
	cfg.Model = model
	return cfg
}
