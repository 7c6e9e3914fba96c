// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package maero implements sectional (2D) aerodynamic models mapping the
// local angle of attack α and control deflection δ to cl, cd and cm
package maero

import (
	"log"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Model defines the interface for sectional aerodynamic models
type Model interface {
	Init(prms fun.Prms) error           // initialises model
	GetPrms() fun.Prms                  // gets (an example) of parameters
	Cl(α, δ float64) float64            // lift coefficient
	CdCm(α, δ float64) (cd, cm float64) // drag and pitching moment coefficients
}

// New returns a new sectional model by name
//  Note: returns nil on errors
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find sectional aerodynamic model named %q", name)
	}
	return allocator(), nil
}

// LogModels prints to log information on available models
func LogModels() {
	l := "maero: available:"
	for name := range allocators {
		l += " " + io.Sf("%q", name)
	}
	log.Println(l)
}

// allocators holds all available sectional models; name => allocator
var allocators = map[string]func() Model{}
