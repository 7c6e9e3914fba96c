// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wing

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/govsm/maero"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// rectWing builds a flat rectangular wing in the x-y plane with inviscid
// sections: span along y, chord along x
func rectWing(npanels int, distr string, span, chord float64) (w *Wing, err error) {
	w, err = NewWing(npanels, distr)
	if err != nil {
		return
	}
	mdl, _ := maero.New("inviscid")
	err = w.AddSection([]float64{0, span / 2, 0}, []float64{chord, span / 2, 0}, mdl)
	if err != nil {
		return
	}
	err = w.AddSection([]float64{0, -span / 2, 0}, []float64{chord, -span / 2, 0}, mdl)
	return
}
