// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/govsm/vsm"
)

// PlotDistributions plots the spanwise γ, α and cl distributions of one
// solve and saves the figure into dirout
func PlotDistributions(res *vsm.Results, dirout, fnkey string, show bool) {

	plt.SetForEps(1.2, 450)

	plt.Subplot(3, 1, 1)
	plt.Plot(res.SpanY, res.Gamma, plt.Fmt{C: "b", M: "."}.GetArgs("clip_on=0"))
	plt.Gll("$y$", "$\\Gamma$", "")

	plt.Subplot(3, 1, 2)
	plt.Plot(res.SpanY, res.AlphaDist, plt.Fmt{C: "r", M: "."}.GetArgs("clip_on=0"))
	plt.Gll("$y$", "$\\alpha$", "")

	plt.Subplot(3, 1, 3)
	plt.Plot(res.SpanY, res.ClDist, plt.Fmt{C: "g", M: "."}.GetArgs("clip_on=0"))
	plt.Gll("$y$", "$c_l$", "")

	if show {
		plt.Show()
		return
	}
	plt.SaveD(dirout, fnkey+"_dist.eps")
}
