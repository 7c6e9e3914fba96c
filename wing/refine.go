// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wing

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/govsm/maero"
)

// knotTol is the relative tolerance for snapping a target parameter onto a
// user section, in which case the user section is reproduced exactly
const knotTol = 1e-12

// refine resamples the sorted user sections into n+1 sections along the
// quarter-chord poly-line according to the distribution
func refine(secs []*Section, n int, distr string, spanDir []float64, promote bool) (ref []*Section, err error) {

	m := len(secs)

	// reuse the user sections directly
	if distr == Unchanged {
		if m != n+1 {
			return nil, chk.Err("wing: %q distribution requires exactly npanels+1=%d sections (got %d)", Unchanged, n+1, m)
		}
		ref = make([]*Section, m)
		for i, s := range secs {
			ref[i], err = NewSection(s.LE, s.TE, s.Aero)
			if err != nil {
				return nil, err
			}
		}
		return
	}

	// quarter-chord poly-line and cumulative arc length
	qc := make([][]float64, m)
	s := make([]float64, m)
	for i, sec := range secs {
		qc[i] = make([]float64, 3)
		sec.QuarterChord(qc[i])
		if i > 0 {
			dx := qc[i][0] - qc[i-1][0]
			dy := qc[i][1] - qc[i-1][1]
			dz := qc[i][2] - qc[i-1][2]
			ds := math.Sqrt(dx*dx + dy*dy + dz*dz)
			if ds < 1e-14 {
				return nil, chk.Err("wing: coincident quarter-chord points at sections %d and %d", i-1, i)
			}
			s[i] = s[i-1] + ds
		}
	}
	S := s[m-1]

	// target parameters along the poly-line
	var tgt []float64
	switch distr {
	case Linear:
		tgt = utl.LinSpace(0, S, n+1)
	case Cosine:
		tgt = make([]float64, n+1)
		for k := 0; k <= n; k++ {
			θ := float64(k) * math.Pi / float64(n)
			tgt[k] = S * 0.5 * (1.0 - math.Cos(θ))
		}
	case CosineVGarrel:
		tgt = vanGarrelTargets(secs, s, n)
	case SplitProvided:
		tgt, err = splitProvidedTargets(s, n)
		if err != nil {
			return
		}
	default:
		return nil, chk.Err("wing: unknown panel distribution %q", distr)
	}

	// resample
	ref = make([]*Section, n+1)
	for k, ss := range tgt {

		// exact user section
		if i, hit := knotIndex(s, ss, S); hit {
			ref[k], err = NewSection(secs[i].LE, secs[i].TE, secs[i].Aero)
			if err != nil {
				return nil, err
			}
			continue
		}

		// containing segment and local fraction
		i := sort.SearchFloat64s(s, ss) - 1
		if i < 0 {
			i = 0
		}
		if i > m-2 {
			i = m - 2
		}
		t := (ss - s[i]) / (s[i+1] - s[i])
		ref[k], err = interpSection(secs[i], secs[i+1], qc[i], qc[i+1], t, promote)
		if err != nil {
			return nil, err
		}
	}
	return
}

// knotIndex reports whether ss coincides with a user knot
func knotIndex(s []float64, ss, S float64) (int, bool) {
	for i, si := range s {
		if math.Abs(ss-si) <= knotTol*S {
			return i, true
		}
	}
	return 0, false
}

// interpSection interpolates the section at fraction t between a and b:
// chord direction and chord length are interpolated separately, then LE/TE
// are placed around the interpolated quarter-chord point
func interpSection(a, b *Section, qca, qcb []float64, t float64, promote bool) (o *Section, err error) {

	// chord direction (normalised blend) and length
	dir := make([]float64, 3)
	le := make([]float64, 3)
	te := make([]float64, 3)
	ca, cb := a.Chord(), b.Chord()
	for i := 0; i < 3; i++ {
		da := (a.TE[i] - a.LE[i]) / ca
		db := (b.TE[i] - b.LE[i]) / cb
		dir[i] = (1.0-t)*da + t*db
	}
	if vnormalize(dir) < 1e-14 {
		return nil, chk.Err("wing: opposing chord directions make the interpolated chord vanish")
	}
	c := (1.0-t)*ca + t*cb

	// place LE and TE around the quarter chord
	for i := 0; i < 3; i++ {
		q := qca[i] + t*(qcb[i]-qca[i])
		le[i] = q - 0.25*c*dir[i]
		te[i] = q + 0.75*c*dir[i]
	}

	// aerodynamic data
	mdl, err := maero.Blend(a.Aero, b.Aero, t, promote)
	if err != nil {
		return nil, err
	}
	return NewSection(le, te, mdl)
}

// vanGarrelTargets produces cosine targets reweighted so that nodes
// concentrate where the chord-length gradient along the span is large
func vanGarrelTargets(secs []*Section, s []float64, n int) (tgt []float64) {

	m := len(secs)
	S := s[m-1]

	// chord gradient per user segment
	g := make([]float64, m-1)
	gmax := 0.0
	for i := 0; i < m-1; i++ {
		g[i] = math.Abs(secs[i+1].Chord()-secs[i].Chord()) / (s[i+1] - s[i])
		gmax = math.Max(gmax, g[i])
	}

	// plain cosine when the chord is constant
	tgt = make([]float64, n+1)
	for k := 0; k <= n; k++ {
		θ := float64(k) * math.Pi / float64(n)
		tgt[k] = S * 0.5 * (1.0 - math.Cos(θ))
	}
	if gmax < 1e-14 {
		return
	}

	// node density 1 + |dc/ds|/max|dc/ds| integrated on a fine grid
	nf := 20*n + 1
	u := utl.LinSpace(0, S, nf)
	w := make([]float64, nf) // cumulative weighted length
	seg := 0
	for j := 1; j < nf; j++ {
		um := 0.5 * (u[j] + u[j-1])
		for seg < m-2 && um > s[seg+1] {
			seg++
		}
		ρ := 1.0 + g[seg]/gmax
		w[j] = w[j-1] + ρ*(u[j]-u[j-1])
	}

	// invert the cumulative weight at the cosine fractions
	W := w[nf-1]
	for k := 1; k < n; k++ {
		wk := tgt[k] / S * W
		j := sort.SearchFloat64s(w, wk)
		if j < 1 {
			j = 1
		}
		if j > nf-1 {
			j = nf - 1
		}
		t := (wk - w[j-1]) / (w[j] - w[j-1])
		tgt[k] = u[j-1] + t*(u[j]-u[j-1])
	}
	tgt[0] = 0
	tgt[n] = S
	return
}

// splitProvidedTargets keeps all user quarter-chord parameters and
// subdivides the segments between them proportionally to their lengths
// until n+1 targets exist
func splitProvidedTargets(s []float64, n int) (tgt []float64, err error) {

	m := len(s)
	S := s[m-1]
	extra := n + 1 - m
	if extra < 0 {
		return nil, chk.Err("wing: %q distribution requires npanels+1 ≥ number of sections (%d < %d)", SplitProvided, n+1, m)
	}

	// integer quota per segment, largest remainder for the leftover
	quota := make([]int, m-1)
	frac := make([]float64, m-1)
	used := 0
	for i := 0; i < m-1; i++ {
		q := float64(extra) * (s[i+1] - s[i]) / S
		quota[i] = int(q)
		frac[i] = q - float64(quota[i])
		used += quota[i]
	}
	for used < extra {
		best := 0
		for i := 1; i < m-1; i++ {
			if frac[i] > frac[best] {
				best = i
			}
		}
		quota[best]++
		frac[best] = -1
		used++
	}

	// user knots plus evenly spaced interior points
	tgt = make([]float64, 0, n+1)
	for i := 0; i < m-1; i++ {
		tgt = append(tgt, s[i])
		for k := 1; k <= quota[i]; k++ {
			t := float64(k) / float64(quota[i]+1)
			tgt = append(tgt, s[i]+t*(s[i+1]-s[i]))
		}
	}
	tgt = append(tgt, s[m-1])
	return
}
