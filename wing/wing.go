// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wing

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/govsm/maero"
)

// spanwise panel distributions
const (
	Linear        = "linear"
	Cosine        = "cosine"
	CosineVGarrel = "cosine-van-garrel"
	SplitProvided = "split-provided"
	Unchanged     = "unchanged"
)

// Wing holds the user sections of one wing and the refined mesh derived from
// them. User sections may be added in any order; they are canonicalised by
// sorting along SpanDir (descending) before refinement, so the refined mesh
// is order-invariant.
type Wing struct {

	// configuration
	Npanels     int       // number of spanwise panels
	Distr       string    // panel distribution
	SpanDir     []float64 // spanwise direction; default (0,1,0)
	RemoveNan   bool      // drop NaN rows from polar-vector tables
	StrictBlend bool      // refuse inviscid-next-to-polar promotion

	// geometry
	Sections []*Section // user sections (input order)
	Refined  []*Section // Npanels+1 refined sections (built by Refine)
	Panels   []*Panel   // Npanels panels (built by BuildPanels)
}

// NewWing returns a new wing
func NewWing(npanels int, distr string) (o *Wing, err error) {
	if npanels < 1 {
		return nil, chk.Err("wing: npanels must be at least 1 (got %d)", npanels)
	}
	switch distr {
	case Linear, Cosine, CosineVGarrel, SplitProvided, Unchanged:
	default:
		return nil, chk.Err("wing: unknown panel distribution %q", distr)
	}
	o = &Wing{
		Npanels:   npanels,
		Distr:     distr,
		SpanDir:   []float64{0, 1, 0},
		RemoveNan: true,
	}
	return
}

// AddSection appends one user section. Order independent.
func (o *Wing) AddSection(le, te []float64, model maero.Model) (err error) {
	s, err := NewSection(le, te, model)
	if err != nil {
		return
	}
	o.Sections = append(o.Sections, s)
	o.Refined = nil
	o.Panels = nil
	return
}

// Refine sorts the user sections along SpanDir and resamples them into
// Npanels+1 refined sections according to the chosen distribution
func (o *Wing) Refine() (err error) {
	if len(o.Sections) < 2 {
		return chk.Err("wing: at least two sections are required (got %d)", len(o.Sections))
	}

	// canonical order: descending projection onto the spanwise direction
	sorted := make([]*Section, len(o.Sections))
	copy(sorted, o.Sections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return vdot(sorted[i].LE, o.SpanDir) > vdot(sorted[j].LE, o.SpanDir)
	})

	o.Refined, err = refine(sorted, o.Npanels, o.Distr, o.SpanDir, !o.StrictBlend)
	if err != nil {
		return
	}

	// refined sections must be strictly monotone along the span axis
	for i := 1; i < len(o.Refined); i++ {
		if vdot(o.Refined[i].LE, o.SpanDir) >= vdot(o.Refined[i-1].LE, o.SpanDir) {
			return chk.Err("wing: refinement produced non-monotone sections along the span axis")
		}
	}
	o.Panels = nil
	return
}

// BuildPanels builds the Npanels panels from the refined sections
func (o *Wing) BuildPanels() (err error) {
	if o.Refined == nil {
		err = o.Refine()
		if err != nil {
			return
		}
	}
	o.Panels = make([]*Panel, o.Npanels)
	for i := 0; i < o.Npanels; i++ {
		o.Panels[i], err = NewPanel(o.Refined[i], o.Refined[i+1])
		if err != nil {
			return
		}
	}
	return
}
