// Copyright 2016 The Govsm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/govsm/maero"
	"github.com/cpmech/govsm/wing"
)

// Data holds global data for simulations
type Data struct {
	Desc   string `json:"desc"`   // description of simulation
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/govsm
}

// SetDefaults sets default values
func (o *Data) SetDefaults() {
	if o.DirOut == "" {
		o.DirOut = "/tmp/govsm"
	}
}

// SectionData holds one wing section. Depending on the model, the section
// carries parameters (lei-breukels), 1D polar vectors (polar-vectors) or 2D
// polar matrices (polar-matrices); the inviscid model needs no data.
type SectionData struct {
	LE    []float64   `json:"le"`    // leading edge point
	TE    []float64   `json:"te"`    // trailing edge point
	Model string      `json:"model"` // sectional model name
	Prms  fun.Prms    `json:"prms"`  // model parameters (lei-breukels)
	Alpha []float64   `json:"alpha"` // α grid (polar tables)
	Delta []float64   `json:"delta"` // δ grid (polar-matrices)
	Cl    []float64   `json:"cl"`    // polar-vectors tables
	Cd    []float64   `json:"cd"`
	Cm    []float64   `json:"cm"`
	ClM   [][]float64 `json:"clmat"` // polar-matrices tables
	CdM   [][]float64 `json:"cdmat"`
	CmM   [][]float64 `json:"cmmat"`
}

// WingData holds one wing configuration
type WingData struct {
	Npanels      int            `json:"npanels"`      // number of spanwise panels
	Distribution string         `json:"distribution"` // panel distribution
	SpanDir      []float64      `json:"spandir"`      // spanwise direction
	KeepNan      bool           `json:"keepnan"`      // do not drop NaN rows from polar vectors
	StrictBlend  bool           `json:"strictblend"`  // refuse inviscid promotion during interpolation
	Sections     []*SectionData `json:"sections"`     // wing sections (any order)
}

// FlowData holds the apparent inflow
type FlowData struct {
	Va       []float64 `json:"va"`       // freestream velocity
	Omega    []float64 `json:"omega"`    // solid-body rotation rate
	Origin   []float64 `json:"origin"`   // rotation/reference origin
	RefPoint []float64 `json:"refpoint"` // moment reference point
}

// SetDefaults sets default values
func (o *FlowData) SetDefaults() {
	if o.Origin == nil {
		o.Origin = []float64{0, 0, 0}
	}
	if o.RefPoint == nil {
		o.RefPoint = []float64{0, 0, 0}
	}
	if o.Omega == nil {
		o.Omega = []float64{0, 0, 0}
	}
}

// SolverData holds the circulation solver settings
type SolverData struct {
	Model     string  `json:"model"`     // aerodynamic model: "VSM" or "LLT"
	Type      string  `json:"type"`      // γ-solver type: "fp" (damped fixed-point) or "newton"
	CoreFrac  float64 `json:"corefrac"`  // Rankine core radius as a fraction of filament length
	NmaxIt    int     `json:"nmaxit"`    // max number of iterations
	Rtol      float64 `json:"rtol"`      // relative tolerance on the γ update
	TolRef    float64 `json:"tolref"`    // reference error guarding the relative tolerance
	RelaxFac  float64 `json:"relaxfac"`  // relaxation factor of the fixed-point update
	ArtDamp   bool    `json:"artdamp"`   // artificial (Jameson-style) damping on
	K2        float64 `json:"k2"`        // second-difference damping coefficient
	K4        float64 `json:"k4"`        // fourth-difference damping coefficient
	InitGamma string  `json:"initgamma"` // initial distribution: "elliptic" or "zeros"
	Density   float64 `json:"density"`   // air density
	Mu        float64 `json:"mu"`        // dynamic viscosity
	ShowR     bool    `json:"showr"`     // show residual table
}

// SetDefaults sets default values
func (o *SolverData) SetDefaults() {
	if o.Model == "" {
		o.Model = "VSM"
	}
	if o.Type == "" {
		o.Type = "fp"
	}
	if o.CoreFrac == 0 {
		o.CoreFrac = 1e-20
	}
	if o.NmaxIt == 0 {
		o.NmaxIt = 1500
	}
	if o.Rtol == 0 {
		o.Rtol = 1e-5
	}
	if o.TolRef == 0 {
		o.TolRef = 0.001
	}
	if o.RelaxFac == 0 {
		o.RelaxFac = 0.03
	}
	if o.InitGamma == "" {
		o.InitGamma = "elliptic"
	}
	if o.Density == 0 {
		o.Density = 1.225
	}
	if o.Mu == 0 {
		o.Mu = 1.81e-5
	}
}

// Simulation holds all simulation data
type Simulation struct {
	Data   Data        `json:"data"`
	Wings  []*WingData `json:"wings"`
	Flow   FlowData    `json:"flow"`
	Solver SolverData  `json:"solver"`

	// derived
	FnKey string // simulation file key
}

// ReadSim reads a simulation from a .sim JSON file
func ReadSim(fnamepath string) (o *Simulation, err error) {
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", fnamepath, err)
	}
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q:\n%v", fnamepath, err)
	}
	o.Data.SetDefaults()
	o.Flow.SetDefaults()
	o.Solver.SetDefaults()
	if len(o.Wings) < 1 {
		return nil, chk.Err("simulation file %q has no wings", fnamepath)
	}
	fn := filepath.Base(fnamepath)
	o.FnKey = fn[:len(fn)-len(filepath.Ext(fn))]
	return
}

// GetWings builds the wing structures from the input data
func (o *Simulation) GetWings() (wings []*wing.Wing, err error) {
	wings = make([]*wing.Wing, len(o.Wings))
	for iw, wd := range o.Wings {
		distr := wd.Distribution
		if distr == "" {
			distr = wing.Linear
		}
		w, e := wing.NewWing(wd.Npanels, distr)
		if e != nil {
			return nil, e
		}
		if wd.SpanDir != nil {
			w.SpanDir = wd.SpanDir
		}
		w.RemoveNan = !wd.KeepNan
		w.StrictBlend = wd.StrictBlend
		if len(wd.Sections) < 2 {
			return nil, chk.Err("wing %d has fewer than two sections", iw)
		}
		for is, sd := range wd.Sections {
			mdl, e := buildModel(sd, w.RemoveNan)
			if e != nil {
				return nil, chk.Err("wing %d, section %d: %v", iw, is, e)
			}
			e = w.AddSection(sd.LE, sd.TE, mdl)
			if e != nil {
				return nil, chk.Err("wing %d, section %d: %v", iw, is, e)
			}
		}
		wings[iw] = w
	}
	return
}

// buildModel allocates and initialises one sectional model from input data
func buildModel(sd *SectionData, removeNan bool) (mdl maero.Model, err error) {
	name := sd.Model
	if name == "" {
		name = "inviscid"
	}
	mdl, err = maero.New(name)
	if err != nil {
		return
	}
	err = mdl.Init(sd.Prms)
	if err != nil {
		return
	}
	switch m := mdl.(type) {
	case *maero.PolarVectors:
		err = m.SetTable(sd.Alpha, sd.Cl, sd.Cd, sd.Cm, removeNan)
	case *maero.PolarMatrices:
		err = m.SetTables(sd.Alpha, sd.Delta, sd.ClM, sd.CdM, sd.CmM)
	}
	return
}
