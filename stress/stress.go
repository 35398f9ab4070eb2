// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stress evaluates stresses on a cross-section under a set of
// internal force resultants. The evaluator is stateless and pure: it
// never mutates the section, so one section may serve many independent
// load cases concurrently.
package stress

import (
	"math"

	"github.com/cpmech/gosection/geo"
	"github.com/cpmech/gosection/sec"
	"github.com/cpmech/gosl/chk"
)

// Resultants holds the six internal forces acting on the section.
// N is positive in tension. Positive My compresses +z fibers and
// positive Mz compresses +y fibers.
type Resultants struct {
	N  float64 // axial force
	Vy float64 // shear force along y
	Vz float64 // shear force along z
	Mx float64 // torsional moment
	My float64 // bending moment about y
	Mz float64 // bending moment about z
}

// Engine evaluates stress quantities at centroid-relative points of one
// section under one set of resultants
type Engine struct {
	Sec *sec.Section
	R   Resultants

	// number of equally spaced boundary samples per contour used by the
	// Max/Min extrema search
	NSamples int
}

// stress kind names accepted by At, Max and Min
var Kinds = []string{"sigma", "sigma_axial", "sigma_bending", "tau", "tau_shear", "tau_torsion", "von_mises"}

// New returns an evaluator for the given section and resultants
func New(s *sec.Section, r Resultants) *Engine {
	return &Engine{Sec: s, R: r, NSamples: 256}
}

// SigmaAxial returns the uniform normal stress N/A
func (o *Engine) SigmaAxial() float64 {
	return o.R.N / o.Sec.Props.A
}

// SigmaBending returns the normal stress from both bending moments at a
// centroid-relative point:
//
//   σ_b = My·z̄/Iy - Mz·ȳ/Iz
func (o *Engine) SigmaBending(p geo.Point) (res float64) {
	if o.Sec.Props.Iy > 0 {
		res += o.R.My * p.Z / o.Sec.Props.Iy
	}
	if o.Sec.Props.Iz > 0 {
		res -= o.R.Mz * p.Y / o.Sec.Props.Iz
	}
	return
}

// Sigma returns the total normal stress at a centroid-relative point
func (o *Engine) Sigma(p geo.Point) float64 {
	return o.SigmaAxial() + o.SigmaBending(p)
}

// TauShear returns the average transverse shear stress magnitude |V|/A.
// This is an approximation: the true distribution needs a shear flow
// analysis and varies over the section.
func (o *Engine) TauShear() float64 {
	a := o.Sec.Props.A
	return math.Sqrt(sq(o.R.Vy/a) + sq(o.R.Vz/a))
}

// TauTorsion returns the torsional shear stress estimate |Mx|·r/J at a
// centroid-relative point, with r the distance to the centroid. Exact for
// circular sections; an approximation elsewhere.
func (o *Engine) TauTorsion(p geo.Point) float64 {
	if o.Sec.Props.J <= 0 {
		return 0
	}
	r := math.Sqrt(sq(p.Y) + sq(p.Z))
	return math.Abs(o.R.Mx * r / o.Sec.Props.J)
}

// Tau returns the combined shear magnitude (conservative sum of the
// transverse and torsional contributions)
func (o *Engine) Tau(p geo.Point) float64 {
	return o.TauShear() + o.TauTorsion(p)
}

// VonMises returns the equivalent stress √(σ² + 3τ²) at a
// centroid-relative point
func (o *Engine) VonMises(p geo.Point) float64 {
	s := o.Sigma(p)
	t := o.Tau(p)
	return math.Sqrt(s*s + 3.0*t*t)
}

// eval dispatches on the kind name without the material gate
func (o *Engine) eval(p geo.Point, kind string) (float64, error) {
	switch kind {
	case "sigma":
		return o.Sigma(p), nil
	case "sigma_axial":
		return o.SigmaAxial(), nil
	case "sigma_bending":
		return o.SigmaBending(p), nil
	case "tau":
		return o.Tau(p), nil
	case "tau_shear":
		return o.TauShear(), nil
	case "tau_torsion":
		return o.TauTorsion(p), nil
	case "von_mises":
		return o.VonMises(p), nil
	}
	return 0, chk.Err("unknown stress kind %q. valid kinds are: %v", kind, Kinds)
}

// At evaluates one stress kind at a centroid-relative point. Points in a
// hole or outside the section fail with an explicit error instead of
// returning a meaningless value.
func (o *Engine) At(p geo.Point, kind string) (float64, error) {
	q := geo.Point{Y: p.Y + o.Sec.Props.Cy, Z: p.Z + o.Sec.Props.Cz}
	if !o.Sec.InMaterial(q) {
		return 0, chk.Err("point (%g,%g) is not inside the material", p.Y, p.Z)
	}
	return o.eval(p, kind)
}

// samples returns centroid-relative boundary points at equal arclength
// spacing. Extreme fiber stresses occur on the boundary, so the extrema
// search needs no interior points.
func (o *Engine) samples() (pts []geo.Point) {
	for _, ring := range o.Sec.BoundaryUniform(o.NSamples) {
		for _, p := range ring.Pts {
			pts = append(pts, geo.Point{Y: p.Y - o.Sec.Props.Cy, Z: p.Z - o.Sec.Props.Cz})
		}
	}
	return
}

// Max returns the maximum of one stress kind over the boundary samples
func (o *Engine) Max(kind string) (res float64, err error) {
	return o.reduce(kind, func(a, b float64) bool { return a > b })
}

// Min returns the minimum of one stress kind over the boundary samples
func (o *Engine) Min(kind string) (res float64, err error) {
	return o.reduce(kind, func(a, b float64) bool { return a < b })
}

func (o *Engine) reduce(kind string, better func(a, b float64) bool) (res float64, err error) {
	pts := o.samples()
	if len(pts) == 0 {
		return 0, chk.Err("section has no boundary samples")
	}
	for i, p := range pts {
		v, err := o.eval(p, kind)
		if err != nil {
			return 0, err
		}
		if i == 0 || better(v, res) {
			res = v
		}
	}
	return
}

func sq(x float64) float64 { return x * x }
