// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"math"

	"github.com/cpmech/gosection/geo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Library of standard structural shapes. All builders centre the shape at
// the origin and return the analytic geometry; pass it to New to obtain
// the section. Dimensions follow the structural convention: depth d (or
// height h) along y, width b along z.

// Rect returns a solid rectangle of height h (along y) and width b (along z)
func Rect(h, b float64) (*geo.Geometry, error) {
	if h <= 0 || b <= 0 {
		return nil, chk.Err("rectangle dimensions must be positive. h=%g, b=%g", h, b)
	}
	c := geo.NewContour(
		&geo.Line{P0: geo.Point{Y: -h / 2, Z: -b / 2}, P1: geo.Point{Y: -h / 2, Z: b / 2}},
		&geo.Line{P0: geo.Point{Y: -h / 2, Z: b / 2}, P1: geo.Point{Y: h / 2, Z: b / 2}},
		&geo.Line{P0: geo.Point{Y: h / 2, Z: b / 2}, P1: geo.Point{Y: h / 2, Z: -b / 2}},
		&geo.Line{P0: geo.Point{Y: h / 2, Z: -b / 2}, P1: geo.Point{Y: -h / 2, Z: -b / 2}},
	)
	return geo.NewGeometry(c), nil
}

// ISection returns a doubly symmetric I-shape:
//
//         _________________  ___
//        |_______   _______|  tf
//            r  (   )            r: root fillet radius between
//               |   |            web and flange (may be zero)
//               |   |  d
//               | tw|
//         ______(   )______
//        |_________________| ___
//
//        |<------ b ------>|
//
func ISection(d, b, tf, tw, r float64) (*geo.Geometry, error) {
	if d <= 0 || b <= 0 || tf <= 0 || tw <= 0 || r < 0 {
		return nil, chk.Err("invalid I-section dimensions: d=%g b=%g tf=%g tw=%g r=%g", d, b, tf, tw, r)
	}
	if 2*tf+2*r >= d || tw+2*r >= b {
		return nil, chk.Err("I-section walls overlap: d=%g b=%g tf=%g tw=%g r=%g", d, b, tf, tw, r)
	}
	var segs []geo.Segment
	line := func(y0, z0, y1, z1 float64) {
		segs = append(segs, &geo.Line{P0: geo.Point{Y: y0, Z: z0}, P1: geo.Point{Y: y1, Z: z1}})
	}
	fillet := func(cy, cz, tha, thb float64) {
		segs = append(segs, geo.FilletArc(geo.Point{Y: cy, Z: cz}, r, tha, thb))
	}

	// trace from the top-right corner, top flange first
	line(d/2, b/2, d/2, -b/2)
	line(d/2, -b/2, d/2-tf, -b/2)
	if r > 0 {
		line(d/2-tf, -b/2, d/2-tf, -tw/2-r)
		fillet(d/2-tf-r, -tw/2-r, math.Pi/2, 0) // into the web, left side
		line(d/2-tf-r, -tw/2, -d/2+tf+r, -tw/2)
		fillet(-d/2+tf+r, -tw/2-r, 0, -math.Pi/2)
		line(-d/2+tf, -tw/2-r, -d/2+tf, -b/2)
	} else {
		line(d/2-tf, -b/2, d/2-tf, -tw/2)
		line(d/2-tf, -tw/2, -d/2+tf, -tw/2)
		line(-d/2+tf, -tw/2, -d/2+tf, -b/2)
	}
	line(-d/2+tf, -b/2, -d/2, -b/2)
	line(-d/2, -b/2, -d/2, b/2)
	line(-d/2, b/2, -d/2+tf, b/2)
	if r > 0 {
		line(-d/2+tf, b/2, -d/2+tf, tw/2+r)
		fillet(-d/2+tf+r, tw/2+r, -math.Pi/2, -math.Pi) // into the web, right side
		line(-d/2+tf+r, tw/2, d/2-tf-r, tw/2)
		fillet(d/2-tf-r, tw/2+r, math.Pi, math.Pi/2)
		line(d/2-tf, tw/2+r, d/2-tf, b/2)
	} else {
		line(-d/2+tf, b/2, -d/2+tf, tw/2)
		line(-d/2+tf, tw/2, d/2-tf, tw/2)
		line(d/2-tf, tw/2, d/2-tf, b/2)
	}
	line(d/2-tf, b/2, d/2, b/2)
	return geo.NewGeometry(geo.NewContour(segs...)), nil
}

// Channel returns a singly symmetric U-shape with the web at z=0 and the
// flanges opening towards +z. h is the depth along y, b the flange reach
// along z, tw the web thickness, tf the flange thickness, r the root
// fillet radius (may be zero). The symmetry axis is y=0.
func Channel(h, b, tw, tf, r float64) (*geo.Geometry, error) {
	if h <= 0 || b <= 0 || tw <= 0 || tf <= 0 || r < 0 {
		return nil, chk.Err("invalid channel dimensions: h=%g b=%g tw=%g tf=%g r=%g", h, b, tw, tf, r)
	}
	if 2*tf+2*r >= h || tw+r >= b {
		return nil, chk.Err("channel walls overlap: h=%g b=%g tw=%g tf=%g r=%g", h, b, tw, tf, r)
	}
	var segs []geo.Segment
	line := func(y0, z0, y1, z1 float64) {
		segs = append(segs, &geo.Line{P0: geo.Point{Y: y0, Z: z0}, P1: geo.Point{Y: y1, Z: z1}})
	}

	line(-h/2, 0, -h/2, b)
	line(-h/2, b, -h/2+tf, b)
	if r > 0 {
		line(-h/2+tf, b, -h/2+tf, tw+r)
		segs = append(segs, geo.FilletArc(geo.Point{Y: -h/2 + tf + r, Z: tw + r}, r, -math.Pi/2, -math.Pi))
		line(-h/2+tf+r, tw, h/2-tf-r, tw)
		segs = append(segs, geo.FilletArc(geo.Point{Y: h/2 - tf - r, Z: tw + r}, r, math.Pi, math.Pi/2))
		line(h/2-tf, tw+r, h/2-tf, b)
	} else {
		line(-h/2+tf, b, -h/2+tf, tw)
		line(-h/2+tf, tw, h/2-tf, tw)
		line(h/2-tf, tw, h/2-tf, b)
	}
	line(h/2-tf, b, h/2, b)
	line(h/2, b, h/2, 0)
	line(h/2, 0, -h/2, 0)
	return geo.NewGeometry(geo.NewContour(segs...)), nil
}

// CHS returns a circular hollow section with outer diameter d and wall
// thickness t, as a full outer circle plus a hollow inner circle
func CHS(d, t float64) (*geo.Geometry, error) {
	if d <= 0 || t <= 0 || 2*t >= d {
		return nil, chk.Err("invalid CHS dimensions: d=%g t=%g", d, t)
	}
	outer := geo.NewContour(&geo.Arc{C: geo.Point{Y: 0, Z: 0}, R: d / 2, Th0: 0, Th1: 2 * math.Pi})
	inner := geo.NewHole(&geo.Arc{C: geo.Point{Y: 0, Z: 0}, R: d/2 - t, Th0: 0, Th1: 2 * math.Pi})
	return geo.NewGeometry(outer, inner), nil
}

// RHS returns a rectangular hollow section of height h, width b and wall
// thickness t, with outer corner radius ro and inner corner radius ri
// (either may be zero for square corners)
func RHS(h, b, t, ro, ri float64) (*geo.Geometry, error) {
	if h <= 0 || b <= 0 || t <= 0 || ro < 0 || ri < 0 {
		return nil, chk.Err("invalid RHS dimensions: h=%g b=%g t=%g ro=%g ri=%g", h, b, t, ro, ri)
	}
	if 2*t >= h || 2*t >= b || 2*ro >= utl.Min(h, b) || 2*ri >= utl.Min(h, b)-2*t {
		return nil, chk.Err("RHS walls overlap: h=%g b=%g t=%g ro=%g ri=%g", h, b, t, ro, ri)
	}
	outer := roundedRect(h, b, ro, false)
	inner := roundedRect(h-2*t, b-2*t, ri, true)
	return geo.NewGeometry(outer, inner), nil
}

// roundedRect builds one rectangle contour with convex corner arcs of
// radius r, traced with increasing arc angle
func roundedRect(h, b, r float64, hollow bool) *geo.Contour {
	var segs []geo.Segment
	line := func(y0, z0, y1, z1 float64) {
		segs = append(segs, &geo.Line{P0: geo.Point{Y: y0, Z: z0}, P1: geo.Point{Y: y1, Z: z1}})
	}
	corner := func(cy, cz, tha, thb float64) {
		segs = append(segs, &geo.Arc{C: geo.Point{Y: cy, Z: cz}, R: r, Th0: tha, Th1: thb})
	}
	hy, hz := h/2, b/2
	if r > 0 {
		line(-(hy - r), hz, hy-r, hz)
		corner(hy-r, hz-r, 0, math.Pi/2)
		line(hy, hz-r, hy, -(hz - r))
		corner(hy-r, -(hz - r), math.Pi/2, math.Pi)
		line(hy-r, -hz, -(hy - r), -hz)
		corner(-(hy - r), -(hz - r), math.Pi, 3*math.Pi/2)
		line(-hy, -(hz - r), -hy, hz-r)
		corner(-(hy - r), hz-r, 3*math.Pi/2, 2*math.Pi)
	} else {
		line(-hy, hz, hy, hz)
		line(hy, hz, hy, -hz)
		line(hy, -hz, -hy, -hz)
		line(-hy, -hz, -hy, hz)
	}
	if hollow {
		return geo.NewHole(segs...)
	}
	return geo.NewContour(segs...)
}
