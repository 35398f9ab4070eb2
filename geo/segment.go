// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements the cross-section geometry data model: curve
// segments (lines, circular arcs, cubic curves), contours and geometries,
// together with discretization and JSON encoding
package geo

import (
	"math"
)

// Point holds the coordinates of one point on the cross-section plane
//
//   y (vertical)
//   ^
//   |
//   |
//   o--------> z (horizontal)
//
//  The x-axis is reserved for the longitudinal (beam) direction and is
//  never used by geometry.
type Point struct {
	Y float64 `json:"y"` // vertical coordinate
	Z float64 `json:"z"` // horizontal coordinate
}

// Dist computes the distance between two points
func (o Point) Dist(p Point) float64 {
	return math.Hypot(p.Y-o.Y, p.Z-o.Z)
}

// Segment is one atomic curve primitive on the boundary of a contour.
// The variant set is closed: Line, Arc and Cubic. Discretize always
// returns a sequence starting at the exact start point and ending at the
// exact end point, monotone along the curve.
type Segment interface {
	Start() Point                // exact start point
	End() Point                  // exact end point
	Length() float64             // geometric length
	Discretize(res int) []Point  // boundary points; res has per-kind semantics
	PointAtLength(s float64) Point // point at arclength s from the start
}

// Line ////////////////////////////////////////////////////////////////////////////////////////////

// Line is a straight segment between two points
type Line struct {
	P0 Point `json:"start"` // start point
	P1 Point `json:"end"`   // end point
}

// Start returns the start point
func (o *Line) Start() Point { return o.P0 }

// End returns the end point
func (o *Line) End() Point { return o.P1 }

// Length returns the length of this line
func (o *Line) Length() float64 { return o.P0.Dist(o.P1) }

// Discretize subdivides this line into res equal pieces; i.e. res+1 points
func (o *Line) Discretize(res int) (pts []Point) {
	if res < 1 {
		res = 1
	}
	pts = make([]Point, res+1)
	for i := 0; i <= res; i++ {
		t := float64(i) / float64(res)
		pts[i] = Point{o.P0.Y + t*(o.P1.Y-o.P0.Y), o.P0.Z + t*(o.P1.Z-o.P0.Z)}
	}
	pts[0] = o.P0
	pts[res] = o.P1
	return
}

// PointAtLength returns the point at arclength s measured from the start
func (o *Line) PointAtLength(s float64) Point {
	l := o.Length()
	if l < 1e-14 {
		return o.P0
	}
	t := s / l
	return Point{o.P0.Y + t*(o.P1.Y-o.P0.Y), o.P0.Z + t*(o.P1.Z-o.P0.Z)}
}

// Arc /////////////////////////////////////////////////////////////////////////////////////////////

// Arc is a circular arc segment
//
//          y ^    , - ~ ~
//            |,'    θ1  '-,
//           ,*-_          \
//          /    '-_ R      \
//         |        '-_  θ0  |
//         |     C     '-*---|---> z
//
//  Angle convention: θ = 0 points towards +z and grows counter-clockwise
//  (towards +y). An arc with θ1 < θ0 wraps implicitly through +2π; i.e.
//  arcs are always traced counter-clockwise.
type Arc struct {
	C   Point   `json:"center"`      // center of circle
	R   float64 `json:"radius"`      // radius
	Th0 float64 `json:"start_angle"` // start angle [rad]
	Th1 float64 `json:"end_angle"`   // end angle [rad]
}

// Span returns the (positive) subtended angle of this arc
func (o *Arc) Span() float64 {
	dth := o.Th1 - o.Th0
	for dth <= 0 {
		dth += 2.0 * math.Pi
	}
	return dth
}

// at returns the point at angle θ
func (o *Arc) at(th float64) Point {
	return Point{o.C.Y + o.R*math.Sin(th), o.C.Z + o.R*math.Cos(th)}
}

// Start returns the exact start point
func (o *Arc) Start() Point { return o.at(o.Th0) }

// End returns the exact end point
func (o *Arc) End() Point { return o.at(o.Th1) }

// Length returns the arc length
func (o *Arc) Length() float64 { return o.R * o.Span() }

// Discretize subdivides this arc with point density proportional to the
// subtended angle: res corresponds to the number of pieces of a full
// circle, so a quarter arc at res=64 gets 16 pieces
func (o *Arc) Discretize(res int) (pts []Point) {
	if res < 1 {
		res = 1
	}
	span := o.Span()
	n := int(math.Ceil(float64(res) * span / (2.0 * math.Pi)))
	if n < 1 {
		n = 1
	}
	pts = make([]Point, n+1)
	for i := 0; i <= n; i++ {
		th := o.Th0 + span*float64(i)/float64(n)
		pts[i] = o.at(th)
	}
	pts[0] = o.at(o.Th0)
	pts[n] = o.at(o.Th1)
	return
}

// PointAtLength returns the point at arclength s measured from the start
func (o *Arc) PointAtLength(s float64) Point {
	if o.R < 1e-14 {
		return o.C
	}
	return o.at(o.Th0 + s/o.R)
}

// Cubic ///////////////////////////////////////////////////////////////////////////////////////////

// Cubic is a cubic (Bezier) curve segment defined by four control points.
// The curve starts at P0, ends at P3 and is pulled towards P1 and P2.
type Cubic struct {
	P0 Point `json:"p0"` // start point
	P1 Point `json:"p1"` // first control point
	P2 Point `json:"p2"` // second control point
	P3 Point `json:"p3"` // end point
}

// at evaluates the curve at parameter t ∈ [0,1]
func (o *Cubic) at(t float64) Point {
	u := 1.0 - t
	b0 := u * u * u
	b1 := 3.0 * u * u * t
	b2 := 3.0 * u * t * t
	b3 := t * t * t
	return Point{
		b0*o.P0.Y + b1*o.P1.Y + b2*o.P2.Y + b3*o.P3.Y,
		b0*o.P0.Z + b1*o.P1.Z + b2*o.P2.Z + b3*o.P3.Z,
	}
}

// Start returns the exact start point
func (o *Cubic) Start() Point { return o.P0 }

// End returns the exact end point
func (o *Cubic) End() Point { return o.P3 }

// nlen is the number of chords used internally to approximate arclength
const nlen = 128

// Length returns the length of this curve, approximated by a fine chord sum
func (o *Cubic) Length() (l float64) {
	p := o.P0
	for i := 1; i <= nlen; i++ {
		q := o.at(float64(i) / float64(nlen))
		l += p.Dist(q)
		p = q
	}
	return
}

// Discretize subdivides this curve uniformly in the curve parameter
// (not arclength) into res pieces; i.e. res+1 points
func (o *Cubic) Discretize(res int) (pts []Point) {
	if res < 1 {
		res = 1
	}
	pts = make([]Point, res+1)
	for i := 0; i <= res; i++ {
		pts[i] = o.at(float64(i) / float64(res))
	}
	pts[0] = o.P0
	pts[res] = o.P3
	return
}

// PointAtLength returns the point at arclength s from the start, found by
// walking a fine chord table
func (o *Cubic) PointAtLength(s float64) Point {
	if s <= 0 {
		return o.P0
	}
	cum := 0.0
	p := o.P0
	for i := 1; i <= nlen; i++ {
		q := o.at(float64(i) / float64(nlen))
		d := p.Dist(q)
		if cum+d >= s && d > 1e-14 {
			t := (s - cum) / d
			return Point{p.Y + t*(q.Y-p.Y), p.Z + t*(q.Z-p.Z)}
		}
		cum += d
		p = q
	}
	return o.P3
}

// FilletArc returns a Cubic approximating a circular arc from angle θa to
// θb about center c with radius r. Unlike Arc, the trace may run clockwise
// (θb < θa), which is what concave root fillets need when the boundary is
// traced counter-clockwise. The approximation error for |θb-θa| ≤ π/2 is
// below 0.03% of r.
func FilletArc(c Point, r, tha, thb float64) *Cubic {
	k := 4.0 / 3.0 * math.Tan((thb-tha)/4.0)
	sa, ca := math.Sin(tha), math.Cos(tha)
	sb, cb := math.Sin(thb), math.Cos(thb)
	p0 := Point{c.Y + r*sa, c.Z + r*ca}
	p3 := Point{c.Y + r*sb, c.Z + r*cb}
	// tangent direction at θ is (cosθ, -sinθ) in (y,z)
	p1 := Point{p0.Y + k*r*ca, p0.Z - k*r*sa}
	p2 := Point{p3.Y - k*r*cb, p3.Z + k*r*sb}
	return &Cubic{p0, p1, p2, p3}
}
