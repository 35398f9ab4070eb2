// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"github.com/cpmech/gosl/io"
)

// ConnectTol is the absolute tolerance used when checking that consecutive
// segments connect and that a contour closes
const ConnectTol = 1e-8

// Contour is an ordered sequence of connected segments forming the boundary
// of one region, tagged solid or hollow. A contour held inside a Geometry
// may still be open (e.g. during incremental construction); it must be
// closed before it can be part of a Section.
type Contour struct {
	Segs   []Segment // ordered segments
	Hollow bool      // region is subtracted from enclosing solids
}

// NewContour returns a new solid contour with the given segments
func NewContour(segs ...Segment) *Contour {
	return &Contour{Segs: segs}
}

// NewHole returns a new hollow contour with the given segments
func NewHole(segs ...Segment) *Contour {
	return &Contour{Segs: segs, Hollow: true}
}

// Length returns the total perimeter of this contour
func (o *Contour) Length() (l float64) {
	for _, s := range o.Segs {
		l += s.Length()
	}
	return
}

// CheckClosed checks segment-to-segment connectivity and closure within
// ConnectTol. idx identifies this contour in error messages.
func (o *Contour) CheckClosed(idx int) error {
	n := len(o.Segs)
	if n == 0 {
		return &GeometryError{io.Sf("contour %d has no segments", idx), idx, -1}
	}
	for i, s := range o.Segs {
		if s.Length() < ConnectTol {
			return &GeometryError{io.Sf("contour %d: segment %d is degenerate (zero length)", idx, i), idx, i}
		}
	}
	for i := 0; i < n-1; i++ {
		if o.Segs[i].End().Dist(o.Segs[i+1].Start()) > ConnectTol {
			return &GeometryError{io.Sf("contour %d: segment %d end does not connect to segment %d start", idx, i, i+1), idx, i}
		}
	}
	if o.Segs[n-1].End().Dist(o.Segs[0].Start()) > ConnectTol {
		return &GeometryError{io.Sf("contour %d is not closed: segment %d end does not meet segment 0 start", idx, n-1), idx, n - 1}
	}
	return nil
}

// IsClosed tells whether this contour is closed (connectivity and closure
// within ConnectTol)
func (o *Contour) IsClosed() bool {
	return o.CheckClosed(0) == nil
}

// Discretize returns the boundary points of this contour. Each segment is
// discretized with the given resolution and duplicate junction points are
// dropped; for a closed contour the duplicate closing point is dropped as
// well, so the result is a ring.
func (o *Contour) Discretize(res int) (pts []Point) {
	for _, s := range o.Segs {
		sp := s.Discretize(res)
		if len(pts) > 0 && pts[len(pts)-1].Dist(sp[0]) < ConnectTol {
			sp = sp[1:]
		}
		pts = append(pts, sp...)
	}
	if len(pts) > 1 && pts[0].Dist(pts[len(pts)-1]) < ConnectTol {
		pts = pts[:len(pts)-1]
	}
	return
}

// DiscretizeUniform resamples this contour into count points at truly equal
// spacing along the total perimeter, spanning segment boundaries
// transparently. For an open contour the first and last points are the
// analytic endpoints; for a closed contour the duplicate closing point is
// dropped and the spacing is perimeter/count.
func (o *Contour) DiscretizeUniform(count int) (pts []Point) {
	if count < 2 || len(o.Segs) == 0 {
		return
	}
	total := o.Length()
	closed := o.IsClosed()
	var ds float64
	if closed {
		ds = total / float64(count)
	} else {
		ds = total / float64(count-1)
	}
	pts = make([]Point, count)
	iseg := 0
	sl := o.Segs[0].Length() // length of current segment
	s0 := 0.0                // arclength at start of current segment
	for i := 0; i < count; i++ {
		s := ds * float64(i)
		for s > s0+sl+1e-12 && iseg < len(o.Segs)-1 {
			s0 += sl
			iseg++
			sl = o.Segs[iseg].Length()
		}
		pts[i] = o.Segs[iseg].PointAtLength(s - s0)
	}
	if !closed {
		pts[0] = o.Segs[0].Start()
		pts[count-1] = o.Segs[len(o.Segs)-1].End()
	}
	return
}

// Geometry ////////////////////////////////////////////////////////////////////////////////////////

// Ring is one discretized contour boundary: a point ring plus its
// solid/hollow tag. Rings are what the property calculator, the
// hole-clipping resolver and external renderers consume.
type Ring struct {
	Pts    []Point // boundary points (no duplicate closing point)
	Hollow bool    // ring belongs to a hollow contour
}

// Geometry is an ordered collection of contours. A Geometry does not
// require its contours to be closed; a Section does. Contours are owned
// exclusively by their Geometry.
type Geometry struct {
	Contours []*Contour
}

// NewGeometry returns a new geometry holding the given contours
func NewGeometry(contours ...*Contour) *Geometry {
	return &Geometry{Contours: contours}
}

// CheckClosed checks that every contour is closed; the error identifies
// the offending contour and segment
func (o *Geometry) CheckClosed() error {
	for i, c := range o.Contours {
		if err := c.CheckClosed(i); err != nil {
			return err
		}
	}
	return nil
}

// Discretize returns one ring per contour, each discretized with res
func (o *Geometry) Discretize(res int) (rings []Ring) {
	rings = make([]Ring, len(o.Contours))
	for i, c := range o.Contours {
		rings[i] = Ring{c.Discretize(res), c.Hollow}
	}
	return
}

// DiscretizeUniform returns one ring per contour, each resampled into
// count points at equal spacing along its perimeter
func (o *Geometry) DiscretizeUniform(count int) (rings []Ring) {
	rings = make([]Ring, len(o.Contours))
	for i, c := range o.Contours {
		rings[i] = Ring{c.DiscretizeUniform(count), c.Hollow}
	}
	return
}
