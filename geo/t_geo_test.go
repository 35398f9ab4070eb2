// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_line01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("line01. discretization and arclength")

	l := &Line{Point{0, 0}, Point{0, 10}}
	pts := l.Discretize(10)
	chk.IntAssert(len(pts), 11)
	chk.Scalar(tst, "length", 1e-15, l.Length(), 10)
	for i := 0; i < len(pts)-1; i++ {
		d := pts[i].Dist(pts[i+1])
		chk.Scalar(tst, io.Sf("spacing %d", i), 1e-14, d, 1.0)
	}
	chk.Scalar(tst, "first point y", 1e-17, pts[0].Y, 0)
	chk.Scalar(tst, "last point z", 1e-17, pts[10].Z, 10)

	p := l.PointAtLength(2.5)
	chk.Scalar(tst, "point at s=2.5: z", 1e-15, p.Z, 2.5)
}

func Test_arc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("arc01. angle convention and density")

	// quarter arc from +z to +y
	a := &Arc{Point{0, 0}, 5.0, 0, math.Pi / 2.0}
	chk.Scalar(tst, "span", 1e-15, a.Span(), math.Pi/2.0)
	chk.Scalar(tst, "length", 1e-14, a.Length(), 5.0*math.Pi/2.0)

	s := a.Start()
	e := a.End()
	chk.Scalar(tst, "start y", 1e-15, s.Y, 0)
	chk.Scalar(tst, "start z", 1e-15, s.Z, 5)
	chk.Scalar(tst, "end y", 1e-15, e.Y, 5)
	chk.Scalar(tst, "end z", 1e-14, e.Z, 0)

	// point density proportional to subtended angle: at res=64 a quarter
	// arc gets 16 pieces and a half arc gets 32
	quarter := a.Discretize(64)
	half := (&Arc{Point{0, 0}, 5.0, 0, math.Pi}).Discretize(64)
	chk.IntAssert(len(quarter), 17)
	chk.IntAssert(len(half), 33)

	// wrap through +2π when end < start
	w := &Arc{Point{0, 0}, 1.0, 3.0 * math.Pi / 2.0, math.Pi / 2.0}
	chk.Scalar(tst, "wrapped span", 1e-15, w.Span(), math.Pi)
}

func Test_cubic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cubic01. endpoints and fillet approximation")

	c := &Cubic{Point{0, 0}, Point{1, 1}, Point{2, 2}, Point{3, 3}}
	pts := c.Discretize(8)
	chk.IntAssert(len(pts), 9)
	chk.Scalar(tst, "first y", 1e-17, pts[0].Y, 0)
	chk.Scalar(tst, "last y", 1e-17, pts[8].Y, 3)

	// a degenerate (collinear) cubic is a straight line
	chk.Scalar(tst, "collinear length", 1e-10, c.Length(), 3.0*math.Sqrt2)

	// quarter-circle fillet: all points must stay within 0.03% of radius
	f := FilletArc(Point{0, 0}, 10.0, math.Pi/2.0, 0)
	chk.Scalar(tst, "fillet start y", 1e-14, f.Start().Y, 10)
	chk.Scalar(tst, "fillet end z", 1e-14, f.End().Z, 10)
	for _, p := range f.Discretize(32) {
		r := math.Hypot(p.Y, p.Z)
		if math.Abs(r-10.0) > 10.0*3e-4 {
			tst.Errorf("fillet point radius %g deviates too much from 10", r)
			return
		}
	}
}

func Test_contour01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("contour01. closure validation")

	// closed square
	sq := NewContour(
		&Line{Point{-1, -1}, Point{-1, 1}},
		&Line{Point{-1, 1}, Point{1, 1}},
		&Line{Point{1, 1}, Point{1, -1}},
		&Line{Point{1, -1}, Point{-1, -1}},
	)
	if err := sq.CheckClosed(0); err != nil {
		tst.Errorf("square should be closed:\n%v", err)
		return
	}

	// open chain: error must identify the offending segment
	open := NewContour(
		&Line{Point{0, 0}, Point{0, 10}},
		&Line{Point{0, 10}, Point{5, 10}},
	)
	err := open.CheckClosed(3)
	if err == nil {
		tst.Errorf("open contour must fail the closure check\n")
		return
	}
	gerr, ok := err.(*GeometryError)
	if !ok {
		tst.Errorf("closure violation must be a GeometryError\n")
		return
	}
	io.Pforan("err = %v\n", gerr)
	chk.IntAssert(gerr.Contour, 3)
	chk.IntAssert(gerr.Segment, 1)

	// disconnected segments
	disc := NewContour(
		&Line{Point{0, 0}, Point{0, 10}},
		&Line{Point{1, 10}, Point{0, 0}},
	)
	err = disc.CheckClosed(0)
	if err == nil {
		tst.Errorf("disconnected contour must fail the closure check\n")
		return
	}
	chk.IntAssert(err.(*GeometryError).Segment, 0)

	// degenerate segment
	dgn := NewContour(
		&Line{Point{0, 0}, Point{0, 0}},
	)
	if dgn.CheckClosed(0) == nil {
		tst.Errorf("degenerate segment must fail the closure check\n")
	}
}

func Test_contour02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("contour02. ring discretization")

	// square ring: junction points must not repeat and the closing point
	// must be dropped
	sq := NewContour(
		&Line{Point{-1, -1}, Point{-1, 1}},
		&Line{Point{-1, 1}, Point{1, 1}},
		&Line{Point{1, 1}, Point{1, -1}},
		&Line{Point{1, -1}, Point{-1, -1}},
	)
	pts := sq.Discretize(2)
	chk.IntAssert(len(pts), 8)
}

func Test_uniform01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("uniform01. uniform-by-arclength resampling")

	// two lines with unequal lengths: 10 + 5 = 15
	c := NewContour(
		&Line{Point{0, 0}, Point{0, 10}},
		&Line{Point{0, 10}, Point{5, 10}},
	)
	pts := c.DiscretizeUniform(16)
	chk.IntAssert(len(pts), 16)
	chk.Scalar(tst, "first y", 1e-17, pts[0].Y, 0)
	chk.Scalar(tst, "last y", 1e-15, pts[15].Y, 5)
	chk.Scalar(tst, "last z", 1e-15, pts[15].Z, 10)
	for i := 0; i < len(pts)-1; i++ {
		d := pts[i].Dist(pts[i+1])
		chk.Scalar(tst, io.Sf("spacing %d", i), 1e-12, d, 1.0)
	}

	// semi-circular arc: equal arclength spacing gives equal chords
	a := NewContour(&Arc{Point{0, 0}, 10.0, 0, math.Pi})
	pts = a.DiscretizeUniform(32)
	chk.IntAssert(len(pts), 32)
	first := pts[0].Dist(pts[1])
	for i := 1; i < len(pts)-1; i++ {
		d := pts[i].Dist(pts[i+1])
		chk.Scalar(tst, io.Sf("chord %d", i), 1e-10, d, first)
	}
}

func Test_json01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("json01. exact round-trip")

	g := NewGeometry(
		NewContour(
			&Line{Point{0, 0}, Point{0, 10}},
			&Arc{Point{0, 5}, 5.0, 0, math.Pi},
			&Cubic{Point{0, 0}, Point{1, 2}, Point{3, 4}, Point{5, 6}},
		),
		NewHole(
			&Arc{Point{2, 3}, 1.5, 0, 2.0 * math.Pi},
		),
	)
	b, err := g.Encode()
	if err != nil {
		tst.Errorf("encode failed:\n%v", err)
		return
	}
	io.Pforan("%s\n", b)

	h, err := Decode(b)
	if err != nil {
		tst.Errorf("decode failed:\n%v", err)
		return
	}
	chk.IntAssert(len(h.Contours), 2)
	chk.IntAssert(len(h.Contours[0].Segs), 3)
	if !h.Contours[1].Hollow {
		tst.Errorf("hollow flag lost in round-trip\n")
		return
	}
	arc, ok := h.Contours[0].Segs[1].(*Arc)
	if !ok {
		tst.Errorf("arc kind lost in round-trip\n")
		return
	}
	chk.Scalar(tst, "arc radius", 1e-17, arc.R, 5.0)
	chk.Scalar(tst, "arc end angle", 1e-17, arc.Th1, math.Pi)
	cub, ok := h.Contours[0].Segs[2].(*Cubic)
	if !ok {
		tst.Errorf("cubic kind lost in round-trip\n")
		return
	}
	chk.Scalar(tst, "cubic p2 z", 1e-17, cub.P2.Z, 4.0)
}

func Test_json02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("json02. malformed documents are rejected")

	check := func(doc, field string) {
		_, err := Decode([]byte(doc))
		if err == nil {
			tst.Errorf("document %q must be rejected\n", doc)
			return
		}
		verr, ok := err.(*ValidationError)
		if !ok {
			tst.Errorf("load failure must be a ValidationError\n")
			return
		}
		io.Pfyel("err = %v\n", verr)
		if verr.Field != field {
			tst.Errorf("offending field: got %q, want %q\n", verr.Field, field)
		}
	}

	// unknown version
	check(`{"version":99,"contours":[]}`, "version")

	// unknown segment kind
	check(`{"version":1,"contours":[{"segments":[{"type":"spline"}],"hollow":false}]}`, "type")

	// missing required field
	check(`{"version":1,"contours":[{"segments":[{"type":"line","start":{"y":0,"z":0}}],"hollow":false}]}`, "end")

	// invalid numeric range
	check(`{"version":1,"contours":[{"segments":[{"type":"arc","center":{"y":0,"z":0},"radius":-1,"start_angle":0,"end_angle":1}],"hollow":false}]}`, "radius")
}
