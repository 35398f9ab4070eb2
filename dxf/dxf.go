// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dxf reads and writes a minimal DXF subset for section
// geometry interchange: LINE, ARC and LWPOLYLINE (with bulge arcs)
// entities. The CAD X axis maps to the section y-axis and the CAD Y
// axis to the section z-axis; consequently a CAD counterclockwise sweep
// is clockwise in the section frame.
package dxf

import (
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/gosection/geo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// pair is one DXF group code with its raw value
type pair struct {
	code int
	val  string
}

// Read parses a DXF file and returns one contour per entity. Entities are
// not chained: every LINE and ARC becomes its own (open) contour, while an
// LWPOLYLINE becomes one connected contour, closed when the entity flags
// say so. Unsupported entities are skipped.
func Read(filename string) (contours []*geo.Contour, err error) {
	buf, err := io.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	pairs, err := parsePairs(string(buf))
	if err != nil {
		return nil, err
	}

	// locate the ENTITIES section
	start, end := -1, -1
	for i, p := range pairs {
		if p.code == 2 && p.val == "ENTITIES" {
			start = i
		}
		if start >= 0 && p.code == 0 && p.val == "ENDSEC" {
			end = i
			break
		}
	}
	if start < 0 || end < 0 {
		return nil, chk.Err("cannot find ENTITIES section in %q", filename)
	}

	for i := start + 1; i < end; {
		if pairs[i].code != 0 {
			i++
			continue
		}
		kind := pairs[i].val
		i++
		var ent []pair
		for i < end && pairs[i].code != 0 {
			ent = append(ent, pairs[i])
			i++
		}
		c, err := entity(kind, ent)
		if err != nil {
			return nil, err
		}
		if c != nil {
			contours = append(contours, c)
		}
	}
	return
}

// parsePairs splits the raw content into (code, value) pairs
func parsePairs(s string) (pairs []pair, err error) {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i := 0; i+1 < len(lines); i += 2 {
		cs := strings.TrimSpace(lines[i])
		if cs == "" {
			break
		}
		code, err := strconv.Atoi(cs)
		if err != nil {
			return nil, chk.Err("malformed DXF group code at line %d: %q", i+1, cs)
		}
		pairs = append(pairs, pair{code, strings.TrimSpace(lines[i+1])})
	}
	return
}

func fval(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// entity converts one entity's pairs into a contour, or nil for entity
// kinds outside the supported subset
func entity(kind string, ent []pair) (*geo.Contour, error) {
	switch kind {
	case "LINE":
		var x1, y1, x2, y2 float64
		for _, p := range ent {
			switch p.code {
			case 10:
				x1 = fval(p.val)
			case 20:
				y1 = fval(p.val)
			case 11:
				x2 = fval(p.val)
			case 21:
				y2 = fval(p.val)
			}
		}
		return geo.NewContour(&geo.Line{P0: geo.Point{Y: x1, Z: y1}, P1: geo.Point{Y: x2, Z: y2}}), nil

	case "ARC":
		var cx, cy, r, d0, d1 float64
		for _, p := range ent {
			switch p.code {
			case 10:
				cx = fval(p.val)
			case 20:
				cy = fval(p.val)
			case 40:
				r = fval(p.val)
			case 50:
				d0 = fval(p.val)
			case 51:
				d1 = fval(p.val)
			}
		}
		if r <= 0 {
			return nil, chk.Err("ARC entity has invalid radius %g", r)
		}
		a0, a1 := d0*math.Pi/180.0, d1*math.Pi/180.0
		if a1 <= a0 {
			a1 += 2 * math.Pi
		}
		// the CAD sweep a0→a1 covers section angles π/2-a1 → π/2-a0;
		// a standalone contour may be traced in either direction, so the
		// reversed (counterclockwise) parametrization is used
		c := geo.Point{Y: cx, Z: cy}
		return geo.NewContour(&geo.Arc{C: c, R: r, Th0: math.Pi/2 - a1, Th1: math.Pi/2 - a0}), nil

	case "LWPOLYLINE":
		return polyline(ent)
	}
	return nil, nil
}

// polyline assembles an LWPOLYLINE: vertices arrive in order as (10,20)
// pairs, each optionally followed by a bulge (42) that turns the segment
// to the NEXT vertex into a circular arc
func polyline(ent []pair) (*geo.Contour, error) {
	var pts []geo.Point
	var bulges []float64
	closed := false
	havex, havey := false, false
	var cx, cy, cb float64
	push := func() {
		if havex && havey {
			pts = append(pts, geo.Point{Y: cx, Z: cy})
			bulges = append(bulges, cb)
		}
	}
	for _, p := range ent {
		switch p.code {
		case 70:
			if n, err := strconv.Atoi(p.val); err == nil && n&1 == 1 {
				closed = true
			}
		case 10:
			push()
			cx, havex = fval(p.val), true
			havey, cb = false, 0
		case 20:
			cy, havey = fval(p.val), true
		case 42:
			cb = fval(p.val)
		}
	}
	push()
	if len(pts) < 2 {
		return nil, chk.Err("LWPOLYLINE has fewer than 2 vertices")
	}

	var segs []geo.Segment
	for k := 0; k+1 < len(pts); k++ {
		segs = append(segs, bulgeSegs(pts[k], pts[k+1], bulges[k])...)
	}
	if closed {
		segs = append(segs, bulgeSegs(pts[len(pts)-1], pts[0], bulges[len(bulges)-1])...)
	}
	return geo.NewContour(segs...), nil
}

// bulgeSegs turns one polyline edge into a line (zero bulge) or a
// circular arc. The bulge is the tangent of a quarter of the included
// angle; its sign gives the CAD sweep direction. A positive bulge is
// clockwise in the section frame and cannot be a native arc, so it is
// emitted as a chain of cubic quarter-turn approximations.
func bulgeSegs(p1, p2 geo.Point, b float64) []geo.Segment {
	if math.Abs(b) < 1e-6 {
		return []geo.Segment{&geo.Line{P0: p1, P1: p2}}
	}

	// chord and sagitta give radius and centre; the centre sits on the
	// chord normal, on the side fixed by the bulge sign. In the section
	// frame the left normal of the chord p1→p2 (as seen in CAD) is
	// (dz, -dy) normalized.
	dy, dz := p2.Y-p1.Y, p2.Z-p1.Z
	chord := math.Sqrt(dy*dy + dz*dz)
	sag := chord / 2.0 * math.Abs(b)
	r := (chord*chord/4.0 + sag*sag) / (2.0 * sag)
	sign := 1.0
	if b < 0 {
		sign = -1.0
	}
	my, mz := (p1.Y+p2.Y)/2.0, (p1.Z+p2.Z)/2.0
	ny, nz := -dz/chord, dy/chord // CAD left normal mapped into (y,z)
	cy := my + ny*sign*(sag-r)
	cz := mz + nz*sign*(sag-r)
	c := geo.Point{Y: cy, Z: cz}

	th1 := math.Atan2(p1.Y-cy, p1.Z-cz)
	th2 := math.Atan2(p2.Y-cy, p2.Z-cz)
	if b < 0 {
		// counterclockwise in the section frame: native arc
		return []geo.Segment{&geo.Arc{C: c, R: r, Th0: th1, Th1: th2}}
	}

	// clockwise sweep th1 → th2 with th2 < th1
	for th2 >= th1 {
		th2 -= 2 * math.Pi
	}
	var segs []geo.Segment
	for a := th1; a > th2; {
		step := math.Min(a-th2, math.Pi/2.0)
		segs = append(segs, geo.FilletArc(c, r, a, a-step))
		a -= step
	}
	return segs
}

// Write exports contours as a minimal DXF document. Lines and arcs map to
// native entities; cubic segments are flattened into short line chains.
func Write(dirout, fn string, contours []*geo.Contour) {
	var sb strings.Builder
	sb.WriteString("0\nSECTION\n2\nHEADER\n0\nENDSEC\n")
	sb.WriteString("0\nSECTION\n2\nENTITIES\n")
	for _, c := range contours {
		for _, s := range c.Segs {
			writeSeg(&sb, s)
		}
	}
	sb.WriteString("0\nENDSEC\n0\nEOF\n")
	io.WriteFileSD(dirout, fn, sb.String())
}

func writeSeg(sb *strings.Builder, s geo.Segment) {
	switch seg := s.(type) {
	case *geo.Line:
		writeLine(sb, seg.P0, seg.P1)
	case *geo.Arc:
		// section angles map back to CAD angles via d = π/2 - θ; the CAD
		// ARC must sweep counterclockwise, so the bounds are swapped
		d0 := (math.Pi/2 - seg.Th1) * 180.0 / math.Pi
		d1 := (math.Pi/2 - seg.Th0) * 180.0 / math.Pi
		sb.WriteString("0\nARC\n8\n0\n")
		sb.WriteString(io.Sf("10\n%g\n20\n%g\n", seg.C.Y, seg.C.Z))
		sb.WriteString(io.Sf("40\n%g\n50\n%g\n51\n%g\n", seg.R, d0, d1))
	case *geo.Cubic:
		pts := seg.Discretize(10)
		for i := 0; i+1 < len(pts); i++ {
			writeLine(sb, pts[i], pts[i+1])
		}
	}
}

func writeLine(sb *strings.Builder, a, b geo.Point) {
	sb.WriteString("0\nLINE\n8\n0\n")
	sb.WriteString(io.Sf("10\n%g\n20\n%g\n", a.Y, a.Z))
	sb.WriteString(io.Sf("11\n%g\n21\n%g\n", b.Y, b.Z))
}
