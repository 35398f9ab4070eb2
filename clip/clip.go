// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package clip implements the hole-clipping resolver: the effective void
// region of a cross-section is the intersection of each hole ring with the
// union of all solid rings, not the raw hole shape. The polygon arithmetic
// is delegated to the clipper library; this package only scales, runs and
// unscales the operation.
package clip

import (
	"math"

	"github.com/cpmech/gosection/geo"
	clipper "github.com/ctessum/go.clipper"
)

// Holes clips every hole ring against the union of the solid rings and
// returns the effective void rings. A hole entirely inside one convex
// solid is returned unchanged (fast path); a hole with zero overlap
// contributes nothing. The result may hold more rings than there are
// holes when a hole straddles disjoint solids.
func Holes(holes, solids [][]geo.Point) (voids [][]geo.Point) {
	for _, h := range holes {
		if len(h) < 3 {
			continue
		}
		if i := insideConvexSolid(h, solids); i >= 0 {
			voids = append(voids, h)
			continue
		}
		for _, r := range intersect(h, solids) {
			if len(r) >= 3 && math.Abs(RingArea(r)) > 1e-9 {
				voids = append(voids, r)
			}
		}
	}
	return
}

// insideConvexSolid returns the index of a convex solid ring containing
// every vertex of h, or -1. Convexity is required for the vertex test to
// imply full containment.
func insideConvexSolid(h []geo.Point, solids [][]geo.Point) int {
	for i, s := range solids {
		if !IsConvex(s) {
			continue
		}
		all := true
		for _, p := range h {
			if !Inside(p, s) {
				all = false
				break
			}
		}
		if all {
			return i
		}
	}
	return -1
}

// intersect computes hole ∩ union(solids) with the clipper library.
// Coordinates are scaled to integers; NonZero filling makes the set of
// clip paths behave as their union.
func intersect(hole []geo.Point, solids [][]geo.Point) (out [][]geo.Point) {
	s := scaleFor(hole, solids)
	c := clipper.NewClipper(clipper.IoNone)
	c.AddPath(toPath(hole, s), clipper.PtSubject, true)
	for _, r := range solids {
		if len(r) >= 3 {
			c.AddPath(toPath(r, s), clipper.PtClip, true)
		}
	}
	sol, ok := c.Execute1(clipper.CtIntersection, clipper.PftNonZero, clipper.PftNonZero)
	if !ok {
		return
	}
	for _, p := range sol {
		out = append(out, fromPath(p, s))
	}
	return
}

// scaleFor picks the integer scaling so the largest coordinate maps near
// 10^8, keeping clipper inside its fast 64-bit range
func scaleFor(hole []geo.Point, solids [][]geo.Point) float64 {
	max := 0.0
	grow := func(r []geo.Point) {
		for _, p := range r {
			if math.Abs(p.Y) > max {
				max = math.Abs(p.Y)
			}
			if math.Abs(p.Z) > max {
				max = math.Abs(p.Z)
			}
		}
	}
	grow(hole)
	for _, r := range solids {
		grow(r)
	}
	if max < 1e-12 {
		return 1.0
	}
	return 1e8 / max
}

// toPath converts a ring to integer coordinates. z maps to clipper X and
// y to clipper Y so orientations carry over.
func toPath(r []geo.Point, s float64) clipper.Path {
	path := make(clipper.Path, len(r))
	for i, p := range r {
		path[i] = &clipper.IntPoint{X: clipper.CInt(math.Round(p.Z * s)), Y: clipper.CInt(math.Round(p.Y * s))}
	}
	return path
}

// fromPath converts integer coordinates back to a ring
func fromPath(path clipper.Path, s float64) []geo.Point {
	r := make([]geo.Point, len(path))
	for i, ip := range path {
		r[i] = geo.Point{Y: float64(ip.Y) / s, Z: float64(ip.X) / s}
	}
	return r
}

// geometric predicates /////////////////////////////////////////////////////////////////////////////

// RingArea returns the signed area of a ring (positive when the ring is
// counter-clockwise in the z-y plane)
func RingArea(r []geo.Point) (a float64) {
	n := len(r)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += r[i].Y*r[j].Z - r[j].Y*r[i].Z
	}
	return a / 2.0
}

// IsConvex tells whether a ring is convex
func IsConvex(r []geo.Point) bool {
	n := len(r)
	if n < 3 {
		return false
	}
	pos, neg := false, false
	for i := 0; i < n; i++ {
		a, b, c := r[i], r[(i+1)%n], r[(i+2)%n]
		cross := (b.Y-a.Y)*(c.Z-b.Z) - (b.Z-a.Z)*(c.Y-b.Y)
		if cross > 1e-12 {
			pos = true
		}
		if cross < -1e-12 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// Inside tells whether point p is strictly inside ring r (ray casting)
func Inside(p geo.Point, r []geo.Point) bool {
	n := len(r)
	in := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		yi, zi := r[i].Y, r[i].Z
		yj, zj := r[j].Y, r[j].Z
		if (yi > p.Y) != (yj > p.Y) {
			zc := zi + (p.Y-yi)/(yj-yi)*(zj-zi)
			if p.Z < zc {
				in = !in
			}
		}
	}
	return in
}

// DistToRing returns the smallest distance from p to the edges of ring r
func DistToRing(p geo.Point, r []geo.Point) float64 {
	n := len(r)
	if n == 0 {
		return math.Inf(1)
	}
	best := math.Inf(1)
	for i := 0; i < n; i++ {
		if d := distToEdge(p, r[i], r[(i+1)%n]); d < best {
			best = d
		}
	}
	return best
}

// distToEdge returns the distance from p to the segment a-b
func distToEdge(p, a, b geo.Point) float64 {
	dy, dz := b.Y-a.Y, b.Z-a.Z
	l2 := dy*dy + dz*dz
	if l2 < 1e-28 {
		return p.Dist(a)
	}
	t := ((p.Y-a.Y)*dy + (p.Z-a.Z)*dz) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Dist(geo.Point{Y: a.Y + t*dy, Z: a.Z + t*dz})
}

// InMaterial tells whether point p lies in the effective material region:
// inside any solid ring and outside every void ring
func InMaterial(p geo.Point, solids, voids [][]geo.Point) bool {
	ok := false
	for _, s := range solids {
		if Inside(p, s) {
			ok = true
			break
		}
	}
	if !ok {
		return false
	}
	for _, v := range voids {
		if Inside(p, v) {
			return false
		}
	}
	return true
}
