// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"math"

	"github.com/cpmech/gosection/clip"
	"github.com/cpmech/gosection/geo"
	"github.com/cpmech/gosl/chk"
)

// polyInts holds the raw Green's theorem integrals of one closed polygon,
// evaluated in the input frame (about the origin, not the centroid)
type polyInts struct {
	a   float64 // area
	qy  float64 // first moment ∫z dA
	qz  float64 // first moment ∫y dA
	iyy float64 // ∫z² dA
	izz float64 // ∫y² dA
	iyz float64 // ∫y·z dA
}

// ringInts integrates one closed polygon by the trapezoidal (shoelace)
// decomposition of the Green's theorem line integrals:
//
//   ∮ (y dz - z dy) = 2A     with  det_k = y_k·z_{k+1} - z_k·y_{k+1}
//
// The winding orientation of pts is irrelevant: the result is sign-normalized
// so that a (positive area) always comes out positive.
func ringInts(pts []geo.Point) (r polyInts) {
	n := len(pts)
	for k := 0; k < n; k++ {
		i, j := pts[k], pts[(k+1)%n]
		det := i.Y*j.Z - i.Z*j.Y
		r.a += det / 2.0
		r.qz += (i.Y + j.Y) * det / 6.0
		r.qy += (i.Z + j.Z) * det / 6.0
		r.izz += (sq(i.Y) + i.Y*j.Y + sq(j.Y)) * det / 12.0
		r.iyy += (sq(i.Z) + i.Z*j.Z + sq(j.Z)) * det / 12.0
		r.iyz += (i.Y*j.Z + 2.0*i.Y*i.Z + 2.0*j.Y*j.Z + i.Z*j.Y) * det / 24.0
	}
	if r.a < 0 {
		r.a, r.qy, r.qz = -r.a, -r.qy, -r.qz
		r.iyy, r.izz, r.iyz = -r.iyy, -r.izz, -r.iyz
	}
	return
}

// Exact computes the boundary-integral properties of a section given its
// discretized solid rings and the (clipped) void rings. Voids must already
// be restricted to the solid overlap; they enter with negative sign.
// The second moments are shifted to the centroid by the parallel axis
// theorem, and the elastic moduli and radii of gyration follow.
func Exact(solids, voids [][]geo.Point) (res *Properties, err error) {
	if len(solids) < 1 {
		return nil, chk.Err("at least one solid contour is required")
	}
	res = new(Properties)
	var t polyInts
	add := func(r polyInts, sign float64) {
		t.a += sign * r.a
		t.qy += sign * r.qy
		t.qz += sign * r.qz
		t.iyy += sign * r.iyy
		t.izz += sign * r.izz
		t.iyz += sign * r.iyz
	}
	for _, ring := range solids {
		if len(ring) < 3 {
			return nil, chk.Err("solid ring must have at least 3 points")
		}
		add(ringInts(ring), +1)
	}
	for _, ring := range voids {
		if len(ring) < 3 {
			continue
		}
		add(ringInts(ring), -1)
	}
	if t.a < 1e-14 {
		return nil, chk.Err("section has zero or negative net area: A=%g", t.a)
	}

	res.A = t.a
	res.Cy = t.qz / t.a
	res.Cz = t.qy / t.a

	// parallel axis shift to centroid
	res.Iy = t.iyy - t.a*sq(res.Cz)
	res.Iz = t.izz - t.a*sq(res.Cy)
	res.Iyz = t.iyz - t.a*res.Cy*res.Cz

	// extreme fiber distances: over solid rings only, so that an interior
	// hole never shrinks the elastic modulus denominators
	for _, ring := range solids {
		for _, p := range ring {
			res.Ymax = math.Max(res.Ymax, math.Abs(p.Y-res.Cy))
			res.Zmax = math.Max(res.Zmax, math.Abs(p.Z-res.Cz))
		}
	}
	if res.Zmax > 0 {
		res.Sy = res.Iy / res.Zmax
	}
	if res.Ymax > 0 {
		res.Sz = res.Iz / res.Ymax
	}
	res.Ry = math.Sqrt(res.Iy / res.A)
	res.Rz = math.Sqrt(res.Iz / res.A)
	return
}

// RingArea returns the absolute area of one closed polygon
func RingArea(pts []geo.Point) float64 {
	return math.Abs(clip.RingArea(pts))
}
