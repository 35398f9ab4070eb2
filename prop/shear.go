// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"math"

	"github.com/cpmech/gosection/clip"
	"github.com/cpmech/gosection/geo"
)

// thirdMoments integrates the centroid-relative third moments of one
// closed polygon by Green's theorem:
//
//   S_yyy = ∫ ȳ³ dA      S_zzz = ∫ z̄³ dA
//
// They vanish on a symmetric section and are the cheapest reliable
// symmetry detector for structural shapes.
func thirdMoments(ring []geo.Point, cy, cz float64) (syyy, szzz float64) {
	n := len(ring)
	for k := 0; k < n; k++ {
		pi, pj := ring[k], ring[(k+1)%n]
		yi, zi := pi.Y-cy, pi.Z-cz
		yj, zj := pj.Y-cy, pj.Z-cz
		det := yi*zj - yj*zi
		syyy += (yi*yi*yi + yi*yi*yj + yi*yj*yj + yj*yj*yj) * det
		szzz += (zi*zi*zi + zi*zi*zj + zi*zj*zj + zj*zj*zj) * det
	}
	syyy /= 20.0
	szzz /= 20.0
	return
}

// ShearCenter fills SCy and SCz of p by the Trefftz construction: with the
// warping function ω from the Saint-Venant Neumann problem, the shear
// center offsets from the centroid follow from the sectorial linear
// moments I_ωy = ∫ω·ȳ dA and I_ωz = ∫ω·z̄ dA as
//
//   e_z = (Iy·I_ωy - Iyz·I_ωz) / (Iy·Iz - Iyz²)
//   e_y = (Iyz·I_ωy - Iz·I_ωz) / (Iy·Iz - Iyz²)
//
// Mirror symmetry about a centroidal axis, detected from the third moments
// of the solid boundary, pins the corresponding coordinate to the centroid
// exactly so that symmetric sections never drift by grid error. Holes
// enter the symmetry detector with negative sign, so an off-centre hole
// in a symmetric solid correctly unpins the shear center.
//
// It returns the zero-mean warping field for reuse by WarpingConstant,
// and whether the warping sweeps converged. The third moments are signed
// consistently with each ring's own winding, so orientation of the input
// rings does not matter.
func (o *Grid) ShearCenter(p *Properties, solids, voids [][]geo.Point) (omega [][]float64, converged bool) {
	omega, converged = o.SolveWarping(p.Cy, p.Cz)

	var syyy, szzz float64
	acc := func(rings [][]geo.Point, sign float64) {
		for _, ring := range rings {
			sy, sz := thirdMoments(ring, p.Cy, p.Cz)
			if clip.RingArea(ring) < 0 {
				sy, sz = -sy, -sz
			}
			syyy += sign * sy
			szzz += sign * sz
		}
	}
	acc(solids, +1)
	acc(voids, -1)
	tol := 1e-4 * math.Pow(math.Sqrt(p.A), 3.0)
	ysym := math.Abs(syyy) < tol // mirror symmetry y → -y: no shear center offset along y
	zsym := math.Abs(szzz) < tol // mirror symmetry z → -z: no shear center offset along z

	p.SCy, p.SCz = p.Cy, p.Cz
	if ysym && zsym {
		return
	}

	h2 := o.H * o.H
	var iwy, iwz float64
	for i := 0; i < o.Ny; i++ {
		for j := 0; j < o.Nz; j++ {
			if o.Cell[i][j] != cellMat {
				continue
			}
			iwy += omega[i][j] * (o.CY(i) - p.Cy) * h2
			iwz += omega[i][j] * (o.CZ(j) - p.Cz) * h2
		}
	}
	det := p.Iy*p.Iz - p.Iyz*p.Iyz
	if math.Abs(det) < 1e-12 {
		return
	}
	if !ysym {
		p.SCy = p.Cy + (p.Iyz*iwy-p.Iz*iwz)/det
	}
	if !zsym {
		p.SCz = p.Cz + (p.Iy*iwy-p.Iyz*iwz)/det
	}
	return
}

// WarpingConstant computes Cw = ∫ ωn² dA where ωn is the warping function
// referred to the shear center:
//
//   ωn = ω - e_z·ȳ + e_y·z̄
//
// with e the shear center offset from the centroid and ω the zero-mean
// field returned by ShearCenter.
func (o *Grid) WarpingConstant(p *Properties, omega [][]float64) (cw float64) {
	ey, ez := p.SCy-p.Cy, p.SCz-p.Cz
	h2 := o.H * o.H
	for i := 0; i < o.Ny; i++ {
		for j := 0; j < o.Nz; j++ {
			if o.Cell[i][j] != cellMat {
				continue
			}
			yb := o.CY(i) - p.Cy
			zb := o.CZ(j) - p.Cz
			wn := omega[i][j] - ez*yb + ey*zb
			cw += wn * wn * h2
		}
	}
	return
}
