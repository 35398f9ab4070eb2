// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// solver settings for the successive over-relaxation sweeps
const (
	sorMaxIt = 20000 // maximum number of sweeps
	sorTol   = 1e-9  // relative tolerance on the largest cell update
)

// sorOmega returns the over-relaxation factor tuned to the grid size
func sorOmega(n int) float64 {
	return 2.0 / (1.0 + math.Sin(math.Pi/float64(n)))
}

// SolveTorsion solves the Prandtl stress function problem
//
//   ∇²φ = -2   in the material,   φ = 0   on the outer boundary
//
// by Gauss-Seidel SOR on the raster. Each hole region carries a single
// unknown plateau value c_k, updated from the circulation condition
//
//   ∮ ∂φ/∂n ds = 2·A_k    ⇒    c_k = (Σ φ_neighbour + 2·A_k) / N_faces
//
// where the sum runs over the material cells adjacent to hole k. Without
// the plateaus a closed hollow section would behave like a slit tube and
// the torsional constant would come out wildly low.
//
// It returns the stress function field, the torsional constant
// J = 2(Σ φ·h² + Σ c_k·A_k), and whether the sweeps converged.
func (o *Grid) SolveTorsion() (phi [][]float64, J float64, converged bool) {
	phi = o.NewField()
	h2 := o.H * o.H
	w := sorOmega(utl.Imax(o.Ny, o.Nz))
	nh := len(o.Aholes)
	c := make([]float64, nh)

	for it := 0; it < sorMaxIt; it++ {
		maxdel, maxphi := 0.0, 0.0

		// plateau update from the circulation condition
		for k := 0; k < nh; k++ {
			sum, nfaces := 0.0, 0
			for i := 0; i < o.Ny; i++ {
				for j := 0; j < o.Nz; j++ {
					if o.Hole(i, j) != k {
						continue
					}
					for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
						if o.IsMat(i+d[0], j+d[1]) {
							sum += phi[i+d[0]][j+d[1]]
							nfaces++
						}
					}
				}
			}
			if nfaces > 0 {
				cnew := (sum + 2.0*o.Aholes[k]) / float64(nfaces)
				maxdel = math.Max(maxdel, math.Abs(cnew-c[k]))
				c[k] = cnew
			}
		}
		for i := 0; i < o.Ny; i++ {
			for j := 0; j < o.Nz; j++ {
				if k := o.Hole(i, j); k >= 0 {
					phi[i][j] = c[k]
				}
			}
		}

		// SOR sweep over material cells. The outer Dirichlet condition is
		// imposed at cell faces by an antisymmetric ghost (φ_ghost = -φ_c),
		// which places the wall half a cell out and avoids inflating the
		// domain by a full cell.
		for i := 0; i < o.Ny; i++ {
			for j := 0; j < o.Nz; j++ {
				if o.Cell[i][j] != cellMat {
					continue
				}
				sum, next := 0.0, 0
				for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					ii, jj := i+d[0], j+d[1]
					if ii >= 0 && ii < o.Ny && jj >= 0 && jj < o.Nz && o.Cell[ii][jj] != cellOut {
						sum += phi[ii][jj]
					} else {
						next++
					}
				}
				pnew := (sum + 2.0*h2) / float64(4+next)
				del := pnew - phi[i][j]
				phi[i][j] += w * del
				maxdel = math.Max(maxdel, math.Abs(del))
				maxphi = math.Max(maxphi, math.Abs(phi[i][j]))
			}
		}
		if maxdel < sorTol*(maxphi+1e-30) {
			converged = true
			break
		}
	}

	J = 0.0
	for i := 0; i < o.Ny; i++ {
		for j := 0; j < o.Nz; j++ {
			if o.Cell[i][j] == cellMat {
				J += phi[i][j] * h2
			}
		}
	}
	for k := 0; k < nh; k++ {
		J += c[k] * o.Aholes[k]
	}
	J *= 2.0
	return
}

// SolveWarping solves the Saint-Venant warping function problem
//
//   ∇²ω = 0   in the material,   ∂ω/∂n = z̄·n_y - ȳ·n_z   on the boundary
//
// with ȳ, z̄ measured from the centroid (cy, cz). The Neumann boundary
// condition is applied by ghost cells mirrored across each exterior face.
// The solution is defined up to a constant, which is removed by forcing a
// zero mean over the material. Hole cells count as exterior here: the
// warping of a closed thin cell is dominated by its boundary faces.
func (o *Grid) SolveWarping(cy, cz float64) (omega [][]float64, converged bool) {
	omega = o.NewField()
	w := sorOmega(utl.Imax(o.Ny, o.Nz))

	for it := 0; it < sorMaxIt; it++ {
		maxdel, maxw := 0.0, 0.0
		for i := 0; i < o.Ny; i++ {
			for j := 0; j < o.Nz; j++ {
				if o.Cell[i][j] != cellMat {
					continue
				}
				yb := o.CY(i) - cy
				zb := o.CZ(j) - cz
				sum, nint := 0.0, 0
				// +y, -y, +z, -z faces with the respective normal flux
				faces := [4]struct {
					di, dj int
					g      float64 // prescribed outward ∂ω/∂n
				}{
					{+1, 0, zb},
					{-1, 0, -zb},
					{0, +1, -yb},
					{0, -1, yb},
				}
				for _, f := range faces {
					if o.IsMat(i+f.di, j+f.dj) {
						sum += omega[i+f.di][j+f.dj]
						nint++
					} else {
						sum += o.H * f.g // ghost: ω_ghost = ω_c + h·g
					}
				}
				if nint == 0 {
					continue
				}
				// 4·ω_c = Σ_int ω_nb + Σ_bnd (ω_c + h·g)
				pnew := sum / float64(nint)
				del := pnew - omega[i][j]
				omega[i][j] += w * del
				maxdel = math.Max(maxdel, math.Abs(del))
				maxw = math.Max(maxw, math.Abs(omega[i][j]))
			}
		}
		if maxdel < sorTol*(maxw+1e-30) {
			converged = true
			break
		}
	}

	// remove the arbitrary constant: zero mean over the material
	mean := 0.0
	for i := 0; i < o.Ny; i++ {
		for j := 0; j < o.Nz; j++ {
			if o.Cell[i][j] == cellMat {
				mean += omega[i][j]
			}
		}
	}
	mean /= float64(o.Nmat)
	for i := 0; i < o.Ny; i++ {
		for j := 0; j < o.Nz; j++ {
			if o.Cell[i][j] == cellMat {
				omega[i][j] -= mean
			}
		}
	}
	return
}
