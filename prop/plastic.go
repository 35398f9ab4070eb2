// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"math"

	"github.com/cpmech/gosl/num"
)

// PlasticModuli computes the plastic section moduli on the raster.
// The plastic neutral axis for each bending direction is the line that
// splits the material area in half; it is located with Brent's method on
// the cumulative area function, made continuous by counting the covered
// fraction of each cell. The modulus is then the first moment of the
// absolute distance to that axis:
//
//   Zpl_y = ∫ |z - z*| dA      Zpl_z = ∫ |y - y*| dA
func (o *Grid) PlasticModuli() (zply, zplz float64, err error) {
	h2 := o.H * o.H
	half := o.Amat / 2.0

	// cumulative area of material cells with coordinate below x,
	// linear within each cell so that the root is well defined
	cum := func(x float64, useY bool) (a float64) {
		for i := 0; i < o.Ny; i++ {
			for j := 0; j < o.Nz; j++ {
				if o.Cell[i][j] != cellMat {
					continue
				}
				c := o.CZ(j)
				if useY {
					c = o.CY(i)
				}
				f := (x - (c - o.H/2.0)) / o.H
				if f > 1 {
					f = 1
				}
				if f < 0 {
					f = 0
				}
				a += f * h2
			}
		}
		return
	}

	find := func(lo, hi float64, useY bool) (float64, error) {
		var br num.Brent
		br.Init(func(x float64) (float64, error) {
			return cum(x, useY) - half, nil
		})
		return br.Solve(lo, hi, true)
	}

	zstar, err := find(o.Z0-o.H, o.CZ(o.Nz-1)+o.H, false)
	if err != nil {
		return
	}
	ystar, err := find(o.Y0-o.H, o.CY(o.Ny-1)+o.H, true)
	if err != nil {
		return
	}

	for i := 0; i < o.Ny; i++ {
		for j := 0; j < o.Nz; j++ {
			if o.Cell[i][j] != cellMat {
				continue
			}
			zply += math.Abs(o.CZ(j)-zstar) * h2
			zplz += math.Abs(o.CY(i)-ystar) * h2
		}
	}
	return
}
