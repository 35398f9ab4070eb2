// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"github.com/cpmech/gosection/geo"
)

// Compute runs the full property pipeline: exact boundary integration
// first, then the grid solves for the torsional constant, the plastic
// moduli, the shear center and the warping constant. res is the raster
// resolution across the larger section dimension. Voids must already be
// clipped to the solid overlap.
func Compute(solids, voids [][]geo.Point, res int) (p *Properties, err error) {
	p, err = Exact(solids, voids)
	if err != nil {
		return
	}
	g, err := NewGrid(solids, voids, res)
	if err != nil {
		return
	}

	_, J, conv := g.SolveTorsion()
	p.J = J
	if !conv {
		p.warn("torsion solve did not converge within %d sweeps. res=%d", sorMaxIt, res)
	}

	p.Zply, p.Zplz, err = g.PlasticModuli()
	if err != nil {
		return
	}

	omega, conv := g.ShearCenter(p, solids, voids)
	if !conv {
		p.warn("warping solve did not converge within %d sweeps. res=%d", sorMaxIt, res)
	}
	p.Cw = g.WarpingConstant(p, omega)
	return
}
