// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"github.com/cpmech/gosection/clip"
	"github.com/cpmech/gosection/geo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// cell states in Grid.Cell. Values >= cellHole0 mark cells belonging to
// void (hole) region k = Cell[i][j] - cellHole0.
const (
	cellOut   = -1 // outside material and outside any hole
	cellMat   = 0  // inside material
	cellHole0 = 1
)

// Grid is a cell-centered raster of the section used by the finite
// difference solvers. Rows (index i) run along y, columns (index j)
// along z.
//
//     y ^   . . . . . .
//       |   . # # # # .     # material cell
//       |   . # o o # .     o hole cell
//       |   . # # # # .     . exterior cell
//       +------------> z
type Grid struct {
	Ny, Nz int         // number of cells along y and z
	Y0, Z0 float64     // coordinates of the centre of cell (0,0)
	H      float64     // cell size (same along both axes)
	Cell   [][]int     // [Ny][Nz] cell state
	Amat   float64     // material area covered by the raster = Nmat·H²
	Nmat   int         // number of material cells
	Aholes []float64   // exact area of each hole ring
}

// NewGrid rasterizes the section over the padded bounding box of all rings.
// res sets the number of cells spanning the larger padded dimension; the
// spacing H follows from it. Voids must already be clipped to the solid
// overlap.
func NewGrid(solids, voids [][]geo.Point, res int) (o *Grid, err error) {
	if res < 8 {
		return nil, chk.Err("grid resolution must be at least 8. res=%d is invalid", res)
	}
	ymin, ymax := solids[0][0].Y, solids[0][0].Y
	zmin, zmax := solids[0][0].Z, solids[0][0].Z
	for _, ring := range solids {
		for _, p := range ring {
			ymin = utl.Min(ymin, p.Y)
			ymax = utl.Max(ymax, p.Y)
			zmin = utl.Min(zmin, p.Z)
			zmax = utl.Max(zmax, p.Z)
		}
	}
	height, width := ymax-ymin, zmax-zmin
	pad := utl.Max(height, width) * 0.1
	if pad == 0 {
		return nil, chk.Err("section bounding box is degenerate")
	}
	o = new(Grid)
	maxdim := utl.Max(height, width) + 2.0*pad
	o.H = maxdim / float64(res)
	o.Ny = int((height+2.0*pad)/o.H) + 1
	o.Nz = int((width+2.0*pad)/o.H) + 1
	o.Y0 = ymin - pad + o.H/2.0
	o.Z0 = zmin - pad + o.H/2.0

	o.Cell = utl.IntsAlloc(o.Ny, o.Nz)
	for i := 0; i < o.Ny; i++ {
		y := o.CY(i)
		for j := 0; j < o.Nz; j++ {
			z := o.CZ(j)
			p := geo.Point{Y: y, Z: z}
			o.Cell[i][j] = cellOut
			insolid := false
			for _, ring := range solids {
				if clip.Inside(p, ring) {
					insolid = true
					break
				}
			}
			if !insolid {
				continue
			}
			o.Cell[i][j] = cellMat
			for k, ring := range voids {
				if clip.Inside(p, ring) {
					o.Cell[i][j] = cellHole0 + k
					break
				}
			}
			if o.Cell[i][j] == cellMat {
				o.Nmat++
			}
		}
	}
	if o.Nmat == 0 {
		return nil, chk.Err("raster found no material cells. res=%d is too coarse", res)
	}
	o.Amat = float64(o.Nmat) * o.H * o.H
	o.Aholes = make([]float64, len(voids))
	for k, ring := range voids {
		o.Aholes[k] = RingArea(ring)
	}
	return
}

// CY returns the y-coordinate of the centre of cells in row i
func (o *Grid) CY(i int) float64 { return o.Y0 + float64(i)*o.H }

// CZ returns the z-coordinate of the centre of cells in column j
func (o *Grid) CZ(j int) float64 { return o.Z0 + float64(j)*o.H }

// NewField allocates a [Ny][Nz] scalar field on the grid
func (o *Grid) NewField() [][]float64 { return la.MatAlloc(o.Ny, o.Nz) }

// IsMat tells whether cell (i,j) is a material cell; out-of-range
// indices count as exterior
func (o *Grid) IsMat(i, j int) bool {
	if i < 0 || i >= o.Ny || j < 0 || j >= o.Nz {
		return false
	}
	return o.Cell[i][j] == cellMat
}

// Hole returns the hole id of cell (i,j), or -1 if it is not a hole cell
func (o *Grid) Hole(i, j int) int {
	if i < 0 || i >= o.Ny || j < 0 || j >= o.Nz {
		return -1
	}
	if o.Cell[i][j] >= cellHole0 {
		return o.Cell[i][j] - cellHole0
	}
	return -1
}
