// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sec assembles cross-sections: it validates the geometry, clips
// holes to the material they actually remove, and computes the full
// property set once at construction. A Section is immutable afterwards,
// so independent goroutines may query distinct Sections freely.
package sec

import (
	"github.com/cpmech/gosection/clip"
	"github.com/cpmech/gosection/geo"
	"github.com/cpmech/gosection/prop"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Section holds a validated geometry, its discretized boundary rings and
// the cached property set. All fields are filled by New and must be
// treated as read-only.
type Section struct {
	Name   string           // informational label; not used by computations
	Geo    *geo.Geometry    // the analytic geometry
	Res    int              // resolution used for discretization and grid
	Solids [][]geo.Point    // discretized solid rings
	Voids  [][]geo.Point    // hole rings clipped to the solid overlap
	Props  *prop.Properties // cached property set
}

// DefaultRes is the default precision knob: it sets both the number of
// subdivisions per segment and the raster resolution of the grid solves
const DefaultRes = 100

// New builds a section from a geometry. res controls both the boundary
// discretization and the grid resolution of the approximate properties;
// pass DefaultRes when in doubt. The geometry must consist of closed
// contours and produce a positive net area.
func New(g *geo.Geometry, res int) (o *Section, err error) {
	if res < 8 {
		return nil, chk.Err("resolution must be at least 8. res=%d is invalid", res)
	}
	if err = g.CheckClosed(); err != nil {
		return nil, err
	}
	o = &Section{Geo: g, Res: res}

	var holes [][]geo.Point
	for _, ring := range g.Discretize(res) {
		if ring.Hollow {
			holes = append(holes, ring.Pts)
		} else {
			o.Solids = append(o.Solids, ring.Pts)
		}
	}
	if len(o.Solids) < 1 {
		return nil, chk.Err("geometry has no solid contour")
	}
	o.Voids = clip.Holes(holes, o.Solids)
	if io.Verbose && len(o.Voids) != len(holes) {
		io.Pf("sec: %d hole(s) clipped into %d void region(s)\n", len(holes), len(o.Voids))
	}

	o.Props, err = prop.Compute(o.Solids, o.Voids, res)
	if err != nil {
		return nil, err
	}
	return
}

// NewFromFile reads a geometry JSON document and builds the section
func NewFromFile(filename string, res int) (*Section, error) {
	g, err := geo.Read(filename)
	if err != nil {
		return nil, err
	}
	return New(g, res)
}

// InMaterial tells whether p lies in the material: inside some solid ring
// and outside every clipped void. Points on the solid boundary (within
// ConnectTol) count as material, so extreme fiber queries do not fail.
func (o *Section) InMaterial(p geo.Point) bool {
	if clip.InMaterial(p, o.Solids, o.Voids) {
		return true
	}
	on := false
	for _, s := range o.Solids {
		if clip.DistToRing(p, s) < geo.ConnectTol {
			on = true
			break
		}
	}
	if !on {
		return false
	}
	for _, v := range o.Voids {
		if clip.Inside(p, v) {
			return false
		}
	}
	return true
}

// BoundaryUniform resamples the whole geometry at equal arclength spacing,
// for callers that need evenly spaced boundary samples (e.g. the stress
// extrema search)
func (o *Section) BoundaryUniform(count int) []geo.Ring {
	return o.Geo.DiscretizeUniform(count)
}
