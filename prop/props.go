// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prop computes geometric and mechanical properties of
// cross-sections. Linear and quadratic properties (A, centroid, second
// moments) come from exact Green's theorem boundary integration; torsional
// constant, plastic moduli, shear center and warping constant come from a
// finite-difference solve on a rasterized grid and are intrinsically
// approximate, converging as the grid is refined.
package prop

import (
	"github.com/cpmech/gosl/io"
)

// Properties holds the computed property set of one cross-section,
// relative to the centroidal axes. It is filled once, at section
// construction, and never mutated afterwards.
//
//         y ^
//           |    Iy = ∫ z² dA     Sy = Iy / zmax     ry = √(Iy/A)
//           |    Iz = ∫ y² dA     Sz = Iz / ymax     rz = √(Iz/A)
//     ------+------> z
//           |    Iyz = ∫ y·z dA
//           |
type Properties struct {

	// exact (boundary integration)
	A    float64 // cross-sectional area
	Cy   float64 // centroid y-coordinate (in the input frame)
	Cz   float64 // centroid z-coordinate (in the input frame)
	Iy   float64 // second moment about the centroidal y-axis (∫z²dA)
	Iz   float64 // second moment about the centroidal z-axis (∫y²dA)
	Iyz  float64 // product of inertia about the centroidal axes
	Sy   float64 // elastic section modulus about y
	Sz   float64 // elastic section modulus about z
	Ry   float64 // radius of gyration about y
	Rz   float64 // radius of gyration about z
	Ymax float64 // max |y - Cy| over solid boundary points
	Zmax float64 // max |z - Cz| over solid boundary points

	// approximate (grid solve)
	J    float64 // torsional constant (Prandtl stress function)
	Zply float64 // plastic section modulus about y
	Zplz float64 // plastic section modulus about z
	SCy  float64 // shear center y-coordinate (in the input frame)
	SCz  float64 // shear center z-coordinate (in the input frame)
	Cw   float64 // warping constant

	// diagnostics
	Warnings []string // non-fatal numerical diagnostics (e.g. grid solve not converged)
}

// warn records a non-fatal numerical diagnostic and echoes it when verbose
func (o *Properties) warn(msg string, prm ...interface{}) {
	s := io.Sf(msg, prm...)
	o.Warnings = append(o.Warnings, s)
	if io.Verbose {
		io.Pfyel("prop: warning: %s\n", s)
	}
}

// Print returns a formatted table with the property values
func (o *Properties) Print(numfmt string) (l string) {
	f := func(n string, v float64, u string) string {
		return io.Sf("  %-5s = "+numfmt+" %s\n", n, v, u)
	}
	l = f("A", o.A, "L²")
	l += f("Cy", o.Cy, "L") + f("Cz", o.Cz, "L")
	l += f("Iy", o.Iy, "L⁴") + f("Iz", o.Iz, "L⁴") + f("Iyz", o.Iyz, "L⁴")
	l += f("Sy", o.Sy, "L³") + f("Sz", o.Sz, "L³")
	l += f("ry", o.Ry, "L") + f("rz", o.Rz, "L")
	l += f("ymax", o.Ymax, "L") + f("zmax", o.Zmax, "L")
	l += f("J", o.J, "L⁴")
	l += f("Zply", o.Zply, "L³") + f("Zplz", o.Zplz, "L³")
	l += f("SCy", o.SCy, "L") + f("SCz", o.SCz, "L")
	l += f("Cw", o.Cw, "L⁶")
	for _, w := range o.Warnings {
		l += io.Sf("  warning: %s\n", w)
	}
	return
}

// sq returns x²
func sq(x float64) float64 { return x * x }
