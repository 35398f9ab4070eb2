// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana provides closed-form solutions for the properties of simple
// cross-sections. These serve as references when checking the numerical
// engine on shapes with known answers.
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CrossSection computes the properties of simple shapes from textbook
// formulas. The section sits in the y-z plane with height along y and
// width along z.
//
//   typ : rectangle                  I-beam        tw
//                                            -->| |<--
//    ^ y       +-------+  ___             ___  #####   _
//    |         |       |   |            tf |   #####   |
//    |         |       |   |              ---    #     |
//    +----> z  |       |   | h = hei             #     | h = hei
//              |       |   |                     #     |
//              |       |  _|_            ---   #####   |
//              +-------+                tf_|_  #####   _
//               b = wid                        b = wid
//
//         circle (radius R)
//         annulus (outer radius R, inner radius Ri)
//
type CrossSection struct {

	// input
	Type string  // "rectangle", "circle", "annulus" or "I-beam"
	Hei  float64 // height (h) along y if not circular
	Wid  float64 // width (b) along z if not circular
	Tf   float64 // flange thickness if I-beam
	Tw   float64 // web thickness if I-beam
	R    float64 // (outer) radius if circular
	Ri   float64 // inner radius if annulus

	// derived
	A    float64 // cross-sectional area
	Iy   float64 // second moment of area about the y-axis
	Iz   float64 // second moment of area about the z-axis
	J    float64 // torsional constant
	Zply float64 // plastic modulus for bending about the y-axis
	Zplz float64 // plastic modulus for bending about the z-axis
	Cw   float64 // warping constant (I-beam only; zero otherwise)
}

// Init initialises the structure and computes the derived properties
func (o *CrossSection) Init(typ string, hei, wid, tf, tw, rad, rin float64) {

	// input data
	o.Type, o.Hei, o.Wid, o.Tf, o.Tw, o.R, o.Ri = typ, hei, wid, tf, tw, rad, rin

	// derived
	switch typ {
	case "rectangle":
		h, b := hei, wid
		h3 := h * h * h
		b3 := b * b * b
		o.A = b * h
		o.Iy = h * b3 / 12.0
		o.Iz = b * h3 / 12.0
		o.Zply = h * b * b / 4.0
		o.Zplz = b * h * h / 4.0
		if b == h {
			o.J = 9.0 * b3 * b / 64.0
		} else {
			s, l := b, h // short and long side
			if s > l {
				s, l = l, s
			}
			s3 := s * s * s
			o.J = l * s3 * (1.0/3.0 - 0.21*(s/l)*(1.0-s*s3/(12.0*l*l*l*l))) // approximate
		}

	case "circle":
		r2 := rad * rad
		o.A = math.Pi * r2
		o.Iy = math.Pi * r2 * r2 / 4.0
		o.Iz = o.Iy
		o.J = o.Iy + o.Iz
		o.Zply = 4.0 * rad * r2 / 3.0
		o.Zplz = o.Zply

	case "annulus":
		ro2, ri2 := rad*rad, rin*rin
		o.A = math.Pi * (ro2 - ri2)
		o.Iy = math.Pi * (ro2*ro2 - ri2*ri2) / 4.0
		o.Iz = o.Iy
		o.J = o.Iy + o.Iz
		o.Zply = 4.0 * (rad*ro2 - rin*ri2) / 3.0
		o.Zplz = o.Zply

	case "I-beam":
		d, b := hei, wid
		d3 := d * d * d
		b3 := b * b * b
		tf3 := tf * tf * tf
		tw3 := tw * tw * tw
		l := d - 2.0*tf // clear web height
		l3 := l * l * l
		o.A = b*d - (b-tw)*l
		o.Iz = b*d3/12.0 - (b-tw)*l3/12.0
		o.Iy = l*tw3/12.0 + tf*b3/6.0
		o.J = (2.0*b*tf3 + l*tw3) / 3.0 // thin-wall approximation
		o.Zplz = b*tf*(d-tf) + tw*l*l/4.0
		o.Zply = tf*b*b/2.0 + l*tw*tw/4.0
		o.Cw = tf * b3 * (d - tf) * (d - tf) / 24.0

	default:
		chk.Panic("cross-section type %q is unavailable", typ)
	}
}

// Print prints the derived properties using numfmt for numbers
func (o *CrossSection) Print(numfmt string) {
	io.Pf("%s:\n", o.Type)
	io.Pf("  A    = "+numfmt+"\n", o.A)
	io.Pf("  Iy   = "+numfmt+"\n", o.Iy)
	io.Pf("  Iz   = "+numfmt+"\n", o.Iz)
	io.Pf("  J    = "+numfmt+"\n", o.J)
	io.Pf("  Zply = "+numfmt+"\n", o.Zply)
	io.Pf("  Zplz = "+numfmt+"\n", o.Zplz)
	io.Pf("  Cw   = "+numfmt+"\n", o.Cw)
}
