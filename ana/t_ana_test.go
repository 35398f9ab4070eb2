// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosection/sec"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_ana01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ana01. rectangle formulas versus numerical engine")

	var cs CrossSection
	cs.Init("rectangle", 6, 4, 0, 0, 0, 0)
	if chk.Verbose {
		cs.Print("%g")
	}

	g, err := sec.Rect(6, 4)
	if err != nil {
		tst.Errorf("Rect failed:\n%v", err)
		return
	}
	s, err := sec.New(g, 100)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	p := s.Props

	chk.Scalar(tst, "A", 1e-12, p.A, cs.A)
	chk.Scalar(tst, "Iy", 1e-11, p.Iy, cs.Iy)
	chk.Scalar(tst, "Iz", 1e-11, p.Iz, cs.Iz)
	chk.Scalar(tst, "Zply", 0.03*cs.Zply, p.Zply, cs.Zply)
	chk.Scalar(tst, "Zplz", 0.03*cs.Zplz, p.Zplz, cs.Zplz)
	chk.Scalar(tst, "J", 0.08*cs.J, p.J, cs.J)
}

func Test_ana02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ana02. annulus formulas versus circular hollow section")

	var cs CrossSection
	cs.Init("annulus", 0, 0, 0, 0, 5, 4)
	if chk.Verbose {
		cs.Print("%g")
	}

	g, err := sec.CHS(10, 1)
	if err != nil {
		tst.Errorf("CHS failed:\n%v", err)
		return
	}
	s, err := sec.New(g, 120)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	p := s.Props

	// the circular boundary is polygonal internally, hence the loose
	// tolerances on the exact quantities
	chk.Scalar(tst, "A", 0.005*cs.A, p.A, cs.A)
	chk.Scalar(tst, "Iy", 0.01*cs.Iy, p.Iy, cs.Iy)
	chk.Scalar(tst, "Iz", 0.01*cs.Iz, p.Iz, cs.Iz)
	chk.Scalar(tst, "J", 0.05*cs.J, p.J, cs.J)
	chk.Scalar(tst, "Zply", 0.03*cs.Zply, p.Zply, cs.Zply)
}

func Test_ana03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ana03. I-beam formulas versus numerical engine")

	var cs CrossSection
	cs.Init("I-beam", 20, 10, 1.5, 1, 0, 0)
	if chk.Verbose {
		cs.Print("%g")
	}

	g, err := sec.ISection(20, 10, 1.5, 1, 0)
	if err != nil {
		tst.Errorf("ISection failed:\n%v", err)
		return
	}
	s, err := sec.New(g, 120)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	p := s.Props

	chk.Scalar(tst, "A", 1e-10, p.A, cs.A)
	chk.Scalar(tst, "Iy", 1e-9, p.Iy, cs.Iy)
	chk.Scalar(tst, "Iz", 1e-9, p.Iz, cs.Iz)
	chk.Scalar(tst, "Zply", 0.03*cs.Zply, p.Zply, cs.Zply)
	chk.Scalar(tst, "Zplz", 0.03*cs.Zplz, p.Zplz, cs.Zplz)

	// coarse rasters thicken thin walls, so the membrane-analogy J is only
	// checked for sign here
	if p.J <= 0 {
		tst.Errorf("J must be positive. J=%g", p.J)
		return
	}
	if p.Cw <= 0 {
		tst.Errorf("Cw must be positive. Cw=%g", p.Cw)
	}
}
