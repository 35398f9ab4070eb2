// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/cpmech/gosection/dxf"
	"github.com/cpmech/gosection/geo"
	"github.com/cpmech/gosection/sec"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".json", true)
	res := io.ArgToInt(1, sec.DefaultRes)
	verbose := io.ArgToBool(2, true)
	dxfout := io.ArgToBool(3, false)

	// message
	if verbose {
		io.PfWhite("\nGosection -- cross-section properties\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"geometry file (.json or .dxf)", "fnamepath", fnamepath,
			"grid and boundary resolution", "res", res,
			"show messages", "verbose", verbose,
			"export geometry as DXF", "dxfout", dxfout,
		))
	}
	io.Verbose = verbose

	// load geometry
	var g *geo.Geometry
	if strings.HasSuffix(strings.ToLower(fnamepath), ".dxf") {
		contours, err := dxf.Read(fnamepath)
		if err != nil {
			chk.Panic("cannot read DXF file:\n%v", err)
		}
		g = geo.NewGeometry(contours...)
	} else {
		var err error
		g, err = geo.Read(fnamepath)
		if err != nil {
			chk.Panic("cannot read geometry file:\n%v", err)
		}
	}

	// compute properties
	s, err := sec.New(g, res)
	if err != nil {
		chk.Panic("section computation failed:\n%v", err)
	}
	io.Pf("\n%s", s.Props.Print("%13.6e"))

	// export
	if dxfout {
		fn := fnkey + "-out.dxf"
		dxf.Write(".", fn, g.Contours)
		if verbose {
			io.Pf("file <%s> written\n", fn)
		}
	}
}
