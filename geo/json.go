// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// DocVersion is the current version of the persisted geometry document.
// The version field allows future segment kinds to be added without
// breaking old readers.
const DocVersion = 1

// jsonSeg is the wire form of one segment. Pointers distinguish missing
// fields from zero values so the loader can reject incomplete documents.
type jsonSeg struct {
	Type   string   `json:"type"` // "line", "arc" or "cubic"
	Start  *Point   `json:"start,omitempty"`
	End    *Point   `json:"end,omitempty"`
	Center *Point   `json:"center,omitempty"`
	Radius *float64 `json:"radius,omitempty"`
	Tha    *float64 `json:"start_angle,omitempty"`
	Thb    *float64 `json:"end_angle,omitempty"`
	P0     *Point   `json:"p0,omitempty"`
	P1     *Point   `json:"p1,omitempty"`
	P2     *Point   `json:"p2,omitempty"`
	P3     *Point   `json:"p3,omitempty"`
}

// jsonContour is the wire form of one contour
type jsonContour struct {
	Segments []jsonSeg `json:"segments"`
	Hollow   bool      `json:"hollow"`
}

// jsonDoc is the wire form of a geometry document
type jsonDoc struct {
	Version  int           `json:"version"`
	Contours []jsonContour `json:"contours"`
}

// Encode encodes this geometry into the versioned JSON document. The exact
// curve parameters are preserved, not a discretized approximation.
func (o *Geometry) Encode() ([]byte, error) {
	doc := jsonDoc{Version: DocVersion}
	for i, c := range o.Contours {
		jc := jsonContour{Hollow: c.Hollow}
		for j, s := range c.Segs {
			js, err := encodeSeg(s)
			if err != nil {
				return nil, &ValidationError{io.Sf("contour %d, segment %d: %v", i, j, err), "type"}
			}
			jc.Segments = append(jc.Segments, js)
		}
		doc.Contours = append(doc.Contours, jc)
	}
	return json.MarshalIndent(&doc, "", "  ")
}

// encodeSeg converts one segment to wire form
func encodeSeg(s Segment) (js jsonSeg, err error) {
	switch seg := s.(type) {
	case *Line:
		js = jsonSeg{Type: "line", Start: &seg.P0, End: &seg.P1}
	case *Arc:
		r, tha, thb := seg.R, seg.Th0, seg.Th1
		js = jsonSeg{Type: "arc", Center: &seg.C, Radius: &r, Tha: &tha, Thb: &thb}
	case *Cubic:
		js = jsonSeg{Type: "cubic", P0: &seg.P0, P1: &seg.P1, P2: &seg.P2, P3: &seg.P3}
	default:
		err = chk.Err("unknown segment kind %T", s)
	}
	return
}

// Decode decodes a geometry from the versioned JSON document, rejecting
// unknown versions, unknown segment kinds and missing required fields
func Decode(b []byte) (*Geometry, error) {
	var doc jsonDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, &ValidationError{io.Sf("cannot unmarshal geometry document: %v", err), ""}
	}
	if doc.Version != DocVersion {
		return nil, &ValidationError{io.Sf("unknown document version %d (only %d is supported)", doc.Version, DocVersion), "version"}
	}
	g := new(Geometry)
	for i, jc := range doc.Contours {
		c := &Contour{Hollow: jc.Hollow}
		for j, js := range jc.Segments {
			s, field, err := decodeSeg(js)
			if err != nil {
				return nil, &ValidationError{io.Sf("contour %d, segment %d: %v", i, j, err), field}
			}
			c.Segs = append(c.Segs, s)
		}
		g.Contours = append(g.Contours, c)
	}
	return g, nil
}

// decodeSeg converts one wire segment back into its exact curve form.
// field names the offending field on error.
func decodeSeg(js jsonSeg) (s Segment, field string, err error) {
	switch js.Type {
	case "line":
		if js.Start == nil {
			return nil, "start", chk.Err("line is missing %q", "start")
		}
		if js.End == nil {
			return nil, "end", chk.Err("line is missing %q", "end")
		}
		return &Line{*js.Start, *js.End}, "", nil
	case "arc":
		if js.Center == nil {
			return nil, "center", chk.Err("arc is missing %q", "center")
		}
		if js.Radius == nil {
			return nil, "radius", chk.Err("arc is missing %q", "radius")
		}
		if *js.Radius <= 0 {
			return nil, "radius", chk.Err("arc radius must be positive (got %g)", *js.Radius)
		}
		if js.Tha == nil {
			return nil, "start_angle", chk.Err("arc is missing %q", "start_angle")
		}
		if js.Thb == nil {
			return nil, "end_angle", chk.Err("arc is missing %q", "end_angle")
		}
		return &Arc{*js.Center, *js.Radius, *js.Tha, *js.Thb}, "", nil
	case "cubic":
		for _, f := range []struct {
			p *Point
			n string
		}{{js.P0, "p0"}, {js.P1, "p1"}, {js.P2, "p2"}, {js.P3, "p3"}} {
			if f.p == nil {
				return nil, f.n, chk.Err("cubic is missing %q", f.n)
			}
		}
		return &Cubic{*js.P0, *js.P1, *js.P2, *js.P3}, "", nil
	}
	return nil, "type", chk.Err("unknown segment type %q", js.Type)
}

// Save encodes this geometry and writes it to dirout/fn
func (o *Geometry) Save(dirout, fn string) error {
	b, err := o.Encode()
	if err != nil {
		return err
	}
	io.WriteFileSD(dirout, fn, string(b))
	return nil
}

// Read reads and decodes a geometry document from filename
func Read(filename string) (*Geometry, error) {
	b, err := io.ReadFile(filename)
	if err != nil {
		return nil, &ValidationError{io.Sf("cannot read geometry file %q", filename), ""}
	}
	return Decode(b)
}
