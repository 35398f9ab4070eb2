// Copyright 2017 The Gosection Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

// GeometryError indicates invalid geometry: an open contour where closure
// is required, non-connected consecutive segments, or a degenerate
// zero-length segment. It is always fatal to the operation that found it.
type GeometryError struct {
	Msg     string // human readable message
	Contour int    // index of offending contour; -1 if not applicable
	Segment int    // index of offending segment; -1 if not applicable
}

// Error returns the message
func (o *GeometryError) Error() string { return o.Msg }

// ValidationError indicates a malformed persisted document: a missing or
// unknown field, an unknown segment kind or version, or a value outside
// its valid range. It is fatal at load time.
type ValidationError struct {
	Msg   string // human readable message
	Field string // name of the offending field
}

// Error returns the message
func (o *ValidationError) Error() string { return o.Msg }
