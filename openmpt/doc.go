// SPDX-License-Identifier: EPL-2.0

// Package openmpt implements engine.Engine on top of libopenmpt.
//
// The binding needs cgo, the libopenmpt development files and the
// openmpt build tag:
//
//	go build -tags openmpt ./...
//
// Without the tag every Open fails with engine.ErrUnavailable, which
// keeps the rest of the module buildable on machines without the
// library.
//
// libopenmpt does not expose raw sample data through its C API, so
// sessions never report a sample bank and sample export is not possible
// with this engine.
package openmpt
