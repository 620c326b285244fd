// SPDX-License-Identifier: EPL-2.0

//go:build !openmpt

package openmpt

import "github.com/ik5/modpbx/engine"

// Engine is the libopenmpt engine. This build has no libopenmpt support.
type Engine struct{}

// Open always fails with engine.ErrUnavailable.
func (Engine) Open(data []byte, opts engine.Options) (engine.Session, error) {
	opts.SessionLogger().Printf("openmpt: built without the openmpt tag")
	return nil, engine.ErrUnavailable
}

// Available reports whether this build links libopenmpt.
func Available() bool { return false }
