// SPDX-License-Identifier: EPL-2.0

// Package engine defines the contract between modpbx and a tracker-module
// decoding engine.
//
// The engine itself (format parsing, pattern sequencing, channel mixing)
// lives behind these interfaces. An Engine opens a Session from the raw
// bytes of a module; the Session reports metadata and renders frames.
//
// # Load Options
//
// Three presets cover the callers in this module:
//
//	engine.ProbeOptions(logger)  // metadata only: skip samples and plugins
//	engine.ExportOptions(logger) // samples loaded, plugins skipped
//	engine.FullOptions(logger)   // everything, for rendering
//
// The logger is per session. Engines must never write diagnostics to a
// process-wide stream.
//
// # Optional Capabilities
//
// Some engine configurations cannot mute channels or do not keep sample
// data. Both capabilities are resolved explicitly:
//
//	if iface, ok := session.Interactive(); ok {
//	    iface.SetChannelMute(2, true)
//	}
//
//	if bank, ok := session.Samples(); ok {
//	    s, err := bank.Sample(0)
//	}
//
// Sample indices are 0-based everywhere in this package.
package engine
