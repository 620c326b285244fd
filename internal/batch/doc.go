// SPDX-License-Identifier: EPL-2.0

// Package batch renders whole directories of modules to audio files.
//
// Every song is split into render jobs: one per instrument, optionally
// one per (instrument, channel) pair, plus an optional full stereo mix.
// Jobs of a song run on a bounded worker pool. A job whose output is
// entirely silent writes no file.
package batch
