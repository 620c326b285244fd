// SPDX-License-Identifier: EPL-2.0

//go:build openmpt

package openmpt

/*
#cgo pkg-config: libopenmpt
#include <stdlib.h>
#include "helpers.h"
*/
import "C"

import (
	"fmt"
	"log"
	"runtime/cgo"
	"unsafe"

	"github.com/ik5/modpbx/engine"
)

// Engine decodes modules with libopenmpt. The zero value is ready to use.
type Engine struct{}

// Available reports whether this build links libopenmpt.
func Available() bool { return true }

//export modpbxLog
func modpbxLog(message *C.char, handle C.uintptr_t) {
	if handle == 0 {
		return
	}
	logger, ok := cgo.Handle(handle).Value().(*log.Logger)
	if !ok {
		return
	}
	logger.Printf("openmpt: %s", C.GoString(message))
}

// Open loads data into a new libopenmpt module.
func (Engine) Open(data []byte, opts engine.Options) (engine.Session, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	handle := cgo.NewHandle(opts.SessionLogger())

	var (
		code    C.int
		message *C.char
	)
	ext := C.modpbx_create(
		unsafe.Pointer(&data[0]), C.size_t(len(data)),
		C.uintptr_t(handle),
		cbool(opts.SkipSamples), cbool(opts.SkipPlugins),
		&code, &message,
	)
	if ext == nil {
		handle.Delete()

		msg := "unknown error"
		if message != nil {
			msg = C.GoString(message)
			C.openmpt_free_string(message)
		}
		return nil, fmt.Errorf("%w: %s (code %d)", ErrLoad, msg, int(code))
	}
	if message != nil {
		C.openmpt_free_string(message)
	}

	s := &session{
		ext:    ext,
		mod:    C.openmpt_module_ext_get_module(ext),
		handle: handle,
	}
	s.interactive = C.modpbx_interactive(ext, &s.iface) != 0

	return s, nil
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

type session struct {
	ext    *C.openmpt_module_ext
	mod    *C.openmpt_module
	handle cgo.Handle

	iface       C.openmpt_module_ext_interface_interactive
	interactive bool
}

func (s *session) NumChannels() int {
	return int(C.openmpt_module_get_num_channels(s.mod))
}

func (s *session) NumInstruments() int {
	return int(C.openmpt_module_get_num_instruments(s.mod))
}

func (s *session) NumSamples() int {
	return int(C.openmpt_module_get_num_samples(s.mod))
}

func (s *session) DurationSeconds() float64 {
	return float64(C.openmpt_module_get_duration_seconds(s.mod))
}

func (s *session) ReadMono16(sampleRate int, dst []int16) int {
	if len(dst) == 0 {
		return 0
	}
	n := C.openmpt_module_read_mono(s.mod, C.int32_t(sampleRate), C.size_t(len(dst)),
		(*C.int16_t)(unsafe.Pointer(&dst[0])))
	return int(n)
}

func (s *session) ReadStereo16(sampleRate int, dst []int16) int {
	if len(dst) < 2 {
		return 0
	}
	n := C.openmpt_module_read_interleaved_stereo(s.mod, C.int32_t(sampleRate), C.size_t(len(dst)/2),
		(*C.int16_t)(unsafe.Pointer(&dst[0])))
	return int(n)
}

func (s *session) ReadMonoFloat(sampleRate int, dst []float32) int {
	if len(dst) == 0 {
		return 0
	}
	n := C.openmpt_module_read_float_mono(s.mod, C.int32_t(sampleRate), C.size_t(len(dst)),
		(*C.float)(unsafe.Pointer(&dst[0])))
	return int(n)
}

func (s *session) ReadStereoFloat(sampleRate int, dst []float32) int {
	if len(dst) < 2 {
		return 0
	}
	n := C.openmpt_module_read_interleaved_float_stereo(s.mod, C.int32_t(sampleRate), C.size_t(len(dst)/2),
		(*C.float)(unsafe.Pointer(&dst[0])))
	return int(n)
}

func (s *session) SetStereoSeparation(percent int) error {
	ok := C.openmpt_module_set_render_param(s.mod,
		C.OPENMPT_MODULE_RENDER_STEREOSEPARATION_PERCENT, C.int32_t(percent))
	if ok == 0 {
		return fmt.Errorf("%w: stereo separation %d", ErrRenderParam, percent)
	}
	return nil
}

func (s *session) Interactive() (engine.Interactive, bool) {
	if !s.interactive {
		return nil, false
	}
	return interactive{s}, true
}

// Samples always reports false: the C API has no access to sample data.
func (s *session) Samples() (engine.SampleBank, bool) {
	return nil, false
}

func (s *session) Close() error {
	if s.ext == nil {
		return nil
	}
	C.openmpt_module_ext_destroy(s.ext)
	s.ext, s.mod = nil, nil
	s.handle.Delete()
	return nil
}

type interactive struct{ s *session }

func (i interactive) SetChannelMute(channel int, mute bool) error {
	if C.modpbx_channel_mute(&i.s.iface, i.s.ext, C.int32_t(channel), cbool(mute)) == 0 {
		return fmt.Errorf("%w: channel %d", ErrMute, channel)
	}
	return nil
}

func (i interactive) SetInstrumentMute(instrument int, mute bool) error {
	if C.modpbx_instrument_mute(&i.s.iface, i.s.ext, C.int32_t(instrument), cbool(mute)) == 0 {
		return fmt.Errorf("%w: instrument %d", ErrMute, instrument)
	}
	return nil
}
