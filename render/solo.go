// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"log"

	"github.com/ik5/modpbx/engine"
)

// MuteMask holds the audible state of every channel and instrument slot.
type MuteMask struct {
	Channels    []bool // true = audible
	Instruments []bool
	solo        bool
}

// NewMuteMask computes the mask for channels and instruments.
//
// The channel and instrument passes are independent: when both are soloed
// only voices that match both selections stay audible.
func NewMuteMask(channels, instruments int, channel, instrument Selection) MuteMask {
	m := MuteMask{
		Channels:    make([]bool, max(channels, 0)),
		Instruments: make([]bool, max(instruments, 0)),
	}

	for i := range m.Channels {
		m.Channels[i] = channel.Allows(i)
	}
	for i := range m.Instruments {
		m.Instruments[i] = instrument.Allows(i)
	}

	_, chanSolo := channel.Get()
	_, instSolo := instrument.Get()
	m.solo = chanSolo || instSolo

	return m
}

// Apply pushes the mask to the session.
//
// Without a solo selection nothing is applied. A session without the
// interactive capability renders unmuted.
func (m MuteMask) Apply(s engine.Session, logger *log.Logger) error {
	if !m.solo {
		return nil
	}

	iface, ok := s.Interactive()
	if !ok {
		logger.Printf("engine has no interactive capability, solo ignored")
		return nil
	}

	for i, audible := range m.Channels {
		if err := iface.SetChannelMute(i, !audible); err != nil {
			return fmt.Errorf("mute channel %d: %w", i, err)
		}
	}
	for i, audible := range m.Instruments {
		if err := iface.SetInstrumentMute(i, !audible); err != nil {
			return fmt.Errorf("mute instrument %d: %w", i, err)
		}
	}

	return nil
}
