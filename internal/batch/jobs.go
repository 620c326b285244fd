// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"

	"github.com/ik5/modpbx/internal/config"
	"github.com/ik5/modpbx/render"
)

// headroomSeconds pads the render buffer past the reported duration.
const headroomSeconds = 5

// Job is one render of a song.
type Job struct {
	Channel    render.Selection
	Instrument render.Selection
	Stereo     bool
}

// FileName returns the output file name of j for the song stem.
//
//	full mix:              <stem>.<ext>
//	one instrument:        <stem>_<instrument+1>_chan_full.<ext>
//	instrument on channel: <stem>_<instrument+1>_chan_<channel>.<ext>
func (j Job) FileName(stem, ext string) string {
	ch, chSet := j.Channel.Get()
	in, inSet := j.Instrument.Get()

	switch {
	case !chSet && !inSet:
		return fmt.Sprintf("%s.%s", stem, ext)
	case !chSet:
		return fmt.Sprintf("%s_%04d_chan_full.%s", stem, in+1, ext)
	case !inSet:
		return fmt.Sprintf("%s_full_chan_%04d.%s", stem, ch, ext)
	default:
		return fmt.Sprintf("%s_%04d_chan_%04d.%s", stem, in+1, ch, ext)
	}
}

func (j Job) String() string {
	return fmt.Sprintf("instrument %s channel %s", j.Instrument, j.Channel)
}

// Plan lists the render jobs of a song.
func Plan(info render.SongInfo, cfg *config.Config) []Job {
	var jobs []Job

	if cfg.Full {
		jobs = append(jobs, Job{Stereo: true})
	}

	if cfg.Channels {
		total := info.ChannelCount * info.InstrumentCount
		for i := uint32(0); i < total; i++ {
			jobs = append(jobs, Job{
				Instrument: render.Solo(i / info.ChannelCount),
				Channel:    render.Solo(i % info.ChannelCount),
				Stereo:     cfg.Stereo,
			})
		}
		return jobs
	}

	for i := uint32(0); i < info.InstrumentCount; i++ {
		jobs = append(jobs, Job{Instrument: render.Solo(i), Stereo: cfg.Stereo})
	}
	return jobs
}

// BufferSize returns the output buffer size for rendering a song of the
// given duration.
func BufferSize(duration float32, p render.Params) int {
	seconds := int(duration + headroomSeconds)
	return seconds * int(p.SampleRate) * p.FrameBytes()
}
