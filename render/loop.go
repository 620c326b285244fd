// SPDX-License-Identifier: EPL-2.0

package render

import "github.com/ik5/modpbx/engine"

// renderLoop fills out with quanta of sampleRate frames until the next
// quantum no longer fits or the engine returns a short read. It returns
// the number of bytes produced.
func renderLoop(s engine.Session, w frameWriter, sampleRate int, out []byte) int {
	quantum := sampleRate
	quantumBytes := quantum * w.FrameBytes()
	written := 0

	for written+quantumBytes <= len(out) {
		n := w.Write(s, sampleRate, out[written:written+quantumBytes], quantum)
		written += n * w.FrameBytes()

		if n < quantum {
			break // song ended
		}
	}

	return written
}
