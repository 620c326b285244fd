// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"math"
)

// IsSilent reports whether every byte of data is zero.
func IsSilent(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}

// Energy returns the mean square of the normalized samples in data.
// Trailing bytes that do not form a whole sample are ignored.
func Energy(data []byte, bytesPerSample int) (float64, error) {
	var sum float64
	var n int

	switch bytesPerSample {
	case 2:
		n = len(data) / 2
		for i := 0; i < n; i++ {
			v := float64(Int16ToFloat32(int16(binary.LittleEndian.Uint16(data[2*i:]))))
			sum += v * v
		}
	case 4:
		n = len(data) / 4
		for i := 0; i < n; i++ {
			v := float64(math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:])))
			sum += v * v
		}
	default:
		return 0, ErrInvalidWidth
	}

	if n == 0 {
		return 0, nil
	}
	return sum / float64(n), nil
}
