// SPDX-License-Identifier: EPL-2.0

// Package pcm holds sample conversions shared by the renderer, the
// exporters and the batch tool.
package pcm

const (
	maxInt16 = 32767
	maxInt24 = 1<<23 - 1
	minInt24 = -1 << 23
)

// Float32ToInt16 clamps x to [-1,1] and scales it to int16.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * maxInt16)
}

// Int16ToFloat32 scales v to [-1,1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Float32ToInt24 scales x by 1<<23 and clamps the result to the signed
// 24-bit range, so +1.0 maps to maxInt24 and -1.0 to minInt24.
func Float32ToInt24(x float32) int32 {
	v := float64(x) * (1 << 23)
	if v > maxInt24 {
		return maxInt24
	}
	if v < minInt24 {
		return minInt24
	}

	return int32(v)
}
