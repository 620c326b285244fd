// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{
			name:  "zero",
			input: 0.0,
			want:  0,
		},
		{
			name:  "max positive",
			input: 1.0,
			want:  math.MaxInt16,
		},
		{
			name:  "max negative",
			input: -1.0,
			want:  -math.MaxInt16,
		},
		{
			name:  "half positive",
			input: 0.5,
			want:  16383,
		},
		{
			name:  "half negative",
			input: -0.5,
			want:  -16383,
		},
		{
			name:  "small positive",
			input: 0.001,
			want:  32,
		},
		{
			name:  "clamp over max",
			input: 1.5,
			want:  math.MaxInt16,
		},
		{
			name:  "clamp way under min",
			input: -100.0,
			want:  -math.MaxInt16,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt16(tt.input)
			if got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInt16ToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input int16
		want  float32
	}{
		{0, 0},
		{math.MinInt16, -1},
		{16384, 0.5},
		{-16384, -0.5},
	}

	for _, tt := range tests {
		if got := Int16ToFloat32(tt.input); got != tt.want {
			t.Errorf("Int16ToFloat32(%d) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFloat32ToInt24(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int32
	}{
		{"zero", 0, 0},
		{"max positive", 1, maxInt24},
		{"max negative", -1, minInt24},
		{"half", 0.5, 4194304},
		{"negative half", -0.5, -4194304},
		{"one step", 1.0 / (1 << 23), 1},
		{"clamp over max", 2, maxInt24},
		{"clamp under min", -2, minInt24},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt24(tt.input); got != tt.want {
				t.Errorf("Float32ToInt24(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestFloat32ToInt16Monotonic tests that function is monotonic
func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f=%v gives %v, but previous was %v",
				f, curr, prev)
		}
		prev = curr
	}
}

// TestFloat32ToInt16_ZeroAllocs verifies no heap allocations
func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.5)
	})

	if allocs > 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	floatSamples := make([]float32, 8000)
	int16Samples := make([]int16, 8000)

	for i := range floatSamples {
		floatSamples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		for j := range floatSamples {
			int16Samples[j] = Float32ToInt16(floatSamples[j])
		}
	}
}
