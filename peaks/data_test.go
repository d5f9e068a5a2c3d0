// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"math"
	"testing"
)

// alternating returns interleaved data where every even frame is -1 and
// every odd frame is +1, on all channels.
func alternating(frames, channels int) []float32 {
	data := make([]float32, frames*channels)
	for f := range frames {
		s := float32(1)
		if f%2 == 0 {
			s = -1
		}
		for ch := range channels {
			data[f*channels+ch] = s
		}
	}

	return data
}

// wavy returns deterministic varied data: a different sine per channel with
// a slow drift, staying inside [-1, 1].
func wavy(frames, channels int) []float32 {
	data := make([]float32, frames*channels)
	for f := range frames {
		for ch := range channels {
			phase := float64(f)*0.137 + float64(ch)*1.7
			data[f*channels+ch] = float32(0.9 * math.Sin(phase) * math.Cos(float64(f)*0.011))
		}
	}

	return data
}

// assertLevelsEqual fails the test unless got and want match bin for bin.
func assertLevelsEqual(t *testing.T, got, want *Level) {
	t.Helper()

	if got.BinSize() != want.BinSize() {
		t.Fatalf("BinSize() = %d, want %d", got.BinSize(), want.BinSize())
	}

	if got.Len() != want.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), want.Len())
	}

	for i := range got.Len() {
		if got.Min(i) != want.Min(i) {
			t.Fatalf("Min(%d) = %v, want %v", i, got.Min(i), want.Min(i))
		}
		if got.Max(i) != want.Max(i) {
			t.Fatalf("Max(%d) = %v, want %v", i, got.Max(i), want.Max(i))
		}
	}
}
