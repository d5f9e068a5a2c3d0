// SPDX-License-Identifier: EPL-2.0

package audiotest

// Interleaved renders frames of a waveform into a frame-major interleaved
// buffer, channels samples per frame.
func Interleaved(frames, channels int, waveform func(frame, channel int) float32) []float32 {
	data := make([]float32, frames*channels)
	for f := 0; f < frames; f++ {
		for ch := 0; ch < channels; ch++ {
			data[f*channels+ch] = waveform(f, ch)
		}
	}

	return data
}

// Alternating returns an interleaved buffer whose frames alternate between
// -1 and +1 on every channel.
func Alternating(frames, channels int) []float32 {
	return Interleaved(frames, channels, func(frame, channel int) float32 {
		if frame%2 == 0 {
			return -1
		}
		return 1
	})
}
