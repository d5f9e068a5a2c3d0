// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audwave/peaks"
	"github.com/ik5/audwave/utils"
)

// BuildFromBuffer summarizes a decoded go-audio PCM buffer at the standard
// bin sizes.
//
// Int buffers are normalized to [-1, 1] by their source bit depth; float
// buffers are taken as already normalized. The channel count comes from the
// buffer's format. The buffer's data is copied, so the cache stays valid if
// the caller reuses the buffer afterwards.
func BuildFromBuffer(buf goaudio.Buffer) (*peaks.Cache, error) {
	samples, channels, err := bufferSamples(buf)
	if err != nil {
		return nil, err
	}

	return peaks.Build(samples, channels)
}

func bufferSamples(buf goaudio.Buffer) ([]float32, int, error) {
	if buf == nil || buf.PCMFormat() == nil {
		return nil, 0, ErrNilBuffer
	}

	channels := buf.PCMFormat().NumChannels

	switch b := buf.(type) {
	case *goaudio.IntBuffer:
		samples := make([]float32, len(b.Data))
		for i, v := range b.Data {
			samples[i] = utils.PCMToFloat32(v, b.SourceBitDepth)
		}
		return samples, channels, nil

	case *goaudio.Float32Buffer:
		samples := make([]float32, len(b.Data))
		copy(samples, b.Data)
		return samples, channels, nil

	case *goaudio.FloatBuffer:
		samples := make([]float32, len(b.Data))
		for i, v := range b.Data {
			samples[i] = float32(v)
		}
		return samples, channels, nil

	default:
		// Unknown implementations go through the float32 view and are taken
		// as already normalized.
		fb := buf.AsFloat32Buffer()
		if fb == nil {
			return nil, 0, ErrNilBuffer
		}

		samples := make([]float32, len(fb.Data))
		copy(samples, fb.Data)
		return samples, channels, nil
	}
}
