// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"fmt"
	"io"

	"github.com/ik5/audwave/peaks"
)

// ReadAll drains a source into a single interleaved buffer.
//
// bufferSize is the read chunk in float32 values (e.g. 4096) and must be a
// positive multiple of the source's channel count, since decoders hand out
// whole frames. The returned buffer holds every sample the source produced,
// frame-major, ready for peaks.Build.
func ReadAll(src Source, bufferSize int) ([]float32, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", peaks.ErrInvalidChannelCount, channels)
	}

	if bufferSize <= 0 || bufferSize%channels != 0 {
		return nil, fmt.Errorf("%w: %d with %d channels", ErrInvalidBufferSize, bufferSize, channels)
	}

	// Assume ~2 seconds initially; append grows from there.
	estimated := src.SampleRate() * channels * 2
	samples := make([]float32, 0, estimated)
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return samples, nil
}

// BuildFromSource drains a decoder source and summarizes it at the standard
// bin sizes.
//
// This is the convenience path from any decoder pipeline to a waveform
// cache:
//
//	src, _ := decoder.Decode(file)
//	cache, err := audwave.BuildFromSource(src, 4096)
//
// For custom bin sizes, call ReadAll and peaks.BuildWith directly.
func BuildFromSource(src Source, bufferSize int) (*peaks.Cache, error) {
	samples, err := ReadAll(src, bufferSize)
	if err != nil {
		return nil, err
	}

	return peaks.Build(samples, src.Channels())
}
