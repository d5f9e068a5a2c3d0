// SPDX-License-Identifier: EPL-2.0

package peaks

import "fmt"

// Level summarizes one channel at one bin size: bin i covers frames
// [i*binSize, (i+1)*binSize) of the source buffer and holds the smallest and
// largest sample seen inside that run. A Level never changes once built.
type Level struct {
	binSize int
	mins    []float32
	maxs    []float32
}

// BuildLevel scans one channel of an interleaved buffer and reduces every
// run of binSize frames to a (min, max) pair.
//
// data is frame-major interleaved float32 with channels samples per frame,
// each in [-1, 1]. The output has floor(frames/binSize) bins; a trailing
// partial run is dropped. An empty buffer yields a zero-length Level.
func BuildLevel(binSize int, data []float32, channels, channel int) (*Level, error) {
	if binSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBinSize, binSize)
	}

	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannelCount, channels)
	}

	if channel < 0 || channel >= channels {
		return nil, fmt.Errorf("%w: channel %d of %d", ErrChannelOutOfRange, channel, channels)
	}

	if len(data)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples, %d channels", ErrUnalignedBuffer, len(data), channels)
	}

	frames := len(data) / channels
	bins := frames / binSize

	lv := &Level{
		binSize: binSize,
		mins:    make([]float32, bins),
		maxs:    make([]float32, bins),
	}

	for bin := 0; bin < bins; bin++ {
		// Samples are bounded to [-1, 1], so seeding at the opposite
		// bounds guarantees the first sample displaces both seeds.
		lo := float32(1)
		hi := float32(-1)

		base := bin * binSize * channels
		for frame := 0; frame < binSize; frame++ {
			s := data[base+frame*channels+channel]
			if s < lo {
				lo = s
			}
			if s > hi {
				hi = s
			}
		}

		lv.mins[bin] = lo
		lv.maxs[bin] = hi
	}

	return lv, nil
}

// BuildLevelFrom reduces an already-built finer Level into a coarser one
// without rescanning raw samples. binSize must be an integer multiple of the
// source's bin size; output bin j takes the minimum of the source mins and
// the maximum of the source maxes across source bins [j*scale, (j+1)*scale),
// scale = binSize / src.BinSize().
//
// The result is identical, bin for bin, to building the same binSize
// directly from the raw buffer. Cascading only saves work, never changes
// values.
func BuildLevelFrom(binSize int, src *Level) (*Level, error) {
	if binSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBinSize, binSize)
	}

	if src == nil {
		return nil, ErrNilLevel
	}

	if binSize%src.binSize != 0 {
		return nil, fmt.Errorf("%w: %d from %d", ErrNotDivisible, binSize, src.binSize)
	}

	scale := binSize / src.binSize
	bins := len(src.mins) / scale

	lv := &Level{
		binSize: binSize,
		mins:    make([]float32, bins),
		maxs:    make([]float32, bins),
	}

	for bin := 0; bin < bins; bin++ {
		base := bin * scale

		// Reduce the whole group before writing the output bin.
		lo := src.mins[base]
		hi := src.maxs[base]
		for i := 1; i < scale; i++ {
			if src.mins[base+i] < lo {
				lo = src.mins[base+i]
			}
			if src.maxs[base+i] > hi {
				hi = src.maxs[base+i]
			}
		}

		lv.mins[bin] = lo
		lv.maxs[bin] = hi
	}

	return lv, nil
}

// BinSize returns the number of frames summarized by each bin.
func (l *Level) BinSize() int { return l.binSize }

// Len returns the number of bins.
func (l *Level) Len() int { return len(l.mins) }

// Min returns the smallest sample in bin i.
func (l *Level) Min(i int) float32 { return l.mins[i] }

// Max returns the largest sample in bin i.
func (l *Level) Max(i int) float32 { return l.maxs[i] }

// Mins returns the per-bin minimums. The slice is shared with the Level and
// with every cache sliced from it; treat it as read-only.
func (l *Level) Mins() []float32 { return l.mins }

// Maxs returns the per-bin maximums. Shared storage, read-only.
func (l *Level) Maxs() []float32 { return l.maxs }

// view returns a Level sharing l's arrays, restricted to bins [from, to).
func (l *Level) view(from, to int) *Level {
	return &Level{
		binSize: l.binSize,
		mins:    l.mins[from:to],
		maxs:    l.maxs[from:to],
	}
}
