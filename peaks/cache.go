// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Cache is the full multi-resolution summary of one buffer: for every
// channel, one Level per configured bin size. A Cache never changes once
// built and is safe for concurrent readers without locking; publish the
// pointer through a single synchronized handoff and read freely afterwards.
type Cache struct {
	sizes    BinSizes
	channels [][]*Level
	frames   int
}

// Build summarizes an interleaved buffer at the standard bin sizes.
//
// data is frame-major interleaved float32 with channels samples per frame,
// each in [-1, 1]. Construction is synchronous; when Build returns, every
// level of every channel is complete.
func Build(data []float32, channels int) (*Cache, error) {
	return BuildWith(Standard(), data, channels)
}

// BuildWith summarizes an interleaved buffer at the given bin sizes.
// Channel hierarchies touch disjoint output and only read the shared input,
// so they are built in parallel; the result does not depend on scheduling.
func BuildWith(sizes BinSizes, data []float32, channels int) (*Cache, error) {
	if err := sizes.Validate(); err != nil {
		return nil, err
	}

	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannelCount, channels)
	}

	if len(data)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples, %d channels", ErrUnalignedBuffer, len(data), channels)
	}

	c := &Cache{
		sizes:    sizes,
		channels: make([][]*Level, channels),
		frames:   len(data) / channels,
	}

	var g errgroup.Group
	for ch := 0; ch < channels; ch++ {
		ch := ch
		g.Go(func() error {
			levels, err := buildHierarchy(data, channels, ch, sizes)
			if err != nil {
				return fmt.Errorf("channel %d: %w", ch, err)
			}

			c.channels[ch] = levels
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return c, nil
}

// buildHierarchy builds one channel's levels, smallest bin size first.
// Level 0 always scans the raw buffer. Every later level cascades from the
// closest already-built level whose bin size divides it, and falls back to a
// raw scan when none does.
func buildHierarchy(data []float32, channels, channel int, sizes BinSizes) ([]*Level, error) {
	levels := make([]*Level, 0, len(sizes))

	first, err := BuildLevel(sizes[0], data, channels, channel)
	if err != nil {
		return nil, err
	}
	levels = append(levels, first)

	for _, size := range sizes[1:] {
		var lv *Level

		if src, ok := cascadeSource(levels, size); ok {
			lv, err = BuildLevelFrom(size, src)
		} else {
			lv, err = BuildLevel(size, data, channels, channel)
		}
		if err != nil {
			return nil, err
		}

		levels = append(levels, lv)
	}

	return levels, nil
}

// cascadeSource scans the already-built levels, most recently built first,
// for one whose bin size evenly divides binSize.
func cascadeSource(levels []*Level, binSize int) (*Level, bool) {
	for i := len(levels) - 1; i >= 0; i-- {
		if binSize%levels[i].binSize == 0 {
			return levels[i], true
		}
	}

	return nil, false
}

// Channels returns the number of channels the cache summarizes.
func (c *Cache) Channels() int { return len(c.channels) }

// Levels returns the number of levels per channel.
func (c *Cache) Levels() int { return len(c.sizes) }

// Frames returns the number of frames the cache covers. For a sliced cache
// this is the width of the slice.
func (c *Cache) Frames() int { return c.frames }

// BinSizes returns the configured bin sizes, aligned with level indices.
// Shared storage, read-only.
func (c *Cache) BinSizes() BinSizes { return c.sizes }

// Level returns the summary of one channel at one bin-size index. Resolve
// the index for a particular bin size with BinSizes().Index.
func (c *Cache) Level(channel, index int) (*Level, error) {
	if channel < 0 || channel >= len(c.channels) {
		return nil, fmt.Errorf("%w: channel %d of %d", ErrChannelOutOfRange, channel, len(c.channels))
	}

	if index < 0 || index >= len(c.sizes) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrLevelOutOfRange, index, len(c.sizes))
	}

	return c.channels[channel][index], nil
}
