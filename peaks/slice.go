// SPDX-License-Identifier: EPL-2.0

package peaks

import "fmt"

// Slice returns a view of the cache restricted to frames
// [startFrame, endFrame). Every level maps the frame range to bins
// [startFrame/binSize, endFrame/binSize); the resulting levels share the
// original min/max arrays, so no bin data is copied and the source cache is
// never modified.
//
// Slicing composes: slicing a slice applies the same bin arithmetic to the
// already-restricted ranges, with frames counted from the slice's own start.
// The cost is proportional to channels times levels, not to sample count,
// and concurrent slicing of a shared cache is safe.
func (c *Cache) Slice(startFrame, endFrame int) (*Cache, error) {
	if startFrame > endFrame {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidFrameRange, startFrame, endFrame)
	}

	if startFrame < 0 || endFrame > c.frames {
		return nil, fmt.Errorf("%w: [%d, %d) of %d frames", ErrFrameOutOfRange, startFrame, endFrame, c.frames)
	}

	s := &Cache{
		sizes:    c.sizes,
		channels: make([][]*Level, len(c.channels)),
		frames:   endFrame - startFrame,
	}

	for ch, levels := range c.channels {
		views := make([]*Level, len(levels))
		for i, lv := range levels {
			views[i] = lv.view(startFrame/lv.binSize, endFrame/lv.binSize)
		}

		s.channels[ch] = views
	}

	return s, nil
}
