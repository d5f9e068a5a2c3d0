// SPDX-License-Identifier: EPL-2.0

package peaks

import "fmt"

// BinSizes is an ordered list of bin sizes, smallest first. Every cache
// built from the same list shares it: level i of every channel summarizes
// runs of sizes[i] frames.
type BinSizes []int

// Standard returns the default bin-size list {10, 20, 50, 100}.
// The returned slice is a fresh copy on every call.
func Standard() BinSizes {
	return BinSizes{10, 20, 50, 100}
}

// NewBinSizes validates sizes and returns them as a BinSizes list. The list
// must be non-empty, positive throughout, and strictly increasing.
func NewBinSizes(sizes ...int) (BinSizes, error) {
	bs := BinSizes(sizes)
	if err := bs.Validate(); err != nil {
		return nil, err
	}

	return bs, nil
}

// Validate reports whether the list is usable as cache configuration.
func (bs BinSizes) Validate() error {
	if len(bs) == 0 {
		return fmt.Errorf("%w: empty list", ErrInvalidBinSizes)
	}

	if bs[0] <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBinSize, bs[0])
	}

	for i := 1; i < len(bs); i++ {
		if bs[i] <= bs[i-1] {
			return fmt.Errorf("%w: %d after %d", ErrInvalidBinSizes, bs[i], bs[i-1])
		}
	}

	return nil
}

// Index returns the position of binSize in the list. The boolean is false
// when binSize is not configured; there is no sentinel index.
func (bs BinSizes) Index(binSize int) (int, bool) {
	for i, size := range bs {
		if size == binSize {
			return i, true
		}
	}

	return 0, false
}
