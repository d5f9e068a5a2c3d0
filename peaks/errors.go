// SPDX-License-Identifier: EPL-2.0

package peaks

import "errors"

var (
	// ErrInvalidBinSize indicates a zero or negative bin size.
	ErrInvalidBinSize = errors.New("bin size must be positive")

	// ErrInvalidBinSizes indicates a bin-size list that is empty or not
	// strictly increasing.
	ErrInvalidBinSizes = errors.New("bin sizes must be strictly increasing and non-empty")

	// ErrInvalidChannelCount indicates a zero or negative channel count.
	ErrInvalidChannelCount = errors.New("channel count must be positive")

	// ErrChannelOutOfRange indicates a channel index outside [0, channels).
	ErrChannelOutOfRange = errors.New("channel index out of range")

	// ErrLevelOutOfRange indicates a level index outside the configured
	// bin-size list.
	ErrLevelOutOfRange = errors.New("level index out of range")

	// ErrUnalignedBuffer indicates a buffer whose length is not a multiple
	// of the channel count.
	ErrUnalignedBuffer = errors.New("buffer size must be multiple of channels")

	// ErrNotDivisible indicates a cascade target bin size that is not an
	// integer multiple of the source bin size.
	ErrNotDivisible = errors.New("bin size must be a multiple of the source bin size")

	// ErrNilLevel indicates a nil cascade source.
	ErrNilLevel = errors.New("source level is nil")

	// ErrInvalidFrameRange indicates a start frame greater than the end frame.
	ErrInvalidFrameRange = errors.New("start frame after end frame")

	// ErrFrameOutOfRange indicates a frame range outside the frames covered
	// by the cache.
	ErrFrameOutOfRange = errors.New("frame range exceeds cache bounds")
)
