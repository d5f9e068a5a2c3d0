// SPDX-License-Identifier: EPL-2.0

package audwave

import "errors"

var (
	ErrInvalidBufferSize = errors.New("buffer size must be positive and a multiple of channels")
	ErrNilBuffer         = errors.New("audio buffer is nil")
)
