// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidChannels = errors.New("source channel count must be positive")
	ErrUnknownFormat   = errors.New("unknown audio format")
)
