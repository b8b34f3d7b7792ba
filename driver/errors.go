// SPDX-License-Identifier: EPL-2.0

package driver

import "errors"

var (
	ErrNotRunning     = errors.New("mixer is not running")
	ErrInvalidRequest = errors.New("frames, block size and sample rate must be positive")
)
