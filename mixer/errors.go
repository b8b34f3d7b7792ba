// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

var (
	ErrEmptySound = errors.New("sound has no samples")
)
