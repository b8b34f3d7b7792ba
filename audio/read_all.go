// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"slices"
)

const (
	// readChunk is the number of samples requested from the source per read.
	readChunk = 4096

	// maxEmptyReads bounds consecutive (0, nil) reads before giving up.
	maxEmptyReads = 64
)

// ReadAll drains src and returns every interleaved sample it produced.
// The result is truncated to whole frames. src is not closed.
func ReadAll(src Source) ([]float32, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	// keep reads frame aligned so sources that work in frames don't drop data
	chunk := max(readChunk-readChunk%channels, channels)

	samples := make([]float32, 0, chunk)
	empty := 0
	for {
		samples = slices.Grow(samples, chunk)

		start := len(samples)
		n, err := src.ReadSamples(samples[start : start+chunk])
		samples = samples[:start+n]

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}

		empty++
		if empty >= maxEmptyReads {
			return nil, fmt.Errorf("read samples: %w", io.ErrNoProgress)
		}
	}

	return samples[:len(samples)-len(samples)%channels], nil
}
