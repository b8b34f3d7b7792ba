// SPDX-License-Identifier: EPL-2.0

package driver

import (
	"context"
	"fmt"
	"io"

	"github.com/ik5/resonance/formats/wav"
	"github.com/ik5/resonance/utils"
)

// Render pulls frames frames from m in blocks of blockFrames and writes
// them to w as a 16-bit PCM WAV file. ctx is checked between blocks.
//
// The whole render is held in memory because the WAV header carries the
// data size.
func Render(ctx context.Context, m Mixer, w io.Writer, sampleRate, frames, blockFrames int) error {
	if sampleRate <= 0 || frames < 0 || blockFrames <= 0 {
		return ErrInvalidRequest
	}

	channels := m.Channels()
	if channels <= 0 {
		return ErrNotRunning
	}

	pcm := make([]int16, frames*channels)
	block := make([]float32, blockFrames*channels)

	for done := 0; done < frames; {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("render interrupted after %d frames: %w", done, err)
		}

		n := min(blockFrames, frames-done)
		clear(block[:n*channels])
		m.Update(block, n)

		utils.Float32sToInt16s(pcm[done*channels:], block[:n*channels])
		done += n
	}

	if err := wav.WriteWAV16(w, sampleRate, channels, pcm); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}
