// SPDX-License-Identifier: EPL-2.0

package driver

import (
	"encoding/binary"
	"math"
)

// Mixer is the pull side of a mixing engine, implemented by *mixer.Engine.
type Mixer interface {
	// Update fills frames frames of interleaved samples into buf.
	Update(buf []float32, frames int)
	// Channels reports the interleaved output channel count, 0 when stopped.
	Channels() int
}

const bytesPerSample = 4

// Stream adapts a Mixer to io.Reader, producing float32 little-endian PCM.
// Each Read runs one mix pass sized to the largest whole number of frames
// that fits in p.
type Stream struct {
	m       Mixer
	scratch []float32
}

func NewStream(m Mixer) *Stream {
	return &Stream{m: m}
}

// Read never fails; when the mixer is stopped it produces silence.
func (s *Stream) Read(p []byte) (int, error) {
	channels := s.m.Channels()
	if channels <= 0 {
		// stopped engine: keep the device fed
		clear(p)
		return len(p), nil
	}

	frames := len(p) / (bytesPerSample * channels)
	if frames == 0 {
		return 0, nil
	}

	n := frames * channels
	if cap(s.scratch) < n {
		s.scratch = make([]float32, n)
	}
	buf := s.scratch[:n]

	// a stopped mixer leaves buf untouched
	clear(buf)
	s.m.Update(buf, frames)

	for i, v := range buf {
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(v))
	}

	return n * bytesPerSample, nil
}
