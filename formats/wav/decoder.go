// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/resonance/audio"
)

const (
	formatPCM   = 1
	formatFloat = 3
)

// pcmReader is the part of gowav.Decoder that source reads through.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
	sampleRate int
	channels   int
	bitDepth   int
	float      bool
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         &goaudio.Format{NumChannels: s.channels, SampleRate: s.sampleRate},
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("wav: %w", err)
	}
	// go-audio signals the end of the data chunk with an empty read
	if n <= 0 {
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = s.normalize(v)
	}

	return n, nil
}

func (s *source) normalize(v int) float32 {
	switch {
	case s.float:
		return math.Float32frombits(uint32(v))
	case s.bitDepth == 8:
		// 8-bit WAV is unsigned
		return (float32(v) - 128) / 128
	case s.bitDepth == 16:
		return float32(int16(v)) / 32768
	case s.bitDepth == 24:
		return float32(v) / 8388608
	default:
		return float32(int32(uint32(v))) / 2147483648
	}
}

// Decoder reads RIFF/WAVE files: integer PCM at 8, 16, 24 or 32 bits and
// 32-bit IEEE float. Any chunk layout is accepted.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	float := dec.WavAudioFormat == formatFloat
	switch {
	case dec.WavAudioFormat != formatPCM && !float:
		return nil, ErrUnsupportedWavLayout
	case float && dec.BitDepth != 32:
		return nil, ErrUnsupportedBitDepth
	case dec.BitDepth != 8 && dec.BitDepth != 16 && dec.BitDepth != 24 && dec.BitDepth != 32:
		return nil, ErrUnsupportedBitDepth
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("wav: seeking to data chunk: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   int(dec.BitDepth),
		float:      float,
	}, nil
}
