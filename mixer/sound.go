// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"sync"
	"time"

	"github.com/ik5/resonance/audio"
	"github.com/ik5/resonance/utils"
)

// Sound is a fully decoded sound asset plus its default playback parameters.
//
// The sample buffer is replaced, never modified in place, when the sound is
// loaded again. Voices that were spawned from an earlier load keep playing
// the buffer they captured, so a Sound may be reloaded or dropped at any
// time without invalidating playing voices. Use StopSound on the engine to
// silence them.
type Sound struct {
	mu sync.RWMutex

	samples   []float32 // interleaved, normalized
	channels  int
	frequency int

	volume float32
	pan    float32
}

// NewSound returns an unloaded sound with volume 1 and centered pan.
func NewSound() *Sound {
	return &Sound{volume: 1}
}

// LoadFromMemory loads signed 16-bit little-endian PCM. channels and
// frequency are stored as given. It fails only when data is empty.
func (s *Sound) LoadFromMemory(data []byte, channels, frequency int) bool {
	if len(data) == 0 {
		return false
	}

	samples := make([]float32, len(data)/2)
	utils.DecodePCM16LE(samples, data)
	s.store(samples, channels, frequency)

	return true
}

// LoadSamples copies already normalized interleaved samples into the sound.
func (s *Sound) LoadSamples(samples []float32, channels, frequency int) bool {
	if len(samples) == 0 {
		return false
	}

	s.store(append([]float32(nil), samples...), channels, frequency)

	return true
}

// LoadFromSource decodes src to the end and loads the result. src is not closed.
func (s *Sound) LoadFromSource(src audio.Source) error {
	samples, err := audio.ReadAll(src)
	if err != nil {
		return fmt.Errorf("load sound: %w", err)
	}
	if len(samples) == 0 {
		return ErrEmptySound
	}

	s.store(samples, src.Channels(), src.SampleRate())

	return nil
}

func (s *Sound) store(samples []float32, channels, frequency int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.samples = samples
	s.channels = channels
	s.frequency = frequency
}

// SetVolume sets the default volume for future voices. Negative values become 0.
func (s *Sound) SetVolume(volume float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.volume = max(volume, 0)
}

func (s *Sound) Volume() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.volume
}

// SetPan sets the default pan for future voices, clamped to [-1, 1].
func (s *Sound) SetPan(pan float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pan = min(max(pan, -1), 1)
}

func (s *Sound) Pan() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.pan
}

// Length is the number of frames: samples divided by channels, truncated.
func (s *Sound) Length() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lengthLocked()
}

func (s *Sound) lengthLocked() int {
	if s.channels <= 0 {
		return 0
	}

	return len(s.samples) / s.channels
}

func (s *Sound) Frequency() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.frequency
}

func (s *Sound) Channels() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.channels
}

// Loaded reports whether the sound holds any samples.
func (s *Sound) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.samples) > 0
}

// Duration is the playback length at the sound's own frequency.
func (s *Sound) Duration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.frequency <= 0 {
		return 0
	}

	return time.Duration(s.lengthLocked()) * time.Second / time.Duration(s.frequency)
}

// newVoice snapshots the current buffer and defaults into a fresh voice.
// ok is false when there is nothing to play.
func (s *Sound) newVoice() (v voice, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	frames := s.lengthLocked()
	if frames == 0 {
		return voice{}, false
	}

	return voice{
		sound:    s,
		samples:  s.samples,
		channels: s.channels,
		frames:   frames,
		volume:   s.volume,
		pan:      s.pan,
		active:   true,
	}, true
}
