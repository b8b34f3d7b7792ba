// SPDX-License-Identifier: EPL-2.0

package resonance

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/resonance/audio"
	"github.com/ik5/resonance/formats/aiff"
	"github.com/ik5/resonance/formats/mp3"
	"github.com/ik5/resonance/formats/vorbis"
	"github.com/ik5/resonance/formats/wav"
	"github.com/ik5/resonance/mixer"
)

// DefaultRegistry returns a registry holding every decoder shipped with
// the module, keyed by file extension.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})

	return r
}

var defaultRegistry = DefaultRegistry()

// Load decodes r as format and returns a Sound holding the whole asset.
//
// The asset keeps its native channel count and sample rate. Playback is
// not resampled, so assets should match the engine's output rate.
func Load(r io.Reader, format string) (*mixer.Sound, error) {
	dec, ok := defaultRegistry.Get(format)
	if !ok {
		return nil, fmt.Errorf("load %q: %w", format, audio.ErrUnknownFormat)
	}

	return decode(dec, r)
}

// LoadFile opens path and decodes it using the decoder registered for its
// extension.
func LoadFile(path string) (*mixer.Sound, error) {
	dec, err := defaultRegistry.Lookup(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	s, err := decode(dec, f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return s, nil
}

func decode(dec audio.Decoder, r io.Reader) (*mixer.Sound, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	s := mixer.NewSound()
	if err := s.LoadFromSource(src); err != nil {
		return nil, err
	}

	return s, nil
}
