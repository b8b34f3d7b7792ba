// SPDX-License-Identifier: EPL-2.0

// Package audio defines the streaming contracts shared by the format
// decoders and the asset loader.
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// ReadSamples fills dst with interleaved float32 samples in [-1.0, 1.0]
// and returns io.EOF once the stream is exhausted.
//
// # Decoders and the Registry
//
// A Decoder turns an io.Reader into a Source. A Registry maps format names
// (file extensions, case-insensitive, leading dot optional) to decoders:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, err := reg.Lookup("sfx/laser.WAV")
//
// # Collecting a Stream
//
// ReadAll drains a Source into one slice truncated to whole frames. It is
// how sound assets are fully decoded before playback.
package audio
