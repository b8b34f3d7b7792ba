// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is built on github.com/go-audio/wav and accepts any chunk
// layout the RIFF parser understands.
//
// # Supported Formats
//
//   - PCM 8-bit (unsigned), 16-bit, 24-bit and 32-bit
//   - IEEE float 32-bit
//   - Any channel count and sample rate
//
// The decoder returns an audio.Source producing interleaved float32
// samples in [-1.0, 1.0]:
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	samples, err := audio.ReadAll(source)
//
// # Writing WAV Files
//
// WriteWAV16 writes interleaved 16-bit PCM with a canonical 44 byte header:
//
//	err := wav.WriteWAV16(file, 48000, 2, samples)
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrUnsupportedWavLayout: the audio format is neither PCM nor IEEE float
//   - ErrUnsupportedBitDepth: the bit depth cannot be decoded
//   - ErrInvalidChannels: WriteWAV16 was asked for zero channels
package wav
