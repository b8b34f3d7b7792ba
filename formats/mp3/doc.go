// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always produces
// 16-bit stereo. The decoder converts it to interleaved float32 samples in
// [-1.0, 1.0] and only ever returns whole stereo frames, even when the
// underlying reader splits a frame across reads.
//
//	file, _ := os.Open("effect.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	samples, err := audio.ReadAll(source)
//
// MP3 writing is not supported.
package mp3
