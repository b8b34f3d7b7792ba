// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio using github.com/jfreymuth/oggvorbis.
//
// Samples are produced as interleaved float32 in the stream's native
// channel layout and sample rate. Reads always return whole frames.
package vorbis
