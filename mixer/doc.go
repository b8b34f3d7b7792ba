// SPDX-License-Identifier: EPL-2.0

// Package mixer is a real-time software mixer.
//
// A Sound holds a decoded, normalized sample buffer and default playback
// parameters. Engine.PlaySound spawns a voice of a Sound; every call to
// Engine.Update mixes all playing voices into one interleaved buffer.
//
// # Lifecycle
//
//	engine := mixer.New()
//	engine.Initialize(48000, mixer.FlagDefault) // stereo
//	defer engine.Shutdown()
//
// Initialize and Shutdown are idempotent. Shutdown discards every voice, and
// Update leaves the buffer untouched while the engine is not running.
//
// # Mixing
//
// For each pass the engine zero-fills the buffer, then walks the voices in
// spawn order. Each voice contributes its samples scaled by a linear pan
// law:
//
//	left  = volume * (1 - pan)  when pan > 0, else volume
//	right = volume * (1 + pan)  when pan < 0, else volume
//
// Mono sounds feed both legs; sounds with two or more channels use their
// first two. With mono output the legs are averaged. Finally every sample
// is scaled by the master volume and clamped to [-1, 1], and voices that
// finished, were stopped or were evicted are removed.
//
// # Voice cap
//
// SetMaxConcurrentSounds limits how many voices are mixed per pass. The cap
// is applied during Update in spawn order: the earliest voices are mixed and
// every later voice is dropped permanently.
//
// # Concurrency
//
// Update runs on the audio callback goroutine. PlaySound, StopSound and the
// setters may be called from any goroutine; they never wait for a pass in
// progress. Only Initialize and Shutdown take the mix lock.
package mixer
