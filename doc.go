// SPDX-License-Identifier: EPL-2.0

// Package resonance is a small real-time software audio mixer.
//
// Decoded sound assets are played as independent voices which the mixing
// engine sums into an interleaved float32 output buffer each time the host
// pulls audio. The engine lives in the mixer package; this package adds
// loading helpers that decode files into mixer.Sound values.
//
// # Quick Start
//
//	engine := mixer.New()
//	engine.Initialize(48000, mixer.FlagDefault)
//	defer engine.Shutdown()
//
//	shot, err := resonance.LoadFile("shot.wav")
//	if err != nil {
//	    // Handle error
//	}
//	shot.SetPan(-0.5)
//	engine.PlaySound(shot)
//
//	buf := make([]float32, 512*engine.Channels())
//	engine.Update(buf, 512)
//
// The driver package pulls from an engine on behalf of a sound device
// (driver/otoplayer) or renders offline into a WAV file (driver.Render).
//
// # Supported Formats
//
// DefaultRegistry maps file extensions to decoders:
//   - wav via formats/wav
//   - mp3 via formats/mp3
//   - ogg, oga via formats/vorbis
//   - aiff, aif via formats/aiff
//
// Assets are decoded completely at load time and are not resampled, so
// they should already match the engine's output rate.
package resonance
