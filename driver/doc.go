// SPDX-License-Identifier: EPL-2.0

// Package driver connects a mixing engine to an output.
//
// Stream exposes the engine as an io.Reader of float32 little-endian PCM,
// which is what a pull-based sound device consumes (see the otoplayer
// subpackage). Render drives the engine offline and writes the result as
// a WAV file.
package driver
