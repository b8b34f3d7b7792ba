// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files using github.com/go-audio/aiff.
//
// Integer PCM at 8, 16, 24 and 32 bits is supported. Readers that cannot
// seek are buffered in memory first.
package aiff
