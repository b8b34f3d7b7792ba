// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// Int16Scale is the divisor that maps signed 16-bit PCM into [-1, 1).
const Int16Scale = 32768.0

// Int16ToFloat32 converts a signed 16-bit PCM sample to a normalized float.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / Int16Scale
}

// DecodePCM16LE decodes little-endian signed 16-bit PCM from src into dst
// and returns the number of samples written. A trailing odd byte is ignored.
func DecodePCM16LE(dst []float32, src []byte) int {
	n := min(len(dst), len(src)/2)
	for i := range n {
		dst[i] = Int16ToFloat32(int16(binary.LittleEndian.Uint16(src[2*i:])))
	}

	return n
}
