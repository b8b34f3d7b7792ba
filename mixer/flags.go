// SPDX-License-Identifier: EPL-2.0

package mixer

import "strings"

// StartupFlags tune how Initialize configures the engine.
type StartupFlags uint32

const (
	// FlagDefault selects stereo output.
	FlagDefault StartupFlags = 0
	// FlagMono selects a single output channel instead of stereo.
	FlagMono StartupFlags = 1 << 2
	// FlagHighQuality is accepted for compatibility and currently has no effect.
	FlagHighQuality StartupFlags = 1 << 3
)

// Has reports whether any bit of mask is set in f.
func (f StartupFlags) Has(mask StartupFlags) bool {
	return f&mask != 0
}

func (f StartupFlags) String() string {
	if f == FlagDefault {
		return "default"
	}

	var parts []string
	if f.Has(FlagMono) {
		parts = append(parts, "mono")
	}
	if f.Has(FlagHighQuality) {
		parts = append(parts, "high_quality")
	}
	if rest := f &^ (FlagMono | FlagHighQuality); rest != 0 {
		parts = append(parts, "unknown")
	}

	return strings.Join(parts, "|")
}
