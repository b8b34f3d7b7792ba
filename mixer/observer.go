// SPDX-License-Identifier: EPL-2.0

package mixer

// PassStats summarizes one mix pass.
type PassStats struct {
	Frames    int // frames written to the output buffer
	Voices    int // voices left in the registry after pruning
	Completed int // voices that reached the end of their sound
	Evicted   int // voices dropped by the voice cap
	Stopped   int // voices retired by StopSound
	Clipped   int // output samples clamped to [-1, 1]
}

// Observer receives statistics after every mix pass, outside the mix lock,
// on the goroutine that called Update. It must not block.
type Observer interface {
	ObservePass(stats PassStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(PassStats)

func (f ObserverFunc) ObservePass(stats PassStats) { f(stats) }
