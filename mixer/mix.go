// SPDX-License-Identifier: EPL-2.0

package mixer

import "math"

// Update mixes frames frames of every playing voice into buf, which must
// hold frames*Channels() samples; frames is reduced to what buf can hold.
// When the engine is not running buf is left untouched.
func (e *Engine) Update(buf []float32, frames int) {
	if !e.running.Load() {
		return
	}

	e.mu.Lock()
	if !e.running.Load() {
		e.mu.Unlock()
		return
	}
	stats := e.mix(buf, frames)
	e.mu.Unlock()

	if e.observer != nil {
		e.observer.ObservePass(stats)
	}
}

func (e *Engine) mix(buf []float32, frames int) PassStats {
	var stats PassStats

	channels := int(e.channels.Load())
	frames = max(min(frames, len(buf)/channels), 0)
	out := buf[:frames*channels]

	stats.Frames = frames
	stats.Stopped = e.applyRequests()

	clear(out)

	limit := e.maxVoices.Load()
	var admitted uint32
	for i := range e.voices.voices {
		v := &e.voices.voices[i]
		if !v.active {
			continue
		}

		// earliest spawned voices win; later ones are dropped for good
		if admitted >= limit {
			v.active = false
			stats.Evicted++
			continue
		}
		admitted++

		if v.mixInto(out, frames, channels) {
			stats.Completed++
		}
	}

	master := e.MasterVolume()
	for i, s := range out {
		if s == 0 {
			// silence stays silent even under an infinite gain
			continue
		}
		s *= master
		switch {
		case s > 1:
			s = 1
			stats.Clipped++
		case s < -1:
			s = -1
			stats.Clipped++
		case math.IsNaN(float64(s)):
			s = 0
		}
		out[i] = s
	}

	e.voices.prune()
	stats.Voices = e.voices.len()
	e.voiceCount.Store(int64(stats.Voices))

	return stats
}

// applyRequests moves queued control requests into the voice list, in the
// order they were made, and returns the number of voices stopped.
func (e *Engine) applyRequests() int {
	batch := e.queue.swap(e.spare)

	stopped := 0
	for i := range batch {
		r := &batch[i]
		switch r.kind {
		case requestSpawn:
			e.voices.add(r.voice)
		case requestStop:
			stopped += e.voices.stop(r.sound)
		}
	}

	clear(batch)
	e.spare = batch[:0]

	return stopped
}
