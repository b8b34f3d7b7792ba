// SPDX-License-Identifier: EPL-2.0

package main

import (
	"time"

	"github.com/ik5/resonance/mixer"
)

// cue triggers a sound at a frame position and, optionally, every
// interval frames after it.
type cue struct {
	sound *mixer.Sound
	next  int // -1 once a one-shot cue has fired
	every int
}

// sequencer is the driver.Mixer handed to the output. It fires due cues
// before each pass so triggers follow the rendered timeline rather than the
// wall clock. Update must be called from a single goroutine.
type sequencer struct {
	engine *mixer.Engine
	cues   []cue
	pos    int
}

func newSequencer(engine *mixer.Engine) *sequencer {
	return &sequencer{engine: engine}
}

// add schedules s at the start of the timeline, repeating every interval
// when interval is positive.
func (q *sequencer) add(s *mixer.Sound, interval time.Duration) {
	every := 0
	if interval > 0 {
		every = max(framesFor(interval, q.engine.SampleRate()), 1)
	}
	q.cues = append(q.cues, cue{sound: s, every: every})
}

func (q *sequencer) Channels() int { return q.engine.Channels() }

func (q *sequencer) Update(buf []float32, frames int) {
	end := q.pos + max(frames, 0)

	for i := range q.cues {
		c := &q.cues[i]
		for c.next >= 0 && c.next < end {
			q.engine.PlaySound(c.sound)
			if c.every == 0 {
				c.next = -1
				break
			}
			c.next += c.every
		}
	}

	q.engine.Update(buf, frames)
	q.pos = end
}

func framesFor(d time.Duration, sampleRate int) int {
	return int(d * time.Duration(sampleRate) / time.Second)
}
