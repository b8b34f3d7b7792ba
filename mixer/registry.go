// SPDX-License-Identifier: EPL-2.0

package mixer

import "sync"

// voiceList is the ordered set of live voices. It is only touched under
// the engine's mix lock.
type voiceList struct {
	voices []voice
}

func (l *voiceList) add(v voice) {
	l.voices = append(l.voices, v)
}

func (l *voiceList) len() int {
	return len(l.voices)
}

// stop deactivates every active voice spawned from s.
func (l *voiceList) stop(s *Sound) int {
	stopped := 0
	for i := range l.voices {
		v := &l.voices[i]
		if v.active && v.sound == s {
			v.active = false
			stopped++
		}
	}

	return stopped
}

// prune drops inactive voices, keeping insertion order.
func (l *voiceList) prune() {
	kept := l.voices[:0]
	for _, v := range l.voices {
		if v.active {
			kept = append(kept, v)
		}
	}

	// release sample buffers held by the dropped tail
	clear(l.voices[len(kept):])
	l.voices = kept
}

func (l *voiceList) reset() {
	clear(l.voices)
	l.voices = l.voices[:0]
}

type requestKind uint8

const (
	requestSpawn requestKind = iota
	requestStop
)

type request struct {
	kind  requestKind
	sound *Sound
	voice voice // spawn only
}

// requestQueue carries control-side requests to the mix pass. The lock is
// held only for an append or a slice swap, so the real-time side never
// waits on a control operation for longer than that.
type requestQueue struct {
	mu      sync.Mutex
	pending []request
	spawns  int
}

func (q *requestQueue) push(r request) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending = append(q.pending, r)
	if r.kind == requestSpawn {
		q.spawns++
	}
}

// swap installs spare as the new pending buffer and returns the old one.
func (q *requestQueue) swap(spare []request) []request {
	q.mu.Lock()
	defer q.mu.Unlock()

	batch := q.pending
	q.pending = spare[:0]
	q.spawns = 0

	return batch
}

func (q *requestQueue) pendingSpawns() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.spawns
}

func (q *requestQueue) reset() {
	q.mu.Lock()
	defer q.mu.Unlock()

	clear(q.pending)
	q.pending = q.pending[:0]
	q.spawns = 0
}
