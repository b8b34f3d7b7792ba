// SPDX-License-Identifier: EPL-2.0

package mixer

// voice is one playback of a Sound: a cursor plus per-play volume and pan.
// position never exceeds frames, and a voice at the end is inactive.
type voice struct {
	sound *Sound // identity only, for StopSound

	samples  []float32
	channels int
	frames   int

	position int
	volume   float32
	pan      float32
	active   bool
}

// PanGains applies the linear pan law: the side opposite the pan direction
// is attenuated, the other side keeps the full volume.
func PanGains(volume, pan float32) (left, right float32) {
	left, right = volume, volume
	if pan > 0 {
		left = volume * (1 - pan)
	}
	if pan < 0 {
		right = volume * (1 + pan)
	}

	return left, right
}

// mixInto accumulates up to frames frames into out, which is interleaved
// with outChannels channels (1 or 2). It reports whether the voice finished.
func (v *voice) mixInto(out []float32, frames, outChannels int) (done bool) {
	left, right := PanGains(v.volume, v.pan)
	n := min(frames, v.frames-v.position)
	src := v.samples[v.position*v.channels:]

	switch {
	case v.channels == 1 && outChannels == 2:
		for i := range n {
			s := src[i]
			out[2*i] += s * left
			out[2*i+1] += s * right
		}
	case v.channels == 1:
		for i := range n {
			s := src[i]
			out[i] += 0.5 * (s*left + s*right)
		}
	case outChannels == 2:
		for i := range n {
			base := i * v.channels
			out[2*i] += src[base] * left
			out[2*i+1] += src[base+1] * right
		}
	default:
		for i := range n {
			base := i * v.channels
			out[i] += 0.5 * (src[base]*left + src[base+1]*right)
		}
	}

	v.position += n
	if v.position >= v.frames {
		v.active = false
		return true
	}

	return false
}
