// SPDX-License-Identifier: EPL-2.0

// Package otoplayer plays a mixing engine through the system sound device
// using github.com/ebitengine/oto/v3.
//
// oto allows a single context per process, so Open should be called once.
package otoplayer

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/resonance/driver"
)

// Player feeds a driver.Stream to an oto player.
type Player struct {
	ctx    *oto.Context
	player *oto.Player

	mu      sync.Mutex
	started bool
}

// Open creates the device context and blocks until it is ready.
// bufferFrames sets the device buffer length; zero leaves oto's default.
func Open(m driver.Mixer, sampleRate, channels, bufferFrames int) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
	}
	if bufferFrames > 0 && sampleRate > 0 {
		op.BufferSize = time.Duration(bufferFrames) * time.Second / time.Duration(sampleRate)
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("otoplayer: new context: %w", err)
	}
	<-ready

	return &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(driver.NewStream(m)),
	}, nil
}

// Play starts pulling audio. Calling it again is a no-op.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		p.player.Play()
		p.started = true
	}
}

// Close stops playback and releases the player.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.started = false
	if err := p.player.Close(); err != nil {
		return fmt.Errorf("otoplayer: close: %w", err)
	}

	return nil
}
