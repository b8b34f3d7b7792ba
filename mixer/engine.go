// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
)

const (
	// Unlimited is the default voice cap.
	Unlimited uint32 = math.MaxUint32

	// DefaultVoiceCapacity is the number of voices preallocated so steady
	// state mixing does not allocate.
	DefaultVoiceCapacity = 32
)

// Option configures an Engine during construction.
type Option func(*Engine)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithObserver registers an observer for per-pass statistics.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// WithVoiceCapacity preallocates room for n voices and n queued requests.
func WithVoiceCapacity(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.capacity = n
		}
	}
}

// WithMaxConcurrentSounds sets the initial voice cap.
func WithMaxConcurrentSounds(n uint32) Option {
	return func(e *Engine) {
		e.maxVoices.Store(n)
	}
}

// WithMasterVolume sets the initial master volume.
func WithMasterVolume(v float32) Option {
	return func(e *Engine) {
		e.SetMasterVolume(v)
	}
}

// Engine mixes any number of playing sounds into one interleaved buffer.
//
// Update is meant to be called from the audio callback goroutine while
// PlaySound, StopSound and the setters are called from control goroutines.
// Control requests are queued and applied at the start of the next pass, so
// a request either fully precedes or fully follows a given pass.
type Engine struct {
	logger   *slog.Logger
	observer Observer
	capacity int

	running    atomic.Bool
	sampleRate atomic.Int64
	channels   atomic.Int32

	masterVolume atomic.Uint32 // float32 bits
	maxVoices    atomic.Uint32
	voiceCount   atomic.Int64 // registry size after the last pass

	queue requestQueue

	// mu guards everything below plus lifecycle transitions.
	mu     sync.Mutex
	voices voiceList
	spare  []request
}

// New creates a stopped engine. Call Initialize before mixing.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:   slog.Default(),
		capacity: DefaultVoiceCapacity,
	}
	e.maxVoices.Store(Unlimited)
	e.masterVolume.Store(math.Float32bits(1))

	for _, o := range opts {
		o(e)
	}

	e.voices.voices = make([]voice, 0, e.capacity)
	e.spare = make([]request, 0, e.capacity)
	e.queue.pending = make([]request, 0, e.capacity)

	return e
}

// Initialize starts the engine. It does nothing when already running.
// The output is mono when flags has FlagMono, stereo otherwise.
func (e *Engine) Initialize(sampleRate int, flags StartupFlags) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running.Load() {
		return
	}

	channels := int32(2)
	if flags.Has(FlagMono) {
		channels = 1
	}

	e.sampleRate.Store(int64(sampleRate))
	e.channels.Store(channels)
	e.running.Store(true)

	e.logger.Info("audio engine initialized",
		"sample_rate", sampleRate,
		"channels", channels,
		"flags", flags.String(),
	)
}

// Shutdown stops the engine, waiting for an in-flight pass. Playing voices
// and queued requests are discarded. It does nothing when not running.
func (e *Engine) Shutdown() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running.Load() {
		return
	}

	e.running.Store(false)
	e.channels.Store(0)
	dropped := e.voices.len() + e.queue.pendingSpawns()
	e.voices.reset()
	e.queue.reset()
	e.voiceCount.Store(0)

	e.logger.Info("audio engine shut down", "dropped_voices", dropped)
}

func (e *Engine) Running() bool { return e.running.Load() }

// SampleRate is the output rate given to the last Initialize.
func (e *Engine) SampleRate() int { return int(e.sampleRate.Load()) }

// Channels is the output channel count, 1 or 2, and 0 while stopped.
func (e *Engine) Channels() int { return int(e.channels.Load()) }

// PlaySound queues a new voice of s using the sound's current volume and
// pan. Nil or unloaded sounds are ignored. The voice cap is not checked
// here; it is enforced by the next pass.
func (e *Engine) PlaySound(s *Sound) {
	if s == nil {
		return
	}

	v, ok := s.newVoice()
	if !ok {
		return
	}

	e.queue.push(request{kind: requestSpawn, sound: s, voice: v})
}

// StopSound retires every voice of s, including ones queued before this
// call, at the start of the next pass.
func (e *Engine) StopSound(s *Sound) {
	if s == nil {
		return
	}

	e.queue.push(request{kind: requestStop, sound: s})
}

// SetMasterVolume sets the output gain. Negative and NaN values become 0.
func (e *Engine) SetMasterVolume(v float32) {
	if !(v >= 0) {
		v = 0
	}
	e.masterVolume.Store(math.Float32bits(v))
}

func (e *Engine) MasterVolume() float32 {
	return math.Float32frombits(e.masterVolume.Load())
}

// SetMaxConcurrentSounds sets the voice cap. 0 silences every voice on the
// next pass.
func (e *Engine) SetMaxConcurrentSounds(n uint32) {
	e.maxVoices.Store(n)
}

func (e *Engine) MaxConcurrentSounds() uint32 {
	return e.maxVoices.Load()
}

// CurrentConcurrentSounds counts registered voices plus queued spawns. It
// is an upper bound on audible voices since the cap applies at mix time.
func (e *Engine) CurrentConcurrentSounds() int {
	return int(e.voiceCount.Load()) + e.queue.pendingSpawns()
}
