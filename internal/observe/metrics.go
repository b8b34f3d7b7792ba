// SPDX-License-Identifier: EPL-2.0

// Package observe exports mixing engine statistics as OpenTelemetry metrics.
//
// [Metrics] implements mixer.Observer. Tests should build it with [NewMetrics]
// over their own [metric.MeterProvider]; the command uses [InitProvider] to
// expose the instruments to Prometheus.
package observe

import (
	"context"

	"github.com/ik5/resonance/mixer"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all resonance metrics.
const meterName = "github.com/ik5/resonance"

// Metrics holds the instruments fed by mix passes. All fields are safe for
// concurrent use.
type Metrics struct {
	// Passes counts Update calls that produced audio.
	Passes metric.Int64Counter

	// Frames counts frames written to the output.
	Frames metric.Int64Counter

	// Completed counts voices that played to their end.
	Completed metric.Int64Counter

	// Evicted counts voices dropped by the concurrency cap.
	Evicted metric.Int64Counter

	// Stopped counts voices retired by StopSound.
	Stopped metric.Int64Counter

	// Clipped counts output samples clamped to [-1, 1].
	Clipped metric.Int64Counter

	// ActiveVoices is the voice count after the last pass.
	ActiveVoices metric.Int64Gauge
}

var _ mixer.Observer = (*Metrics)(nil)

// NewMetrics creates a fully initialised [Metrics] using mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
		unit string
	}{
		{&met.Passes, "resonance.mix.passes", "Mix passes that produced audio.", "{pass}"},
		{&met.Frames, "resonance.mix.frames", "Frames mixed into the output.", "{frame}"},
		{&met.Completed, "resonance.voices.completed", "Voices that played to their end.", "{voice}"},
		{&met.Evicted, "resonance.voices.evicted", "Voices dropped by the concurrency cap.", "{voice}"},
		{&met.Stopped, "resonance.voices.stopped", "Voices retired by an explicit stop.", "{voice}"},
		{&met.Clipped, "resonance.output.clipped", "Output samples clamped to full scale.", "{sample}"},
	}
	for _, c := range counters {
		if *c.dst, err = m.Int64Counter(c.name,
			metric.WithDescription(c.desc),
			metric.WithUnit(c.unit),
		); err != nil {
			return nil, err
		}
	}

	if met.ActiveVoices, err = m.Int64Gauge("resonance.voices.active",
		metric.WithDescription("Voices playing after the last mix pass."),
		metric.WithUnit("{voice}"),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// ObservePass records one mix pass. It is called on the audio thread.
func (m *Metrics) ObservePass(stats mixer.PassStats) {
	ctx := context.Background()

	m.Passes.Add(ctx, 1)
	m.Frames.Add(ctx, int64(stats.Frames))
	m.ActiveVoices.Record(ctx, int64(stats.Voices))

	if stats.Completed > 0 {
		m.Completed.Add(ctx, int64(stats.Completed))
	}
	if stats.Evicted > 0 {
		m.Evicted.Add(ctx, int64(stats.Evicted))
	}
	if stats.Stopped > 0 {
		m.Stopped.Add(ctx, int64(stats.Stopped))
	}
	if stats.Clipped > 0 {
		m.Clipped.Add(ctx, int64(stats.Clipped))
	}
}
