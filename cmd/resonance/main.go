// SPDX-License-Identifier: EPL-2.0

// Command resonance mixes a set of sound assets on a schedule, either
// through the sound device or offline into a WAV file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/resonance"
	"github.com/ik5/resonance/driver"
	"github.com/ik5/resonance/driver/otoplayer"
	"github.com/ik5/resonance/internal/config"
	"github.com/ik5/resonance/internal/observe"
	"github.com/ik5/resonance/mixer"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "resonance.yaml", "path to the YAML configuration file")
	outPath := flag.String("out", "", "render to this WAV file instead of the sound device")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "resonance: %v\n", err)
		return 1
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var opts []mixer.Option
	if cfg.MetricsAddr != "" {
		shutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{})
		if err != nil {
			slog.Error("failed to initialise metrics", "err", err)
			return 1
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				slog.Warn("metrics shutdown error", "err", err)
			}
		}()

		metrics, err := observe.NewMetrics(otel.GetMeterProvider())
		if err != nil {
			slog.Error("failed to create metrics", "err", err)
			return 1
		}
		opts = append(opts, mixer.WithObserver(metrics))
	}

	engine := newEngine(cfg, logger, opts...)
	defer engine.Shutdown()

	seq := newSequencer(engine)
	for _, sc := range cfg.Sounds {
		s, err := resonance.LoadFile(sc.Path)
		if err != nil {
			slog.Error("failed to load sound", "sound", sc.Name, "err", err)
			return 1
		}
		if s.Frequency() != cfg.Engine.SampleRate {
			slog.Warn("sound sample rate differs from the engine; it will play at the wrong pitch",
				"sound", sc.Name,
				"sound_rate", s.Frequency(),
				"engine_rate", cfg.Engine.SampleRate,
			)
		}
		s.SetVolume(sc.Gain())
		s.SetPan(sc.Pan)
		seq.add(s, sc.Interval)

		slog.Debug("sound loaded", "sound", sc.Name, "frames", s.Length(), "duration", s.Duration())
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)

	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			return serveMetrics(gctx, cfg.MetricsAddr)
		})
	}

	g.Go(func() error {
		defer cancel()
		if cfg.Output.Mode == config.OutputFile {
			return renderFile(gctx, cfg, seq)
		}
		return playDevice(gctx, cfg, seq)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run error", "err", err)
		return 1
	}

	slog.Info("goodbye")
	return 0
}

func loadConfig(path, outPath string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %q not found", path)
		}
		return nil, err
	}

	if outPath != "" {
		cfg.Output.Mode = config.OutputFile
		cfg.Output.Path = outPath
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func newEngine(cfg *config.Config, logger *slog.Logger, opts ...mixer.Option) *mixer.Engine {
	maxVoices := mixer.Unlimited
	if cfg.Engine.MaxVoices > 0 {
		maxVoices = cfg.Engine.MaxVoices
	}

	opts = append(opts,
		mixer.WithLogger(logger),
		mixer.WithVoiceCapacity(cfg.Engine.VoiceCapacity),
		mixer.WithMaxConcurrentSounds(maxVoices),
		mixer.WithMasterVolume(cfg.Engine.MasterVolume),
	)

	flags := mixer.FlagDefault
	if cfg.Engine.Mono {
		flags |= mixer.FlagMono
	}

	engine := mixer.New(opts...)
	engine.Initialize(cfg.Engine.SampleRate, flags)

	return engine
}

func renderFile(ctx context.Context, cfg *config.Config, seq *sequencer) (err error) {
	f, err := os.Create(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	rate := cfg.Engine.SampleRate
	frames := framesFor(cfg.Output.Duration, rate)

	start := time.Now()
	if err := driver.Render(ctx, seq, f, rate, frames, cfg.Output.BufferFrames); err != nil {
		return err
	}

	slog.Info("render complete",
		"path", cfg.Output.Path,
		"frames", frames,
		"elapsed", time.Since(start),
	)
	return nil
}

func playDevice(ctx context.Context, cfg *config.Config, seq *sequencer) error {
	if cfg.Output.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Output.Duration)
		defer cancel()
	}

	p, err := otoplayer.Open(seq, cfg.Engine.SampleRate, seq.Channels(), cfg.Output.BufferFrames)
	if err != nil {
		return err
	}

	p.Play()
	slog.Info("playing, press Ctrl+C to stop", "sounds", len(cfg.Sounds))

	<-ctx.Done()

	return p.Close()
}

func serveMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("metrics server shutdown error", "err", err)
		}
	}()

	slog.Info("metrics listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

func newLogger(level config.LogLevel) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level.SlogLevel()}))
}
