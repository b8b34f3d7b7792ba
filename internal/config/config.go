// SPDX-License-Identifier: EPL-2.0

// Package config loads the resonance command configuration from YAML.
package config

import (
	"log/slog"
	"time"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// SlogLevel maps l to a slog level, defaulting to info.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// OutputMode selects where mixed audio goes.
type OutputMode string

const (
	// OutputDevice plays through the system sound device.
	OutputDevice OutputMode = "device"
	// OutputFile renders offline into a WAV file.
	OutputFile OutputMode = "file"
)

// IsValid reports whether m is a recognised output mode.
func (m OutputMode) IsValid() bool {
	return m == OutputDevice || m == OutputFile
}

// Config is the top-level configuration.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Output OutputConfig `yaml:"output"`

	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`

	// MetricsAddr is the listen address of the Prometheus endpoint.
	// Empty disables it.
	MetricsAddr string `yaml:"metrics_addr"`

	Sounds []SoundConfig `yaml:"sounds"`
}

// EngineConfig configures the mixing engine.
type EngineConfig struct {
	SampleRate   int     `yaml:"sample_rate"`
	Mono         bool    `yaml:"mono"`
	MasterVolume float32 `yaml:"master_volume"`

	// MaxVoices caps concurrent voices. Zero means unlimited.
	MaxVoices uint32 `yaml:"max_voices"`

	// VoiceCapacity preallocates voice storage.
	VoiceCapacity int `yaml:"voice_capacity"`
}

// OutputConfig configures the output driver.
type OutputConfig struct {
	Mode OutputMode `yaml:"mode"`

	// Path is the WAV file written in file mode.
	Path string `yaml:"path"`

	// BufferFrames is the device buffer in device mode and the block size
	// in file mode.
	BufferFrames int `yaml:"buffer_frames"`

	// Duration bounds the run. Required in file mode; zero runs a device
	// until interrupted.
	Duration time.Duration `yaml:"duration"`
}

// SoundConfig describes an asset and how it is triggered.
type SoundConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`

	// Volume is the sound's gain. Nil means 1.
	Volume *float32 `yaml:"volume"`
	Pan    float32  `yaml:"pan"`

	// Interval retriggers the sound periodically. Zero plays it once.
	Interval time.Duration `yaml:"interval"`
}

// Gain returns the configured volume, 1 when unset.
func (s SoundConfig) Gain() float32 {
	if s.Volume == nil {
		return 1
	}
	return *s.Volume
}

// Default returns the configuration used for keys absent from a file.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			SampleRate:    48000,
			MasterVolume:  1,
			VoiceCapacity: 32,
		},
		Output: OutputConfig{
			Mode:         OutputDevice,
			BufferFrames: 1024,
		},
		LogLevel: LogInfo,
	}
}
