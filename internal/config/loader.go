// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML configuration file at path and returns a validated [Config].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes YAML from r over [Default] and validates the result.
// An empty document yields the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}

	if cfg.Engine.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("engine.sample_rate %d must be positive", cfg.Engine.SampleRate))
	}
	if cfg.Engine.MasterVolume < 0 {
		errs = append(errs, fmt.Errorf("engine.master_volume %.2f must not be negative", cfg.Engine.MasterVolume))
	}
	if cfg.Engine.VoiceCapacity < 0 {
		errs = append(errs, fmt.Errorf("engine.voice_capacity %d must not be negative", cfg.Engine.VoiceCapacity))
	}

	if !cfg.Output.Mode.IsValid() {
		errs = append(errs, fmt.Errorf("output.mode %q is invalid; valid values: device, file", cfg.Output.Mode))
	}
	if cfg.Output.BufferFrames <= 0 {
		errs = append(errs, fmt.Errorf("output.buffer_frames %d must be positive", cfg.Output.BufferFrames))
	}
	if cfg.Output.Duration < 0 {
		errs = append(errs, fmt.Errorf("output.duration %s must not be negative", cfg.Output.Duration))
	}
	if cfg.Output.Mode == OutputFile {
		if cfg.Output.Path == "" {
			errs = append(errs, errors.New("output.path is required in file mode"))
		}
		if cfg.Output.Duration <= 0 {
			errs = append(errs, errors.New("output.duration is required in file mode"))
		}
	}

	seen := make(map[string]int, len(cfg.Sounds))
	for i, s := range cfg.Sounds {
		prefix := fmt.Sprintf("sounds[%d]", i)
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		} else {
			if prev, ok := seen[s.Name]; ok {
				errs = append(errs, fmt.Errorf("%s.name %q is a duplicate of sounds[%d]", prefix, s.Name, prev))
			}
			seen[s.Name] = i
		}
		if s.Path == "" {
			errs = append(errs, fmt.Errorf("%s.path is required", prefix))
		}
		if s.Gain() < 0 {
			errs = append(errs, fmt.Errorf("%s.volume %.2f must not be negative", prefix, s.Gain()))
		}
		if s.Pan < -1 || s.Pan > 1 {
			errs = append(errs, fmt.Errorf("%s.pan %.2f is out of range [-1, 1]", prefix, s.Pan))
		}
		if s.Interval < 0 {
			errs = append(errs, fmt.Errorf("%s.interval %s must not be negative", prefix, s.Interval))
		}
	}

	return errors.Join(errs...)
}
