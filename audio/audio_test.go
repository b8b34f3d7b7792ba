// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/ik5/resonance/internal/audiotest"
)

// stubDecoder is a named decoder so tests can tell instances apart.
type stubDecoder struct {
	name string
}

func (d *stubDecoder) Decode(io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &stubDecoder{name: "wav"}
	registry.Register("wav", decoder)

	tests := []struct {
		name   string
		format string
		wantOK bool
	}{
		{name: "exact key", format: "wav", wantOK: true},
		{name: "upper case", format: "WAV", wantOK: true},
		{name: "leading dot", format: ".wav", wantOK: true},
		{name: "unregistered", format: "flac", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := registry.Get(tt.format)
			if ok != tt.wantOK {
				t.Fatalf("Registry.Get(%q) ok = %v, want %v", tt.format, ok, tt.wantOK)
			}
			if ok && got != decoder {
				t.Errorf("Registry.Get(%q) returned a different decoder", tt.format)
			}
		})
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &stubDecoder{name: "first"}
	second := &stubDecoder{name: "second"}

	registry.Register("ogg", first)
	registry.Register(".OGG", second)

	got, ok := registry.Get("ogg")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}
	if got != second {
		t.Error("Registry.Get() did not return the overwriting decoder")
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	mp3 := &stubDecoder{name: "mp3"}
	registry.Register("mp3", mp3)

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "matching extension", path: "sfx/laser.MP3"},
		{name: "unknown extension", path: "sfx/laser.flac", wantErr: ErrUnknownFormat},
		{name: "no extension", path: "sfx/laser", wantErr: ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := registry.Lookup(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Registry.Lookup(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
			if tt.wantErr == nil && got != mp3 {
				t.Errorf("Registry.Lookup(%q) returned a different decoder", tt.path)
			}
		})
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, f := range []string{"wav", "Ogg", ".aiff"} {
		registry.Register(f, &stubDecoder{name: f})
	}

	want := []string{"aiff", "ogg", "wav"}
	if got := registry.Formats(); !slices.Equal(got, want) {
		t.Errorf("Registry.Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &stubDecoder{name: "wav"}

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register("wav", decoder)
		}()
		go func() {
			defer wg.Done()
			registry.Get("wav")
		}()
	}
	wg.Wait()

	if _, ok := registry.Get("wav"); !ok {
		t.Error("Registry.Get() failed after concurrent registration")
	}
}
