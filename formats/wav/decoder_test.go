// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/resonance/audio"
)

// createWAVFile builds a canonical WAV file around already encoded sample data.
func createWAVFile(format uint16, sampleRate, channels, bitsPerSample int, data []byte) []byte {
	buf := new(bytes.Buffer)

	blockAlign := uint16(channels * bitsPerSample / 8)
	byteRate := uint32(sampleRate) * uint32(blockAlign)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+len(data)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, format)
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	return buf.Bytes()
}

func encodeLE(values ...any) []byte {
	buf := new(bytes.Buffer)
	for _, v := range values {
		binary.Write(buf, binary.LittleEndian, v)
	}
	return buf.Bytes()
}

func int24LE(v int32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16)}
}

func readAll(t *testing.T, src audio.Source) []float32 {
	t.Helper()

	samples, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	return samples
}

func assertSamples(t *testing.T, got, want []float32) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-4 {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_BitDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format uint16
		bits   int
		data   []byte
		want   []float32
	}{
		{
			name:   "8-bit unsigned",
			format: formatPCM,
			bits:   8,
			data:   []byte{0, 128, 192, 255},
			want:   []float32{-1, 0, 0.5, 127.0 / 128},
		},
		{
			name:   "16-bit",
			format: formatPCM,
			bits:   16,
			data:   encodeLE(int16(-32768), int16(0), int16(16384), int16(32767)),
			want:   []float32{-1, 0, 0.5, 32767.0 / 32768},
		},
		{
			name:   "24-bit",
			format: formatPCM,
			bits:   24,
			data:   bytes.Join([][]byte{int24LE(-8388608), int24LE(0), int24LE(4194304)}, nil),
			want:   []float32{-1, 0, 0.5},
		},
		{
			name:   "32-bit int",
			format: formatPCM,
			bits:   32,
			data:   encodeLE(int32(math.MinInt32), int32(0), int32(1<<30)),
			want:   []float32{-1, 0, 0.5},
		},
		{
			name:   "32-bit float",
			format: formatFloat,
			bits:   32,
			data:   encodeLE(float32(-0.75), float32(0), float32(0.25)),
			want:   []float32{-0.75, 0, 0.25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file := createWAVFile(tt.format, 8000, 1, tt.bits, tt.data)
			src, err := Decoder{}.Decode(bytes.NewReader(file))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			assertSamples(t, readAll(t, src), tt.want)
		})
	}
}

func TestDecoder_Stereo(t *testing.T) {
	t.Parallel()

	data := encodeLE(int16(16384), int16(-16384), int16(0), int16(8192))
	file := createWAVFile(formatPCM, 44100, 2, 16, data)

	src, err := Decoder{}.Decode(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	assertSamples(t, readAll(t, src), []float32{0.5, -0.5, 0, 0.25})
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	file := createWAVFile(formatPCM, 8000, 1, 16, encodeLE(int16(16384)))

	// io.MultiReader hides Seek
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(file)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	assertSamples(t, readAll(t, src), []float32{0.5})
}

func TestDecoder_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{
			name:    "not riff",
			input:   []byte("This is not a WAV file at all, just text padding it out"),
			wantErr: ErrNotWavFile,
		},
		{
			name:    "adpcm",
			input:   createWAVFile(2, 8000, 1, 16, encodeLE(int16(0))),
			wantErr: ErrUnsupportedWavLayout,
		},
		{
			name:    "64-bit float",
			input:   createWAVFile(formatFloat, 8000, 1, 64, make([]byte, 8)),
			wantErr: ErrUnsupportedBitDepth,
		},
		{
			name:    "12-bit pcm",
			input:   createWAVFile(formatPCM, 8000, 1, 12, make([]byte, 4)),
			wantErr: ErrUnsupportedBitDepth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

type fakePCMReader struct {
	chunks [][]int
	err    error
}

func (f *fakePCMReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if len(f.chunks) == 0 {
		return 0, nil
	}

	n := copy(buf.Data, f.chunks[0])
	f.chunks = f.chunks[1:]
	return n, nil
}

func TestSource_ShortReadsContinue(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakePCMReader{chunks: [][]int{{16384}, {-16384, 0}}},
		sampleRate: 8000,
		channels:   1,
		bitDepth:   16,
	}

	buf := make([]float32, 4)

	n, err := src.ReadSamples(buf)
	if n != 1 || err != nil {
		t.Fatalf("first ReadSamples() = (%d, %v), want (1, nil)", n, err)
	}

	n, err = src.ReadSamples(buf)
	if n != 2 || err != nil {
		t.Fatalf("second ReadSamples() = (%d, %v), want (2, nil)", n, err)
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Fatalf("final ReadSamples() = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := &source{dec: &fakePCMReader{err: boom}, channels: 1, bitDepth: 16}

	_, err := src.ReadSamples(make([]float32, 8))
	if !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestSource_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakePCMReader{err: errors.New("must not be called")}}

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func BenchmarkDecoder_16bit(b *testing.B) {
	samples := make([]int16, 48000*2)
	for i := range samples {
		samples[i] = int16(i)
	}

	file := new(bytes.Buffer)
	if err := WriteWAV16(file, 48000, 2, samples); err != nil {
		b.Fatal(err)
	}
	data := file.Bytes()

	buf := make([]float32, 4096)

	b.ReportAllocs()
	b.ResetTimer()

	for b.Loop() {
		src, err := Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
