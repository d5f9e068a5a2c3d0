// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"errors"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audwave/internal/audiotest"
	"github.com/ik5/audwave/peaks"
)

func TestBuildFromBuffer_IntBuffer(t *testing.T) {
	t.Parallel()

	// Full-scale 16-bit alternation.
	data := make([]int, 1000)
	for i := range data {
		if i%2 == 0 {
			data[i] = -32768
		} else {
			data[i] = 32767
		}
	}

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: 44100},
		Data:           data,
		SourceBitDepth: 16,
	}

	cache, err := BuildFromBuffer(buf)
	if err != nil {
		t.Fatalf("BuildFromBuffer() error = %v", err)
	}

	if cache.Frames() != 1000 {
		t.Errorf("Frames() = %d, want 1000", cache.Frames())
	}

	lv, err := cache.Level(0, 0)
	if err != nil {
		t.Fatalf("Level(0, 0) error = %v", err)
	}

	wantMin := float32(-1.0)
	wantMax := float32(32767.0 / 32768.0)
	for i := 0; i < lv.Len(); i++ {
		if lv.Min(i) != wantMin || lv.Max(i) != wantMax {
			t.Fatalf("bin %d = (%v, %v), want (%v, %v)",
				i, lv.Min(i), lv.Max(i), wantMin, wantMax)
		}
	}
}

func TestBuildFromBuffer_BitDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		value    int
		want     float32
	}{
		{name: "8-bit", bitDepth: 8, value: -128, want: -1.0},
		{name: "16-bit", bitDepth: 16, value: 16384, want: 0.5},
		{name: "24-bit", bitDepth: 24, value: -8388608, want: -1.0},
		{name: "32-bit", bitDepth: 32, value: 1073741824, want: 0.5},
		{name: "unknown treated as 16-bit", bitDepth: 0, value: 16384, want: 0.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := make([]int, 100)
			for i := range data {
				data[i] = tt.value
			}

			buf := &goaudio.IntBuffer{
				Format:         &goaudio.Format{NumChannels: 1, SampleRate: 8000},
				Data:           data,
				SourceBitDepth: tt.bitDepth,
			}

			cache, err := BuildFromBuffer(buf)
			if err != nil {
				t.Fatalf("BuildFromBuffer() error = %v", err)
			}

			lv, err := cache.Level(0, 0)
			if err != nil {
				t.Fatalf("Level(0, 0) error = %v", err)
			}

			for i := 0; i < lv.Len(); i++ {
				if lv.Min(i) != tt.want || lv.Max(i) != tt.want {
					t.Fatalf("bin %d = (%v, %v), want (%v, %v)",
						i, lv.Min(i), lv.Max(i), tt.want, tt.want)
				}
			}
		})
	}
}

func TestBuildFromBuffer_Float32Buffer(t *testing.T) {
	t.Parallel()

	data := audiotest.Alternating(500, 2)
	buf := &goaudio.Float32Buffer{
		Format: &goaudio.Format{NumChannels: 2, SampleRate: 44100},
		Data:   data,
	}

	cache, err := BuildFromBuffer(buf)
	if err != nil {
		t.Fatalf("BuildFromBuffer() error = %v", err)
	}

	want, err := peaks.Build(audiotest.Alternating(500, 2), 2)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	compareCaches(t, cache, want)

	// The samples were copied: mutating the decoded buffer afterwards must
	// not disturb the cache.
	for i := range data {
		data[i] = 0
	}

	lv, err := cache.Level(0, 0)
	if err != nil {
		t.Fatalf("Level(0, 0) error = %v", err)
	}

	if lv.Min(0) != -1 || lv.Max(0) != 1 {
		t.Errorf("cache changed after buffer mutation: (%v, %v)", lv.Min(0), lv.Max(0))
	}
}

func TestBuildFromBuffer_FloatBuffer(t *testing.T) {
	t.Parallel()

	data := make([]float64, 400)
	for i := range data {
		if i%2 == 0 {
			data[i] = -0.5
		} else {
			data[i] = 0.5
		}
	}

	buf := &goaudio.FloatBuffer{
		Format: &goaudio.Format{NumChannels: 2, SampleRate: 22050},
		Data:   data,
	}

	cache, err := BuildFromBuffer(buf)
	if err != nil {
		t.Fatalf("BuildFromBuffer() error = %v", err)
	}

	if cache.Frames() != 200 {
		t.Errorf("Frames() = %d, want 200", cache.Frames())
	}

	for ch := 0; ch < cache.Channels(); ch++ {
		lv, err := cache.Level(ch, 0)
		if err != nil {
			t.Fatalf("Level(%d, 0) error = %v", ch, err)
		}

		for i := 0; i < lv.Len(); i++ {
			if lv.Min(i) != -0.5 || lv.Max(i) != 0.5 {
				t.Fatalf("channel %d bin %d = (%v, %v), want (-0.5, 0.5)",
					ch, i, lv.Min(i), lv.Max(i))
			}
		}
	}
}

func TestBuildFromBuffer_NilBuffer(t *testing.T) {
	t.Parallel()

	if _, err := BuildFromBuffer(nil); !errors.Is(err, ErrNilBuffer) {
		t.Errorf("BuildFromBuffer(nil) error = %v, want %v", err, ErrNilBuffer)
	}

	missing := &goaudio.IntBuffer{Data: []int{1, 2, 3}}
	if _, err := BuildFromBuffer(missing); !errors.Is(err, ErrNilBuffer) {
		t.Errorf("BuildFromBuffer(no format) error = %v, want %v", err, ErrNilBuffer)
	}
}

// fakeBuffer exercises the fallback path taken for Buffer implementations
// outside the go-audio concrete types.
type fakeBuffer struct {
	format *goaudio.Format
	data   []float32
}

func (f *fakeBuffer) PCMFormat() *goaudio.Format { return f.format }

func (f *fakeBuffer) NumFrames() int { return len(f.data) / f.format.NumChannels }

func (f *fakeBuffer) AsFloatBuffer() *goaudio.FloatBuffer {
	data := make([]float64, len(f.data))
	for i, v := range f.data {
		data[i] = float64(v)
	}

	return &goaudio.FloatBuffer{Format: f.format, Data: data}
}

func (f *fakeBuffer) AsFloat32Buffer() *goaudio.Float32Buffer {
	return &goaudio.Float32Buffer{Format: f.format, Data: f.data}
}

func (f *fakeBuffer) AsIntBuffer() *goaudio.IntBuffer { return nil }

func (f *fakeBuffer) Clone() goaudio.Buffer { return f }

func TestBuildFromBuffer_FallbackImplementation(t *testing.T) {
	t.Parallel()

	data := audiotest.Alternating(300, 1)
	buf := &fakeBuffer{
		format: &goaudio.Format{NumChannels: 1, SampleRate: 16000},
		data:   data,
	}

	cache, err := BuildFromBuffer(buf)
	if err != nil {
		t.Fatalf("BuildFromBuffer() error = %v", err)
	}

	want, err := peaks.Build(data, 1)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	compareCaches(t, cache, want)
}

func BenchmarkBuildFromBuffer(b *testing.B) {
	b.ReportAllocs()

	buf := &goaudio.Float32Buffer{
		Format: &goaudio.Format{NumChannels: 2, SampleRate: 44100},
		Data:   audiotest.Alternating(44100, 2),
	}

	for i := 0; i < b.N; i++ {
		if _, err := BuildFromBuffer(buf); err != nil {
			b.Fatal(err)
		}
	}
}
