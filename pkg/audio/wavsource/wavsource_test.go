package wavsource

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// writeWAV writes a 16 bit stereo PCM file holding the given L/R pairs.
func writeWAV(t *testing.T, rate int, pairs [][2]int16) string {
	t.Helper()
	data := make([]byte, 0, len(pairs)*4)
	for _, p := range pairs {
		data = binary.LittleEndian.AppendUint16(data, uint16(p[0]))
		data = binary.LittleEndian.AppendUint16(data, uint16(p[1]))
	}
	var b []byte
	b = append(b, "RIFF"...)
	b = binary.LittleEndian.AppendUint32(b, uint32(36+len(data)))
	b = append(b, "WAVEfmt "...)
	b = binary.LittleEndian.AppendUint32(b, 16)
	b = binary.LittleEndian.AppendUint16(b, 1) // PCM
	b = binary.LittleEndian.AppendUint16(b, 2)
	b = binary.LittleEndian.AppendUint32(b, uint32(rate))
	b = binary.LittleEndian.AppendUint32(b, uint32(rate*4))
	b = binary.LittleEndian.AppendUint16(b, 4)
	b = binary.LittleEndian.AppendUint16(b, 16)
	b = append(b, "data"...)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(data)))
	b = append(b, data...)

	path := filepath.Join(t.TempDir(), "tone.wav")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestToMono(t *testing.T) {
	pcm := []byte{}
	pcm = binary.LittleEndian.AppendUint16(pcm, uint16(16384))
	pcm = binary.LittleEndian.AppendUint16(pcm, 0)
	neg := int16(-32768)
	pcm = binary.LittleEndian.AppendUint16(pcm, uint16(neg))
	pcm = binary.LittleEndian.AppendUint16(pcm, uint16(neg))
	got := ToMono(pcm)
	want := []float64{0.25, -1}
	if len(got) != len(want) {
		t.Fatalf("ToMono() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("ToMono()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSourceFrames(t *testing.T) {
	pairs := make([][2]int16, 10)
	for i := range pairs {
		pairs[i] = [2]int16{int16(i * 1000), int16(i * 1000)}
	}
	src, err := Open(writeWAV(t, 8000, pairs), 4)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer src.Close()
	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %v, want 8000", src.SampleRate())
	}

	ctx := context.Background()
	for i, want := range []int{4, 4, 2} {
		f, err := src.Next(ctx)
		if err != nil {
			t.Fatalf("Next() #%d error = %v", i, err)
		}
		if len(f.Samples) != want || f.Seq != int64(i) {
			t.Errorf("frame %d: len %d seq %d, want len %d", i, len(f.Samples), f.Seq, want)
		}
	}
	if _, err := src.Next(ctx); !errors.Is(err, io.EOF) {
		t.Errorf("Next() at the end error = %v, want io.EOF", err)
	}
}

func TestSourceLoop(t *testing.T) {
	src, err := Open(writeWAV(t, 8000, make([][2]int16, 3)), 4)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()
	src.Loop = true
	for i := 0; i < 4; i++ {
		if _, err := src.Next(context.Background()); err != nil {
			t.Fatalf("looping Next() #%d error = %v", i, err)
		}
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.wav"), 0); err == nil {
		t.Error("Open() of a missing file should fail")
	}
}
