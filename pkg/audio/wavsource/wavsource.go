// Package wavsource reads WAV files as audio frames. It lives apart from
// package audio because ebiten's audio packages pull in the platform audio
// driver.
package wavsource

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/audio"
)

// bytesPerFrame is one stereo 16 bit little endian sample pair, the layout of
// a decoded wav.Stream.
const bytesPerFrame = 4

// Source decodes a WAV file and yields mono frames of FrameSize samples.
type Source struct {
	FrameSize int
	Realtime  bool
	Loop      bool

	file   *os.File
	stream *wav.Stream
	buf    []byte
	seq    int64
}

// Open decodes the header of the file at path.
func Open(path string, frameSize int) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	s, err := wav.DecodeWithoutResampling(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
	}
	if frameSize <= 0 {
		frameSize = 1024
	}
	return &Source{FrameSize: frameSize, file: f, stream: s, buf: make([]byte, frameSize*bytesPerFrame)}, nil
}

// SampleRate is the rate stored in the file header.
func (s *Source) SampleRate() float64 { return float64(s.stream.SampleRate()) }

// Next returns the next frame. A short final frame is returned as is, then io.EOF,
// unless Loop rewinds the stream.
func (s *Source) Next(ctx context.Context) (audio.Frame, error) {
	if err := ctx.Err(); err != nil {
		return audio.Frame{}, err
	}
	n, err := io.ReadFull(s.stream, s.buf)
	if n == 0 && (errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)) {
		if !s.Loop {
			return audio.Frame{}, io.EOF
		}
		if _, err := s.stream.Seek(0, io.SeekStart); err != nil {
			return audio.Frame{}, fmt.Errorf("failed to rewind wav: %w", err)
		}
		return s.Next(ctx)
	}
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return audio.Frame{}, fmt.Errorf("failed to read wav: %w", err)
	}
	samples := ToMono(s.buf[:n-n%bytesPerFrame])
	if s.Realtime {
		if err := audio.Wait(ctx, audio.FrameDuration(len(samples), s.SampleRate())); err != nil {
			return audio.Frame{}, err
		}
	}
	f := audio.Frame{Samples: samples, SampleRate: s.SampleRate(), Seq: s.seq}
	s.seq++
	return f, nil
}

// Close releases the underlying file.
func (s *Source) Close() error {
	return s.file.Close()
}

// ToMono averages interleaved 16 bit little endian stereo into [-1, 1] floats.
func ToMono(pcm []byte) []float64 {
	out := make([]float64, len(pcm)/bytesPerFrame)
	for i := range out {
		l := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
		out[i] = (float64(l) + float64(r)) / 2 / 32768
	}
	return out
}
