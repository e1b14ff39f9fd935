// Package wavio reads and writes PCM WAV files as per-channel float64 blocks.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ErrInvalidWAV is returned for files that are not readable PCM WAV.
var ErrInvalidWAV = errors.New("invalid WAV file")

const (
	// DefaultChunkFrames is the number of frames per block.
	DefaultChunkFrames = 65536

	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	wavFormatPCM = 1
)

// Format describes a PCM stream.
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Validate checks that the format can be encoded. 8-bit (unsigned) PCM is
// not supported.
func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidWAV, f.SampleRate)
	}
	if f.Channels <= 0 {
		return fmt.Errorf("%w: channel count must be positive, got %d", ErrInvalidWAV, f.Channels)
	}
	switch f.BitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		return fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidWAV, f.BitDepth)
	}
	return nil
}

// MaxValue returns the full-scale integer value for a bit depth.
func MaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// Reader decodes a WAV file block by block.
type Reader struct {
	file    *os.File
	decoder *wav.Decoder
	format  Format
	buf     *audio.IntBuffer
	invMax  float64
}

// Open opens and validates a WAV file.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrInvalidWAV, path)
	}

	af := decoder.Format()
	format := Format{
		SampleRate: af.SampleRate,
		Channels:   af.NumChannels,
		BitDepth:   int(decoder.BitDepth),
	}
	if err := format.Validate(); err != nil {
		_ = f.Close()
		return nil, err
	}

	return &Reader{
		file:    f,
		decoder: decoder,
		format:  format,
		buf: &audio.IntBuffer{
			Data:   make([]int, DefaultChunkFrames*format.Channels),
			Format: af,
		},
		invMax: 1.0 / MaxValue(format.BitDepth),
	}, nil
}

// Format returns the stream format.
func (r *Reader) Format() Format {
	return r.format
}

// Read decodes up to DefaultChunkFrames frames, one slice per channel.
// It returns io.EOF once the data chunk is exhausted.
func (r *Reader) Read() ([][]float64, error) {
	r.buf.Data = r.buf.Data[:cap(r.buf.Data)]
	n, err := r.decoder.PCMBuffer(r.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}
	frames := n / r.format.Channels
	if frames == 0 {
		return nil, io.EOF
	}
	return Deinterleave(r.buf.Data[:frames*r.format.Channels], r.format.Channels, r.invMax), nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// Writer encodes per-channel blocks into a WAV file.
type Writer struct {
	file    *os.File
	encoder *wav.Encoder
	format  Format
	maxVal  float64
}

// Create creates a WAV file for writing.
func Create(path string, format Format) (*Writer, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{
		file:    f,
		encoder: wav.NewEncoder(f, format.SampleRate, format.BitDepth, format.Channels, wavFormatPCM),
		format:  format,
		maxVal:  MaxValue(format.BitDepth),
	}, nil
}

// Write interleaves and encodes one block. All channels must have the same
// length; samples are clamped to [-1, 1].
func (w *Writer) Write(channels [][]float64) error {
	if len(channels) != w.format.Channels {
		return fmt.Errorf("%w: expected %d channels, got %d", ErrInvalidWAV, w.format.Channels, len(channels))
	}
	for ch := 1; ch < len(channels); ch++ {
		if len(channels[ch]) != len(channels[0]) {
			return fmt.Errorf("%w: channel %d has %d samples, want %d",
				ErrInvalidWAV, ch, len(channels[ch]), len(channels[0]))
		}
	}
	if len(channels[0]) == 0 {
		return nil
	}

	buf := &audio.IntBuffer{
		Data: Interleave(channels, w.maxVal),
		Format: &audio.Format{
			NumChannels: w.format.Channels,
			SampleRate:  w.format.SampleRate,
		},
		SourceBitDepth: w.format.BitDepth,
	}
	if err := w.encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	return nil
}

// Close finalizes the WAV header and closes the file.
func (w *Writer) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return w.file.Close()
}

// Deinterleave splits interleaved integer samples into per-channel slices
// scaled by invMax.
func Deinterleave(data []int, channels int, invMax float64) [][]float64 {
	frames := len(data) / channels
	out := make([][]float64, channels)
	for ch := range channels {
		out[ch] = make([]float64, frames)
	}
	for i := range frames {
		for ch := range channels {
			out[ch][i] = float64(data[i*channels+ch]) * invMax
		}
	}
	return out
}

// Interleave merges per-channel slices into integer samples, clamping each
// value to [-1, 1] before scaling by maxVal.
func Interleave(channels [][]float64, maxVal float64) []int {
	if len(channels) == 0 {
		return nil
	}
	n := len(channels)
	frames := len(channels[0])
	out := make([]int, frames*n)
	for i := range frames {
		for ch := range n {
			s := min(max(channels[ch][i], -1.0), 1.0)
			out[i*n+ch] = int(s * maxVal)
		}
	}
	return out
}
