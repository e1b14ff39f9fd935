package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, path string) (Format, [][]float64) {
	t.Helper()
	r, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	format := r.Format()
	out := make([][]float64, format.Channels)
	for {
		block, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		for ch := range out {
			out[ch] = append(out[ch], block[ch]...)
		}
	}
	return format, out
}

func TestOpen_FileNotFound(t *testing.T) {
	_, err := Open("/nonexistent/file.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestOpen_InvalidWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o644))

	_, err := Open(path)
	require.ErrorIs(t, err, ErrInvalidWAV)
}

func TestCreate_InvalidDirectory(t *testing.T) {
	_, err := Create("/nonexistent/dir/output.wav", Format{SampleRate: 48000, Channels: 2, BitDepth: 16})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestFormat_Validate(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		wantErr bool
	}{
		{"16-bit stereo", Format{44100, 2, 16}, false},
		{"24-bit mono", Format{48000, 1, 24}, false},
		{"32-bit", Format{96000, 1, 32}, false},
		{"8-bit", Format{8000, 1, 8}, true},
		{"zero rate", Format{0, 1, 16}, true},
		{"zero channels", Format{44100, 0, 16}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.format.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidWAV)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, bitDepth := range []int{16, 24} {
		t.Run(fmt.Sprintf("%d-bit", bitDepth), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tone.wav")
			format := Format{SampleRate: 8000, Channels: 2, BitDepth: bitDepth}

			const n = 1000
			left := make([]float64, n)
			right := make([]float64, n)
			for i := range n {
				left[i] = 0.5 * math.Sin(2*math.Pi*440*float64(i)/8000)
				right[i] = -0.25
			}

			w, err := Create(path, format)
			require.NoError(t, err)
			require.NoError(t, w.Write([][]float64{left[:400], right[:400]}))
			require.NoError(t, w.Write([][]float64{left[400:], right[400:]}))
			require.NoError(t, w.Close())

			got, channels := readAll(t, path)
			assert.Equal(t, format, got)
			require.Len(t, channels, 2)
			require.Len(t, channels[0], n)
			require.Len(t, channels[1], n)

			tol := 2.0 / MaxValue(bitDepth)
			for i := range n {
				assert.InDelta(t, left[i], channels[0][i], tol, "left[%d]", i)
				assert.InDelta(t, right[i], channels[1][i], tol, "right[%d]", i)
			}
		})
	}
}

func TestWriter_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	w, err := Create(path, Format{SampleRate: 8000, Channels: 2, BitDepth: 16})
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	err = w.Write([][]float64{{0}})
	require.ErrorIs(t, err, ErrInvalidWAV)

	err = w.Write([][]float64{{0, 0}, {0}})
	require.ErrorIs(t, err, ErrInvalidWAV)

	require.NoError(t, w.Write([][]float64{{}, {}}))
}

func TestInterleave_Clamps(t *testing.T) {
	got := Interleave([][]float64{{2, -2, 0.5}}, MaxValue(16))
	assert.Equal(t, []int{32767, -32767, 16383}, got)
}

func TestDeinterleave(t *testing.T) {
	got := Deinterleave([]int{1, 2, 3, 4, 5, 6}, 2, 1)
	assert.Equal(t, [][]float64{{1, 3, 5}, {2, 4, 6}}, got)

	assert.Nil(t, Interleave(nil, 1))
}
