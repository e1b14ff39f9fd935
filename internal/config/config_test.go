package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.Numerator)
	assert.Equal(t, []float64{1}, cfg.Denominator)
	assert.Equal(t, 1024, cfg.Analysis.Samples)
	assert.InDelta(t, 1.0, cfg.Analysis.SFNorm, 0)
	assert.False(t, cfg.Analysis.IncludeNyquist)
	assert.False(t, cfg.Analysis.Whole)
	assert.False(t, cfg.Analysis.Strict)
	assert.InDelta(t, 1.0, cfg.Output.AxisLimit, 0)
	assert.Equal(t, 1, cfg.Output.Step)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, "zplane.yaml", `
b: [1, -0.5]
a: [1, -1.8, 0.81]
samples: 256
sfnorm: 22050
nyquist: true
axis_lim: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, -0.5}, cfg.Numerator)
	assert.Equal(t, []float64{1, -1.8, 0.81}, cfg.Denominator)
	assert.Equal(t, 256, cfg.Analysis.Samples)
	assert.InDelta(t, 22050.0, cfg.Analysis.SFNorm, 0)
	assert.True(t, cfg.Analysis.IncludeNyquist)
	assert.InDelta(t, 2.0, cfg.Output.AxisLimit, 0)
}

func TestLoad_JSONFile(t *testing.T) {
	path := writeFile(t, "zplane.json", `{"b": [0.25, 0.5, 0.25], "samples": 8}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []float64{0.25, 0.5, 0.25}, cfg.Numerator)
	assert.Equal(t, []float64{1}, cfg.Denominator)
	assert.Equal(t, 8, cfg.Analysis.Samples)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "zplane.yaml", "samples: 256\nb: [1]\n")
	t.Setenv("ZPLANE_SAMPLES", "64")
	t.Setenv("ZPLANE_B", "1,-0.5")
	t.Setenv("ZPLANE_STRICT", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.Analysis.Samples)
	assert.Equal(t, []float64{1, -0.5}, cfg.Numerator)
	assert.True(t, cfg.Analysis.Strict)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("bad coefficient", func(t *testing.T) {
		t.Setenv("ZPLANE_A", "1,x")
		_, err := Load("")
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("non-positive samples", func(t *testing.T) {
		t.Setenv("ZPLANE_SAMPLES", "0")
		_, err := Load("")
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("non-positive sfnorm", func(t *testing.T) {
		t.Setenv("ZPLANE_SFNORM", "-1")
		_, err := Load("")
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestParseCoefficients(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []float64
	}{
		{"comma", "1,-0.5", []float64{1, -0.5}},
		{"spaces", "1 -1.8  0.81", []float64{1, -1.8, 0.81}},
		{"brackets", "[1, 2, 1]", []float64{1, 2, 1}},
		{"exponent", "1e-3,2E2", []float64{0.001, 200}},
		{"empty", "", []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoefficients(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCoefficients("1,,abc")
	require.ErrorIs(t, err, ErrInvalidConfig)
}
