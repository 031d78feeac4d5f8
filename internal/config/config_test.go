package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{"GEOMAGE_WIDTH", "GEOMAGE_FIT", "GEOMAGE_COLOR", "GEOMAGE_BACKGROUND", "LOG_LEVEL"}

// clearEnv unsets every key FromEnv reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	c, err := FromEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, 1024, c.Width)
	assert.False(t, c.Fit)
}

func TestFromEnvDotenvAndOverride(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("GEOMAGE_WIDTH=300\nGEOMAGE_FIT=true\nGEOMAGE_COLOR=\"#ff0000\"\n"), 0o644))
	t.Setenv("GEOMAGE_WIDTH", "640")

	c, err := FromEnv(p)
	require.NoError(t, err)
	assert.Equal(t, 640, c.Width, "process env wins over dotenv")
	assert.True(t, c.Fit)
	assert.Equal(t, "#ff0000", c.Color)
	assert.Equal(t, DefaultBackground, c.Background)
}

func TestFromEnvBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEOMAGE_WIDTH", "wide")
	_, err := FromEnv(filepath.Join(t.TempDir(), "none"))
	assert.ErrorContains(t, err, "GEOMAGE_WIDTH")

	clearEnv(t)
	t.Setenv("GEOMAGE_FIT", "maybe")
	_, err = FromEnv(filepath.Join(t.TempDir(), "none"))
	assert.ErrorContains(t, err, "GEOMAGE_FIT")
}

func TestValidate(t *testing.T) {
	c := Default()
	assert.ErrorIs(t, c.Validate(false), ErrNoInput)

	c.Inputs = []string{"in.geojson"}
	assert.NoError(t, c.Validate(false))
	assert.ErrorIs(t, c.Validate(true), ErrNoOutput)

	c.Output = "out.png"
	assert.NoError(t, c.Validate(true))

	bad := c
	bad.Width = 0
	assert.Error(t, bad.Validate(true))

	bad = c
	bad.Color = "#zzz"
	assert.ErrorContains(t, bad.Validate(true), "color")

	bad = c
	bad.Background = "nope"
	assert.ErrorContains(t, bad.Validate(true), "background")
}

func TestParseColor(t *testing.T) {
	for in, want := range map[string]color.RGBA{
		"#000000": {A: 255},
		"ff8000":  {R: 255, G: 128, A: 255},
		"#fff":    {R: 255, G: 255, B: 255, A: 255},
	} {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseColor("red")
	assert.Error(t, err)
}
