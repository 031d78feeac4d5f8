// Package config holds the settings of one conversion run.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultWidth      = 1024
	DefaultColor      = "#000000"
	DefaultBackground = "#FFFFFF"
)

var (
	ErrNoInput  = errors.New("at least one input file is required")
	ErrNoOutput = errors.New("an output file is required")
)

// Config is the full set of options a run consumes.
type Config struct {
	Inputs     []string
	Output     string
	Width      int
	Fit        bool
	Color      string
	Background string
	LogLevel   string
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Width:      DefaultWidth,
		Color:      DefaultColor,
		Background: DefaultBackground,
		LogLevel:   "info",
	}
}

// FromEnv returns the defaults overlaid with GEOMAGE_* and LOG_LEVEL values
// from dotenv files (".env" when none are given) and the process
// environment, the latter winning. Missing dotenv files are ignored.
func FromEnv(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	vals := map[string]string{}
	for _, f := range files {
		m, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", f, err)
		}
		for k, v := range m {
			vals[k] = v
		}
	}
	get := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vals[key]
		return v, ok
	}

	c := Default()
	if v, ok := get("GEOMAGE_WIDTH"); ok {
		w, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("GEOMAGE_WIDTH: %w", err)
		}
		c.Width = w
	}
	if v, ok := get("GEOMAGE_FIT"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("GEOMAGE_FIT: %w", err)
		}
		c.Fit = b
	}
	if v, ok := get("GEOMAGE_COLOR"); ok {
		c.Color = v
	}
	if v, ok := get("GEOMAGE_BACKGROUND"); ok {
		c.Background = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	return c, nil
}

// Validate checks the settings. Output is only required when needOutput is set.
func (c Config) Validate(needOutput bool) error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}
	if needOutput && strings.TrimSpace(c.Output) == "" {
		return ErrNoOutput
	}
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if _, err := ParseColor(c.Color); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

// Paint returns the parsed stroke color.
func (c Config) Paint() (color.Color, error) { return ParseColor(c.Color) }

// Fill returns the parsed background color.
func (c Config) Fill() (color.Color, error) { return ParseColor(c.Background) }

// ParseColor accepts #rgb and #rrggbb hex colors; the leading # is optional.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
