// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"regexp"
	"strings"

	"github.com/fogleman/fauxgl"
	"github.com/joho/godotenv"

	"github.com/df07/go-raycaster/pkg/renderer"
)

var (
	// ErrInvalidColor is returned for colors that are not #rrggbb hex
	ErrInvalidColor = errors.New("invalid hex color")
	// ErrInvalidShading is returned for unknown normal shading names
	ErrInvalidShading = errors.New("invalid shading")
)

var hexColorPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// S3Config holds the settings for uploading renders to S3-compatible storage
type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Prefix    string
}

// Enabled reports whether a bucket is configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Config holds all runtime settings
type Config struct {
	Scene      string
	OutputDir  string
	Background renderer.Background
	Shading    renderer.NormalShading
	S3         S3Config
}

// getEnv returns the environment variable or a fallback
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Load reads the optional .env file named by RAYCASTER_ENV_FILE (default
// ".env") and builds a Config from the environment. Variables already set
// in the environment take precedence over the file.
func Load() (*Config, error) {
	envFile := getEnv("RAYCASTER_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only
func FromEnv() (*Config, error) {
	defaults := renderer.DefaultBackground()

	sky, err := ParseColor(getEnv("RAYCASTER_SKY_COLOR", FormatColor(defaults.Sky)))
	if err != nil {
		return nil, fmt.Errorf("RAYCASTER_SKY_COLOR: %w", err)
	}
	horizon, err := ParseColor(getEnv("RAYCASTER_HORIZON_COLOR", FormatColor(defaults.Horizon)))
	if err != nil {
		return nil, fmt.Errorf("RAYCASTER_HORIZON_COLOR: %w", err)
	}
	shading, err := ParseShading(getEnv("RAYCASTER_SHADING", renderer.ShadingDirect.String()))
	if err != nil {
		return nil, fmt.Errorf("RAYCASTER_SHADING: %w", err)
	}

	return &Config{
		Scene:      getEnv("RAYCASTER_SCENE", "default"),
		OutputDir:  getEnv("RAYCASTER_OUTPUT_DIR", "output"),
		Background: renderer.Background{Horizon: horizon, Sky: sky},
		Shading:    shading,
		S3: S3Config{
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			Region:    getEnv("S3_REGION", "us-east-1"),
			Bucket:    os.Getenv("S3_BUCKET"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			Prefix:    os.Getenv("S3_PREFIX"),
		},
	}, nil
}

// ParseColor parses a #rrggbb hex color into an opaque RGBA color
func ParseColor(s string) (color.RGBA, error) {
	if !hexColorPattern.MatchString(s) {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c := fauxgl.HexColor(s)
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: 255,
	}, nil
}

// FormatColor formats a color as #rrggbb
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseShading parses a normal shading name ("direct" or "inverted").
// An empty name is direct shading.
func ParseShading(s string) (renderer.NormalShading, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return renderer.ShadingDirect, nil
	}
	var shading renderer.NormalShading
	if err := shading.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidShading, s)
	}
	return shading, nil
}
