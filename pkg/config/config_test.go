package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-raycaster/pkg/renderer"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    color.RGBA
		expectError bool
	}{
		{"six digits", "#7fb2ff", color.RGBA{R: 127, G: 178, B: 255, A: 255}, false},
		{"no hash", "ffffff", color.RGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"upper case", "#FF0000", color.RGBA{R: 255, G: 0, B: 0, A: 255}, false},
		{"three digits", "#0f0", color.RGBA{}, true},
		{"empty", "", color.RGBA{}, true},
		{"bad digits", "#zzzzzz", color.RGBA{}, true},
		{"wrong length", "#12345", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseColor(tt.input)
			if tt.expectError {
				if !errors.Is(err, ErrInvalidColor) {
					t.Errorf("Expected ErrInvalidColor for %q, got %v", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestFormatColor_RoundTripsThroughParse(t *testing.T) {
	for _, c := range []color.RGBA{renderer.White, renderer.Sky, renderer.Black} {
		parsed, err := ParseColor(FormatColor(c))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if parsed != c {
			t.Errorf("Expected %v, got %v", c, parsed)
		}
	}
}

func TestParseShading(t *testing.T) {
	tests := []struct {
		input       string
		expected    renderer.NormalShading
		expectError bool
	}{
		{"direct", renderer.ShadingDirect, false},
		{"Inverted", renderer.ShadingInverted, false},
		{"", renderer.ShadingDirect, false},
		{"sideways", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseShading(tt.input)
			if tt.expectError {
				if !errors.Is(err, ErrInvalidShading) {
					t.Errorf("Expected ErrInvalidShading, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"RAYCASTER_SCENE", "RAYCASTER_OUTPUT_DIR", "RAYCASTER_SKY_COLOR",
		"RAYCASTER_HORIZON_COLOR", "RAYCASTER_SHADING", "S3_BUCKET", "S3_REGION"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Scene != "default" {
		t.Errorf("Expected scene 'default', got %q", cfg.Scene)
	}
	if cfg.OutputDir != "output" {
		t.Errorf("Expected output dir 'output', got %q", cfg.OutputDir)
	}
	if cfg.Background != renderer.DefaultBackground() {
		t.Errorf("Expected default background, got %v", cfg.Background)
	}
	if cfg.Shading != renderer.ShadingDirect {
		t.Errorf("Expected direct shading, got %v", cfg.Shading)
	}
	if cfg.S3.Enabled() {
		t.Error("Expected S3 to be disabled without a bucket")
	}
	if cfg.S3.Region != "us-east-1" {
		t.Errorf("Expected default region us-east-1, got %q", cfg.S3.Region)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("RAYCASTER_SCENE", "plane")
	t.Setenv("RAYCASTER_SKY_COLOR", "#000000")
	t.Setenv("RAYCASTER_HORIZON_COLOR", "#ff0000")
	t.Setenv("RAYCASTER_SHADING", "inverted")
	t.Setenv("S3_BUCKET", "renders")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Scene != "plane" {
		t.Errorf("Expected scene 'plane', got %q", cfg.Scene)
	}
	if cfg.Background.Sky != renderer.Black {
		t.Errorf("Expected black sky, got %v", cfg.Background.Sky)
	}
	if cfg.Background.Horizon != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("Expected red horizon, got %v", cfg.Background.Horizon)
	}
	if cfg.Shading != renderer.ShadingInverted {
		t.Errorf("Expected inverted shading, got %v", cfg.Shading)
	}
	if !cfg.S3.Enabled() {
		t.Error("Expected S3 to be enabled")
	}
}

func TestFromEnv_InvalidValues(t *testing.T) {
	t.Run("bad color", func(t *testing.T) {
		t.Setenv("RAYCASTER_SKY_COLOR", "blue")
		if _, err := FromEnv(); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("Expected ErrInvalidColor, got %v", err)
		}
	})

	t.Run("bad shading", func(t *testing.T) {
		t.Setenv("RAYCASTER_SHADING", "sideways")
		if _, err := FromEnv(); !errors.Is(err, ErrInvalidShading) {
			t.Errorf("Expected ErrInvalidShading, got %v", err)
		}
	})
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "raycaster.env")
	content := "RAYCASTER_SCENE=ground\nRAYCASTER_OUTPUT_DIR=renders\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	t.Setenv("RAYCASTER_ENV_FILE", envFile)
	t.Setenv("RAYCASTER_SCENE", "")
	os.Unsetenv("RAYCASTER_SCENE")
	t.Setenv("RAYCASTER_OUTPUT_DIR", "")
	os.Unsetenv("RAYCASTER_OUTPUT_DIR")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Scene != "ground" {
		t.Errorf("Expected scene from env file, got %q", cfg.Scene)
	}
	if cfg.OutputDir != "renders" {
		t.Errorf("Expected output dir from env file, got %q", cfg.OutputDir)
	}
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	t.Setenv("RAYCASTER_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	if _, err := Load(); err != nil {
		t.Errorf("Expected missing env file to be ignored, got %v", err)
	}
}
