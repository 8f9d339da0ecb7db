package signature

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BinarizeThreshold != 0.9 {
		t.Errorf("BinarizeThreshold: got %v, want 0.9", cfg.BinarizeThreshold)
	}
	if cfg.ErosionHeight != 30 || cfg.ErosionWidth != 10 {
		t.Errorf("erosion element: got %dx%d, want 30x10", cfg.ErosionHeight, cfg.ErosionWidth)
	}
	if cfg.ContourLevel != 0.1 {
		t.Errorf("ContourLevel: got %v, want 0.1", cfg.ContourLevel)
	}
	if cfg.MinContourLength != 200 {
		t.Errorf("MinContourLength: got %d, want 200", cfg.MinContourLength)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sigfind.yaml")
	data := "erosion_height: 20\nmin_contour_length: 150\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.ErosionHeight != 20 || cfg.MinContourLength != 150 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.ErosionWidth != 10 || cfg.BinarizeThreshold != 0.9 || cfg.ContourLevel != 0.1 {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "erosion_height: [1, 2\n", "failed to parse"},
		{"threshold too high", "binarize_threshold: 1.5\n", "binarize_threshold"},
		{"zero erosion", "erosion_width: 0\n", "erosion element"},
		{"negative length", "min_contour_length: -1\n", "min_contour_length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap the not-exist cause: %v", err)
	}
}

func TestNewDetector_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ErosionHeight = 0

	if _, err := NewDetector(cfg); err == nil {
		t.Error("expected error for invalid config")
	}
}
