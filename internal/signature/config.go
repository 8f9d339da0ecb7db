package signature

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Pipeline defaults.
const (
	DefaultBinarizeThreshold = 0.9
	DefaultErosionHeight     = 30
	DefaultErosionWidth      = 10
	DefaultContourLevel      = 0.1
	DefaultMinContourLength  = 200

	// RequestedContourLength is the minimum length the grouped-page extraction asks
	// for. Extract always applies Config.MinContourLength instead.
	RequestedContourLength = 300
)

// Config holds the pipeline constants.
type Config struct {
	// BinarizeThreshold separates paper (strictly above) from ink, in [0,1).
	BinarizeThreshold float64 `yaml:"binarize_threshold" json:"binarize_threshold"`

	// ErosionHeight and ErosionWidth size the grouping element in rows and columns.
	ErosionHeight int `yaml:"erosion_height" json:"erosion_height"`
	ErosionWidth  int `yaml:"erosion_width" json:"erosion_width"`

	// ContourLevel is the iso-level traced by every extraction.
	ContourLevel float64 `yaml:"contour_level" json:"contour_level"`

	// MinContourLength is the minimum point count of an extracted contour.
	MinContourLength int `yaml:"min_contour_length" json:"min_contour_length"`
}

// DefaultConfig returns the fixed pipeline defaults.
func DefaultConfig() Config {
	return Config{
		BinarizeThreshold: DefaultBinarizeThreshold,
		ErosionHeight:     DefaultErosionHeight,
		ErosionWidth:      DefaultErosionWidth,
		ContourLevel:      DefaultContourLevel,
		MinContourLength:  DefaultMinContourLength,
	}
}

// LoadConfig reads a YAML file and applies it over DefaultConfig. Keys missing
// from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	if math.IsNaN(c.BinarizeThreshold) || c.BinarizeThreshold < 0 || c.BinarizeThreshold >= 1 {
		return fmt.Errorf("invalid config: binarize_threshold %v must be in [0,1)", c.BinarizeThreshold)
	}
	if c.ErosionHeight < 1 || c.ErosionWidth < 1 {
		return fmt.Errorf("invalid config: erosion element %dx%d must be at least 1x1", c.ErosionHeight, c.ErosionWidth)
	}
	if math.IsNaN(c.ContourLevel) || math.IsInf(c.ContourLevel, 0) {
		return fmt.Errorf("invalid config: contour_level %v must be finite", c.ContourLevel)
	}
	if c.MinContourLength < 0 {
		return fmt.Errorf("invalid config: min_contour_length %d must not be negative", c.MinContourLength)
	}
	return nil
}
