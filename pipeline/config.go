package pipeline

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvfeat/corner"
	"github.com/katalvlaran/lvfeat/match"
)

// ErrInvalidConfig indicates a configuration value out of its domain.
var ErrInvalidConfig = errors.New("pipeline: invalid config")

// Config holds every tunable of the pipeline. Keys match the YAML file.
type Config struct {
	// corner response
	PatchSize int     `mapstructure:"patch_size" yaml:"patch_size"`
	Kappa     float64 `mapstructure:"kappa" yaml:"kappa"`
	Method    string  `mapstructure:"method" yaml:"method"`
	Weighting string  `mapstructure:"weighting" yaml:"weighting"`
	Sigma     float64 `mapstructure:"sigma" yaml:"sigma"`

	// keypoint selection
	NumKeypoints      int `mapstructure:"num_keypoints" yaml:"num_keypoints"`
	SuppressionRadius int `mapstructure:"suppression_radius" yaml:"suppression_radius"`

	// description
	PatchRadius int `mapstructure:"patch_radius" yaml:"patch_radius"`
	Workers     int `mapstructure:"workers" yaml:"workers"`

	// matching
	DistanceRatio float64 `mapstructure:"distance_ratio" yaml:"distance_ratio"`
	Unique        bool    `mapstructure:"unique" yaml:"unique"`
	NonZeroAnchor bool    `mapstructure:"nonzero_anchor" yaml:"nonzero_anchor"`
}

// DefaultConfig returns the tuning used for KITTI-sized frames.
func DefaultConfig() Config {
	return Config{
		PatchSize:         9,
		Kappa:             corner.DefaultKappa,
		Method:            corner.DefaultMethod.String(),
		Weighting:         corner.DefaultWeighting.String(),
		Sigma:             corner.DefaultSigma,
		NumKeypoints:      200,
		SuppressionRadius: 8,
		PatchRadius:       9,
		Workers:           1,
		DistanceRatio:     4,
		Unique:            match.DefaultUnique,
	}
}

// Validate checks every field and returns the first violation wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.PatchSize < 1:
		return fmt.Errorf("%w: patch_size %d < 1", ErrInvalidConfig, c.PatchSize)
	case !finite(c.Kappa) || c.Kappa < 0:
		return fmt.Errorf("%w: kappa %v", ErrInvalidConfig, c.Kappa)
	case !finite(c.Sigma):
		return fmt.Errorf("%w: sigma %v", ErrInvalidConfig, c.Sigma)
	case c.NumKeypoints < 0:
		return fmt.Errorf("%w: num_keypoints %d < 0", ErrInvalidConfig, c.NumKeypoints)
	case c.SuppressionRadius < 0:
		return fmt.Errorf("%w: suppression_radius %d < 0", ErrInvalidConfig, c.SuppressionRadius)
	case c.PatchRadius < 0:
		return fmt.Errorf("%w: patch_radius %d < 0", ErrInvalidConfig, c.PatchRadius)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d < 1", ErrInvalidConfig, c.Workers)
	case !finite(c.DistanceRatio) || c.DistanceRatio < 0:
		return fmt.Errorf("%w: distance_ratio %v", ErrInvalidConfig, c.DistanceRatio)
	}
	if _, err := corner.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := corner.ParseWeighting(c.Weighting); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// DecodeConfig overlays raw on DefaultConfig. Unknown keys are an error;
// numeric strings and ints for float fields are accepted.
func DecodeConfig(raw map[string]any) (Config, error) {
	cfg := DefaultConfig()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, fmt.Errorf("DecodeConfig: %w", err)
	}
	if err = dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("DecodeConfig: %w: %v", ErrInvalidConfig, err)
	}

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads a YAML file and decodes it with DecodeConfig.
// An empty file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	raw := map[string]any{}
	if err = yaml.Unmarshal(b, &raw); err != nil {
		return Config{}, fmt.Errorf("LoadConfig %s: %w", path, err)
	}

	return DecodeConfig(raw)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
