package gesture

import (
	"errors"
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-posemaze/game"
	"gopkg.in/yaml.v3"
)

var ErrInvalidProfile = errors.New("invalid gesture profile")

// Mode selects which landmarks drive the horizontal zones.
type Mode string

const (
	// HeadMode evaluates all four zones against the nose.
	HeadMode Mode = "head"
	// WristMode requires both wrists inside the left or right zone; up and down follow the nose.
	WristMode Mode = "wrists"
)

// Thresholds are the normalized half-plane boundaries of the trigger zones:
// x <= Left, x >= Right, y <= Up, y >= Down.
type Thresholds struct {
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
	Up    float64 `yaml:"up"`
	Down  float64 `yaml:"down"`
}

// Config parameterizes a Classifier.
type Config struct {
	Thresholds Thresholds `yaml:"thresholds"`
	Mode       Mode       `yaml:"mode"`

	// Mirror swaps left and right in emitted events, so stepping into the
	// image's right zone moves the player left. Camera frames are not flipped,
	// which makes this the natural mapping for a player facing the camera.
	Mirror bool `yaml:"mirror"`
}

// DefaultConfig returns the head-tracking profile.
func DefaultConfig() Config {
	return Config{
		Thresholds: Thresholds{
			Left:  0.3,
			Right: 0.7,
			Up:    0.35,
			Down:  0.75,
		},
		Mode:   HeadMode,
		Mirror: true,
	}
}

// Validate checks the thresholds lie in [0, 1] and the mode is known.
func (c Config) Validate() error {
	for name, v := range map[string]float64{
		"left":  c.Thresholds.Left,
		"right": c.Thresholds.Right,
		"up":    c.Thresholds.Up,
		"down":  c.Thresholds.Down,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s threshold %v outside [0, 1]", ErrInvalidProfile, name, v)
		}
	}

	switch c.Mode {
	case HeadMode, WristMode:
		return nil
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidProfile, c.Mode)
	}
}

// eventDirection maps the zone that fired to the direction it requests.
func (c Config) eventDirection(zone game.Direction) game.Direction {
	if c.Mirror && (zone == game.Left || zone == game.Right) {
		return zone.Opposite()
	}
	return zone
}

// ParseProfile reads a YAML profile on top of DefaultConfig.
func ParseProfile(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadProfile reads a YAML profile from path.
func LoadProfile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseProfile(data)
}
