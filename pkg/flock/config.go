package flock

import "github.com/lao-tseu-is-alive/go-visual-sketches/pkg/config"

// Params are the steering constants shared by every boid.
type Params struct {
	Width              float64 `json:"width" toml:"width"`
	Height             float64 `json:"height" toml:"height"`
	Speed              float64 `json:"boid_speed" toml:"boid_speed"`
	MaxAngle           float64 `json:"max_angle" toml:"max_angle"` // degrees per frame
	Distance           float64 `json:"boid_distance" toml:"boid_distance"`
	Sault              float64 `json:"boid_sault" toml:"boid_sault"`
	ObstacleHalfHeight float64 `json:"obstacle_half_height" toml:"obstacle_half_height"`
}

type Config struct {
	Params
	NumBoids       int       `json:"num_boids" toml:"num_boids"`
	NumObstacles   int       `json:"num_obs" toml:"num_obs"`
	MaxObstacleW   float64   `json:"max_obstacle_w" toml:"max_obstacle_w"`
	MaxObstacleH   float64   `json:"max_obstacle_h" toml:"max_obstacle_h"`
	BoidSize       float64   `json:"boid_size" toml:"boid_size"`
	FreqThresholds []float64 `json:"freq_thresholds" toml:"freq_thresholds"`
}

// DefaultConfig returns the settings used when no arg overrides them.
func DefaultConfig() Config {
	return Config{
		Params: Params{
			Width:              800,
			Height:             600,
			Speed:              4,
			MaxAngle:           30,
			Distance:           8,
			Sault:              1.9,
			ObstacleHalfHeight: 70,
		},
		NumBoids:       30,
		NumObstacles:   30,
		MaxObstacleW:   140,
		MaxObstacleH:   140,
		BoidSize:       12,
		FreqThresholds: []float64{0.0002, 0.0004, 0.0006},
	}
}

// Apply overrides c with any well formed key=value args. A threshold list
// that is not exactly three numbers keeps the defaults.
func (c Config) Apply(args config.Args) Config {
	args.Float("width", &c.Width)
	args.Float("height", &c.Height)
	args.Count("num_boids", &c.NumBoids)
	args.Float("boid_speed", &c.Speed)
	args.Count("num_obs", &c.NumObstacles)
	args.Float("max_angle", &c.MaxAngle)
	args.Float("boid_distance", &c.Distance)
	args.Float("boid_sault", &c.Sault)
	args.Floats("freq_thresholds", 3, &c.FreqThresholds)
	if len(c.FreqThresholds) != 3 {
		c.FreqThresholds = DefaultConfig().FreqThresholds
	}
	return c
}

// LoadConfig resolves defaults, the optional config file and the args.
func LoadConfig(args config.Args) (Config, error) {
	return config.Resolve(args, "flock", DefaultConfig(), Config.Apply)
}

const Usage = `Options:
  num_boids=<number>             Number of boids (default: 30)
  boid_speed=<speed>             Speed of boids (default: 4.0)
  num_obs=<number>               Number of obstacles (default: 30)
  max_angle=<angle>              Maximum turn per frame in degrees (default: 30.0)
  boid_distance=<number>         Jitter when closer than this on an axis (default: 8)
  boid_sault=<number>            Jitter amplitude (default: 1.9)
  freq_thresholds=<a,b,c>        Amplitude thresholds for sound steering (default: 0.0002,0.0004,0.0006)
  audio=<file.wav>               Steer with the amplitude of a WAV file
  tone=<true/false>              Steer with a synthetic tone
  config=<file.json|toml>        Load settings from a file first
  seed=<number>                  Random seed (default: clock)`
