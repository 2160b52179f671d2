package spiral

import (
	"time"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/config"
)

type Config struct {
	Width           float64 `json:"width" toml:"width"`
	Height          float64 `json:"height" toml:"height"`
	Radius          float64 `json:"radius1" toml:"radius1"`
	AngleIncrement  float64 `json:"angle_increment" toml:"angle_increment"`
	RadiusIncrement float64 `json:"spiral_radius_increment" toml:"spiral_radius_increment"`
	ConnectLine     bool    `json:"connect_line" toml:"connect_line"`
	EllipseDuration int     `json:"ellipse_duration" toml:"ellipse_duration"` // milliseconds slept per frame
}

// DefaultConfig returns the settings used when no arg overrides them.
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          600,
		Radius:          10,
		AngleIncrement:  0.05,
		RadiusIncrement: 0.5,
		EllipseDuration: 1,
	}
}

// FrameDelay is the pause inserted after each frame.
func (c Config) FrameDelay() time.Duration {
	return time.Duration(max(c.EllipseDuration, 0)) * time.Millisecond
}

// Apply overrides c with any well formed key=value args.
func (c Config) Apply(args config.Args) Config {
	args.Float("width", &c.Width)
	args.Float("height", &c.Height)
	args.Float("radius1", &c.Radius)
	args.Float("angle_increment", &c.AngleIncrement)
	args.Float("spiral_radius_increment", &c.RadiusIncrement)
	args.Bool("connect_line", &c.ConnectLine)
	args.Count("ellipse_duration", &c.EllipseDuration)
	return c
}

// LoadConfig resolves defaults, the optional config file and the args.
func LoadConfig(args config.Args) (Config, error) {
	return config.Resolve(args, "spiral", DefaultConfig(), Config.Apply)
}

const Usage = `Options:
  radius1=<radius>                     Radius of circles (default: 10.0)
  angle_increment=<increment>          Angle increment for spiral (default: 0.05)
  spiral_radius_increment=<increment>  Spiral radius increment (default: 0.5)
  connect_line=<true/false>            Connect circles with lines (default: false)
  ellipse_duration=<ms>                Pause after each frame in milliseconds (default: 1)
  config=<file.json|toml>              Load settings from a file first
  seed=<number>                        Random seed (default: clock)
  help                                 Prints this help message`
