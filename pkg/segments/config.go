package segments

import (
	"time"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/config"
)

type Config struct {
	Width          float64 `json:"width" toml:"width"`
	Height         float64 `json:"height" toml:"height"`
	NumInternal    int     `json:"num_internal_points" toml:"num_internal_points"`
	NumEdge        int     `json:"num_edge_points" toml:"num_edge_points"`
	PointRadius    float64 `json:"point_radius" toml:"point_radius"`
	Colorized      bool    `json:"colorized" toml:"colorized"`
	InvisibleLines bool    `json:"invisible_lines" toml:"invisible_lines"`
	SpeedMin       float64 `json:"speed_min" toml:"speed_min"`
	SpeedMax       float64 `json:"speed_max" toml:"speed_max"`
	FrameDelayMS   int     `json:"frame_delay" toml:"frame_delay"`
}

// DefaultConfig returns the settings used when no arg overrides them.
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		NumInternal:  8,
		NumEdge:      5,
		PointRadius:  5,
		Colorized:    true,
		SpeedMin:     1,
		SpeedMax:     3,
		FrameDelayMS: 30,
	}
}

// FrameDelay is the pause inserted after each update.
func (c Config) FrameDelay() time.Duration {
	return time.Duration(max(c.FrameDelayMS, 0)) * time.Millisecond
}

// Apply overrides c with any well formed key=value args.
func (c Config) Apply(args config.Args) Config {
	args.Float("width", &c.Width)
	args.Float("height", &c.Height)
	args.Count("num_internal_points", &c.NumInternal)
	args.Count("num_edge_points", &c.NumEdge)
	args.Float("point_radius", &c.PointRadius)
	args.Bool("colorized", &c.Colorized)
	args.Bool("invisible_lines", &c.InvisibleLines)
	args.Count("frame_delay", &c.FrameDelayMS)
	return c
}

func LoadConfig(args config.Args) (Config, error) {
	return config.Resolve(args, "segments", DefaultConfig(), Config.Apply)
}

const Usage = `Options:
  width=<value>                 Set the window width (default: 800)
  height=<value>                Set the window height (default: 600)
  colorized=<true|false>        Fill every triangle of internal points (default: true)
  num_internal_points=<value>   Set the number of internal points (default: 8)
  num_edge_points=<value>       Set the number of edge points per side (default: 5)
  point_radius=<value>          Set the radius of the points (default: 5.0)
  invisible_lines=<true|false>  Set lines to be invisible (default: false)
  frame_delay=<ms>              Pause after each update (default: 30)
  config=<file.json|toml>       Load settings from a file first
  seed=<number>                 Random seed (default: clock)`
