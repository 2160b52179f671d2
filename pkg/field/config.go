package field

import "github.com/lao-tseu-is-alive/go-visual-sketches/pkg/config"

// Collision modes.
const (
	ModeTransfer  = "transfer"
	ModeDeviation = "deviation"
)

type Config struct {
	Width        float64 `json:"width" toml:"width"`
	Height       float64 `json:"height" toml:"height"`
	Radius       float64 `json:"circle_radius" toml:"circle_radius"`
	Rows         int     `json:"rows" toml:"rows"`
	Cols         int     `json:"cols" toml:"cols"`
	MaxSpeed     float64 `json:"max_speed" toml:"max_speed"`
	Friction     float64 `json:"friction" toml:"friction"`
	DevAngle     float64 `json:"dev_angle" toml:"dev_angle"` // radians, deviation mode only
	MouseMove    bool    `json:"mouse_move" toml:"mouse_move"`
	TraceLine    bool    `json:"trace_line" toml:"trace_line"`
	TransferRate float64 `json:"transfer_rate" toml:"transfer_rate"`
	Mode         string  `json:"collision_mode" toml:"collision_mode"`
}

// DefaultConfig returns the settings used when no arg overrides them.
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		Radius:       10,
		Rows:         15,
		Cols:         20,
		MaxSpeed:     5,
		Friction:     0.01,
		DevAngle:     0.02,
		TransferRate: 0.5,
		Mode:         ModeTransfer,
	}
}

// Apply overrides c with any well formed key=value args.
func (c Config) Apply(args config.Args) Config {
	args.Float("width", &c.Width)
	args.Float("height", &c.Height)
	args.Float("circle_radius", &c.Radius)
	args.Count("rows", &c.Rows)
	args.Count("cols", &c.Cols)
	args.Float("max_speed", &c.MaxSpeed)
	args.Float("friction", &c.Friction)
	args.Float("dev_angle", &c.DevAngle)
	args.Bool("mouse_move", &c.MouseMove)
	args.Bool("trace_line", &c.TraceLine)
	args.Float("transfer_rate", &c.TransferRate)
	args.String("collision_mode", &c.Mode)
	if c.Mode != ModeDeviation {
		c.Mode = ModeTransfer
	}
	return c
}

// LoadConfig resolves defaults, the optional config file and the args.
func LoadConfig(args config.Args) (Config, error) {
	return config.Resolve(args, "field", DefaultConfig(), Config.Apply)
}

// Usage lists the accepted args with their defaults.
const Usage = `Options:
  width=<number>              Width of the window (default: 800)
  height=<number>             Height of the window (default: 600)
  circle_radius=<number>      Radius of the circles (default: 10.0)
  rows=<number>               Number of rows (default: 15)
  cols=<number>               Number of columns (default: 20)
  max_speed=<number>          Maximum speed of particles (default: 5.0)
  friction=<number>           Friction coefficient (default: 0.01)
  dev_angle=<number>          Deviation angle in radians (default: 0.02)
  mouse_move=<true/false>     Kick particles under the cursor (default: false)
  trace_line=<true/false>     Link consecutive particles (default: false)
  transfer_rate=<number>      Normal velocity exchanged on collision (default: 0.5)
  collision_mode=<mode>       transfer or deviation (default: transfer)
  config=<file.json|toml>     Load settings from a file first
  seed=<number>               Random seed (default: clock)`
