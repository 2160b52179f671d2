package grass

import "github.com/lao-tseu-is-alive/go-visual-sketches/pkg/config"

type Config struct {
	WorldSize    int     `json:"WORLD_SIZE" toml:"WORLD_SIZE"`
	CellSize     float64 `json:"CELL_SIZE" toml:"CELL_SIZE"`
	MaxSeeds     int     `json:"MAX_SEEDS" toml:"MAX_SEEDS"`
	ReproduceAge int     `json:"REPRODUCE_AGE" toml:"REPRODUCE_AGE"`
	DeathAge     int     `json:"DEATH_AGE" toml:"DEATH_AGE"`
	ReproRadius  int     `json:"REPRO_RADIUS" toml:"REPRO_RADIUS"`

	// Meadow seeds the grid from Perlin noise on Reset instead of starting empty.
	Meadow          bool    `json:"meadow" toml:"meadow"`
	MeadowThreshold float64 `json:"meadow_threshold" toml:"meadow_threshold"`

	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// DefaultConfig returns the settings used when no arg overrides them.
func DefaultConfig() Config {
	return Config{
		WorldSize:       100,
		CellSize:        10,
		MaxSeeds:        1,
		ReproduceAge:    10,
		DeathAge:        50,
		ReproRadius:     3,
		MeadowThreshold: 0.15,
		Width:           1000,
		Height:          700,
	}
}

// Apply overrides c with any well formed key=value args.
func (c Config) Apply(args config.Args) Config {
	args.Count("WORLD_SIZE", &c.WorldSize)
	args.Float("CELL_SIZE", &c.CellSize)
	args.Count("MAX_SEEDS", &c.MaxSeeds)
	args.Count("REPRODUCE_AGE", &c.ReproduceAge)
	args.Count("DEATH_AGE", &c.DeathAge)
	args.Count("REPRO_RADIUS", &c.ReproRadius)
	args.Bool("meadow", &c.Meadow)
	args.Float("meadow_threshold", &c.MeadowThreshold)
	args.Float("width", &c.Width)
	args.Float("height", &c.Height)
	return c
}

// LoadConfig resolves defaults, the optional config file and the args.
func LoadConfig(args config.Args) (Config, error) {
	return config.Resolve(args, "grass", DefaultConfig(), Config.Apply)
}

const Usage = `Options:
  WORLD_SIZE=<int>         Set the size of the world (default: 100)
  CELL_SIZE=<float>        Set the size of each cell (default: 10.0)
  MAX_SEEDS=<int>          Set the maximum number of seeds (default: 1)
  REPRODUCE_AGE=<int>      Set the age at which grass can reproduce (default: 10)
  DEATH_AGE=<int>          Set the age at which grass dies (default: 50)
  REPRO_RADIUS=<int>       Set the reproduction radius (default: 3)
  meadow=<true/false>      Start from a Perlin noise meadow (default: false)
  meadow_threshold=<float> Noise level above which a cell is planted (default: 0.15)
  config=<file.json|toml>  Load settings from a file first
  seed=<number>            Random seed (default: clock)
  help                     Print this help message`
