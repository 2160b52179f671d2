package spiral

import (
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/config"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/sketch"
)

// headless is the registered form: with no mouse, it spawns a point at the
// window center every spawnEvery frames.
type headless struct {
	*Generator
}

const spawnEvery = 10

// Step spawns at the center every spawnEvery frames, then steps.
func (h headless) Step() {
	if h.frames%spawnEvery == 0 {
		h.Spawn(geometry.Vector2D{X: h.cfg.Width / 2, Y: h.cfg.Height / 2})
	}
	h.Generator.Step()
}

func init() {
	sketch.Register("spiral", func(args config.Args) (sketch.Sketch, error) {
		cfg, err := LoadConfig(args)
		if err != nil {
			return nil, err
		}
		return headless{New(cfg, args.Seed())}, nil
	})
}
