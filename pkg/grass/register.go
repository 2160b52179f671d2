package grass

import (
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/config"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/sketch"
)

func init() {
	sketch.Register("grass", func(args config.Args) (sketch.Sketch, error) {
		cfg, err := LoadConfig(args)
		if err != nil {
			return nil, err
		}
		return New(cfg, args.Seed()), nil
	})
}
