// Command headless steps any registered sketch without a window and logs its
// stats, which is handy for profiling and for checking parameters.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/config"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/sketch"

	_ "github.com/lao-tseu-is-alive/go-visual-sketches/pkg/field"
	_ "github.com/lao-tseu-is-alive/go-visual-sketches/pkg/flock"
	_ "github.com/lao-tseu-is-alive/go-visual-sketches/pkg/grass"
	_ "github.com/lao-tseu-is-alive/go-visual-sketches/pkg/segments"
	_ "github.com/lao-tseu-is-alive/go-visual-sketches/pkg/spiral"
)

func main() {
	args, help := config.ParseArgs(os.Args[1:])
	if help {
		fmt.Printf(`Usage: headless sketch=<name> [key=value ...]
Options:
  sketch=<name>       One of: %s (default: field)
  frames=<n>          Number of steps (default: 1000)
  every=<n>           Log stats every n steps, 0 for the end only (default: 100)
  seed=<number>       Random seed (default: clock)
Any other key=value is passed to the sketch.
`, strings.Join(sketch.Names(), ", "))
		return
	}
	logger := config.NewLogger(args.Debug())

	name := "field"
	frames, every := 1000, 100
	args.String("sketch", &name)
	args.Count("frames", &frames)
	args.Count("every", &every)

	s, err := sketch.New(name, args)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	start := time.Now()
	for i := 1; i <= frames; i++ {
		s.Step()
		if every > 0 && i%every == 0 {
			logger.Infof("%s frame %d %v", s.Name(), i, s.Stats())
		}
	}
	fmt.Println(summary(s.Name(), frames, time.Since(start), s.Stats()))
}
