// Package sketch is the registry of runnable sketches. Each sketch package
// registers a factory from its init function so that generic drivers, like the
// headless runner, can build any of them by name.
package sketch

import (
	"fmt"
	"sort"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/config"
)

// Sketch is the minimal contract a sketch must implement.
type Sketch interface {
	Name() string
	Reset(seed int64)
	Step()
	Stats() map[string]float64
}

// Factory builds a sketch from key=value args.
type Factory func(args config.Args) (Sketch, error)

var sketches = map[string]Factory{}

// Register adds a factory under name. Empty names and nil factories are ignored.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sketches[name] = f
}

// Sketches exposes the registry.
func Sketches() map[string]Factory {
	return sketches
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sketches))
	for name := range sketches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named sketch.
func New(name string, args config.Args) (Sketch, error) {
	f, ok := sketches[name]
	if !ok {
		return nil, fmt.Errorf("unknown sketch %q (available: %v)", name, Names())
	}
	s, err := f(args)
	if err != nil {
		return nil, fmt.Errorf("failed to build sketch %s: %w", name, err)
	}
	return s, nil
}
