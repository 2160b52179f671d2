package sketch

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/config"
)

type counter struct{ steps int }

func (c *counter) Name() string              { return "counter" }
func (c *counter) Reset(int64)               { c.steps = 0 }
func (c *counter) Step()                     { c.steps++ }
func (c *counter) Stats() map[string]float64 { return map[string]float64{"steps": float64(c.steps)} }

func TestRegistry(t *testing.T) {
	Register("", func(config.Args) (Sketch, error) { return &counter{}, nil })
	Register("nil", nil)
	if _, ok := Sketches()[""]; ok {
		t.Fatal("empty name registered")
	}
	if _, ok := Sketches()["nil"]; ok {
		t.Fatal("nil factory registered")
	}

	Register("counter", func(config.Args) (Sketch, error) { return &counter{}, nil })
	s, err := New("counter", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Step()
	s.Step()
	if got := s.Stats()["steps"]; got != 2 {
		t.Fatalf("steps = %v; want 2", got)
	}
	if _, err := New("missing", nil); err == nil {
		t.Fatal("expected error for unknown sketch")
	}
	found := false
	for _, n := range Names() {
		if n == "counter" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Names() = %v; missing counter", Names())
	}
}
