package field

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/config"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/entity"
	"github.com/lao-tseu-is-alive/go-visual-sketches/pkg/geometry"
)

const tol = 1e-9

// headOn returns two unit-speed particles 15 apart on the x axis moving toward each other.
func headOn() []entity.Body {
	return []entity.Body{
		{Pos: geometry.Vector2D{X: 0, Y: 0}, Dir: geometry.Vector2D{X: 1, Y: 0}, Speed: 1},
		{Pos: geometry.Vector2D{X: 15, Y: 0}, Dir: geometry.Vector2D{X: -1, Y: 0}, Speed: 1},
	}
}

func TestResolve_TransferRate(t *testing.T) {
	tests := []struct {
		name  string
		rate  float64
		wantA geometry.Vector2D
		wantB geometry.Vector2D
	}{
		{"no exchange", 0, geometry.Vector2D{X: 1}, geometry.Vector2D{X: -1}},
		{"half blend", 0.5, geometry.Vector2D{}, geometry.Vector2D{}},
		{"full swap", 1, geometry.Vector2D{X: -1}, geometry.Vector2D{X: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := headOn()
			if hits := Resolve(ps, 10, tt.rate); hits != 1 {
				t.Fatalf("hits = %d; want 1", hits)
			}
			if !ps[0].Dir.Eq(tt.wantA) || !ps[1].Dir.Eq(tt.wantB) {
				t.Errorf("Dir = %v, %v; want %v, %v", ps[0].Dir, ps[1].Dir, tt.wantA, tt.wantB)
			}
			if math.Abs(ps[0].Speed-ps[0].Dir.Len()) > tol {
				t.Errorf("Speed %v != |Dir| %v", ps[0].Speed, ps[0].Dir.Len())
			}
			if d := ps[0].Pos.DistanceTo(ps[1].Pos); math.Abs(d-20) > tol {
				t.Errorf("distance after separation = %v; want 20", d)
			}
			if math.Abs(ps[0].Pos.X+2.5) > tol || math.Abs(ps[1].Pos.X-17.5) > tol {
				t.Errorf("separation not symmetric: %v %v", ps[0].Pos, ps[1].Pos)
			}
		})
	}
}

func TestResolve_KeepsTangent(t *testing.T) {
	ps := []entity.Body{
		{Pos: geometry.Vector2D{X: 0, Y: 0}, Dir: geometry.Vector2D{X: 0.5, Y: 2}},
		{Pos: geometry.Vector2D{X: 12, Y: 0}, Dir: geometry.Vector2D{X: -1, Y: -3}},
	}
	Resolve(ps, 10, 1)
	if math.Abs(ps[0].Dir.Y-2) > tol || math.Abs(ps[1].Dir.Y+3) > tol {
		t.Errorf("tangent components changed: %v %v", ps[0].Dir, ps[1].Dir)
	}
	if math.Abs(ps[0].Dir.X+1) > tol || math.Abs(ps[1].Dir.X-0.5) > tol {
		t.Errorf("normal components not swapped: %v %v", ps[0].Dir, ps[1].Dir)
	}
}

func TestResolve_IgnoresDistantPairs(t *testing.T) {
	ps := []entity.Body{
		{Pos: geometry.Vector2D{X: 0}, Dir: geometry.Vector2D{X: 1}, Speed: 1},
		{Pos: geometry.Vector2D{X: 20}, Dir: geometry.Vector2D{X: -1}, Speed: 1},
	}
	if hits := Resolve(ps, 10, 1); hits != 0 {
		t.Fatalf("touching particles counted as collision")
	}
	if !ps[0].Dir.Eq(geometry.Vector2D{X: 1}) {
		t.Errorf("Dir changed without contact: %v", ps[0].Dir)
	}
}

func TestResolveDeviation(t *testing.T) {
	ps := headOn()
	ps[0].Speed, ps[1].Speed = 4, 2
	ResolveDeviation(ps, 10, math.Pi/2)
	if ps[0].Speed != 3 || ps[1].Speed != 3 {
		t.Errorf("speeds = %v, %v; want 3, 3", ps[0].Speed, ps[1].Speed)
	}
	if !ps[0].Dir.Eq(geometry.Vector2D{Y: 1}) || !ps[1].Dir.Eq(geometry.Vector2D{Y: -1}) {
		t.Errorf("directions not rotated: %v %v", ps[0].Dir, ps[1].Dir)
	}
	if d := ps[0].Pos.DistanceTo(ps[1].Pos); math.Abs(d-20) > tol {
		t.Errorf("distance = %v; want 20", d)
	}
}

func TestField_Layout(t *testing.T) {
	f := New(DefaultConfig(), 1)
	ps := f.Particles()
	if len(ps) != 15*20 {
		t.Fatalf("particles = %d; want 300", len(ps))
	}
	if !ps[0].Pos.Eq(geometry.Vector2D{X: 10, Y: 10}) {
		t.Errorf("first particle at %v", ps[0].Pos)
	}
	if !ps[21].Pos.Eq(geometry.Vector2D{X: 50, Y: 50}) {
		t.Errorf("row 1 col 1 at %v; want (50, 50)", ps[21].Pos)
	}
	for _, p := range ps {
		if p.Speed != 0 || !p.Dir.Eq(geometry.Vector2D{}) {
			t.Fatalf("particle not at rest: %+v", p)
		}
	}
}

func TestField_ClickAndStep(t *testing.T) {
	f := New(DefaultConfig(), 3)
	if n := f.Click(geometry.Vector2D{X: 12, Y: 11}); n != 1 {
		t.Fatalf("Click hit %d particles; want 1", n)
	}
	moving := f.Particles()[0]
	if moving.Speed <= 0 || moving.Speed >= 5 {
		t.Fatalf("clicked speed = %v", moving.Speed)
	}
	before := moving.Pos
	f.Step()
	after := f.Particles()[0]
	if after.Pos.Eq(before) {
		t.Errorf("clicked particle did not move")
	}
	if got := f.Stats()["frame"]; got != 1 {
		t.Errorf("frame = %v; want 1", got)
	}
}

func TestField_Hover(t *testing.T) {
	cfg := DefaultConfig()
	f := New(cfg, 3)
	if n := f.Hover(geometry.Vector2D{X: 10, Y: 10}); n != 0 {
		t.Errorf("Hover kicked %d particles with mouse_move off", n)
	}
	cfg.MouseMove = true
	f = New(cfg, 3)
	if n := f.Hover(geometry.Vector2D{X: 10, Y: 10}); n != 1 {
		t.Errorf("Hover kicked %d particles; want 1", n)
	}
	if d := f.Particles()[0].Dir.Len(); math.Abs(d-cfg.MaxSpeed) > tol {
		t.Errorf("|Dir| after kick = %v; want %v", d, cfg.MaxSpeed)
	}
}

func TestField_Overlaps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 1, 2
	f := New(cfg, 1)
	if n := f.Overlaps(); n != 0 {
		t.Fatalf("grid layout has %d overlaps; want 0", n)
	}
	ps := f.Particles()
	ps[0].Pos = geometry.Vector2D{X: 400, Y: 300}
	ps[1].Pos = geometry.Vector2D{X: 405, Y: 300}
	if n := f.Overlaps(); n != 1 {
		t.Fatalf("Overlaps() = %d; want 1", n)
	}
	f.Step()
	if n := f.Overlaps(); n != 0 {
		t.Errorf("Overlaps() after a step = %d; want 0", n)
	}
	if got := f.Stats()["overlaps"]; got != 0 {
		t.Errorf("overlaps stat = %v; want 0", got)
	}
}

func TestField_FrictionAndBounce(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 1, 1
	f := New(cfg, 1)
	p := &f.Particles()[0]
	p.Dir = geometry.Vector2D{X: -1}
	p.Speed = 5
	f.Step()
	if p.Pos.X != 5 {
		t.Fatalf("x = %v; want 5", p.Pos.X)
	}
	if p.Dir.X != 1 {
		t.Errorf("particle past the margin did not bounce: %v", p.Dir)
	}
	if math.Abs(p.Speed-4.95) > tol {
		t.Errorf("speed = %v; want 4.95", p.Speed)
	}
}

func TestField_TraceLine(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 2, 2
	if got := New(cfg, 1).TraceLine(); got != nil {
		t.Errorf("TraceLine with option off = %v", got)
	}
	cfg.TraceLine = true
	if got := New(cfg, 1).TraceLine(); len(got) != 3 {
		t.Errorf("len(TraceLine) = %d; want 3", len(got))
	}
}

func TestConfig_Apply(t *testing.T) {
	args, help := config.ParseArgs([]string{"rows=4", "friction=oops", "trace_line=true", "collision_mode=bogus", "help"})
	if !help {
		t.Error("help token not reported")
	}
	c := DefaultConfig().Apply(args)
	if c.Rows != 4 || !c.TraceLine {
		t.Errorf("args not applied: %+v", c)
	}
	if c.Friction != 0.01 {
		t.Errorf("malformed friction changed default: %v", c.Friction)
	}
	if c.Mode != ModeTransfer {
		t.Errorf("unknown mode kept: %q", c.Mode)
	}
}

func TestConfig_ApplyNegativeCounts(t *testing.T) {
	args, _ := config.ParseArgs([]string{"rows=-1", "cols=-3"})
	cfg, err := LoadConfig(args)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Rows != 15 || cfg.Cols != 20 {
		t.Fatalf("negative counts applied: rows=%d cols=%d", cfg.Rows, cfg.Cols)
	}
	if got := len(New(cfg, 1).Particles()); got != 15*20 {
		t.Errorf("len(Particles) = %d; want %d", got, 15*20)
	}

	// a negative size that bypasses Apply leaves the field empty
	cfg.Rows = -1
	if got := len(New(cfg, 1).Particles()); got != 0 {
		t.Errorf("len(Particles) with rows=-1 = %d; want 0", got)
	}
}

func BenchmarkResolve(b *testing.B) {
	f := New(DefaultConfig(), 1)
	for i := 0; i < 20; i++ {
		f.Click(f.Particles()[i*7].Pos)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Step()
	}
}
