package config

import (
	"reflect"
	"testing"
)

func TestParseArgs(t *testing.T) {
	args, help := ParseArgs([]string{"width=1024", "junk", "=nokey", "trace_line=true", "help", "title=a=b"})
	if !help {
		t.Error("help token not reported")
	}
	want := Args{"width": "1024", "trace_line": "true", "title": "a=b"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("ParseArgs() = %v, want %v", args, want)
	}
	if _, help := ParseArgs([]string{"h"}); help {
		t.Error("only the bare help token asks for help")
	}
}

func TestParseOrDefault(t *testing.T) {
	args := Args{
		"f":   "2.5",
		"bad": "abc",
		"i":   " 42 ",
		"b":   "TRUE",
		"s":   "deviation",
		"neg": "-7",
	}
	tests := []struct {
		name string
		run  func() any
		want any
	}{
		{"float parsed", func() any { v := 1.0; args.Float("f", &v); return v }, 2.5},
		{"float malformed", func() any { v := 1.0; args.Float("bad", &v); return v }, 1.0},
		{"float missing", func() any { v := 1.0; args.Float("none", &v); return v }, 1.0},
		{"int trimmed", func() any { v := 0; args.Int("i", &v); return v }, 42},
		{"int malformed", func() any { v := 3; args.Int("f", &v); return v }, 3},
		{"count", func() any { v := 0; args.Count("i", &v); return v }, 42},
		{"count negative", func() any { v := 15; args.Count("neg", &v); return v }, 15},
		{"count malformed", func() any { v := 15; args.Count("bad", &v); return v }, 15},
		{"int64 negative", func() any { var v int64; args.Int64("neg", &v); return v }, int64(-7)},
		{"bool", func() any { v := false; args.Bool("b", &v); return v }, true},
		{"bool malformed", func() any { v := true; args.Bool("bad", &v); return v }, true},
		{"string", func() any { v := "transfer"; args.String("s", &v); return v }, "deviation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.run(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFloats(t *testing.T) {
	def := []float64{1, 2, 3}
	tests := []struct {
		name string
		val  string
		want []float64
	}{
		{"valid", "0.1, 0.2,0.3", []float64{0.1, 0.2, 0.3}},
		{"too short", "0.1,0.2", def},
		{"malformed element", "0.1,x,0.3", def},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := append([]float64(nil), def...)
			Args{"k": tt.val}.Floats("k", 3, &got)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Floats(%q) = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}

func TestSeedAndDebug(t *testing.T) {
	if got := (Args{"seed": "99"}).Seed(); got != 99 {
		t.Errorf("Seed() = %d, want 99", got)
	}
	if (Args{}).Seed() == 0 {
		t.Error("clock seed should not be zero")
	}
	if !(Args{"debug": "true"}).Debug() || (Args{}).Debug() {
		t.Error("Debug() does not follow the debug arg")
	}
}
