// Package config turns command line key=value tokens and optional JSON or TOML
// files into the per-sketch Config structs.
package config

import (
	"strconv"
	"strings"
	"time"
)

// Args holds key=value command line tokens. Lookups follow parse-or-default:
// a missing or malformed value leaves the destination untouched.
type Args map[string]string

// ParseArgs collects key=value tokens. The bare token help sets the second
// result. Tokens of any other shape are ignored.
func ParseArgs(tokens []string) (Args, bool) {
	args := Args{}
	help := false
	for _, tok := range tokens {
		if tok == "help" {
			help = true
			continue
		}
		key, val, ok := strings.Cut(tok, "=")
		if !ok || key == "" {
			continue
		}
		args[key] = val
	}
	return args, help
}

// Float parses key as a float64.
func (a Args) Float(key string, dst *float64) {
	if v, ok := a[key]; ok {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			*dst = parsed
		}
	}
}

// Int parses key as a base 10 int.
func (a Args) Int(key string, dst *int) {
	if v, ok := a[key]; ok {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst = parsed
		}
	}
}

// Count is Int for sizes and counts: a negative value is malformed and
// leaves dst untouched.
func (a Args) Count(key string, dst *int) {
	if v, ok := a[key]; ok {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed >= 0 {
			*dst = parsed
		}
	}
}

// Int64 parses key as a base 10 int64.
func (a Args) Int64(key string, dst *int64) {
	if v, ok := a[key]; ok {
		if parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			*dst = parsed
		}
	}
}

// Bool accepts the forms understood by strconv.ParseBool.
func (a Args) Bool(key string, dst *bool) {
	if v, ok := a[key]; ok {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			*dst = parsed
		}
	}
}

// String copies a non empty value.
func (a Args) String(key string, dst *string) {
	if v, ok := a[key]; ok && v != "" {
		*dst = v
	}
}

// Floats parses a comma separated list. The whole list is rejected if any
// element is malformed or the length differs from want.
func (a Args) Floats(key string, want int, dst *[]float64) {
	v, ok := a[key]
	if !ok {
		return
	}
	parts := strings.Split(v, ",")
	if len(parts) != want {
		return
	}
	out := make([]float64, 0, want)
	for _, p := range parts {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return
		}
		out = append(out, parsed)
	}
	*dst = out
}

// Seed returns the seed argument, or a clock derived seed when absent.
func (a Args) Seed() int64 {
	seed := time.Now().UnixNano()
	a.Int64("seed", &seed)
	return seed
}

// Debug reports whether debug=true was given.
func (a Args) Debug() bool {
	debug := false
	a.Bool("debug", &debug)
	return debug
}
