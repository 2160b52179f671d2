package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type spiralFile struct {
	Radius      float64 `json:"radius1" toml:"radius1"`
	ConnectLine bool    `json:"connect_line" toml:"connect_line"`
	Duration    int     `json:"ellipse_duration" toml:"ellipse_duration"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    spiralFile
		wantErr string
	}{
		{
			name:    "valid json",
			file:    "spiral.json",
			content: `{"radius1": 4, "connect_line": true}`,
			want:    spiralFile{Radius: 4, ConnectLine: true, Duration: 1},
		},
		{
			name:    "json rejected by schema",
			file:    "spiral.json",
			content: `{"radius1": "big"}`,
			wantErr: "validation failed",
		},
		{
			name:    "json unknown key",
			file:    "spiral.json",
			content: `{"radius": 4}`,
			wantErr: "validation failed",
		},
		{
			name:    "broken json",
			file:    "spiral.json",
			content: `{"radius1": `,
			wantErr: "failed to decode",
		},
		{
			name:    "toml",
			file:    "spiral.toml",
			content: "radius1 = 7.5\nellipse_duration = 20\n",
			want:    spiralFile{Radius: 7.5, Duration: 20},
		},
		{
			name:    "yaml is not supported",
			file:    "spiral.yaml",
			content: "radius1: 3",
			wantErr: "unsupported",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spiralFile{Duration: 1}
			err := Load(writeFile(t, tt.file, tt.content), "spiral", &got)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Load() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEmbeddedSchemasCompile(t *testing.T) {
	for _, name := range []string{"field", "flock", "grass", "spiral", "segments"} {
		if _, err := compileSchema(name); err != nil {
			t.Errorf("schema %s: %v", name, err)
		}
	}
	if _, err := compileSchema("nope"); err == nil {
		t.Error("unknown schema should fail")
	}
}

func TestResolveArgsOverrideFile(t *testing.T) {
	path := writeFile(t, "s.json", `{"radius1": 4, "ellipse_duration": 9}`)
	apply := func(c spiralFile, a Args) spiralFile {
		a.Float("radius1", &c.Radius)
		return c
	}
	got, err := Resolve(Args{"config": path, "radius1": "12"}, "spiral", spiralFile{Duration: 1}, apply)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := spiralFile{Radius: 12, Duration: 9}
	if got != want {
		t.Errorf("Resolve() = %+v, want %+v", got, want)
	}
	if _, err := Resolve(Args{"config": "/does/not/exist.json"}, "spiral", spiralFile{}, apply); err == nil {
		t.Error("missing config file should fail")
	}
}
