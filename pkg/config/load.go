package config

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemas embed.FS

// Load decodes the file at path into dst. JSON files are validated against the
// named embedded schema first. TOML files are decoded directly.
func Load(path, schema string, dst any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, dst); err != nil {
			return fmt.Errorf("failed to decode config toml: %w", err)
		}
		return nil
	case ".json":
		return loadJSON(path, schema, dst)
	default:
		return fmt.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}
}

func loadJSON(path, schema string, dst any) error {
	sch, err := compileSchema(schema)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

func compileSchema(name string) (*jsonschema.Schema, error) {
	file := name + ".json"
	b, err := schemas.ReadFile("schemas/" + file)
	if err != nil {
		return nil, fmt.Errorf("unknown config schema %q: %w", name, err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(file, bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	sch, err := c.Compile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return sch, nil
}

// Resolve builds a sketch configuration: base values, then the file named by
// the config arg (if any), then the remaining key=value args on top.
func Resolve[T any](args Args, schema string, base T, apply func(T, Args) T) (T, error) {
	if path, ok := args["config"]; ok && path != "" {
		if err := Load(path, schema, &base); err != nil {
			return base, fmt.Errorf("failed to load %s config %s: %w", schema, path, err)
		}
	}
	return apply(base, args), nil
}
