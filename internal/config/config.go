// Package config loads solver defaults for the pokelinks CLI: search depth
// limits, the output cap, and debug/verbosity flags. Values are layered
// lowest to highest priority: built-in defaults, an optional YAML file, then
// environment variables prefixed POKELINKS_.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	mapstructure "github.com/go-viper/mapstructure/v2"

	"github.com/agl-alexglopez/pokelinks"
)

// Config holds the tunables a search run needs beyond the interaction data
// itself.
type Config struct {
	DefenseDepth int  `koanf:"defense_depth"`
	AttackDepth  int  `koanf:"attack_depth"`
	MaxOutput    int  `koanf:"max_output"`
	Debug        bool `koanf:"debug"`
	Verbosity    int  `koanf:"verbosity"`
}

// Default returns the built-in tunables: a depth of 6 for defense (a team
// has six slots), 24 for attack (an exhaustive attack-type budget), and the
// solver's own DefaultMaxOutput.
func Default() Config {
	return Config{
		DefenseDepth: 6,
		AttackDepth:  24,
		MaxOutput:    pokelinks.DefaultMaxOutput,
		Debug:        false,
		Verbosity:    0,
	}
}

// Load builds a Config starting from Default, optionally overlaying a YAML
// file at path (skipped if path is empty), then overlaying any POKELINKS_*
// environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("config: loading %s: %w", path, err)
		}
	}

	envProvider := env.Provider("POKELINKS_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "POKELINKS_"))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return cfg, fmt.Errorf("config: loading environment: %w", err)
	}

	unmarshalConf := koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			Metadata:         nil,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return cfg, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}
