package style

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Load reads a style from a YAML file and environment variables.
// Priority: ENV > YAML > defaults.
// If path is empty, the style is loaded from ENV + defaults only.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("style: read %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("style: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("style: validate: %w", err)
	}
	return cfg, nil
}

// Parse reads a style from YAML. Keys missing from data keep their default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("style: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("style: validate: %w", err)
	}
	return cfg, nil
}

// Marshal returns the YAML encoding of the style.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("style: marshal: %w", err)
	}
	return data, nil
}
