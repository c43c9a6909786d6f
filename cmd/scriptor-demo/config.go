package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// demoConfig is loaded once at startup and threaded through as part of the
// Source a registered command sees, so handlers can gate on it (e.g. an
// admin-only literal whose requirement checks source.Admin).
type demoConfig struct {
	Prompt string `toml:"prompt"`
	Admin  bool   `toml:"admin"`
}

func defaultConfig() demoConfig {
	return demoConfig{Prompt: "scriptor> "}
}

func loadConfig(path string) (demoConfig, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
