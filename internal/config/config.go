package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	Difficulty string `yaml:"difficulty" env:"TTT_DIFFICULTY" env-default:"easy"`
	// ComputerStarts has no default: cleanenv would overwrite an explicit false.
	ComputerStarts bool `yaml:"computer-starts" env:"TTT_COMPUTER_STARTS"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads path and applies env overrides. An empty path reads env only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
