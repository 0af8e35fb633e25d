package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// LoadEnv reads the SECLAB_* environment variables. Unset variables leave
// their field nil.
func LoadEnv() (FileConfig, error) {
	var cfg FileConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("error getting env configs: %w", err)
	}
	return cfg, nil
}
