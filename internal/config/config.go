/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

// Config holds the optional settings read from the YAML configuration file
// and the IFQUERY_* environment. Explicit flags take precedence; the file
// supplies defaults and the environment overrides the file.
type Config struct {
	LogLevel string   `yaml:"log_level" env:"IFQUERY_LOG_LEVEL"`
	Format   string   `yaml:"format" env:"IFQUERY_FORMAT"`
	Exclude  []string `yaml:"exclude" env:"IFQUERY_EXCLUDE"`
}

// Load reads the configuration file at path plus environment overrides. A
// missing file is not an error; the environment alone applies then.
func Load(path string) (Config, error) {
	var cfg Config

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, errors.Wrap(err, "reading configuration from environment")
		}

		return cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "reading configuration %s", path)
	}

	return cfg, nil
}

// Excluded reports whether name is hidden by the exclude list.
func (c Config) Excluded(name string) bool {
	for _, excluded := range c.Exclude {
		if excluded == name {
			return true
		}
	}

	return false
}
