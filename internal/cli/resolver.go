/*********************************************************************
 * Copyright (c) Intel Corporation 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package cli provides the Kong command line surface and maps the optional
// YAML configuration onto it. Explicit flags and environment variables keep
// precedence over file values; Kong applies resolvers last before defaults.
package cli

import (
	"github.com/alecthomas/kong"
	"github.com/device-management-toolkit/ifquery-go/internal/config"
)

// ConfigResolver supplies flag values from the loaded configuration file
func ConfigResolver(cfg config.Config) kong.Resolver {
	return kong.ResolverFunc(func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
		// Map configuration values to corresponding CLI flags
		switch flag.Name {
		case "log-level":
			if cfg.LogLevel != "" {
				return cfg.LogLevel, nil
			}

		case "format":
			if cfg.Format != "" {
				return cfg.Format, nil
			}
		}

		return nil, nil
	})
}
