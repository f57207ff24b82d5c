// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills a fresh config from the `env`/`envPrefix` tags of
// [StructuredConfig]. A nil environ reads the process environment.
// Environment names are matched case-insensitively ("Production" works).
func parseEnv(environ map[string]string) (*StructuredConfig, error) {
	cfg := new(StructuredConfig)
	opts := env.Options{
		Environment: environ,
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeFor[Environment](): func(v string) (any, error) {
				return Environment(strings.ToLower(strings.TrimSpace(v))), nil
			},
		},
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return cfg, nil
}
