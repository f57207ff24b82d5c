package config

import (
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"
)

// configBuilder collects config sources in priority order. The first error
// stops further loading but is only reported by build.
type configBuilder struct {
	sources []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{sources: make([]*StructuredConfig, 0, 4)}
}

func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.sources = append(b.sources, cfg)
	return b
}

func (b *configBuilder) withEnv(environ map[string]string) *configBuilder {
	return b.add(parseEnv(environ))
}

func (b *configBuilder) withFlags(name string, args []string) *configBuilder {
	return b.add(parseFlags(name, args))
}

// withJSON loads the file named by the highest priority source that sets
// one. Without a path it is a no-op.
func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	for _, src := range b.sources {
		if src.JSONFilePath != "" {
			return b.add(parseJSON(src.JSONFilePath))
		}
	}
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(defaultConfig(), nil)
}

// build merges the sources. mergo only fills zero fields, so an earlier
// source wins over a later one.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error loading configs: %w", b.err)
	}

	cfg := new(StructuredConfig)
	for _, src := range b.sources {
		if err := mergo.Merge(cfg, src); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize fills values derived from other fields and canonicalizes
// free-form strings.
func (cfg *StructuredConfig) normalize() {
	if cfg.Auth.LockoutDuration == 0 {
		cfg.Auth.LockoutDuration = defaultLockoutDuration(cfg.App.Environment)
	}
	cfg.Auth.JWTAlgorithm = strings.ToUpper(cfg.Auth.JWTAlgorithm)
	cfg.App.FrontendURL = strings.TrimRight(cfg.App.FrontendURL, "/")
	cfg.App.LogLevel = strings.ToLower(cfg.App.LogLevel)
}
