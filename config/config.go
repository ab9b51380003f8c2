// Copyright 2026 Silvanic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the application configuration: a YAML file merged
// over defaults, with a handful of values overridable from the command
// line and environment.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment names. Production tightens CORS and suppresses error
// details in HTTP responses.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is the full application configuration.
type Config struct {
	Environment string          `yaml:"environment"`
	Server      ServerConfig    `yaml:"server"`
	Data        DataConfig      `yaml:"data"`
	Embedding   EmbeddingConfig `yaml:"embedding"`
	Index       IndexConfig     `yaml:"index"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
}

// DataConfig locates the knowledge-base file.
type DataConfig struct {
	Path string `yaml:"path"`
	// RootKey names the top-level object wrapping the knowledge base in
	// the /data response.
	RootKey string `yaml:"root_key"`
}

// EmbeddingConfig configures the embedding service client.
type EmbeddingConfig struct {
	Host   string `yaml:"host"`
	Model  string `yaml:"model"`
	APIKey string `yaml:"api_key"`
}

// Index drivers.
const (
	IndexDriverLocal  = "local"
	IndexDriverRemote = "remote"
)

// IndexConfig configures the similarity index. Path applies to the local
// driver; URL, APIKey and Namespace to the remote one.
type IndexConfig struct {
	Driver    string `yaml:"driver"`
	Path      string `yaml:"path"`
	URL       string `yaml:"url"`
	APIKey    string `yaml:"api_key"`
	Namespace string `yaml:"namespace"`
}

// Default returns the development defaults.
func Default() *Config {
	return &Config{
		Environment: EnvDevelopment,
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Data: DataConfig{
			Path:    "handbook.json",
			RootKey: "handbook",
		},
		Embedding: EmbeddingConfig{
			Host:  "http://localhost:11434",
			Model: "nomic-embed-text",
		},
		Index: IndexConfig{
			Driver: IndexDriverLocal,
			Path:   "handbook.index",
		},
	}
}

// Load reads a YAML configuration file merged over Default. A missing
// file is not an error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidConfig, c.Environment)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: invalid port %d", ErrInvalidConfig, c.Server.Port)
	}

	if c.Data.Path == "" {
		return fmt.Errorf("%w: data path required", ErrInvalidConfig)
	}
	if c.Data.RootKey == "" {
		return fmt.Errorf("%w: data root key required", ErrInvalidConfig)
	}

	switch c.Index.Driver {
	case IndexDriverLocal:
		if c.Index.Path == "" {
			return fmt.Errorf("%w: local index path required", ErrInvalidConfig)
		}
	case IndexDriverRemote:
		if c.Index.URL == "" {
			return fmt.Errorf("%w: remote index url required", ErrInvalidConfig)
		}
		if c.Index.APIKey == "" {
			return fmt.Errorf("%w: remote index api key required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown index driver %q", ErrInvalidConfig, c.Index.Driver)
	}

	return nil
}

// IsProduction reports whether the production environment is configured.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
