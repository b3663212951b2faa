package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"kbbiwords/fs"
	kbbihttp "kbbiwords/http"

	"gopkg.in/yaml.v3"
)

// DefaultURL is the KBBI word list published by damzaky on GitHub.
const DefaultURL = "https://raw.githubusercontent.com/damzaky/kumpulan-kata-bahasa-indonesia-KBBI/master/legacy/indonesian-words.txt"

// Configuration validation errors.
var (
	ErrInvalidConfigTimeout = errors.New("timeout_sec must be non-negative")
	ErrInvalidMinLen        = errors.New("min-len must be at least 1")
	ErrMinExceedsMax        = errors.New("min-len cannot exceed max-len")
)

// FileConfig is the optional YAML configuration file. Zero values mean
// "not set" and leave the built-in default in effect.
type FileConfig struct {
	URL        string `yaml:"url"`
	Output     string `yaml:"output"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// Validate returns an error if the config contains invalid fields.
func (c *FileConfig) Validate() error {
	if c.TimeoutSec < 0 {
		return ErrInvalidConfigTimeout
	}
	return nil
}

// LoadFileConfig reads and validates a YAML config file.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &FileConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Settings are the fully resolved run parameters.
type Settings struct {
	URL     string
	Output  string
	Timeout time.Duration
	MinLen  int
	MaxLen  int
}

// ResolveSettings merges defaults, the optional config file, and flags.
// Flags take precedence over the config file, which takes precedence over
// built-in defaults.
func ResolveSettings(cli *CLI) (*Settings, error) {
	s := &Settings{
		URL:     DefaultURL,
		Output:  fs.DefaultFilename,
		Timeout: kbbihttp.DefaultFetchTimeout,
		MinLen:  cli.MinLen,
		MaxLen:  cli.MaxLen,
	}

	if cli.Config != "" {
		cfg, err := LoadFileConfig(cli.Config)
		if err != nil {
			return nil, err
		}
		if cfg.URL != "" {
			s.URL = cfg.URL
		}
		if cfg.Output != "" {
			s.Output = cfg.Output
		}
		if cfg.TimeoutSec > 0 {
			s.Timeout = time.Duration(cfg.TimeoutSec) * time.Second
		}
	}

	if cli.URL != "" {
		s.URL = cli.URL
	}
	if cli.Output != "" {
		s.Output = cli.Output
	}
	if cli.Timeout > 0 {
		s.Timeout = time.Duration(cli.Timeout) * time.Second
	}

	if s.MinLen < 1 {
		return nil, ErrInvalidMinLen
	}
	if s.MinLen > s.MaxLen {
		return nil, ErrMinExceedsMax
	}

	return s, nil
}
