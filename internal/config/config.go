// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"pii-redactor/internal/paths"
	"pii-redactor/internal/redactors/pdf"

	"gopkg.in/yaml.v3"
)

// Recognizer names accepted in defaults.recognizer
const (
	RecognizerNone       = "none"
	RecognizerLexicon    = "lexicon"
	RecognizerComprehend = "comprehend"
)

// ProjectConfigFile is looked up in the working directory
const ProjectConfigFile = "pii-redactor.yaml"

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults Defaults `yaml:"defaults"`

	// Catalog narrows the pattern catalog
	Catalog struct {
		// Disabled lists labels whose rules are removed, e.g. "[BANK ACCOUNT]"
		Disabled []string `yaml:"disabled"`
	} `yaml:"catalog"`

	// Recognizer holds per-backend settings
	Recognizer struct {
		Comprehend ComprehendConfig `yaml:"comprehend"`
	} `yaml:"recognizer"`

	// PDF holds overlay settings
	PDF struct {
		// FillColor is the overlay colour as #rrggbb
		FillColor string `yaml:"fill_color"`
	} `yaml:"pdf"`

	// Profiles for different redaction scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Defaults are the settings used when no flag or profile overrides them
type Defaults struct {
	Recognizer string `yaml:"recognizer"`
	OutputDir  string `yaml:"output_dir"`
	Workers    int    `yaml:"workers"`
	Recursive  bool   `yaml:"recursive"`
	Normalize  bool   `yaml:"normalize"`
	Verbose    bool   `yaml:"verbose"`
	Debug      bool   `yaml:"debug"`
	NoColor    bool   `yaml:"no_color"`
	// Preserve copies each input's mode and modification time to its output
	Preserve bool `yaml:"preserve"`
	// LogFile receives a JSON copy of verbose logs when set
	LogFile string `yaml:"log_file"`
}

// ComprehendConfig configures the AWS Comprehend recognizer
type ComprehendConfig struct {
	Region            string        `yaml:"region"`
	LanguageCode      string        `yaml:"language_code"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	MinScore          float64       `yaml:"min_score"`
	Timeout           time.Duration `yaml:"timeout"`
}

// Profile represents a named set of overrides. Empty fields keep the
// value from Defaults.
type Profile struct {
	Description      string   `yaml:"description"`
	Recognizer       string   `yaml:"recognizer"`
	OutputDir        string   `yaml:"output_dir"`
	Workers          int      `yaml:"workers"`
	Recursive        *bool    `yaml:"recursive"`
	Normalize        *bool    `yaml:"normalize"`
	DisabledLabels   []string `yaml:"disabled_labels"`
	FillColor        string   `yaml:"fill_color"`
	ComprehendRegion string   `yaml:"comprehend_region"`
}

// Default returns the built-in configuration
func Default() *Config {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	config.Defaults.Recognizer = RecognizerLexicon
	config.Defaults.OutputDir = filepath.FromSlash("./redacted")
	config.Defaults.Workers = 0
	config.Defaults.Normalize = true

	config.Recognizer.Comprehend.Region = "us-east-1"
	config.Recognizer.Comprehend.LanguageCode = "en"
	config.Recognizer.Comprehend.RequestsPerSecond = 10
	config.Recognizer.Comprehend.MinScore = 0.5
	config.Recognizer.Comprehend.Timeout = 30 * time.Second

	config.PDF.FillColor = "#000000"

	normalizeOff := false
	config.Profiles["structured"] = Profile{
		Description: "Pattern catalog only; no entity recognition",
		Recognizer:  RecognizerNone,
		Normalize:   &normalizeOff,
	}
	config.Profiles["comprehend"] = Profile{
		Description: "Entity recognition through AWS Comprehend",
		Recognizer:  RecognizerComprehend,
	}

	return config
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Profiles in the file are merged over the built-in ones
	builtin := config.Profiles
	config.Profiles = nil
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	for name, profile := range builtin {
		if _, exists := config.Profiles[name]; !exists {
			if config.Profiles == nil {
				config.Profiles = make(map[string]Profile)
			}
			config.Profiles[name] = profile
		}
	}

	config.Defaults.OutputDir = paths.NormalizePath(config.Defaults.OutputDir)
	if config.Defaults.LogFile != "" {
		config.Defaults.LogFile = paths.NormalizePath(config.Defaults.LogFile)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile returns the first existing config file among
// ./pii-redactor.yaml and the user config file, or "".
func FindConfigFile() string {
	if fileExists(ProjectConfigFile) {
		return ProjectConfigFile
	}
	if standard := paths.GetConfigFile(); fileExists(standard) {
		return standard
	}
	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// LoadConfigOrDefault loads configFile, or the first file FindConfigFile
// returns when configFile is empty. A missing or invalid file falls back to
// the defaults; the error is returned alongside so callers can report it.
func LoadConfigOrDefault(configFile string) (*Config, error) {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return Default(), err
	}
	return cfg, nil
}

// ListProfiles returns the profile names, sorted
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// ApplyProfile merges the named profile into the configuration
func (c *Config) ApplyProfile(name string) error {
	profile := c.GetProfile(name)
	if profile == nil {
		return fmt.Errorf("profile %q not found (available: %s)", name, strings.Join(c.ListProfiles(), ", "))
	}

	if profile.Recognizer != "" {
		c.Defaults.Recognizer = profile.Recognizer
	}
	if profile.OutputDir != "" {
		c.Defaults.OutputDir = paths.NormalizePath(profile.OutputDir)
	}
	if profile.Workers != 0 {
		c.Defaults.Workers = profile.Workers
	}
	if profile.Recursive != nil {
		c.Defaults.Recursive = *profile.Recursive
	}
	if profile.Normalize != nil {
		c.Defaults.Normalize = *profile.Normalize
	}
	if len(profile.DisabledLabels) > 0 {
		c.Catalog.Disabled = append(c.Catalog.Disabled, profile.DisabledLabels...)
	}
	if profile.FillColor != "" {
		c.PDF.FillColor = profile.FillColor
	}
	if profile.ComprehendRegion != "" {
		c.Recognizer.Comprehend.Region = profile.ComprehendRegion
	}

	return ValidateConfig(c)
}

// ValidateConfig checks the values a run depends on
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	switch config.Defaults.Recognizer {
	case RecognizerNone, RecognizerLexicon, RecognizerComprehend:
	default:
		return fmt.Errorf("unknown recognizer %q (want %s, %s or %s)",
			config.Defaults.Recognizer, RecognizerNone, RecognizerLexicon, RecognizerComprehend)
	}

	if config.Defaults.Workers < 0 {
		return fmt.Errorf("workers cannot be negative: %d", config.Defaults.Workers)
	}

	if err := paths.ValidatePath(config.Defaults.OutputDir); err != nil {
		return fmt.Errorf("invalid output directory: %w", err)
	}
	if err := paths.ValidatePath(config.Defaults.LogFile); err != nil {
		return fmt.Errorf("invalid log file: %w", err)
	}

	for _, label := range config.Catalog.Disabled {
		if !strings.HasPrefix(label, "[") || !strings.HasSuffix(label, "]") {
			return fmt.Errorf("disabled label %q must be bracketed, e.g. \"[SSN]\"", label)
		}
	}

	if _, err := pdf.ParseColor(config.PDF.FillColor); err != nil {
		return fmt.Errorf("invalid pdf fill colour: %w", err)
	}

	comprehend := config.Recognizer.Comprehend
	if comprehend.MinScore < 0 || comprehend.MinScore > 1 {
		return fmt.Errorf("comprehend min_score must be within [0, 1]: %v", comprehend.MinScore)
	}
	if comprehend.RequestsPerSecond < 0 {
		return fmt.Errorf("comprehend requests_per_second cannot be negative: %v", comprehend.RequestsPerSecond)
	}

	for name, profile := range config.Profiles {
		if err := paths.ValidatePath(profile.OutputDir); err != nil {
			return fmt.Errorf("invalid output directory in profile '%s': %w", name, err)
		}
	}

	return nil
}
