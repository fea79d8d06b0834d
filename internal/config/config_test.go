// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-redactor/internal/paths"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, RecognizerLexicon, cfg.Defaults.Recognizer)
	assert.True(t, cfg.Defaults.Normalize)
	assert.Equal(t, "#000000", cfg.PDF.FillColor)
	assert.Equal(t, 30*time.Second, cfg.Recognizer.Comprehend.Timeout)
	assert.Equal(t, []string{"comprehend", "structured"}, cfg.ListProfiles())
	assert.NoError(t, ValidateConfig(cfg))
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
defaults:
  recognizer: comprehend
  workers: 4
  output_dir: out
catalog:
  disabled: ["[BANK ACCOUNT]"]
recognizer:
  comprehend:
    region: eu-west-1
    min_score: 0.8
    timeout: 10s
pdf:
  fill_color: "#ffffff"
profiles:
  ci:
    description: CI runs
    workers: 2
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, RecognizerComprehend, cfg.Defaults.Recognizer)
	assert.Equal(t, 4, cfg.Defaults.Workers)
	assert.Equal(t, "out", cfg.Defaults.OutputDir)
	assert.Equal(t, []string{"[BANK ACCOUNT]"}, cfg.Catalog.Disabled)
	assert.Equal(t, "eu-west-1", cfg.Recognizer.Comprehend.Region)
	assert.Equal(t, "en", cfg.Recognizer.Comprehend.LanguageCode)
	assert.InDelta(t, 0.8, cfg.Recognizer.Comprehend.MinScore, 1e-9)
	assert.Equal(t, 10*time.Second, cfg.Recognizer.Comprehend.Timeout)
	assert.Equal(t, "#ffffff", cfg.PDF.FillColor)

	// unset booleans keep their defaults
	assert.True(t, cfg.Defaults.Normalize)

	// file profiles are merged with the built-in ones
	assert.Equal(t, []string{"ci", "comprehend", "structured"}, cfg.ListProfiles())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.yaml")
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, ":::invalid yaml:::"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "defaults:\n  recognizer: spacy\n"))
	assert.ErrorContains(t, err, "unknown recognizer")
}

func TestLoadConfigOrDefault(t *testing.T) {
	t.Setenv(paths.ConfigDirEnv, t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := LoadConfigOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, RecognizerLexicon, cfg.Defaults.Recognizer)

	cfg, err = LoadConfigOrDefault("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, RecognizerLexicon, cfg.Defaults.Recognizer)
}

func TestFindConfigFile(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv(paths.ConfigDirEnv, configDir)
	chdir(t, t.TempDir())

	assert.Equal(t, "", FindConfigFile())

	user := filepath.Join(configDir, "config.yaml")
	require.NoError(t, os.WriteFile(user, []byte("defaults:\n  workers: 2\n"), 0600))
	assert.Equal(t, user, FindConfigFile())

	require.NoError(t, os.WriteFile(ProjectConfigFile, []byte("defaults:\n  workers: 3\n"), 0600))
	assert.Equal(t, ProjectConfigFile, FindConfigFile())

	cfg, err := LoadConfigOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Defaults.Workers)
}

func TestApplyProfile(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyProfile("structured"))
	assert.Equal(t, RecognizerNone, cfg.Defaults.Recognizer)
	assert.False(t, cfg.Defaults.Normalize)

	cfg = Default()
	cfg.Profiles["narrow"] = Profile{DisabledLabels: []string{"[SSN]"}, FillColor: "#ff0000", Workers: 3}
	require.NoError(t, cfg.ApplyProfile("narrow"))
	assert.Equal(t, []string{"[SSN]"}, cfg.Catalog.Disabled)
	assert.Equal(t, "#ff0000", cfg.PDF.FillColor)
	assert.Equal(t, 3, cfg.Defaults.Workers)

	assert.ErrorContains(t, cfg.ApplyProfile("missing"), "available: comprehend, narrow, structured")
	assert.Nil(t, cfg.GetProfile("missing"))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "negative workers", mutate: func(c *Config) { c.Defaults.Workers = -1 }, want: "workers"},
		{name: "unbracketed label", mutate: func(c *Config) { c.Catalog.Disabled = []string{"SSN"} }, want: "bracketed"},
		{name: "bad colour", mutate: func(c *Config) { c.PDF.FillColor = "black" }, want: "fill colour"},
		{name: "min score", mutate: func(c *Config) { c.Recognizer.Comprehend.MinScore = 2 }, want: "min_score"},
		{name: "rate", mutate: func(c *Config) { c.Recognizer.Comprehend.RequestsPerSecond = -1 }, want: "requests_per_second"},
		{name: "output dir", mutate: func(c *Config) { c.Defaults.OutputDir = "a\x00b" }, want: "output directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, ValidateConfig(cfg), tt.want)
		})
	}

	assert.Error(t, ValidateConfig(nil))
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
