// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigDirEnv overrides the configuration directory on every platform
const ConfigDirEnv = "PII_REDACTOR_CONFIG_DIR"

// GetConfigDir returns the pii-redactor configuration directory:
// $PII_REDACTOR_CONFIG_DIR, else ~/.pii-redactor, else ./.pii-redactor
// when the home directory is unknown.
func GetConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return NormalizePath(dir)
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".pii-redactor"
	}
	return filepath.Join(home, ".pii-redactor")
}

// GetConfigFile returns the path to the user config file
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// NormalizePath expands a leading "~" and cleans path for the current platform
func NormalizePath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return filepath.Clean(filepath.FromSlash(path))
}

// ResolvePath resolves a path to its absolute form
func ResolvePath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return filepath.Abs(NormalizePath(path))
}

// ValidatePath rejects paths the file system cannot represent
func ValidatePath(path string) error {
	if path == "" {
		return nil
	}
	if strings.ContainsRune(path, 0) {
		return &PathValidationError{Path: path, Reason: "contains null byte"}
	}
	return nil
}

// PathValidationError represents a path validation error
type PathValidationError struct {
	Path   string
	Reason string
}

func (e *PathValidationError) Error() string {
	return "invalid path '" + e.Path + "': " + e.Reason
}
