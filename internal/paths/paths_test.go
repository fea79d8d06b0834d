// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ConfigDirEnv, dir)

	assert.Equal(t, dir, GetConfigDir())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), GetConfigFile())
}

func TestGetConfigDirHome(t *testing.T) {
	t.Setenv(ConfigDirEnv, "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	assert.Equal(t, filepath.Join(home, ".pii-redactor"), GetConfigDir())
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "", NormalizePath(""))
	assert.Equal(t, filepath.FromSlash("a/c"), NormalizePath("a/b/../c/"))

	if home, err := os.UserHomeDir(); err == nil {
		assert.Equal(t, filepath.Join(home, "out"), NormalizePath("~/out"))
	}
}

func TestResolvePath(t *testing.T) {
	got, err := ResolvePath("out")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))

	got, err = ResolvePath("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestValidatePath(t *testing.T) {
	assert.NoError(t, ValidatePath(""))
	assert.NoError(t, ValidatePath("/tmp/redacted"))

	err := ValidatePath("bad\x00path")
	var pve *PathValidationError
	require.ErrorAs(t, err, &pve)
	assert.Equal(t, "contains null byte", pve.Reason)
}
