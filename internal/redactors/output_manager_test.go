// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redactors

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactedName(t *testing.T) {
	assert.Equal(t, "notes_redacted.txt", RedactedName("/tmp/docs/notes.txt"))
	assert.Equal(t, "scan_redacted.PDF", RedactedName("scan.PDF"))
	assert.Equal(t, "Makefile_redacted", RedactedName("Makefile"))
}

func TestNewOutputStructureManager(t *testing.T) {
	_, err := NewOutputStructureManager("", nil)
	assert.Error(t, err)

	om, err := NewOutputStructureManager("out/", nil)
	require.NoError(t, err)
	assert.Equal(t, "out", om.GetBaseOutputDir())
}

func TestCreateMirroredPath(t *testing.T) {
	om, err := NewOutputStructureManager("/out", nil)
	require.NoError(t, err)

	tests := []struct {
		input string
		want  string
	}{
		{input: "/tmp/x/notes.txt", want: "/out/tmp/x/notes.txt"},
		{input: "docs/notes.txt", want: "/out/docs/notes.txt"},
		{input: "./docs/notes.txt", want: "/out/docs/notes.txt"},
		{input: "../shared/notes.txt", want: "/out/parent/shared/notes.txt"},
		{input: ".", want: "/out/current"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := om.CreateMirroredPath(filepath.FromSlash(tt.input))
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}

	_, err = om.CreateMirroredPath("")
	assert.Error(t, err)
}

func TestCreateRedactedPath(t *testing.T) {
	om, err := NewOutputStructureManager("/out", nil)
	require.NoError(t, err)

	got, err := om.CreateRedactedPath(filepath.FromSlash("/tmp/x/notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/out/tmp/x/notes_redacted.txt"), got)
}

func TestEnsureDirectoryExists(t *testing.T) {
	base := t.TempDir()
	om, err := NewOutputStructureManager(base, nil)
	require.NoError(t, err)

	target := filepath.Join(base, "a", "b", "file.txt")
	require.NoError(t, om.EnsureDirectoryExists(target))
	info, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// existing directory is fine
	require.NoError(t, om.EnsureDirectoryExists(target))

	blocker := filepath.Join(base, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))
	assert.Error(t, om.EnsureDirectoryExists(filepath.Join(blocker, "file.txt")))
	assert.Error(t, om.EnsureDirectoryExists(""))
}

func TestPreserveAttributes(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(input, []byte("in"), 0600))
	require.NoError(t, os.WriteFile(output, []byte("out"), 0600))
	require.NoError(t, os.Chmod(input, 0644))
	modTime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(input, modTime, modTime))

	om, err := NewOutputStructureManager(dir, nil)
	require.NoError(t, err)

	// disabled: the output keeps its owner-only mode
	require.NoError(t, om.PreserveAttributes(input, output))
	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	om.SetPreserveAttributes(true)
	require.NoError(t, om.PreserveAttributes(input, output))
	info, err = os.Stat(output)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	assert.True(t, info.ModTime().Equal(modTime))

	assert.Error(t, om.PreserveAttributes(filepath.Join(dir, "missing.txt"), output))
}
