// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-redactor/internal/config"
	"pii-redactor/internal/redactors/pdf"
	"pii-redactor/internal/redactors/plaintext"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestParseLabels(t *testing.T) {
	assert.Equal(t, []string{"[SSN]", "[BANK ACCOUNT]", "[ZIP]"}, parseLabels("ssn, [BANK ACCOUNT] ,[zip]"))
	assert.Empty(t, parseLabels(" , "))
}

func TestResolveConfigurationDefaults(t *testing.T) {
	final, err := resolveConfiguration(config.Default(), &configFlags{})
	require.NoError(t, err)

	assert.Equal(t, "text", final.format)
	assert.Equal(t, config.RecognizerLexicon, final.recognizer)
	assert.True(t, final.normalize)
	assert.Equal(t, pdf.Black, final.fill)
	assert.Equal(t, "us-east-1", final.comprehend.Region)
	assert.False(t, final.preserve)

	cfg := config.Default()
	cfg.Defaults.Preserve = true
	final, err = resolveConfiguration(cfg, &configFlags{})
	require.NoError(t, err)
	assert.True(t, final.preserve)
}

func TestResolveConfigurationProfile(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.ApplyProfile("structured"))
	cfg.PDF.FillColor = "#ff0000"

	final, err := resolveConfiguration(cfg, &configFlags{})
	require.NoError(t, err)
	assert.Equal(t, config.RecognizerNone, final.recognizer)
	assert.False(t, final.normalize)
	assert.Equal(t, pdf.Color{R: 1}, final.fill)
}

func TestResolveConfigurationRejectsBadValues(t *testing.T) {
	cfg := config.Default()
	cfg.Defaults.Recognizer = "oracle"
	_, err := resolveConfiguration(cfg, &configFlags{})
	assert.ErrorContains(t, err, "unknown recognizer")

	cfg = config.Default()
	cfg.PDF.FillColor = "black"
	_, err = resolveConfiguration(cfg, &configFlags{})
	assert.Error(t, err)
}

func TestRunStdinRejectsEmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdin")
	writeFile(t, path, "")
	empty, err := os.Open(path)
	require.NoError(t, err)
	defer empty.Close()

	stdin := os.Stdin
	os.Stdin = empty
	defer func() { os.Stdin = stdin }()

	code := runStdin(context.Background(), plaintext.NewPlainTextRedactor(nil), &finalConfiguration{})
	assert.Equal(t, exitUsage, code)
}

func TestHandleProfiles(t *testing.T) {
	var buf bytes.Buffer
	handleProfiles(&buf, config.Default())
	assert.Contains(t, buf.String(), "Available profiles:")
	assert.Contains(t, buf.String(), "  - structured: ")

	buf.Reset()
	handleProfiles(&buf, &config.Config{})
	assert.Equal(t, "No profiles defined in configuration file.\n", buf.String())
}

func TestBuildRecognizerNone(t *testing.T) {
	rec, err := buildRecognizer(context.Background(), &finalConfiguration{recognizer: config.RecognizerNone}, nil)
	require.NoError(t, err)
	spans, err := rec.Recognize(context.Background(), "Jane Smith lives in Boston")
	require.NoError(t, err)
	assert.Empty(t, spans)
}

func TestGetFilesToProcess(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "b_redacted.txt"), "b")
	writeFile(t, filepath.Join(root, ".hidden.txt"), "h")
	writeFile(t, filepath.Join(root, "sub", "c.txt"), "c")
	writeFile(t, filepath.Join(root, "out", "d.txt"), "d")
	outDir := filepath.Join(root, "out")

	t.Run("flat directory", func(t *testing.T) {
		result, err := getFilesToProcess(root, false, outDir)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "a.txt")}, result.FilesToProcess)
		assert.Len(t, result.SkippedFiles, 2)
	})

	t.Run("recursive skips output directory", func(t *testing.T) {
		result, err := getFilesToProcess(root, true, outDir)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "a.txt"),
			filepath.Join(root, "sub", "c.txt"),
		}, result.FilesToProcess)
	})

	t.Run("glob", func(t *testing.T) {
		result, err := getFilesToProcess(filepath.Join(root, "*.txt"), false, "")
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "a.txt")}, result.FilesToProcess)
	})

	t.Run("explicit file is always taken", func(t *testing.T) {
		path := filepath.Join(root, "b_redacted.txt")
		result, err := getFilesToProcess(path, false, "")
		require.NoError(t, err)
		assert.Equal(t, []string{path}, result.FilesToProcess)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := getFilesToProcess(filepath.Join(root, "missing.txt"), false, "")
		assert.ErrorContains(t, err, "does not exist")

		_, err = getFilesToProcess(filepath.Join(root, "*.pdf"), false, "")
		assert.ErrorContains(t, err, "no files match pattern")

		_, err = getFilesToProcess("bad\x00path", false, "")
		assert.Error(t, err)
	})
}
