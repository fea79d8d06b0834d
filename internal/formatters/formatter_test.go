// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-redactor/internal/formatters"
	_ "pii-redactor/internal/formatters/csv"
	_ "pii-redactor/internal/formatters/json"
	"pii-redactor/internal/formatters/shared"
	_ "pii-redactor/internal/formatters/text"
	_ "pii-redactor/internal/formatters/yaml"
	"pii-redactor/internal/parallel"
	"pii-redactor/internal/redactors"
)

func sampleReport() *formatters.Report {
	results := []*parallel.Result{
		{
			FilePath:     "in/b.txt",
			RedactedPath: "out/in/b_redacted.txt",
			RedactorUsed: "plaintext_redactor",
			Duration:     2 * time.Millisecond,
			RedactionResult: &redactors.RedactionResult{
				Success:     true,
				LabelCounts: map[string]int{"[SSN]": 2, "[EMAIL]": 1},
			},
		},
		{
			FilePath:     "in/a.pdf",
			RedactedPath: "out/in/a_redacted.pdf",
			RedactorUsed: "pdf_redactor",
			Error:        errors.New("boom"),
		},
	}
	stats := &parallel.ProcessingStats{
		TotalFiles:      2,
		ProcessedFiles:  1,
		FailedFiles:     1,
		TotalRedactions: 3,
		LabelCounts:     map[string]int{"[SSN]": 2, "[EMAIL]": 1},
		WorkerCount:     2,
		TotalDuration:   5 * time.Millisecond,
	}
	return formatters.NewReport(results, stats)
}

func TestNewReport(t *testing.T) {
	report := sampleReport()
	require.Len(t, report.Files, 2)

	assert.Equal(t, "in/a.pdf", report.Files[0].File)
	assert.Equal(t, "boom", report.Files[0].Error)
	assert.Empty(t, report.Files[0].Output)

	assert.Equal(t, 3, report.Files[1].Redactions)
	assert.Equal(t, int64(2), report.Files[1].DurationMs)
	assert.Equal(t, 1, report.Summary.Failed)
	assert.Equal(t, int64(5), report.Summary.DurationMs)

	empty := formatters.NewReport(nil, nil)
	assert.NotNil(t, empty.Summary.LabelCounts)
}

func TestReportWithFailures(t *testing.T) {
	failures := redactors.NewRedactionErrorCollection()
	report := sampleReport().WithFailures(failures)
	assert.Nil(t, report.Summary.FailuresByType)

	failures.Add("in/a.pdf", errors.New("boom"))
	failures.Add("in/c.doc", redactors.FormatError("in/c.doc", "pdf_redactor", "PDF"))
	report = sampleReport().WithFailures(failures)
	assert.Equal(t, map[string]int{"document_processing": 1, "format": 1}, report.Summary.FailuresByType)

	out, err := formatters.Export("text", report, formatters.FormatterOptions{NoColor: true})
	require.NoError(t, err)
	assert.Contains(t, out, "failures: document_processing 1, format 1\n")

	out, err = formatters.Export("json", report, formatters.FormatterOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, `"failures_by_type": {`)
}

func TestRegisteredFormatters(t *testing.T) {
	assert.Equal(t, []string{"csv", "json", "text", "yaml"}, formatters.List())

	_, err := formatters.Export("sarif", sampleReport(), formatters.FormatterOptions{})
	assert.ErrorContains(t, err, "Available formats: csv, json, text, yaml")
}

func TestTextFormatter(t *testing.T) {
	out, err := formatters.Export("text", sampleReport(), formatters.FormatterOptions{NoColor: true, Verbose: true})
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "FAIL in/a.pdf: boom", lines[0])
	assert.Equal(t, "OK   in/b.txt -> out/in/b_redacted.txt (3 redactions)", lines[1])
	assert.Contains(t, out, "[EMAIL]")
	assert.Contains(t, out, "2 files, 1 redacted, 1 failed, 3 redactions in 5ms")
	assert.Contains(t, out, "[EMAIL] 1, [SSN] 2")

	out, err = formatters.Export("text", formatters.NewReport(nil, nil), formatters.FormatterOptions{NoColor: true})
	require.NoError(t, err)
	assert.Equal(t, "No files processed.", out)
}

func TestJSONAndYAMLFormatters(t *testing.T) {
	out, err := formatters.Export("json", sampleReport(), formatters.FormatterOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, `"label_counts": {`)
	assert.Contains(t, out, `"total_redactions": 3`)

	out, err = formatters.Export("yaml", sampleReport(), formatters.FormatterOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, "total_redactions: 3")
	assert.Contains(t, out, "file: in/a.pdf")
}

func TestCSVFormatter(t *testing.T) {
	out, err := formatters.Export("csv", sampleReport(), formatters.FormatterOptions{})
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"File,Output,Redactor,Label,Count,Error",
		"in/a.pdf,,pdf_redactor,,0,boom",
		"in/b.txt,out/in/b_redacted.txt,plaintext_redactor,[EMAIL],1,",
		"in/b.txt,out/in/b_redacted.txt,plaintext_redactor,[SSN],2,",
		"",
	}, "\n"), out)
}

func TestSharedHelpers(t *testing.T) {
	assert.Equal(t, "", shared.LabelSummary(nil))
	assert.Equal(t, []string{"[A]"}, shared.SortedLabels(map[string]int{"[A]": 1, "[B]": 0}))
	assert.Equal(t, "1 file", shared.Plural(1, "file"))
	assert.Equal(t, "0 files", shared.Plural(0, "file"))
}
