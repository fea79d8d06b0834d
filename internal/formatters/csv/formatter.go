// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"pii-redactor/internal/formatters"
	"pii-redactor/internal/formatters/shared"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import, one row per file and label"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

// Format writes one row per label of every redacted file, and one row with
// an empty label for files without redactions or with an error.
func (f *Formatter) Format(report *formatters.Report, options formatters.FormatterOptions) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	rows := [][]string{{"File", "Output", "Redactor", "Label", "Count", "Error"}}
	for _, file := range report.Files {
		labels := shared.SortedLabels(file.LabelCounts)
		if len(labels) == 0 {
			rows = append(rows, []string{file.File, file.Output, file.Redactor, "", "0", file.Error})
			continue
		}
		for _, label := range labels {
			rows = append(rows, []string{file.File, file.Output, file.Redactor, label, strconv.Itoa(file.LabelCounts[label]), ""})
		}
	}

	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("error formatting CSV: %w", err)
	}
	return b.String(), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
