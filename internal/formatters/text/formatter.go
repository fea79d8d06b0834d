// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"pii-redactor/internal/formatters"
	"pii-redactor/internal/formatters/shared"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(report *formatters.Report, options formatters.FormatterOptions) (string, error) {
	if len(report.Files) == 0 {
		return "No files processed.", nil
	}

	var builder strings.Builder
	for _, file := range report.Files {
		f.appendFileLine(&builder, file, options)
	}
	f.appendSummary(&builder, report.Summary, options)
	return builder.String(), nil
}

// paint colours s unless colours are disabled
func (f *Formatter) paint(name, s string, options formatters.FormatterOptions) string {
	if options.NoColor {
		return s
	}
	return f.colors[name].Sprint(s)
}

// appendFileLine adds one line per input, plus label lines in verbose mode
func (f *Formatter) appendFileLine(builder *strings.Builder, file formatters.FileReport, options formatters.FormatterOptions) {
	if file.Error != "" {
		fmt.Fprintf(builder, "%s %s: %s\n",
			f.paint("red", "FAIL", options), file.File, f.paint("red", file.Error, options))
		return
	}

	status := f.paint("green", "OK  ", options)
	if file.Redactions == 0 {
		status = f.paint("yellow", "NONE", options)
	}
	fmt.Fprintf(builder, "%s %s -> %s (%s)\n",
		status, file.File, f.paint("cyan", file.Output, options), shared.Plural(file.Redactions, "redaction"))

	if !options.Verbose {
		return
	}
	for _, label := range shared.SortedLabels(file.LabelCounts) {
		fmt.Fprintf(builder, "       %-22s %d\n", label, file.LabelCounts[label])
	}
	if file.Regions > 0 {
		fmt.Fprintf(builder, "       %-22s %d\n", "overlay regions", file.Regions)
	}
}

func (f *Formatter) appendSummary(builder *strings.Builder, summary formatters.Summary, options formatters.FormatterOptions) {
	line := fmt.Sprintf("\n%s, %d redacted, %d failed, %s in %dms",
		shared.Plural(summary.TotalFiles, "file"), summary.Redacted, summary.Failed,
		shared.Plural(summary.TotalRedactions, "redaction"), summary.DurationMs)
	builder.WriteString(f.paint("white", line, options))
	builder.WriteString("\n")

	if labels := shared.LabelSummary(summary.LabelCounts); labels != "" {
		builder.WriteString(labels)
		builder.WriteString("\n")
	}
	if failures := shared.LabelSummary(summary.FailuresByType); failures != "" {
		builder.WriteString(f.paint("red", "failures: "+failures, options))
		builder.WriteString("\n")
	}
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
