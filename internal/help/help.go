// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"pii-redactor/internal/catalog"

	"github.com/fatih/color"
)

// System prints usage and catalog information
type System struct {
	out     io.Writer
	catalog *catalog.Catalog
	colors  map[string]*color.Color
}

// NewSystem creates a new help system writing to out
func NewSystem(out io.Writer, c *catalog.Catalog, noColor bool) *System {
	colors := map[string]*color.Color{
		"title":    color.New(color.FgWhite, color.Bold),
		"header":   color.New(color.FgBlue, color.Bold),
		"item":     color.New(color.FgCyan),
		"emphasis": color.New(color.FgWhite, color.Bold),
		"negative": color.New(color.FgRed),
		"example":  color.New(color.FgMagenta),
	}
	if noColor {
		for _, col := range colors {
			col.DisableColor()
		}
	}
	if c == nil {
		c = catalog.Default()
	}

	return &System{out: out, catalog: c, colors: colors}
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Fprintln(h.out, "pii-redactor - PII redaction for text and PDF documents")
	fmt.Fprintln(h.out, "=======================================================")
	fmt.Fprintln(h.out)
	h.colors["header"].Fprintln(h.out, "USAGE:")
	fmt.Fprintln(h.out, "  pii-redactor [options] <file|dir|glob>...")
	fmt.Fprintln(h.out, "  pii-redactor --stdin < input.txt")
	fmt.Fprintln(h.out, "  pii-redactor --watch <dir>")
	fmt.Fprintln(h.out)

	h.colors["header"].Fprintln(h.out, "OPTIONS:")
	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --output\t<path>\tOutput path for a single input (default: <output-dir>/<name>_redacted<ext>)")
	fmt.Fprintln(w, "  --output-dir\t<path>\tDirectory mirroring the input tree for redacted files (default: ./redacted)")
	fmt.Fprintln(w, "  --recursive\t\tDescend into subdirectories")
	fmt.Fprintln(w, "  --workers\t<n>\tDocuments redacted in parallel (default: CPU count, at most 8)")
	fmt.Fprintln(w, "  --recognizer\t<name>\tEntity recognizer: lexicon, comprehend or none (default: lexicon)")
	fmt.Fprintln(w, "  --disable\t<labels>\tComma-separated labels to skip, e.g. \"[BANK ACCOUNT],[ZIP]\"")
	fmt.Fprintln(w, "  --fill\t<#rrggbb>\tPDF overlay colour (default: #000000)")
	fmt.Fprintln(w, "  --preserve\t\tCopy each input's mode and modification time to its output")
	fmt.Fprintln(w, "  --format\t<format>\tReport format: text, json, yaml, csv (default: text)")
	fmt.Fprintln(w, "  --stdin\t\tRedact standard input and print the result")
	fmt.Fprintln(w, "  --watch\t<dir>\tRedact files as they are dropped into a directory")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  --list-profiles\t\tList available profiles")
	fmt.Fprintln(w, "  --list-labels\t\tList the pattern catalog labels in application order")
	fmt.Fprintln(w, "  --help-label\t<label>\tShow the patterns behind a label")
	fmt.Fprintln(w, "  --verbose\t\tList label counts per file")
	fmt.Fprintln(w, "  --debug\t\tEnable debug logging")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	w.Flush()

	fmt.Fprintln(h.out)
	h.colors["header"].Fprintln(h.out, "EXAMPLES:")
	h.colors["example"].Fprintln(h.out, "  pii-redactor notes.txt")
	h.colors["example"].Fprintln(h.out, "  pii-redactor --output safe.pdf scan.pdf")
	h.colors["example"].Fprintln(h.out, "  pii-redactor --recursive --output-dir ./safe-docs ./records")
	h.colors["example"].Fprintln(h.out, "  echo 'SSN 123-45-6789' | pii-redactor --stdin")
	h.colors["example"].Fprintln(h.out, "  pii-redactor --recognizer comprehend --format json *.txt")

	fmt.Fprintln(h.out)
	h.colors["header"].Fprintln(h.out, "CONFIGURATION:")
	fmt.Fprintln(h.out, "  Project config: ./pii-redactor.yaml")
	fmt.Fprintln(h.out, "  User config:    ~/.pii-redactor/config.yaml")
	fmt.Fprintln(h.out, "  Environment:    PII_REDACTOR_CONFIG_DIR overrides the user config directory")
}

// ShowLabels lists every catalog rule in application order
func (h *System) ShowLabels() {
	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  #\tLABEL\tKIND\tPATTERNS")
	for i, rule := range h.catalog.Rules() {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%d\n", i+1, rule.Label(), rule.Kind(), len(rule.Patterns()))
	}
	w.Flush()
}

// ShowLabelHelp prints the patterns of every rule with the given label. It
// reports false when no rule carries the label.
func (h *System) ShowLabelHelp(label string) bool {
	label = strings.TrimSpace(label)
	if !strings.HasPrefix(label, "[") {
		label = "[" + strings.ToUpper(label) + "]"
	}

	rules := h.catalog.RulesFor(label)
	if len(rules) == 0 {
		h.colors["negative"].Fprintf(h.out, "Error: label '%s' not found.\n", label)
		fmt.Fprintln(h.out, "Use 'pii-redactor --list-labels' to see the catalog.")
		return false
	}

	h.colors["title"].Fprintf(h.out, "%s\n", label)
	fmt.Fprintln(h.out, strings.Repeat("=", len(label)))
	for _, rule := range rules {
		fmt.Fprintln(h.out)
		h.colors["header"].Fprintf(h.out, "%s rule (flags: %s)\n", rule.Kind(), rule.Modifiers())
		for _, pattern := range rule.Patterns() {
			fmt.Fprint(h.out, "  - ")
			h.colors["item"].Fprintln(h.out, pattern)
		}
	}
	return true
}
