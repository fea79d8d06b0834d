// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package plaintext redacts text documents and in-memory strings. Entity
// spans are substituted first, then the pattern catalog runs over the
// result.
package plaintext

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"pii-redactor/internal/catalog"
	"pii-redactor/internal/datefilter"
	"pii-redactor/internal/entity"
	"pii-redactor/internal/observability"
	"pii-redactor/internal/redactors"
)

const componentName = "plaintext_redactor"

// PlainTextRedactor implements redaction for plain text files
type PlainTextRedactor struct {
	catalog    *catalog.Catalog
	recognizer entity.Recognizer
	dates      *datefilter.Filter

	// normalize applies NFKC to input before recognition
	normalize bool

	observer *observability.StandardObserver
	logger   *zap.Logger
}

// Option configures a PlainTextRedactor
type Option func(*PlainTextRedactor)

// WithCatalog replaces the default pattern catalog
func WithCatalog(c *catalog.Catalog) Option {
	return func(ptr *PlainTextRedactor) { ptr.catalog = c }
}

// WithRecognizer sets the entity recognizer. The default finds nothing.
func WithRecognizer(r entity.Recognizer) Option {
	return func(ptr *PlainTextRedactor) { ptr.recognizer = r }
}

// WithDateFilter replaces the wall-clock date filter
func WithDateFilter(f *datefilter.Filter) Option {
	return func(ptr *PlainTextRedactor) { ptr.dates = f }
}

// WithNormalization enables NFKC normalization of the input
func WithNormalization(enabled bool) Option {
	return func(ptr *PlainTextRedactor) { ptr.normalize = enabled }
}

// NewPlainTextRedactor creates a new PlainTextRedactor
func NewPlainTextRedactor(observer *observability.StandardObserver, opts ...Option) *PlainTextRedactor {
	ptr := &PlainTextRedactor{
		catalog:    catalog.Default(),
		recognizer: entity.None,
		dates:      datefilter.New(),
		observer:   observer,
		logger:     observer.Logger(componentName),
	}
	for _, opt := range opts {
		opt(ptr)
	}
	if ptr.catalog == nil {
		ptr.catalog = catalog.Default()
	}
	if ptr.recognizer == nil {
		ptr.recognizer = entity.None
	}
	if ptr.dates == nil {
		ptr.dates = datefilter.New()
	}
	return ptr
}

// GetName returns the name of the redactor
func (ptr *PlainTextRedactor) GetName() string {
	return componentName
}

// GetSupportedTypes returns the file types this redactor can handle
func (ptr *PlainTextRedactor) GetSupportedTypes() []string {
	return []string{".txt", ".log", ".csv", ".json", ".xml", ".yaml", ".yml", ".md", ".conf", ".ini"}
}

// GetComponentName returns the component name for observability
func (ptr *PlainTextRedactor) GetComponentName() string {
	return componentName
}

// Redact returns content with entities and catalog matches replaced by
// their labels, plus the number of replacements per label.
func (ptr *PlainTextRedactor) Redact(ctx context.Context, content string) (string, map[string]int, error) {
	if ptr.normalize {
		content = norm.NFKC.String(content)
	}

	spans, err := ptr.recognizer.Recognize(ctx, content)
	if err != nil {
		return "", nil, redactors.NewRedactionError(redactors.ErrorRecognition, "entity recognition failed", "", componentName, err)
	}

	counts := make(map[string]int)
	buffer := content

	// Longer names first so "Jane Doe" is not split by an earlier "Jane".
	for _, name := range entity.LongestFirst(entity.Texts(spans, entity.Person)) {
		re, err := entity.NamePattern(name)
		if err != nil {
			return "", nil, fmt.Errorf("compile name pattern: %w", err)
		}
		buffer = replace(re, buffer, entity.LabelPerson, counts)
	}

	for _, date := range entity.LongestFirst(ptr.dates.Filter(spans)) {
		re, err := entity.LiteralPattern(date)
		if err != nil {
			return "", nil, fmt.Errorf("compile date pattern: %w", err)
		}
		buffer = replace(re, buffer, entity.LabelDate, counts)
	}

	for _, place := range entity.LongestFirst(entity.Texts(spans, entity.Geo)) {
		re, err := entity.LiteralPattern(place)
		if err != nil {
			return "", nil, fmt.Errorf("compile place pattern: %w", err)
		}
		buffer = replace(re, buffer, entity.LabelGeo, counts)
	}

	buffer, catalogCounts := ptr.catalog.ApplyCounted(buffer)
	for label, n := range catalogCounts {
		counts[label] += n
	}

	ptr.logger.Debug("redacted content",
		zap.Int("spans", len(spans)),
		zap.Int("input_length", len(content)),
		zap.Int("output_length", len(buffer)))

	return buffer, counts, nil
}

func replace(re *regexp.Regexp, buffer, label string, counts map[string]int) string {
	n := len(re.FindAllStringIndex(buffer, -1))
	if n == 0 {
		return buffer
	}
	counts[label] += n
	return re.ReplaceAllLiteralString(buffer, label)
}

// RedactString is the in-memory mode. A nil or empty text is an argument
// error.
func (ptr *PlainTextRedactor) RedactString(ctx context.Context, text *string) (string, map[string]int, error) {
	if text == nil || *text == "" {
		return "", nil, redactors.ArgumentError("in-memory redaction requires text", componentName)
	}
	return ptr.Redact(ctx, *text)
}

// RedactFile is the save mode: it reads inputPath and writes the redacted
// text to outputPath with owner-only permissions.
func (ptr *PlainTextRedactor) RedactFile(ctx context.Context, inputPath, outputPath string) error {
	_, err := ptr.RedactDocument(ctx, inputPath, outputPath)
	return err
}

// RedactDocument implements redactors.Redactor
func (ptr *PlainTextRedactor) RedactDocument(ctx context.Context, inputPath, outputPath string) (*redactors.RedactionResult, error) {
	startTime := time.Now()
	finishTiming := ptr.observer.StartTiming(componentName, "redact_document", inputPath)

	result, err := ptr.redactDocument(ctx, inputPath, outputPath)
	if err != nil {
		finishTiming(false, map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	result.ProcessingTime = time.Since(startTime)
	finishTiming(true, map[string]interface{}{
		"output_path":      outputPath,
		"redactions_count": result.TotalRedactions(),
	})
	return result, nil
}

func (ptr *PlainTextRedactor) redactDocument(ctx context.Context, inputPath, outputPath string) (*redactors.RedactionResult, error) {
	if outputPath == "" {
		return nil, redactors.ArgumentError("save mode requires an output path", componentName)
	}

	content, err := os.ReadFile(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, redactors.NotFoundError(inputPath, componentName, err)
		}
		return nil, redactors.NewRedactionError(redactors.ErrorFileSystem, "failed to read input file", inputPath, componentName, err)
	}

	redacted, counts, err := ptr.Redact(ctx, string(content))
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(outputPath, []byte(redacted), 0600); err != nil {
		return nil, redactors.NewRedactionError(redactors.ErrorFileSystem, "failed to write redacted file", outputPath, componentName, err)
	}

	return &redactors.RedactionResult{
		Success:          true,
		RedactedFilePath: outputPath,
		LabelCounts:      counts,
	}, nil
}
