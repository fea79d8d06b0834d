// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pdf redacts PDF documents by drawing opaque rectangles over the
// words that carry PII. Pages move through a fixed sequence of states:
// tokens are extracted, catalog patterns are resolved, entities are
// resolved, and finally the page's overlays are committed.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"pii-redactor/internal/catalog"
	"pii-redactor/internal/datefilter"
	"pii-redactor/internal/entity"
	"pii-redactor/internal/observability"
	"pii-redactor/internal/redactors"
)

const componentName = "pdf_redactor"

// pageState is a step in the processing of a single page
type pageState int

const (
	stateTokensExtracted pageState = iota
	statePatternsResolved
	stateEntitiesResolved
	stateCommitted
)

func (s pageState) String() string {
	switch s {
	case stateTokensExtracted:
		return "tokens_extracted"
	case statePatternsResolved:
		return "patterns_resolved"
	case stateEntitiesResolved:
		return "entities_resolved"
	case stateCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

// page holds the working state of one page
type page struct {
	number   int
	words    []WordToken
	tokens   *TokenList
	state    pageState
	overlays []redactors.RedactionMapping
}

func newPage(number int, words []WordToken) *page {
	return &page{
		number: number,
		words:  words,
		tokens: NewTokenList(words),
		state:  stateTokensExtracted,
	}
}

func (p *page) advance(next pageState) error {
	if next != p.state+1 {
		return fmt.Errorf("page %d: cannot move from %s to %s", p.number, p.state, next)
	}
	p.state = next
	return nil
}

func (p *page) cover(label string, rects []redactors.BoundingBox) {
	for _, r := range rects {
		p.overlays = append(p.overlays, redactors.RedactionMapping{Label: label, Page: p.number, Region: r})
	}
}

func (p *page) regions() []redactors.BoundingBox {
	rects := make([]redactors.BoundingBox, len(p.overlays))
	for i, o := range p.overlays {
		rects[i] = o.Region
	}
	return rects
}

// PDFRedactor implements redaction for PDF files
type PDFRedactor struct {
	catalog    *catalog.Catalog
	recognizer entity.Recognizer
	dates      *datefilter.Filter
	fill       Color

	openWords  func(path string) (WordSource, error)
	openCanvas func(path string, fill Color) (Canvas, error)

	observer *observability.StandardObserver
	logger   *zap.Logger
}

// Option configures a PDFRedactor
type Option func(*PDFRedactor)

// WithCatalog replaces the default pattern catalog
func WithCatalog(c *catalog.Catalog) Option {
	return func(pr *PDFRedactor) { pr.catalog = c }
}

// WithRecognizer sets the entity recognizer. The default finds nothing.
func WithRecognizer(r entity.Recognizer) Option {
	return func(pr *PDFRedactor) { pr.recognizer = r }
}

// WithDateFilter replaces the wall-clock date filter
func WithDateFilter(f *datefilter.Filter) Option {
	return func(pr *PDFRedactor) { pr.dates = f }
}

// WithFill sets the overlay colour
func WithFill(c Color) Option {
	return func(pr *PDFRedactor) { pr.fill = c }
}

// NewPDFRedactor creates a new PDFRedactor backed by ledongthuc/pdf for
// word geometry and pdfcpu for the overlays
func NewPDFRedactor(observer *observability.StandardObserver, opts ...Option) *PDFRedactor {
	pr := &PDFRedactor{
		catalog:    catalog.Default(),
		recognizer: entity.None,
		dates:      datefilter.New(),
		fill:       Black,
		openWords:  OpenWordSource,
		openCanvas: OpenCanvas,
		observer:   observer,
		logger:     observer.Logger(componentName),
	}
	for _, opt := range opts {
		opt(pr)
	}
	if pr.catalog == nil {
		pr.catalog = catalog.Default()
	}
	if pr.recognizer == nil {
		pr.recognizer = entity.None
	}
	if pr.dates == nil {
		pr.dates = datefilter.New()
	}
	return pr
}

// GetName returns the name of the redactor
func (pr *PDFRedactor) GetName() string {
	return componentName
}

// GetSupportedTypes returns the file types this redactor can handle
func (pr *PDFRedactor) GetSupportedTypes() []string {
	return []string{".pdf"}
}

// GetComponentName returns the component name for observability
func (pr *PDFRedactor) GetComponentName() string {
	return componentName
}

// RedactFile is the save mode for PDF input
func (pr *PDFRedactor) RedactFile(ctx context.Context, inputPath, outputPath string) error {
	_, err := pr.RedactDocument(ctx, inputPath, outputPath)
	return err
}

// RedactDocument implements redactors.Redactor. Input without a .pdf
// extension is rejected before any page is read.
func (pr *PDFRedactor) RedactDocument(ctx context.Context, inputPath, outputPath string) (*redactors.RedactionResult, error) {
	startTime := time.Now()
	finishTiming := pr.observer.StartTiming(componentName, "redact_document", inputPath)

	result, err := pr.redactDocument(ctx, inputPath, outputPath)
	if err != nil {
		finishTiming(false, map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	result.ProcessingTime = time.Since(startTime)
	finishTiming(true, map[string]interface{}{
		"output_path":      outputPath,
		"redactions_count": result.TotalRedactions(),
		"overlay_count":    len(result.RedactionMap),
	})
	return result, nil
}

func (pr *PDFRedactor) redactDocument(ctx context.Context, inputPath, outputPath string) (*redactors.RedactionResult, error) {
	if !strings.EqualFold(filepath.Ext(inputPath), ".pdf") {
		return nil, redactors.FormatError(inputPath, componentName, "PDF")
	}
	if outputPath == "" {
		return nil, redactors.ArgumentError("save mode requires an output path", componentName)
	}
	if _, err := os.Stat(inputPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, redactors.NotFoundError(inputPath, componentName, err)
		}
		return nil, redactors.NewRedactionError(redactors.ErrorFileSystem, "failed to stat input file", inputPath, componentName, err)
	}

	src, err := pr.openWords(inputPath)
	if err != nil {
		return nil, redactors.NewRedactionError(redactors.ErrorDocumentProcessing, "failed to open PDF for extraction", inputPath, componentName, err)
	}
	defer src.Close()

	canvas, err := pr.openCanvas(inputPath, pr.fill)
	if err != nil {
		return nil, redactors.NewRedactionError(redactors.ErrorDocumentProcessing, "failed to open PDF for writing", inputPath, componentName, err)
	}

	result := &redactors.RedactionResult{
		RedactedFilePath: outputPath,
		LabelCounts:      make(map[string]int),
	}

	for n := 1; n <= src.PageCount(); n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		words, err := src.PageWords(n)
		if err != nil {
			return nil, redactors.NewRedactionError(redactors.ErrorDocumentProcessing, fmt.Sprintf("failed to extract page %d", n), inputPath, componentName, err)
		}

		p := newPage(n, words)
		if err := pr.processPage(ctx, p, canvas, result.LabelCounts); err != nil {
			var re *redactors.RedactionError
			if errors.As(err, &re) {
				re.FilePath = inputPath
				return nil, re
			}
			return nil, redactors.NewRedactionError(redactors.ErrorDocumentProcessing, fmt.Sprintf("failed to redact page %d", n), inputPath, componentName, err)
		}
		result.RedactionMap = append(result.RedactionMap, p.overlays...)
	}

	if err := canvas.Save(outputPath); err != nil {
		return nil, redactors.NewRedactionError(redactors.ErrorFileSystem, "failed to write redacted PDF", outputPath, componentName, err)
	}

	result.Success = true
	return result, nil
}

// processPage runs one page through every state up to committed
func (pr *PDFRedactor) processPage(ctx context.Context, p *page, canvas Canvas, counts map[string]int) error {
	pr.resolvePatterns(p, counts)
	if err := p.advance(statePatternsResolved); err != nil {
		return err
	}

	if err := pr.resolveEntities(ctx, p, counts); err != nil {
		return err
	}
	if err := p.advance(stateEntitiesResolved); err != nil {
		return err
	}

	if err := canvas.Fill(p.number, p.regions()); err != nil {
		return err
	}
	if err := p.advance(stateCommitted); err != nil {
		return err
	}

	pr.logger.Debug("page committed",
		zap.Int("page", p.number),
		zap.Int("words", len(p.words)),
		zap.Int("overlays", len(p.overlays)))
	return nil
}

// resolvePatterns covers every catalog match on the page. Composite rules
// have no geometry target and are skipped. Matched text is removed from
// the search string so later rules cannot match it again.
func (pr *PDFRedactor) resolvePatterns(p *page, counts map[string]int) {
	for _, rule := range pr.catalog.Rules() {
		if rule.Kind() != catalog.KindSimple {
			continue
		}

		targets := rule.Targets(p.tokens.String())
		for _, t := range targets {
			rects := SearchPhrase(p.words, t.Text)
			if len(rects) == 0 {
				pr.logger.Debug("no rectangle for match", zap.Int("page", p.number), zap.String("label", rule.Label()))
				continue
			}
			counts[rule.Label()]++
			p.cover(rule.Label(), rects)
		}

		for i := len(targets) - 1; i >= 0; i-- {
			p.tokens.Remove(targets[i].Start, targets[i].End)
		}
	}
}

// resolveEntities recognizes entities in what the patterns left behind.
// Categories are handled in the order PERSON, DATE, GEO; a span whose text
// an earlier category already removed is skipped.
func (pr *PDFRedactor) resolveEntities(ctx context.Context, p *page, counts map[string]int) error {
	text := p.tokens.String()
	if strings.TrimSpace(text) == "" {
		return nil
	}

	spans, err := pr.recognizer.Recognize(ctx, text)
	if err != nil {
		return redactors.NewRedactionError(redactors.ErrorRecognition, "entity recognition failed", "", componentName, err)
	}

	resolve := func(texts []string, label string, search func([]WordToken, string) []redactors.BoundingBox) {
		for _, s := range entity.LongestFirst(texts) {
			if !p.tokens.Contains(s) {
				continue
			}
			if rects := search(p.words, s); len(rects) > 0 {
				counts[label]++
				p.cover(label, rects)
			}
			p.tokens.RemoveAll(s)
		}
	}

	resolve(entity.Texts(spans, entity.Person), entity.LabelPerson, SearchPerson)
	resolve(pr.dates.Filter(spans), entity.LabelDate, SearchPhrase)
	resolve(entity.Texts(spans, entity.Geo), entity.LabelGeo, SearchPhrase)
	return nil
}
