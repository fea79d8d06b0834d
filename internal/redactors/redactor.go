// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redactors

import (
	"context"
	"math"
	"sort"
	"time"
)

// Redactor interface defines the contract for all redactor implementations
type Redactor interface {
	// GetName returns the name of the redactor
	GetName() string

	// GetSupportedTypes returns the file extensions this redactor handles
	GetSupportedTypes() []string

	// RedactDocument writes a redacted copy of inputPath to outputPath
	RedactDocument(ctx context.Context, inputPath, outputPath string) (*RedactionResult, error)

	// GetComponentName returns the component name for observability
	GetComponentName() string
}

// RedactionResult contains the results of a redaction operation
type RedactionResult struct {
	// Success indicates whether the redaction was successful
	Success bool

	// RedactedFilePath is the path to the redacted document
	RedactedFilePath string

	// LabelCounts is the number of replacements or overlays per label
	LabelCounts map[string]int

	// RedactionMap lists the overlay regions drawn on paged documents
	RedactionMap []RedactionMapping

	// ProcessingTime is the time taken to perform the redaction
	ProcessingTime time.Duration
}

// TotalRedactions sums LabelCounts
func (r *RedactionResult) TotalRedactions() int {
	if r == nil {
		return 0
	}
	total := 0
	for _, n := range r.LabelCounts {
		total += n
	}
	return total
}

// Labels returns the labels with a non-zero count, sorted
func (r *RedactionResult) Labels() []string {
	if r == nil {
		return nil
	}
	labels := make([]string, 0, len(r.LabelCounts))
	for label, n := range r.LabelCounts {
		if n > 0 {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	return labels
}

// RedactionMapping represents a single overlay drawn on a page
type RedactionMapping struct {
	// Label is the catalog label or entity label that produced the overlay
	Label string

	// Page is the page number (1-based)
	Page int

	// Region is the area covered, in PDF user space
	Region BoundingBox
}

// BoundingBox represents a rectangular area in a document. X and Y are
// the lower-left corner in PDF user space.
type BoundingBox struct {
	// X is the left coordinate
	X float64

	// Y is the bottom coordinate
	Y float64

	// Width is the width of the box
	Width float64

	// Height is the height of the box
	Height float64
}

// Right returns the right edge
func (b BoundingBox) Right() float64 { return b.X + b.Width }

// Top returns the top edge
func (b BoundingBox) Top() float64 { return b.Y + b.Height }

// Empty reports whether the box has no area
func (b BoundingBox) Empty() bool { return b.Width <= 0 || b.Height <= 0 }

// Union returns the smallest box containing b and o
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	x := math.Min(b.X, o.X)
	y := math.Min(b.Y, o.Y)
	return BoundingBox{
		X:      x,
		Y:      y,
		Width:  math.Max(b.Right(), o.Right()) - x,
		Height: math.Max(b.Top(), o.Top()) - y,
	}
}

// ProcessedFile contains the results for a single processed file
type ProcessedFile struct {
	// OriginalPath is the path to the original file
	OriginalPath string

	// RedactedPath is the path to the redacted file
	RedactedPath string

	// RedactorUsed is the name of the redactor that processed the file
	RedactorUsed string

	// Result is the redaction result, nil on failure
	Result *RedactionResult

	// ProcessingTime is the time taken to process this file
	ProcessingTime time.Duration

	// Error contains any error that occurred during processing
	Error error
}
