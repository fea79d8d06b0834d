// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdf

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pii-redactor/internal/redactors"
)

// Color is an RGB fill colour with components in [0, 1]
type Color struct {
	R, G, B float64
}

// Black is the default overlay colour
var Black = Color{}

// ParseColor reads "#rrggbb" or "rrggbb"
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}, nil
}

// Canvas receives the overlays of committed pages and writes the result.
// Overlays only cover text visually; the text stays in the content stream.
type Canvas interface {
	Fill(page int, rects []redactors.BoundingBox) error
	Save(outputPath string) error
}

// pdfcpuCanvas draws filled rectangles over page content with pdfcpu
type pdfcpuCanvas struct {
	ctx  *model.Context
	fill Color
}

// OpenCanvas reads and validates the document at path
func OpenCanvas(path string, fill Color) (Canvas, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("PDF validation failed: %w", err)
	}
	return &pdfcpuCanvas{ctx: ctx, fill: fill}, nil
}

// Fill wraps the page's existing content in q/Q and appends a stream that
// paints rects on top of it.
func (c *pdfcpuCanvas) Fill(page int, rects []redactors.BoundingBox) error {
	if len(rects) == 0 {
		return nil
	}

	pageDict, _, _, err := c.ctx.PageDict(page, false)
	if err != nil {
		return fmt.Errorf("failed to get page %d: %w", page, err)
	}
	if pageDict == nil {
		return fmt.Errorf("page %d not found", page)
	}

	pre, err := c.newContentStream([]byte("q\n"))
	if err != nil {
		return err
	}
	post, err := c.newContentStream(overlayOps(rects, c.fill))
	if err != nil {
		return err
	}

	contents := types.Array{*pre}
	if obj, found := pageDict.Find("Contents"); found && obj != nil {
		switch o := obj.(type) {
		case types.IndirectRef:
			resolved, err := c.ctx.Dereference(o)
			if err != nil {
				return fmt.Errorf("failed to resolve page %d contents: %w", page, err)
			}
			if arr, ok := resolved.(types.Array); ok {
				contents = append(contents, arr...)
			} else {
				contents = append(contents, o)
			}
		case types.Array:
			contents = append(contents, o...)
		}
	}
	contents = append(contents, *post)

	pageDict.Update("Contents", contents)
	return nil
}

func (c *pdfcpuCanvas) newContentStream(buf []byte) (*types.IndirectRef, error) {
	sd, err := c.ctx.NewStreamDictForBuf(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create content stream: %w", err)
	}
	if err := sd.Encode(); err != nil {
		return nil, fmt.Errorf("failed to encode content stream: %w", err)
	}
	ref, err := c.ctx.IndRefForNewObject(*sd)
	if err != nil {
		return nil, fmt.Errorf("failed to add content stream: %w", err)
	}
	return ref, nil
}

// Save compacts the document and writes it with owner-only permissions
func (c *pdfcpuCanvas) Save(outputPath string) error {
	if err := api.OptimizeContext(c.ctx); err != nil {
		return fmt.Errorf("failed to optimize PDF: %w", err)
	}
	if err := api.WriteContextFile(c.ctx, outputPath); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return os.Chmod(outputPath, 0600)
}

// overlayOps restores the state saved before the page content and paints
// rects as one filled path. Streams of a page are concatenated as is, so
// the ops begin with a newline to keep them apart from the last operator
// of the original content.
func overlayOps(rects []redactors.BoundingBox, fill Color) []byte {
	var b bytes.Buffer
	b.WriteString("\nQ\nq\n")
	fmt.Fprintf(&b, "%.3f %.3f %.3f rg\n", fill.R, fill.G, fill.B)
	for _, r := range rects {
		fmt.Fprintf(&b, "%.2f %.2f %.2f %.2f re\n", r.X, r.Y, r.Width, r.Height)
	}
	b.WriteString("f\nQ\n")
	return b.Bytes()
}
