// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdf

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/font"
	"golang.org/x/text/unicode/norm"

	"pii-redactor/internal/redactors"
)

const (
	// rowTolerance is the largest baseline difference, in points, between
	// glyphs on the same line
	rowTolerance = 3.0

	// wordGapRatio is the horizontal gap, relative to font size, that ends a word
	wordGapRatio = 0.3

	defaultFontSize = 10.0

	// fallbackAdvance is the estimated glyph advance, relative to font
	// size, for fonts without metrics
	fallbackAdvance = 0.5
)

// WordSource yields the words of each page of a document
type WordSource interface {
	PageCount() int
	PageWords(page int) ([]WordToken, error)
	Close() error
}

// ledongthucSource reads glyph positions with github.com/ledongthuc/pdf
type ledongthucSource struct {
	f *os.File
	r *pdf.Reader
}

// OpenWordSource opens path for word extraction
func OpenWordSource(path string) (WordSource, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening PDF: %w", err)
	}
	return &ledongthucSource{f: f, r: r}, nil
}

func (s *ledongthucSource) PageCount() int {
	return s.r.NumPage()
}

// PageWords extracts the words of a 1-based page. The reader panics on
// some malformed content streams; that is reported as an error.
func (s *ledongthucSource) PageWords(page int) (words []WordToken, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("error reading page %d: %v", page, r)
		}
	}()

	p := s.r.Page(page)
	if p.V.IsNull() {
		return nil, nil
	}

	texts := p.Content().Text
	glyphs := make([]glyph, 0, len(texts))
	for _, t := range texts {
		glyphs = append(glyphs, glyph{S: t.S, Font: t.Font, X: t.X, Y: t.Y, W: t.W, FontSize: t.FontSize})
	}
	return groupWords(placeGlyphs(glyphs)), nil
}

func (s *ledongthucSource) Close() error {
	return s.f.Close()
}

// glyph is one positioned text run as reported by the content stream
type glyph struct {
	S        string
	Font     string
	X, Y, W  float64
	FontSize float64
}

// placeGlyphs fills in advances the reader could not compute. A font
// without a /Widths array reports W == 0 and never moves the pen, so
// every glyph of a run lands on the same X. Each such glyph gets an
// estimated width, and the accumulated shortfall shifts the glyphs that
// follow on the same baseline until the content stream positions text
// somewhere else.
func placeGlyphs(glyphs []glyph) []glyph {
	out := make([]glyph, len(glyphs))
	var drift float64
	for i, g := range glyphs {
		if i > 0 {
			prev := glyphs[i-1]
			step := g.X - (prev.X + prev.W)
			if math.Abs(g.Y-prev.Y) > rowTolerance || math.Abs(step) > fontSizeOr(g.FontSize) {
				drift = 0
			}
		}
		g.X += drift
		if g.W == 0 {
			g.W = estimateAdvance(g.S, g.Font, g.FontSize)
			drift += g.W
		}
		out[i] = g
	}
	return out
}

// estimateAdvance returns the width of s from the standard 14 font
// metrics, or a size based estimate for any other font
func estimateAdvance(s, fontName string, size float64) float64 {
	size = fontSizeOr(size)
	if font.IsCoreFont(fontName) && isASCII(s) {
		if units := font.TextWidth(s, fontName, 1000); units > 0 {
			return units * size / 1000
		}
	}
	return fallbackAdvance * size * float64(utf8.RuneCountInString(s))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func fontSizeOr(size float64) float64 {
	if size <= 0 {
		return defaultFontSize
	}
	return size
}

// groupWords groups glyphs into lines by baseline, orders each line left
// to right and merges adjacent glyphs into words. Lines are numbered top
// to bottom.
func groupWords(glyphs []glyph) []WordToken {
	var runes []glyph
	for _, g := range glyphs {
		runes = append(runes, splitRunes(g)...)
	}
	if len(runes) == 0 {
		return nil
	}

	sort.SliceStable(runes, func(i, j int) bool { return runes[i].Y > runes[j].Y })

	var rows [][]glyph
	for _, g := range runes {
		if n := len(rows); n > 0 && math.Abs(rows[n-1][0].Y-g.Y) <= rowTolerance {
			rows[n-1] = append(rows[n-1], g)
			continue
		}
		rows = append(rows, []glyph{g})
	}

	var words []WordToken
	for line, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
		words = append(words, mergeRow(row, line)...)
	}
	return words
}

// splitRunes spreads a multi-rune glyph evenly over its width
func splitRunes(g glyph) []glyph {
	n := utf8.RuneCountInString(g.S)
	if n <= 1 {
		return []glyph{g}
	}
	width := g.W / float64(n)
	out := make([]glyph, 0, n)
	i := 0
	for _, r := range g.S {
		out = append(out, glyph{S: string(r), Font: g.Font, X: g.X + width*float64(i), Y: g.Y, W: width, FontSize: g.FontSize})
		i++
	}
	return out
}

func mergeRow(row []glyph, line int) []WordToken {
	var words []WordToken
	var text strings.Builder
	var startX, endX, baseline, fontSize float64

	flush := func() {
		if text.Len() == 0 {
			return
		}
		if fontSize <= 0 {
			fontSize = defaultFontSize
		}
		words = append(words, WordToken{
			Text: norm.NFKC.String(text.String()),
			Rect: redactors.BoundingBox{
				X:      startX,
				Y:      baseline - 0.2*fontSize,
				Width:  endX - startX,
				Height: fontSize,
			},
			Line: line,
		})
		text.Reset()
		fontSize = 0
	}

	for _, g := range row {
		if strings.TrimFunc(g.S, unicode.IsSpace) == "" {
			flush()
			continue
		}

		if text.Len() > 0 && g.X-endX > wordGapRatio*fontSizeOr(g.FontSize) {
			flush()
		}

		if text.Len() == 0 {
			startX, endX, baseline = g.X, g.X+g.W, g.Y
		} else {
			endX = math.Max(endX, g.X+g.W)
		}
		text.WriteString(g.S)
		fontSize = math.Max(fontSize, g.FontSize)
	}
	flush()
	return words
}
