// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-redactor/internal/redactors"
)

func glyphs(s string, x, y, advance, size float64) []glyph {
	var out []glyph
	for _, r := range s {
		out = append(out, glyph{S: string(r), X: x, Y: y, W: advance, FontSize: size})
		x += advance
	}
	return out
}

func TestGroupWords(t *testing.T) {
	var in []glyph
	// second line first, to check ordering by baseline
	in = append(in, glyphs("SSN", 72, 680, 5, 10)...)
	in = append(in, glyphs("Mr. Smith", 72, 700, 5, 10)...)
	in = append(in, glyphs("Jr", 130, 701, 5, 10)...)

	words := groupWords(in)
	require.Len(t, words, 4)

	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	assert.Equal(t, []string{"Mr.", "Smith", "Jr", "SSN"}, texts)

	assert.Equal(t, 0, words[0].Line)
	assert.Equal(t, 1, words[3].Line)
	assert.Equal(t, redactors.BoundingBox{X: 72, Y: 698, Width: 15, Height: 10}, words[0].Rect)
	assert.Equal(t, redactors.BoundingBox{X: 92, Y: 698, Width: 25, Height: 10}, words[1].Rect)
}

func TestGroupWordsGapSplitsWords(t *testing.T) {
	in := append(glyphs("ab", 10, 100, 5, 10), glyphs("cd", 24, 100, 5, 10)...)
	words := groupWords(in)
	require.Len(t, words, 2)
	assert.Equal(t, "ab", words[0].Text)
	assert.Equal(t, "cd", words[1].Text)

	// a gap within 0.3 of the font size keeps the word together
	in = append(glyphs("ab", 10, 100, 5, 10), glyphs("cd", 22, 100, 5, 10)...)
	require.Len(t, groupWords(in), 1)
}

func TestGroupWordsSplitsRuns(t *testing.T) {
	words := groupWords([]glyph{{S: "Jane Doe", X: 0, Y: 50, W: 80, FontSize: 12}})
	require.Len(t, words, 2)
	assert.Equal(t, "Jane", words[0].Text)
	assert.Equal(t, "Doe", words[1].Text)
	assert.InDelta(t, 50, words[1].Rect.X, 1e-9)
	assert.InDelta(t, 30, words[1].Rect.Width, 1e-9)
}

func TestGroupWordsNormalizes(t *testing.T) {
	words := groupWords([]glyph{{S: "ﬁle", X: 0, Y: 0, W: 15, FontSize: 10}})
	require.Len(t, words, 1)
	assert.Equal(t, "file", words[0].Text)
	assert.Empty(t, groupWords(nil))
}

func TestPlaceGlyphsEstimatesMissingAdvance(t *testing.T) {
	// a run in a font without widths: every glyph on the pen position
	in := []glyph{
		{S: "A", Font: "Helvetica", X: 72, Y: 700, FontSize: 10},
		{S: "B", Font: "Helvetica", X: 72, Y: 700, FontSize: 10},
		{S: "x", Font: "Embedded", X: 72, Y: 700, FontSize: 10},
		// positioned elsewhere on the next line
		{S: "C", Font: "Helvetica", X: 72, Y: 680, FontSize: 10},
	}

	out := placeGlyphs(in)
	require.Len(t, out, 4)
	assert.InDelta(t, 72, out[0].X, 1e-9)
	assert.InDelta(t, 6.67, out[0].W, 1e-9)
	assert.InDelta(t, 78.67, out[1].X, 1e-9)
	assert.InDelta(t, 85.34, out[2].X, 1e-9)
	assert.InDelta(t, 5, out[2].W, 1e-9)
	assert.InDelta(t, 72, out[3].X, 1e-9)

	words := groupWords(out)
	require.Len(t, words, 2)
	assert.Equal(t, "ABx", words[0].Text)
	assert.InDelta(t, 18.34, words[0].Rect.Width, 1e-9)
}

func TestPlaceGlyphsKeepsReportedWidths(t *testing.T) {
	in := glyphs("ab", 10, 100, 5, 10)
	assert.Equal(t, in, placeGlyphs(in))
}

func TestEstimateAdvance(t *testing.T) {
	assert.InDelta(t, 5.56*1.2, estimateAdvance("1", "Helvetica", 12), 1e-9)
	assert.InDelta(t, 6, estimateAdvance("é", "Helvetica", 12), 1e-9)
	assert.InDelta(t, 5, estimateAdvance("w", "SomeEmbeddedFont", 0), 1e-9)
}
