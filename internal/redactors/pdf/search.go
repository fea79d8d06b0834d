// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdf

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"pii-redactor/internal/entity"
	"pii-redactor/internal/redactors"
)

// pageIndex is the page-native text of a page: its original words joined
// by single spaces, with the byte span of every word.
type pageIndex struct {
	text  string
	words []WordToken
	spans []wordSpan
}

type wordSpan struct {
	word       int
	start, end int
}

func newPageIndex(words []WordToken) *pageIndex {
	var b strings.Builder
	spans := make([]wordSpan, 0, len(words))
	for i, w := range words {
		if w.Text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		start := b.Len()
		b.WriteString(w.Text)
		spans = append(spans, wordSpan{word: i, start: start, end: b.Len()})
	}
	return &pageIndex{text: b.String(), words: words, spans: spans}
}

// SearchPhrase finds every case-insensitive occurrence of phrase among the
// page's words and returns one rectangle per line per occurrence. Runs of
// whitespace in phrase match a single word gap.
func SearchPhrase(words []WordToken, phrase string) []redactors.BoundingBox {
	return newPageIndex(words).search(phrase)
}

// SearchPerson resolves a PERSON name. Multi-word names are searched as a
// phrase; a single word must equal a whole token. Both forms also match
// every honorific-prefixed variant ("Dr. Smith").
func SearchPerson(words []WordToken, name string) []redactors.BoundingBox {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return nil
	}

	idx := newPageIndex(words)
	var rects []redactors.BoundingBox
	if strings.Contains(name, " ") {
		rects = idx.search(name)
	} else {
		for _, w := range words {
			if strings.TrimFunc(w.Text, unicode.IsPunct) == name {
				rects = append(rects, w.Rect)
			}
		}
	}
	for _, variant := range entity.HonorificVariants(name) {
		rects = append(rects, idx.search(variant)...)
	}
	return dedupe(rects)
}

func (p *pageIndex) search(phrase string) []redactors.BoundingBox {
	needle := asciiLower(strings.Join(strings.Fields(phrase), " "))
	if needle == "" {
		return nil
	}
	haystack := asciiLower(p.text)

	var rects []redactors.BoundingBox
	for from := 0; from < len(haystack); {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(needle)
		rects = append(rects, p.rectsFor(start, end)...)
		from = end
	}
	return rects
}

// rectsFor maps bytes [start, end) of the page text onto word rectangles,
// merging the pieces that share a line.
func (p *pageIndex) rectsFor(start, end int) []redactors.BoundingBox {
	var out []redactors.BoundingBox
	lastLine := -1
	for _, s := range p.spans {
		if s.end <= start {
			continue
		}
		if s.start >= end {
			break
		}
		w := p.words[s.word]
		r := subRect(w, max(start, s.start)-s.start, min(end, s.end)-s.start)
		if len(out) > 0 && w.Line == lastLine {
			out[len(out)-1] = out[len(out)-1].Union(r)
		} else {
			out = append(out, r)
		}
		lastLine = w.Line
	}
	return out
}

// subRect returns the part of w's rectangle covering bytes [a, b) of its
// text, assuming every rune has the same advance width.
func subRect(w WordToken, a, b int) redactors.BoundingBox {
	if a == 0 && b == len(w.Text) {
		return w.Rect
	}
	total := utf8.RuneCountInString(w.Text)
	if total == 0 {
		return w.Rect
	}
	unit := w.Rect.Width / float64(total)
	before := utf8.RuneCountInString(w.Text[:a])
	inside := utf8.RuneCountInString(w.Text[a:b])
	return redactors.BoundingBox{
		X:      w.Rect.X + unit*float64(before),
		Y:      w.Rect.Y,
		Width:  unit * float64(inside),
		Height: w.Rect.Height,
	}
}

func dedupe(rects []redactors.BoundingBox) []redactors.BoundingBox {
	seen := make(map[redactors.BoundingBox]bool, len(rects))
	out := rects[:0]
	for _, r := range rects {
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}
