// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdf

import (
	"strings"

	"pii-redactor/internal/redactors"
)

// WordToken is one word on a page with its rectangle in PDF user space
type WordToken struct {
	Text string
	Rect redactors.BoundingBox
	// Line groups tokens sharing a baseline, in reading order
	Line int
}

// TokenList is the mutable search view of a page. Its flat string is the
// space-joined text of every non-empty token; removing text from the flat
// string trims the tokens underneath it.
type TokenList struct {
	texts []string
}

// NewTokenList copies the texts of words
func NewTokenList(words []WordToken) *TokenList {
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	return &TokenList{texts: texts}
}

// Len returns the number of tokens, including emptied ones
func (l *TokenList) Len() int {
	return len(l.texts)
}

// At returns the current text of token i
func (l *TokenList) At(i int) string {
	return l.texts[i]
}

// String returns the flat search string
func (l *TokenList) String() string {
	var b strings.Builder
	for _, t := range l.texts {
		if t == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t)
	}
	return b.String()
}

// Remove deletes bytes [start, end) of the flat string. Each token
// overlapping the range loses the overlapping part.
func (l *TokenList) Remove(start, end int) {
	if start >= end {
		return
	}
	pos := 0
	first := true
	for i, t := range l.texts {
		if t == "" {
			continue
		}
		if !first {
			pos++ // separator
		}
		first = false

		ts, te := pos, pos+len(t)
		pos = te
		if te <= start {
			continue
		}
		if ts >= end {
			break
		}

		cutStart := max(start, ts) - ts
		cutEnd := min(end, te) - ts
		l.texts[i] = t[:cutStart] + t[cutEnd:]
	}
}

// RemoveAll deletes every case-insensitive occurrence of s from the flat
// string and reports how many were removed.
func (l *TokenList) RemoveAll(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	removed := 0
	for {
		flat := l.String()
		idx := indexFold(flat, s)
		if idx < 0 {
			return removed
		}
		l.Remove(idx, idx+len(s))
		removed++
	}
}

// Contains reports whether the flat string holds s, ignoring case
func (l *TokenList) Contains(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && indexFold(l.String(), s) >= 0
}

// indexFold is a case-insensitive strings.Index over byte offsets of s.
// Folding only changes ASCII letters, so offsets are preserved.
func indexFold(s, substr string) int {
	return strings.Index(asciiLower(s), asciiLower(substr))
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
