// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package lexicon is an offline entity recognizer built from embedded name
// and place lists plus date-shaped patterns. It needs no model files and no
// network access.
package lexicon

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"pii-redactor/internal/entity"
	"pii-redactor/internal/observability"
)

var wordRe = regexp.MustCompile(word)

// Recognizer finds PERSON, DATE and GEO spans by lookup and pattern
type Recognizer struct {
	db       *Databases
	places   *regexp.Regexp
	observer *observability.StandardObserver
	logger   *zap.Logger
}

// New creates a recognizer backed by the embedded word lists
func New(observer *observability.StandardObserver) (*Recognizer, error) {
	db, err := LoadDatabases()
	if err != nil {
		return nil, err
	}
	return &Recognizer{
		db:       db,
		places:   placePattern(db.Places),
		observer: observer,
		logger:   observer.Logger("lexicon_recognizer"),
	}, nil
}

// GetComponentName returns the component name for observability
func (r *Recognizer) GetComponentName() string {
	return "lexicon_recognizer"
}

// Recognize returns non-overlapping spans ordered by offset
func (r *Recognizer) Recognize(ctx context.Context, text string) ([]entity.Span, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var finishTiming func(bool, map[string]interface{})
	if r.observer != nil {
		finishTiming = r.observer.StartTiming("lexicon_recognizer", "recognize", "")
	}

	var candidates []candidate
	candidates = append(candidates, r.names(text)...)
	candidates = append(candidates, r.dates(text)...)
	candidates = append(candidates, r.placesIn(text)...)

	kept := resolveOverlaps(candidates)
	spans := make([]entity.Span, 0, len(kept))
	for _, c := range kept {
		spans = append(spans, entity.Span{
			Text:     text[c.start:c.end],
			Category: c.category,
			Offset:   c.start,
		})
	}

	r.logger.Debug("recognized entities",
		zap.Int("candidates", len(candidates)),
		zap.Int("spans", len(spans)))

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"content_length": len(text),
			"span_count":     len(spans),
		})
	}
	return spans, nil
}

func (r *Recognizer) names(text string) []candidate {
	var out []candidate
	for _, p := range namePatterns {
		for _, loc := range p.Pattern.FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[2], loc[3]
			if start < 0 {
				continue
			}
			name := text[start:end]

			switch p.Name {
			case "name_with_title":
				out = append(out, candidate{start: start, end: end, category: entity.Person, priority: p.Priority})
			case "last_comma_first":
				last, first, _ := strings.Cut(name, ",")
				if r.db.IsLastName(last) && r.db.IsFirstName(strings.TrimSpace(first)) {
					out = append(out, candidate{start: start, end: end, category: entity.Person, priority: p.Priority})
				}
			default:
				out = append(out, r.trimRun(name, start, p.Priority)...)
			}
		}
	}
	return out
}

// trimRun finds "First [Middle] Last" windows inside a run of capitalized
// words, so "Contact John Smith" yields "John Smith".
func (r *Recognizer) trimRun(run string, offset, priority int) []candidate {
	tokens := wordRe.FindAllStringIndex(run, -1)

	var out []candidate
	for i := 0; i < len(tokens); i++ {
		if !r.db.IsFirstName(run[tokens[i][0]:tokens[i][1]]) {
			continue
		}
		last := i + 3
		if last > len(tokens)-1 {
			last = len(tokens) - 1
		}
		for j := last; j > i; j-- {
			if r.db.IsLastName(run[tokens[j][0]:tokens[j][1]]) {
				out = append(out, candidate{
					start:    offset + tokens[i][0],
					end:      offset + tokens[j][1],
					category: entity.Person,
					priority: priority,
				})
				i = j
				break
			}
		}
	}
	return out
}

func (r *Recognizer) dates(text string) []candidate {
	var out []candidate
	for _, p := range datePatterns {
		for _, loc := range p.Pattern.FindAllStringIndex(text, -1) {
			out = append(out, candidate{start: loc[0], end: loc[1], category: entity.Date, priority: p.Priority})
		}
	}
	return out
}

func (r *Recognizer) placesIn(text string) []candidate {
	var out []candidate
	for _, loc := range r.places.FindAllStringIndex(text, -1) {
		out = append(out, candidate{start: loc[0], end: loc[1], category: entity.Geo, priority: 3})
	}
	return out
}

// resolveOverlaps keeps the highest priority, then longest, candidate of
// each overlapping group and returns the survivors ordered by start.
func resolveOverlaps(candidates []candidate) []candidate {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.priority != b.priority {
			return a.priority > b.priority
		}
		if a.end-a.start != b.end-b.start {
			return a.end-a.start > b.end-b.start
		}
		return a.start < b.start
	})

	var kept []candidate
	for _, c := range candidates {
		overlaps := false
		for _, k := range kept {
			if c.start < k.end && k.start < c.end {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, c)
		}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].start < kept[j].start })
	return kept
}
