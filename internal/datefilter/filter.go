// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package datefilter decides which recognized DATE spans are absolute
// calendar dates worth redacting. Relative expressions such as "three
// years ago" are rejected.
package datefilter

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"pii-redactor/internal/entity"
)

// weekdayDate is accepted without further checks; generic parsers tend to
// misread the leading weekday.
var weekdayDate = regexp.MustCompile(`^\b(?:(?:Mon|Tues|Wednes|Thurs|Fri|Satur|Sun)day),?\s+(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t|tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\s+\d{1,2}(?:,\s*\d{2,4})?\b`)

// RelativeKeywords mark a span as relative time. Matching is by lowercase
// substring, so "Sunday" contains "day"; such spans only survive through the
// weekday pattern.
var RelativeKeywords = []string{
	"ago", "from now", "next", "last", "past", "future",
	"today", "yesterday", "tomorrow", "this", "coming", "previous",
	"day", "days", "month", "months", "year", "years",
	"week", "weeks",
}

var (
	ordinalSuffix = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)\b`)
	fillerWords   = regexp.MustCompile(`(?i)^(?:on|the|of|at|since|until|by)\s+|\s+(?:of)\s+`)
	fourDigitYear = regexp.MustCompile(`\b\d{4}\b`)
)

// Filter applies the three-stage plausibility check
type Filter struct {
	now func() time.Time
}

// New creates a filter using the wall clock to fill in missing years
func New() *Filter {
	return &Filter{now: time.Now}
}

// NewWithClock creates a filter with a fixed notion of "now"
func NewWithClock(now func() time.Time) *Filter {
	return &Filter{now: now}
}

// Filter returns the texts of DATE spans that look like absolute dates, in
// first-seen order without duplicates. Spans of other categories are ignored.
func (f *Filter) Filter(spans []entity.Span) []string {
	var dates []string
	for _, text := range entity.Texts(spans, entity.Date) {
		if f.Accept(text) {
			dates = append(dates, text)
		}
	}
	return dates
}

// Accept reports whether a single candidate is an absolute date
func (f *Filter) Accept(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	if weekdayDate.MatchString(text) {
		return true
	}

	lower := strings.ToLower(text)
	for _, keyword := range RelativeKeywords {
		if strings.Contains(lower, keyword) {
			return false
		}
	}

	return f.parses(text)
}

// parses is a fuzzy parse: the raw text first, then with ordinals and
// filler words removed, then with the current year appended when no
// four-digit year is present.
func (f *Filter) parses(text string) bool {
	candidates := []string{text}

	cleaned := ordinalSuffix.ReplaceAllString(text, "$1")
	cleaned = fillerWords.ReplaceAllString(cleaned, " ")
	cleaned = strings.Join(strings.Fields(strings.Trim(cleaned, " .,;:")), " ")
	if cleaned != "" && cleaned != text {
		candidates = append(candidates, cleaned)
	}
	if cleaned != "" && !fourDigitYear.MatchString(cleaned) {
		candidates = append(candidates, cleaned+", "+strconv.Itoa(f.now().Year()))
	}

	for _, c := range candidates {
		if parseAny(c) {
			return true
		}
	}
	return false
}

// parseAny treats a parser panic on malformed input as a failed parse
func parseAny(s string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	_, err := dateparse.ParseAny(s, dateparse.PreferMonthFirst(true))
	return err == nil
}
