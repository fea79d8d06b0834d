// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package lexicon

import (
	"regexp"
	"sort"
	"strings"

	"pii-redactor/internal/entity"
)

// word is one capitalized name-like token: Smith, O'Connor, Mary-Jane
const word = `[A-Z][a-z]*(?:'[A-Z]?[a-z]+)*(?:-[A-Z][a-z]+)*`

const month = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

const weekday = `(?:Mon|Tues|Wednes|Thurs|Fri|Satur|Sun)day`

// Pattern is a compiled candidate matcher with metadata
type Pattern struct {
	Pattern     *regexp.Regexp
	Name        string
	Description string
	Category    entity.Category
	Priority    int
}

// candidate is a span proposed by a pattern, before overlap resolution
type candidate struct {
	start    int
	end      int
	category entity.Category
	priority int
}

// patternDef is the uncompiled form of a Pattern
type patternDef struct {
	name        string
	pattern     string
	description string
	category    entity.Category
	priority    int
}

func compilePatterns(defs []patternDef) []Pattern {
	patterns := make([]Pattern, len(defs))
	for i, def := range defs {
		patterns[i] = Pattern{
			Pattern:     regexp.MustCompile(def.pattern),
			Name:        def.name,
			Description: def.description,
			Category:    def.category,
			Priority:    def.priority,
		}
	}
	return patterns
}

// namePatterns propose PERSON spans. Submatch 1 is the name itself.
var namePatterns = compilePatterns([]patternDef{
	{
		name:        "name_with_title",
		pattern:     `\b(?:Mr|Mrs|Ms|Miss|Mx|Dr|Prof)\.?[ \t]+(` + word + `(?:[ \t]+(?:[A-Z]\.[ \t]+)?` + word + `){0,2})\b`,
		description: "Title followed by one to three name words: Dr. Jane Doe",
		category:    entity.Person,
		priority:    9,
	},
	{
		name:        "last_comma_first",
		pattern:     `\b(` + word + `,[ \t]+` + word + `)\b`,
		description: "Directory style: Doe, Jane",
		category:    entity.Person,
		priority:    8,
	},
	{
		name:        "capitalized_run",
		pattern:     `\b(` + word + `(?:[ \t]+(?:[A-Z]\.[ \t]+)?` + word + `){1,3})\b`,
		description: "Run of capitalized words, trimmed to a known first and last name",
		category:    entity.Person,
		priority:    5,
	},
})

// datePatterns over-generate on purpose; relative expressions are removed
// later by the date filter.
var datePatterns = compilePatterns([]patternDef{
	{
		name:        "weekday_month_day",
		pattern:     `\b` + weekday + `,?\s+` + month + `\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:,\s*\d{2,4})?\b`,
		description: "Monday, June 5, 2023",
		category:    entity.Date,
		priority:    7,
	},
	{
		name:        "month_day_year",
		pattern:     `\b` + month + `\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?\b`,
		description: "June 5 / June 5th, 2023",
		category:    entity.Date,
		priority:    6,
	},
	{
		name:        "day_month_year",
		pattern:     `\b\d{1,2}(?:st|nd|rd|th)?\s+(?:of\s+)?` + month + `\.?(?:,?\s+\d{4})?\b`,
		description: "5 June 2023",
		category:    entity.Date,
		priority:    6,
	},
	{
		name:        "month_year",
		pattern:     `\b` + month + `\.?\s+\d{4}\b`,
		description: "June 2023",
		category:    entity.Date,
		priority:    5,
	},
	{
		name:        "numeric_date",
		pattern:     `\b(?:\d{1,2}[/.-]\d{1,2}[/.-](?:\d{4}|\d{2})|\d{4}-\d{2}-\d{2})\b`,
		description: "12/25/2020, 2021-04-30",
		category:    entity.Date,
		priority:    6,
	},
	{
		name:        "relative_date",
		pattern:     `(?i)\b(?:(?:\d+|a|an|one|two|three|four|five|six|seven|eight|nine|ten|a few|several)\s+(?:days?|weeks?|months?|years?)\s+(?:ago|from now)|(?:next|last|this|coming|previous|past)\s+(?:week|month|year|` + weekday + `)|today|yesterday|tomorrow)\b`,
		description: "Relative expressions: three years ago, next week",
		category:    entity.Date,
		priority:    4,
	},
})

// placePattern builds a single alternation over the gazetteer, longest
// entries first so "New York City" wins over "New York".
func placePattern(places []string) *regexp.Regexp {
	sorted := append([]string(nil), places...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	quoted := make([]string, len(sorted))
	for i, p := range sorted {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
