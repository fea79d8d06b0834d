// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package entity defines the contract between the redaction engines and the
// recognizer that finds free-form names, dates and places.
package entity

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Category classifies a recognized span
type Category int

const (
	Person Category = iota
	Date
	Geo
)

// Replacement labels for recognized entities
const (
	LabelPerson = "[NAME]"
	LabelDate   = "[DATE]"
	LabelGeo    = "[GPE]"
)

// Categories lists every category in the order engines process them
var Categories = []Category{Person, Date, Geo}

// String returns the string representation of the category
func (c Category) String() string {
	switch c {
	case Person:
		return "PERSON"
	case Date:
		return "DATE"
	case Geo:
		return "GEO"
	default:
		return "UNKNOWN"
	}
}

// Label returns the replacement label for the category
func (c Category) Label() string {
	switch c {
	case Person:
		return LabelPerson
	case Date:
		return LabelDate
	case Geo:
		return LabelGeo
	default:
		return "[REDACTED]"
	}
}

// ParseCategory converts a category name back into a Category
func ParseCategory(s string) (Category, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PERSON":
		return Person, nil
	case "DATE":
		return Date, nil
	case "GEO", "GPE", "LOCATION":
		return Geo, nil
	default:
		return 0, fmt.Errorf("unknown entity category: %q", s)
	}
}

// MarshalJSON encodes the category by name
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a category name
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Span is one recognized entity. Offset is the byte offset of Text in the
// recognized input, or -1 when the recognizer does not report positions.
type Span struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
	Offset   int      `json:"offset"`
}

// Recognizer finds entity spans in text. Implementations must be safe for
// concurrent use; the call blocks until the spans are available.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]Span, error)
}

// Func adapts a plain function to the Recognizer interface
type Func func(ctx context.Context, text string) ([]Span, error)

// Recognize calls f(ctx, text)
func (f Func) Recognize(ctx context.Context, text string) ([]Span, error) {
	return f(ctx, text)
}

// None is a recognizer that never finds anything
var None Recognizer = Func(func(context.Context, string) ([]Span, error) { return nil, nil })

// Texts returns the distinct non-empty texts of spans in category c, in
// first-seen order
func Texts(spans []Span, c Category) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range spans {
		text := strings.TrimSpace(s.Text)
		if s.Category != c || text == "" || seen[text] {
			continue
		}
		seen[text] = true
		out = append(out, text)
	}
	return out
}

// LongestFirst returns a copy of texts ordered by descending length, so a
// longer text is substituted before any shorter text it contains
func LongestFirst(texts []string) []string {
	sorted := append([]string(nil), texts...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	return sorted
}
