// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// Modifier is a set of matching options applied to every pattern of a rule.
type Modifier uint8

const (
	// IgnoreCase matches letters case-insensitively
	IgnoreCase Modifier = 1 << iota
	// Multiline makes ^ and $ match at line boundaries
	Multiline
)

// Has reports whether all options in f are set
func (m Modifier) Has(f Modifier) bool {
	return m&f == f
}

// String returns the inline flag letters, e.g. "im"
func (m Modifier) String() string {
	var b strings.Builder
	if m.Has(IgnoreCase) {
		b.WriteByte('i')
	}
	if m.Has(Multiline) {
		b.WriteByte('m')
	}
	return b.String()
}

func (m Modifier) prefix() string {
	if m == 0 {
		return ""
	}
	return "(?" + m.String() + ")"
}

// Kind distinguishes single-pattern rules from alternative sets
type Kind int

const (
	KindSimple Kind = iota
	KindAlternatives
)

// String returns the string representation of the rule kind
func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindAlternatives:
		return "alternatives"
	default:
		return "unknown"
	}
}

// leadGroup names the capture group holding context that must survive
// replacement. It stands in for a look-behind assertion, which RE2 lacks.
const leadGroup = "lead"

// Rule pairs a matcher with the label that replaces its matches.
type Rule struct {
	kind      Kind
	label     string
	modifiers Modifier
	sources   []string

	// simple rules
	re   *regexp.Regexp
	lead int

	// alternative rules; union preserves listed order at each position
	alternatives []*regexp.Regexp
	union        *regexp.Regexp
}

// Target is one match located in a read-only snapshot. Start and End bound
// the whole match; TextStart and TextEnd bound the part to black out.
type Target struct {
	Start     int
	End       int
	TextStart int
	TextEnd   int
	Text      string
}

// Simple compiles a single-pattern rule
func Simple(pattern, label string, modifiers Modifier) (Rule, error) {
	re, err := regexp.Compile(modifiers.prefix() + pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("compile %s rule: %w", label, err)
	}
	return Rule{
		kind:      KindSimple,
		label:     label,
		modifiers: modifiers,
		sources:   []string{pattern},
		re:        re,
		lead:      re.SubexpIndex(leadGroup),
	}, nil
}

// Alternatives compiles a composite rule. At each position the leftmost
// match wins; among alternatives starting at the same position the one
// listed first wins.
func Alternatives(patterns []string, label string, modifiers Modifier) (Rule, error) {
	if len(patterns) == 0 {
		return Rule{}, fmt.Errorf("compile %s rule: no alternatives", label)
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	grouped := make([]string, 0, len(patterns))
	for i, p := range patterns {
		re, err := regexp.Compile(modifiers.prefix() + p)
		if err != nil {
			return Rule{}, fmt.Errorf("compile %s rule alternative %d: %w", label, i, err)
		}
		compiled = append(compiled, re)
		grouped = append(grouped, "(?:"+p+")")
	}

	union, err := regexp.Compile(modifiers.prefix() + strings.Join(grouped, "|"))
	if err != nil {
		return Rule{}, fmt.Errorf("compile %s rule: %w", label, err)
	}

	return Rule{
		kind:         KindAlternatives,
		label:        label,
		modifiers:    modifiers,
		sources:      append([]string(nil), patterns...),
		lead:         -1,
		alternatives: compiled,
		union:        union,
	}, nil
}

// MustSimple is like Simple but panics if the pattern does not compile
func MustSimple(pattern, label string, modifiers Modifier) Rule {
	r, err := Simple(pattern, label, modifiers)
	if err != nil {
		panic(err)
	}
	return r
}

// MustAlternatives is like Alternatives but panics if a pattern does not compile
func MustAlternatives(patterns []string, label string, modifiers Modifier) Rule {
	r, err := Alternatives(patterns, label, modifiers)
	if err != nil {
		panic(err)
	}
	return r
}

// Kind reports whether the rule is simple or a set of alternatives
func (r Rule) Kind() Kind { return r.kind }

// Label returns the bracketed replacement label
func (r Rule) Label() string { return r.label }

// Modifiers returns the flags the rule's patterns are compiled with
func (r Rule) Modifiers() Modifier { return r.modifiers }

// Patterns returns the uncompiled source patterns in listed order
func (r Rule) Patterns() []string { return append([]string(nil), r.sources...) }

// Apply replaces every non-overlapping leftmost match with the rule's label
func (r Rule) Apply(buffer string) string {
	out, _ := r.apply(buffer)
	return out
}

func (r Rule) apply(buffer string) (string, int) {
	re := r.re
	if r.kind == KindAlternatives {
		re = r.union
	}
	if re == nil {
		return buffer, 0
	}

	locs := re.FindAllStringSubmatchIndex(buffer, -1)
	if len(locs) == 0 {
		return buffer, 0
	}

	var b strings.Builder
	b.Grow(len(buffer))
	last := 0
	for _, loc := range locs {
		b.WriteString(buffer[last:loc[0]])
		if r.lead > 0 && loc[2*r.lead] >= 0 {
			b.WriteString(buffer[loc[2*r.lead]:loc[2*r.lead+1]])
		}
		b.WriteString(r.label)
		last = loc[1]
	}
	b.WriteString(buffer[last:])
	return b.String(), len(locs)
}

// Targets lists the matches of a simple rule in snapshot without modifying
// it. Alternative rules return nil; they take no part in geometry resolution.
func (r Rule) Targets(snapshot string) []Target {
	if r.kind != KindSimple || r.re == nil {
		return nil
	}

	var targets []Target
	for _, loc := range r.re.FindAllStringSubmatchIndex(snapshot, -1) {
		t := Target{Start: loc[0], End: loc[1], TextStart: loc[0], TextEnd: loc[1]}
		switch {
		case r.lead > 0:
			if loc[2*r.lead+1] >= 0 {
				t.TextStart = loc[2*r.lead+1]
			}
		case r.re.NumSubexp() > 0 && loc[2] >= 0:
			t.TextStart, t.TextEnd = loc[2], loc[3]
		}
		t.Text = snapshot[t.TextStart:t.TextEnd]
		if strings.TrimSpace(t.Text) == "" {
			continue
		}
		targets = append(targets, t)
	}
	return targets
}

// MatchingAlternative returns the index of the first listed alternative
// matching s in full, or -1. Simple rules report 0 on a full match.
func (r Rule) MatchingAlternative(s string) int {
	if r.kind == KindSimple {
		if loc := r.re.FindStringIndex(s); loc != nil && loc[0] == 0 && loc[1] == len(s) {
			return 0
		}
		return -1
	}
	for i, re := range r.alternatives {
		if loc := re.FindStringIndex(s); loc != nil && loc[0] == 0 && loc[1] == len(s) {
			return i
		}
	}
	return -1
}
