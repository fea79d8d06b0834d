// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package catalog holds the ordered battery of redaction rules. A Catalog is
// immutable once built and safe for concurrent use without locking.
package catalog

import "sync"

// Catalog is an ordered, read-only list of rules.
type Catalog struct {
	rules []Rule
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// New builds a catalog evaluating rules in the given order
func New(rules ...Rule) *Catalog {
	return &Catalog{rules: append([]Rule(nil), rules...)}
}

// Default returns the process-wide catalog of built-in rules
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(defaultRules()...)
	})
	return defaultCatalog
}

// Apply runs every rule once, in order, each against the output of the
// previous one. Earlier rules may consume text later rules would match.
func (c *Catalog) Apply(buffer string) string {
	out, _ := c.ApplyCounted(buffer)
	return out
}

// ApplyCounted is Apply that also reports how many substitutions each label made
func (c *Catalog) ApplyCounted(buffer string) (string, map[string]int) {
	counts := make(map[string]int)
	for _, r := range c.rules {
		var n int
		buffer, n = r.apply(buffer)
		if n > 0 {
			counts[r.label] += n
		}
	}
	return buffer, counts
}

// Rules returns a copy of the rules in evaluation order
func (c *Catalog) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Len returns the number of rules
func (c *Catalog) Len() int {
	return len(c.rules)
}

// Labels returns each distinct label once, in first-seen order
func (c *Catalog) Labels() []string {
	seen := make(map[string]bool, len(c.rules))
	labels := make([]string, 0, len(c.rules))
	for _, r := range c.rules {
		if !seen[r.label] {
			seen[r.label] = true
			labels = append(labels, r.label)
		}
	}
	return labels
}

// RulesFor returns every rule emitting label, in evaluation order
func (c *Catalog) RulesFor(label string) []Rule {
	var out []Rule
	for _, r := range c.rules {
		if r.label == label {
			out = append(out, r)
		}
	}
	return out
}

// Without returns a new catalog with every rule for the given labels removed
func (c *Catalog) Without(labels ...string) *Catalog {
	if len(labels) == 0 {
		return c
	}
	drop := make(map[string]bool, len(labels))
	for _, l := range labels {
		drop[l] = true
	}
	kept := make([]Rule, 0, len(c.rules))
	for _, r := range c.rules {
		if !drop[r.label] {
			kept = append(kept, r)
		}
	}
	return &Catalog{rules: kept}
}
