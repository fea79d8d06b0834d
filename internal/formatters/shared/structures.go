// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"fmt"
	"sort"
	"strings"
)

// SortedLabels returns the labels of counts with a non-zero count, sorted
func SortedLabels(counts map[string]int) []string {
	labels := make([]string, 0, len(counts))
	for label, n := range counts {
		if n > 0 {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	return labels
}

// LabelSummary renders counts as "[EMAIL] 1, [SSN] 2"
func LabelSummary(counts map[string]int) string {
	labels := SortedLabels(counts)
	parts := make([]string, len(labels))
	for i, label := range labels {
		parts[i] = fmt.Sprintf("%s %d", label, counts[label])
	}
	return strings.Join(parts, ", ")
}

// Plural returns "1 file" or "2 files"
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
