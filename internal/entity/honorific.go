// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package entity

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Honorifics is the closed set of courtesy titles searched in front of names
var Honorifics = []string{"Mr", "Mrs", "Ms", "Miss", "Mx", "Dr"}

// HonorificPattern matches one honorific with an optional trailing period
const HonorificPattern = `(?:Mr|Mrs|Ms|Miss|Mx|Dr)\.?`

// HonorificVariants returns "<H>. <name>" for every honorific. The name
// itself is not included.
func HonorificVariants(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	variants := make([]string, 0, len(Honorifics))
	for _, h := range Honorifics {
		variants = append(variants, h+". "+name)
	}
	return variants
}

// NamePattern compiles a case-insensitive matcher for name and every
// honorific-prefixed form of it, so "Dr. Jane Doe" is replaced as a unit.
func NamePattern(name string) (*regexp.Regexp, error) {
	name = strings.TrimSpace(name)
	return regexp.Compile(`(?im)(?:\b` + HonorificPattern + `\s*)?` + wordStart(name) + boundedLiteral(name))
}

// LiteralPattern compiles a case-insensitive matcher for text, anchored on
// word boundaries where text begins or ends with a word character.
func LiteralPattern(text string) (*regexp.Regexp, error) {
	text = strings.TrimSpace(text)
	return regexp.Compile(`(?im)` + wordStart(text) + boundedLiteral(text))
}

func boundedLiteral(text string) string {
	return regexp.QuoteMeta(text) + wordEnd(text)
}

func wordStart(text string) string {
	r, _ := utf8.DecodeRuneInString(text)
	if isWordRune(r) {
		return `\b`
	}
	return ""
}

func wordEnd(text string) string {
	r, _ := utf8.DecodeLastRuneInString(text)
	if isWordRune(r) {
		return `\b`
	}
	return ""
}

// isWordRune mirrors \b in RE2, which only knows ASCII word characters
func isWordRune(r rune) bool {
	return r < unicode.MaxASCII && (r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
}
