// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokens(texts ...string) *TokenList {
	words := make([]WordToken, len(texts))
	for i, t := range texts {
		words[i] = WordToken{Text: t}
	}
	return NewTokenList(words)
}

func TestTokenListRemove(t *testing.T) {
	l := tokens("Call", "555-123-4567", "now")
	assert.Equal(t, "Call 555-123-4567 now", l.String())

	l.Remove(5, 17)
	assert.Equal(t, "Call now", l.String())
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, "", l.At(1))

	// a range spanning a separator trims both neighbours
	l = tokens("ab", "cd", "ef")
	l.Remove(1, 4)
	assert.Equal(t, "a d ef", l.String())

	l.Remove(3, 3)
	assert.Equal(t, "a d ef", l.String())
}

func TestTokenListRemoveAll(t *testing.T) {
	l := tokens("Mr.", "John", "Smith", "met", "JOHN", "SMITH")
	assert.True(t, l.Contains("john smith"))
	assert.Equal(t, 2, l.RemoveAll("John Smith"))
	assert.Equal(t, "Mr. met", l.String())
	assert.False(t, l.Contains("John Smith"))

	assert.Equal(t, 0, l.RemoveAll("  "))
	assert.False(t, l.Contains(""))
}
