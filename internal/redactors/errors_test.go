// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redactors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactionErrorSentinels(t *testing.T) {
	notFound := NotFoundError("/missing.txt", "plaintext_redactor", os.ErrNotExist)
	assert.ErrorIs(t, notFound, ErrNotFound)
	assert.ErrorIs(t, notFound, os.ErrNotExist)
	assert.NotErrorIs(t, notFound, ErrFormat)

	wrapped := fmt.Errorf("batch: %w", FormatError("a.docx", "pdf_redactor", "PDF"))
	assert.ErrorIs(t, wrapped, ErrFormat)

	typ, ok := TypeOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrorFormat, typ)

	_, ok = TypeOf(errors.New("plain"))
	assert.False(t, ok)

	assert.ErrorIs(t, ArgumentError("no text", "plaintext_redactor"), ErrArgument)
}

func TestRedactionErrorMessage(t *testing.T) {
	err := NotFoundError("/missing.txt", "plaintext_redactor", errors.New("stat failed"))
	assert.Equal(t, "[not_found] input file does not exist (file: /missing.txt, component: plaintext_redactor): stat failed", err.Error())

	assert.Equal(t, "[argument] no text (component: plaintext_redactor)", ArgumentError("no text", "plaintext_redactor").Error())
	assert.Equal(t, "unknown", RedactionErrorType(99).String())
}

func TestRedactionErrorCollection(t *testing.T) {
	c := NewRedactionErrorCollection()
	assert.False(t, c.HasErrors())

	c.Add("a.pdf", FormatError("a.pdf", "pdf_redactor", "PDF"))
	c.Add("b.txt", errors.New("disk full"))
	c.Add("b.txt", NotFoundError("b.txt", "plaintext_redactor", nil))

	assert.True(t, c.HasErrors())
	assert.Equal(t, 3, c.Count())
	assert.Equal(t, map[string]int{"format": 1, "document_processing": 1, "not_found": 1}, c.CountByType())
	require.Len(t, c.GetErrors(), 3)
	assert.Equal(t, "b.txt", c.GetErrors()[1].FilePath)
	assert.Equal(t, "redaction_manager", c.GetErrors()[1].Component)
}

func TestRedactionResultHelpers(t *testing.T) {
	var nilResult *RedactionResult
	assert.Zero(t, nilResult.TotalRedactions())
	assert.Empty(t, nilResult.Labels())

	r := &RedactionResult{LabelCounts: map[string]int{"[SSN]": 2, "[EMAIL]": 1, "[NAME]": 0}}
	assert.Equal(t, 3, r.TotalRedactions())
	assert.Equal(t, []string{"[EMAIL]", "[SSN]"}, r.Labels())
}

func TestBoundingBoxUnion(t *testing.T) {
	a := BoundingBox{X: 10, Y: 10, Width: 10, Height: 5}
	b := BoundingBox{X: 25, Y: 8, Width: 5, Height: 5}
	assert.Equal(t, BoundingBox{X: 10, Y: 8, Width: 20, Height: 7}, a.Union(b))
	assert.Equal(t, a, a.Union(BoundingBox{}))
	assert.Equal(t, b, BoundingBox{}.Union(b))
	assert.True(t, BoundingBox{Width: 1}.Empty())
}
