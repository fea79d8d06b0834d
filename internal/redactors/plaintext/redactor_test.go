// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package plaintext

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-redactor/internal/datefilter"
	"pii-redactor/internal/entity"
	"pii-redactor/internal/recognizers/lexicon"
	"pii-redactor/internal/redactors"
)

func fixedSpans(spans ...entity.Span) entity.Recognizer {
	return entity.Func(func(context.Context, string) ([]entity.Span, error) {
		return spans, nil
	})
}

func fixedDates() *datefilter.Filter {
	return datefilter.NewWithClock(func() time.Time {
		return time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	})
}

func TestRedactCatalogOnly(t *testing.T) {
	ptr := NewPlainTextRedactor(nil)

	out, counts, err := ptr.Redact(context.Background(), "Contact me at jane@example.com or 555-123-4567")
	require.NoError(t, err)
	assert.Equal(t, "Contact me at [EMAIL] or [PHONE]", out)
	assert.Equal(t, map[string]int{"[EMAIL]": 1, "[PHONE]": 1}, counts)

	out, _, err = ptr.Redact(context.Background(), "My SSN is 123-45-6789.")
	require.NoError(t, err)
	assert.Equal(t, "My SSN is [SSN].", out)
}

func TestRedactPersonWithHonorific(t *testing.T) {
	ptr := NewPlainTextRedactor(nil, WithRecognizer(fixedSpans(
		entity.Span{Text: "Jane Doe", Category: entity.Person, Offset: 4},
	)))

	out, counts, err := ptr.Redact(context.Background(), "Dr. Jane Doe called")
	require.NoError(t, err)
	assert.Equal(t, "[NAME] called", out)
	assert.Equal(t, 1, counts[entity.LabelPerson])
}

func TestRedactLongestNameFirst(t *testing.T) {
	ptr := NewPlainTextRedactor(nil, WithRecognizer(fixedSpans(
		entity.Span{Text: "Jane", Category: entity.Person},
		entity.Span{Text: "Jane Doe", Category: entity.Person},
	)))

	out, counts, err := ptr.Redact(context.Background(), "Jane Doe and Jane")
	require.NoError(t, err)
	assert.Equal(t, "[NAME] and [NAME]", out)
	assert.Equal(t, 2, counts[entity.LabelPerson])
}

func TestRedactDatesAreFiltered(t *testing.T) {
	ptr := NewPlainTextRedactor(nil,
		WithDateFilter(fixedDates()),
		WithRecognizer(fixedSpans(
			entity.Span{Text: "June 5, 2023", Category: entity.Date},
			entity.Span{Text: "three years ago", Category: entity.Date},
		)))

	out, counts, err := ptr.Redact(context.Background(), "Met June 5, 2023, three years ago.")
	require.NoError(t, err)
	assert.Equal(t, "Met [DATE], three years ago.", out)
	assert.Equal(t, map[string]int{entity.LabelDate: 1}, counts)
}

func TestRedactGeoAndWordBoundaries(t *testing.T) {
	ptr := NewPlainTextRedactor(nil, WithRecognizer(fixedSpans(
		entity.Span{Text: "Paris", Category: entity.Geo},
	)))

	out, _, err := ptr.Redact(context.Background(), "Paris, not Parisian")
	require.NoError(t, err)
	assert.Equal(t, "[GPE], not Parisian", out)
}

func TestRedactWithLexiconRecognizer(t *testing.T) {
	rec, err := lexicon.New(nil)
	require.NoError(t, err)

	ptr := NewPlainTextRedactor(nil, WithRecognizer(rec), WithDateFilter(fixedDates()))
	out, _, err := ptr.Redact(context.Background(), "Patient John Smith was seen on 12/25/2020 in Seattle.")
	require.NoError(t, err)
	assert.Equal(t, "Patient [NAME] was seen on [DATE] in [GPE].", out)
}

func TestRedactRecognizerError(t *testing.T) {
	boom := errors.New("model unavailable")
	ptr := NewPlainTextRedactor(nil, WithRecognizer(entity.Func(func(context.Context, string) ([]entity.Span, error) {
		return nil, boom
	})))

	_, _, err := ptr.Redact(context.Background(), "text")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	kind, ok := redactors.TypeOf(err)
	require.True(t, ok)
	assert.Equal(t, redactors.ErrorRecognition, kind)
}

func TestRedactNormalization(t *testing.T) {
	ptr := NewPlainTextRedactor(nil, WithNormalization(true))

	// full-width digits fold to ASCII before the catalog runs
	out, _, err := ptr.Redact(context.Background(), "SSN １２３-４５-６７８９")
	require.NoError(t, err)
	assert.Equal(t, "SSN [SSN]", out)
}

func TestRedactString(t *testing.T) {
	ptr := NewPlainTextRedactor(nil)

	text := "ssn 987-65-4321"
	out, counts, err := ptr.RedactString(context.Background(), &text)
	require.NoError(t, err)
	assert.Equal(t, "ssn [SSN]", out)
	assert.Equal(t, map[string]int{"[SSN]": 1}, counts)

	_, _, err = ptr.RedactString(context.Background(), nil)
	assert.ErrorIs(t, err, redactors.ErrArgument)
}

func TestRedactStringRejectsEmptyText(t *testing.T) {
	ptr := NewPlainTextRedactor(nil)

	empty := ""
	out, counts, err := ptr.RedactString(context.Background(), &empty)
	require.ErrorIs(t, err, redactors.ErrArgument)
	assert.Empty(t, out)
	assert.Nil(t, counts)

	// whitespace is still text
	blank := " \n"
	out, _, err = ptr.RedactString(context.Background(), &blank)
	require.NoError(t, err)
	assert.Equal(t, blank, out)
}

func TestRedactFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "notes.txt")
	output := filepath.Join(dir, "notes_redacted.txt")
	require.NoError(t, os.WriteFile(input, []byte("Call 555-123-4567 or use 123-45-6789\n"), 0600))

	ptr := NewPlainTextRedactor(nil)
	require.NoError(t, ptr.RedactFile(context.Background(), input, output))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "Call [PHONE] or use [SSN]\n", string(data))

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	result, err := ptr.RedactDocument(context.Background(), input, output)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.TotalRedactions())
	assert.Equal(t, []string{"[PHONE]", "[SSN]"}, result.Labels())
}

func TestRedactFileErrors(t *testing.T) {
	dir := t.TempDir()
	ptr := NewPlainTextRedactor(nil)

	err := ptr.RedactFile(context.Background(), filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.txt"))
	assert.ErrorIs(t, err, redactors.ErrNotFound)
	assert.NoFileExists(t, filepath.Join(dir, "out.txt"))

	input := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(input, []byte("x"), 0600))
	err = ptr.RedactFile(context.Background(), input, "")
	assert.ErrorIs(t, err, redactors.ErrArgument)
}

func TestRedactorMetadata(t *testing.T) {
	ptr := NewPlainTextRedactor(nil)
	assert.Equal(t, "plaintext_redactor", ptr.GetName())
	assert.Equal(t, "plaintext_redactor", ptr.GetComponentName())
	assert.Contains(t, ptr.GetSupportedTypes(), ".txt")

	var _ redactors.Redactor = ptr
}
