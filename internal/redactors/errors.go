// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redactors

import (
	"errors"
	"fmt"
	"time"
)

// RedactionErrorType defines the type of redaction error
type RedactionErrorType int

const (
	// ErrorNotFound indicates the input path of a save-mode call is missing
	ErrorNotFound RedactionErrorType = iota

	// ErrorArgument indicates an in-memory call was made without text
	ErrorArgument

	// ErrorFormat indicates a document operation on an unsupported format
	ErrorFormat

	// ErrorDocumentProcessing indicates a document processing failure
	ErrorDocumentProcessing

	// ErrorFileSystem indicates a file system operation failure
	ErrorFileSystem

	// ErrorConfiguration indicates a configuration error
	ErrorConfiguration

	// ErrorRecognition indicates the entity recognizer failed
	ErrorRecognition
)

// Sentinels for errors.Is. A *RedactionError matches the sentinel of its type.
var (
	ErrNotFound = errors.New("input not found")
	ErrArgument = errors.New("invalid argument")
	ErrFormat   = errors.New("unsupported format")
)

// String returns the string representation of the error type
func (ret RedactionErrorType) String() string {
	switch ret {
	case ErrorNotFound:
		return "not_found"
	case ErrorArgument:
		return "argument"
	case ErrorFormat:
		return "format"
	case ErrorDocumentProcessing:
		return "document_processing"
	case ErrorFileSystem:
		return "file_system"
	case ErrorConfiguration:
		return "configuration"
	case ErrorRecognition:
		return "recognition"
	default:
		return "unknown"
	}
}

// RedactionError represents an error that occurred during redaction
type RedactionError struct {
	// Type is the type of error
	Type RedactionErrorType

	// Message is the error message
	Message string

	// FilePath is the path to the file being processed when the error occurred
	FilePath string

	// Component is the component that generated the error
	Component string

	// Timestamp is when the error occurred
	Timestamp time.Time

	// Cause is the underlying error that caused this error
	Cause error
}

// Error implements the error interface
func (re *RedactionError) Error() string {
	msg := fmt.Sprintf("[%s] %s", re.Type.String(), re.Message)
	if re.FilePath != "" {
		msg += fmt.Sprintf(" (file: %s, component: %s)", re.FilePath, re.Component)
	} else {
		msg += fmt.Sprintf(" (component: %s)", re.Component)
	}
	if re.Cause != nil {
		msg += ": " + re.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error for error unwrapping
func (re *RedactionError) Unwrap() error {
	return re.Cause
}

// Is matches the sentinel for the error's type
func (re *RedactionError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return re.Type == ErrorNotFound
	case ErrArgument:
		return re.Type == ErrorArgument
	case ErrFormat:
		return re.Type == ErrorFormat
	}
	return false
}

// NewRedactionError creates a new RedactionError
func NewRedactionError(errorType RedactionErrorType, message, filePath, component string, cause error) *RedactionError {
	return &RedactionError{
		Type:      errorType,
		Message:   message,
		FilePath:  filePath,
		Component: component,
		Timestamp: time.Now(),
		Cause:     cause,
	}
}

// NotFoundError reports a missing input path
func NotFoundError(filePath, component string, cause error) *RedactionError {
	return NewRedactionError(ErrorNotFound, "input file does not exist", filePath, component, cause)
}

// ArgumentError reports a missing or invalid argument
func ArgumentError(message, component string) *RedactionError {
	return NewRedactionError(ErrorArgument, message, "", component, nil)
}

// FormatError reports a document of the wrong format
func FormatError(filePath, component, expected string) *RedactionError {
	return NewRedactionError(ErrorFormat, fmt.Sprintf("expected a %s file", expected), filePath, component, nil)
}

// TypeOf returns the RedactionErrorType carried by err, if any
func TypeOf(err error) (RedactionErrorType, bool) {
	var re *RedactionError
	if errors.As(err, &re) {
		return re.Type, true
	}
	return 0, false
}

// RedactionErrorCollection manages a collection of redaction errors
type RedactionErrorCollection struct {
	errors []RedactionError
}

// NewRedactionErrorCollection creates a new error collection
func NewRedactionErrorCollection() *RedactionErrorCollection {
	return &RedactionErrorCollection{
		errors: make([]RedactionError, 0),
	}
}

// Add adds an error to the collection. Errors that are not a
// *RedactionError are recorded as document processing failures.
func (rec *RedactionErrorCollection) Add(filePath string, err error) {
	var re *RedactionError
	if errors.As(err, &re) {
		rec.errors = append(rec.errors, *re)
		return
	}
	rec.errors = append(rec.errors, *NewRedactionError(ErrorDocumentProcessing, "redaction failed", filePath, "redaction_manager", err))
}

// GetErrors returns all errors in the collection
func (rec *RedactionErrorCollection) GetErrors() []RedactionError {
	return rec.errors
}

// HasErrors returns true if the collection contains any errors
func (rec *RedactionErrorCollection) HasErrors() bool {
	return len(rec.errors) > 0
}

// CountByType returns the number of errors per error type name
func (rec *RedactionErrorCollection) CountByType() map[string]int {
	counts := make(map[string]int)
	for _, err := range rec.errors {
		counts[err.Type.String()]++
	}
	return counts
}

// Count returns the number of errors in the collection
func (rec *RedactionErrorCollection) Count() int {
	return len(rec.errors)
}
