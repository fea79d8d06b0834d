// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resilience

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"

	"github.com/aws/smithy-go"
)

// ErrorType represents different types of errors for handling strategies
type ErrorType int

const (
	ErrorTypeUnknown            ErrorType = iota
	ErrorTypeTransient                    // Temporary network issues
	ErrorTypePermanent                    // Invalid credentials, permissions
	ErrorTypeTimeout                      // Request timeouts
	ErrorTypeRateLimit                    // API throttling
	ErrorTypeServiceUnavailable           // Service-side faults
	ErrorTypeInvalidInput                 // Text too large, unsupported language
	ErrorTypeCanceled                     // Caller gave up
)

// String returns the name of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeUnknown:
		return "Unknown"
	case ErrorTypeTransient:
		return "Transient"
	case ErrorTypePermanent:
		return "Permanent"
	case ErrorTypeTimeout:
		return "Timeout"
	case ErrorTypeRateLimit:
		return "RateLimit"
	case ErrorTypeServiceUnavailable:
		return "ServiceUnavailable"
	case ErrorTypeInvalidInput:
		return "InvalidInput"
	case ErrorTypeCanceled:
		return "Canceled"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(et))
	}
}

// ClassifiedError wraps an error with type information
type ClassifiedError struct {
	Original  error
	Type      ErrorType
	Message   string
	Retryable bool
}

func (e *ClassifiedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Original == nil {
		return e.Type.String()
	}
	return e.Original.Error()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Original
}

// IsRetryable returns whether this error should be retried
func (e *ClassifiedError) IsRetryable() bool {
	return e.Retryable
}

// apiErrorTypes maps AWS error codes onto handling strategies
var apiErrorTypes = map[string]ErrorType{
	"ThrottlingException":            ErrorTypeRateLimit,
	"TooManyRequestsException":       ErrorTypeRateLimit,
	"RequestLimitExceeded":           ErrorTypeRateLimit,
	"InternalServerException":        ErrorTypeServiceUnavailable,
	"ServiceUnavailableException":    ErrorTypeServiceUnavailable,
	"TextSizeLimitExceededException": ErrorTypeInvalidInput,
	"InvalidRequestException":        ErrorTypeInvalidInput,
	"UnsupportedLanguageException":   ErrorTypeInvalidInput,
	"ValidationException":            ErrorTypeInvalidInput,
	"AccessDeniedException":          ErrorTypePermanent,
	"UnrecognizedClientException":    ErrorTypePermanent,
	"ExpiredTokenException":          ErrorTypePermanent,
}

// ClassifyError categorizes an error for appropriate handling
func ClassifyError(err error) *ClassifiedError {
	if err == nil {
		return nil
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified
	}

	switch {
	case errors.Is(err, context.Canceled):
		return &ClassifiedError{Original: err, Type: ErrorTypeCanceled}
	case isTimeoutError(err):
		return &ClassifiedError{Original: err, Type: ErrorTypeTimeout, Retryable: true}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		errorType, known := apiErrorTypes[apiErr.ErrorCode()]
		if !known && apiErr.ErrorFault() == smithy.FaultServer {
			errorType = ErrorTypeServiceUnavailable
		}
		return &ClassifiedError{
			Original:  err,
			Type:      errorType,
			Retryable: errorType == ErrorTypeRateLimit || errorType == ErrorTypeServiceUnavailable,
		}
	}

	if isNetworkError(err) {
		return &ClassifiedError{Original: err, Type: ErrorTypeTransient, Retryable: true}
	}

	return &ClassifiedError{Original: err, Type: ErrorTypeUnknown}
}

// isNetworkError checks if an error is network-related
func isNetworkError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH)
}

// isTimeoutError checks if an error is timeout-related
func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// NewTransientError creates a new transient error
func NewTransientError(message string, cause error) *ClassifiedError {
	return &ClassifiedError{
		Original:  cause,
		Type:      ErrorTypeTransient,
		Message:   message,
		Retryable: true,
	}
}

// NewPermanentError creates a new permanent error
func NewPermanentError(message string, cause error) *ClassifiedError {
	return &ClassifiedError{
		Original:  cause,
		Type:      ErrorTypePermanent,
		Message:   message,
		Retryable: false,
	}
}
