// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resilience

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries:      maxRetries,
		InitialInterval: time.Millisecond,
		MaxInterval:     10 * time.Millisecond,
		Multiplier:      2.0,
	}
}

func TestRetryWithBackoff_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), RetryConfig{MaxRetries: 3}, func(ctx context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryWithBackoff_RetriesThrottling(t *testing.T) {
	calls := 0
	throttled := &smithy.GenericAPIError{Code: "TooManyRequestsException", Message: "slow down"}

	err := RetryWithBackoff(context.Background(), fastConfig(3), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return fmt.Errorf("operation error Comprehend: DetectEntities, %w", throttled)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryWithBackoff_StopsOnPermanentError(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), fastConfig(5), func(ctx context.Context) error {
		calls++
		return &smithy.GenericAPIError{Code: "TextSizeLimitExceededException"}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	calls := 0
	transient := NewTransientError("always fails", nil)

	err := RetryWithBackoff(context.Background(), fastConfig(3), func(ctx context.Context) error {
		calls++
		return transient
	})

	assert.Same(t, transient, err)
	assert.Equal(t, 4, calls) // initial + 3 retries
}

func TestRetryWithBackoff_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	err := RetryWithBackoff(ctx, RetryConfig{
		MaxRetries:      10,
		InitialInterval: time.Hour,
		Multiplier:      1.0,
		OnRetry: func(attempt int, err error) {
			cancel()
		},
	}, func(ctx context.Context) error {
		calls++
		return NewTransientError("fail", nil)
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetryWithBackoff_OnRetryCallback(t *testing.T) {
	var attempts []int
	cfg := fastConfig(2)
	cfg.OnRetry = func(attempt int, err error) {
		attempts = append(attempts, attempt)
	}

	_ = RetryWithBackoff(context.Background(), cfg, func(ctx context.Context) error {
		return NewTransientError("fail", nil)
	})

	assert.Equal(t, []int{1, 2}, attempts)
}

func TestRetryConfigDelay(t *testing.T) {
	cfg := RetryConfig{InitialInterval: 10 * time.Millisecond, MaxInterval: 50 * time.Millisecond, Multiplier: 2.0}
	assert.Equal(t, 10*time.Millisecond, cfg.delay(1))
	assert.Equal(t, 20*time.Millisecond, cfg.delay(2))
	assert.Equal(t, 40*time.Millisecond, cfg.delay(3))
	assert.Equal(t, 50*time.Millisecond, cfg.delay(4))

	cfg.Jitter = true
	d := cfg.delay(1)
	assert.GreaterOrEqual(t, d, 10*time.Millisecond)
	assert.LessOrEqual(t, d, 12500*time.Microsecond)
}

func TestRetryWithResult(t *testing.T) {
	calls := 0
	got, err := RetryWithResult(context.Background(), fastConfig(2), func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", context.DeadlineExceeded
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}

func TestDefaultRetryConfigs(t *testing.T) {
	for _, cfg := range []RetryConfig{DefaultRetryConfig(), AWSRetryConfig()} {
		assert.Positive(t, cfg.MaxRetries)
		assert.Greater(t, cfg.Multiplier, 1.0)
		assert.Positive(t, cfg.InitialInterval)
		assert.GreaterOrEqual(t, cfg.MaxInterval, cfg.InitialInterval)
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		want      ErrorType
		retryable bool
	}{
		{name: "throttling", err: &smithy.GenericAPIError{Code: "ThrottlingException"}, want: ErrorTypeRateLimit, retryable: true},
		{name: "server fault", err: &smithy.GenericAPIError{Code: "Whatever", Fault: smithy.FaultServer}, want: ErrorTypeServiceUnavailable, retryable: true},
		{name: "access denied", err: &smithy.GenericAPIError{Code: "AccessDeniedException"}, want: ErrorTypePermanent},
		{name: "unsupported language", err: &smithy.GenericAPIError{Code: "UnsupportedLanguageException"}, want: ErrorTypeInvalidInput},
		{name: "deadline", err: fmt.Errorf("call: %w", context.DeadlineExceeded), want: ErrorTypeTimeout, retryable: true},
		{name: "canceled", err: context.Canceled, want: ErrorTypeCanceled},
		{name: "unknown", err: errors.New("boom"), want: ErrorTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := ClassifyError(tt.err)
			require.NotNil(t, classified)
			assert.Equal(t, tt.want, classified.Type, classified.Type.String())
			assert.Equal(t, tt.retryable, classified.IsRetryable())
			assert.ErrorIs(t, classified, tt.err)
		})
	}

	assert.Nil(t, ClassifyError(nil))
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.True(t, IsRetryable(NewTransientError("temp", nil)))
	assert.False(t, IsRetryable(NewPermanentError("perm", nil)))
	assert.Equal(t, "Transient", NewTransientError("", nil).Error())
}
