// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// StandardObserver implements observability for all components
type StandardObserver struct {
	level         ObservabilityLevel
	writer        io.Writer
	logger        *zap.Logger
	closeFn       func() error
	DebugObserver *DebugObserver // Reference to debug observer when in debug mode
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates observability component writing JSON lines to writer
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	logger := zap.NewNop()
	if level != ObservabilityOff && writer != nil {
		zapLevel := zapcore.InfoLevel
		if level == ObservabilityDebug {
			zapLevel = zapcore.DebugLevel
		}
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		logger = zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(writer), zapLevel))
	}
	return &StandardObserver{
		level:  level,
		writer: writer,
		logger: logger,
	}
}

// NewStandardObserverWithLogger wraps an existing zap logger
func NewStandardObserverWithLogger(level ObservabilityLevel, logger *zap.Logger) *StandardObserver {
	if logger == nil || level == ObservabilityOff {
		logger = zap.NewNop()
	}
	return &StandardObserver{
		level:  level,
		logger: logger,
	}
}

// Level returns the configured observability level
func (o *StandardObserver) Level() ObservabilityLevel {
	return o.level
}

// Logger returns the zap logger for a component
func (o *StandardObserver) Logger(component string) *zap.Logger {
	if o == nil {
		return zap.NewNop()
	}
	return WithComponent(o.logger, component)
}

// StartTiming returns a function to complete timing
func (o *StandardObserver) StartTiming(component, operation, filePath string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		duration := time.Since(start)

		data := StandardObservabilityData{
			Component:  component,
			Operation:  operation,
			FilePath:   filePath,
			DurationMs: duration.Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		}
		if errText, ok := metadata["error"].(string); ok {
			data.Error = errText
		}

		o.LogOperation(data)
	}
}

// LogOperation logs operation data
func (o *StandardObserver) LogOperation(data StandardObservabilityData) {
	if o == nil || o.level == ObservabilityOff {
		return
	}

	data.RequestID = "req-" + time.Now().Format("20060102-150405")

	fields := []zap.Field{
		zap.String("component", data.Component),
		zap.String("request_id", data.RequestID),
		zap.Int64("duration_ms", data.DurationMs),
		zap.Bool("success", data.Success),
	}
	if data.FilePath != "" {
		fields = append(fields, zap.String("file_path", data.FilePath))
	}
	if data.Error != "" {
		fields = append(fields, zap.String("error", data.Error))
	}
	if data.MatchCount > 0 {
		fields = append(fields, zap.Int("match_count", data.MatchCount))
	}
	if len(data.Metadata) > 0 {
		fields = append(fields, zap.Any("metadata", data.Metadata))
	}

	// Per-operation timings are debug detail, failures surface at metrics level
	switch {
	case !data.Success:
		o.logger.Warn(data.Operation, fields...)
	case o.level == ObservabilityDebug:
		o.logger.Debug(data.Operation, fields...)
	}
}

// Sync flushes buffered log entries
func (o *StandardObserver) Sync() {
	if o != nil && o.logger != nil {
		_ = o.logger.Sync()
	}
}

// OnClose registers fn to release the logger's resources in Close
func (o *StandardObserver) OnClose(fn func() error) {
	o.closeFn = fn
}

// Close flushes the logger and releases what was registered with OnClose
func (o *StandardObserver) Close() error {
	if o == nil {
		return nil
	}
	o.Sync()
	if o.closeFn == nil {
		return nil
	}
	fn := o.closeFn
	o.closeFn = nil
	return fn()
}

// StandardObservabilityData for all components
type StandardObservabilityData struct {
	Component  string                 `json:"component"`
	Operation  string                 `json:"operation"`
	RequestID  string                 `json:"request_id"`
	FilePath   string                 `json:"file_path,omitempty"`
	DurationMs int64                  `json:"duration_ms,omitempty"`
	Success    bool                   `json:"success"`
	Error      string                 `json:"error,omitempty"`
	MatchCount int                    `json:"match_count,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}
