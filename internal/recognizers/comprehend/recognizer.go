// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package comprehend recognizes PERSON, DATE and GEO spans with Amazon
// Comprehend's DetectEntities API.
package comprehend

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	"github.com/aws/aws-sdk-go-v2/service/comprehend/types"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"pii-redactor/internal/entity"
	"pii-redactor/internal/observability"
	"pii-redactor/internal/resilience"
)

const (
	// maxChunkBytes is the DetectEntities request size limit
	maxChunkBytes = 100 * 1024

	defaultTimeout = 30 * time.Second
)

// DetectEntitiesAPI is the subset of the Comprehend client used here
type DetectEntitiesAPI interface {
	DetectEntities(ctx context.Context, params *comprehend.DetectEntitiesInput, optFns ...func(*comprehend.Options)) (*comprehend.DetectEntitiesOutput, error)
}

// Config controls the Comprehend recognizer
type Config struct {
	Region            string
	LanguageCode      string
	RequestsPerSecond float64
	MinScore          float64
	Timeout           time.Duration
}

// Recognizer calls Comprehend once per chunk of input text
type Recognizer struct {
	client    DetectEntitiesAPI
	limiter   *rate.Limiter
	retry     resilience.RetryConfig
	cfg       Config
	chunkSize int
	observer  *observability.StandardObserver
	logger    *zap.Logger
}

// New loads the default AWS configuration for cfg.Region and creates a
// recognizer backed by a real Comprehend client.
func New(ctx context.Context, cfg Config, observer *observability.StandardObserver) (*Recognizer, error) {
	loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	awsCfg, err := config.LoadDefaultConfig(loadCtx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	// throttling is retried by the recognizer so waits share its rate limiter
	client := comprehend.NewFromConfig(awsCfg, func(o *comprehend.Options) {
		o.RetryMaxAttempts = 1
	})
	return NewWithClient(client, cfg, observer), nil
}

// NewWithClient creates a recognizer around an existing client
func NewWithClient(client DetectEntitiesAPI, cfg Config, observer *observability.StandardObserver) *Recognizer {
	if cfg.LanguageCode == "" {
		cfg.LanguageCode = string(types.LanguageCodeEn)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	r := &Recognizer{
		client:    client,
		limiter:   rate.NewLimiter(limit, 1),
		retry:     resilience.AWSRetryConfig(),
		cfg:       cfg,
		chunkSize: maxChunkBytes,
		observer:  observer,
		logger:    observer.Logger("comprehend_recognizer"),
	}
	r.retry.OnRetry = func(attempt int, err error) {
		r.logger.Warn("retrying DetectEntities",
			zap.Int("attempt", attempt),
			zap.String("error_type", resilience.ClassifyError(err).Type.String()),
			zap.Error(err))
	}
	return r
}

// GetComponentName returns the component name for observability
func (r *Recognizer) GetComponentName() string {
	return "comprehend_recognizer"
}

// Recognize returns PERSON, DATE and LOCATION entities as spans. Offsets
// are byte offsets into text.
func (r *Recognizer) Recognize(ctx context.Context, text string) ([]entity.Span, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var finishTiming func(bool, map[string]interface{})
	if r.observer != nil {
		finishTiming = r.observer.StartTiming("comprehend_recognizer", "detect_entities", "")
	}

	var spans []entity.Span
	chunks := splitChunks(text, r.chunkSize)
	for _, c := range chunks {
		found, err := r.detect(ctx, c.text)
		if err != nil {
			if finishTiming != nil {
				finishTiming(false, map[string]interface{}{"error": err.Error()})
			}
			return nil, err
		}
		for _, s := range found {
			s.Offset += c.offset
			spans = append(spans, s)
		}
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"chunks":     len(chunks),
			"span_count": len(spans),
		})
	}
	return spans, nil
}

func (r *Recognizer) detect(ctx context.Context, chunk string) ([]entity.Span, error) {
	out, err := resilience.RetryWithResult(ctx, r.retry, func(ctx context.Context) (*comprehend.DetectEntitiesOutput, error) {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		callCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
		return r.client.DetectEntities(callCtx, &comprehend.DetectEntitiesInput{
			Text:         aws.String(chunk),
			LanguageCode: types.LanguageCode(r.cfg.LanguageCode),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("error calling Comprehend: %w", err)
	}

	var spans []entity.Span
	for _, e := range out.Entities {
		category, ok := categoryFor(e.Type)
		if !ok {
			continue
		}
		if float64(aws.ToFloat32(e.Score)) < r.cfg.MinScore {
			r.logger.Debug("entity below min score",
				zap.String("type", string(e.Type)),
				zap.Float32("score", aws.ToFloat32(e.Score)))
			continue
		}

		offset := byteOffset(chunk, int(aws.ToInt32(e.BeginOffset)))
		text := aws.ToString(e.Text)
		if text == "" && e.EndOffset != nil {
			text = chunk[offset:byteOffset(chunk, int(aws.ToInt32(e.EndOffset)))]
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		spans = append(spans, entity.Span{Text: text, Category: category, Offset: offset})
	}
	return spans, nil
}

func categoryFor(t types.EntityType) (entity.Category, bool) {
	switch t {
	case types.EntityTypePerson:
		return entity.Person, true
	case types.EntityTypeDate:
		return entity.Date, true
	case types.EntityTypeLocation:
		return entity.Geo, true
	default:
		return 0, false
	}
}

// byteOffset converts Comprehend's character offset into a byte offset
func byteOffset(s string, chars int) int {
	if chars <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == chars {
			return i
		}
		n++
	}
	return len(s)
}

type chunk struct {
	text   string
	offset int
}

// splitChunks cuts text into pieces of at most size bytes, preferring to
// cut after whitespace and never inside a UTF-8 sequence.
func splitChunks(text string, size int) []chunk {
	var chunks []chunk
	offset := 0
	for len(text) > size {
		cut := size
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		if ws := lastSpace(text[:cut]); ws > 0 {
			cut = ws
		}
		chunks = append(chunks, chunk{text: text[:cut], offset: offset})
		text = text[cut:]
		offset += cut
	}
	if text != "" {
		chunks = append(chunks, chunk{text: text, offset: offset})
	}
	return chunks
}

// lastSpace returns the index just past the last whitespace rune in s, or 0
func lastSpace(s string) int {
	idx := strings.LastIndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return 0
	}
	_, width := utf8.DecodeRuneInString(s[idx:])
	return idx + width
}
