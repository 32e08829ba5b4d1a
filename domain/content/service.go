package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/IbtisamHemmo/Marketing-POC/pkg/logger"
	"github.com/IbtisamHemmo/Marketing-POC/pkg/tracing"
)

// Service loads the page document from the configured store.
type Service struct {
	store Store
	log   *slog.Logger
}

// NewService creates a content service
func NewService(store Store, log *slog.Logger) *Service {
	return &Service{
		store: store,
		log:   log.With(logger.Scope("content.svc")),
	}
}

// Store returns the backing store.
func (s *Service) Store() Store { return s.store }

// Page fetches and decodes the page document. An unreachable store yields an
// error wrapping ErrStoreUnavailable; a null result yields an empty document.
func (s *Service) Page(ctx context.Context) (*Document, error) {
	raw, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := Decode(raw)
	if err != nil {
		QueryFailures.WithLabelValues(FailureMalformed).Inc()
		s.log.Error("content document is malformed",
			slog.String("store", s.store.Name()),
			logger.Error(err),
		)
		return nil, err
	}

	if len(doc.Malformed) > 0 {
		QueryFailures.WithLabelValues(FailureMalformed).Inc()
		s.log.Warn("ignoring malformed sections",
			slog.String("store", s.store.Name()),
			slog.Any("sections", doc.Malformed),
		)
	}
	if doc.Empty() {
		QueryFailures.WithLabelValues(FailureEmpty).Inc()
		s.log.Warn("content store returned no data",
			slog.String("store", s.store.Name()),
		)
	}

	return doc, nil
}

// Raw fetches the page document as generic JSON values keyed by section.
// Missing sections map to nil.
func (s *Service) Raw(ctx context.Context) (map[string]any, error) {
	raw, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(SectionNames))
	for _, name := range SectionNames {
		out[name] = nil
	}
	if len(raw) == 0 || isNull(raw) {
		return out, nil
	}

	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	for k, v := range root {
		out[k] = v
	}
	return out, nil
}

// Ping checks the backing store.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) fetch(ctx context.Context) (json.RawMessage, error) {
	ctx, span := tracing.Start(ctx, "content.fetch",
		attribute.String("floraflow.store", s.store.Name()),
	)
	defer span.End()

	start := time.Now()
	raw, err := s.store.Fetch(ctx)
	QueryDuration.WithLabelValues(s.store.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		QueryFailures.WithLabelValues(FailureUnreachable).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "store unreachable")
		s.log.Error("content store unreachable",
			slog.String("store", s.store.Name()),
			slog.Duration("elapsed", time.Since(start)),
			logger.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	span.SetAttributes(attribute.Int("floraflow.result_bytes", len(raw)))
	s.log.Debug("content fetched",
		slog.String("store", s.store.Name()),
		slog.Duration("elapsed", time.Since(start)),
	)
	return raw, nil
}
