package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mattnico/ldsmcp-sub001/internal/metrics"
	"github.com/mattnico/ldsmcp-sub001/internal/transport"
)

// Executor sends prepared requests through the transport, classifies the
// outcome and hands the payload to the provider's normalizer. It performs no
// retries; a caller wanting resilience composes retry around Search.
type Executor struct {
	client *transport.Client
	log    *zap.Logger
	bases  map[string]string
}

// NewExecutor builds an executor. bases maps provider names to base-URL
// overrides; providers not listed use their DefaultBase.
func NewExecutor(client *transport.Client, log *zap.Logger, bases map[string]string) *Executor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Executor{client: client, log: log, bases: bases}
}

// Search resolves the named provider, builds and sends the request, and
// normalizes the response. Builder-time validation failures return a Go error
// before any network call. Executor-time failures come back inside the
// Result's Error field so aggregate callers can inspect partial failures.
func (e *Executor) Search(ctx context.Context, providerName string, p Params) (*Result, error) {
	provider, err := Get(providerName)
	if err != nil {
		return nil, err
	}

	req, err := provider.BuildRequest(e.bases[providerName], p)
	if err != nil {
		return nil, err
	}

	reqID := uuid.NewString()
	started := time.Now()

	var raw *transport.RawResponse
	switch req.Method {
	case http.MethodPost:
		raw, err = e.client.Post(ctx, req.URL, req.Body)
	default:
		raw, err = e.client.Get(ctx, req.URL)
	}

	if err != nil {
		kind := KindTransportError
		msg := "upstream request failed"
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			kind = KindCancelled
			msg = "request cancelled"
		}
		e.log.Warn("search failed",
			zap.String("request_id", reqID),
			zap.String("provider", providerName),
			zap.String("kind", string(kind)),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err),
		)
		metrics.ObserveSearch(providerName, string(kind), time.Since(started))
		return errorResult(providerName, &ErrorInfo{Kind: kind, Domain: providerName, Message: msg}), nil
	}

	if raw.StatusCode >= 400 {
		e.log.Warn("search failed",
			zap.String("request_id", reqID),
			zap.String("provider", providerName),
			zap.Int("status", raw.StatusCode),
			zap.Duration("elapsed", time.Since(started)),
		)
		metrics.ObserveSearch(providerName, string(KindHTTPError), time.Since(started))
		return errorResult(providerName, &ErrorInfo{
			Kind:    KindHTTPError,
			Status:  raw.StatusCode,
			Domain:  providerName,
			Message: fmt.Sprintf("upstream returned status %d", raw.StatusCode),
		}), nil
	}

	result, err := provider.Normalize(raw)
	if err != nil {
		e.log.Warn("search response malformed",
			zap.String("request_id", reqID),
			zap.String("provider", providerName),
			zap.Error(err),
		)
		metrics.ObserveSearch(providerName, string(KindMalformedResponse), time.Since(started))
		return errorResult(providerName, &ErrorInfo{
			Kind:    KindMalformedResponse,
			Domain:  providerName,
			Message: "upstream response could not be parsed",
		}), nil
	}

	e.log.Debug("search completed",
		zap.String("request_id", reqID),
		zap.String("provider", providerName),
		zap.Int("status", raw.StatusCode),
		zap.Int("items", len(result.Items)),
		zap.Duration("elapsed", time.Since(started)),
	)
	metrics.ObserveSearch(providerName, "ok", time.Since(started))
	return result, nil
}

// Fetch retrieves arbitrary content (HTML pages for resource previews)
// through the same transport and classification rules as Search.
func (e *Executor) Fetch(ctx context.Context, url string) (*transport.RawResponse, *ErrorInfo) {
	raw, err := e.client.Get(ctx, url)
	if err != nil {
		kind := KindTransportError
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			kind = KindCancelled
		}
		return nil, &ErrorInfo{Kind: kind, Domain: "content", Message: "content fetch failed"}
	}
	if raw.StatusCode >= 400 {
		return nil, &ErrorInfo{
			Kind:    KindHTTPError,
			Status:  raw.StatusCode,
			Domain:  "content",
			Message: fmt.Sprintf("content fetch returned status %d", raw.StatusCode),
		}
	}
	return raw, nil
}

func errorResult(domain string, info *ErrorInfo) *Result {
	return &Result{Domain: domain, Items: []Hit{}, Error: info}
}
