package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rogerio-castellano/electronics-catalog-proxy/internal/models"
)

// DefaultUpstreamURL is the electronics catalog endpoint proxied by default.
const DefaultUpstreamURL = "http://interview.surya-digital.in/get-electronics"

// DefaultMaxBodyBytes caps how much of an upstream response is read.
const DefaultMaxBodyBytes int64 = 10 << 20

var tracer = otel.Tracer("github.com/rogerio-castellano/electronics-catalog-proxy/internal/repo")

// HTTPProductRepository reads the full product snapshot from the upstream API
// on every call. Nothing is cached.
type HTTPProductRepository struct {
	client       *http.Client
	url          string
	maxBodyBytes int64
}

// NewHTTPProductRepository creates a repository with an instrumented client
// that gives up on the upstream after timeout.
func NewHTTPProductRepository(url string, timeout time.Duration) *HTTPProductRepository {
	return NewHTTPProductRepositoryWithClient(url, &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

// NewHTTPProductRepositoryWithClient creates a repository using client for upstream calls.
func NewHTTPProductRepositoryWithClient(url string, client *http.Client) *HTTPProductRepository {
	return &HTTPProductRepository{client: client, url: url, maxBodyBytes: DefaultMaxBodyBytes}
}

// WithMaxBodyBytes sets the largest upstream body accepted. Larger bodies fail
// with ErrUpstreamUnavailable. n <= 0 keeps the current limit.
func (r *HTTPProductRepository) WithMaxBodyBytes(n int64) *HTTPProductRepository {
	if n > 0 {
		r.maxBodyBytes = n
	}
	return r
}

// GetAll fetches the current snapshot. Transport errors, non-2xx responses and
// unreadable or oversized bodies are reported as ErrUpstreamUnavailable. A body that is not
// a JSON array yields an empty snapshot.
func (r *HTTPProductRepository) GetAll(ctx context.Context) ([]models.UpstreamRecord, error) {
	ctx, span := tracer.Start(ctx, "upstream.GetAll", trace.WithAttributes(attribute.String("upstream.url", r.url)))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fail(span, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fail(span, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fail(span, fmt.Errorf("request failed with status code %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, r.maxBodyBytes+1))
	if err != nil {
		return nil, fail(span, fmt.Errorf("failed to read response body: %w", err))
	}
	if int64(len(body)) > r.maxBodyBytes {
		return nil, fail(span, fmt.Errorf("response body exceeds %d bytes", r.maxBodyBytes))
	}

	records := decodeSnapshot(body)
	span.SetAttributes(attribute.Int("upstream.records", len(records)))
	return records, nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
}

// decodeSnapshot never fails: anything that is not an array decodes to an
// empty snapshot and array elements that are not objects are skipped.
func decodeSnapshot(body []byte) []models.UpstreamRecord {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return []models.UpstreamRecord{}
	}

	records := make([]models.UpstreamRecord, 0, len(items))
	for _, item := range items {
		var fields map[string]any
		dec := json.NewDecoder(bytes.NewReader(item))
		dec.UseNumber()
		if err := dec.Decode(&fields); err != nil {
			continue
		}
		records = append(records, models.UpstreamRecordFromMap(fields))
	}
	return records
}
