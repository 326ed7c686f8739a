package discovery

import (
	"context"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"github.com/orb3-protocol/l2beat/internal/app/port"
	"github.com/orb3-protocol/l2beat/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPSource fetches snapshots from <baseURL>/<project>.yaml. Responses with a
// JSON content type are decoded as JSON.
type HTTPSource struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
	logger  port.Logger
}

// NewHTTPSource creates a new HTTPSource. requestsPerSecond <= 0 disables rate limiting.
func NewHTTPSource(baseURL string, timeout time.Duration, requestsPerSecond float64, burst int, log port.Logger) *HTTPSource {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	if burst <= 0 {
		burst = 1
	}
	return &HTTPSource{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		limiter: rate.NewLimiter(limit, burst),
		logger:  log,
	}
}

// Load implements port.DiscoverySource. ctx bounds the rate limiter wait.
// The request itself uses the ctx deadline when one is set, otherwise the
// source timeout; cancelling a ctx without a deadline does not interrupt an
// in-flight request, which then runs until the timeout.
func (s *HTTPSource) Load(ctx context.Context, projectID string) (*entity.DiscoverySnapshot, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed for %s: %w", projectID, err)
	}

	requestURL := fmt.Sprintf("%s/%s.yaml", s.baseURL, projectID)
	s.logger.Debug("Requesting discovery snapshot", "url", requestURL)

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := s.client.DoDeadline(req, resp, deadline); err != nil {
			s.logger.Error("Failed to execute discovery request", "url", requestURL, "error", err)
			return nil, fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
		}
	} else {
		if err := s.client.DoTimeout(req, resp, s.timeout); err != nil {
			s.logger.Error("Failed to execute discovery request (with default timeout)", "url", requestURL, "error", err)
			return nil, fmt.Errorf("failed to execute request to %s with default timeout: %w", requestURL, err)
		}
	}

	switch status := resp.StatusCode(); {
	case status == fasthttp.StatusNotFound:
		return nil, fmt.Errorf("%w: no discovery for %s at %s", entity.ErrNotFound, projectID, requestURL)
	case status != fasthttp.StatusOK:
		s.logger.Warn("Discovery server returned non-200 status", "url", requestURL, "status", status)
		return nil, fmt.Errorf("discovery request to %s failed with status %d", requestURL, status)
	}

	// Body is only valid until the response is released.
	body := append([]byte(nil), resp.Body()...)
	if strings.Contains(string(resp.Header.ContentType()), "json") {
		return decodeSnapshot(projectID, body, json.Unmarshal)
	}
	return decodeSnapshot(projectID, body, yaml.Unmarshal)
}
