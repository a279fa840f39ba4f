// Package factapi implements the facts store as a client of a remote
// factsphere REST server.
package factapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/factsphere/internal/config"
	"github.com/heartmarshall/factsphere/internal/domain"
	"github.com/heartmarshall/factsphere/pkg/ctxutil"
)

const factsPath = "/api/v1/facts"

// Client talks to the REST facade. Requests are rate limited client side and
// pass through a circuit breaker that trips on transport errors and 5xx.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	log        *slog.Logger
}

// New creates a Client from cfg.
func New(cfg config.APIConfig, logger *slog.Logger) *Client {
	log := logger.With("adapter", "factapi")

	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "factapi",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.BreakerMinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.BreakerFailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst),
		breaker:    breaker,
		log:        log,
	}
}

type factsResponse struct {
	Facts []domain.Fact `json:"facts"`
}

type voteRequest struct {
	Kind  domain.VoteKind `json:"kind"`
	Value int             `json:"value"`
}

type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// FetchFacts calls GET /api/v1/facts.
func (c *Client) FetchFacts(ctx context.Context, filter domain.FactFilter) ([]domain.Fact, error) {
	q := url.Values{}
	q.Set("category", filter.Label())
	q.Set("limit", strconv.Itoa(filter.NormalizedLimit()))

	var resp factsResponse
	if err := c.do(ctx, http.MethodGet, factsPath+"?"+q.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch facts: %w", err)
	}
	if resp.Facts == nil {
		resp.Facts = []domain.Fact{}
	}
	return resp.Facts, nil
}

// InsertFact calls POST /api/v1/facts.
func (c *Client) InsertFact(ctx context.Context, nf domain.NewFact) (*domain.Fact, error) {
	var f domain.Fact
	if err := c.do(ctx, http.MethodPost, factsPath, nf, &f); err != nil {
		return nil, fmt.Errorf("insert fact: %w", err)
	}
	return &f, nil
}

// UpdateVote calls PATCH /api/v1/facts/{id}/votes.
func (c *Client) UpdateVote(ctx context.Context, id domain.FactID, kind domain.VoteKind, value int) (*domain.Fact, error) {
	path := fmt.Sprintf("%s/%d/votes", factsPath, id)
	var f domain.Fact
	if err := c.do(ctx, http.MethodPatch, path, voteRequest{Kind: kind, Value: value}, &f); err != nil {
		return nil, fmt.Errorf("fact %d: %w", id, err)
	}
	return &f, nil
}

// Ping calls the liveness endpoint of the server.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/live", nil, nil)
}

type rawResponse struct {
	status int
	body   []byte
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = b
	}

	ctx, requestID := ctxutil.EnsureRequestID(ctx)

	res, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-Id", requestID)
		if in != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, statusError(resp.StatusCode, raw)
		}
		return rawResponse{status: resp.StatusCode, body: raw}, nil
	})
	if err != nil {
		c.log.WarnContext(ctx, "request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID),
			slog.String("error", err.Error()),
		)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}

	rr := res.(rawResponse)
	if rr.status >= http.StatusBadRequest {
		return statusError(rr.status, rr.body)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(rr.body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// statusError maps an error response to a domain error.
func statusError(status int, body []byte) error {
	var er errorResponse
	_ = json.Unmarshal(body, &er)
	msg := er.Error
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, domain.ErrNotFound)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if len(er.Fields) > 0 {
			return domain.NewValidationErrors(er.Fields)
		}
		return domain.NewValidationError("request", msg)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", msg, domain.ErrConflict)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%s: %w", msg, domain.ErrUnavailable)
	}
	return fmt.Errorf("unexpected status %d: %s", status, msg)
}
