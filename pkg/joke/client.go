package joke

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-jokeform/internal/logging"
)

// Generator produces a joke for a request. The form controller depends on this
// contract so tests can substitute the network.
type Generator interface {
	Generate(ctx context.Context, req Request) (Response, error)
}

// Option configures a Client.
type Option func(*Client)

// WithLogger routes request diagnostics to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout caps each request. Zero keeps the transport default (no limit).
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient lets callers supply the underlying transport (proxies,
// test servers).
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// Client talks to the joke service over HTTP.
type Client struct {
	rest       *resty.Client
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     logrus.FieldLogger
}

// Ensure the implementation satisfies the generator contract.
var _ Generator = (*Client)(nil)

// NewClient builds a Client rooted at baseURL.
func NewClient(baseURL string, options ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("joke: base URL is required")
	}

	c := &Client{
		baseURL: trimmed,
		logger:  logging.Discard(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	if c.httpClient != nil {
		c.rest = resty.NewWithClient(c.httpClient)
	} else {
		c.rest = resty.New()
	}
	c.rest.SetBaseURL(c.baseURL)
	c.rest.SetRetryCount(0)
	if c.timeout > 0 {
		c.rest.SetTimeout(c.timeout)
	}

	return c, nil
}

// BaseURL reports the service root the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Generate issues exactly one POST to the generation endpoint.
func (c *Client) Generate(ctx context.Context, req Request) (Response, error) {
	log := c.logger.WithFields(logrus.Fields{
		"method": http.MethodPost,
		"path":   GeneratePath,
		"topic":  req.Topic,
		"tone":   req.Tone,
	})
	start := time.Now()

	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(GeneratePath)
	if err != nil {
		log.WithError(err).WithField("duration", time.Since(start)).Debug("generate request failed")
		return Response{}, err
	}

	log = log.WithFields(logrus.Fields{
		"status":   resp.StatusCode(),
		"duration": time.Since(start),
	})

	if !resp.IsSuccess() {
		statusErr := &StatusError{
			StatusCode: resp.StatusCode(),
			Body:       resp.Body(),
		}
		log.WithField("detail", statusErr.Detail()).Debug("generate rejected")
		return Response{}, statusErr
	}

	out, err := decodeResponse(resp.Body())
	if err != nil {
		log.WithError(err).Debug("generate response malformed")
		return Response{}, err
	}

	log.Debug("generate completed")
	return out, nil
}

// Ping calls the service root and decodes its health payload.
func (c *Client) Ping(ctx context.Context) (Health, error) {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(HealthPath)
	if err != nil {
		return Health{}, fmt.Errorf("joke: health check: %w", err)
	}
	if !resp.IsSuccess() {
		return Health{}, fmt.Errorf("joke: health check: unexpected status %d", resp.StatusCode())
	}

	var health Health
	if err := json.Unmarshal(resp.Body(), &health); err != nil {
		return Health{}, fmt.Errorf("joke: health check: decode: %w", err)
	}
	return health, nil
}

func decodeResponse(body []byte) (Response, error) {
	var payload *Response
	if err := json.Unmarshal(body, &payload); err != nil {
		return Response{}, err
	}
	if payload == nil {
		return Response{}, ErrInvalidPayload
	}
	return *payload, nil
}
