// Package predict talks to the remote classification service that labels
// free text with a risk category, a confidence score and a sentiment.
package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultEndpoint is where the prediction service listens during local development.
	DefaultEndpoint = "http://localhost:5000/api/predict"
	defaultTimeout  = 30 * time.Second

	// fallbackMessage is shown when the server fails without saying why.
	fallbackMessage = "Server error"

	maxResponseBytes = 1 << 20
)

// Version is sent in the User-Agent header. Overridden at build time.
var Version = "dev"

// ErrEmptyText is returned when there is nothing to classify.
var ErrEmptyText = errors.New("no text provided")

// Prediction is the record returned by the service for one submission.
type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Sentiment  string  `json:"sentiment"`
}

// ServerError is a non-2xx reply from the service.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return e.Message
}

// Predictor classifies a piece of text.
type Predictor interface {
	Predict(ctx context.Context, text string) (Prediction, error)
}

// request is the body of POST /api/predict.
type request struct {
	Text string `json:"text"`
}

// errorBody is what the service sends alongside a failure status.
type errorBody struct {
	Error string `json:"error"`
}

// Client is an HTTP prediction client.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the overall request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a client for the given endpoint.
// An empty endpoint falls back to DefaultEndpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	c := &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Predict sends text to the service and decodes the prediction.
// Whitespace-only text is rejected without touching the network.
func (c *Client) Predict(ctx context.Context, text string) (Prediction, error) {
	if strings.TrimSpace(text) == "" {
		return Prediction{}, ErrEmptyText
	}

	body, err := json.Marshal(request{Text: text})
	if err != nil {
		return Prediction{}, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Prediction{}, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", "riskcheck/"+Version)

	start := time.Now()
	c.logger.Debug("sending prediction request",
		slog.String("endpoint", c.endpoint),
		slog.Int("chars", len(text)))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("prediction request failed",
			slog.String("endpoint", c.endpoint),
			slog.Any("error", err))
		return Prediction{}, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Prediction{}, fmt.Errorf("reading response: %w", err)
	}

	c.logger.Debug("prediction response received",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Prediction{}, newServerError(resp.StatusCode, respBody)
	}

	return decodePrediction(respBody)
}

// decodePrediction is lenient about shape: valid JSON that is not an object
// yields a blank record. Fields are never validated.
func decodePrediction(body []byte) (Prediction, error) {
	trimmed := bytes.TrimSpace(body)
	if json.Valid(trimmed) && !bytes.HasPrefix(trimmed, []byte("{")) {
		return Prediction{}, nil
	}

	var p Prediction
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return Prediction{}, fmt.Errorf("decoding response: %w", err)
	}
	return p, nil
}

// newServerError builds the error for a failure status, preferring the
// message the server put in the body.
func newServerError(status int, body []byte) *ServerError {
	msg := fallbackMessage

	var eb errorBody
	if len(bytes.TrimSpace(body)) > 0 && json.Unmarshal(body, &eb) == nil {
		if m := strings.TrimSpace(eb.Error); m != "" {
			msg = m
		}
	}

	return &ServerError{StatusCode: status, Message: msg}
}

// Message turns any Predict error into text suitable for the error region.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var se *ServerError
	if errors.As(err, &se) {
		return se.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallbackMessage
}
