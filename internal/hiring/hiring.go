// Package hiring is the HTTP client for the remote matching and analysis
// service. It only moves data: scoring, parsing and bias detection happen on
// the server.
package hiring

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultAPIURL = "http://127.0.0.1:8000"
	userAgent     = "spigell/hiring-portal"
	// Résumé parsing and GitHub verification are slow on the server side.
	defaultTimeout = 60 * time.Second
)

// TokenSource supplies the bearer token for authenticated calls. An empty
// token means the request is sent without an Authorization header.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource that always returns the same token.
type StaticToken string

func (t StaticToken) Token() string { return string(t) }

type Client struct {
	tokens     TokenSource
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

func New(logger *zap.Logger, tokens TokenSource) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tokens == nil {
		tokens = StaticToken("")
	}

	return &Client{
		tokens: tokens,
		APIURL: DefaultAPIURL,
		HTTPClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger:    logger,
		UserAgent: userAgent,
	}
}

func (c *Client) url(path string) string {
	return strings.TrimRight(c.APIURL, "/") + path
}

type requestIDKey struct{}

// WithRequestID stores a correlation id that is sent as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the correlation id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
