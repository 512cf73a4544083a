package appsync

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/jkrebs-tr/appsync-go/graphql"
)

// RawResponse is what an Executor hands back: the undecoded HTTP reply.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Executor performs the HTTP call described by a Descriptor. Signing,
// timeouts, and connection handling belong to the implementation.
type Executor interface {
	Execute(ctx context.Context, d *Descriptor) (*RawResponse, error)
}

// ExecutorFunc adapts a plain function to Executor.
type ExecutorFunc func(ctx context.Context, d *Descriptor) (*RawResponse, error)

func (f ExecutorFunc) Execute(ctx context.Context, d *Descriptor) (*RawResponse, error) {
	return f(ctx, d)
}

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP Error: %d", e.StatusCode)
}

type Client struct {
	cfg  Config
	exec Executor
	log  logrus.FieldLogger
}

var (
	ErrNoExecutor = errors.New("appsync: executor is required")
	ErrNoResponse = errors.New("appsync: executor returned no response")
)

// NewClient creates a Client that sends requests through exec.
//
// Parameters:
//   - cfg: endpoint, region, and secrets shared by every request.
//   - exec: the HTTP execution capability, e.g. http.NewExecutor(nil).
//
// Returns ErrNoExecutor when exec is nil.
//
// Example usage:
//
//	client, err := NewClient(Config{
//		Endpoint: "https://xxxx.appsync-api.us-east-1.amazonaws.com/graphql",
//		APIKey:   apiKey,
//	}, http.NewExecutor(nil))
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, err := client.Execute(ctx, NewRequest(graphql.NewRequest("{ listPosts { items { id } } }")))
func NewClient(cfg Config, exec Executor) (*Client, error) {
	if exec == nil {
		return nil, ErrNoExecutor
	}
	cfg = cfg.withDefaults()
	return &Client{
		cfg:  cfg,
		exec: exec,
		log:  cfg.Logger,
	}, nil
}

// Execute validates, prepares, and sends req, then decodes the reply.
//
// A response with GraphQL errors is not a Go error: inspect Result.Errors.
// A non-2xx status returns a *StatusError, along with the decoded Result
// when the body holds a GraphQL response (AppSync reports auth failures that
// way).
func (c *Client) Execute(ctx context.Context, req Request) (*graphql.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d, err := Prepare(req, c.cfg)
	if err != nil {
		return nil, err
	}

	log := c.log.WithFields(logrus.Fields{
		"endpoint":  d.URL,
		"auth_type": d.AuthType,
		"operation": req.GraphQL.OperationName,
	})
	log.Debug("executing graphql request")

	raw, err := c.exec.Execute(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("Error Making Request: %w", err)
	}
	if raw == nil {
		return nil, ErrNoResponse
	}

	res, decodeErr := graphql.DecodeResult(raw.Body)

	if raw.StatusCode < 200 || raw.StatusCode >= 300 {
		log.WithField("status", raw.StatusCode).Warn("graphql request returned non-2xx status")
		statusErr := &StatusError{StatusCode: raw.StatusCode, Body: raw.Body}
		if decodeErr != nil {
			return nil, statusErr
		}
		return res, statusErr
	}
	if decodeErr != nil {
		return nil, decodeErr
	}

	if res.HasErrors() {
		log.WithField("errors", len(res.Errors)).Debug("graphql request returned errors")
	}
	return res, nil
}
