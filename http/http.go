package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	v4 "github.com/aws/aws-sdk-go/aws/signer/v4"

	"github.com/jkrebs-tr/appsync-go/appsync"
)

// SigningName is the service name AppSync expects in SigV4 signatures.
const SigningName = "appsync"

// Executor sends appsync descriptors with a net/http client.
type Executor struct {
	client *nethttp.Client
	now    func() time.Time
}

// NewExecutor wraps client. A nil client is replaced by one with a 30 second
// timeout.
//
// Example usage:
//
//	exec := NewExecutor(nil)
//	client, err := appsync.NewClient(appsync.Config{Endpoint: url, APIKey: key}, exec)
func NewExecutor(client *nethttp.Client) *Executor {
	if client == nil {
		client = &nethttp.Client{
			Timeout: 30 * time.Second,
		}
	}
	return &Executor{client: client, now: time.Now}
}

// Execute sends d and returns the status, headers (repeated values included),
// and body of the reply without interpreting them. AWS_IAM descriptors are signed with d.Credentials
// before sending.
func (e *Executor) Execute(ctx context.Context, d *appsync.Descriptor) (*appsync.RawResponse, error) {
	req, err := nethttp.NewRequestWithContext(ctx, d.Method, d.URL, bytes.NewReader(d.Body))
	if err != nil {
		return nil, fmt.Errorf("Error Building Request: %w", err)
	}

	for key, values := range d.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	if d.AuthType.RequiresCredentials() {
		if d.Credentials == nil {
			return nil, appsync.ErrMissingCredentials
		}
		signer := v4.NewSigner(d.Credentials)
		if _, err := signer.Sign(req, bytes.NewReader(d.Body), SigningName, d.Region, e.now()); err != nil {
			return nil, fmt.Errorf("Error Signing Request: %w", err)
		}
	}

	response, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Error Making Request: %w", err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("Error Reading Response Body: %w", err)
	}

	return &appsync.RawResponse{
		StatusCode: response.StatusCode,
		Header:     response.Header,
		Body:       responseBody,
	}, nil
}
