package appsync

import (
	"errors"
	"fmt"
	"net/textproto"

	"github.com/aws/aws-sdk-go/aws/credentials"

	"github.com/jkrebs-tr/appsync-go/graphql"
)

var (
	ErrUnknownAuthType    = errors.New("appsync: unknown auth type")
	ErrMissingCredentials = errors.New("appsync: auth type requires credentials")
)

// Request is a GraphQL operation addressed to an AppSync API.
type Request struct {
	GraphQL     graphql.Request
	EndpointURL string
	Headers     map[string]string
	AuthType    AuthType
	Credentials *credentials.Credentials
}

type Option func(*Request)

// WithEndpoint overrides the endpoint configured on the Client.
func WithEndpoint(url string) Option {
	return func(r *Request) {
		r.EndpointURL = url
	}
}

// WithHeader sets one header. Names are stored in canonical form, so
// "x-api-key" and "X-Api-Key" name the same header and the later call wins.
func WithHeader(name, value string) Option {
	return func(r *Request) {
		r.Headers[textproto.CanonicalMIMEHeaderKey(name)] = value
	}
}

func WithHeaders(headers map[string]string) Option {
	return func(r *Request) {
		for k, v := range headers {
			r.Headers[textproto.CanonicalMIMEHeaderKey(k)] = v
		}
	}
}

func WithAuthType(a AuthType) Option {
	return func(r *Request) {
		r.AuthType = a
	}
}

// WithCredentials sets the credentials used to sign AWS_IAM requests.
func WithCredentials(creds *credentials.Credentials) Option {
	return func(r *Request) {
		r.Credentials = creds
	}
}

// NewRequest wraps a GraphQL request with AppSync addressing. Without options
// the request uses API key auth, no extra headers, no credentials, and the
// Client's endpoint.
//
// NewRequest never validates its input: a request that needs credentials but
// has none is only rejected when it is executed.
//
// Example usage:
//
//	gql := graphql.NewRequest("{ listPosts { items { id } } }")
//	req := NewRequest(gql,
//		WithAuthType(AuthTypeIAM),
//		WithCredentials(creds),
//	)
func NewRequest(gql graphql.Request, opts ...Option) Request {
	r := Request{
		GraphQL:  gql,
		Headers:  map[string]string{},
		AuthType: AuthTypeAPIKey,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Validate checks that the request can be executed.
func (r Request) Validate() error {
	if !r.AuthType.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAuthType, r.AuthType)
	}
	if r.AuthType.RequiresCredentials() && r.Credentials == nil {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, r.AuthType)
	}
	return nil
}
