package graphql

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyQuery is returned when a request without a query document is encoded.
var ErrEmptyQuery = errors.New("graphql: query is required")

// Request is an outbound GraphQL operation.
type Request struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
	OperationName string         `json:"operationName,omitempty"`
}

type RequestOption func(*Request)

// WithVariables copies vars into the request. Keys already set are overwritten.
func WithVariables(vars map[string]any) RequestOption {
	return func(r *Request) {
		for k, v := range vars {
			r.Variables[k] = v
		}
	}
}

func WithVariable(name string, value any) RequestOption {
	return func(r *Request) {
		r.Variables[name] = value
	}
}

// WithOperationName selects which named operation of a multi-operation
// document is executed.
func WithOperationName(name string) RequestOption {
	return func(r *Request) {
		r.OperationName = name
	}
}

// NewRequest builds a Request for the given query document. Variables start
// out as an empty map and the operation name is unset.
//
// Example usage:
//
//	req := NewRequest(
//		"mutation PutPost($id: ID!, $title: String!) { putPost(id: $id, title: $title) { id title } }",
//		WithVariables(map[string]any{"id": "123", "title": "Hello World!"}),
//		WithOperationName("PutPost"),
//	)
func NewRequest(query string, opts ...RequestOption) Request {
	r := Request{
		Query:     query,
		Variables: map[string]any{},
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Encode serializes the request into the JSON body expected by a GraphQL
// endpoint. "variables" is always present, "operationName" only when set.
//
// Returns ErrEmptyQuery when the query is blank.
func Encode(r Request) ([]byte, error) {
	if r.Query == "" {
		return nil, ErrEmptyQuery
	}
	if r.Variables == nil {
		r.Variables = map[string]any{}
	}

	body, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("Error Marshaling Request Body: %w", err)
	}
	return body, nil
}

// DecodeRequest parses a wire body produced by Encode.
func DecodeRequest(body []byte) (Request, error) {
	var r Request
	if err := json.Unmarshal(body, &r); err != nil {
		return Request{}, fmt.Errorf("Error Unmarshaling Request Body: %w", err)
	}
	if r.Variables == nil {
		r.Variables = map[string]any{}
	}
	return r, nil
}
