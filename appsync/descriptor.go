package appsync

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"

	"github.com/aws/aws-sdk-go/aws/credentials"

	"github.com/jkrebs-tr/appsync-go/graphql"
)

var ErrNoEndpoint = errors.New("appsync: no endpoint configured")

// Descriptor is a fully resolved HTTP call, ready for an Executor.
type Descriptor struct {
	Method      string
	URL         string
	Header      http.Header
	Body        []byte
	AuthType    AuthType
	Region      string
	Credentials *credentials.Credentials
}

// Prepare resolves req against cfg. Request headers are applied after the
// content type and auth header, so a caller can replace either. Header names
// are canonicalized, so the replacement does not depend on case.
func Prepare(req Request, cfg Config) (*Descriptor, error) {
	endpoint := req.EndpointURL
	if endpoint == "" {
		endpoint = cfg.Endpoint
	}
	if endpoint == "" {
		return nil, ErrNoEndpoint
	}

	region := cfg.Region
	if region == "" {
		region = RegionFromEndpoint(endpoint)
	}

	body, err := graphql.Encode(req.GraphQL)
	if err != nil {
		return nil, fmt.Errorf("Error Encoding Request: %w", err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	if name := req.AuthType.HeaderName(); name != "" {
		if secret := cfg.secretFor(req.AuthType); secret != "" {
			header.Set(name, secret)
		}
	}
	// sorted so that names colliding after canonicalization resolve the same
	// way every time
	for _, k := range slices.Sorted(maps.Keys(req.Headers)) {
		header.Set(k, req.Headers[k])
	}

	return &Descriptor{
		Method:      "POST",
		URL:         endpoint,
		Header:      header,
		Body:        body,
		AuthType:    req.AuthType,
		Region:      region,
		Credentials: req.Credentials,
	}, nil
}

func (c Config) secretFor(a AuthType) string {
	if a == AuthTypeAPIKey {
		return c.APIKey
	}
	return c.AuthToken
}
