package appsync

import (
	"io"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

const DefaultRegion = "us-east-1"

// Config holds the client-wide defaults a Request falls back to.
type Config struct {
	// Endpoint is the GraphQL URL, e.g.
	// https://xxxx.appsync-api.us-east-1.amazonaws.com/graphql
	Endpoint string
	// Region is used for SigV4 signing. When empty it is taken from the
	// resolved endpoint host, then DefaultRegion.
	Region string
	// APIKey is sent in x-api-key for API_KEY requests.
	APIKey string
	// AuthToken is sent in Authorization for Cognito, OIDC, and Lambda
	// requests.
	AuthToken string
	Logger    logrus.FieldLogger
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.Logger = l
	}
	return c
}

// RegionFromEndpoint extracts the region from an AppSync endpoint of the
// form <id>.appsync-api.<region>.amazonaws.com. Any other host, including
// custom domains, yields DefaultRegion.
func RegionFromEndpoint(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Hostname() == "" {
		return DefaultRegion
	}
	labels := strings.Split(u.Hostname(), ".")
	for i := 0; i+2 < len(labels); i++ {
		if labels[i] == "appsync-api" && labels[i+2] == "amazonaws" {
			return labels[i+1]
		}
	}
	return DefaultRegion
}
