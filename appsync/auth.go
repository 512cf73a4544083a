package appsync

import (
	"fmt"

	awsappsync "github.com/aws/aws-sdk-go/service/appsync"
)

// AuthType is the authorization mode a request is sent with. The members are
// the authentication types AppSync itself defines.
type AuthType string

const (
	AuthTypeAPIKey           AuthType = awsappsync.AuthenticationTypeApiKey
	AuthTypeIAM              AuthType = awsappsync.AuthenticationTypeAwsIam
	AuthTypeCognitoUserPools AuthType = awsappsync.AuthenticationTypeAmazonCognitoUserPools
	AuthTypeOpenIDConnect    AuthType = awsappsync.AuthenticationTypeOpenidConnect
	AuthTypeLambda           AuthType = awsappsync.AuthenticationTypeAwsLambda
)

const (
	APIKeyHeader        = "x-api-key"
	AuthorizationHeader = "Authorization"
)

// AuthTypes lists every supported AuthType.
func AuthTypes() []AuthType {
	values := awsappsync.AuthenticationType_Values()
	out := make([]AuthType, len(values))
	for i, v := range values {
		out[i] = AuthType(v)
	}
	return out
}

func ParseAuthType(s string) (AuthType, error) {
	a := AuthType(s)
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAuthType, s)
	}
	return a, nil
}

func (a AuthType) Valid() bool {
	switch a {
	case AuthTypeAPIKey, AuthTypeIAM, AuthTypeCognitoUserPools, AuthTypeOpenIDConnect, AuthTypeLambda:
		return true
	}
	return false
}

// RequiresCredentials reports whether requests must be SigV4 signed.
func (a AuthType) RequiresCredentials() bool {
	return a == AuthTypeIAM
}

// HeaderName is the header that carries the caller's secret for this mode.
// IAM requests carry a signature instead, so it returns "".
func (a AuthType) HeaderName() string {
	switch a {
	case AuthTypeAPIKey:
		return APIKeyHeader
	case AuthTypeCognitoUserPools, AuthTypeOpenIDConnect, AuthTypeLambda:
		return AuthorizationHeader
	}
	return ""
}

func (a AuthType) String() string {
	return string(a)
}
