package appsync

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
)

// DefaultCredentials resolves credentials through the default AWS chain
// (environment variables, ~/.aws/credentials, IAM roles, etc.).
//
// Parameters:
//   - region: AWS region of the AppSync API (e.g., "us-east-1", "eu-west-1").
//     If empty string is provided, defaults to "us-east-1".
//
// Returns the session's credentials and any error encountered during AWS
// session creation.
//
// Example usage:
//
//	creds, err := DefaultCredentials("eu-west-1")
//	if err != nil {
//		log.Fatal(err)
//	}
//	req := NewRequest(gql, WithAuthType(AuthTypeIAM), WithCredentials(creds))
func DefaultCredentials(region string) (*credentials.Credentials, error) {
	if region == "" {
		region = DefaultRegion
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %v", err)
	}

	return sess.Config.Credentials, nil
}

// StaticCredentials wraps a fixed access key pair. token may be empty.
func StaticCredentials(accessKeyID, secretAccessKey, token string) *credentials.Credentials {
	return credentials.NewStaticCredentials(accessKeyID, secretAccessKey, token)
}
