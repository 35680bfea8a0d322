package internal

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// VerifyKey checks a freshly issued key against STS GetCallerIdentity and
// returns the caller ARN. sessionToken is empty for long-term keys.
func VerifyKey(ctx context.Context, accessKey, secretKey, sessionToken, region string) (string, error) {
	if region == "" {
		region = "us-east-1"
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKey,
			secretKey,
			sessionToken,
		)),
	)
	if err != nil {
		return "", err
	}

	svc := sts.NewFromConfig(cfg)
	out, err := svc.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", err
	}

	return aws.ToString(out.Arn), nil
}
