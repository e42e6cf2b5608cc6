package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Config struct {
	BucketName      string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// DefaultS3Config returns the tenant archive bucket configuration from environment variables
func DefaultS3Config() *S3Config {
	return &S3Config{
		BucketName:      getEnvWithDefault("S3_ARCHIVE_BUCKET", "shop-tenant-archives"),
		Region:          getEnvWithDefault("AWS_REGION", "us-east-1"),
		Endpoint:        getEnvWithDefault("AWS_ENDPOINT_URL", ""),
		AccessKeyID:     getEnvWithDefault("AWS_ACCESS_KEY_ID", "dummy"),
		SecretAccessKey: getEnvWithDefault("AWS_SECRET_ACCESS_KEY", "dummy"),
	}
}

// GetClient creates and returns an S3 client
func (c *S3Config) GetClient(ctx context.Context) (*s3.Client, error) {
	var options []func(*awsconfig.LoadOptions) error
	options = append(options, awsconfig.WithRegion(c.Region))

	// LocalStack and other S3-compatible endpoints use static credentials
	if c.Endpoint != "" {
		options = append(options, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.AccessKeyID,
			c.SecretAccessKey,
			"",
		)))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
