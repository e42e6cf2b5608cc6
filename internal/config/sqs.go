package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type SQSConfig struct {
	Region           string `mapstructure:"region"`
	Endpoint         string `mapstructure:"endpoint"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	OffboardQueueURL string `mapstructure:"offboard_queue_url"`
}

func DefaultSQSConfig() *SQSConfig {
	return &SQSConfig{
		Region:           getEnvWithDefault("AWS_REGION", "us-east-1"),
		Endpoint:         getEnvWithDefault("AWS_SQS_ENDPOINT", "http://localhost:4566"),
		AccessKeyID:      getEnvWithDefault("AWS_ACCESS_KEY_ID", "dummy"),
		SecretAccessKey:  getEnvWithDefault("AWS_SECRET_ACCESS_KEY", "dummy"),
		OffboardQueueURL: getEnvWithDefault("AWS_SQS_OFFBOARD_QUEUE_URL", "http://localhost:4566/000000000000/tenant-offboard-queue"),
	}
}

func (c *SQSConfig) GetClient(ctx context.Context) (*sqs.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.AccessKeyID,
			c.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
	}), nil
}
