package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"github.com/haloiq/tax-api/internal/logger"
)

// secretsAPI is the subset of the Secrets Manager client used here
type secretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc secretsAPI
}

// NewSecretsManagerClient creates and initializes a new Secrets Manager client.
// It uses the default AWS configuration chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return &SecretsManagerClient{
		svc: secretsmanager.NewFromConfig(cfg),
	}, nil
}

// GetSecretValue fetches a plain-text secret string by ARN.
func (c *SecretsManagerClient) GetSecretValue(ctx context.Context, secretARN string) (string, error) {
	logger.Debug("Fetching secret from Secrets Manager", zap.String("secretArn", secretARN))

	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretARN),
	})
	if err != nil {
		logger.Warn("Failed to retrieve secret from Secrets Manager",
			zap.String("secretArn", secretARN),
			zap.Error(err))
		return "", fmt.Errorf("failed to get secret %s: %w", secretARN, err)
	}
	if result.SecretString == nil || *result.SecretString == "" {
		return "", fmt.Errorf("secret %s has no string value", secretARN)
	}

	logger.Info("Successfully fetched secret from Secrets Manager", zap.String("secretArn", secretARN))
	return *result.SecretString, nil
}
