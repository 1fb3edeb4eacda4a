//go:build lambda
// +build lambda

package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	awsclient "github.com/haloiq/tax-api/internal/client/aws"
	"github.com/haloiq/tax-api/internal/config"
	"github.com/haloiq/tax-api/internal/logger"
	"github.com/haloiq/tax-api/internal/server"
	"go.uber.org/zap"
)

// @title           Tax API
// @version         1.0
// @description     Per-period payroll tax estimates and tax-type lookups

// @contact.name   API Support

// @BasePath  /

var ginLambda *ginadapter.GinLambda

func init() {
	ctx := context.Background()
	var secrets config.SecretFetcher
	var secretsErr error
	if os.Getenv("TAXUPDATE_KEY_SECRET_ARN") != "" {
		client, err := awsclient.NewSecretsManagerClient(ctx)
		if err != nil {
			secretsErr = err
		} else {
			secrets = client
		}
	}

	cfg, err := config.Load(ctx, secrets)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.InitLogger(cfg.Stage, cfg.LogLevel)
	if secretsErr != nil {
		logger.Warn("Secrets Manager unavailable, using TAXUPDATE_KEY", zap.Error(secretsErr))
	}

	srv, err := server.New(cfg)
	if err != nil {
		logger.Fatal("Failed to build server", zap.Error(err))
	}

	ginLambda = ginadapter.New(srv.Router)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer func() { _ = logger.Sync() }()
	lambda.Start(Handler)
}
