package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/order-gateway/internal/config"
	httphandler "github.com/MKhiriev/order-gateway/internal/handler/http"
	"github.com/MKhiriev/order-gateway/internal/limiter"
	"github.com/MKhiriev/order-gateway/internal/logger"
	"github.com/MKhiriev/order-gateway/internal/queue"
	"github.com/MKhiriev/order-gateway/internal/server"
	"github.com/MKhiriev/order-gateway/internal/service"
	"github.com/MKhiriev/order-gateway/internal/store"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetConfig()
	if err != nil {
		logger.NewLogger("order-gateway", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("order-gateway", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	// Missing destinations are not fatal: the gateway still answers health
	// and readiness traffic, and /ready names what is absent.
	if missing := cfg.MissingKeys(); len(missing) > 0 {
		log.Warn().Strs("missing", missing).Msg("submission destinations not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWS.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWS.AccessKeyID, cfg.AWS.SecretAccessKey, ""),
		),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading AWS configuration")
	}

	sqsClient := sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		if cfg.AWS.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.EndpointURL)
		}
	})

	publisher := queue.NewSQSPublisher(sqsClient, cfg.Queue.URL, log)
	minter := store.NewDynamoDBPresigner(awsCfg.Credentials, cfg.Store.Table, cfg.AWS.Region, cfg.AWS.EndpointURL, log)

	spec, err := limiter.ParseSpec(cfg.App.RateLimit)
	if err != nil {
		log.Fatal().Err(err).Str("spec", cfg.App.RateLimit).Msg("error parsing rate limit spec")
	}

	services, err := service.NewServices(publisher, minter, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := httphandler.NewHandler(services, limiter.NewLimiter(spec), cfg, log)

	srv := server.NewServer(handler.Init(), cfg.Server, log)
	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
