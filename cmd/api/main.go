package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-pos-terminal/internal/aws"
	"github.com/imrishuroy/go-pos-terminal/internal/config"
	"github.com/imrishuroy/go-pos-terminal/internal/handlers"
	"github.com/imrishuroy/go-pos-terminal/internal/idempotency"
	"github.com/imrishuroy/go-pos-terminal/internal/orders"
	"github.com/imrishuroy/go-pos-terminal/internal/pos"
	"github.com/imrishuroy/go-pos-terminal/internal/session"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.RequestLogger(cfg.Logger))

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterRoutes(r, cfg)

	return r
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Log.Level == "debug" || cfg.HTTP.RunLocal {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("config: " + err.Error())
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic("logger: " + err.Error())
	}
	defer logger.Sync() //nolint:errcheck

	terminal := pos.New(
		cfg.Catalog,
		session.NewGate(cfg.Credentials),
		orders.NewEngine(orders.NewStore()),
	)

	hcfg := handlers.HandlerConfig{
		Terminal:       terminal,
		Idempotency:    idempotency.NewStore(cfg.Idempotency.TTL),
		Logger:         logger,
		CurrencySymbol: cfg.Display.CurrencySymbol,
	}

	if cfg.Metrics.Enabled {
		clients, err := aws.NewAWSClients(context.Background())
		if err != nil {
			logger.Fatal("failed to init aws clients", zap.Error(err))
		}
		hcfg.Metrics = aws.NewMetricsPublisher(clients.CloudWatch, cfg.Metrics.Namespace)
	}

	r := setupRouter(hcfg)

	// if RUN_LOCAL is set, run a plain HTTP server for development.
	if cfg.HTTP.RunLocal {
		logger.Info("running local server", zap.String("addr", cfg.HTTP.Addr))
		if err := r.Run(cfg.HTTP.Addr); err != nil {
			logger.Fatal("failed to run local server", zap.Error(err))
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
