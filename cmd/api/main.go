package main

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/notifier/internal/api"
	"github.com/Behyna/sms-services/notifier/internal/api/middleware"
	"github.com/Behyna/sms-services/notifier/internal/api/v1"
	"github.com/Behyna/sms-services/notifier/internal/api/validator"
	"github.com/Behyna/sms-services/notifier/internal/config"
	"github.com/Behyna/sms-services/notifier/internal/database"
	"github.com/Behyna/sms-services/notifier/internal/metrics"
	"github.com/Behyna/sms-services/notifier/internal/repository"
	"github.com/Behyna/sms-services/notifier/internal/service"
	"github.com/Behyna/sms-services/notifier/pkg/httpclient"
	"github.com/Behyna/sms-services/notifier/pkg/smsprovider"
	playground "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const serviceName = "sms-notifier"

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			config.NewProcessConfig,
			zap.NewProduction,
			database.NewConnection,
			NewMetrics,
			NewValidate,

			repository.NewAccountRepository,
			NewSMSProvider,
			service.NewSettingsResolver,
			service.NewSenderService,

			validator.NewXValidator,
			NewFiberApp,
			v1.NewHandler,
		),
		fx.Invoke(startMetricsCollector, startServer),
	).Run()
}

func NewMetrics() *metrics.Metrics {
	return metrics.NewMetrics(prometheus.DefaultRegisterer)
}

func NewValidate() *playground.Validate {
	return playground.New(playground.WithRequiredStructEnabled())
}

func NewSMSProvider(logger *zap.Logger) smsprovider.Provider {
	return smsprovider.NewSMSProvider(httpclient.NewHTTPClient, logger)
}

func NewFiberApp(m *metrics.Metrics, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(metrics.HealthCheckMiddleware(serviceName))
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	return app
}

func startMetricsCollector(m *metrics.Metrics, logger *zap.Logger, lc fx.Lifecycle) {
	collector := metrics.NewSystemCollector(m, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			collector.Start(15 * time.Second)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			collector.Stop()
			return nil
		},
	})
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			logger.Info("HTTP server started", zap.String("port", cfg.API.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			defer logger.Sync()
			return app.ShutdownWithContext(ctx)
		},
	})
}
