package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HTTPMetricsMiddleware creates a middleware that collects HTTP metrics
func HTTPMetricsMiddleware(metrics *Metrics, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		err := c.Next()
		if err != nil {
			// Run the error handler now so the recorded status is the one sent.
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
			err = nil
		}

		duration := time.Since(start)

		method := c.Method()
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		statusCode := strconv.Itoa(c.Response().StatusCode())
		responseSize := len(c.Response().Body())

		metrics.RecordHTTPRequest(method, path, statusCode, duration, responseSize)

		// Gateway calls may legitimately take up to the send timeout.
		if duration > 10*time.Second {
			logger.Warn("Slow HTTP request",
				zap.String("method", method),
				zap.String("path", path),
				zap.String("status_code", statusCode),
				zap.Duration("duration", duration),
			)
		}

		return err
	}
}

// HealthCheckMiddleware answers /health before routing.
func HealthCheckMiddleware(serviceName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/health" {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"status":    "healthy",
				"timestamp": time.Now().Unix(),
				"service":   serviceName,
			})
		}
		return c.Next()
	}
}
