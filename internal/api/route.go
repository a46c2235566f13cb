package api

import (
	"github.com/Behyna/sms-services/notifier/internal/api/v1"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Post("/v1/messages", handler.Message)
}
