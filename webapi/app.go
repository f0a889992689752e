// Package webapi wires the HTTP boundary: routing, request validation, and
// mapping of engine errors onto client responses.
package webapi

import (
	"log/slog"
	"time"

	accountapi "github.com/amirasaad/transfers/webapi/account"
	"github.com/amirasaad/transfers/webapi/common"
	"github.com/amirasaad/transfers/webapi/transaction"

	"github.com/amirasaad/transfers/pkg/middleware"
	"github.com/amirasaad/transfers/pkg/service/transfer"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewApp builds the Fiber application with all routes and middleware.
func NewApp(svc *transfer.Service, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())
	app.Use(middleware.Prometheus())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("App is working! 🚀")
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	accountapi.Routes(app, svc, logger)
	transaction.Routes(app, svc, logger)

	return app
}
