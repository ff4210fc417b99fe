package app

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	slogfiber "github.com/samber/slog-fiber"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Delivery is a routable slice of the API with its own health check.
type Delivery interface {
	HealthChecker

	AddHandlers(router fiber.Router)
}

type FiberApp struct {
	app    *fiber.App
	config WebConfig
}

func NewFiberApp(config WebConfig, deliveries []Delivery, statisticsMW fiber.Handler, logger *slog.Logger) *FiberApp {
	app := fiber.New(fiber.Config{
		AppName:               "microblog",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(slogfiber.New(logger))
	app.Use(limiter.New(limiter.Config{
		Max:        config.RateLimit,
		Expiration: config.RateWindow(),
	}))
	if statisticsMW != nil {
		app.Use(statisticsMW)
	}

	app.Get("/health", func(ctx *fiber.Ctx) error {
		for _, d := range deliveries {
			if err := d.HealthCheck(ctx.Context()); err != nil {
				logger.Error(err.Error())
				return ctx.SendStatus(fiber.StatusServiceUnavailable)
			}
		}
		return ctx.SendStatus(fiber.StatusOK)
	})

	for _, d := range deliveries {
		d.AddHandlers(app)
	}

	return &FiberApp{
		app:    app,
		config: config,
	}
}

func (a *FiberApp) Start() error {
	return a.app.Listen(a.config.Host + ":" + a.config.Port)
}

func (a *FiberApp) Shutdown(ctx context.Context) error {
	return a.app.ShutdownWithContext(ctx)
}
