package app

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/akarpov/microblog/pkg/statistics"
)

// NewStatisticsMW creates middleware pushing a record per handled request to
// the statistics stream. Push failures are logged and never affect the
// response.
func NewStatisticsMW(stat *statistics.KafkaStatistics, logger *slog.Logger) (fiber.Handler, error) {
	return func(ctx *fiber.Ctx) error {
		if ctx.Path() == "/health" {
			return ctx.Next()
		}

		start := time.Now()
		handlerErr := ctx.Next()

		req := statistics.Request{
			Method:    ctx.Method(),
			URL:       ctx.OriginalURL(),
			Status:    int32(ctx.Response().StatusCode()),
			LatencyMs: time.Since(start).Milliseconds(),
			CacheHit:  string(ctx.Response().Header.Peek("X-Cache")) == "HIT",
		}

		if err := stat.Push(ctx.Context(), req); err != nil {
			logger.Error("push request statistics: " + err.Error())
		}

		return handlerErr
	}, nil
}
