package http

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/observability"
	"github.com/spec-kit/helpdesk-service/pkg/util"
)

// RegisterMiddlewares attaches the app-wide middleware chain.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics) {
	app.Use(recover.New())
	app.Use(observability.RequestLogger(logger, metrics))
}

// NewErrorHandler maps every handler error onto the JSON error envelope. Typed
// domain errors keep their code and status; anything else becomes a 500.
func NewErrorHandler(logger *zap.Logger, metrics *observability.Metrics) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiber.Map{
				"code":    codeForStatus(fiberErr.Code),
				"message": fiberErr.Message,
			}})
		}

		domainErr := util.ToDomainError(err)
		metrics.RecordError(c.Path(), c.Method(), domainErr.Code)

		fields := []zap.Field{
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
			zap.String("code", domainErr.Code),
		}
		if domainErr.HTTPStatus >= http.StatusInternalServerError {
			logger.Error("request failed", append(fields, zap.Error(err))...)
		} else {
			logger.Warn("request rejected", fields...)
		}

		body := fiber.Map{
			"code":    domainErr.Code,
			"message": domainErr.Message,
		}
		if len(domainErr.Details) > 0 {
			body["details"] = domainErr.Details
		}
		return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": body})
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return util.CodeNotFound
	case http.StatusMethodNotAllowed, http.StatusBadRequest:
		return util.CodeValidationFailed
	default:
		return util.CodeInternal
	}
}
