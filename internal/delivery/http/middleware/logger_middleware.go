package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	deliverycontext "bazaar/internal/delivery/context"
)

// RequestContext attaches a request ID and a request-scoped logger to the
// request context so use cases log with the request's identity.
type RequestContext struct {
	logger *slog.Logger
}

// NewRequestContext creates the request context middleware.
func NewRequestContext(logger *slog.Logger) *RequestContext {
	return &RequestContext{logger: logger}
}

// Handle propagates an inbound X-Request-Id or generates one, echoes it on
// the response and stores a logger carrying it in the request context.
func (m *RequestContext) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = deliverycontext.GetRequestID(c)
		}
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		requestLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, requestLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
