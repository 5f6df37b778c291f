package middleware

import (
	"fmt"
	"strings"

	"yayayum/internal/observability"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// menuParamAttrs maps route params to span attribute keys.
var menuParamAttrs = map[string]string{
	"id":     "menu.entity_id",
	"dishId": "menu.dish_id",
	"userId": "menu.user_id",
}

// TracingMiddleware opens a server span per request. Once routing is done the
// span is renamed after the matched route and tagged with the menu resource
// and the ids addressed by the path.
func TracingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := otel.GetTextMapPropagator().Extract(c.UserContext(), propagation.HeaderCarrier(c.GetReqHeaders()))

		ctx, span := observability.Tracer.Start(ctx, c.Method()+" "+c.Path(),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", c.Method()),
				attribute.String("http.target", c.OriginalURL()),
				attribute.String("http.client_ip", c.IP()),
			),
		)
		defer span.End()

		traceID := span.SpanContext().TraceID().String()
		c.Locals("traceID", traceID)
		c.Set("X-Trace-ID", traceID)
		if requestID, ok := c.Locals("requestid").(string); ok {
			span.SetAttributes(attribute.String("request.id", requestID))
		}
		c.SetUserContext(ctx)

		err := c.Next()

		if route := c.Route(); route != nil && route.Path != "" && route.Path != "/" {
			span.SetName(c.Method() + " " + route.Path)
			span.SetAttributes(attribute.String("http.route", route.Path))
			if resource := menuResource(route.Path); resource != "" {
				span.SetAttributes(attribute.String("menu.resource", resource))
			}
			for _, name := range route.Params {
				if key, ok := menuParamAttrs[name]; ok {
					span.SetAttributes(attribute.String(key, c.Params(name)))
				}
			}
		}

		status := c.Response().StatusCode()
		span.SetAttributes(attribute.Int("http.status_code", status))
		switch {
		case err != nil:
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		case status >= fiber.StatusInternalServerError:
			span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", status))
		case status >= fiber.StatusBadRequest:
			span.SetAttributes(attribute.Bool("menu.rejected", true))
		}
		return err
	}
}

// menuResource returns the first path segment of a route, e.g. "ratings".
func menuResource(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	switch path {
	case "users", "dishes", "ratings":
		return path
	}
	return ""
}
